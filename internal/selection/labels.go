package selection

// Texture channels are shown under friendlier names for some parts.
var textureAliases = map[Part]map[Texture]string{
	PartFace:     {TextureDiffuse: "Makeup/Diffuse"},
	PartBody:     {TextureDiffuse: "Skin/Diffuse"},
	PartEyes:     {TextureDiffuse: "Eye Texture/Diffuse"},
	PartBrowLash: {TextureMask: "Dye Change/Mask"},
}

// TextureLabel returns the display name of t when shown for part p.
func TextureLabel(p Part, t Texture) string {
	if alias, ok := textureAliases[p][t]; ok {
		return alias
	}
	return string(t)
}

// TextureFromLabel maps a display name back to its texture channel.
// Unknown labels fall back to Diffuse/Base.
func TextureFromLabel(p Part, label string) Texture {
	if t, ok := textureFromLabel(p, label); ok {
		return t
	}
	return TextureDiffuse
}

func textureFromLabel(p Part, label string) (Texture, bool) {
	want := fold(label)
	for _, t := range TexturesFor(p) {
		if fold(TextureLabel(p, t)) == want {
			return t, true
		}
	}
	return "", false
}
