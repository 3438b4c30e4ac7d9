package selection

import "strconv"

// Gender selects which half of the asset catalog is used.
type Gender string

const (
	Female Gender = "Female"
	Male   Gender = "Male"
)

// Genders lists the gender options in display order.
var Genders = []Gender{Female, Male}

// Race is a playable clan. Asset paths are keyed by these exact names.
type Race string

// Races lists the race options in display order.
var Races = []Race{
	"Midlander", "Highlander", "Wildwood", "Duskwight", "Seeker", "Keeper",
	"Seawolf", "Hellsguard", "Plainsfolk", "Dunesfolk", "Raen", "Xaela", "Hellions", "Lost",
	"Rava", "Veena",
}

// Part is the character sub-mesh a texture belongs to.
type Part string

const (
	PartFace     Part = "Face"
	PartBody     Part = "Body"
	PartEyes     Part = "Eyes"
	PartBrowLash Part = "Brow/Lash"
)

// Parts lists the part options in display order.
var Parts = []Part{PartFace, PartBody, PartEyes, PartBrowLash}

// UsesFaceNumber reports whether the part has per-face variants.
func (p Part) UsesFaceNumber() bool {
	return p == PartFace || p == PartEyes || p == PartBrowLash
}

// BodyType is a body mesh/texture mod. Only meaningful for PartBody.
type BodyType string

const (
	BodyVanilla     BodyType = "Vanilla"
	BodyBibo        BodyType = "Bibo+"
	BodyGen3        BodyType = "Gen 3"
	BodyTBSE        BodyType = "TBSE"
	BodyVanillaTBSE BodyType = "Vanilla (with TBSE installed)"
)

var (
	femaleBodyTypes = []BodyType{BodyVanilla, BodyBibo, BodyGen3}
	maleBodyTypes   = []BodyType{BodyVanilla, BodyTBSE, BodyVanillaTBSE}
)

// BodyTypes returns the body types available for g.
func BodyTypes(g Gender) []BodyType {
	if g == Male {
		return maleBodyTypes
	}
	return femaleBodyTypes
}

// Texture is a rendering map channel.
type Texture string

const (
	TextureDiffuse Texture = "Diffuse/Base"
	TextureNormal  Texture = "Normal"
	TextureMask    Texture = "Mask"
)

// Textures lists every texture channel in display order.
var Textures = []Texture{TextureDiffuse, TextureNormal, TextureMask}

// Selection is one complete set of form choices.
type Selection struct {
	Gender     Gender   `json:"gender"`
	Race       Race     `json:"race"`
	Part       Part     `json:"part"`
	BodyType   BodyType `json:"bodyType,omitempty"`
	Texture    Texture  `json:"texture"`
	FaceNumber int      `json:"faceNumber,omitempty"`
}

// Default returns the first option of every field.
func Default() Selection {
	return Selection{
		Gender:     Genders[0],
		Race:       Races[0],
		Part:       Parts[0],
		Texture:    Textures[0],
		FaceNumber: 1,
	}
}

// Summary describes the part-specific fields, e.g. "Face 2 · Makeup/Diffuse".
func (s Selection) Summary() string {
	label := TextureLabel(s.Part, s.Texture)
	switch {
	case s.Part == PartBody:
		return string(s.BodyType) + " · " + label
	case s.Part == PartEyes:
		return label
	case s.Part.UsesFaceNumber():
		return "Face " + strconv.Itoa(s.FaceNumber) + " · " + label
	default:
		return label
	}
}
