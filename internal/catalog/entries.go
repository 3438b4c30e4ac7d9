package catalog

import "xivpath/internal/selection"

// Entry is one resolvable selection and its path.
type Entry struct {
	Selection selection.Selection
	Path      string
}

// All returns every path the catalog holds for g and r, walking parts,
// body types, face numbers and textures in option order. Combinations
// without a path are skipped.
func (c *Catalog) All(g selection.Gender, r selection.Race) []Entry {
	var out []Entry
	add := func(sel selection.Selection) {
		if p, err := c.Resolve(sel); err == nil {
			out = append(out, Entry{Selection: sel, Path: p})
		}
	}
	faces := c.FaceCount(g, r)
	for _, part := range selection.Parts {
		base := selection.Selection{Gender: g, Race: r, Part: part}
		for _, tex := range selection.TexturesFor(part) {
			base.Texture = tex
			switch {
			case part == selection.PartBody:
				for _, bt := range selection.BodyTypes(g) {
					sel := base
					sel.BodyType = bt
					add(sel)
				}
			case part == selection.PartEyes:
				sel := base
				if faces > 0 {
					sel.FaceNumber = 1
				}
				add(sel)
			default:
				for _, n := range selection.FaceNumbers(faces) {
					sel := base
					sel.FaceNumber = n
					add(sel)
				}
			}
		}
	}
	return out
}
