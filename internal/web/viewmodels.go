package web

import (
	"net/url"
	"strconv"

	"xivpath/internal/selection"
)

// Option is one <option> of a select.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// FormViewModel contains data for rendering the form and its path.
type FormViewModel struct {
	Selection   selection.Selection
	Genders     []Option
	Races       []Option
	Parts       []Option
	BodyTypes   []Option // empty unless the part is Body
	FaceNumbers []Option // empty unless the part has face variants
	Textures    []Option
	Path        string
	PathMissing bool
	Remember    bool
	HelpURL     string
	SheetURL    string
}

func (s *Server) makeViewModel(sel selection.Selection, path string, missing bool) FormViewModel {
	opts := selection.OptionsFor(sel, s.Catalog.FaceCount)

	textures := make([]Option, len(opts.Textures))
	for i, t := range opts.Textures {
		textures[i] = Option{Value: string(t), Label: selection.TextureLabel(sel.Part, t), Selected: t == sel.Texture}
	}
	faces := make([]Option, len(opts.FaceNumbers))
	for i, n := range opts.FaceNumbers {
		v := strconv.Itoa(n)
		faces[i] = Option{Value: v, Label: v, Selected: n == sel.FaceNumber}
	}

	q := url.Values{}
	q.Set(paramGender, string(sel.Gender))
	q.Set(paramRace, string(sel.Race))

	return FormViewModel{
		Selection:   sel,
		Genders:     stringOptions(opts.Genders, sel.Gender),
		Races:       stringOptions(opts.Races, sel.Race),
		Parts:       stringOptions(opts.Parts, sel.Part),
		BodyTypes:   stringOptions(opts.BodyTypes, sel.BodyType),
		FaceNumbers: faces,
		Textures:    textures,
		Path:        path,
		PathMissing: missing,
		Remember:    s.remembers(),
		HelpURL:     s.HelpURL,
		SheetURL:    "/sheet.pdf?" + q.Encode(),
	}
}

func stringOptions[T ~string](vals []T, cur T) []Option {
	out := make([]Option, len(vals))
	for i, v := range vals {
		out[i] = Option{Value: string(v), Label: string(v), Selected: v == cur}
	}
	return out
}
