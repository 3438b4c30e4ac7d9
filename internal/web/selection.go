package web

import (
	"net/http"

	"xivpath/internal/selection"
)

// Query parameter names, shared by the form and the JSON API.
const (
	paramGender  = "gender"
	paramRace    = "race"
	paramPart    = "part"
	paramBody    = "body"
	paramTexture = "texture"
	paramFace    = "face"
)

// currentSelection starts from the stored selection, or the defaults when
// nothing is stored, applies the query on top and clamps the result to the
// options the catalog currently offers.
func (s *Server) currentSelection(r *http.Request) (selection.Selection, error) {
	sel, ok := s.Store.Load(r)
	if !ok {
		sel = selection.Default()
	}
	sel, _, err := parseQuery(r, sel)
	if err != nil {
		return sel, err
	}
	return selection.Clamp(sel, s.Catalog.FaceCount), nil
}

// apiSelection applies the query to the defaults. Fields the query leaves
// out follow Clamp, but the ones it names must fit as given.
func (s *Server) apiSelection(r *http.Request) (selection.Selection, error) {
	sel, given, err := parseQuery(r, selection.Default())
	if err != nil {
		return sel, err
	}
	clamped := selection.Clamp(sel, s.Catalog.FaceCount)
	if !given[paramBody] {
		sel.BodyType = clamped.BodyType
	}
	if !given[paramTexture] {
		sel.Texture = clamped.Texture
	}
	if !given[paramFace] {
		sel.FaceNumber = clamped.FaceNumber
	}
	return sel, selection.Check(sel, s.Catalog.FaceCount)
}

// parseQuery overrides fields of sel with any query parameters and reports
// which parameters were set.
func parseQuery(r *http.Request, sel selection.Selection) (selection.Selection, map[string]bool, error) {
	q := r.URL.Query()
	given := make(map[string]bool)
	var err error
	if v := q.Get(paramGender); v != "" {
		if sel.Gender, err = selection.ParseGender(v); err != nil {
			return sel, given, err
		}
		given[paramGender] = true
	}
	if v := q.Get(paramRace); v != "" {
		if sel.Race, err = selection.ParseRace(v); err != nil {
			return sel, given, err
		}
		given[paramRace] = true
	}
	if v := q.Get(paramPart); v != "" {
		if sel.Part, err = selection.ParsePart(v); err != nil {
			return sel, given, err
		}
		given[paramPart] = true
	}
	if v := q.Get(paramBody); v != "" {
		if sel.BodyType, err = selection.ParseBodyType(v); err != nil {
			return sel, given, err
		}
		given[paramBody] = true
	}
	// Part is settled by now, so its display labels are tried first.
	if v := q.Get(paramTexture); v != "" {
		if sel.Texture, err = selection.ParseTextureFor(sel.Part, v); err != nil {
			return sel, given, err
		}
		given[paramTexture] = true
	}
	if v := q.Get(paramFace); v != "" {
		if sel.FaceNumber, err = selection.ParseFaceNumber(v); err != nil {
			return sel, given, err
		}
		given[paramFace] = true
	}
	return sel, given, nil
}
