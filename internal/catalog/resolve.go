package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"xivpath/internal/selection"
)

var textureKeys = map[selection.Texture]string{
	selection.TextureDiffuse: "base",
	selection.TextureNormal:  "norm",
	selection.TextureMask:    "mask",
}

var bodyKeys = map[selection.BodyType]string{
	selection.BodyVanillaTBSE: "VanillaTBSE",
}

// Resolve returns the path stored for sel. A part with no category yields
// Unsupported and ErrUnsupported; a key missing from the JSON yields
// ErrNotFound.
func (c *Catalog) Resolve(sel selection.Selection) (string, error) {
	cat, keys, ok := pathKeys(sel)
	if !ok {
		return Unsupported, fmt.Errorf("%w: part %q", ErrUnsupported, sel.Part)
	}
	res := c.lookup(sel.Gender, cat, keys...)
	if res.Type != gjson.String {
		return "", fmt.Errorf("%w: %s %s", ErrNotFound,
			FileName(sel.Gender, cat), strings.Join(keys, " > "))
	}
	return res.String(), nil
}

// FaceCount returns how many face variants the base face texture lists
// for g and r; 0 if there are none.
func (c *Catalog) FaceCount(g selection.Gender, r selection.Race) int {
	res := c.lookup(g, CategoryFace, jsonKey(g, "Face", selection.TextureDiffuse), string(r))
	if !res.IsObject() {
		return 0
	}
	n := 0
	res.ForEach(func(_, _ gjson.Result) bool {
		n++
		return true
	})
	return n
}

// pathKeys maps sel to an asset category and the chain of JSON keys that
// leads to its path.
func pathKeys(sel selection.Selection) (Category, []string, bool) {
	race := string(sel.Race)
	switch sel.Part {
	case selection.PartBody:
		return CategoryBody, []string{bodyKey(sel.BodyType), jsonKey(sel.Gender, "Body", sel.Texture), race}, true
	case selection.PartFace:
		return CategoryFace, []string{jsonKey(sel.Gender, "Face", sel.Texture), race, faceKey(sel.FaceNumber)}, true
	case selection.PartEyes:
		return CategoryEye, []string{jsonKey(sel.Gender, "Eye", sel.Texture), race}, true
	case selection.PartBrowLash:
		return CategoryEtc, []string{jsonKey(sel.Gender, "Etc", sel.Texture), race, faceKey(sel.FaceNumber)}, true
	}
	return "", nil, false
}

// jsonKey builds keys such as "FemaleFaceBase" or "MaleEtcNorm".
func jsonKey(g selection.Gender, part string, t selection.Texture) string {
	tex, ok := textureKeys[t]
	if !ok {
		tex = strings.ToLower(string(t))
	}
	return string(g) + part + cases.Title(language.Und).String(tex)
}

func bodyKey(b selection.BodyType) string {
	if k, ok := bodyKeys[b]; ok {
		return k
	}
	return string(b)
}

func faceKey(n int) string {
	return "Face " + strconv.Itoa(n)
}
