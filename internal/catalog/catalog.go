// Package catalog holds the texture path asset files and resolves a form
// selection to the path string stored in them.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"

	"xivpath/internal/selection"
)

// Unsupported is shown in place of a path for a part the catalog has no
// category for.
const Unsupported = "Unsupported combination"

var (
	ErrUnsupported = errors.New("unsupported combination")
	ErrNotFound    = errors.New("path not found")
)

// Category names one asset file per gender.
type Category string

const (
	CategoryBody Category = "body"
	CategoryFace Category = "face"
	CategoryEye  Category = "eye"
	CategoryEtc  Category = "etc"
)

var categories = []Category{CategoryBody, CategoryFace, CategoryEye, CategoryEtc}

// Catalog is the raw JSON of every asset file, keyed by gender and
// category. It is read once and never modified.
type Catalog struct {
	docs map[selection.Gender]map[Category][]byte
}

// Load reads {gender}_{category}.json for every gender and category from dir.
func Load(dir string) (*Catalog, error) {
	c := &Catalog{docs: make(map[selection.Gender]map[Category][]byte, len(selection.Genders))}
	for _, g := range selection.Genders {
		c.docs[g] = make(map[Category][]byte, len(categories))
		for _, cat := range categories {
			path := filepath.Clean(filepath.Join(dir, FileName(g, cat)))
			b, err := os.ReadFile(path) //nolint:gosec // dir comes from config, name is fixed
			if err != nil {
				return nil, fmt.Errorf("read catalog %s: %w", path, err)
			}
			if !gjson.ValidBytes(b) {
				return nil, fmt.Errorf("parse catalog %s: invalid JSON", path)
			}
			c.docs[g][cat] = b
		}
	}
	return c, nil
}

// FileName returns the asset file name for a gender and category,
// e.g. "female_face.json".
func FileName(g selection.Gender, cat Category) string {
	return strings.ToLower(string(g)) + "_" + string(cat) + ".json"
}

// Files returns the number of loaded asset files.
func (c *Catalog) Files() int {
	n := 0
	for _, byCat := range c.docs {
		n += len(byCat)
	}
	return n
}

func (c *Catalog) lookup(g selection.Gender, cat Category, keys ...string) gjson.Result {
	doc := c.docs[g][cat]
	if doc == nil {
		return gjson.Result{}
	}
	return gjson.GetBytes(doc, jsonPath(keys...))
}

// jsonPath joins keys into a gjson path. Keys such as "Bibo+" or "Face 1"
// are escaped so they are matched literally.
func jsonPath(keys ...string) string {
	esc := make([]string, len(keys))
	for i, k := range keys {
		esc[i] = gjson.Escape(k)
	}
	return strings.Join(esc, ".")
}
