package session

import (
	"net/http"

	"xivpath/internal/selection"
)

// Store remembers a visitor's last selection between requests.
type Store interface {
	// Load returns the stored selection and whether anything was stored.
	// Values are not validated; callers clamp them.
	Load(r *http.Request) (selection.Selection, bool)
	Save(w http.ResponseWriter, sel selection.Selection)
}

// NopStore never remembers anything. It backs the stateless form.
type NopStore struct{}

func (NopStore) Load(*http.Request) (selection.Selection, bool) { return selection.Selection{}, false }

func (NopStore) Save(http.ResponseWriter, selection.Selection) {}
