package web

import (
	"fmt"
	"net/http"
	"strings"

	"xivpath/internal/selection"
	"xivpath/internal/sheet"
)

// GET /sheet.pdf?gender=&race=
// Every path the catalog holds for one gender and race, as a printable PDF.
func (s *Server) handleSheet(w http.ResponseWriter, r *http.Request) {
	if !allowRead(w, r) {
		return
	}
	sel, err := s.currentSelection(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	entries := s.Catalog.All(sel.Gender, sel.Race)
	rows := make([]sheet.Row, len(entries))
	for i, e := range entries {
		rows[i] = sheet.Row{Group: string(e.Selection.Part), Label: e.Selection.Summary(), Path: e.Path}
	}
	title := fmt.Sprintf("%s %s texture paths", sel.Gender, sel.Race)
	pdf, err := sheet.Generate(title, rows)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, sheetFileName(sel.Gender, sel.Race)))
	if _, err := w.Write(pdf); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func sheetFileName(g selection.Gender, r selection.Race) string {
	return strings.ToLower(fmt.Sprintf("texture-paths-%s-%s.pdf", g, r))
}
