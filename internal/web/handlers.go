package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"xivpath/internal/catalog"
	"xivpath/internal/selection"
	"xivpath/internal/session"
)

func (s *Server) remembers() bool {
	_, stateless := s.Store.(session.NopStore)
	return !stateless
}

// GET /
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	s.renderForm(w, r, "layout.html")
}

// GET /form
// htmx: returns the form fragment only, swapped into #form on change.
func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	s.renderForm(w, r, "form.html")
}

func (s *Server) renderForm(w http.ResponseWriter, r *http.Request, tmpl string) {
	if !allowRead(w, r) {
		return
	}
	sel, err := s.currentSelection(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	path, err := s.Catalog.Resolve(sel)
	missing := false
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		s.logger().Debug("no path for selection", zap.Any("selection", sel), zap.Error(err))
		missing = true
	case err != nil && !errors.Is(err, catalog.ErrUnsupported):
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Cookies must be set before the body is written.
	s.Store.Save(w, sel)
	w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")

	vm := s.makeViewModel(sel, path, missing)
	if err := s.Tmpl.ExecuteTemplate(w, tmpl, vm); err != nil {
		s.logger().Error("render template", zap.String("template", tmpl), zap.Error(err))
		http.Error(w, "failed to render template", http.StatusInternalServerError)
		return
	}
}

type pathResponse struct {
	Path      string              `json:"path"`
	Selection selection.Selection `json:"selection"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// GET /api/path
// Resolves the query parameters without reading or writing cookies. Named
// options are never swapped for others: a body type or texture that does not
// fit is a 400 and a face number past the race's variants is a 404.
func (s *Server) handleAPIPath(w http.ResponseWriter, r *http.Request) {
	if !allowRead(w, r) {
		return
	}
	sel, err := s.apiSelection(r)
	switch {
	case errors.Is(err, selection.ErrNoVariant):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	case err != nil:
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	path, err := s.Catalog.Resolve(sel)
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	case errors.Is(err, catalog.ErrUnsupported):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	case err != nil:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, pathResponse{Path: path, Selection: sel})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// GET /healthz
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
