package web

import (
	"html/template"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"xivpath/internal/catalog"
	"xivpath/internal/session"
)

type Server struct {
	Catalog *catalog.Catalog
	Store   session.Store
	Tmpl    *template.Template
	Log     *zap.Logger
	HelpURL string
}

// templateFiles are parsed together; layout.html includes form.html.
var templateFiles = []string{"layout.html", "form.html"}

// ParseTemplates parses the page templates from dir.
func ParseTemplates(dir string) (*template.Template, error) {
	paths := make([]string, len(templateFiles))
	for i, f := range templateFiles {
		paths[i] = filepath.Join(dir, f)
	}
	return template.ParseFiles(paths...)
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/form", s.handleForm)
	mux.HandleFunc("/api/path", s.handleAPIPath)
	mux.HandleFunc("/sheet.pdf", s.handleSheet)
	mux.HandleFunc("/healthz", s.handleHealth)
	return s.logRequests(mux)
}

func (s *Server) logger() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}

// allowRead answers 405 for anything but GET and HEAD.
func allowRead(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return true
	}
	w.Header().Set("Allow", "GET, HEAD")
	http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	return false
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		if strings.HasPrefix(r.URL.Path, "/healthz") {
			return
		}
		s.logger().Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("elapsed", time.Since(start)),
		)
	})
}
