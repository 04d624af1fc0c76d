package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/rpupo63/editorial-backend/errs"
	"github.com/rs/zerolog/log"
)

// spaHandler serves the built frontend from dir. Paths that are not files fall back
// to index.html so client-side routes like /article/{slug} load the app.
// Unmatched /api paths get a JSON 404 instead.
func spaHandler(dir string) http.HandlerFunc {
	responder := NewResponder(log.With().Str("handlerName", "spaHandler").Logger())
	notFound := func(w http.ResponseWriter, r *http.Request) {
		responder.WriteError(w, errs.NewNotFound("route"))
	}

	if dir == "" {
		return notFound
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		log.Warn().Str("dir", dir).Msg("no public directory found, skipping static serve")
		return notFound
	}

	files := http.FileServer(http.Dir(dir))
	index := filepath.Join(dir, "index.html")

	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") || r.URL.Path == "/api" {
			notFound(w, r)
			return
		}
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			notFound(w, r)
			return
		}

		target := filepath.Join(dir, filepath.FromSlash(filepath.Clean("/"+r.URL.Path)))
		if info, err := os.Stat(target); err == nil && !info.IsDir() {
			files.ServeHTTP(w, r)
			return
		}
		http.ServeFile(w, r, index)
	}
}
