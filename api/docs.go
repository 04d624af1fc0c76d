package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/docgen"
)

// RoutesDoc renders the route tree as markdown (PRINT_ROUTES=true).
func RoutesDoc(r chi.Router) string {
	return docgen.MarkdownRoutesDoc(r, docgen.MarkdownOpts{
		ProjectPath: "github.com/rpupo63/editorial-backend",
		Intro:       "Routes served by the editorial backend.",
	})
}
