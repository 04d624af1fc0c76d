package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/editorial-backend/contract"
)

// setupPublicRoutes registers the read API. Paths come from the contract.
func setupPublicRoutes(r chi.Router, handlers *routeHandlers) {
	articles := contract.API.Articles
	categories := contract.API.Categories

	r.Method(articles.List.Method, articles.List.ChiPattern(), handlers.articleHandler.listArticles())
	r.With(handlers.articleHandler.articleCtx).
		Method(articles.Get.Method, articles.Get.ChiPattern(), handlers.articleHandler.getArticle())

	r.Method(categories.List.Method, categories.List.ChiPattern(), handlers.categoryHandler.listCategories())
	r.Method(categories.Get.Method, categories.Get.ChiPattern(), handlers.categoryHandler.getCategory())

	r.Get("/api/rss.xml", handlers.feedHandler.rss())
	r.Get("/api/health", handlers.metaHandler.health())
	r.Get("/api/hello", handlers.metaHandler.hello())
}

// setupAdminRoutes registers the insert endpoints behind bearer authentication
func setupAdminRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(authMiddleware.authenticate)

		r.Post("/authors", handlers.adminHandler.createAuthor())
		r.Post("/categories", handlers.adminHandler.createCategory())
		r.Post("/articles", handlers.adminHandler.createArticle())
	})
}
