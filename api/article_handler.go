package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/editorial-backend/contract"
	"github.com/rpupo63/editorial-backend/database"
	"github.com/rpupo63/editorial-backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type articleHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     database.Storage
}

func newArticleHandler(store database.Storage) articleHandler {
	logger := log.With().Str("handlerName", "articleHandler").Logger()

	return articleHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
	}
}

// listArticles lists articles newest first
// @Summary List articles
// @Description Lists articles with author and category, optionally filtered by category slug and limited
// @Tags Articles
// @Produce json
// @Param category query string false "Category slug"
// @Param limit query int false "Maximum number of articles"
// @Success 200 {array} models.ArticleWithRelations
// @Failure 400 {object} contract.Message "Bad Request - Invalid limit"
// @Failure 500 {object} contract.Message
// @Router /api/articles [get]
func (h articleHandler) listArticles() http.HandlerFunc {
	endpoint := contract.API.Articles.List

	return func(w http.ResponseWriter, r *http.Request) {
		query, err := contract.ParseListArticlesQuery(r.URL.Query())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := endpoint.ValidateInput(query); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		articles, err := h.store.ListArticles(r.Context(), database.ArticleFilter{
			CategorySlug: query.Category,
			Limit:        query.MaxRows(),
		})
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteContract(w, endpoint, http.StatusOK, articles)
	}
}

// articleCtx loads the article named by {slug} into the request context, answering 404 when absent.
func (h articleHandler) articleCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		article, err := h.store.GetArticleBySlug(r.Context(), slug)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if article == nil {
			h.responder.WriteError(w, errs.NewNotFound("article"))
			return
		}

		next.ServeHTTP(w, r.WithContext(ctxWithArticle(r.Context(), article)))
	})
}

// getArticle returns one article by slug
// @Summary Get article
// @Description Retrieves an article with its author and category
// @Tags Articles
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} models.ArticleWithRelations
// @Failure 404 {object} contract.Message "Not Found - Article not found"
// @Failure 500 {object} contract.Message
// @Router /api/articles/{slug} [get]
func (h articleHandler) getArticle() http.HandlerFunc {
	endpoint := contract.API.Articles.Get

	return func(w http.ResponseWriter, r *http.Request) {
		article, err := ctxGetArticle(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("article not loaded", err))
			return
		}

		h.responder.WriteContract(w, endpoint, http.StatusOK, article)
	}
}
