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

type categoryHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     database.Storage
}

func newCategoryHandler(store database.Storage) categoryHandler {
	logger := log.With().Str("handlerName", "categoryHandler").Logger()

	return categoryHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
	}
}

// listCategories returns every category
// @Summary List categories
// @Tags Categories
// @Produce json
// @Success 200 {array} models.Category
// @Failure 500 {object} contract.Message
// @Router /api/categories [get]
func (h categoryHandler) listCategories() http.HandlerFunc {
	endpoint := contract.API.Categories.List

	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := h.store.ListCategories(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteContract(w, endpoint, http.StatusOK, categories)
	}
}

// getCategory returns one category by slug
// @Summary Get category
// @Tags Categories
// @Produce json
// @Param slug path string true "Category slug"
// @Success 200 {object} models.Category
// @Failure 404 {object} contract.Message "Not Found - Category not found"
// @Router /api/categories/{slug} [get]
func (h categoryHandler) getCategory() http.HandlerFunc {
	endpoint := contract.API.Categories.Get

	return func(w http.ResponseWriter, r *http.Request) {
		category, err := h.store.GetCategoryBySlug(r.Context(), chi.URLParam(r, "slug"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if category == nil {
			h.responder.WriteError(w, errs.NewNotFound("category"))
			return
		}

		h.responder.WriteContract(w, endpoint, http.StatusOK, category)
	}
}
