package api

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/rpupo63/editorial-backend/database"
	"github.com/rpupo63/editorial-backend/errs"
	"github.com/rpupo63/editorial-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// adminHandler exposes the insert operations used by editors and seed tooling.
type adminHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     database.Storage
}

func newAdminHandler(store database.Storage) adminHandler {
	logger := log.With().Str("handlerName", "adminHandler").Logger()

	return adminHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
	}
}

type authorRequest struct {
	models.NewAuthor
}

func (a *authorRequest) Bind(r *http.Request) error {
	return a.Validate()
}

type categoryRequest struct {
	models.NewCategory
}

func (c *categoryRequest) Bind(r *http.Request) error {
	return c.Validate()
}

type articleRequest struct {
	models.NewArticle
}

func (a *articleRequest) Bind(r *http.Request) error {
	return a.Validate()
}

// bind decodes and validates the request body, mapping decode failures to a malformed payload error.
func (h adminHandler) bind(r *http.Request, payloadType string, v render.Binder) error {
	if err := render.Bind(r, v); err != nil {
		if errs.IsValidationError(err) {
			return err
		}
		h.logger.Warn().Err(err).Str("payload", payloadType).Msg("failed to decode request body")
		return errs.NewMalformedPayloadError(payloadType, err)
	}
	return nil
}

// createAuthor creates a new author
// @Summary Create author
// @Tags Admin
// @Accept json
// @Produce json
// @Param author body models.NewAuthor true "Author data"
// @Success 201 {object} models.Author
// @Failure 400 {object} contract.Message "Bad Request - Invalid author data"
// @Failure 401 {object} contract.Message
// @Router /api/admin/authors [post]
func (h adminHandler) createAuthor() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req authorRequest
		if err := h.bind(r, "author", &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		author, err := h.store.CreateAuthor(r.Context(), req.NewAuthor)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Info().Int64("authorID", author.ID).Msg("author created")
		h.responder.WriteJSON(w, http.StatusCreated, author)
	}
}

// createCategory creates a new category
// @Summary Create category
// @Tags Admin
// @Accept json
// @Produce json
// @Param category body models.NewCategory true "Category data"
// @Success 201 {object} models.Category
// @Failure 400 {object} contract.Message "Bad Request - Invalid category data"
// @Failure 409 {object} contract.Message "Conflict - Slug already taken"
// @Router /api/admin/categories [post]
func (h adminHandler) createCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req categoryRequest
		if err := h.bind(r, "category", &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		category, err := h.store.CreateCategory(r.Context(), req.NewCategory)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Info().Str("slug", category.Slug).Msg("category created")
		h.responder.WriteJSON(w, http.StatusCreated, category)
	}
}

// createArticle creates a new article, stamped with the current time
// @Summary Create article
// @Tags Admin
// @Accept json
// @Produce json
// @Param article body models.NewArticle true "Article data"
// @Success 201 {object} models.Article
// @Failure 400 {object} contract.Message "Bad Request - Invalid article data or unknown author/category"
// @Failure 409 {object} contract.Message "Conflict - Slug already taken"
// @Router /api/admin/articles [post]
func (h adminHandler) createArticle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req articleRequest
		if err := h.bind(r, "article", &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		article, err := h.store.CreateArticle(r.Context(), req.NewArticle)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Info().Str("slug", article.Slug).Msg("article created")
		h.responder.WriteJSON(w, http.StatusCreated, article)
	}
}
