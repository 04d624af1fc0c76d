package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/feeds"
	"github.com/rpupo63/editorial-backend/database"
	"github.com/rpupo63/editorial-backend/errs"
	"github.com/rpupo63/editorial-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type feedConfig struct {
	Title       string
	Link        string
	Description string
	Limit       int
}

type feedHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     database.Storage
	config    feedConfig
}

func newFeedHandler(store database.Storage, cfg feedConfig) feedHandler {
	logger := log.With().Str("handlerName", "feedHandler").Logger()

	return feedHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
		config:    cfg,
	}
}

// rss serves the latest articles as RSS 2.0, optionally for one category
// @Summary RSS feed
// @Tags Feed
// @Produce xml
// @Param category query string false "Category slug"
// @Success 200 {string} string "RSS document"
// @Failure 404 {object} contract.Message "Not Found - Category not found"
// @Router /api/rss.xml [get]
func (h feedHandler) rss() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		slug := strings.TrimSpace(r.URL.Query().Get("category"))

		var category *models.Category
		if slug != "" {
			var err error
			category, err = h.store.GetCategoryBySlug(ctx, slug)
			if err != nil {
				h.responder.WriteError(w, err)
				return
			}
			if category == nil {
				h.responder.WriteError(w, errs.NewNotFound("category"))
				return
			}
		}

		articles, err := h.store.ListArticles(ctx, database.ArticleFilter{CategorySlug: slug, Limit: h.config.Limit})
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		body, err := buildFeed(h.config, category, articles, time.Now())
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to generate RSS", err))
			return
		}

		w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(body)); err != nil {
			h.logger.Error().Err(err).Msg("error writing feed")
		}
	}
}

// buildFeed renders articles as RSS. Item ids are name-based UUIDs of the article link,
// so they stay stable across requests.
func buildFeed(cfg feedConfig, category *models.Category, articles []models.ArticleWithRelations, now time.Time) (string, error) {
	base := strings.TrimRight(cfg.Link, "/")

	feed := &feeds.Feed{
		Title:       cfg.Title,
		Link:        &feeds.Link{Href: base},
		Description: cfg.Description,
		Created:     now,
	}
	if category != nil {
		feed.Title = cfg.Title + " - " + category.Name
		feed.Link = &feeds.Link{Href: base + "/category/" + category.Slug}
		if category.Description != nil {
			feed.Description = *category.Description
		}
	}

	feed.Items = make([]*feeds.Item, 0, len(articles))
	for _, article := range articles {
		link := base + "/article/" + article.Slug
		item := &feeds.Item{
			Title:       article.Title,
			Link:        &feeds.Link{Href: link},
			Id:          "urn:uuid:" + uuid.NewSHA1(uuid.NameSpaceURL, []byte(link)).String(),
			Description: article.Summary,
			Created:     article.PublishedAt,
		}
		if article.Author != nil {
			item.Author = &feeds.Author{Name: article.Author.Name}
		}
		feed.Items = append(feed.Items, item)
	}

	return feed.ToRss()
}
