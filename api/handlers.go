package api

import (
	"time"

	"github.com/rpupo63/editorial-backend/database"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(store database.Storage, feed feedConfig, startupTime time.Time) *routeHandlers {
	return &routeHandlers{
		articleHandler:  newArticleHandler(store),
		categoryHandler: newCategoryHandler(store),
		adminHandler:    newAdminHandler(store),
		feedHandler:     newFeedHandler(store, feed),
		metaHandler:     newMetaHandler(store, startupTime),
	}
}
