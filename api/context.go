package api

import (
	"context"
	"errors"

	"github.com/rpupo63/editorial-backend/models"
)

type keyType string

const (
	articleKey keyType = "article"
)

// ctxWithArticle stores the article resolved from the URL
func ctxWithArticle(ctx context.Context, article *models.ArticleWithRelations) context.Context {
	return context.WithValue(ctx, articleKey, article)
}

// ctxGetArticle retrieves the article put there by articleCtx
func ctxGetArticle(ctx context.Context) (*models.ArticleWithRelations, error) {
	article, ok := ctx.Value(articleKey).(*models.ArticleWithRelations)
	if !ok || article == nil {
		return nil, errors.New("article not found in context")
	}
	return article, nil
}
