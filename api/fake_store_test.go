package api

import (
	"context"
	"errors"
	"time"

	"github.com/rpupo63/editorial-backend/database"
	"github.com/rpupo63/editorial-backend/errs"
	"github.com/rpupo63/editorial-backend/models"
)

// fakeStore is an in-memory database.Storage. Setting err makes every call fail.
type fakeStore struct {
	authors    []models.Author
	categories []models.Category
	articles   []models.ArticleWithRelations
	err        error
	pingErr    error
}

var _ database.Storage = (*fakeStore)(nil)

func (f *fakeStore) ListArticles(ctx context.Context, filter database.ArticleFilter) ([]models.ArticleWithRelations, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.ArticleWithRelations, 0)
	for _, a := range f.articles {
		if filter.CategorySlug != "" && (a.Category == nil || a.Category.Slug != filter.CategorySlug) {
			continue
		}
		out = append(out, a)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

func (f *fakeStore) GetArticleBySlug(ctx context.Context, slug string) (*models.ArticleWithRelations, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.articles {
		if f.articles[i].Slug == slug {
			return &f.articles[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStore) GetArticleBySlugSimple(ctx context.Context, slug string) (*models.Article, error) {
	a, err := f.GetArticleBySlug(ctx, slug)
	if a == nil || err != nil {
		return nil, err
	}
	return &a.Article, nil
}

func (f *fakeStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]models.Category{}, f.categories...), nil
}

func (f *fakeStore) GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.categories {
		if f.categories[i].Slug == slug {
			return &f.categories[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStore) GetAuthorByName(ctx context.Context, name string) (*models.Author, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.authors {
		if f.authors[i].Name == name {
			return &f.authors[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStore) CreateAuthor(ctx context.Context, in models.NewAuthor) (*models.Author, error) {
	if f.err != nil {
		return nil, f.err
	}
	a := in.Model()
	a.ID = int64(len(f.authors) + 1)
	f.authors = append(f.authors, a)
	return &a, nil
}

func (f *fakeStore) CreateCategory(ctx context.Context, in models.NewCategory) (*models.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	for _, c := range f.categories {
		if c.Slug == in.Slug {
			return nil, errs.NewUniqueConstraintViolationError("category", "slug", errors.New("duplicate key"))
		}
	}
	c := in.Model()
	c.ID = int64(len(f.categories) + 1)
	f.categories = append(f.categories, c)
	return &c, nil
}

func (f *fakeStore) CreateArticle(ctx context.Context, in models.NewArticle) (*models.Article, error) {
	if f.err != nil {
		return nil, f.err
	}
	if in.CategoryID != nil && int(*in.CategoryID) > len(f.categories) {
		return nil, errs.NewForeignKeyConstraintError("article", errors.New("foreign key constraint"))
	}
	a := in.Model(time.Now().UTC())
	a.ID = int64(len(f.articles) + 1)
	f.articles = append([]models.ArticleWithRelations{{Article: a}}, f.articles...)
	return &a, nil
}

func (f *fakeStore) Ping(ctx context.Context) error {
	return f.pingErr
}

func sampleStore() *fakeStore {
	desc := "Bank sentral"
	moneter := models.Category{ID: 1, Name: "Moneter", Slug: "moneter", Description: &desc}
	politik := models.Category{ID: 2, Name: "Politik", Slug: "politik"}
	author := models.Author{ID: 1, Name: "Dimas"}
	published := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

	return &fakeStore{
		authors:    []models.Author{author},
		categories: []models.Category{moneter, politik},
		articles: []models.ArticleWithRelations{
			{
				Article: models.Article{ID: 2, Title: "Suku Bunga", Slug: "suku-bunga", Summary: "Ringkasan", Content: "Isi",
					AuthorID: &author.ID, CategoryID: &moneter.ID, PublishedAt: published.Add(time.Hour)},
				Author:   &author,
				Category: &moneter,
			},
			{
				Article: models.Article{ID: 1, Title: "Pemilu", Slug: "pemilu", Summary: "Ringkasan", Content: "Isi",
					CategoryID: &politik.ID, PublishedAt: published},
				Category: &politik,
			},
		},
	}
}
