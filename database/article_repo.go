package database

import (
	"context"
	"time"

	"github.com/rpupo63/editorial-backend/errs"
	"github.com/rpupo63/editorial-backend/models"
	"gorm.io/gorm"
)

type ArticleRepo struct {
	db  *gorm.DB
	now func() time.Time
}

func NewArticleRepo(db *gorm.DB, now func() time.Time) *ArticleRepo {
	if now == nil {
		now = time.Now
	}
	return &ArticleRepo{db: db, now: now}
}

// FindAll lists articles newest first with author and category attached.
// A category slug keeps only articles filed under that category.
func (r *ArticleRepo) FindAll(ctx context.Context, filter ArticleFilter) ([]models.ArticleWithRelations, error) {
	query := r.withRelations(ctx).
		Order("articles.published_at DESC").
		Order("articles.id DESC")

	if filter.CategorySlug != "" {
		query = query.Where("EXISTS (?)", r.inCategory(ctx, filter.CategorySlug))
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	articles := make([]models.ArticleWithRelations, 0)
	if err := query.Find(&articles).Error; err != nil {
		return nil, errs.NewDatabaseError("find", "articles", err)
	}
	return articles, nil
}

// inCategory is the correlated subquery matching a category row by slug that the
// outer article points at. Both predicates live in the same subquery scope.
func (r *ArticleRepo) inCategory(ctx context.Context, slug string) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.Category{}).
		Select("1").
		Where("categories.slug = ?", slug).
		Where("categories.id = articles.category_id")
}

// FindBySlug returns the article with its relations, or nil
func (r *ArticleRepo) FindBySlug(ctx context.Context, slug string) (*models.ArticleWithRelations, error) {
	var article models.ArticleWithRelations
	err := r.withRelations(ctx).Where("articles.slug = ?", slug).Take(&article).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.NewDatabaseError("find", "article", err)
	}
	return &article, nil
}

// FindRowBySlug returns the bare article row without touching authors or categories
func (r *ArticleRepo) FindRowBySlug(ctx context.Context, slug string) (*models.Article, error) {
	var article models.Article
	err := r.db.WithContext(ctx).Where("slug = ?", slug).Take(&article).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.NewDatabaseError("find", "article", err)
	}
	return &article, nil
}

// Add inserts a new article stamped with the current time and returns the stored row
func (r *ArticleRepo) Add(ctx context.Context, in models.NewArticle) (*models.Article, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	// postgres keeps microseconds; truncating keeps the returned row equal to what a read gives back
	article := in.Model(r.now().UTC().Truncate(time.Microsecond))
	if err := r.db.WithContext(ctx).Create(&article).Error; err != nil {
		return nil, insertError("article", "slug", err)
	}
	return &article, nil
}

func (r *ArticleRepo) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.ArticleWithRelations{}).
		Preload("Author").
		Preload("Category")
}
