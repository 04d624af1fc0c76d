package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rpupo63/editorial-backend/models"
	"gorm.io/gorm"
)

// Storage is the data-access contract the HTTP layer and the seeder depend on.
// Lookups return (nil, nil) when no row matches; any non-nil error is a real failure.
type Storage interface {
	ListArticles(ctx context.Context, filter ArticleFilter) ([]models.ArticleWithRelations, error)
	GetArticleBySlug(ctx context.Context, slug string) (*models.ArticleWithRelations, error)
	GetArticleBySlugSimple(ctx context.Context, slug string) (*models.Article, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error)
	GetAuthorByName(ctx context.Context, name string) (*models.Author, error)
	CreateAuthor(ctx context.Context, author models.NewAuthor) (*models.Author, error)
	CreateCategory(ctx context.Context, category models.NewCategory) (*models.Category, error)
	CreateArticle(ctx context.Context, article models.NewArticle) (*models.Article, error)
	Ping(ctx context.Context) error
}

// ArticleFilter narrows an article listing. Zero values mean "no filter".
type ArticleFilter struct {
	CategorySlug string
	Limit        int
}

type Database struct {
	db           *gorm.DB
	authorRepo   *AuthorRepo
	categoryRepo *CategoryRepo
	articleRepo  *ArticleRepo
}

var _ Storage = Database{}

type options struct {
	now func() time.Time
}

type Option func(*options)

// WithClock overrides the clock used to stamp publishedAt on new articles.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB, opts ...Option) Database {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	return Database{
		db:           db,
		authorRepo:   NewAuthorRepo(db),
		categoryRepo: NewCategoryRepo(db),
		articleRepo:  NewArticleRepo(db, o.now),
	}
}

// Accessor methods for each repository

func (d Database) AuthorRepo() *AuthorRepo {
	return d.authorRepo
}

func (d Database) CategoryRepo() *CategoryRepo {
	return d.categoryRepo
}

func (d Database) ArticleRepo() *ArticleRepo {
	return d.articleRepo
}

func (d Database) ListArticles(ctx context.Context, filter ArticleFilter) ([]models.ArticleWithRelations, error) {
	return d.articleRepo.FindAll(ctx, filter)
}

func (d Database) GetArticleBySlug(ctx context.Context, slug string) (*models.ArticleWithRelations, error) {
	return d.articleRepo.FindBySlug(ctx, slug)
}

func (d Database) GetArticleBySlugSimple(ctx context.Context, slug string) (*models.Article, error) {
	return d.articleRepo.FindRowBySlug(ctx, slug)
}

func (d Database) ListCategories(ctx context.Context) ([]models.Category, error) {
	return d.categoryRepo.FindAll(ctx)
}

func (d Database) GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	return d.categoryRepo.FindBySlug(ctx, slug)
}

func (d Database) GetAuthorByName(ctx context.Context, name string) (*models.Author, error) {
	return d.authorRepo.FindByName(ctx, name)
}

func (d Database) CreateAuthor(ctx context.Context, author models.NewAuthor) (*models.Author, error) {
	return d.authorRepo.Add(ctx, author)
}

func (d Database) CreateCategory(ctx context.Context, category models.NewCategory) (*models.Category, error) {
	return d.categoryRepo.Add(ctx, category)
}

func (d Database) CreateArticle(ctx context.Context, article models.NewArticle) (*models.Article, error) {
	return d.articleRepo.Add(ctx, article)
}

// Ping checks that the underlying connection pool can reach the database.
func (d Database) Ping(ctx context.Context) error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return fmt.Errorf("getting sql handle: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}
	return nil
}
