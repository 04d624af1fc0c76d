package models

import (
	"time"

	"github.com/rpupo63/editorial-backend/errs"
)

// Article is the bare persisted row, with no relations attached.
type Article struct {
	ID            int64     `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Title         string    `json:"title" db:"title" gorm:"type:text;not null"`
	Slug          string    `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex:idx_articles_slug"`
	Summary       string    `json:"summary" db:"summary" gorm:"type:text;not null"`
	Content       string    `json:"content" db:"content" gorm:"type:text;not null"`
	CoverImageURL *string   `json:"coverImageUrl" db:"cover_image_url" gorm:"column:cover_image_url;type:text"`
	AuthorID      *int64    `json:"authorId" db:"author_id" gorm:"index:idx_articles_author_id"`
	CategoryID    *int64    `json:"categoryId" db:"category_id" gorm:"index:idx_articles_category_id"`
	IsFeatured    bool      `json:"isFeatured" db:"is_featured" gorm:"not null;default:false"`
	ReadTime      *int      `json:"readTime" db:"read_time"`
	PublishedAt   time.Time `json:"publishedAt" db:"published_at" gorm:"not null;default:CURRENT_TIMESTAMP;index:idx_articles_published_at"`
}

func (Article) TableName() string { return "articles" }

// ArticleWithRelations is an Article with its resolved Author and Category.
// Either relation is nil when the article does not reference one.
// It also owns the foreign keys of the articles table during migration.
type ArticleWithRelations struct {
	Article
	Author   *Author   `json:"author" gorm:"foreignKey:AuthorID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Category *Category `json:"category" gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (ArticleWithRelations) TableName() string { return "articles" }

// NewArticle is the insertable shape of an Article. ID and PublishedAt are assigned by storage.
type NewArticle struct {
	Title         string  `json:"title" yaml:"title"`
	Slug          string  `json:"slug" yaml:"slug"`
	Summary       string  `json:"summary" yaml:"summary"`
	Content       string  `json:"content" yaml:"content"`
	CoverImageURL *string `json:"coverImageUrl,omitempty" yaml:"coverImageUrl,omitempty"`
	AuthorID      *int64  `json:"authorId,omitempty" yaml:"-"`
	CategoryID    *int64  `json:"categoryId,omitempty" yaml:"-"`
	IsFeatured    bool    `json:"isFeatured" yaml:"isFeatured"`
	ReadTime      *int    `json:"readTime,omitempty" yaml:"readTime,omitempty"`
}

func (a NewArticle) Validate() error {
	switch {
	case isBlank(a.Title):
		return errs.NewMissingRequiredFieldError("title")
	case isBlank(a.Summary):
		return errs.NewMissingRequiredFieldError("summary")
	case isBlank(a.Content):
		return errs.NewMissingRequiredFieldError("content")
	}
	if err := validateSlug(a.Slug); err != nil {
		return err
	}
	if err := validateURL("coverImageUrl", a.CoverImageURL); err != nil {
		return err
	}
	if a.ReadTime != nil && *a.ReadTime < 0 {
		return errs.NewInvalidFieldError("readTime", "must not be negative")
	}
	if a.AuthorID != nil && *a.AuthorID <= 0 {
		return errs.NewInvalidFieldError("authorId", "must be a positive id")
	}
	if a.CategoryID != nil && *a.CategoryID <= 0 {
		return errs.NewInvalidFieldError("categoryId", "must be a positive id")
	}
	return nil
}

// Model converts the insert shape into a row stamped with publishedAt.
func (a NewArticle) Model(publishedAt time.Time) Article {
	return Article{
		Title:         a.Title,
		Slug:          a.Slug,
		Summary:       a.Summary,
		Content:       a.Content,
		CoverImageURL: a.CoverImageURL,
		AuthorID:      a.AuthorID,
		CategoryID:    a.CategoryID,
		IsFeatured:    a.IsFeatured,
		ReadTime:      a.ReadTime,
		PublishedAt:   publishedAt,
	}
}
