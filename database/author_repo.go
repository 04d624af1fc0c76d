package database

import (
	"context"

	"github.com/rpupo63/editorial-backend/errs"
	"github.com/rpupo63/editorial-backend/models"
	"gorm.io/gorm"
)

type AuthorRepo struct {
	db *gorm.DB
}

func NewAuthorRepo(db *gorm.DB) *AuthorRepo {
	return &AuthorRepo{db}
}

// FindByName returns the author with the given name. Names are not unique,
// so the lowest id wins.
func (r *AuthorRepo) FindByName(ctx context.Context, name string) (*models.Author, error) {
	var author models.Author
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		Order("id ASC").
		Take(&author).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.NewDatabaseError("find", "author", err)
	}
	return &author, nil
}

// Add inserts a new author and returns the stored row
func (r *AuthorRepo) Add(ctx context.Context, in models.NewAuthor) (*models.Author, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	author := in.Model()
	if err := r.db.WithContext(ctx).Create(&author).Error; err != nil {
		return nil, insertError("author", "name", err)
	}
	return &author, nil
}
