package database

import (
	"context"

	"github.com/rpupo63/editorial-backend/errs"
	"github.com/rpupo63/editorial-backend/models"
	"gorm.io/gorm"
)

type CategoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{db}
}

// FindAll returns every category ordered by id
func (r *CategoryRepo) FindAll(ctx context.Context) ([]models.Category, error) {
	categories := make([]models.Category, 0)
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&categories).Error; err != nil {
		return nil, errs.NewDatabaseError("find", "categories", err)
	}
	return categories, nil
}

// FindBySlug returns the category with the given slug, or nil
func (r *CategoryRepo) FindBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).Where("slug = ?", slug).Take(&category).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.NewDatabaseError("find", "category", err)
	}
	return &category, nil
}

// Add inserts a new category and returns the stored row
func (r *CategoryRepo) Add(ctx context.Context, in models.NewCategory) (*models.Category, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	category := in.Model()
	if err := r.db.WithContext(ctx).Create(&category).Error; err != nil {
		return nil, insertError("category", "slug", err)
	}
	return &category, nil
}
