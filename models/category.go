package models

import "github.com/rpupo63/editorial-backend/errs"

// Category groups articles. Slug is the public identifier used in URLs and filters.
type Category struct {
	ID          int64   `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Name        string  `json:"name" db:"name" gorm:"type:text;not null"`
	Slug        string  `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex:idx_categories_slug"`
	Description *string `json:"description" db:"description" gorm:"type:text"`
}

func (Category) TableName() string { return "categories" }

// NewCategory is the insertable shape of a Category.
type NewCategory struct {
	Name        string  `json:"name" yaml:"name"`
	Slug        string  `json:"slug" yaml:"slug"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
}

func (c NewCategory) Validate() error {
	if isBlank(c.Name) {
		return errs.NewMissingRequiredFieldError("name")
	}
	return validateSlug(c.Slug)
}

func (c NewCategory) Model() Category {
	return Category{
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
	}
}
