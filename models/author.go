package models

import "github.com/rpupo63/editorial-backend/errs"

// Author is the writer credited on articles. Names are not unique.
type Author struct {
	ID        int64   `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Name      string  `json:"name" db:"name" gorm:"type:text;not null;index:idx_authors_name"`
	Bio       *string `json:"bio" db:"bio" gorm:"type:text"`
	AvatarURL *string `json:"avatarUrl" db:"avatar_url" gorm:"column:avatar_url;type:text"`
}

func (Author) TableName() string { return "authors" }

// NewAuthor is the insertable shape of an Author.
type NewAuthor struct {
	Name      string  `json:"name" yaml:"name"`
	Bio       *string `json:"bio,omitempty" yaml:"bio,omitempty"`
	AvatarURL *string `json:"avatarUrl,omitempty" yaml:"avatarUrl,omitempty"`
}

func (a NewAuthor) Validate() error {
	if isBlank(a.Name) {
		return errs.NewMissingRequiredFieldError("name")
	}
	if err := validateURL("avatarUrl", a.AvatarURL); err != nil {
		return err
	}
	return nil
}

func (a NewAuthor) Model() Author {
	return Author{
		Name:      a.Name,
		Bio:       a.Bio,
		AvatarURL: a.AvatarURL,
	}
}
