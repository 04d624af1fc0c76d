package database

import (
	"errors"

	"github.com/rpupo63/editorial-backend/errs"
	"gorm.io/gorm"
)

// insertError maps a failed insert onto the errs taxonomy.
// field names the unique column a duplicate key refers to.
func insertError(entity, field string, err error) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errs.NewUniqueConstraintViolationError(entity, field, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return errs.NewForeignKeyConstraintError(entity, err)
	}
	return errs.NewDatabaseFieldError("create", entity, field, err)
}

// notFound reports whether err is gorm's "no rows" outcome, which lookups turn into a nil result.
func notFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
