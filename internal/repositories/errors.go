package repository

import (
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

var (
	// ErrProductNotFound is returned when a product lookup matches no row.
	ErrProductNotFound = errors.New("product not found")
	// ErrCategoryNotFound is returned when a category lookup matches no row.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrDuplicateEntry is returned when a write violates a unique natural key.
	ErrDuplicateEntry = errors.New("duplicate entry")
)

const uniqueViolation = "23505"

func translateError(err error, notFound error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errors.Join(ErrDuplicateEntry, err)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return errors.Join(ErrDuplicateEntry, err)
	}

	return err
}
