package service

import (
	"errors"

	appErrors "github.com/aaravmahajanofficial/inventory-catalog/internal/errors"
	repository "github.com/aaravmahajanofficial/inventory-catalog/internal/repositories"
)

// toAppError passes AppErrors through and classifies repository failures.
// duplicate is used when the write hit a unique constraint.
func toAppError(err error, duplicate string, operation string) error {
	if err == nil {
		return nil
	}

	if _, ok := appErrors.IsAppError(err); ok {
		return err
	}

	if errors.Is(err, repository.ErrDuplicateEntry) {
		return appErrors.DuplicateEntryError(duplicate).WithError(err)
	}

	return appErrors.DatabaseError(operation).WithError(err)
}

func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrProductNotFound) || errors.Is(err, repository.ErrCategoryNotFound)
}
