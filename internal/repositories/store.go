package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store groups the repositories that must share a transaction.
type Store interface {
	Products() ProductRepository
	Categories() CategoryRepository
	// WithinTransaction runs fn against a Store bound to one transaction.
	// The transaction commits when fn returns nil and rolls back otherwise.
	WithinTransaction(ctx context.Context, fn func(tx Store) error) error
}

type gormStore struct {
	db         *gorm.DB
	products   ProductRepository
	categories CategoryRepository
}

func NewStore(db *gorm.DB) Store {
	return &gormStore{
		db:         db,
		products:   NewProductRepo(db),
		categories: NewCategoryRepo(db),
	}
}

func (s *gormStore) Products() ProductRepository {
	return s.products
}

func (s *gormStore) Categories() CategoryRepository {
	return s.categories
}

func (s *gormStore) WithinTransaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
