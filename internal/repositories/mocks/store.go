package mocks

import (
	"context"

	repository "github.com/aaravmahajanofficial/inventory-catalog/internal/repositories"
	"github.com/stretchr/testify/mock"
)

// Store is a testify mock of repository.Store. WithinTransaction runs the
// callback against the same mock unless an error is configured for it.
type Store struct {
	mock.Mock
	ProductRepo  *ProductRepository
	CategoryRepo *CategoryRepository
}

func NewStore() *Store {
	return &Store{ProductRepo: new(ProductRepository), CategoryRepo: new(CategoryRepository)}
}

func (m *Store) Products() repository.ProductRepository {
	return m.ProductRepo
}

func (m *Store) Categories() repository.CategoryRepository {
	return m.CategoryRepo
}

func (m *Store) WithinTransaction(ctx context.Context, fn func(tx repository.Store) error) error {
	if len(m.ExpectedCalls) > 0 {
		if err := m.Called(ctx).Error(0); err != nil {
			return err
		}
	}

	return fn(m)
}

// AssertExpectations checks the store and both repositories.
func (m *Store) AssertExpectations(t mock.TestingT) bool {
	return m.Mock.AssertExpectations(t) &&
		m.ProductRepo.AssertExpectations(t) &&
		m.CategoryRepo.AssertExpectations(t)
}
