package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/inventory-catalog/internal/models"
	"github.com/stretchr/testify/mock"
)

type CategoryRepository struct {
	mock.Mock
}

func (m *CategoryRepository) category(args mock.Arguments) (*models.Category, error) {
	if c, ok := args.Get(0).(*models.Category); ok {
		return c, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CategoryRepository) categories(args mock.Arguments) ([]*models.Category, error) {
	if c, ok := args.Get(0).([]*models.Category); ok {
		return c, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CategoryRepository) FindByID(ctx context.Context, id int64) (*models.Category, error) {
	return m.category(m.Called(ctx, id))
}

func (m *CategoryRepository) FindByName(ctx context.Context, name string) (*models.Category, error) {
	return m.category(m.Called(ctx, name))
}

func (m *CategoryRepository) FindAll(ctx context.Context) ([]*models.Category, error) {
	return m.categories(m.Called(ctx))
}

func (m *CategoryRepository) FindByProduct(ctx context.Context, productID int64) ([]*models.Category, error) {
	return m.categories(m.Called(ctx, productID))
}

func (m *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *CategoryRepository) SaveAndFlush(ctx context.Context, category *models.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *CategoryRepository) Delete(ctx context.Context, category *models.Category) error {
	return m.Called(ctx, category).Error(0)
}
