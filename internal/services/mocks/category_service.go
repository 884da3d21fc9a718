package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/inventory-catalog/internal/models"
	"github.com/stretchr/testify/mock"
)

type CategoryService struct {
	mock.Mock
}

func (m *CategoryService) category(args mock.Arguments) (*models.Category, error) {
	if c, ok := args.Get(0).(*models.Category); ok {
		return c, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CategoryService) CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error) {
	return m.category(m.Called(ctx, req))
}

func (m *CategoryService) GetCategoryByID(ctx context.Context, id int64) (*models.Category, error) {
	return m.category(m.Called(ctx, id))
}

func (m *CategoryService) GetCategoryByName(ctx context.Context, name string) (*models.Category, error) {
	return m.category(m.Called(ctx, name))
}

func (m *CategoryService) ListCategories(ctx context.Context, window models.WindowParams) ([]*models.Category, error) {
	args := m.Called(ctx, window)
	if categories, ok := args.Get(0).([]*models.Category); ok {
		return categories, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CategoryService) DeleteCategory(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *CategoryService) AddProducts(ctx context.Context, categoryID int64, productIDs []int64) (*models.Category, error) {
	return m.category(m.Called(ctx, categoryID, productIDs))
}

func (m *CategoryService) AddNewProducts(ctx context.Context, categoryID int64, products []*models.CreateProductRequest) (*models.Category, error) {
	return m.category(m.Called(ctx, categoryID, products))
}

func (m *CategoryService) RemoveProducts(ctx context.Context, categoryID int64, productIDs []int64) error {
	return m.Called(ctx, categoryID, productIDs).Error(0)
}
