package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/inventory-catalog/internal/models"
	"github.com/stretchr/testify/mock"
)

type ProductService struct {
	mock.Mock
}

func (m *ProductService) product(args mock.Arguments) (*models.Product, error) {
	if p, ok := args.Get(0).(*models.Product); ok {
		return p, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ProductService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	return m.product(m.Called(ctx, req))
}

func (m *ProductService) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	return m.product(m.Called(ctx, id))
}

func (m *ProductService) GetProductBySKU(ctx context.Context, sku string) (*models.Product, error) {
	return m.product(m.Called(ctx, sku))
}

func (m *ProductService) GetProductByName(ctx context.Context, name string) (*models.Product, error) {
	return m.product(m.Called(ctx, name))
}

func (m *ProductService) ListProducts(ctx context.Context, window models.WindowParams) ([]*models.Product, error) {
	args := m.Called(ctx, window)
	if products, ok := args.Get(0).([]*models.Product); ok {
		return products, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ProductService) UpdateProductByID(ctx context.Context, id int64, req *models.UpdateProductRequest) (*models.Product, error) {
	return m.product(m.Called(ctx, id, req))
}

func (m *ProductService) UpdateProductBySKU(ctx context.Context, sku string, req *models.UpdateProductRequest) (*models.Product, error) {
	return m.product(m.Called(ctx, sku, req))
}

func (m *ProductService) DeleteProductByID(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *ProductService) DeleteProductBySKU(ctx context.Context, sku string) error {
	return m.Called(ctx, sku).Error(0)
}

func (m *ProductService) ListProductCategories(ctx context.Context, id int64) ([]*models.Category, error) {
	args := m.Called(ctx, id)
	if categories, ok := args.Get(0).([]*models.Category); ok {
		return categories, args.Error(1)
	}

	return nil, args.Error(1)
}
