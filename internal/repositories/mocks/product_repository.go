package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/inventory-catalog/internal/models"
	"github.com/stretchr/testify/mock"
)

type ProductRepository struct {
	mock.Mock
}

func (m *ProductRepository) product(args mock.Arguments) (*models.Product, error) {
	if p, ok := args.Get(0).(*models.Product); ok {
		return p, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ProductRepository) FindByID(ctx context.Context, id int64) (*models.Product, error) {
	return m.product(m.Called(ctx, id))
}

func (m *ProductRepository) FindBySKU(ctx context.Context, sku string) (*models.Product, error) {
	return m.product(m.Called(ctx, sku))
}

func (m *ProductRepository) FindByName(ctx context.Context, name string) (*models.Product, error) {
	return m.product(m.Called(ctx, name))
}

func (m *ProductRepository) FindAll(ctx context.Context) ([]*models.Product, error) {
	args := m.Called(ctx)
	if products, ok := args.Get(0).([]*models.Product); ok {
		return products, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *ProductRepository) Save(ctx context.Context, product *models.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *ProductRepository) Delete(ctx context.Context, product *models.Product) error {
	return m.Called(ctx, product).Error(0)
}
