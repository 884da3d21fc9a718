package repository

import (
	"context"
	"fmt"

	"github.com/aaravmahajanofficial/inventory-catalog/internal/models"
	"gorm.io/gorm"
)

type ProductRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Product, error)
	FindBySKU(ctx context.Context, sku string) (*models.Product, error)
	FindByName(ctx context.Context, name string) (*models.Product, error)
	FindAll(ctx context.Context) ([]*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Save(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, product *models.Product) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) FindByID(ctx context.Context, id int64) (*models.Product, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *productRepository) FindBySKU(ctx context.Context, sku string) (*models.Product, error) {
	return r.findOne(ctx, "sku = ?", sku)
}

func (r *productRepository) FindByName(ctx context.Context, name string) (*models.Product, error) {
	return r.findOne(ctx, "name = ?", name)
}

func (r *productRepository) findOne(ctx context.Context, query string, arg any) (*models.Product, error) {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	var product models.Product
	if err := r.db.WithContext(dbCtx).Where(query, arg).First(&product).Error; err != nil {
		return nil, translateError(err, ErrProductNotFound)
	}

	return &product, nil
}

// FindAll returns every product in insertion order.
func (r *productRepository) FindAll(ctx context.Context) ([]*models.Product, error) {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	products := []*models.Product{}
	if err := r.db.WithContext(dbCtx).Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}

	return products, nil
}

func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	return translateError(r.db.WithContext(dbCtx).Create(product).Error, ErrProductNotFound)
}

// Save writes every column of an existing product before returning.
func (r *productRepository) Save(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	result := r.db.WithContext(dbCtx).Model(product).Select("*").Omit("id").Updates(product)
	if result.Error != nil {
		return translateError(result.Error, ErrProductNotFound)
	}

	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}

// Delete removes the product's category memberships and then the product itself.
func (r *productRepository) Delete(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	return r.db.WithContext(dbCtx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", product.ID).Delete(&categoryProduct{}).Error; err != nil {
			return fmt.Errorf("clearing product memberships: %w", err)
		}

		result := tx.Delete(&models.Product{}, product.ID)
		if result.Error != nil {
			return fmt.Errorf("deleting product: %w", result.Error)
		}

		if result.RowsAffected == 0 {
			return ErrProductNotFound
		}

		return nil
	})
}
