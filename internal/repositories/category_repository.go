package repository

import (
	"context"
	"fmt"

	"github.com/aaravmahajanofficial/inventory-catalog/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// categoryProduct is a row of the category/product association table.
type categoryProduct struct {
	CategoryID int64 `gorm:"primaryKey"`
	ProductID  int64 `gorm:"primaryKey"`
}

func (categoryProduct) TableName() string {
	return "category_product"
}

type CategoryRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Category, error)
	FindByName(ctx context.Context, name string) (*models.Category, error)
	FindAll(ctx context.Context) ([]*models.Category, error)
	FindByProduct(ctx context.Context, productID int64) ([]*models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	SaveAndFlush(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, category *models.Category) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func preloadProducts(db *gorm.DB) *gorm.DB {
	return db.Preload("Products", func(db *gorm.DB) *gorm.DB {
		return db.Order("products.id")
	})
}

func (r *categoryRepository) FindByID(ctx context.Context, id int64) (*models.Category, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *categoryRepository) FindByName(ctx context.Context, name string) (*models.Category, error) {
	return r.findOne(ctx, "name = ?", name)
}

func (r *categoryRepository) findOne(ctx context.Context, query string, arg any) (*models.Category, error) {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	var category models.Category
	if err := preloadProducts(r.db.WithContext(dbCtx)).Where(query, arg).First(&category).Error; err != nil {
		return nil, translateError(err, ErrCategoryNotFound)
	}

	if category.Products == nil {
		category.Products = []*models.Product{}
	}

	return &category, nil
}

// FindAll returns every category, with its products, in insertion order.
func (r *categoryRepository) FindAll(ctx context.Context) ([]*models.Category, error) {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	categories := []*models.Category{}
	if err := preloadProducts(r.db.WithContext(dbCtx)).Order("id").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("querying categories: %w", err)
	}

	normalizeProducts(categories)

	return categories, nil
}

// FindByProduct returns the categories the product belongs to.
func (r *categoryRepository) FindByProduct(ctx context.Context, productID int64) ([]*models.Category, error) {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	categories := []*models.Category{}
	err := preloadProducts(r.db.WithContext(dbCtx)).
		Select("categories.*").
		Joins("JOIN category_product ON category_product.category_id = categories.id").
		Where("category_product.product_id = ?", productID).
		Order("categories.id").
		Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("querying categories of product %d: %w", productID, err)
	}

	normalizeProducts(categories)

	return categories, nil
}

// Create inserts the category row only; memberships are written by SaveAndFlush.
func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	return translateError(r.db.WithContext(dbCtx).Omit(clause.Associations).Create(category).Error, ErrCategoryNotFound)
}

// SaveAndFlush writes the category row and replaces its membership rows with
// the ids currently in category.Products. Products are never written through
// the category; new products must already be persisted.
func (r *categoryRepository) SaveAndFlush(ctx context.Context, category *models.Category) error {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	return r.db.WithContext(dbCtx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(category).Omit(clause.Associations).Select("name", "created", "last_updated").Updates(category)
		if result.Error != nil {
			return translateError(result.Error, ErrCategoryNotFound)
		}

		if result.RowsAffected == 0 {
			return ErrCategoryNotFound
		}

		if err := tx.Where("category_id = ?", category.ID).Delete(&categoryProduct{}).Error; err != nil {
			return fmt.Errorf("clearing category memberships: %w", err)
		}

		if len(category.Products) == 0 {
			return nil
		}

		rows := make([]categoryProduct, 0, len(category.Products))
		for _, id := range category.ProductIDs() {
			rows = append(rows, categoryProduct{CategoryID: category.ID, ProductID: id})
		}

		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("writing category memberships: %w", err)
		}

		return nil
	})
}

// Delete clears the category's memberships and removes the category.
// Products are left untouched.
func (r *categoryRepository) Delete(ctx context.Context, category *models.Category) error {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	return r.db.WithContext(dbCtx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", category.ID).Delete(&categoryProduct{}).Error; err != nil {
			return fmt.Errorf("clearing category memberships: %w", err)
		}

		result := tx.Delete(&models.Category{}, category.ID)
		if result.Error != nil {
			return fmt.Errorf("deleting category: %w", result.Error)
		}

		if result.RowsAffected == 0 {
			return ErrCategoryNotFound
		}

		return nil
	})
}

func normalizeProducts(categories []*models.Category) {
	for _, c := range categories {
		if c.Products == nil {
			c.Products = []*models.Product{}
		}
	}
}
