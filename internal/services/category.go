package service

import (
	"context"
	"fmt"

	appErrors "github.com/aaravmahajanofficial/inventory-catalog/internal/errors"
	"github.com/aaravmahajanofficial/inventory-catalog/internal/models"
	repository "github.com/aaravmahajanofficial/inventory-catalog/internal/repositories"
	"github.com/aaravmahajanofficial/inventory-catalog/internal/utils"
)

type CategoryService interface {
	CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error)
	GetCategoryByID(ctx context.Context, id int64) (*models.Category, error)
	GetCategoryByName(ctx context.Context, name string) (*models.Category, error)
	ListCategories(ctx context.Context, window models.WindowParams) ([]*models.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
	AddProducts(ctx context.Context, categoryID int64, productIDs []int64) (*models.Category, error)
	AddNewProducts(ctx context.Context, categoryID int64, products []*models.CreateProductRequest) (*models.Category, error)
	RemoveProducts(ctx context.Context, categoryID int64, productIDs []int64) error
}

type categoryService struct {
	store repository.Store
}

func NewCategoryService(store repository.Store) CategoryService {
	return &categoryService{store: store}
}

func duplicateCategory(name string) *appErrors.AppError {
	return appErrors.DuplicateEntryError(fmt.Sprintf("the category name %s is already existed", name))
}

func (s *categoryService) CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error) {
	category := req.ToCategory()

	err := s.store.WithinTransaction(ctx, func(tx repository.Store) error {
		_, err := tx.Categories().FindByName(ctx, category.Name)
		if err == nil {
			return duplicateCategory(category.Name)
		}
		if !isNotFound(err) {
			return err
		}

		return tx.Categories().Create(ctx, category)
	})
	if err != nil {
		return nil, toAppError(err, duplicateCategory(category.Name).Message, "Failed to create category")
	}

	return category, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, id int64) (*models.Category, error) {
	category, err := s.store.Categories().FindByID(ctx, id)
	if err != nil {
		return nil, categoryLookupError(err, appErrors.CategoryNotFound("id", id))
	}

	return category, nil
}

func (s *categoryService) GetCategoryByName(ctx context.Context, name string) (*models.Category, error) {
	category, err := s.store.Categories().FindByName(ctx, name)
	if err != nil {
		return nil, categoryLookupError(err, appErrors.CategoryNotFound("name", name))
	}

	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context, window models.WindowParams) ([]*models.Category, error) {
	categories, err := s.store.Categories().FindAll(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch categories").WithError(err)
	}

	return utils.Window(categories, window.First, window.Last), nil
}

// DeleteCategory removes the category and its memberships. Member products are kept.
func (s *categoryService) DeleteCategory(ctx context.Context, id int64) error {
	err := s.store.WithinTransaction(ctx, func(tx repository.Store) error {
		category, err := tx.Categories().FindByID(ctx, id)
		if err != nil {
			return err
		}

		return tx.Categories().Delete(ctx, category)
	})
	if err != nil {
		if isNotFound(err) {
			return appErrors.NotFoundError(fmt.Sprintf("the category id %d is not existed to be deleted", id)).WithError(err)
		}
		return toAppError(err, "", "Failed to delete category")
	}

	return nil
}

// AddProducts attaches existing products to the category. Products already in
// the category are skipped, and any unknown id aborts the whole operation.
func (s *categoryService) AddProducts(ctx context.Context, categoryID int64, productIDs []int64) (*models.Category, error) {
	var category *models.Category

	err := s.store.WithinTransaction(ctx, func(tx repository.Store) error {
		found, err := findCategory(ctx, tx, categoryID)
		if err != nil {
			return err
		}

		for _, id := range productIDs {
			product, err := tx.Products().FindByID(ctx, id)
			if err != nil {
				if isNotFound(err) {
					return appErrors.ProductNotFound("id", id).WithError(err)
				}
				return err
			}

			found.AddProduct(product)
		}

		found.LastUpdated = models.Today()

		if err := tx.Categories().SaveAndFlush(ctx, found); err != nil {
			return err
		}

		category = found

		return nil
	})
	if err != nil {
		return nil, toAppError(err, "", "Failed to add products to category")
	}

	return category, nil
}

// AddNewProducts creates the given products and attaches them to the category.
// An empty list returns the category untouched.
func (s *categoryService) AddNewProducts(ctx context.Context, categoryID int64, products []*models.CreateProductRequest) (*models.Category, error) {
	if len(products) == 0 {
		return s.GetCategoryByID(ctx, categoryID)
	}

	var category *models.Category

	err := s.store.WithinTransaction(ctx, func(tx repository.Store) error {
		found, err := findCategory(ctx, tx, categoryID)
		if err != nil {
			return err
		}

		for _, req := range products {
			product := req.ToProduct()

			if found.HasProduct(product) {
				continue
			}

			if err := ensureSKUFree(ctx, tx.Products(), product.SKU); err != nil {
				return err
			}

			if err := tx.Products().Create(ctx, product); err != nil {
				return err
			}

			found.AddProduct(product)
		}

		found.LastUpdated = models.Today()

		if err := tx.Categories().SaveAndFlush(ctx, found); err != nil {
			return err
		}

		category = found

		return nil
	})
	if err != nil {
		return nil, toAppError(err, "the product sku is already existed", "Failed to add new products to category")
	}

	return category, nil
}

// RemoveProducts detaches products from the category. Every id must name an
// existing product that is currently a member, otherwise nothing is removed.
func (s *categoryService) RemoveProducts(ctx context.Context, categoryID int64, productIDs []int64) error {
	err := s.store.WithinTransaction(ctx, func(tx repository.Store) error {
		category, err := findCategory(ctx, tx, categoryID)
		if err != nil {
			return err
		}

		for _, id := range productIDs {
			product, err := tx.Products().FindByID(ctx, id)
			if err != nil {
				if isNotFound(err) {
					return appErrors.NotFoundError(fmt.Sprintf("the product id %d is not existed in the store", id)).WithError(err)
				}
				return err
			}

			if !category.RemoveProduct(product) {
				return appErrors.NotFoundError(fmt.Sprintf("the product id %d is not existed in the category whose name %s", id, category.Name))
			}
		}

		category.LastUpdated = models.Today()

		return tx.Categories().SaveAndFlush(ctx, category)
	})

	return toAppError(err, "", "Failed to remove products from category")
}

func findCategory(ctx context.Context, tx repository.Store, id int64) (*models.Category, error) {
	category, err := tx.Categories().FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, appErrors.CategoryNotFound("id", id).WithError(err)
		}
		return nil, err
	}

	return category, nil
}

func categoryLookupError(err error, notFound *appErrors.AppError) error {
	if isNotFound(err) {
		return notFound.WithError(err)
	}

	return appErrors.DatabaseError("Failed to fetch category").WithError(err)
}
