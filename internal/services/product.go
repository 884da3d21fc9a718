package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aaravmahajanofficial/inventory-catalog/internal/cache"
	appErrors "github.com/aaravmahajanofficial/inventory-catalog/internal/errors"
	"github.com/aaravmahajanofficial/inventory-catalog/internal/logging"
	"github.com/aaravmahajanofficial/inventory-catalog/internal/metrics"
	"github.com/aaravmahajanofficial/inventory-catalog/internal/models"
	repository "github.com/aaravmahajanofficial/inventory-catalog/internal/repositories"
	"github.com/aaravmahajanofficial/inventory-catalog/internal/utils"
)

type ProductService interface {
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
	GetProductBySKU(ctx context.Context, sku string) (*models.Product, error)
	GetProductByName(ctx context.Context, name string) (*models.Product, error)
	ListProducts(ctx context.Context, window models.WindowParams) ([]*models.Product, error)
	UpdateProductByID(ctx context.Context, id int64, req *models.UpdateProductRequest) (*models.Product, error)
	UpdateProductBySKU(ctx context.Context, sku string, req *models.UpdateProductRequest) (*models.Product, error)
	DeleteProductByID(ctx context.Context, id int64) error
	DeleteProductBySKU(ctx context.Context, sku string) error
	ListProductCategories(ctx context.Context, id int64) ([]*models.Category, error)
}

type productService struct {
	store repository.Store
	cache cache.Cache
}

// NewProductService builds the product service. A nil cache disables caching.
func NewProductService(store repository.Store, productCache cache.Cache) ProductService {
	if productCache == nil {
		productCache = cache.NewNoopCache()
	}

	return &productService{store: store, cache: productCache}
}

func duplicateSKU(sku string) *appErrors.AppError {
	return appErrors.DuplicateEntryError(fmt.Sprintf("the product sku %s is already existed", sku))
}

// ensureSKUFree fails with a conflict when another product already owns sku.
func ensureSKUFree(ctx context.Context, products repository.ProductRepository, sku string) error {
	_, err := products.FindBySKU(ctx, sku)
	if err == nil {
		return duplicateSKU(sku)
	}

	if isNotFound(err) {
		return nil
	}

	return err
}

func (s *productService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	product := req.ToProduct()

	err := s.store.WithinTransaction(ctx, func(tx repository.Store) error {
		if err := ensureSKUFree(ctx, tx.Products(), product.SKU); err != nil {
			return err
		}

		return tx.Products().Create(ctx, product)
	})
	if err != nil {
		return nil, toAppError(err, duplicateSKU(product.SKU).Message, "Failed to create product")
	}

	return product, nil
}

func (s *productService) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	if product, ok := s.cached(ctx, cache.ProductIDKey(id)); ok {
		return product, nil
	}

	product, err := s.store.Products().FindByID(ctx, id)
	if err != nil {
		return nil, s.lookupError(err, appErrors.ProductNotFound("id", id))
	}

	s.remember(ctx, product)

	return product, nil
}

func (s *productService) GetProductBySKU(ctx context.Context, sku string) (*models.Product, error) {
	if product, ok := s.cached(ctx, cache.ProductSKUKey(sku)); ok {
		return product, nil
	}

	product, err := s.store.Products().FindBySKU(ctx, sku)
	if err != nil {
		return nil, s.lookupError(err, appErrors.ProductNotFound("sku", sku))
	}

	s.remember(ctx, product)

	return product, nil
}

func (s *productService) GetProductByName(ctx context.Context, name string) (*models.Product, error) {
	product, err := s.store.Products().FindByName(ctx, name)
	if err != nil {
		return nil, s.lookupError(err, appErrors.ProductNotFound("name", name))
	}

	return product, nil
}

func (s *productService) ListProducts(ctx context.Context, window models.WindowParams) ([]*models.Product, error) {
	products, err := s.store.Products().FindAll(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch products").WithError(err)
	}

	return utils.Window(products, window.First, window.Last), nil
}

func (s *productService) UpdateProductByID(ctx context.Context, id int64, req *models.UpdateProductRequest) (*models.Product, error) {
	return s.update(ctx, req,
		func(products repository.ProductRepository) (*models.Product, error) { return products.FindByID(ctx, id) },
		func() *appErrors.AppError {
			return appErrors.NotFoundError(fmt.Sprintf("the product id %d is not existed to update it", id))
		},
	)
}

func (s *productService) UpdateProductBySKU(ctx context.Context, sku string, req *models.UpdateProductRequest) (*models.Product, error) {
	return s.update(ctx, req,
		func(products repository.ProductRepository) (*models.Product, error) { return products.FindBySKU(ctx, sku) },
		func() *appErrors.AppError {
			return appErrors.NotFoundError(fmt.Sprintf("the product sku %s is not existed to update it", sku))
		},
	)
}

// update replaces sku and name with the supplied values, keeping stored ones for
// omitted fields. created is preserved and lastUpdated becomes today.
func (s *productService) update(
	ctx context.Context,
	req *models.UpdateProductRequest,
	find func(repository.ProductRepository) (*models.Product, error),
	notFound func() *appErrors.AppError,
) (*models.Product, error) {
	var (
		updated     *models.Product
		previousSKU string
	)

	err := s.store.WithinTransaction(ctx, func(tx repository.Store) error {
		found, err := find(tx.Products())
		if err != nil {
			if isNotFound(err) {
				return notFound().WithError(err)
			}
			return err
		}

		next := &models.Product{
			ID:          found.ID,
			SKU:         found.SKU,
			Name:        found.Name,
			Created:     found.Created,
			LastUpdated: models.Today(),
		}

		if req.SKU != nil {
			next.SKU = *req.SKU
		}
		if req.Name != nil {
			next.Name = *req.Name
		}

		if next.SKU != found.SKU {
			if err := ensureSKUFree(ctx, tx.Products(), next.SKU); err != nil {
				return err
			}
		}

		if err := tx.Products().Save(ctx, next); err != nil {
			if isNotFound(err) {
				return notFound().WithError(err)
			}
			return err
		}

		previousSKU = found.SKU
		updated = next

		return nil
	})
	if err != nil {
		return nil, toAppError(err, "the product sku is already existed", "Failed to update product")
	}

	s.forget(ctx, updated.ID, previousSKU, updated.SKU)

	return updated, nil
}

func (s *productService) DeleteProductByID(ctx context.Context, id int64) error {
	return s.delete(ctx,
		func(products repository.ProductRepository) (*models.Product, error) { return products.FindByID(ctx, id) },
		appErrors.ProductNotFound("id", id),
	)
}

func (s *productService) DeleteProductBySKU(ctx context.Context, sku string) error {
	return s.delete(ctx,
		func(products repository.ProductRepository) (*models.Product, error) { return products.FindBySKU(ctx, sku) },
		appErrors.ProductNotFound("sku", sku),
	)
}

func (s *productService) delete(
	ctx context.Context,
	find func(repository.ProductRepository) (*models.Product, error),
	notFound *appErrors.AppError,
) error {
	var deleted *models.Product

	err := s.store.WithinTransaction(ctx, func(tx repository.Store) error {
		found, err := find(tx.Products())
		if err != nil {
			return err
		}

		if err := tx.Products().Delete(ctx, found); err != nil {
			return err
		}

		deleted = found

		return nil
	})
	if err != nil {
		if isNotFound(err) {
			return notFound.WithError(err)
		}
		return toAppError(err, "", "Failed to delete product")
	}

	s.forget(ctx, deleted.ID, deleted.SKU)

	return nil
}

// ListProductCategories returns every category the product belongs to.
func (s *productService) ListProductCategories(ctx context.Context, id int64) ([]*models.Category, error) {
	if _, err := s.store.Products().FindByID(ctx, id); err != nil {
		return nil, s.lookupError(err, appErrors.ProductNotFound("id", id))
	}

	categories, err := s.store.Categories().FindByProduct(ctx, id)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch categories").WithError(err)
	}

	return categories, nil
}

func (s *productService) lookupError(err error, notFound *appErrors.AppError) error {
	if isNotFound(err) {
		return notFound.WithError(err)
	}

	return appErrors.DatabaseError("Failed to fetch product").WithError(err)
}

func (s *productService) cached(ctx context.Context, key string) (*models.Product, bool) {
	var product models.Product

	found, err := s.cache.Get(ctx, key, &product)
	if err != nil {
		metrics.ObserveProductCache("error")
		logging.FromContext(ctx).Warn("Product cache read failed", slog.String("key", key), slog.Any("error", err))
		return nil, false
	}

	if !found {
		metrics.ObserveProductCache("miss")
		return nil, false
	}

	metrics.ObserveProductCache("hit")

	return &product, true
}

func (s *productService) remember(ctx context.Context, product *models.Product) {
	for _, key := range []string{cache.ProductIDKey(product.ID), cache.ProductSKUKey(product.SKU)} {
		if err := s.cache.Set(ctx, key, product, 0); err != nil {
			logging.FromContext(ctx).Warn("Product cache write failed", slog.String("key", key), slog.Any("error", err))
		}
	}
}

func (s *productService) forget(ctx context.Context, id int64, skus ...string) {
	keys := []string{cache.ProductIDKey(id)}
	for _, sku := range skus {
		keys = append(keys, cache.ProductSKUKey(sku))
	}

	if err := s.cache.Delete(ctx, keys...); err != nil {
		logging.FromContext(ctx).Warn("Product cache eviction failed", slog.Any("keys", keys), slog.Any("error", err))
	}
}
