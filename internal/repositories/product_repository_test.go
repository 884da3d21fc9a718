package repository_test

import (
	"testing"
	"time"

	"github.com/aaravmahajanofficial/inventory-catalog/internal/models"
	repository "github.com/aaravmahajanofficial/inventory-catalog/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProductRepo(t *testing.T) {
	repo := repository.NewProductRepo(newTestDB(t))
	assert.NotNil(t, repo, "NewProductRepo should return a non-nil repository")
}

func TestProductRepository(t *testing.T) {
	ctx := t.Context()

	t.Run("Create assigns an id", func(t *testing.T) {
		// Arrange
		repo := newTestStore(t).Products()
		product := &models.Product{SKU: "sku1", Name: "p1", Created: models.NewDate(2016, time.August, 17), LastUpdated: models.NewDate(2016, time.August, 17)}

		// Act
		err := repo.Create(ctx, product)

		// Assert
		require.NoError(t, err)
		assert.NotZero(t, product.ID)
	})

	t.Run("FindBySKU returns an equal product", func(t *testing.T) {
		// Arrange
		repo := newTestStore(t).Products()
		products := []*models.Product{
			{SKU: "sku1", Name: "p1", Created: models.NewDate(2016, time.August, 17), LastUpdated: models.NewDate(2016, time.August, 18)},
			{SKU: "sku2", Name: "p2", Created: models.NewDate(2016, time.August, 19), LastUpdated: models.NewDate(2016, time.August, 19)},
		}
		for _, p := range products {
			require.NoError(t, repo.Create(ctx, p))
		}

		// Act
		found, err := repo.FindBySKU(ctx, "sku1")

		// Assert
		require.NoError(t, err)
		assert.True(t, found.Equal(products[0]))
		assert.Equal(t, products[0].ID, found.ID)
		assert.Equal(t, "2016-08-17", found.Created.String())
		assert.Equal(t, "2016-08-18", found.LastUpdated.String())
	})

	t.Run("FindByID and FindByName", func(t *testing.T) {
		// Arrange
		repo := newTestStore(t).Products()
		product := &models.Product{SKU: "sku3", Name: "p3", Created: models.NewDate(2016, time.August, 1), LastUpdated: models.NewDate(2016, time.August, 1)}
		require.NoError(t, repo.Create(ctx, product))

		// Act
		byID, errID := repo.FindByID(ctx, product.ID)
		byName, errName := repo.FindByName(ctx, "p3")

		// Assert
		require.NoError(t, errID)
		require.NoError(t, errName)
		assert.Equal(t, "sku3", byID.SKU)
		assert.Equal(t, product.ID, byName.ID)
	})

	t.Run("Lookups miss with ErrProductNotFound", func(t *testing.T) {
		// Arrange
		repo := newTestStore(t).Products()

		// Act
		_, errID := repo.FindByID(ctx, 100)
		_, errSKU := repo.FindBySKU(ctx, "missing")
		_, errName := repo.FindByName(ctx, "missing")

		// Assert
		assert.ErrorIs(t, errID, repository.ErrProductNotFound)
		assert.ErrorIs(t, errSKU, repository.ErrProductNotFound)
		assert.ErrorIs(t, errName, repository.ErrProductNotFound)
	})

	t.Run("FindAll keeps insertion order", func(t *testing.T) {
		// Arrange
		repo := newTestStore(t).Products()
		for _, sku := range []string{"sku1", "sku2", "sku3", "sku4"} {
			require.NoError(t, repo.Create(ctx, &models.Product{SKU: sku, Name: "name-" + sku, Created: models.Today(), LastUpdated: models.Today()}))
		}

		// Act
		products, err := repo.FindAll(ctx)

		// Assert
		require.NoError(t, err)
		require.Len(t, products, 4)
		for i, sku := range []string{"sku1", "sku2", "sku3", "sku4"} {
			assert.Equal(t, sku, products[i].SKU)
		}
	})

	t.Run("FindAll on an empty table", func(t *testing.T) {
		repo := newTestStore(t).Products()

		products, err := repo.FindAll(ctx)

		require.NoError(t, err)
		assert.NotNil(t, products)
		assert.Empty(t, products)
	})

	t.Run("Save replaces every column", func(t *testing.T) {
		// Arrange
		repo := newTestStore(t).Products()
		product := &models.Product{SKU: "sku1", Name: "p1", Created: models.NewDate(2016, time.August, 1), LastUpdated: models.NewDate(2016, time.August, 1)}
		require.NoError(t, repo.Create(ctx, product))

		updated := &models.Product{ID: product.ID, SKU: "sku1", Name: "renamed", Created: product.Created, LastUpdated: models.NewDate(2016, time.September, 1)}

		// Act
		err := repo.Save(ctx, updated)

		// Assert
		require.NoError(t, err)
		found, err := repo.FindByID(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, "renamed", found.Name)
		assert.Equal(t, "2016-08-01", found.Created.String())
		assert.Equal(t, "2016-09-01", found.LastUpdated.String())
	})

	t.Run("Save of an unknown product", func(t *testing.T) {
		repo := newTestStore(t).Products()

		err := repo.Save(ctx, &models.Product{ID: 42, SKU: "x", Name: "x", Created: models.Today(), LastUpdated: models.Today()})

		assert.ErrorIs(t, err, repository.ErrProductNotFound)
	})

	t.Run("Delete removes the product and its memberships", func(t *testing.T) {
		// Arrange
		store := newTestStore(t)
		product := &models.Product{SKU: "sku1", Name: "p1", Created: models.Today(), LastUpdated: models.Today()}
		require.NoError(t, store.Products().Create(ctx, product))

		category := &models.Category{Name: "cat1", Created: models.Today(), LastUpdated: models.Today()}
		require.NoError(t, store.Categories().Create(ctx, category))
		category.AddProduct(product)
		require.NoError(t, store.Categories().SaveAndFlush(ctx, category))

		// Act
		err := store.Products().Delete(ctx, product)

		// Assert
		require.NoError(t, err)
		_, err = store.Products().FindByID(ctx, product.ID)
		assert.ErrorIs(t, err, repository.ErrProductNotFound)

		reloaded, err := store.Categories().FindByID(ctx, category.ID)
		require.NoError(t, err)
		assert.Empty(t, reloaded.Products)
	})

	t.Run("Delete of an unknown product", func(t *testing.T) {
		repo := newTestStore(t).Products()

		err := repo.Delete(ctx, &models.Product{ID: 7})

		assert.ErrorIs(t, err, repository.ErrProductNotFound)
	})
}
