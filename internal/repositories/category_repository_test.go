package repository_test

import (
	"testing"
	"time"

	"github.com/aaravmahajanofficial/inventory-catalog/internal/models"
	repository "github.com/aaravmahajanofficial/inventory-catalog/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProducts(t *testing.T, store repository.Store, skus ...string) []*models.Product {
	t.Helper()

	products := make([]*models.Product, 0, len(skus))
	for _, sku := range skus {
		p := &models.Product{SKU: sku, Name: "name-" + sku, Created: models.Today(), LastUpdated: models.Today()}
		require.NoError(t, store.Products().Create(t.Context(), p))
		products = append(products, p)
	}

	return products
}

func TestCategoryRepository(t *testing.T) {
	ctx := t.Context()

	t.Run("FindByID keeps the stored dates", func(t *testing.T) {
		// Arrange
		repo := newTestStore(t).Categories()
		cat1 := &models.Category{Name: "cat1", Created: models.DateOf(time.Now().AddDate(0, 0, -3)), LastUpdated: models.DateOf(time.Now().AddDate(0, 0, -3))}
		cat2 := &models.Category{Name: "cat2", Created: models.DateOf(time.Now().AddDate(0, 0, -2)), LastUpdated: models.DateOf(time.Now().AddDate(0, 0, -2))}
		require.NoError(t, repo.Create(ctx, cat1))
		require.NoError(t, repo.Create(ctx, cat2))

		// Act
		found1, err1 := repo.FindByID(ctx, cat1.ID)
		found2, err2 := repo.FindByID(ctx, cat2.ID)
		_, errMissing := repo.FindByID(ctx, 100)

		// Assert
		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.Equal(t, "cat1", found1.Name)
		assert.True(t, cat1.Created.Equal(found1.Created))
		assert.True(t, cat1.LastUpdated.Equal(found1.LastUpdated))
		assert.Equal(t, "cat2", found2.Name)
		assert.True(t, cat2.Created.Equal(found2.Created))
		assert.NotNil(t, found1.Products)
		assert.Empty(t, found1.Products)
		assert.ErrorIs(t, errMissing, repository.ErrCategoryNotFound)
	})

	t.Run("FindByName", func(t *testing.T) {
		// Arrange
		repo := newTestStore(t).Categories()
		require.NoError(t, repo.Create(ctx, &models.Category{Name: "cat3", Created: models.Today(), LastUpdated: models.Today()}))

		// Act
		found, err := repo.FindByName(ctx, "cat3")
		_, errMissing := repo.FindByName(ctx, "cat7")

		// Assert
		require.NoError(t, err)
		assert.True(t, found.Equal(&models.Category{Name: "cat3"}))
		assert.ErrorIs(t, errMissing, repository.ErrCategoryNotFound)
	})

	t.Run("FindAll keeps insertion order", func(t *testing.T) {
		// Arrange
		repo := newTestStore(t).Categories()
		names := []string{"cat1", "cat2", "cat3", "cat4"}
		for _, name := range names {
			require.NoError(t, repo.Create(ctx, &models.Category{Name: name, Created: models.Today(), LastUpdated: models.Today()}))
		}

		// Act
		categories, err := repo.FindAll(ctx)

		// Assert
		require.NoError(t, err)
		require.Len(t, categories, 4)
		for i, name := range names {
			assert.Equal(t, name, categories[i].Name)
			assert.NotNil(t, categories[i].Products)
		}
	})

	t.Run("SaveAndFlush writes memberships", func(t *testing.T) {
		// Arrange
		store := newTestStore(t)
		products := seedProducts(t, store, "sku1", "sku2", "sku3")
		category := &models.Category{Name: "cat1", Created: models.Today(), LastUpdated: models.Today()}
		require.NoError(t, store.Categories().Create(ctx, category))

		category.AddProduct(products[2])
		category.AddProduct(products[0])

		// Act
		err := store.Categories().SaveAndFlush(ctx, category)

		// Assert
		require.NoError(t, err)
		reloaded, err := store.Categories().FindByID(ctx, category.ID)
		require.NoError(t, err)
		require.Len(t, reloaded.Products, 2)
		assert.Equal(t, products[0].ID, reloaded.Products[0].ID)
		assert.Equal(t, products[2].ID, reloaded.Products[1].ID)
	})

	t.Run("SaveAndFlush replaces memberships", func(t *testing.T) {
		// Arrange
		store := newTestStore(t)
		products := seedProducts(t, store, "sku1", "sku2")
		category := &models.Category{Name: "cat1", Created: models.Today(), LastUpdated: models.Today()}
		require.NoError(t, store.Categories().Create(ctx, category))
		category.AddProduct(products[0])
		category.AddProduct(products[1])
		require.NoError(t, store.Categories().SaveAndFlush(ctx, category))

		category.RemoveProduct(products[0])

		// Act
		err := store.Categories().SaveAndFlush(ctx, category)

		// Assert
		require.NoError(t, err)
		reloaded, err := store.Categories().FindByID(ctx, category.ID)
		require.NoError(t, err)
		require.Len(t, reloaded.Products, 1)
		assert.Equal(t, "sku2", reloaded.Products[0].SKU)
	})

	t.Run("SaveAndFlush of an unknown category", func(t *testing.T) {
		repo := newTestStore(t).Categories()

		err := repo.SaveAndFlush(ctx, &models.Category{ID: 9, Name: "ghost", Created: models.Today(), LastUpdated: models.Today()})

		assert.ErrorIs(t, err, repository.ErrCategoryNotFound)
	})

	t.Run("FindByProduct", func(t *testing.T) {
		// Arrange
		store := newTestStore(t)
		products := seedProducts(t, store, "sku1", "sku2")

		for _, name := range []string{"cat1", "cat2", "cat3"} {
			c := &models.Category{Name: name, Created: models.Today(), LastUpdated: models.Today()}
			require.NoError(t, store.Categories().Create(ctx, c))
			if name != "cat2" {
				c.AddProduct(products[0])
			}
			c.AddProduct(products[1])
			require.NoError(t, store.Categories().SaveAndFlush(ctx, c))
		}

		// Act
		categories, err := store.Categories().FindByProduct(ctx, products[0].ID)

		// Assert
		require.NoError(t, err)
		require.Len(t, categories, 2)
		assert.Equal(t, "cat1", categories[0].Name)
		assert.Equal(t, "cat3", categories[1].Name)
		assert.Len(t, categories[0].Products, 2)
	})

	t.Run("Delete keeps the products", func(t *testing.T) {
		// Arrange
		store := newTestStore(t)
		products := seedProducts(t, store, "sku1")
		category := &models.Category{Name: "cat1", Created: models.Today(), LastUpdated: models.Today()}
		require.NoError(t, store.Categories().Create(ctx, category))
		category.AddProduct(products[0])
		require.NoError(t, store.Categories().SaveAndFlush(ctx, category))

		// Act
		err := store.Categories().Delete(ctx, category)

		// Assert
		require.NoError(t, err)
		_, err = store.Categories().FindByID(ctx, category.ID)
		assert.ErrorIs(t, err, repository.ErrCategoryNotFound)

		product, err := store.Products().FindByID(ctx, products[0].ID)
		require.NoError(t, err)
		assert.Equal(t, "sku1", product.SKU)
	})
}

func TestStoreWithinTransaction(t *testing.T) {
	ctx := t.Context()

	t.Run("Commit", func(t *testing.T) {
		store := newTestStore(t)

		err := store.WithinTransaction(ctx, func(tx repository.Store) error {
			return tx.Products().Create(ctx, &models.Product{SKU: "sku1", Name: "p1", Created: models.Today(), LastUpdated: models.Today()})
		})

		require.NoError(t, err)
		_, err = store.Products().FindBySKU(ctx, "sku1")
		assert.NoError(t, err)
	})

	t.Run("Rollback on error", func(t *testing.T) {
		store := newTestStore(t)

		err := store.WithinTransaction(ctx, func(tx repository.Store) error {
			if err := tx.Products().Create(ctx, &models.Product{SKU: "sku1", Name: "p1", Created: models.Today(), LastUpdated: models.Today()}); err != nil {
				return err
			}

			_, err := tx.Products().FindByID(ctx, 999)
			return err
		})

		assert.ErrorIs(t, err, repository.ErrProductNotFound)
		_, err = store.Products().FindBySKU(ctx, "sku1")
		assert.ErrorIs(t, err, repository.ErrProductNotFound)
	})
}
