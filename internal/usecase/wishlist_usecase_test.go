package usecase

import (
	"context"
	"testing"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wishlistFixtures() *stubCatalogRepo {
	return newStubCatalogRepo(
		domain.Product{ID: "1", Name: "Classic Denim Jacket", Category: domain.CategoryFashion, Price: 5999},
		domain.Product{ID: "6", Name: "Leather Crossbody Bag", Category: domain.CategoryAccessories, Price: 7999},
	)
}

func TestWishlistAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("adds existing product", func(t *testing.T) {
		wishlistRepo := newStubWishlistRepo()
		uc := NewWishlistUC(wishlistRepo, wishlistFixtures(), nopLogger{})

		require.NoError(t, uc.Add(ctx, "u1", "1"))

		products, err := uc.List(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Classic Denim Jacket", products[0].Name)
	})

	t.Run("unknown product", func(t *testing.T) {
		uc := NewWishlistUC(newStubWishlistRepo(), wishlistFixtures(), nopLogger{})
		assert.ErrorIs(t, uc.Add(ctx, "u1", "ghost"), e.ErrProductNotFound)
	})

	t.Run("archived product", func(t *testing.T) {
		catalog := wishlistFixtures()
		require.NoError(t, catalog.Archive(ctx, "1"))
		uc := NewWishlistUC(newStubWishlistRepo(), catalog, nopLogger{})

		assert.ErrorIs(t, uc.Add(ctx, "u1", "1"), e.ErrProductNotFound)
	})
}

func TestWishlistRemove(t *testing.T) {
	ctx := context.Background()
	wishlistRepo := newStubWishlistRepo()
	uc := NewWishlistUC(wishlistRepo, wishlistFixtures(), nopLogger{})

	require.NoError(t, uc.Add(ctx, "u1", "1"))
	require.NoError(t, uc.Remove(ctx, "u1", "1"))

	products, err := uc.List(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, products)

	// Повторное удаление не ошибка
	assert.NoError(t, uc.Remove(ctx, "u1", "1"))
}

func TestWishlistListDropsOrphans(t *testing.T) {
	ctx := context.Background()
	wishlistRepo := newStubWishlistRepo()
	catalog := wishlistFixtures()
	uc := NewWishlistUC(wishlistRepo, catalog, nopLogger{})

	require.NoError(t, uc.Add(ctx, "u1", "1"))
	require.NoError(t, uc.Add(ctx, "u1", "6"))
	require.NoError(t, wishlistRepo.Add(ctx, "u1", "ghost"))

	products, err := uc.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "1", products[0].ID)
	assert.Equal(t, "6", products[1].ID)
}
