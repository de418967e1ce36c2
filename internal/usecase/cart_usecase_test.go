package usecase

import (
	"context"
	"testing"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cartFixtures() *stubCatalogRepo {
	return newStubCatalogRepo(
		domain.Product{ID: "1", Name: "Classic Denim Jacket", Category: domain.CategoryFashion, Price: 5999},
		domain.Product{ID: "3", Name: "Cotton Crew T-Shirt", Category: domain.CategoryFashion, Price: 1999},
		domain.Product{ID: "6", Name: "Leather Crossbody Bag", Category: domain.CategoryAccessories, Price: 7999},
	)
}

func TestCartGetCart(t *testing.T) {
	ctx := context.Background()

	t.Run("missing cart is an empty cart", func(t *testing.T) {
		uc := NewCartUC(newStubCartRepo(), cartFixtures(), nopLogger{})

		res, err := uc.GetCart(ctx, "u1")
		require.NoError(t, err)
		assert.Empty(t, res.Lines)
		assert.Equal(t, int64(0), res.Subtotal)
	})

	t.Run("orphaned lines dropped from view and subtotal", func(t *testing.T) {
		cartRepo := newStubCartRepo()
		cart := domain.NewCart("u1")
		cart.AddOrUpdate("1", 1)
		cart.AddOrUpdate("ghost", 3)
		cart.AddOrUpdate("3", 2)
		require.NoError(t, cartRepo.UpsertCart(ctx, cart))

		uc := NewCartUC(cartRepo, cartFixtures(), nopLogger{})

		res, err := uc.GetCart(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, res.Lines, 2)
		assert.Equal(t, "1", res.Lines[0].Product.ID)
		assert.Equal(t, "3", res.Lines[1].Product.ID)
		// 59.99 + 2 x 19.99 = 99.97
		assert.Equal(t, int64(9997), res.Subtotal)
	})
}

func TestCartAddToCart(t *testing.T) {
	ctx := context.Background()

	t.Run("adds line and computes subtotal in cents", func(t *testing.T) {
		cartRepo := newStubCartRepo()
		uc := NewCartUC(cartRepo, cartFixtures(), nopLogger{})

		_, err := uc.AddToCart(ctx, "u1", NewCartLineReq("1", 2))
		require.NoError(t, err)

		res, err := uc.AddToCart(ctx, "u1", NewCartLineReq("3", 1))
		require.NoError(t, err)

		require.Len(t, res.Lines, 2)
		// 2 x 59.99 + 19.99 = 139.97
		assert.Equal(t, int64(13997), res.Subtotal)
		assert.Equal(t, int64(11998), res.Lines[0].LineTotal)
	})

	t.Run("re-adding replaces quantity", func(t *testing.T) {
		cartRepo := newStubCartRepo()
		uc := NewCartUC(cartRepo, cartFixtures(), nopLogger{})

		_, err := uc.AddToCart(ctx, "u1", NewCartLineReq("1", 2))
		require.NoError(t, err)

		res, err := uc.AddToCart(ctx, "u1", NewCartLineReq("1", 5))
		require.NoError(t, err)

		require.Len(t, res.Lines, 1)
		assert.Equal(t, 5, res.Lines[0].Quantity)
	})

	t.Run("unknown product", func(t *testing.T) {
		uc := NewCartUC(newStubCartRepo(), cartFixtures(), nopLogger{})

		_, err := uc.AddToCart(ctx, "u1", NewCartLineReq("ghost", 1))
		assert.ErrorIs(t, err, e.ErrProductNotFound)
	})

	t.Run("archived product", func(t *testing.T) {
		catalog := cartFixtures()
		require.NoError(t, catalog.Archive(ctx, "1"))
		uc := NewCartUC(newStubCartRepo(), catalog, nopLogger{})

		_, err := uc.AddToCart(ctx, "u1", NewCartLineReq("1", 1))
		assert.ErrorIs(t, err, e.ErrProductNotFound)
	})

	t.Run("quantity below one does not persist", func(t *testing.T) {
		cartRepo := newStubCartRepo()
		uc := NewCartUC(cartRepo, cartFixtures(), nopLogger{})

		res, err := uc.AddToCart(ctx, "u1", NewCartLineReq("1", 0))
		require.NoError(t, err)
		assert.Empty(t, res.Lines)
		assert.Zero(t, cartRepo.upserts)
	})
}

func TestCartUpdateQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("quantity below one keeps the line", func(t *testing.T) {
		cartRepo := newStubCartRepo()
		uc := NewCartUC(cartRepo, cartFixtures(), nopLogger{})

		_, err := uc.AddToCart(ctx, "u1", NewCartLineReq("1", 2))
		require.NoError(t, err)

		res, err := uc.UpdateQuantity(ctx, "u1", "1", 0)
		require.NoError(t, err)
		require.Len(t, res.Lines, 1)
		assert.Equal(t, 2, res.Lines[0].Quantity)
	})

	t.Run("same quantity skips persistence", func(t *testing.T) {
		cartRepo := newStubCartRepo()
		uc := NewCartUC(cartRepo, cartFixtures(), nopLogger{})

		_, err := uc.AddToCart(ctx, "u1", NewCartLineReq("1", 2))
		require.NoError(t, err)
		upsertsBefore := cartRepo.upserts

		_, err = uc.UpdateQuantity(ctx, "u1", "1", 2)
		require.NoError(t, err)
		assert.Equal(t, upsertsBefore, cartRepo.upserts)
	})
}

func TestCartRemoveFromCart(t *testing.T) {
	ctx := context.Background()

	t.Run("add remove add lands at the end", func(t *testing.T) {
		cartRepo := newStubCartRepo()
		uc := NewCartUC(cartRepo, cartFixtures(), nopLogger{})

		_, err := uc.AddToCart(ctx, "u1", NewCartLineReq("1", 1))
		require.NoError(t, err)
		_, err = uc.AddToCart(ctx, "u1", NewCartLineReq("3", 1))
		require.NoError(t, err)

		_, err = uc.RemoveFromCart(ctx, "u1", "1")
		require.NoError(t, err)

		res, err := uc.AddToCart(ctx, "u1", NewCartLineReq("1", 1))
		require.NoError(t, err)

		require.Len(t, res.Lines, 2)
		assert.Equal(t, "3", res.Lines[0].Product.ID)
		assert.Equal(t, "1", res.Lines[1].Product.ID)
	})

	t.Run("removing absent line is a no-op", func(t *testing.T) {
		cartRepo := newStubCartRepo()
		uc := NewCartUC(cartRepo, cartFixtures(), nopLogger{})

		res, err := uc.RemoveFromCart(ctx, "u1", "ghost")
		require.NoError(t, err)
		assert.Empty(t, res.Lines)
		assert.Zero(t, cartRepo.upserts)
	})
}
