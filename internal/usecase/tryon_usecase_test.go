package usecase

import (
	"context"
	"testing"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tryOnFixtures() *stubCatalogRepo {
	return newStubCatalogRepo(
		domain.Product{ID: "1", Name: "Classic Denim Jacket", Category: domain.CategoryFashion, Price: 5999, Image: "/placeholder.svg"},
	)
}

func TestTryOnSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("saves request and returns product render", func(t *testing.T) {
		tryOnRepo := &stubTryOnRepo{}
		uc := NewTryOnUC(tryOnRepo, tryOnFixtures(), nopLogger{})

		res, err := uc.Submit(ctx, "u1", &TryOnReq{
			ProductID: "1",
			HeightCm:  178,
			WeightKg:  72,
			BodyType:  "athletic",
			SkinTone:  "medium",
			SizeLabel: "M",
		})
		require.NoError(t, err)

		assert.NotEmpty(t, res.RequestID)
		assert.Equal(t, "1", res.ProductID)
		assert.Equal(t, "/placeholder.svg", res.RenderURL)

		require.Len(t, tryOnRepo.requests, 1)
		assert.Equal(t, "u1", tryOnRepo.requests[0].UserID)
		assert.Equal(t, 178, tryOnRepo.requests[0].HeightCm)
	})

	t.Run("unknown product", func(t *testing.T) {
		uc := NewTryOnUC(&stubTryOnRepo{}, tryOnFixtures(), nopLogger{})

		_, err := uc.Submit(ctx, "u1", &TryOnReq{ProductID: "ghost"})
		assert.ErrorIs(t, err, e.ErrProductNotFound)
	})

	t.Run("archived product", func(t *testing.T) {
		catalog := tryOnFixtures()
		require.NoError(t, catalog.Archive(ctx, "1"))
		uc := NewTryOnUC(&stubTryOnRepo{}, catalog, nopLogger{})

		_, err := uc.Submit(ctx, "u1", &TryOnReq{ProductID: "1"})
		assert.ErrorIs(t, err, e.ErrProductNotFound)
	})
}

func TestTryOnHistory(t *testing.T) {
	ctx := context.Background()
	tryOnRepo := &stubTryOnRepo{}
	uc := NewTryOnUC(tryOnRepo, tryOnFixtures(), nopLogger{})

	first, err := uc.Submit(ctx, "u1", &TryOnReq{ProductID: "1", SizeLabel: "S"})
	require.NoError(t, err)
	second, err := uc.Submit(ctx, "u1", &TryOnReq{ProductID: "1", SizeLabel: "M"})
	require.NoError(t, err)

	_, err = uc.Submit(ctx, "u2", &TryOnReq{ProductID: "1", SizeLabel: "L"})
	require.NoError(t, err)

	history, err := uc.History(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	// Новые первыми, чужие анкеты не видны
	assert.Equal(t, second.RequestID, history[0].ID)
	assert.Equal(t, first.RequestID, history[1].ID)
}
