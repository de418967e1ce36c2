package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAddress() domain.Address {
	return domain.Address{
		FullName:      "Jane Doe",
		StreetAddress: "1 Main St",
		City:          "Springfield",
		State:         "IL",
		ZipCode:       "62704",
		Country:       "USA",
	}
}

func checkoutEnv(t *testing.T) (*CheckoutUseCase, *stubCartRepo, *stubOrderRepo, *stubProducer, *stubMailer) {
	t.Helper()

	catalog := newStubCatalogRepo(
		domain.Product{ID: "1", Name: "Classic Denim Jacket", Category: domain.CategoryFashion, Price: 5999},
		domain.Product{ID: "3", Name: "Cotton Crew T-Shirt", Category: domain.CategoryFashion, Price: 1999},
	)
	cartRepo := newStubCartRepo()
	orderRepo := &stubOrderRepo{}
	userRepo := newStubUserRepo()
	require.NoError(t, userRepo.Create(context.Background(),
		domain.NewUser("u1", "jane@example.com", "jane", nil, domain.RoleCustomer)))
	producer := newStubProducer()
	mailer := newStubMailer()

	uc := NewCheckoutUC(cartRepo, catalog, orderRepo, userRepo, producer, mailer, nopLogger{})
	return uc, cartRepo, orderRepo, producer, mailer
}

func seedCart(t *testing.T, cartRepo *stubCartRepo, lines map[string]int) {
	t.Helper()
	cart := domain.NewCart("u1")
	for id, qty := range lines {
		cart.AddOrUpdate(id, qty)
	}
	require.NoError(t, cartRepo.UpsertCart(context.Background(), cart))
}

func TestPlaceOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("computes exact total in cents", func(t *testing.T) {
		uc, cartRepo, orderRepo, _, _ := checkoutEnv(t)
		// 2 x 59.99 + 19.99 = 139.97, standard доставка 5.99 -> 145.96
		seedCart(t, cartRepo, map[string]int{"1": 2, "3": 1})

		order, err := uc.PlaceOrder(ctx, "u1", &PlaceOrderReq{
			PaymentMethod:    "credit_card",
			ShippingOptionID: "standard",
			Address:          validAddress(),
		})
		require.NoError(t, err)

		assert.Equal(t, int64(13997), order.Subtotal)
		assert.Equal(t, int64(14596), order.Total)
		assert.Equal(t, domain.OrderStatusProcessing, order.Status)
		assert.Len(t, orderRepo.orders, 1)
	})

	t.Run("free shipping adds nothing", func(t *testing.T) {
		uc, cartRepo, _, _, _ := checkoutEnv(t)
		seedCart(t, cartRepo, map[string]int{"3": 1})

		order, err := uc.PlaceOrder(ctx, "u1", &PlaceOrderReq{
			PaymentMethod:    "paypal",
			ShippingOptionID: "free",
			Address:          validAddress(),
		})
		require.NoError(t, err)
		assert.Equal(t, order.Subtotal, order.Total)
	})

	t.Run("snapshots name and price at purchase time", func(t *testing.T) {
		uc, cartRepo, _, _, _ := checkoutEnv(t)
		seedCart(t, cartRepo, map[string]int{"1": 1})

		order, err := uc.PlaceOrder(ctx, "u1", &PlaceOrderReq{
			PaymentMethod:    "credit_card",
			ShippingOptionID: "express",
			Address:          validAddress(),
		})
		require.NoError(t, err)

		require.Len(t, order.Items, 1)
		assert.Equal(t, "Classic Denim Jacket", order.Items[0].Name)
		assert.Equal(t, int64(5999), order.Items[0].Price)
	})

	t.Run("clears the cart after checkout", func(t *testing.T) {
		uc, cartRepo, _, _, _ := checkoutEnv(t)
		seedCart(t, cartRepo, map[string]int{"1": 1})

		_, err := uc.PlaceOrder(ctx, "u1", &PlaceOrderReq{
			PaymentMethod:    "credit_card",
			ShippingOptionID: "standard",
			Address:          validAddress(),
		})
		require.NoError(t, err)

		assert.Equal(t, 1, cartRepo.deletes)
		_, err = cartRepo.GetCart(ctx, "u1")
		assert.ErrorIs(t, err, e.ErrCartNotFound)
	})

	t.Run("publishes event and sends confirmation", func(t *testing.T) {
		uc, cartRepo, _, producer, mailer := checkoutEnv(t)
		seedCart(t, cartRepo, map[string]int{"1": 1})

		order, err := uc.PlaceOrder(ctx, "u1", &PlaceOrderReq{
			PaymentMethod:    "credit_card",
			ShippingOptionID: "standard",
			Address:          validAddress(),
		})
		require.NoError(t, err)

		select {
		case <-producer.done:
		case <-time.After(2 * time.Second):
			t.Fatal("order event was not published")
		}

		select {
		case <-mailer.confirmDone:
		case <-time.After(2 * time.Second):
			t.Fatal("confirmation email was not sent")
		}

		producer.mu.Lock()
		defer producer.mu.Unlock()
		require.Len(t, producer.published, 1)
		assert.Equal(t, order.ID, producer.published[0].ID)
	})

	t.Run("orphaned lines excluded from the order", func(t *testing.T) {
		uc, cartRepo, _, _, _ := checkoutEnv(t)
		seedCart(t, cartRepo, map[string]int{"1": 1, "ghost": 5})

		order, err := uc.PlaceOrder(ctx, "u1", &PlaceOrderReq{
			PaymentMethod:    "credit_card",
			ShippingOptionID: "standard",
			Address:          validAddress(),
		})
		require.NoError(t, err)
		require.Len(t, order.Items, 1)
		assert.Equal(t, int64(5999), order.Subtotal)
	})

	t.Run("cart of only orphans is empty", func(t *testing.T) {
		uc, cartRepo, _, _, _ := checkoutEnv(t)
		seedCart(t, cartRepo, map[string]int{"ghost": 1})

		_, err := uc.PlaceOrder(ctx, "u1", &PlaceOrderReq{
			PaymentMethod:    "credit_card",
			ShippingOptionID: "standard",
			Address:          validAddress(),
		})
		assert.ErrorIs(t, err, e.ErrEmptyCart)
	})

	t.Run("missing cart", func(t *testing.T) {
		uc, _, _, _, _ := checkoutEnv(t)

		_, err := uc.PlaceOrder(ctx, "u1", &PlaceOrderReq{
			PaymentMethod:    "credit_card",
			ShippingOptionID: "standard",
			Address:          validAddress(),
		})
		assert.ErrorIs(t, err, e.ErrEmptyCart)
	})
}

func TestPlaceOrderValidation(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name    string
		req     PlaceOrderReq
		wantErr error
	}{
		{
			name:    "missing payment method",
			req:     PlaceOrderReq{ShippingOptionID: "standard", Address: validAddress()},
			wantErr: e.ErrPaymentMethodRequired,
		},
		{
			name:    "unknown payment method",
			req:     PlaceOrderReq{PaymentMethod: "bitcoin", ShippingOptionID: "standard", Address: validAddress()},
			wantErr: e.ErrUnknownPaymentMethod,
		},
		{
			name:    "missing shipping option",
			req:     PlaceOrderReq{PaymentMethod: "paypal", Address: validAddress()},
			wantErr: e.ErrShippingOptionRequired,
		},
		{
			name:    "unknown shipping option",
			req:     PlaceOrderReq{PaymentMethod: "paypal", ShippingOptionID: "overnight", Address: validAddress()},
			wantErr: e.ErrUnknownShippingOption,
		},
		{
			name:    "incomplete address",
			req:     PlaceOrderReq{PaymentMethod: "paypal", ShippingOptionID: "standard"},
			wantErr: e.ErrAddressRequired,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, cartRepo, orderRepo, _, _ := checkoutEnv(t)
			seedCart(t, cartRepo, map[string]int{"1": 1})

			_, err := uc.PlaceOrder(ctx, "u1", &tc.req)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Empty(t, orderRepo.orders)
			// Корзина не очищается при отказе валидации
			assert.Zero(t, cartRepo.deletes)
		})
	}
}

func TestListOrders(t *testing.T) {
	ctx := context.Background()
	uc, cartRepo, _, _, _ := checkoutEnv(t)

	seedCart(t, cartRepo, map[string]int{"1": 1})
	first, err := uc.PlaceOrder(ctx, "u1", &PlaceOrderReq{
		PaymentMethod: "credit_card", ShippingOptionID: "standard", Address: validAddress(),
	})
	require.NoError(t, err)

	seedCart(t, cartRepo, map[string]int{"3": 2})
	second, err := uc.PlaceOrder(ctx, "u1", &PlaceOrderReq{
		PaymentMethod: "paypal", ShippingOptionID: "free", Address: validAddress(),
	})
	require.NoError(t, err)

	orders, err := uc.ListOrders(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	// Новые первыми
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)
}
