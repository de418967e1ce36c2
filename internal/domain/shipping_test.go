package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderTotal(t *testing.T) {
	standard, ok := FindShippingOption("standard")
	require.True(t, ok)

	// 2 x 59.99 + 19.99 = 139.97, плюс доставка 5.99
	assert.Equal(t, int64(14596), OrderTotal(13997, standard))

	// 59.99 + 79.99 = 139.98, плюс доставка 5.99 = 145.97 ровно
	assert.Equal(t, int64(14597), OrderTotal(13998, standard))

	free, ok := FindShippingOption("free")
	require.True(t, ok)
	assert.Equal(t, int64(13997), OrderTotal(13997, free))
}

func TestFindShippingOption(t *testing.T) {
	express, ok := FindShippingOption("express")
	require.True(t, ok)
	assert.Equal(t, int64(1299), express.Price)
	assert.Equal(t, "1-2", express.EstimatedDays)

	_, ok = FindShippingOption("overnight")
	assert.False(t, ok)
}

func TestValidPaymentMethod(t *testing.T) {
	for _, id := range []string{"credit_card", "paypal", "bank_transfer", "cash_on_delivery"} {
		assert.True(t, ValidPaymentMethod(id), id)
	}

	assert.False(t, ValidPaymentMethod("bitcoin"))
	assert.False(t, ValidPaymentMethod(""))
}

func TestAddressComplete(t *testing.T) {
	addr := Address{
		FullName:      "Jane Doe",
		StreetAddress: "1 Main St",
		City:          "Springfield",
		State:         "IL",
		ZipCode:       "62704",
		Country:       "USA",
	}
	assert.True(t, addr.Complete())

	// Телефон опционален
	addr.PhoneNumber = ""
	assert.True(t, addr.Complete())

	addr.City = ""
	assert.False(t, addr.Complete())
}
