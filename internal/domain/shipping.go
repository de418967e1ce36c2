package domain

// ShippingOption — фиксированный тариф доставки, добавляемый к подытогу заказа.
type ShippingOption struct {
	ID            string
	Name          string
	Price         int64 // в центах
	EstimatedDays string // диапазон в днях, например "3-5"
}

// PaymentMethod — способ оплаты, выбираемый на шаге оформления заказа.
type PaymentMethod struct {
	ID   string
	Name string
}

// ShippingOptions возвращает фиксированный набор тарифов доставки.
func ShippingOptions() []ShippingOption {
	return []ShippingOption{
		{ID: "standard", Name: "Standard Shipping", Price: 599, EstimatedDays: "3-5"},
		{ID: "express", Name: "Express Shipping", Price: 1299, EstimatedDays: "1-2"},
		{ID: "free", Name: "Free Shipping", Price: 0, EstimatedDays: "5-7"},
	}
}

// FindShippingOption ищет тариф по идентификатору.
func FindShippingOption(id string) (ShippingOption, bool) {
	for _, opt := range ShippingOptions() {
		if opt.ID == id {
			return opt, true
		}
	}

	return ShippingOption{}, false
}

// PaymentMethods возвращает фиксированный набор способов оплаты.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{
		{ID: "credit_card", Name: "Credit Card"},
		{ID: "paypal", Name: "PayPal"},
		{ID: "bank_transfer", Name: "Bank Transfer"},
		{ID: "cash_on_delivery", Name: "Cash on Delivery"},
	}
}

// ValidPaymentMethod сообщает, известен ли способ оплаты.
func ValidPaymentMethod(id string) bool {
	for _, m := range PaymentMethods() {
		if m.ID == id {
			return true
		}
	}

	return false
}

// OrderTotal — итог заказа: подытог плюс цена выбранного тарифа доставки.
// Налоги, скидки и конвертация валют отсутствуют.
func OrderTotal(subtotal int64, opt ShippingOption) int64 {
	return subtotal + opt.Price
}
