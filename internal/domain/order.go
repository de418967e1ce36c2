package domain

import "time"

// OrderStatus — статус заказа в истории покупок.
type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
)

// Address — адрес доставки, указанный при оформлении заказа.
type Address struct {
	FullName      string
	StreetAddress string
	City          string
	State         string
	ZipCode       string
	Country       string
	PhoneNumber   string
}

// Complete сообщает, заполнены ли обязательные поля адреса.
func (a Address) Complete() bool {
	return a.FullName != "" && a.StreetAddress != "" && a.City != "" &&
		a.State != "" && a.ZipCode != "" && a.Country != ""
}

// OrderItem — снимок строки корзины на момент оформления заказа.
// Название и цена фиксируются, чтобы история заказов не зависела от
// последующих изменений каталога.
type OrderItem struct {
	ProductID string
	Name      string
	Price     int64 // в центах, на момент покупки
	Quantity  int
}

// Order описывает оформленный заказ
type Order struct {
	ID             string // uuid
	UserID         string
	Items          []OrderItem
	Subtotal       int64
	ShippingOption ShippingOption
	PaymentMethod  string
	Address        Address
	Total          int64
	Status         OrderStatus
	CreatedAt      time.Time
}

func NewOrder(id, userID string, items []OrderItem, subtotal int64, opt ShippingOption, paymentMethod string, address Address) *Order {
	return &Order{
		ID:             id,
		UserID:         userID,
		Items:          items,
		Subtotal:       subtotal,
		ShippingOption: opt,
		PaymentMethod:  paymentMethod,
		Address:        address,
		Total:          OrderTotal(subtotal, opt),
		Status:         OrderStatusProcessing,
		CreatedAt:      time.Now(),
	}
}
