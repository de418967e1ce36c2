package http

import (
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
)

// Денежные суммы сериализуются строками с двумя знаками после запятой ("59.99").

type ProductResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Brand       string   `json:"brand"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Subcategory string   `json:"subcategory"`
	Price       string   `json:"price"`
	Rating      float64  `json:"rating"`
	Sizes       []string `json:"sizes,omitempty"`
	Colors      []string `json:"colors,omitempty"`
	Image       string   `json:"image"`
}

type CartLineResponse struct {
	Product   ProductResponse `json:"product"`
	Quantity  int             `json:"quantity"`
	LineTotal string          `json:"line_total"`
}

type CartResponse struct {
	Items    []CartLineResponse `json:"items"`
	Subtotal string             `json:"subtotal"`
}

type ShippingOptionResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Price         string `json:"price"`
	EstimatedDays string `json:"estimated_days"`
}

type PaymentMethodResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type AddressPayload struct {
	FullName      string `json:"full_name"`
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	State         string `json:"state"`
	ZipCode       string `json:"zip_code"`
	Country       string `json:"country"`
	PhoneNumber   string `json:"phone_number"`
}

type PlaceOrderRequest struct {
	PaymentMethod    string         `json:"payment_method"`
	ShippingOptionID string         `json:"shipping_option_id"`
	Address          AddressPayload `json:"address"`
}

type OrderItemResponse struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	Quantity  int    `json:"quantity"`
}

type OrderResponse struct {
	ID             string                 `json:"id"`
	Items          []OrderItemResponse    `json:"items"`
	Subtotal       string                 `json:"subtotal"`
	ShippingOption ShippingOptionResponse `json:"shipping_option"`
	PaymentMethod  string                 `json:"payment_method"`
	Address        AddressPayload         `json:"address"`
	Total          string                 `json:"total"`
	Status         string                 `json:"status"`
	CreatedAt      time.Time              `json:"created_at"`
}

type CartLinePayload struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type TryOnPayload struct {
	ProductID string `json:"product_id"`
	HeightCm  int    `json:"height_cm"`
	WeightKg  int    `json:"weight_kg"`
	BodyType  string `json:"body_type"`
	SkinTone  string `json:"skin_tone"`
	SizeLabel string `json:"size_label"`
}

type TryOnResponse struct {
	RequestID string `json:"request_id"`
	ProductID string `json:"product_id"`
	RenderURL string `json:"render_url"`
}

type WishlistPayload struct {
	ProductID string `json:"product_id"`
}

// MAPPERS

func toProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Brand:       p.Brand,
		Description: p.Description,
		Category:    string(p.Category),
		Subcategory: p.Subcategory,
		Price:       formatCents(p.Price),
		Rating:      p.Rating,
		Sizes:       p.Sizes,
		Colors:      p.Colors,
		Image:       p.Image,
	}
}

func toArrProductResponse(products []domain.Product) []ProductResponse {
	result := make([]ProductResponse, 0, len(products))
	for i := range products {
		result = append(result, toProductResponse(&products[i]))
	}
	return result
}

func toCartResponse(cart *usecase.CartRes) CartResponse {
	items := make([]CartLineResponse, 0, len(cart.Lines))
	for i := range cart.Lines {
		items = append(items, CartLineResponse{
			Product:   toProductResponse(&cart.Lines[i].Product),
			Quantity:  cart.Lines[i].Quantity,
			LineTotal: formatCents(cart.Lines[i].LineTotal),
		})
	}

	return CartResponse{
		Items:    items,
		Subtotal: formatCents(cart.Subtotal),
	}
}

func toShippingOptionResponse(opt domain.ShippingOption) ShippingOptionResponse {
	return ShippingOptionResponse{
		ID:            opt.ID,
		Name:          opt.Name,
		Price:         formatCents(opt.Price),
		EstimatedDays: opt.EstimatedDays,
	}
}

func toAddressPayload(a domain.Address) AddressPayload {
	return AddressPayload{
		FullName:      a.FullName,
		StreetAddress: a.StreetAddress,
		City:          a.City,
		State:         a.State,
		ZipCode:       a.ZipCode,
		Country:       a.Country,
		PhoneNumber:   a.PhoneNumber,
	}
}

func toDomainAddress(a AddressPayload) domain.Address {
	return domain.Address{
		FullName:      a.FullName,
		StreetAddress: a.StreetAddress,
		City:          a.City,
		State:         a.State,
		ZipCode:       a.ZipCode,
		Country:       a.Country,
		PhoneNumber:   a.PhoneNumber,
	}
}

func toOrderResponse(order *domain.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     formatCents(item.Price),
			Quantity:  item.Quantity,
		})
	}

	return OrderResponse{
		ID:             order.ID,
		Items:          items,
		Subtotal:       formatCents(order.Subtotal),
		ShippingOption: toShippingOptionResponse(order.ShippingOption),
		PaymentMethod:  order.PaymentMethod,
		Address:        toAddressPayload(order.Address),
		Total:          formatCents(order.Total),
		Status:         string(order.Status),
		CreatedAt:      order.CreatedAt,
	}
}

func toArrOrderResponse(orders []domain.Order) []OrderResponse {
	result := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		result = append(result, toOrderResponse(&orders[i]))
	}
	return result
}

func toUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
	}
}

func toAuthResponse(res *usecase.AuthRes) AuthResponse {
	return AuthResponse{
		Token: res.Token,
		User:  toUserResponse(res.User),
	}
}
