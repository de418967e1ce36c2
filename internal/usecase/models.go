package usecase

import "github.com/DRSN-tech/storefront-backend/internal/domain"

// CATALOG USECASE

// SaveProductReq — запрос на создание или обновление товара из админки.
type SaveProductReq struct {
	Name        string
	Brand       string
	Description string
	Category    string
	Subcategory string
	Price       int64
	Rating      float64
	Sizes       []string
	Colors      []string
	Images      []ProductImage
}

// ProductImage представляет изображение, загруженное через multipart/form-data.
type ProductImage struct {
	Data     []byte // байты изображения
	MimeType string // Content-Type из multipart (image/jpeg)
	Size     int64  // фактический размер в байтах
	Name     string // оригинальное имя файла (для логов)
}

// CART USECASE

// CartLineReq — запрос на добавление или изменение строки корзины.
type CartLineReq struct {
	ProductID string
	Quantity  int
}

// ResolvedCartLine — строка корзины, успешно сопоставленная с товаром каталога.
// Строки, чей товар из каталога исчез, в результат не попадают.
type ResolvedCartLine struct {
	Product   domain.Product
	Quantity  int
	LineTotal int64 // Price * Quantity, в центах
}

// CartRes — корзина с разрешенными строками и подытогом.
type CartRes struct {
	Lines    []ResolvedCartLine
	Subtotal int64 // в центах
}

// CHECKOUT USECASE

// PlaceOrderReq — запрос на оформление заказа.
type PlaceOrderReq struct {
	PaymentMethod    string
	ShippingOptionID string
	Address          domain.Address
}

// AUTH USECASE

type RegisterReq struct {
	Email    string
	Name     string
	Password string
}

type LoginReq struct {
	Email    string
	Password string
}

// AuthRes — результат входа или регистрации.
type AuthRes struct {
	Token string
	User  *domain.User
}

// TokenClaims — данные, зашитые в токен доступа.
type TokenClaims struct {
	UserID string
	Email  string
	Role   string
}

// TRY-ON USECASE

// TryOnReq — анкета виртуальной примерки.
type TryOnReq struct {
	ProductID string
	HeightCm  int
	WeightKg  int
	BodyType  string
	SkinTone  string
	SizeLabel string
}

// TryOnRes — результат примерки: ссылка на статичный рендер.
type TryOnRes struct {
	RequestID string
	ProductID string
	RenderURL string
}

// INFRASTRUCTURE

// UploadImagesReq — запрос на загрузку изображений товара.
type UploadImagesReq struct {
	Name   string
	Images []ProductImage
}

// UploadImagesRes — результат загрузки изображений (ключи в MinIO).
type UploadImagesRes struct {
	ImagesKeys []string
}

// MAPPERS

func NewResolvedCartLine(product domain.Product, quantity int) ResolvedCartLine {
	return ResolvedCartLine{
		Product:   product,
		Quantity:  quantity,
		LineTotal: product.Price * int64(quantity),
	}
}

func NewCartRes(lines []ResolvedCartLine) *CartRes {
	var subtotal int64
	for _, line := range lines {
		subtotal += line.LineTotal
	}

	return &CartRes{
		Lines:    lines,
		Subtotal: subtotal,
	}
}

func NewCartLineReq(productID string, quantity int) *CartLineReq {
	return &CartLineReq{
		ProductID: productID,
		Quantity:  quantity,
	}
}

func NewAuthRes(token string, user *domain.User) *AuthRes {
	return &AuthRes{
		Token: token,
		User:  user,
	}
}

func NewTryOnRes(requestID, productID, renderURL string) *TryOnRes {
	return &TryOnRes{
		RequestID: requestID,
		ProductID: productID,
		RenderURL: renderURL,
	}
}

func NewProductImage(data []byte, mimeType string, size int64, name string) *ProductImage {
	return &ProductImage{
		Data:     data,
		MimeType: mimeType,
		Size:     size,
		Name:     name,
	}
}

func NewUploadImagesReq(name string, images []ProductImage) *UploadImagesReq {
	return &UploadImagesReq{
		Name:   name,
		Images: images,
	}
}

func NewUploadImagesRes(imagesKeys []string) *UploadImagesRes {
	return &UploadImagesRes{
		ImagesKeys: imagesKeys,
	}
}
