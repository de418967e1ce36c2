package domain

import "time"

// TryOnRequest — анкета виртуальной примерки: параметры покупателя и товар.
// Реальной обработки изображений нет: ответом служит статичный рендер.
type TryOnRequest struct {
	ID        string // uuid
	UserID    string
	ProductID string
	HeightCm  int
	WeightKg  int
	BodyType  string
	SkinTone  string
	SizeLabel string
	CreatedAt time.Time
}

func NewTryOnRequest(id, userID, productID string, heightCm, weightKg int, bodyType, skinTone, sizeLabel string) *TryOnRequest {
	return &TryOnRequest{
		ID:        id,
		UserID:    userID,
		ProductID: productID,
		HeightCm:  heightCm,
		WeightKg:  weightKg,
		BodyType:  bodyType,
		SkinTone:  skinTone,
		SizeLabel: sizeLabel,
		CreatedAt: time.Now(),
	}
}
