package converter

import "time"

type CartLineRedisModel struct {
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

type CartRedisModel struct {
	UserID    string               `json:"user_id"`
	Lines     []CartLineRedisModel `json:"lines"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}
