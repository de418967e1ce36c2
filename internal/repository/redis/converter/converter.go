package converter

import (
	"github.com/DRSN-tech/storefront-backend/internal/domain"
)

// CartConverter переводит корзину между доменной моделью и Redis-представлением.
type CartConverter struct{}

func NewCartConverter() CartConverter {
	return CartConverter{}
}

func (CartConverter) ToRedisModel(cart *domain.Cart) *CartRedisModel {
	lines := make([]CartLineRedisModel, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		lines = append(lines, CartLineRedisModel{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			AddedAt:   line.AddedAt,
		})
	}

	return &CartRedisModel{
		UserID:    cart.UserID,
		Lines:     lines,
		CreatedAt: cart.CreatedAt,
		UpdatedAt: cart.UpdatedAt,
	}
}

func (CartConverter) ToDomain(model *CartRedisModel) *domain.Cart {
	lines := make([]domain.CartLine, 0, len(model.Lines))
	for _, line := range model.Lines {
		lines = append(lines, domain.CartLine{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			AddedAt:   line.AddedAt,
		})
	}

	return &domain.Cart{
		UserID:    model.UserID,
		Lines:     lines,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
