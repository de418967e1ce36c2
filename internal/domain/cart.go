package domain

import "time"

// CartLine — пара (товар, количество) в корзине покупателя.
type CartLine struct {
	ProductID string
	Quantity  int
	AddedAt   time.Time
}

// Cart описывает корзину пользователя. Дубликатов ProductID среди строк нет:
// повторное добавление товара заменяет количество существующей строки.
type Cart struct {
	UserID    string
	Lines     []CartLine
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewCart(userID string) *Cart {
	now := time.Now()
	return &Cart{
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AddOrUpdate заменяет количество существующей строки или добавляет новую в конец.
// Количество меньше 1 игнорируется: удаление строки выполняется только через Remove.
// Возвращает true, если корзина изменилась.
func (c *Cart) AddOrUpdate(productID string, quantity int) bool {
	if quantity < 1 {
		return false
	}

	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			if c.Lines[i].Quantity == quantity {
				return false
			}
			c.Lines[i].Quantity = quantity
			c.UpdatedAt = time.Now()
			return true
		}
	}

	c.Lines = append(c.Lines, CartLine{
		ProductID: productID,
		Quantity:  quantity,
		AddedAt:   time.Now(),
	})
	c.UpdatedAt = time.Now()
	return true
}

// Remove удаляет строку с указанным товаром. Отсутствие строки не является ошибкой.
// Возвращает true, если строка была удалена.
func (c *Cart) Remove(productID string) bool {
	for i, line := range c.Lines {
		if line.ProductID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			c.UpdatedAt = time.Now()
			return true
		}
	}

	return false
}

// IsEmpty сообщает, пуста ли корзина.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}
