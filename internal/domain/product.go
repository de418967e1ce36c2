package domain

import "time"

// Category — закрытый набор категорий витрины.
type Category string

const (
	CategoryFashion     Category = "fashion"
	CategoryCosmetics   Category = "cosmetics"
	CategoryAccessories Category = "accessories"
)

// Categories возвращает все известные категории в фиксированном порядке.
func Categories() []Category {
	return []Category{CategoryFashion, CategoryCosmetics, CategoryAccessories}
}

// ValidCategory сообщает, входит ли строка в закрытый набор категорий.
func ValidCategory(s string) bool {
	switch Category(s) {
	case CategoryFashion, CategoryCosmetics, CategoryAccessories:
		return true
	default:
		return false
	}
}

// Product описывает товар каталога
type Product struct {
	ID          string
	Name        string
	Brand       string
	Description string
	Category    Category
	Subcategory string
	Price       int64 // Цена хранится в центах
	Rating      float64
	Sizes       []string // пустой срез — у товара нет размерной сетки
	Colors      []string
	Image       string // непрозрачная ссылка, ядром не интерпретируется
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	IsArchived  bool
}

func NewProduct(id, name, brand, description string, category Category, subcategory string, price int64) *Product {
	return &Product{
		ID:          id,
		Name:        name,
		Brand:       brand,
		Description: description,
		Category:    category,
		Subcategory: subcategory,
		Price:       price,
	}
}

// SearchableFields возвращает пять полей, по которым работает поиск по подстроке.
func (p *Product) SearchableFields() []string {
	return []string{p.Name, p.Brand, p.Description, string(p.Category), p.Subcategory}
}
