package memory

import "github.com/DRSN-tech/storefront-backend/internal/domain"

// DefaultCatalog возвращает стартовый ассортимент витрины.
// Цены в центах.
func DefaultCatalog() []domain.Product {
	return []domain.Product{
		{
			ID:          "1",
			Name:        "Classic Denim Jacket",
			Price:       5999,
			Category:    domain.CategoryFashion,
			Subcategory: "outerwear",
			Image:       "/placeholder.svg",
			Description: "A timeless denim jacket that goes with everything in your wardrobe. Made from high-quality sustainable cotton.",
			Brand:       "EcoFashion",
			Sizes:       []string{"XS", "S", "M", "L", "XL"},
			Colors:      []string{"Blue", "Black", "Light Blue"},
			Rating:      4.5,
		},
		{
			ID:          "2",
			Name:        "Slim Fit Chinos",
			Price:       3999,
			Category:    domain.CategoryFashion,
			Subcategory: "pants",
			Image:       "/placeholder.svg",
			Description: "Comfortable slim-fit chinos perfect for casual and semi-formal occasions.",
			Brand:       "UrbanStyle",
			Sizes:       []string{"28", "30", "32", "34", "36"},
			Colors:      []string{"Khaki", "Navy", "Black", "Olive"},
			Rating:      4.3,
		},
		{
			ID:          "3",
			Name:        "Cotton Crew T-Shirt",
			Price:       1999,
			Category:    domain.CategoryFashion,
			Subcategory: "tops",
			Image:       "/placeholder.svg",
			Description: "Soft and breathable cotton t-shirt with a classic crew neck design.",
			Brand:       "BasicTees",
			Sizes:       []string{"XS", "S", "M", "L", "XL", "XXL"},
			Colors:      []string{"White", "Black", "Gray", "Navy", "Red"},
			Rating:      4.8,
		},
		{
			ID:          "4",
			Name:        "Matte Lipstick",
			Price:       2499,
			Category:    domain.CategoryCosmetics,
			Subcategory: "makeup",
			Image:       "/placeholder.svg",
			Description: "Long-lasting matte lipstick that doesn't dry your lips.",
			Brand:       "GlowUp",
			Colors:      []string{"Ruby Red", "Coral Pink", "Dusty Rose", "Nude"},
			Rating:      4.7,
		},
		{
			ID:          "5",
			Name:        "Moisturizing Face Cream",
			Price:       3250,
			Category:    domain.CategoryCosmetics,
			Subcategory: "skincare",
			Image:       "/placeholder.svg",
			Description: "Hydrating face cream suitable for all skin types. Enriched with vitamins and natural oils.",
			Brand:       "PureSkin",
			Rating:      4.6,
		},
		{
			ID:          "6",
			Name:        "Leather Crossbody Bag",
			Price:       7999,
			Category:    domain.CategoryAccessories,
			Subcategory: "bags",
			Image:       "/placeholder.svg",
			Description: "Stylish genuine leather crossbody bag with multiple compartments.",
			Brand:       "LuxAccessories",
			Colors:      []string{"Black", "Brown", "Tan"},
			Rating:      4.4,
		},
		{
			ID:          "7",
			Name:        "Aviator Sunglasses",
			Price:       4999,
			Category:    domain.CategoryAccessories,
			Subcategory: "eyewear",
			Image:       "/placeholder.svg",
			Description: "Classic aviator sunglasses with UV protection and polarized lenses.",
			Brand:       "SunStyle",
			Colors:      []string{"Gold/Green", "Silver/Blue", "Black/Gray"},
			Rating:      4.2,
		},
		{
			ID:          "8",
			Name:        "Floral Summer Dress",
			Price:       4599,
			Category:    domain.CategoryFashion,
			Subcategory: "dresses",
			Image:       "/placeholder.svg",
			Description: "Light and breezy floral dress, perfect for warm summer days.",
			Brand:       "SummerChic",
			Sizes:       []string{"XS", "S", "M", "L"},
			Colors:      []string{"Blue Floral", "Pink Floral", "Yellow Floral"},
			Rating:      4.5,
		},
		{
			ID:          "9",
			Name:        "Waterproof Mascara",
			Price:       1899,
			Category:    domain.CategoryCosmetics,
			Subcategory: "makeup",
			Image:       "/placeholder.svg",
			Description: "Smudge-proof, waterproof mascara for voluminous lashes.",
			Brand:       "LashLove",
			Colors:      []string{"Black", "Brown-Black"},
			Rating:      4.3,
		},
		{
			ID:          "10",
			Name:        "Stainless Steel Watch",
			Price:       14999,
			Category:    domain.CategoryAccessories,
			Subcategory: "watches",
			Image:       "/placeholder.svg",
			Description: "Elegant stainless steel watch with Japanese movement.",
			Brand:       "TimeMaster",
			Colors:      []string{"Silver", "Gold", "Rose Gold"},
			Rating:      4.6,
		},
	}
}
