package catalog

import (
	"github.com/google/uuid"
	"shopsmart/internal/domain"
)

const (
	CategoryDairy     = "Dairy"
	CategoryBakery    = "Bakery"
	CategoryProduce   = "Fruits & Vegetables"
	CategoryMeatFish  = "Meat & Fish"
	CategoryHousehold = "Household"
)

type seed struct {
	name, icon, description, category string
}

var builtin = []seed{
	{"Milk", "drop.fill", "Fresh milk 2.5%, 1 l", CategoryDairy},
	{"Cheese", "rectangle.fill", "Semi-hard cheese, 200 g", CategoryDairy},
	{"Cottage cheese", "square.fill", "Cottage cheese 5%, 200 g", CategoryDairy},
	{"Sour cream", "circle.fill", "Sour cream 15%, 200 g", CategoryDairy},
	{"Yogurt", "cup.and.saucer.fill", "Fruit yogurt, 150 g", CategoryDairy},
	{"Kefir", "drop.fill", "Kefir 2.5%, 1 l", CategoryDairy},
	{"Butter", "square.fill", "Butter 82.5%, 180 g", CategoryDairy},

	{"White bread", "rectangle.roundedtop.fill", "Wheat bread, 300 g", CategoryBakery},
	{"Loaf", "rectangle.split.2x1.fill", "Sliced loaf, 300 g", CategoryBakery},
	{"Baguette", "rectangle.split.1x2.fill", "French baguette, 250 g", CategoryBakery},
	{"Buns", "circle.grid.2x2.fill", "Poppy seed buns, 4 pcs", CategoryBakery},
	{"Lavash", "rectangle.fill", "Armenian flatbread, 200 g", CategoryBakery},
	{"Croissants", "croissant.fill", "Chocolate croissants, 4 pcs", CategoryBakery},

	{"Apples", "circle.fill", "Golden apples, 1 kg", CategoryProduce},
	{"Bananas", "moon.fill", "Bananas, 1 kg", CategoryProduce},
	{"Cucumbers", "capsule.fill", "Fresh cucumbers, 500 g", CategoryProduce},
	{"Tomatoes", "circle.fill", "Tomatoes, 500 g", CategoryProduce},
	{"Potatoes", "oval.fill", "New potatoes, 1 kg", CategoryProduce},
	{"Carrots", "carrot.fill", "Fresh carrots, 1 kg", CategoryProduce},
	{"Oranges", "circle.fill", "Oranges, 1 kg", CategoryProduce},
	{"Onions", "onion.fill", "Yellow onions, 1 kg", CategoryProduce},

	{"Chicken fillet", "rectangle.fill", "Chilled chicken fillet, 500 g", CategoryMeatFish},
	{"Ground beef", "square.fill", "Ground beef, 400 g", CategoryMeatFish},
	{"Pork", "rectangle.on.rectangle.fill", "Pork for frying, 500 g", CategoryMeatFish},
	{"Salmon", "seal.fill", "Salmon fillet, 300 g", CategoryMeatFish},
	{"Boiled sausage", "rectangle.fill", "Doktorskaya sausage, 400 g", CategoryMeatFish},
	{"Shrimp", "shrimp.fill", "Peeled shrimp, 300 g", CategoryMeatFish},

	{"Soap", "square.fill", "Laundry soap, 100 g", CategoryHousehold},
	{"Shampoo", "drop.fill", "Shampoo for all hair types, 250 ml", CategoryHousehold},
	{"Toothpaste", "capsule.fill", "Complete care toothpaste, 100 ml", CategoryHousehold},
	{"Shower gel", "drop.fill", "Moisturizing shower gel, 250 ml", CategoryHousehold},
	{"Dish sponges", "square.stack.fill", "Dish washing sponges, 5 pcs", CategoryHousehold},
	{"Washing powder", "sparkles", "All-purpose washing powder, 1 kg", CategoryHousehold},
}

// Builtin returns the default grocery catalog in declaration order. Every call
// mints new identities, so it is meant to be called once at startup.
func Builtin() []domain.Product {
	out := make([]domain.Product, 0, len(builtin))
	for _, s := range builtin {
		out = append(out, domain.Product{
			ID:          uuid.NewString(),
			Name:        s.name,
			Icon:        s.icon,
			Description: s.description,
			Category:    s.category,
		})
	}
	return out
}
