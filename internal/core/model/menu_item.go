package model

import (
	"delights/internal/core/util"
)

const (
	CategorySweets        = "sweets"
	CategoryDailyPlatters = "daily-platters"

	// DefaultMenuImage is used when an item is created without an image.
	DefaultMenuImage = "assets/images/menu1.jpg"
)

type MenuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
}

func NewMenuItem(name, description string, price float64, image, category string) *MenuItem {
	if image == "" {
		image = DefaultMenuImage
	}
	return &MenuItem{
		ID:          util.GenerateID("item"),
		Name:        name,
		Description: description,
		Price:       price,
		Image:       image,
		Category:    util.NormalizeCategory(category),
	}
}
