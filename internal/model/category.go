package model

import "time"

// UncategorizedName is the category given to items created implicitly from an outfit.
const UncategorizedName = "Uncategorized"

// DefaultCategories are seeded by cmd/seed.
var DefaultCategories = []string{
	"Tops",
	"Bottoms",
	"Outerwear",
	"Shoes",
	"Accessories",
	UncategorizedName,
}

// Category groups clothing items. Names are globally unique.
type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;size:100;not null"`
	CreatedAt time.Time `json:"-"`
}
