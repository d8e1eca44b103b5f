package model

import "time"

// ClothingItem is a single garment owned by a user.
type ClothingItem struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name" gorm:"size:255;not null;index:idx_clothing_owner_name,priority:2"`
	ImageURL   string    `json:"imageUrl" gorm:"size:1024;not null;default:''"`
	UserID     uint      `json:"userId" gorm:"not null;index;index:idx_clothing_owner_name,priority:1"`
	CategoryID uint      `json:"categoryId" gorm:"not null;index"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`

	// Relations
	Category Category `json:"category" gorm:"foreignKey:CategoryID"`
}
