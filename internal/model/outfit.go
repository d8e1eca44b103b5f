package model

import (
	"time"

	"gorm.io/datatypes"
)

// Outfit is a titled look owned by a user. Both persisted shapes share this
// table: Tags/Mood/ImageURL for the tag-list shape, WornOn/Items for the
// items shape.
type Outfit struct {
	ID        uint                        `json:"id" gorm:"primaryKey"`
	Title     string                      `json:"title" gorm:"size:255;not null"`
	UserID    uint                        `json:"-" gorm:"not null;index"`
	Tags      datatypes.JSONSlice[string] `json:"tags"`
	Mood      string                      `json:"mood" gorm:"size:100;not null;default:''"`
	ImageURL  *string                     `json:"imageUrl" gorm:"size:1024"`
	WornOn    *time.Time                  `json:"wornOn" gorm:"index"`
	CreatedAt time.Time                   `json:"createdAt"`
	UpdatedAt time.Time                   `json:"-"`

	// Relations
	Items []ClothingItem `json:"items" gorm:"many2many:outfit_items;constraint:OnDelete:CASCADE"`
}

// TagList returns the stored tags, never nil.
func (o *Outfit) TagList() []string {
	if o.Tags == nil {
		return []string{}
	}
	return []string(o.Tags)
}

// TaggedOutfit is the wire form of an outfit in the tag-list shape.
type TaggedOutfit struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Tags      []string  `json:"tags"`
	Mood      string    `json:"mood"`
	ImageURL  *string   `json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

// ItemizedOutfit is the wire form of an outfit in the items shape.
type ItemizedOutfit struct {
	ID        uint           `json:"id"`
	Title     string         `json:"title"`
	WornOn    *time.Time     `json:"wornOn"`
	Items     []ClothingItem `json:"items"`
	CreatedAt time.Time      `json:"createdAt"`
}
