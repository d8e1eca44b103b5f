package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"wardrobe/internal/model"
)

// ClothingRepository defines clothing item persistence operations. Every
// lookup and mutation is scoped to the owning user in SQL.
type ClothingRepository interface {
	Create(ctx context.Context, item *model.ClothingItem) error
	FindByUser(ctx context.Context, userID uint) ([]model.ClothingItem, error)
	FindByNameAndUser(ctx context.Context, name string, userID uint) (*model.ClothingItem, error)
	FindByIDAndUser(ctx context.Context, id, userID uint) (*model.ClothingItem, error)
	Update(ctx context.Context, item *model.ClothingItem) error
	DeleteByIDAndUser(ctx context.Context, id, userID uint) error
}

type clothingRepository struct {
	db *gorm.DB
}

// NewClothingRepository creates a new clothing item repository.
func NewClothingRepository(db *gorm.DB) ClothingRepository {
	return &clothingRepository{db: db}
}

// Create inserts the item without touching its category row.
func (r *clothingRepository) Create(ctx context.Context, item *model.ClothingItem) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(item).Error
}

// FindByUser lists a user's items, newest first, with their category.
func (r *clothingRepository) FindByUser(ctx context.Context, userID uint) ([]model.ClothingItem, error) {
	items := []model.ClothingItem{}
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindByNameAndUser returns the oldest item with exactly this name.
func (r *clothingRepository) FindByNameAndUser(ctx context.Context, name string, userID uint) (*model.ClothingItem, error) {
	var item model.ClothingItem
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Where("name = ? AND user_id = ?", name, userID).
		Order("id ASC").
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *clothingRepository) FindByIDAndUser(ctx context.Context, id, userID uint) (*model.ClothingItem, error) {
	var item model.ClothingItem
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Where("id = ? AND user_id = ?", id, userID).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Update writes the mutable columns of an item still owned by item.UserID.
func (r *clothingRepository) Update(ctx context.Context, item *model.ClothingItem) error {
	res := r.db.WithContext(ctx).
		Model(item).
		Where("user_id = ?", item.UserID).
		Select("name", "image_url", "category_id", "updated_at").
		Updates(item)
	if res.Error != nil {
		return res.Error
	}
	return r.ensureOwned(ctx, item.ID, item.UserID)
}

// DeleteByIDAndUser removes an item and its outfit links.
func (r *clothingRepository) DeleteByIDAndUser(ctx context.Context, id, userID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			"DELETE FROM outfit_items WHERE clothing_item_id IN (SELECT id FROM clothing_items WHERE id = ? AND user_id = ?)",
			id, userID,
		).Error; err != nil {
			return err
		}
		res := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&model.ClothingItem{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// ensureOwned distinguishes "no such row" from "row unchanged"; MySQL reports
// zero affected rows for no-op updates.
func (r *clothingRepository) ensureOwned(ctx context.Context, id, userID uint) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.ClothingItem{}).
		Where("id = ? AND user_id = ?", id, userID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
