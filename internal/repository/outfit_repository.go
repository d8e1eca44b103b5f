package repository

import (
	"context"

	"gorm.io/gorm"

	"wardrobe/internal/model"
)

// OutfitQuery controls ordering and eager loading of outfit reads.
type OutfitQuery struct {
	// OrderBy is a list of "column direction" terms applied in order.
	OrderBy   []string
	WithItems bool
}

// OutfitRepository defines outfit persistence operations. Every lookup and
// mutation is scoped to the owning user in SQL.
type OutfitRepository interface {
	Create(ctx context.Context, outfit *model.Outfit) error
	FindByUser(ctx context.Context, userID uint, q OutfitQuery) ([]model.Outfit, error)
	FindByIDAndUser(ctx context.Context, id, userID uint, q OutfitQuery) (*model.Outfit, error)
	Update(ctx context.Context, outfit *model.Outfit, replaceItems bool) error
	DeleteByIDAndUser(ctx context.Context, id, userID uint) error
}

type outfitRepository struct {
	db *gorm.DB
}

// NewOutfitRepository creates a new outfit repository.
func NewOutfitRepository(db *gorm.DB) OutfitRepository {
	return &outfitRepository{db: db}
}

// Create inserts the outfit and links outfit.Items, which must already exist.
func (r *outfitRepository) Create(ctx context.Context, outfit *model.Outfit) error {
	return r.db.WithContext(ctx).Omit("Items.*").Create(outfit).Error
}

// FindByUser lists a user's outfits.
func (r *outfitRepository) FindByUser(ctx context.Context, userID uint, q OutfitQuery) ([]model.Outfit, error) {
	outfits := []model.Outfit{}
	if err := r.query(ctx, q).Where("user_id = ?", userID).Find(&outfits).Error; err != nil {
		return nil, err
	}
	return outfits, nil
}

func (r *outfitRepository) FindByIDAndUser(ctx context.Context, id, userID uint, q OutfitQuery) (*model.Outfit, error) {
	var outfit model.Outfit
	if err := r.query(ctx, q).Where("id = ? AND user_id = ?", id, userID).First(&outfit).Error; err != nil {
		return nil, err
	}
	return &outfit, nil
}

// Update writes the outfit's columns and, when replaceItems is set, makes
// outfit.Items the complete set of linked items.
func (r *outfitRepository) Update(ctx context.Context, outfit *model.Outfit, replaceItems bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(outfit).
			Where("user_id = ?", outfit.UserID).
			Select("title", "tags", "mood", "image_url", "worn_on", "updated_at").
			Updates(outfit)
		if res.Error != nil {
			return res.Error
		}

		var count int64
		if err := tx.Model(&model.Outfit{}).
			Where("id = ? AND user_id = ?", outfit.ID, outfit.UserID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}

		if !replaceItems {
			return nil
		}
		assoc := tx.Model(outfit).Omit("Items.*").Association("Items")
		if len(outfit.Items) == 0 {
			return assoc.Clear()
		}
		return assoc.Replace(outfit.Items)
	})
}

// DeleteByIDAndUser removes an outfit and its item links.
func (r *outfitRepository) DeleteByIDAndUser(ctx context.Context, id, userID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			"DELETE FROM outfit_items WHERE outfit_id IN (SELECT id FROM outfits WHERE id = ? AND user_id = ?)",
			id, userID,
		).Error; err != nil {
			return err
		}
		res := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&model.Outfit{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *outfitRepository) query(ctx context.Context, q OutfitQuery) *gorm.DB {
	db := r.db.WithContext(ctx)
	for _, term := range q.OrderBy {
		db = db.Order(term)
	}
	if q.WithItems {
		db = db.
			Preload("Items", func(db *gorm.DB) *gorm.DB {
				return db.Order("clothing_items.id ASC")
			}).
			Preload("Items.Category")
	}
	return db
}
