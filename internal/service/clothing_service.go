package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	apperrors "wardrobe/internal/errors"
	"wardrobe/internal/model"
	"wardrobe/internal/repository"
)

const (
	msgNameRequired       = "Name is required"
	msgCategoryIDRequired = "A valid categoryId is required"
	msgCategoryNotFound   = "Category not found"
	msgClothingNotFound   = "Clothing item not found"
)

// ClothingInput carries the client-supplied fields of a clothing item. Unset
// fields are left alone on update.
type ClothingInput struct {
	Name       model.Optional[string] `json:"name" swaggertype:"string"`
	ImageURL   model.Optional[string] `json:"imageUrl" swaggertype:"string"`
	CategoryID model.Optional[int64]  `json:"categoryId" swaggertype:"integer"`
}

// ClothingService manages the caller's clothing items.
type ClothingService interface {
	List(ctx context.Context, userID uint) ([]model.ClothingItem, error)
	Create(ctx context.Context, userID uint, in ClothingInput) (*model.ClothingItem, error)
	Update(ctx context.Context, userID, id uint, in ClothingInput) (*model.ClothingItem, error)
	Delete(ctx context.Context, userID, id uint) error
}

type clothingService struct {
	items      repository.ClothingRepository
	categories repository.CategoryRepository
}

// NewClothingService builds a ClothingService.
func NewClothingService(items repository.ClothingRepository, categories repository.CategoryRepository) ClothingService {
	return &clothingService{items: items, categories: categories}
}

func (s *clothingService) List(ctx context.Context, userID uint) ([]model.ClothingItem, error) {
	return s.items.FindByUser(ctx, userID)
}

func (s *clothingService) Create(ctx context.Context, userID uint, in ClothingInput) (*model.ClothingItem, error) {
	name := strings.TrimSpace(in.Name.Value)
	if name == "" {
		return nil, apperrors.Validation(msgNameRequired)
	}
	categoryID, ok := in.CategoryID.Get()
	if !ok || categoryID <= 0 {
		return nil, apperrors.Validation(msgCategoryIDRequired)
	}

	category, err := s.findCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	item := &model.ClothingItem{
		Name:       name,
		ImageURL:   in.ImageURL.Value,
		UserID:     userID,
		CategoryID: category.ID,
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create clothing item: %w", err)
	}
	item.Category = *category
	return item, nil
}

func (s *clothingService) Update(ctx context.Context, userID, id uint, in ClothingInput) (*model.ClothingItem, error) {
	item, err := s.items.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, notFoundOr(err, msgClothingNotFound)
	}

	if name, ok := in.Name.Get(); ok {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			item.Name = trimmed
		}
	}
	if imageURL, ok := in.ImageURL.Get(); ok {
		item.ImageURL = imageURL
	}
	if categoryID, ok := in.CategoryID.Get(); ok && categoryID > 0 {
		category, err := s.findCategory(ctx, categoryID)
		if err != nil {
			return nil, err
		}
		item.CategoryID = category.ID
		item.Category = *category
	}

	if err := s.items.Update(ctx, item); err != nil {
		return nil, notFoundOr(err, msgClothingNotFound)
	}
	return item, nil
}

func (s *clothingService) Delete(ctx context.Context, userID, id uint) error {
	if err := s.items.DeleteByIDAndUser(ctx, id, userID); err != nil {
		return notFoundOr(err, msgClothingNotFound)
	}
	return nil
}

// findCategory reports a missing category as a client error.
func (s *clothingService) findCategory(ctx context.Context, id int64) (*model.Category, error) {
	category, err := s.categories.FindByID(ctx, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Validation(msgCategoryNotFound)
		}
		return nil, fmt.Errorf("find category: %w", err)
	}
	return category, nil
}

// notFoundOr turns a missing-row error into a NotFound with message.
func notFoundOr(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound(message)
	}
	return err
}
