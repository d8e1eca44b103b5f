package service

import (
	"context"
	"fmt"
	"strings"

	apperrors "wardrobe/internal/errors"
	"wardrobe/internal/model"
	"wardrobe/internal/repository"
)

const (
	msgTitleRequired  = "Title is required"
	msgOutfitNotFound = "Outfit not found"
)

// OutfitInput carries the client-supplied outfit fields. Which of them are
// used depends on the configured outfit shape.
type OutfitInput struct {
	Title     model.Optional[string]   `json:"title" swaggertype:"string"`
	Tags      model.Optional[[]string] `json:"tags" swaggertype:"array,string"`
	Mood      model.Optional[string]   `json:"mood" swaggertype:"string"`
	ImageURL  model.Optional[string]   `json:"imageUrl" swaggertype:"string"`
	WornOn    model.Optional[string]   `json:"wornOn" swaggertype:"string" example:"2024-05-01"`
	ItemNames model.Optional[[]string] `json:"itemNames" swaggertype:"array,string"`
}

// OutfitService manages the caller's outfits. Results are the wire form of
// the configured shape: model.TaggedOutfit or model.ItemizedOutfit.
type OutfitService interface {
	List(ctx context.Context, userID uint) ([]interface{}, error)
	Get(ctx context.Context, userID, id uint) (interface{}, error)
	Create(ctx context.Context, userID uint, in OutfitInput) (interface{}, error)
	Update(ctx context.Context, userID, id uint, in OutfitInput) (interface{}, error)
	Delete(ctx context.Context, userID, id uint) error
}

type outfitService struct {
	outfits repository.OutfitRepository
	shape   outfitShape
}

// NewOutfitService builds an OutfitService for the named shape (tags or items).
func NewOutfitService(
	shape string,
	outfits repository.OutfitRepository,
	clothing repository.ClothingRepository,
	categories repository.CategoryRepository,
) (OutfitService, error) {
	s, err := newOutfitShape(shape, clothing, categories)
	if err != nil {
		return nil, err
	}
	return &outfitService{outfits: outfits, shape: s}, nil
}

func (s *outfitService) List(ctx context.Context, userID uint) ([]interface{}, error) {
	outfits, err := s.outfits.FindByUser(ctx, userID, s.shape.query())
	if err != nil {
		return nil, err
	}
	out := make([]interface{}, 0, len(outfits))
	for i := range outfits {
		out = append(out, s.shape.present(&outfits[i]))
	}
	return out, nil
}

func (s *outfitService) Get(ctx context.Context, userID, id uint) (interface{}, error) {
	outfit, err := s.outfits.FindByIDAndUser(ctx, id, userID, s.shape.query())
	if err != nil {
		return nil, notFoundOr(err, msgOutfitNotFound)
	}
	return s.shape.present(outfit), nil
}

func (s *outfitService) Create(ctx context.Context, userID uint, in OutfitInput) (interface{}, error) {
	title := strings.TrimSpace(in.Title.Value)
	if title == "" {
		return nil, apperrors.Validation(msgTitleRequired)
	}

	outfit := &model.Outfit{Title: title, UserID: userID}
	if _, err := s.shape.apply(ctx, userID, outfit, in, true); err != nil {
		return nil, err
	}

	if err := s.outfits.Create(ctx, outfit); err != nil {
		return nil, fmt.Errorf("create outfit: %w", err)
	}
	return s.shape.present(outfit), nil
}

func (s *outfitService) Update(ctx context.Context, userID, id uint, in OutfitInput) (interface{}, error) {
	title, titleSet := in.Title.Get()
	title = strings.TrimSpace(title)
	if titleSet && title == "" {
		return nil, apperrors.Validation(msgTitleRequired)
	}

	outfit, err := s.outfits.FindByIDAndUser(ctx, id, userID, s.shape.query())
	if err != nil {
		return nil, notFoundOr(err, msgOutfitNotFound)
	}
	if titleSet {
		outfit.Title = title
	}

	replaceItems, err := s.shape.apply(ctx, userID, outfit, in, false)
	if err != nil {
		return nil, err
	}

	if err := s.outfits.Update(ctx, outfit, replaceItems); err != nil {
		return nil, notFoundOr(err, msgOutfitNotFound)
	}
	return s.shape.present(outfit), nil
}

func (s *outfitService) Delete(ctx context.Context, userID, id uint) error {
	if err := s.outfits.DeleteByIDAndUser(ctx, id, userID); err != nil {
		return notFoundOr(err, msgOutfitNotFound)
	}
	return nil
}
