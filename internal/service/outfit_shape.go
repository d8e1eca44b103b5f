package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"wardrobe/internal/config"
	apperrors "wardrobe/internal/errors"
	"wardrobe/internal/model"
	"wardrobe/internal/repository"
)

const msgInvalidWornOn = "Invalid wornOn date"

// outfitShape is the persisted form an outfit takes: a free tag list, or a
// set of linked clothing items with a worn-on date.
type outfitShape interface {
	query() repository.OutfitQuery
	// apply copies the shape's fields from in onto outfit and reports whether
	// the linked items must be replaced.
	apply(ctx context.Context, userID uint, outfit *model.Outfit, in OutfitInput, creating bool) (bool, error)
	present(outfit *model.Outfit) interface{}
}

func newOutfitShape(name string, clothing repository.ClothingRepository, categories repository.CategoryRepository) (outfitShape, error) {
	switch name {
	case config.ShapeTags, "":
		return tagsShape{}, nil
	case config.ShapeItems:
		return &itemsShape{clothing: clothing, categories: categories, now: time.Now}, nil
	default:
		return nil, fmt.Errorf("unknown outfit shape %q", name)
	}
}

type tagsShape struct{}

func (tagsShape) query() repository.OutfitQuery {
	return repository.OutfitQuery{OrderBy: []string{"created_at DESC", "id DESC"}}
}

func (tagsShape) apply(_ context.Context, _ uint, outfit *model.Outfit, in OutfitInput, creating bool) (bool, error) {
	if tags, ok := in.Tags.Get(); ok {
		if tags == nil {
			tags = []string{}
		}
		outfit.Tags = datatypes.JSONSlice[string](tags)
	} else if creating {
		outfit.Tags = datatypes.JSONSlice[string]{}
	}
	if mood, ok := in.Mood.Get(); ok {
		outfit.Mood = mood
	}
	if imageURL, ok := in.ImageURL.Get(); ok {
		outfit.ImageURL = &imageURL
	}
	return false, nil
}

func (tagsShape) present(outfit *model.Outfit) interface{} {
	return model.TaggedOutfit{
		ID:        outfit.ID,
		Title:     outfit.Title,
		Tags:      outfit.TagList(),
		Mood:      outfit.Mood,
		ImageURL:  outfit.ImageURL,
		CreatedAt: outfit.CreatedAt,
	}
}

type itemsShape struct {
	clothing   repository.ClothingRepository
	categories repository.CategoryRepository
	now        func() time.Time
}

func (*itemsShape) query() repository.OutfitQuery {
	return repository.OutfitQuery{
		OrderBy:   []string{"worn_on DESC", "created_at DESC", "id DESC"},
		WithItems: true,
	}
}

func (s *itemsShape) apply(ctx context.Context, userID uint, outfit *model.Outfit, in OutfitInput, creating bool) (bool, error) {
	if raw, ok := in.WornOn.Get(); ok {
		wornOn, err := parseWornOn(raw)
		if err != nil {
			return false, apperrors.Validation(msgInvalidWornOn)
		}
		outfit.WornOn = &wornOn
	} else if creating {
		today := truncateToDate(s.now())
		outfit.WornOn = &today
	}

	names, ok := in.ItemNames.Get()
	if !ok {
		if creating {
			outfit.Items = []model.ClothingItem{}
		}
		return false, nil
	}

	items, err := s.resolveItems(ctx, userID, names)
	if err != nil {
		return false, err
	}
	outfit.Items = items
	return true, nil
}

// resolveItems maps each distinct non-blank name to the caller's item of that
// name, creating missing ones under the Uncategorized category. Concurrent
// requests for the same new name may each create an item.
func (s *itemsShape) resolveItems(ctx context.Context, userID uint, names []string) ([]model.ClothingItem, error) {
	var uncategorized *model.Category
	items := []model.ClothingItem{}

	for _, name := range normalizeNames(names) {
		item, err := s.clothing.FindByNameAndUser(ctx, name, userID)
		if err == nil {
			items = append(items, *item)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("find clothing item %q: %w", name, err)
		}

		if uncategorized == nil {
			uncategorized, err = s.categories.UpsertByName(ctx, model.UncategorizedName)
			if err != nil {
				return nil, fmt.Errorf("upsert category: %w", err)
			}
		}
		created := &model.ClothingItem{
			Name:       name,
			UserID:     userID,
			CategoryID: uncategorized.ID,
		}
		if err := s.clothing.Create(ctx, created); err != nil {
			return nil, fmt.Errorf("create clothing item %q: %w", name, err)
		}
		created.Category = *uncategorized
		items = append(items, *created)
	}

	slices.SortFunc(items, func(a, b model.ClothingItem) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return items, nil
}

func (*itemsShape) present(outfit *model.Outfit) interface{} {
	items := outfit.Items
	if items == nil {
		items = []model.ClothingItem{}
	}
	return model.ItemizedOutfit{
		ID:        outfit.ID,
		Title:     outfit.Title,
		WornOn:    outfit.WornOn,
		Items:     items,
		CreatedAt: outfit.CreatedAt,
	}
}

// normalizeNames trims names and drops blanks and repeats, keeping first-seen
// order.
func normalizeNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// parseWornOn accepts a calendar date or an RFC 3339 timestamp.
func parseWornOn(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

func truncateToDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
