package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"wardrobe/internal/config"
	apperrors "wardrobe/internal/errors"
	"wardrobe/internal/model"
)

type outfitMocks struct {
	outfits    *MockOutfitRepository
	clothing   *MockClothingRepository
	categories *MockCategoryRepository
}

func newTestOutfitService(t *testing.T, shape string) (OutfitService, outfitMocks) {
	t.Helper()
	m := outfitMocks{
		outfits:    new(MockOutfitRepository),
		clothing:   new(MockClothingRepository),
		categories: new(MockCategoryRepository),
	}
	svc, err := NewOutfitService(shape, m.outfits, m.clothing, m.categories)
	require.NoError(t, err)
	return svc, m
}

func TestNewOutfitService_UnknownShape(t *testing.T) {
	_, err := NewOutfitService("grid", nil, nil, nil)
	assert.Error(t, err)
}

func TestOutfitService_CreateTags(t *testing.T) {
	tests := []struct {
		name        string
		input       OutfitInput
		wantTags    []string
		wantMood    string
		expectedMsg string
	}{
		{
			name:     "tags keep their order",
			input:    OutfitInput{Title: model.Some(" Date night "), Tags: model.Some([]string{"b", "a", "c"}), Mood: model.Some("cozy")},
			wantTags: []string{"b", "a", "c"},
			wantMood: "cozy",
		},
		{
			name:     "tags default to empty",
			input:    OutfitInput{Title: model.Some("Gym")},
			wantTags: []string{},
		},
		{
			name:        "blank title",
			input:       OutfitInput{Title: model.Some("   ")},
			expectedMsg: "Title is required",
		},
		{
			name:        "missing title",
			input:       OutfitInput{Tags: model.Some([]string{"x"})},
			expectedMsg: "Title is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestOutfitService(t, config.ShapeTags)
			if tt.expectedMsg == "" {
				m.outfits.On("Create", mock.Anything, mock.AnythingOfType("*model.Outfit")).
					Run(func(args mock.Arguments) { args.Get(1).(*model.Outfit).ID = 10 }).
					Return(nil)
			}

			got, err := svc.Create(context.Background(), 1, tt.input)

			if tt.expectedMsg != "" {
				assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
				assert.EqualError(t, err, tt.expectedMsg)
				m.outfits.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			outfit, ok := got.(model.TaggedOutfit)
			require.True(t, ok)
			assert.Equal(t, uint(10), outfit.ID)
			assert.Equal(t, tt.wantTags, outfit.Tags)
			assert.Equal(t, tt.wantMood, outfit.Mood)
			assert.Equal(t, outfit.Title, strings.TrimSpace(outfit.Title))
		})
	}
}

func TestOutfitService_UpdateTags(t *testing.T) {
	stored := func() *model.Outfit {
		return &model.Outfit{ID: 3, UserID: 1, Title: "Old", Tags: []string{"keep"}, Mood: "calm"}
	}

	t.Run("omitted fields keep stored values", func(t *testing.T) {
		svc, m := newTestOutfitService(t, config.ShapeTags)
		m.outfits.On("FindByIDAndUser", mock.Anything, uint(3), uint(1), mock.Anything).Return(stored(), nil)
		m.outfits.On("Update", mock.Anything, mock.MatchedBy(func(o *model.Outfit) bool {
			return o.Title == "New" && o.Mood == "calm" && len(o.Tags) == 1 && o.Tags[0] == "keep"
		}), false).Return(nil)

		got, err := svc.Update(context.Background(), 1, 3, OutfitInput{Title: model.Some("New")})
		require.NoError(t, err)
		assert.Equal(t, "New", got.(model.TaggedOutfit).Title)
		m.outfits.AssertExpectations(t)
	})

	t.Run("supplied tags replace the list", func(t *testing.T) {
		svc, m := newTestOutfitService(t, config.ShapeTags)
		m.outfits.On("FindByIDAndUser", mock.Anything, uint(3), uint(1), mock.Anything).Return(stored(), nil)
		m.outfits.On("Update", mock.Anything, mock.Anything, false).Return(nil)

		got, err := svc.Update(context.Background(), 1, 3, OutfitInput{Tags: model.Some([]string{"x", "y"})})
		require.NoError(t, err)
		outfit := got.(model.TaggedOutfit)
		assert.Equal(t, "Old", outfit.Title)
		assert.Equal(t, []string{"x", "y"}, outfit.Tags)
	})

	t.Run("blank title", func(t *testing.T) {
		svc, m := newTestOutfitService(t, config.ShapeTags)

		_, err := svc.Update(context.Background(), 1, 3, OutfitInput{Title: model.Some(" ")})
		assert.EqualError(t, err, "Title is required")
		m.outfits.AssertNotCalled(t, "FindByIDAndUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("not owned", func(t *testing.T) {
		svc, m := newTestOutfitService(t, config.ShapeTags)
		m.outfits.On("FindByIDAndUser", mock.Anything, uint(3), uint(2), mock.Anything).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Update(context.Background(), 2, 3, OutfitInput{Title: model.Some("Mine")})
		assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
		assert.EqualError(t, err, "Outfit not found")
	})
}

func TestOutfitService_CreateItems(t *testing.T) {
	svc, m := newTestOutfitService(t, config.ShapeItems)
	uncategorized := &model.Category{ID: 6, Name: model.UncategorizedName}
	hat := &model.ClothingItem{ID: 20, Name: "Red Hat", UserID: 1, CategoryID: 1}

	m.clothing.On("FindByNameAndUser", mock.Anything, "Red Hat", uint(1)).Return(hat, nil)
	m.clothing.On("FindByNameAndUser", mock.Anything, "Scarf", uint(1)).Return(nil, gorm.ErrRecordNotFound)
	m.categories.On("UpsertByName", mock.Anything, model.UncategorizedName).Return(uncategorized, nil).Once()
	m.clothing.On("Create", mock.Anything, mock.MatchedBy(func(i *model.ClothingItem) bool {
		return i.Name == "Scarf" && i.UserID == 1 && i.CategoryID == 6
	})).Run(func(args mock.Arguments) { args.Get(1).(*model.ClothingItem).ID = 5 }).Return(nil).Once()
	m.outfits.On("Create", mock.Anything, mock.MatchedBy(func(o *model.Outfit) bool {
		return o.Title == "Winter" && len(o.Items) == 2 && o.WornOn != nil
	})).Return(nil)

	got, err := svc.Create(context.Background(), 1, OutfitInput{
		Title:     model.Some("Winter"),
		WornOn:    model.Some("2024-01-15"),
		ItemNames: model.Some([]string{" Red Hat", "Scarf", "", "Red Hat", "  "}),
	})
	require.NoError(t, err)

	outfit, ok := got.(model.ItemizedOutfit)
	require.True(t, ok)
	require.Len(t, outfit.Items, 2)
	assert.Equal(t, uint(5), outfit.Items[0].ID)
	assert.Equal(t, model.UncategorizedName, outfit.Items[0].Category.Name)
	assert.Equal(t, uint(20), outfit.Items[1].ID)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), *outfit.WornOn)

	m.clothing.AssertExpectations(t)
	m.categories.AssertExpectations(t)
	m.outfits.AssertExpectations(t)
}

func TestOutfitService_CreateItems_DefaultsAndErrors(t *testing.T) {
	t.Run("worn on defaults to today", func(t *testing.T) {
		svc, m := newTestOutfitService(t, config.ShapeItems)
		fixed := time.Date(2025, 3, 9, 22, 30, 0, 0, time.UTC)
		svc.(*outfitService).shape.(*itemsShape).now = func() time.Time { return fixed }
		m.outfits.On("Create", mock.Anything, mock.Anything).Return(nil)

		got, err := svc.Create(context.Background(), 1, OutfitInput{Title: model.Some("Plain")})
		require.NoError(t, err)
		outfit := got.(model.ItemizedOutfit)
		assert.Equal(t, time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), *outfit.WornOn)
		assert.NotNil(t, outfit.Items)
		assert.Empty(t, outfit.Items)
	})

	t.Run("invalid worn on", func(t *testing.T) {
		svc, m := newTestOutfitService(t, config.ShapeItems)

		_, err := svc.Create(context.Background(), 1, OutfitInput{Title: model.Some("x"), WornOn: model.Some("yesterday")})
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
		assert.EqualError(t, err, "Invalid wornOn date")
		m.outfits.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestOutfitService_UpdateItems_ReplacesLinks(t *testing.T) {
	svc, m := newTestOutfitService(t, config.ShapeItems)
	stored := &model.Outfit{ID: 3, UserID: 1, Title: "Old", Items: []model.ClothingItem{{ID: 1, Name: "Boots"}}}
	m.outfits.On("FindByIDAndUser", mock.Anything, uint(3), uint(1), mock.Anything).Return(stored, nil)
	m.clothing.On("FindByNameAndUser", mock.Anything, "Coat", uint(1)).Return(&model.ClothingItem{ID: 2, Name: "Coat"}, nil)
	m.outfits.On("Update", mock.Anything, mock.MatchedBy(func(o *model.Outfit) bool {
		return len(o.Items) == 1 && o.Items[0].ID == 2
	}), true).Return(nil)

	got, err := svc.Update(context.Background(), 1, 3, OutfitInput{ItemNames: model.Some([]string{"Coat"})})
	require.NoError(t, err)
	assert.Equal(t, "Coat", got.(model.ItemizedOutfit).Items[0].Name)
	m.outfits.AssertExpectations(t)
}

func TestOutfitService_ListAndGet(t *testing.T) {
	svc, m := newTestOutfitService(t, config.ShapeTags)
	m.outfits.On("FindByUser", mock.Anything, uint(1), mock.Anything).Return([]model.Outfit{
		{ID: 2, Title: "B"},
		{ID: 1, Title: "A", Tags: []string{"t"}},
	}, nil)
	m.outfits.On("FindByIDAndUser", mock.Anything, uint(9), uint(1), mock.Anything).Return(nil, gorm.ErrRecordNotFound)

	list, err := svc.List(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, []string{}, list[0].(model.TaggedOutfit).Tags)
	assert.Equal(t, []string{"t"}, list[1].(model.TaggedOutfit).Tags)

	_, err = svc.Get(context.Background(), 1, 9)
	assert.EqualError(t, err, "Outfit not found")
}

func TestOutfitService_Delete(t *testing.T) {
	svc, m := newTestOutfitService(t, config.ShapeTags)
	m.outfits.On("DeleteByIDAndUser", mock.Anything, uint(3), uint(1)).Return(nil)
	m.outfits.On("DeleteByIDAndUser", mock.Anything, uint(3), uint(2)).Return(gorm.ErrRecordNotFound)

	assert.NoError(t, svc.Delete(context.Background(), 1, 3))
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(svc.Delete(context.Background(), 2, 3)))
}

func TestNormalizeNames(t *testing.T) {
	assert.Equal(t, []string{"a", "B", "b"}, normalizeNames([]string{" a", "B", "", "a ", "b", "   "}))
	assert.Empty(t, normalizeNames(nil))
}

func TestParseWornOn(t *testing.T) {
	d, err := parseWornOn("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), d)

	ts, err := parseWornOn("2024-02-29T10:00:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 8, 0, 0, 0, time.UTC), ts)

	_, err = parseWornOn("29/02/2024")
	assert.Error(t, err)
}
