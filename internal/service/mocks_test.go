package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"wardrobe/internal/model"
	"wardrobe/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockTokenStore is a mock implementation of TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

// MockCategoryRepository is a mock implementation of CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) UpsertByName(ctx context.Context, name string) (*model.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id uint) (*model.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

// MockClothingRepository is a mock implementation of ClothingRepository.
type MockClothingRepository struct {
	mock.Mock
}

func (m *MockClothingRepository) Create(ctx context.Context, item *model.ClothingItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockClothingRepository) FindByUser(ctx context.Context, userID uint) ([]model.ClothingItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ClothingItem), args.Error(1)
}

func (m *MockClothingRepository) FindByNameAndUser(ctx context.Context, name string, userID uint) (*model.ClothingItem, error) {
	args := m.Called(ctx, name, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ClothingItem), args.Error(1)
}

func (m *MockClothingRepository) FindByIDAndUser(ctx context.Context, id, userID uint) (*model.ClothingItem, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ClothingItem), args.Error(1)
}

func (m *MockClothingRepository) Update(ctx context.Context, item *model.ClothingItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockClothingRepository) DeleteByIDAndUser(ctx context.Context, id, userID uint) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// MockOutfitRepository is a mock implementation of OutfitRepository.
type MockOutfitRepository struct {
	mock.Mock
}

func (m *MockOutfitRepository) Create(ctx context.Context, outfit *model.Outfit) error {
	args := m.Called(ctx, outfit)
	return args.Error(0)
}

func (m *MockOutfitRepository) FindByUser(ctx context.Context, userID uint, q repository.OutfitQuery) ([]model.Outfit, error) {
	args := m.Called(ctx, userID, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Outfit), args.Error(1)
}

func (m *MockOutfitRepository) FindByIDAndUser(ctx context.Context, id, userID uint, q repository.OutfitQuery) (*model.Outfit, error) {
	args := m.Called(ctx, id, userID, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Outfit), args.Error(1)
}

func (m *MockOutfitRepository) Update(ctx context.Context, outfit *model.Outfit, replaceItems bool) error {
	args := m.Called(ctx, outfit, replaceItems)
	return args.Error(0)
}

func (m *MockOutfitRepository) DeleteByIDAndUser(ctx context.Context, id, userID uint) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}
