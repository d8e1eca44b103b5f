package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"wardrobe/internal/auth"
	"wardrobe/internal/cache"
	apperrors "wardrobe/internal/errors"
	"wardrobe/internal/model"
	"wardrobe/internal/repository"
)

const (
	bcryptCost        = 10
	minPasswordLength = 6
	userCacheTTL      = 5 * time.Minute
)

const (
	msgEmailRequired       = "Email is required"
	msgPasswordTooShort    = "Password must be at least 6 characters"
	msgEmailInUse          = "Email already in use"
	msgCredentialsRequired = "Email and password are required"
	msgInvalidCredentials  = "Invalid credentials"
	msgUserNotFound        = "User not found"
)

// AuthService handles registration, login and session lifecycle.
type AuthService interface {
	Register(ctx context.Context, email, password, name string) (*model.User, string, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	Me(ctx context.Context, userID uint) (*model.User, error)
	Logout(ctx context.Context, claims *auth.Claims) error
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
	cache      *cache.Client
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface, cache *cache.Client) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		tokenStore: tokenStore,
		cache:      cache,
	}
}

// Register creates a user with a hashed password and signs them in.
func (s *authService) Register(ctx context.Context, email, password, name string) (*model.User, string, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, "", apperrors.Validation(msgEmailRequired)
	}
	if utf8.RuneCountInString(password) < minPasswordLength {
		return nil, "", apperrors.Validation(msgPasswordTooShort)
	}

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, "", apperrors.Conflict(msgEmailInUse)
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        email,
		PasswordHash: string(hashedPassword),
	}
	if trimmed := strings.TrimSpace(name); trimmed != "" {
		user.Name = &trimmed
	}

	// The pre-check races with concurrent registrations; the unique index decides.
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", apperrors.Conflict(msgEmailInUse)
		}
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}
	return user, token, nil
}

// Login verifies credentials and issues a token. Unknown users and wrong
// passwords fail identically.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, "", apperrors.Validation(msgCredentialsRequired)
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperrors.Auth(msgInvalidCredentials)
		}
		return nil, "", fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperrors.Auth(msgInvalidCredentials)
	}

	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}
	return user, token, nil
}

// Me returns the profile of the authenticated user, cached briefly in Redis.
func (s *authService) Me(ctx context.Context, userID uint) (*model.User, error) {
	key := userCacheKey(userID)
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound(msgUserNotFound)
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, key, payload, userCacheTTL)
	}
	return user, nil
}

// Logout revokes the presented token until it would have expired anyway.
func (s *authService) Logout(ctx context.Context, claims *auth.Claims) error {
	if claims == nil {
		return apperrors.Auth("Invalid or expired token")
	}
	if err := s.tokenStore.RevokeToken(ctx, claims.ID, claims.Remaining(time.Now())); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	_ = s.cache.Delete(ctx, userCacheKey(claims.UserID))
	return nil
}

func userCacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
