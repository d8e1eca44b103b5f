package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"wardrobe/internal/config"
	"wardrobe/internal/handler"
)

// Handlers groups the HTTP handlers mounted by Register.
type Handlers struct {
	Auth     *handler.AuthHandler
	Category *handler.CategoryHandler
	Clothing *handler.ClothingHandler
	Outfit   *handler.OutfitHandler
	Upload   *handler.UploadHandler
}

// Register wires routes and middleware.
func Register(e *echo.Echo, cfg *config.Config, h Handlers, authMiddleware echo.MiddlewareFunc) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	// Add validator
	e.Validator = NewValidator()

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	if cfg.UploadBackend == config.UploadLocal {
		e.Static("/uploads", cfg.UploadDir)
	}

	api := e.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]bool{"ok": true})
	})

	// Public routes
	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)

	// Secured routes (require JWT authentication)
	secured := api.Group("", authMiddleware)

	secured.GET("/auth/me", h.Auth.Me)
	secured.POST("/auth/logout", h.Auth.Logout)

	secured.GET("/categories", h.Category.List)

	secured.GET("/clothing", h.Clothing.List)
	secured.POST("/clothing", h.Clothing.Create)
	secured.PUT("/clothing/:id", h.Clothing.Update)
	secured.DELETE("/clothing/:id", h.Clothing.Delete)

	secured.GET("/outfits", h.Outfit.List)
	secured.POST("/outfits", h.Outfit.Create)
	secured.GET("/outfits/:id", h.Outfit.Get)
	secured.PUT("/outfits/:id", h.Outfit.Update)
	secured.DELETE("/outfits/:id", h.Outfit.Delete)

	secured.POST("/upload", h.Upload.Upload)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator returns the validator used for request bodies.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
