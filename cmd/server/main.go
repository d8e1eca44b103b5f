package main

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	_ "wardrobe/docs" // swagger docs

	"github.com/labstack/echo/v4"
	gommonlog "github.com/labstack/gommon/log"

	"wardrobe/internal/auth"
	"wardrobe/internal/cache"
	"wardrobe/internal/config"
	"wardrobe/internal/db"
	"wardrobe/internal/handler"
	"wardrobe/internal/repository"
	"wardrobe/internal/router"
	"wardrobe/internal/service"
	"wardrobe/internal/storage"
)

//go:generate swag init -g cmd/server/main.go -d ../../ -o ../../docs

// @title Wardrobe API
// @version 1.0
// @description Wardrobe tracker API: clothing items, outfits and image uploads behind JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(logLevel(cfg.LogLevel))

	dsn := cfg.MySQLDSN
	if cfg.DBDriver == config.DriverSQLite {
		dsn = cfg.SQLitePath
	}
	gormDB, err := db.Open(cfg.DBDriver, dsn, cfg.DBLogLevel)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if cfg.ResetDB {
		e.Logger.Warn("RESET_DB=true detected, dropping all tables...")
		if err := db.Reset(gormDB); err != nil {
			log.Fatalf("reset database: %v", err)
		}
	}

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("%v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()
	pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	if err := cacheClient.Ping(pingCtx); err != nil {
		e.Logger.Warnf("redis unavailable at %s, running without cache and token revocation: %v", cfg.RedisAddr, err)
	}
	cancel()

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	clothingRepo := repository.NewClothingRepository(gormDB)
	outfitRepo := repository.NewOutfitRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore, cacheClient)
	categoryService := service.NewCategoryService(categoryRepo)
	clothingService := service.NewClothingService(clothingRepo, categoryRepo)
	outfitService, err := service.NewOutfitService(cfg.OutfitShape, outfitRepo, clothingRepo, categoryRepo)
	if err != nil {
		log.Fatalf("outfit service: %v", err)
	}

	storer, err := storage.New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("upload storage: %v", err)
	}

	// Register routes
	router.Register(e, cfg, router.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Category: handler.NewCategoryHandler(categoryService),
		Clothing: handler.NewClothingHandler(clothingService),
		Outfit:   handler.NewOutfitHandler(outfitService),
		Upload:   handler.NewUploadHandler(storer),
	}, auth.Middleware(jwtService, tokenStore))

	e.Logger.Infof("outfit shape %q, uploads via %s", cfg.OutfitShape, cfg.UploadBackend)
	e.Logger.Infof("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}

func logLevel(level string) gommonlog.Lvl {
	switch strings.ToLower(level) {
	case "debug":
		return gommonlog.DEBUG
	case "warn":
		return gommonlog.WARN
	case "error":
		return gommonlog.ERROR
	case "off":
		return gommonlog.OFF
	default:
		return gommonlog.INFO
	}
}
