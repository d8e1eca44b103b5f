package main

import (
	"context"
	"fmt"
	"log"

	"wardrobe/internal/config"
	"wardrobe/internal/db"
	"wardrobe/internal/model"
	"wardrobe/internal/repository"
)

func main() {
	log.Println("Starting seed script...")

	// Load configuration
	cfg := config.Load()

	// Connect to database
	dsn := cfg.MySQLDSN
	if cfg.DBDriver == config.DriverSQLite {
		dsn = cfg.SQLitePath
	}
	gormDB, err := db.Open(cfg.DBDriver, dsn, cfg.DBLogLevel)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	categoryRepo := repository.NewCategoryRepository(gormDB)

	log.Println("Seeding categories into database...")
	categories, err := seedCategories(context.Background(), categoryRepo, model.DefaultCategories)
	if err != nil {
		log.Fatalf("Failed to seed categories: %v", err)
	}

	log.Printf("Seed completed successfully!")
	for _, c := range categories {
		log.Printf("  - %d %s", c.ID, c.Name)
	}
}

// seedCategories upserts each name, so running the seed twice is harmless.
func seedCategories(ctx context.Context, repo repository.CategoryRepository, names []string) ([]model.Category, error) {
	out := make([]model.Category, 0, len(names))
	for _, name := range names {
		category, err := repo.UpsertByName(ctx, name)
		if err != nil {
			return out, fmt.Errorf("error seeding category %q: %w", name, err)
		}
		out = append(out, *category)
	}
	return out, nil
}
