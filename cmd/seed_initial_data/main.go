package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"quiz-zone/cmd/seed_initial_data/internal/seedmodels"
	"quiz-zone/internal/config"
	"quiz-zone/internal/database"
	"quiz-zone/internal/domain"
	"quiz-zone/internal/logger"
	"quiz-zone/internal/repository"
	"quiz-zone/internal/util"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

//go:embed seed_data.json
var defaultSeed []byte

func main() {
	ctx := context.Background()
	seedFile := pflag.String("file", "", "seed JSON file (defaults to the built-in category list)")
	pflag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		// If logger is not initialized yet, use fmt
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	log.Info("Starting initial data seeding process...")
	db, err := database.NewSQLXPostgresDB(cfg.GetDSN(), database.Options{MaxOpenConns: 2})
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	raw := defaultSeed
	if *seedFile != "" {
		log.Info("Loading seed data from file", zap.String("path", *seedFile))
		if raw, err = os.ReadFile(*seedFile); err != nil {
			log.Fatal("Failed to read seed file", zap.String("path", *seedFile), zap.Error(err))
		}
	}

	var seedCategories []seedmodels.SeedCategory
	if err := json.Unmarshal(raw, &seedCategories); err != nil {
		log.Fatal("Failed to unmarshal seed data", zap.Error(err))
	}
	log.Info("Successfully unmarshalled seed data", zap.Int("categories_loaded", len(seedCategories)))

	txManager := repository.NewTransactionManagerAdapter(db)
	categoryRepo := repository.NewCategoryDatabaseAdapter(db)

	failed := 0
	for _, sc := range seedCategories {
		err := txManager.WithTransaction(ctx, func(txCtx context.Context) error {
			return seedCategory(txCtx, categoryRepo, log, sc)
		})
		if err != nil {
			failed++
			log.Error("Error seeding category, transaction rolled back", zap.String("category", sc.Name), zap.Error(err))
		}
	}
	if failed > 0 {
		log.Fatal("Initial data seeding finished with errors", zap.Int("failed_categories", failed))
	}
	log.Info("Initial data seeding process completed.")
}

// seedCategory upserts by name, so re-running the seeder is harmless.
func seedCategory(ctx context.Context, repo domain.CategoryRepository, log *zap.Logger, sc seedmodels.SeedCategory) error {
	category := &domain.Category{Name: sc.Name, Slug: util.Slugify(sc.Name)}
	if err := repo.UpsertByName(ctx, category); err != nil {
		return fmt.Errorf("failed to upsert category %s: %w", sc.Name, err)
	}
	log.Info("Category ready", zap.String("id", category.ID), zap.String("name", category.Name))

	for _, name := range sc.SubCategories {
		sub := &domain.SubCategory{CategoryID: category.ID, Name: name, Slug: util.Slugify(name)}
		if err := repo.UpsertSubCategory(ctx, sub); err != nil {
			return fmt.Errorf("failed to upsert sub-category %s: %w", name, err)
		}
	}
	log.Info("Sub-categories ready", zap.String("category", category.Name), zap.Int("count", len(sc.SubCategories)))
	return nil
}
