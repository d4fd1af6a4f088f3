package main

import (
	"context"
	"embed"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"career-accelerator/cmd/seed_initial_data/internal/seedmodels"
	"career-accelerator/internal/config"
	"career-accelerator/internal/database"
	"career-accelerator/internal/domain"
	"career-accelerator/internal/logger"
	"career-accelerator/internal/repository"

	"go.uber.org/zap"
)

//go:embed seed_data/skills.json
var seedData embed.FS

const defaultSeedFile = "seed_data/skills.json"

func main() {
	seedFile := flag.String("file", "", "skill seed JSON file (defaults to the bundled catalogue)")
	flag.Parse()

	ctx := context.Background()
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
	db, err := database.NewSQLXOracleDB(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to connect to Oracle database", zap.Error(err))
	}
	defer db.Close()

	if _, err := database.NewMigrator(db).Up(ctx); err != nil {
		log.Fatal("Failed to apply migrations", zap.Error(err))
	}

	skills, err := loadSeedSkills(*seedFile)
	if err != nil {
		log.Fatal("Failed to load seed data", zap.Error(err))
	}
	log.Info("Successfully unmarshalled seed data", zap.Int("skills_loaded", len(skills)))

	txManager := repository.NewTransactionManagerAdapter(db)
	skillRepo := repository.NewSQLXSkillRepository(db)
	if err := seedSkills(ctx, txManager, skillRepo, skills); err != nil {
		log.Fatal("Seeding failed, transaction rolled back", zap.Error(err))
	}
	log.Info("Initial data seeding process completed.")
}

func loadSeedSkills(path string) ([]seedmodels.SeedSkill, error) {
	var (
		raw []byte
		err error
	)
	if path == "" {
		raw, err = seedData.ReadFile(defaultSeedFile)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var skills []seedmodels.SeedSkill
	if err := json.Unmarshal(raw, &skills); err != nil {
		return nil, fmt.Errorf("unmarshal seed file: %w", err)
	}
	return skills, nil
}

// seedSkills upserts every skill in one transaction; any failure rolls all of them back.
func seedSkills(ctx context.Context, txManager domain.TransactionManager, repo domain.SkillRepository, skills []seedmodels.SeedSkill) error {
	log := logger.Get()
	return txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		for _, s := range skills {
			skill := s.ToDomain()
			if err := repo.UpsertSkill(txCtx, skill); err != nil {
				return fmt.Errorf("seed skill %q: %w", s.Name, err)
			}
			log.Info("Upserted skill", zap.String("name", skill.Name), zap.String("role", string(skill.Role)))
		}
		return nil
	})
}
