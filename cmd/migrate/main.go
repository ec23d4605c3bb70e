package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"servicebook/internal/infra/db"
	"servicebook/internal/infra/migration"
	"servicebook/internal/pkg/config"

	"github.com/joho/godotenv"
)

const usage = `usage: migrate <command>

commands:
  schema    apply pending schema migrations
  legacy    convert legacy JSON booking lines into normalized rows
  unified   move option rows out of the services table
  cleanup   drop the legacy booking columns (requires legacy to be completed)
`

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	os.Exit(run(os.Args[1], cfg))
}

func run(command string, cfg config.Config) int {
	ctx := context.Background()

	if command == "schema" {
		if err := db.MigrateSchema(cfg.Migrations.Path, cfg.DB); err != nil {
			slog.Error("schema migration failed", "error", err)
			return 1
		}
		slog.Info("schema migration completed")
		return 0
	}

	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		return 1
	}
	defer cleanup()

	engine := migration.NewEngine(pool)

	switch command {
	case "legacy":
		result, err := engine.Migrate(ctx)
		if err != nil {
			slog.Error("legacy booking migration failed", "error", err)
			return 1
		}
		slog.Info("legacy booking migration completed", "migrated", result.MigratedCount)
		return 0

	case "unified":
		result, err := engine.MigrateUnified(ctx)
		if err != nil {
			slog.Error("unified option migration failed", "error", err)
			return 1
		}
		slog.Info("unified option migration completed", "migrated", result.MigratedCount)
		return 0

	case "cleanup":
		if err := engine.Cleanup(ctx); err != nil {
			if errors.Is(err, migration.ErrCleanupNotPermitted) {
				slog.Error("cleanup refused: legacy booking migration has not completed")
				return 2
			}
			slog.Error("cleanup failed", "error", err)
			return 1
		}
		slog.Info("legacy columns dropped")
		return 0

	default:
		fmt.Fprint(os.Stderr, usage)
		return 1
	}
}
