// Package main implements the entry point for the rental portal API
// server, which manages property listings, renter interest, and
// token-based authentication for owners and renters.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/phrazzld/rental-portal-api/internal/config"
	"github.com/phrazzld/rental-portal-api/internal/platform/logger"
)

func main() {
	migrateCmd := flag.String("migrate", "", "run a goose migration command (up, down, status) and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if _, err := logger.Setup(cfg.Server); err != nil {
		log.Fatalf("Failed to set up logger: %v", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"storage_driver", cfg.Storage.Driver)

	if err := run(cfg, *migrateCmd); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

// run wires the application together and either executes a migration
// command or starts the HTTP server.
func run(cfg *config.Config, migrateCmd string) error {
	db, err := setupDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}
	defer func() { _ = db.Close() }()

	if migrateCmd != "" {
		return runMigrations(db, migrateCmd)
	}

	// Apply pending migrations on normal startup as well.
	if err := runMigrations(db, "up"); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	ctx := context.Background()

	app, err := newApplication(ctx, cfg, db)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.startHTTPServer(ctx, app.setupRouter())
}
