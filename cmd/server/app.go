package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/rental-portal-api/internal/config"
	"github.com/phrazzld/rental-portal-api/internal/platform/postgres"
	"github.com/phrazzld/rental-portal-api/internal/platform/storage"
	"github.com/phrazzld/rental-portal-api/internal/service"
	"github.com/phrazzld/rental-portal-api/internal/service/auth"
	"github.com/phrazzld/rental-portal-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore     store.UserStore
	propertyStore store.PropertyStore
	interestStore store.InterestStore

	jwtService       auth.JWTService
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier
	fileStore        storage.FileStore

	listingService  *service.ListingService
	interestService *service.InterestService
}

// newApplication creates a new application instance with all
// dependencies initialized. The context is used for dependency setup
// that may perform I/O, such as loading cloud storage credentials.
func newApplication(ctx context.Context, cfg *config.Config, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: slog.Default(),
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	app.logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	verifier := auth.NewBcryptVerifier()
	app.passwordHasher = verifier
	app.passwordVerifier = verifier

	app.userStore = postgres.NewUserStore(db)
	app.propertyStore = postgres.NewPropertyStore(db)
	app.interestStore = postgres.NewInterestStore(db)

	app.fileStore, err = setupFileStore(ctx, cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}
	app.logger.Info("File storage initialized", "driver", cfg.Storage.Driver)

	app.listingService = service.NewListingService(
		app.propertyStore,
		app.userStore,
		app.interestStore,
	)
	app.interestService = service.NewInterestService(
		db,
		app.propertyStore,
		app.userStore,
		app.interestStore,
		app.listingService,
	)

	app.logger.Info("Application initialized successfully")
	return app, nil
}

// setupFileStore selects the file storage backend from configuration.
func setupFileStore(ctx context.Context, cfg config.StorageConfig) (storage.FileStore, error) {
	switch cfg.Driver {
	case "s3":
		return storage.NewS3Store(ctx, cfg)
	case "local":
		return storage.NewLocalStore(cfg.UploadDir)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
