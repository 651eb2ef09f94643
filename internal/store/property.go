package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/rental-portal-api/internal/domain"
)

// PropertyStore defines the interface for property data persistence.
type PropertyStore interface {
	// Create saves a new property listing. The image list is stored in
	// order and is write-once, like the rest of the listing metadata.
	Create(ctx context.Context, property *domain.Property) error

	// GetByID retrieves a property by its unique ID.
	// Returns ErrPropertyNotFound if the property does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error)

	// ListByOwner returns all properties owned by the given user,
	// newest first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Property, error)

	// ListAll returns every property, newest first.
	ListAll(ctx context.Context) ([]domain.Property, error)

	// DistinctLocations returns every unique location string across all
	// properties. Order is not significant.
	DistinctLocations(ctx context.Context) ([]string, error)

	// WithTx returns a new PropertyStore instance that uses the
	// provided transaction.
	WithTx(tx *sql.Tx) PropertyStore
}
