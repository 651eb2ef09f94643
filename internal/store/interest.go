package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/rental-portal-api/internal/domain"
)

// InterestStore persists renter-to-property interest edges.
//
// Interest is stored one-directionally: a single table keyed by
// (property_id, renter_id). Both the property's interested-renter view
// and the renter's interested-property view are computed by query, so
// the two sides can never drift apart. The primary key makes the edge
// idempotent under concurrent inserts; the loser of a race gets
// ErrAlreadyInterested.
type InterestStore interface {
	// Add records the renter's interest in the property.
	// Returns ErrAlreadyInterested if the edge already exists and
	// ErrUserNotFound / ErrPropertyNotFound if either end is missing.
	Add(ctx context.Context, propertyID, renterID uuid.UUID) error

	// RentersForProperty returns the public summaries of every renter
	// interested in the property, oldest interest first.
	RentersForProperty(ctx context.Context, propertyID uuid.UUID) ([]domain.UserSummary, error)

	// PropertiesForRenter returns every property the renter has
	// expressed interest in, oldest interest first.
	PropertiesForRenter(ctx context.Context, renterID uuid.UUID) ([]domain.Property, error)

	// WithTx returns a new InterestStore instance that uses the
	// provided transaction.
	WithTx(tx *sql.Tx) InterestStore
}
