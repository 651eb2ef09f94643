package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/rental-portal-api/internal/domain"
	"github.com/phrazzld/rental-portal-api/internal/platform/logger"
	"github.com/phrazzld/rental-portal-api/internal/store"
)

// InterestStore implements store.InterestStore over a single
// property_interests table. The (property_id, renter_id) primary key
// makes the edge idempotent, and both directed views are computed by
// join, so neither side can drift from the other.
type InterestStore struct {
	db store.DBTX
}

// NewInterestStore creates a new PostgreSQL implementation of the
// store.InterestStore interface.
func NewInterestStore(db store.DBTX) *InterestStore {
	return &InterestStore{db: db}
}

// Ensure InterestStore implements store.InterestStore interface
var _ store.InterestStore = (*InterestStore)(nil)

// WithTx returns a new InterestStore bound to the given transaction.
func (s *InterestStore) WithTx(tx *sql.Tx) store.InterestStore {
	return &InterestStore{db: tx}
}

// Add implements store.InterestStore.Add
func (s *InterestStore) Add(ctx context.Context, propertyID, renterID uuid.UUID) error {
	log := logger.FromContext(ctx)

	query := `
		INSERT INTO property_interests (property_id, renter_id, created_at)
		VALUES ($1, $2, $3)
	`

	_, err := s.db.ExecContext(ctx, query, propertyID, renterID, time.Now().UTC())
	if err != nil {
		if IsUniqueViolation(err) {
			// Under a race both callers can pass the pre-check; the
			// constraint guarantees only one edge is ever written.
			log.Debug("interest edge already exists",
				"property_id", propertyID,
				"renter_id", renterID)
			return fmt.Errorf("%w: %v", store.ErrAlreadyInterested, err)
		}
		if IsForeignKeyViolation(err) {
			return mapInterestFKViolation(err)
		}
		log.Error("failed to add interest edge",
			"property_id", propertyID,
			"renter_id", renterID,
			"error", err)
		return fmt.Errorf("failed to add interest: %w", MapError(err))
	}

	return nil
}

// RentersForProperty implements store.InterestStore.RentersForProperty
func (s *InterestStore) RentersForProperty(ctx context.Context, propertyID uuid.UUID) ([]domain.UserSummary, error) {
	log := logger.FromContext(ctx)

	query := `
		SELECT u.id, u.name, u.contact_number, u.email
		FROM property_interests pi
		JOIN users u ON u.id = pi.renter_id
		WHERE pi.property_id = $1
		ORDER BY pi.created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, propertyID)
	if err != nil {
		log.Error("failed to query interested renters",
			"property_id", propertyID,
			"error", err)
		return nil, fmt.Errorf("failed to query interested renters: %w", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	renters := []domain.UserSummary{}
	for rows.Next() {
		var renter domain.UserSummary
		if err := rows.Scan(&renter.ID, &renter.Name, &renter.ContactNumber, &renter.Email); err != nil {
			return nil, fmt.Errorf("failed to scan renter row: %w", err)
		}
		renters = append(renters, renter)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate renter rows: %w", err)
	}

	return renters, nil
}

// PropertiesForRenter implements store.InterestStore.PropertiesForRenter
func (s *InterestStore) PropertiesForRenter(ctx context.Context, renterID uuid.UUID) ([]domain.Property, error) {
	log := logger.FromContext(ctx)

	query := `
		SELECT p.id, p.owner_id, p.title, p.description, p.price, p.location, p.images, p.created_at, p.updated_at
		FROM property_interests pi
		JOIN properties p ON p.id = pi.property_id
		WHERE pi.renter_id = $1
		ORDER BY pi.created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, renterID)
	if err != nil {
		log.Error("failed to query interested properties",
			"renter_id", renterID,
			"error", err)
		return nil, fmt.Errorf("failed to query interested properties: %w", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	properties := []domain.Property{}
	for rows.Next() {
		property, err := scanPropertyRow(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan property row: %w", err)
		}
		properties = append(properties, *property)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate property rows: %w", err)
	}

	return properties, nil
}

// mapInterestFKViolation distinguishes which end of the edge was
// missing from the violated constraint name.
func mapInterestFKViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.ConstraintName == "property_interests_renter_id_fkey" {
		return fmt.Errorf("%w: %v", store.ErrUserNotFound, err)
	}
	return fmt.Errorf("%w: %v", store.ErrPropertyNotFound, err)
}
