package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/phrazzld/rental-portal-api/internal/domain"
	"github.com/phrazzld/rental-portal-api/internal/platform/logger"
	"github.com/phrazzld/rental-portal-api/internal/store"
)

// PropertyStore implements the store.PropertyStore interface using a
// PostgreSQL database as the storage backend. Image references are
// stored as a JSONB array so the upload order survives round-trips.
type PropertyStore struct {
	db store.DBTX
}

// NewPropertyStore creates a new PostgreSQL implementation of the
// store.PropertyStore interface.
func NewPropertyStore(db store.DBTX) *PropertyStore {
	return &PropertyStore{db: db}
}

// Ensure PropertyStore implements store.PropertyStore interface
var _ store.PropertyStore = (*PropertyStore)(nil)

// WithTx returns a new PropertyStore bound to the given transaction.
func (s *PropertyStore) WithTx(tx *sql.Tx) store.PropertyStore {
	return &PropertyStore{db: tx}
}

// Create implements store.PropertyStore.Create
func (s *PropertyStore) Create(ctx context.Context, property *domain.Property) error {
	log := logger.FromContext(ctx)

	if err := property.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	images, err := marshalImages(property.Images)
	if err != nil {
		return fmt.Errorf("failed to encode image references: %w", err)
	}

	query := `
		INSERT INTO properties (id, owner_id, title, description, price, location, images, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err = s.db.ExecContext(ctx, query,
		property.ID,
		property.OwnerID,
		property.Title,
		property.Description,
		property.Price,
		property.Location,
		images,
		property.CreatedAt,
		property.UpdatedAt,
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Debug("unknown owner on property create",
				"property_id", property.ID,
				"owner_id", property.OwnerID)
			return fmt.Errorf("%w: %v", store.ErrUserNotFound, err)
		}
		log.Error("failed to create property",
			"property_id", property.ID,
			"error", err)
		return fmt.Errorf("failed to create property: %w", MapError(err))
	}

	return nil
}

// GetByID implements store.PropertyStore.GetByID
func (s *PropertyStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	query := `
		SELECT id, owner_id, title, description, price, location, images, created_at, updated_at
		FROM properties
		WHERE id = $1
	`

	property, err := scanPropertyRow(s.db.QueryRowContext(ctx, query, id).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to get property: %w", MapError(err))
	}

	return property, nil
}

// ListByOwner implements store.PropertyStore.ListByOwner
func (s *PropertyStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Property, error) {
	query := `
		SELECT id, owner_id, title, description, price, location, images, created_at, updated_at
		FROM properties
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`
	return s.queryProperties(ctx, query, ownerID)
}

// ListAll implements store.PropertyStore.ListAll
func (s *PropertyStore) ListAll(ctx context.Context) ([]domain.Property, error) {
	query := `
		SELECT id, owner_id, title, description, price, location, images, created_at, updated_at
		FROM properties
		ORDER BY created_at DESC
	`
	return s.queryProperties(ctx, query)
}

// DistinctLocations implements store.PropertyStore.DistinctLocations
func (s *PropertyStore) DistinctLocations(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	query := `SELECT DISTINCT location FROM properties`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query distinct locations", "error", err)
		return nil, fmt.Errorf("failed to query distinct locations: %w", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	var locations []string
	for rows.Next() {
		var location string
		if err := rows.Scan(&location); err != nil {
			return nil, fmt.Errorf("failed to scan location row: %w", err)
		}
		locations = append(locations, location)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate location rows: %w", err)
	}

	return locations, nil
}

func (s *PropertyStore) queryProperties(ctx context.Context, query string, args ...any) ([]domain.Property, error) {
	log := logger.FromContext(ctx)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query properties", "error", err)
		return nil, fmt.Errorf("failed to query properties: %w", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	var properties []domain.Property
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

func scanPropertyRow(scan rowScanner) (*domain.Property, error) {
	var property domain.Property
	var images []byte

	if err := scan(
		&property.ID,
		&property.OwnerID,
		&property.Title,
		&property.Description,
		&property.Price,
		&property.Location,
		&images,
		&property.CreatedAt,
		&property.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(images, &property.Images); err != nil {
		return nil, fmt.Errorf("failed to decode image references: %w", err)
	}
	if property.Images == nil {
		property.Images = []string{}
	}

	return &property, nil
}

func marshalImages(images []string) ([]byte, error) {
	if images == nil {
		images = []string{}
	}
	return json.Marshal(images)
}
