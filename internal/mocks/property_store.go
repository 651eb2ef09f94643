package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/phrazzld/rental-portal-api/internal/domain"
	"github.com/phrazzld/rental-portal-api/internal/store"
)

// MockPropertyStore implements store.PropertyStore for testing
type MockPropertyStore struct {
	// Function fields for customizable behavior
	CreateFn            func(ctx context.Context, property *domain.Property) error
	GetByIDFn           func(ctx context.Context, id uuid.UUID) (*domain.Property, error)
	ListByOwnerFn       func(ctx context.Context, ownerID uuid.UUID) ([]domain.Property, error)
	ListAllFn           func(ctx context.Context) ([]domain.Property, error)
	DistinctLocationsFn func(ctx context.Context) ([]string, error)

	// Data for default implementation; Properties preserves insertion order
	Properties []*domain.Property
}

// NewMockPropertyStore creates a new mock store with initialized defaults
func NewMockPropertyStore() *MockPropertyStore {
	return &MockPropertyStore{}
}

// Create implements the PropertyStore interface
func (m *MockPropertyStore) Create(ctx context.Context, property *domain.Property) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, property)
	}

	m.Properties = append(m.Properties, property)
	return nil
}

// GetByID implements the PropertyStore interface
func (m *MockPropertyStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	for _, p := range m.Properties {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, store.ErrPropertyNotFound
}

// ListByOwner implements the PropertyStore interface
func (m *MockPropertyStore) ListByOwner(
	ctx context.Context,
	ownerID uuid.UUID,
) ([]domain.Property, error) {
	if m.ListByOwnerFn != nil {
		return m.ListByOwnerFn(ctx, ownerID)
	}

	properties := []domain.Property{}
	for _, p := range m.Properties {
		if p.OwnerID == ownerID {
			properties = append(properties, *p)
		}
	}
	return properties, nil
}

// ListAll implements the PropertyStore interface
func (m *MockPropertyStore) ListAll(ctx context.Context) ([]domain.Property, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}

	properties := []domain.Property{}
	for _, p := range m.Properties {
		properties = append(properties, *p)
	}
	return properties, nil
}

// DistinctLocations implements the PropertyStore interface
func (m *MockPropertyStore) DistinctLocations(ctx context.Context) ([]string, error) {
	if m.DistinctLocationsFn != nil {
		return m.DistinctLocationsFn(ctx)
	}

	seen := make(map[string]bool)
	locations := []string{}
	for _, p := range m.Properties {
		if !seen[p.Location] {
			seen[p.Location] = true
			locations = append(locations, p.Location)
		}
	}
	return locations, nil
}

// WithTx implements the PropertyStore interface. The mock has no
// transaction state, so it returns itself.
func (m *MockPropertyStore) WithTx(tx *sql.Tx) store.PropertyStore {
	return m
}
