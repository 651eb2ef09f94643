package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/phrazzld/rental-portal-api/internal/domain"
	"github.com/phrazzld/rental-portal-api/internal/store"
)

// interestEdge is one recorded renter-to-property pair.
type interestEdge struct {
	PropertyID uuid.UUID
	RenterID   uuid.UUID
}

// MockInterestStore implements store.InterestStore for testing.
// When the Users and Properties fields are set, the default
// implementations resolve edges against them the way the real store
// joins tables; otherwise the directed views come back empty.
type MockInterestStore struct {
	// Function fields for customizable behavior
	AddFn                 func(ctx context.Context, propertyID, renterID uuid.UUID) error
	RentersForPropertyFn  func(ctx context.Context, propertyID uuid.UUID) ([]domain.UserSummary, error)
	PropertiesForRenterFn func(ctx context.Context, renterID uuid.UUID) ([]domain.Property, error)

	// Data for default implementation; Edges preserves insertion order
	Edges      []interestEdge
	Users      *MockUserStore
	Properties *MockPropertyStore
}

// NewMockInterestStore creates a mock store resolving edges against
// the given user and property mocks.
func NewMockInterestStore(users *MockUserStore, properties *MockPropertyStore) *MockInterestStore {
	return &MockInterestStore{
		Users:      users,
		Properties: properties,
	}
}

// Add implements the InterestStore interface
func (m *MockInterestStore) Add(ctx context.Context, propertyID, renterID uuid.UUID) error {
	if m.AddFn != nil {
		return m.AddFn(ctx, propertyID, renterID)
	}

	for _, e := range m.Edges {
		if e.PropertyID == propertyID && e.RenterID == renterID {
			return store.ErrAlreadyInterested
		}
	}

	m.Edges = append(m.Edges, interestEdge{PropertyID: propertyID, RenterID: renterID})
	return nil
}

// RentersForProperty implements the InterestStore interface
func (m *MockInterestStore) RentersForProperty(
	ctx context.Context,
	propertyID uuid.UUID,
) ([]domain.UserSummary, error) {
	if m.RentersForPropertyFn != nil {
		return m.RentersForPropertyFn(ctx, propertyID)
	}

	summaries := []domain.UserSummary{}
	for _, e := range m.Edges {
		if e.PropertyID != propertyID || m.Users == nil {
			continue
		}
		renter, err := m.Users.GetByID(ctx, e.RenterID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, renter.Summary())
	}
	return summaries, nil
}

// PropertiesForRenter implements the InterestStore interface
func (m *MockInterestStore) PropertiesForRenter(
	ctx context.Context,
	renterID uuid.UUID,
) ([]domain.Property, error) {
	if m.PropertiesForRenterFn != nil {
		return m.PropertiesForRenterFn(ctx, renterID)
	}

	properties := []domain.Property{}
	for _, e := range m.Edges {
		if e.RenterID != renterID || m.Properties == nil {
			continue
		}
		property, err := m.Properties.GetByID(ctx, e.PropertyID)
		if err != nil {
			return nil, err
		}
		properties = append(properties, *property)
	}
	return properties, nil
}

// WithTx implements the InterestStore interface. The mock has no
// transaction state, so it returns itself.
func (m *MockInterestStore) WithTx(tx *sql.Tx) store.InterestStore {
	return m
}
