package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/rental-portal-api/internal/domain"
	"github.com/phrazzld/rental-portal-api/internal/mocks"
	"github.com/phrazzld/rental-portal-api/internal/store"
)

// newInterestFixture wires an InterestService and its ListingService
// against fresh in-memory mocks. The nil db keeps writes untransacted.
func newInterestFixture() (*InterestService, *ListingService, *mocks.MockUserStore, *mocks.MockPropertyStore) {
	users := mocks.NewMockUserStore()
	properties := mocks.NewMockPropertyStore()
	interests := mocks.NewMockInterestStore(users, properties)
	listings := NewListingService(properties, users, interests)
	return NewInterestService(nil, properties, users, interests, listings), listings, users, properties
}

func TestInterestService_ExpressInterest(t *testing.T) {
	t.Parallel()

	svc, listings, users, _ := newInterestFixture()
	ctx := context.Background()

	owner := seedUser(t, users, "Alice", "alice@example.com", domain.RoleOwner)
	renter := seedUser(t, users, "Bob", "bob@example.com", domain.RoleRenter)

	property, err := listings.CreateListing(ctx, owner.ID, domain.RoleOwner, "House", "A house", 900, "Springfield", nil)
	require.NoError(t, err)

	require.NoError(t, svc.ExpressInterest(ctx, property.ID, renter.ID))

	// Both directed views reflect the single write.
	renters, err := svc.InterestedRenters(ctx, property.ID)
	require.NoError(t, err)
	require.Len(t, renters, 1)
	assert.Equal(t, renter.ID, renters[0].ID)

	views, err := svc.InterestedProperties(ctx, renter.ID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, property.ID, views[0].ID)
	assert.Equal(t, "Alice", views[0].Owner.Name)
}

func TestInterestService_ExpressInterest_Duplicate(t *testing.T) {
	t.Parallel()

	svc, listings, users, _ := newInterestFixture()
	ctx := context.Background()

	owner := seedUser(t, users, "Alice", "alice@example.com", domain.RoleOwner)
	renter := seedUser(t, users, "Bob", "bob@example.com", domain.RoleRenter)

	property, err := listings.CreateListing(ctx, owner.ID, domain.RoleOwner, "House", "A house", 900, "Springfield", nil)
	require.NoError(t, err)

	require.NoError(t, svc.ExpressInterest(ctx, property.ID, renter.ID))

	err = svc.ExpressInterest(ctx, property.ID, renter.ID)
	assert.ErrorIs(t, err, store.ErrAlreadyInterested)

	// The duplicate left no second edge behind.
	renters, err := svc.InterestedRenters(ctx, property.ID)
	require.NoError(t, err)
	assert.Len(t, renters, 1)
}

func TestInterestService_ExpressInterest_MissingProperty(t *testing.T) {
	t.Parallel()

	svc, _, users, _ := newInterestFixture()
	renter := seedUser(t, users, "Bob", "bob@example.com", domain.RoleRenter)

	err := svc.ExpressInterest(context.Background(), uuid.New(), renter.ID)
	assert.ErrorIs(t, err, store.ErrPropertyNotFound)
}

func TestInterestService_ExpressInterest_MissingRenter(t *testing.T) {
	t.Parallel()

	svc, listings, users, _ := newInterestFixture()
	ctx := context.Background()

	owner := seedUser(t, users, "Alice", "alice@example.com", domain.RoleOwner)
	property, err := listings.CreateListing(ctx, owner.ID, domain.RoleOwner, "House", "A house", 900, "Springfield", nil)
	require.NoError(t, err)

	err = svc.ExpressInterest(ctx, property.ID, uuid.New())
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestInterestService_ExpressInterest_OwnerAllowed(t *testing.T) {
	t.Parallel()

	svc, listings, users, _ := newInterestFixture()
	ctx := context.Background()

	alice := seedUser(t, users, "Alice", "alice@example.com", domain.RoleOwner)
	carol := seedUser(t, users, "Carol", "carol@example.com", domain.RoleOwner)

	property, err := listings.CreateListing(ctx, alice.ID, domain.RoleOwner, "House", "A house", 900, "Springfield", nil)
	require.NoError(t, err)

	// Interest is not restricted by role.
	assert.NoError(t, svc.ExpressInterest(ctx, property.ID, carol.ID))
}

func TestInterestService_InterestedRenters_MissingProperty(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newInterestFixture()

	_, err := svc.InterestedRenters(context.Background(), uuid.New())
	assert.ErrorIs(t, err, store.ErrPropertyNotFound)
}

func TestInterestService_InterestedProperties_MissingRenter(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newInterestFixture()

	_, err := svc.InterestedProperties(context.Background(), uuid.New())
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestInterestService_InterestedProperties_Empty(t *testing.T) {
	t.Parallel()

	svc, _, users, _ := newInterestFixture()
	renter := seedUser(t, users, "Bob", "bob@example.com", domain.RoleRenter)

	views, err := svc.InterestedProperties(context.Background(), renter.ID)
	require.NoError(t, err)
	assert.Empty(t, views)
}
