package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/phrazzld/rental-portal-api/internal/domain"
	"github.com/phrazzld/rental-portal-api/internal/store"
)

// ListingService implements the property-listing use cases: creating
// listings, role-filtered browsing, and the public owner/location
// directories. Returned properties are resolved: the owner reference
// is expanded to a summary and interested renters to their public
// summaries.
type ListingService struct {
	propertyStore store.PropertyStore
	userStore     store.UserStore
	interestStore store.InterestStore
}

// NewListingService creates a new ListingService with the given dependencies.
func NewListingService(
	propertyStore store.PropertyStore,
	userStore store.UserStore,
	interestStore store.InterestStore,
) *ListingService {
	return &ListingService{
		propertyStore: propertyStore,
		userStore:     userStore,
		interestStore: interestStore,
	}
}

// CreateListing creates a new property owned by the authenticated
// user. The owner-at-creation invariant is enforced against the role
// verified from the caller's token; the owner reference is never
// re-validated afterwards.
func (s *ListingService) CreateListing(
	ctx context.Context,
	ownerID uuid.UUID,
	role domain.Role,
	title, description string,
	price float64,
	location string,
	images []string,
) (*domain.Property, error) {
	switch role {
	case domain.RoleOwner:
		// allowed
	case domain.RoleRenter:
		return nil, domain.NewValidationError("role", "must be Owner to create a listing", domain.ErrValidation)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidRole, role)
	}

	property, err := domain.NewProperty(ownerID, title, description, price, location, images)
	if err != nil {
		return nil, err
	}

	if err := s.propertyStore.Create(ctx, property); err != nil {
		return nil, err
	}

	return property, nil
}

// ListForViewer returns properties visible to the authenticated user:
// an Owner sees only their own listings, a Renter sees every listing.
func (s *ListingService) ListForViewer(
	ctx context.Context,
	viewerID uuid.UUID,
	role domain.Role,
) ([]domain.PropertyView, error) {
	var properties []domain.Property
	var err error

	switch role {
	case domain.RoleOwner:
		properties, err = s.propertyStore.ListByOwner(ctx, viewerID)
	case domain.RoleRenter:
		properties, err = s.propertyStore.ListAll(ctx)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidRole, role)
	}
	if err != nil {
		return nil, err
	}

	return s.resolveViews(ctx, properties)
}

// DistinctLocations returns every unique location across all listings.
func (s *ListingService) DistinctLocations(ctx context.Context) ([]string, error) {
	return s.propertyStore.DistinctLocations(ctx)
}

// ListOwners returns every user with the Owner role.
func (s *ListingService) ListOwners(ctx context.Context) ([]domain.User, error) {
	return s.userStore.ListByRole(ctx, domain.RoleOwner)
}

// GetProperty returns a single property by ID.
// Returns store.ErrPropertyNotFound if it does not exist.
func (s *ListingService) GetProperty(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	return s.propertyStore.GetByID(ctx, id)
}

// resolveViews expands owner references to summaries and attaches the
// interested-renter summaries for each property. Owner lookups are
// deduplicated across the batch.
func (s *ListingService) resolveViews(
	ctx context.Context,
	properties []domain.Property,
) ([]domain.PropertyView, error) {
	owners := make(map[uuid.UUID]domain.UserSummary)

	views := make([]domain.PropertyView, 0, len(properties))
	for _, property := range properties {
		owner, ok := owners[property.OwnerID]
		if !ok {
			ownerUser, err := s.userStore.GetByID(ctx, property.OwnerID)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve owner %s: %w", property.OwnerID, err)
			}
			owner = ownerUser.Summary()
			owners[property.OwnerID] = owner
		}

		renters, err := s.interestStore.RentersForProperty(ctx, property.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve interested renters for %s: %w", property.ID, err)
		}

		views = append(views, domain.PropertyView{
			Property:          property,
			Owner:             owner,
			InterestedRenters: renters,
		})
	}

	return views, nil
}
