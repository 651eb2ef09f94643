package service

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/rental-portal-api/internal/domain"
	"github.com/phrazzld/rental-portal-api/internal/platform/logger"
	"github.com/phrazzld/rental-portal-api/internal/store"
)

// InterestService maintains the renter-to-property interest
// relationship. Edges live in a single store keyed by the pair, so a
// successful call leaves both directed views consistent by
// construction and a repeated call is rejected with
// store.ErrAlreadyInterested.
type InterestService struct {
	db            *sql.DB
	propertyStore store.PropertyStore
	userStore     store.UserStore
	interestStore store.InterestStore
	listings      *ListingService
}

// NewInterestService creates a new InterestService with the given
// dependencies. The db handle is used to run writes transactionally;
// it may be nil in tests that stub the stores, in which case writes
// run without a transaction.
func NewInterestService(
	db *sql.DB,
	propertyStore store.PropertyStore,
	userStore store.UserStore,
	interestStore store.InterestStore,
	listings *ListingService,
) *InterestService {
	return &InterestService{
		db:            db,
		propertyStore: propertyStore,
		userStore:     userStore,
		interestStore: interestStore,
		listings:      listings,
	}
}

// ExpressInterest records the renter's interest in the property.
// The existence checks and the insert run in a single transaction, so
// a concurrent deletion of either end cannot leave a dangling edge.
// Returns store.ErrPropertyNotFound / store.ErrUserNotFound if either
// end is missing, and store.ErrAlreadyInterested if the pair is
// already linked. Any authenticated role may express interest.
func (s *InterestService) ExpressInterest(ctx context.Context, propertyID, renterID uuid.UUID) error {
	log := logger.FromContext(ctx)

	record := func(properties store.PropertyStore, users store.UserStore, interests store.InterestStore) error {
		if _, err := properties.GetByID(ctx, propertyID); err != nil {
			return err
		}
		if _, err := users.GetByID(ctx, renterID); err != nil {
			return err
		}
		return interests.Add(ctx, propertyID, renterID)
	}

	var err error
	if s.db != nil {
		err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
			return record(
				s.propertyStore.WithTx(tx),
				s.userStore.WithTx(tx),
				s.interestStore.WithTx(tx),
			)
		})
	} else {
		err = record(s.propertyStore, s.userStore, s.interestStore)
	}
	if err != nil {
		return err
	}

	log.Info("interest recorded",
		"property_id", propertyID,
		"renter_id", renterID)
	return nil
}

// InterestedRenters returns the public summaries of every renter
// interested in the property.
// Returns store.ErrPropertyNotFound if the property does not exist.
func (s *InterestService) InterestedRenters(ctx context.Context, propertyID uuid.UUID) ([]domain.UserSummary, error) {
	if _, err := s.propertyStore.GetByID(ctx, propertyID); err != nil {
		return nil, err
	}
	return s.interestStore.RentersForProperty(ctx, propertyID)
}

// InterestedProperties returns every property the renter has expressed
// interest in, resolved for display.
// Returns store.ErrUserNotFound if the renter does not exist.
func (s *InterestService) InterestedProperties(ctx context.Context, renterID uuid.UUID) ([]domain.PropertyView, error) {
	if _, err := s.userStore.GetByID(ctx, renterID); err != nil {
		return nil, err
	}

	properties, err := s.interestStore.PropertiesForRenter(ctx, renterID)
	if err != nil {
		return nil, err
	}

	return s.listings.resolveViews(ctx, properties)
}
