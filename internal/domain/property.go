package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Property validation errors. Each wraps ErrValidation so boundary
// code can map the whole family with a single errors.Is check.
var (
	ErrEmptyPropertyID  = fmt.Errorf("%w: property ID cannot be empty", ErrValidation)
	ErrEmptyOwnerID     = fmt.Errorf("%w: owner ID cannot be empty", ErrValidation)
	ErrEmptyTitle       = fmt.Errorf("%w: title cannot be empty", ErrValidation)
	ErrEmptyDescription = fmt.Errorf("%w: description cannot be empty", ErrValidation)
	ErrInvalidPrice     = fmt.Errorf("%w: price must be greater than zero", ErrValidation)
	ErrEmptyLocation    = fmt.Errorf("%w: location cannot be empty", ErrValidation)
	ErrTooManyImages    = fmt.Errorf("%w: a property may carry at most 5 images", ErrValidation)
)

// MaxPropertyImages caps the image list on a single listing.
// A sixth image is rejected at the upload boundary, before storage.
const MaxPropertyImages = 5

// Property represents a rental listing. The owner reference is set at
// creation and never changes; listing metadata and the image list are
// likewise write-once.
type Property struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Location    string    `json:"location"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewProperty creates a new Property owned by the given user.
// Returns an error if validation fails.
func NewProperty(ownerID uuid.UUID, title, description string, price float64, location string, images []string) (*Property, error) {
	now := time.Now().UTC()
	property := &Property{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Price:       price,
		Location:    strings.TrimSpace(location),
		Images:      images,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := property.Validate(); err != nil {
		return nil, err
	}

	return property, nil
}

// Validate checks if the Property has valid data.
func (p *Property) Validate() error {
	if p.ID == uuid.Nil {
		return ErrEmptyPropertyID
	}

	if p.OwnerID == uuid.Nil {
		return ErrEmptyOwnerID
	}

	if p.Title == "" {
		return ErrEmptyTitle
	}

	if p.Description == "" {
		return ErrEmptyDescription
	}

	if p.Price <= 0 {
		return ErrInvalidPrice
	}

	if p.Location == "" {
		return ErrEmptyLocation
	}

	if len(p.Images) > MaxPropertyImages {
		return ErrTooManyImages
	}

	return nil
}

// PropertyView is a Property resolved for display: the owner reference
// expanded to a summary and the interested renters expanded to their
// public summaries.
type PropertyView struct {
	Property
	Owner             UserSummary   `json:"owner"`
	InterestedRenters []UserSummary `json:"interested_renters"`
}
