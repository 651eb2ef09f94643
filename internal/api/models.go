package api

import (
	"github.com/google/uuid"
	"github.com/phrazzld/rental-portal-api/internal/domain"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Name          string `json:"name"           validate:"required"`
	ContactNumber string `json:"contact_number" validate:"required"`
	City          string `json:"city"           validate:"required"`
	Email         string `json:"email"          validate:"required,email"`
	Password      string `json:"password"       validate:"required,min=8,max=72"`
	Role          string `json:"role"           validate:"required"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for the login endpoint.
type AuthResponse struct {
	// UserID is the unique identifier for the authenticated user
	UserID uuid.UUID `json:"user_id"`

	// Token is the bearer token used for API authorization
	Token string `json:"token"`

	// Role is the authenticated user's role
	Role domain.Role `json:"role"`
}

// OwnerResponse is the public directory entry for a property owner.
type OwnerResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	ContactNumber string    `json:"contact_number"`
	City          string    `json:"city"`
	Email         string    `json:"email"`
}

// ProfilePictureResponse confirms a profile-picture upload.
type ProfilePictureResponse struct {
	Message        string `json:"message"`
	ProfilePicture string `json:"profile_picture"`
}

// ExpressInterestRequest defines the payload for the express-interest
// endpoint. OwnerID is accepted for client compatibility but the
// operation derives everything it needs from the property itself.
type ExpressInterestRequest struct {
	RenterID uuid.UUID `json:"renter_id" validate:"required"`
	OwnerID  uuid.UUID `json:"owner_id"`
}
