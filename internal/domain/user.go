package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// User validation errors. Each wraps ErrValidation so boundary code
// can map the whole family with a single errors.Is check.
var (
	ErrEmptyUserID         = fmt.Errorf("%w: user ID cannot be empty", ErrValidation)
	ErrEmptyName           = fmt.Errorf("%w: name cannot be empty", ErrValidation)
	ErrEmptyContactNumber  = fmt.Errorf("%w: contact number cannot be empty", ErrValidation)
	ErrEmptyCity           = fmt.Errorf("%w: city cannot be empty", ErrValidation)
	ErrEmptyEmail          = fmt.Errorf("%w: email cannot be empty", ErrValidation)
	ErrPasswordTooShort    = fmt.Errorf("%w: password must be at least 8 characters long", ErrValidation)
	ErrPasswordTooLong     = fmt.Errorf("%w: password must be at most 72 characters long", ErrValidation)
	ErrEmptyPassword       = fmt.Errorf("%w: password cannot be empty", ErrValidation)
	ErrEmptyHashedPassword = fmt.Errorf("%w: hashed password cannot be empty", ErrValidation)
)

// User represents a registered account, either a property owner or a
// renter. The plaintext Password field is only populated transiently
// during registration and is never persisted or serialized.
type User struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	ContactNumber  string    `json:"contact_number"`
	City           string    `json:"city"`
	Email          string    `json:"email"`
	Role           Role      `json:"role"`
	Password       string    `json:"-"` // Plaintext, registration only
	HashedPassword string    `json:"-"` // Never expose password hash in JSON
	ProfilePicture string    `json:"profile_picture,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a new User with a fresh UUID and timestamps.
// The caller is responsible for hashing the password before storage.
// Returns an error if validation fails.
func NewUser(name, contactNumber, city, email, password string, role Role) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:            uuid.New(),
		Name:          strings.TrimSpace(name),
		ContactNumber: strings.TrimSpace(contactNumber),
		City:          strings.TrimSpace(city),
		Email:         strings.ToLower(strings.TrimSpace(email)),
		Role:          role,
		Password:      password,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if u.Name == "" {
		return ErrEmptyName
	}

	if u.ContactNumber == "" {
		return ErrEmptyContactNumber
	}

	if u.City == "" {
		return ErrEmptyCity
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}

	if !validateEmailFormat(u.Email) {
		return ErrInvalidEmail
	}

	if !u.Role.Valid() {
		return ErrInvalidRole
	}

	// During registration the plaintext password is validated; existing
	// records loaded from storage carry only the hash.
	if u.Password != "" {
		if len(u.Password) < 8 {
			return ErrPasswordTooShort
		}
		if len(u.Password) > 72 { // bcrypt's practical limit
			return ErrPasswordTooLong
		}
	} else if u.HashedPassword == "" {
		return ErrEmptyPassword
	}

	return nil
}

// Summary returns the user reduced to the fields other users are
// allowed to see: name, contact number, and email.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:            u.ID,
		Name:          u.Name,
		ContactNumber: u.ContactNumber,
		Email:         u.Email,
	}
}

// UserSummary is the public projection of a user embedded in property
// views. It never carries the password hash or the user's own
// interest list.
type UserSummary struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	ContactNumber string    `json:"contact_number"`
	Email         string    `json:"email"`
}

// validateEmailFormat performs basic validation of email format:
// a non-empty local part, an @, and a dot inside the domain part.
func validateEmailFormat(email string) bool {
	atIndex := strings.IndexByte(email, '@')
	if atIndex <= 0 || atIndex == len(email)-1 {
		return false
	}

	domainPart := email[atIndex+1:]
	if len(domainPart) < 3 { // minimum would be "a.b"
		return false
	}

	dotIndex := strings.IndexByte(domainPart, '.')
	return dotIndex > 0 && dotIndex < len(domainPart)-1
}
