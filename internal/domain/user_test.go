package domain

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		userName      string
		contactNumber string
		city          string
		email         string
		password      string
		role          Role
		wantErr       error
	}{
		{
			name:          "valid owner",
			userName:      "Alice",
			contactNumber: "555-0100",
			city:          "Springfield",
			email:         "alice@example.com",
			password:      "password123",
			role:          RoleOwner,
		},
		{
			name:          "valid renter",
			userName:      "Bob",
			contactNumber: "555-0101",
			city:          "Springfield",
			email:         "bob@example.com",
			password:      "password123",
			role:          RoleRenter,
		},
		{
			name:          "empty name",
			userName:      "  ",
			contactNumber: "555-0100",
			city:          "Springfield",
			email:         "alice@example.com",
			password:      "password123",
			role:          RoleOwner,
			wantErr:       ErrEmptyName,
		},
		{
			name:          "empty contact number",
			userName:      "Alice",
			contactNumber: "",
			city:          "Springfield",
			email:         "alice@example.com",
			password:      "password123",
			role:          RoleOwner,
			wantErr:       ErrEmptyContactNumber,
		},
		{
			name:          "empty city",
			userName:      "Alice",
			contactNumber: "555-0100",
			city:          "",
			email:         "alice@example.com",
			password:      "password123",
			role:          RoleOwner,
			wantErr:       ErrEmptyCity,
		},
		{
			name:          "invalid email",
			userName:      "Alice",
			contactNumber: "555-0100",
			city:          "Springfield",
			email:         "not-an-email",
			password:      "password123",
			role:          RoleOwner,
			wantErr:       ErrInvalidEmail,
		},
		{
			name:          "password too short",
			userName:      "Alice",
			contactNumber: "555-0100",
			city:          "Springfield",
			email:         "alice@example.com",
			password:      "short",
			role:          RoleOwner,
			wantErr:       ErrPasswordTooShort,
		},
		{
			name:          "password too long",
			userName:      "Alice",
			contactNumber: "555-0100",
			city:          "Springfield",
			email:         "alice@example.com",
			password:      strings.Repeat("a", 73),
			role:          RoleOwner,
			wantErr:       ErrPasswordTooLong,
		},
		{
			name:          "invalid role",
			userName:      "Alice",
			contactNumber: "555-0100",
			city:          "Springfield",
			email:         "alice@example.com",
			password:      "password123",
			role:          Role("Admin"),
			wantErr:       ErrInvalidRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := NewUser(tt.userName, tt.contactNumber, tt.city, tt.email, tt.password, tt.role)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, user)
			assert.NotEqual(t, "", user.ID.String())
			assert.Equal(t, tt.role, user.Role)
			assert.False(t, user.CreatedAt.IsZero())
		})
	}
}

func TestNewUser_NormalizesEmail(t *testing.T) {
	t.Parallel()

	user, err := NewUser("Alice", "555-0100", "Springfield", "  Alice@Example.COM ", "password123", RoleOwner)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestUser_JSONNeverExposesPassword(t *testing.T) {
	t.Parallel()

	user, err := NewUser("Alice", "555-0100", "Springfield", "alice@example.com", "password123", RoleOwner)
	require.NoError(t, err)
	user.HashedPassword = "$2a$10$somebcrypthash"

	data, err := json.Marshal(user)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "password123")
	assert.NotContains(t, string(data), "somebcrypthash")
}

func TestUser_Summary(t *testing.T) {
	t.Parallel()

	user, err := NewUser("Bob", "555-0101", "Springfield", "bob@example.com", "password123", RoleRenter)
	require.NoError(t, err)

	summary := user.Summary()
	assert.Equal(t, user.ID, summary.ID)
	assert.Equal(t, "Bob", summary.Name)
	assert.Equal(t, "555-0101", summary.ContactNumber)
	assert.Equal(t, "bob@example.com", summary.Email)

	data, err := json.Marshal(summary)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "city")
	assert.NotContains(t, string(data), "role")
}
