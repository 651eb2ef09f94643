package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/phrazzld/rental-portal-api/internal/domain"
	"github.com/phrazzld/rental-portal-api/internal/platform/logger"
	"github.com/phrazzld/rental-portal-api/internal/store"
)

// UserStore implements the store.UserStore interface using a
// PostgreSQL database as the storage backend.
type UserStore struct {
	db store.DBTX
}

// NewUserStore creates a new PostgreSQL implementation of the
// store.UserStore interface. It accepts a database connection or
// transaction that should be initialized and managed by the caller.
func NewUserStore(db store.DBTX) *UserStore {
	return &UserStore{db: db}
}

// Ensure UserStore implements store.UserStore interface
var _ store.UserStore = (*UserStore)(nil)

// WithTx returns a new UserStore bound to the given transaction.
func (s *UserStore) WithTx(tx *sql.Tx) store.UserStore {
	return &UserStore{db: tx}
}

// Create implements store.UserStore.Create
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContext(ctx)

	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}
	if user.HashedPassword == "" {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, domain.ErrEmptyHashedPassword)
	}

	query := `
		INSERT INTO users (id, name, contact_number, city, email, role, hashed_password, profile_picture, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := s.db.ExecContext(ctx, query,
		user.ID,
		user.Name,
		user.ContactNumber,
		user.City,
		user.Email,
		user.Role,
		user.HashedPassword,
		nullString(user.ProfilePicture),
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("duplicate email on user create",
				"user_id", user.ID)
			return fmt.Errorf("%w: %v", store.ErrEmailExists, err)
		}
		log.Error("failed to create user",
			"user_id", user.ID,
			"error", err)
		return fmt.Errorf("failed to create user: %w", MapError(err))
	}

	return nil
}

// GetByID implements store.UserStore.GetByID
func (s *UserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `
		SELECT id, name, contact_number, city, email, role, hashed_password, profile_picture, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	return s.scanUser(s.db.QueryRowContext(ctx, query, id))
}

// GetByEmail implements store.UserStore.GetByEmail
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, name, contact_number, city, email, role, hashed_password, profile_picture, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	return s.scanUser(s.db.QueryRowContext(ctx, query, email))
}

// UpdateProfilePicture implements store.UserStore.UpdateProfilePicture
func (s *UserStore) UpdateProfilePicture(ctx context.Context, id uuid.UUID, pictureRef string) error {
	log := logger.FromContext(ctx)

	query := `
		UPDATE users
		SET profile_picture = $1, updated_at = now()
		WHERE id = $2
	`

	result, err := s.db.ExecContext(ctx, query, pictureRef, id)
	if err != nil {
		log.Error("failed to update profile picture",
			"user_id", id,
			"error", err)
		return fmt.Errorf("failed to update profile picture: %w", MapError(err))
	}

	if err := CheckRowsAffected(result, "user"); err != nil {
		return store.ErrUserNotFound
	}

	return nil
}

// ListByRole implements store.UserStore.ListByRole
func (s *UserStore) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	log := logger.FromContext(ctx)

	query := `
		SELECT id, name, contact_number, city, email, role, hashed_password, profile_picture, created_at, updated_at
		FROM users
		WHERE role = $1
	`

	rows, err := s.db.QueryContext(ctx, query, role)
	if err != nil {
		log.Error("failed to query users by role",
			"role", role,
			"error", err)
		return nil, fmt.Errorf("failed to query users by role: %w", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	var users []domain.User
	for rows.Next() {
		user, err := scanUserRow(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate user rows: %w", err)
	}

	return users, nil
}

// rowScanner matches both sql.Row.Scan and sql.Rows.Scan.
type rowScanner func(dest ...any) error

func (s *UserStore) scanUser(row *sql.Row) (*domain.User, error) {
	user, err := scanUserRow(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", MapError(err))
	}
	return user, nil
}

func scanUserRow(scan rowScanner) (*domain.User, error) {
	var user domain.User
	var profilePicture sql.NullString

	if err := scan(
		&user.ID,
		&user.Name,
		&user.ContactNumber,
		&user.City,
		&user.Email,
		&user.Role,
		&user.HashedPassword,
		&profilePicture,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}

	user.ProfilePicture = profilePicture.String
	return &user, nil
}

// nullString maps an empty string to SQL NULL.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
