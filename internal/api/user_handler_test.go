package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/rental-portal-api/internal/api/shared"
	"github.com/phrazzld/rental-portal-api/internal/domain"
	"github.com/phrazzld/rental-portal-api/internal/mocks"
	"github.com/phrazzld/rental-portal-api/internal/service"
)

func newUserHandlerFixture() (*UserHandler, *mocks.MockUserStore, *mocks.MockFileStore) {
	users := mocks.NewMockUserStore()
	properties := mocks.NewMockPropertyStore()
	interests := mocks.NewMockInterestStore(users, properties)
	files := &mocks.MockFileStore{}
	listings := service.NewListingService(properties, users, interests)
	return NewUserHandler(users, listings, files), users, files
}

func authedRequest(method, target string, body io.Reader, userID uuid.UUID, role domain.Role) *http.Request {
	req := httptest.NewRequest(method, target, body)
	ctx := context.WithValue(req.Context(), shared.UserIDContextKey, userID)
	ctx = context.WithValue(ctx, shared.UserRoleContextKey, role)
	return req.WithContext(ctx)
}

func TestUserHandler_GetProfile(t *testing.T) {
	t.Parallel()

	handler, users, _ := newUserHandlerFixture()

	user, err := domain.NewUser("Alice", "555-0100", "Springfield", "alice@example.com", "password123", domain.RoleOwner)
	require.NoError(t, err)
	user.HashedPassword = "$2a$10$somebcrypthash"
	user.Password = ""
	users.Users[user.Email] = user

	recorder := httptest.NewRecorder()
	handler.GetProfile(recorder, authedRequest("GET", "/profile", nil, user.ID, user.Role))

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp domain.User
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, user.ID, resp.ID)
	assert.Equal(t, "alice@example.com", resp.Email)

	// The hash never leaves the server.
	assert.NotContains(t, recorder.Body.String(), "somebcrypthash")
}

func TestUserHandler_GetProfile_Unauthenticated(t *testing.T) {
	t.Parallel()

	handler, _, _ := newUserHandlerFixture()

	recorder := httptest.NewRecorder()
	handler.GetProfile(recorder, httptest.NewRequest("GET", "/profile", nil))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestUserHandler_GetProfile_UnknownUser(t *testing.T) {
	t.Parallel()

	handler, _, _ := newUserHandlerFixture()

	recorder := httptest.NewRecorder()
	handler.GetProfile(recorder, authedRequest("GET", "/profile", nil, uuid.New(), domain.RoleRenter))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestUserHandler_UploadProfilePicture(t *testing.T) {
	t.Parallel()

	handler, users, files := newUserHandlerFixture()

	user, err := domain.NewUser("Alice", "555-0100", "Springfield", "alice@example.com", "password123", domain.RoleOwner)
	require.NoError(t, err)
	user.HashedPassword = "hashed:password123"
	user.Password = ""
	users.Users[user.Email] = user

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("profile_picture", "avatar.png")
	require.NoError(t, err)
	_, err = io.WriteString(part, "png-bytes")
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := authedRequest("POST", "/profile/picture", &buf, user.ID, user.Role)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	recorder := httptest.NewRecorder()
	handler.UploadProfilePicture(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp ProfilePictureResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, "Profile picture updated successfully", resp.Message)
	assert.NotEmpty(t, resp.ProfilePicture)

	// The reference landed on the user record.
	assert.Equal(t, resp.ProfilePicture, users.Users[user.Email].ProfilePicture)
	assert.Equal(t, []string{"avatar.png"}, files.SavedNames)
}

func TestUserHandler_UploadProfilePicture_MissingFile(t *testing.T) {
	t.Parallel()

	handler, users, _ := newUserHandlerFixture()

	user, err := domain.NewUser("Alice", "555-0100", "Springfield", "alice@example.com", "password123", domain.RoleOwner)
	require.NoError(t, err)
	user.HashedPassword = "hashed:password123"
	user.Password = ""
	users.Users[user.Email] = user

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("unrelated", "value"))
	require.NoError(t, writer.Close())

	req := authedRequest("POST", "/profile/picture", &buf, user.ID, user.Role)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	recorder := httptest.NewRecorder()
	handler.UploadProfilePicture(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestUserHandler_ListOwners(t *testing.T) {
	t.Parallel()

	handler, users, _ := newUserHandlerFixture()

	owner, err := domain.NewUser("Alice", "555-0100", "Springfield", "alice@example.com", "password123", domain.RoleOwner)
	require.NoError(t, err)
	owner.HashedPassword = "hashed:password123"
	owner.Password = ""
	users.Users[owner.Email] = owner

	renter, err := domain.NewUser("Bob", "555-0101", "Springfield", "bob@example.com", "password123", domain.RoleRenter)
	require.NoError(t, err)
	renter.HashedPassword = "hashed:password123"
	renter.Password = ""
	users.Users[renter.Email] = renter

	recorder := httptest.NewRecorder()
	handler.ListOwners(recorder, httptest.NewRequest("GET", "/owners", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp []OwnerResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Alice", resp[0].Name)
	assert.Equal(t, "Springfield", resp[0].City)
}

func TestUserHandler_ListOwners_Empty(t *testing.T) {
	t.Parallel()

	handler, _, _ := newUserHandlerFixture()

	recorder := httptest.NewRecorder()
	handler.ListOwners(recorder, httptest.NewRequest("GET", "/owners", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, "[]", recorder.Body.String())
}
