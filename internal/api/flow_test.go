package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apimiddleware "github.com/phrazzld/rental-portal-api/internal/api/middleware"
	"github.com/phrazzld/rental-portal-api/internal/config"
	"github.com/phrazzld/rental-portal-api/internal/domain"
	"github.com/phrazzld/rental-portal-api/internal/mocks"
	"github.com/phrazzld/rental-portal-api/internal/service"
	"github.com/phrazzld/rental-portal-api/internal/service/auth"
)

// newFlowRouter wires the production route layout with real JWT
// verification and in-memory stores, so requests cross the same auth
// gate they would in production.
func newFlowRouter(t *testing.T) http.Handler {
	t.Helper()

	users := mocks.NewMockUserStore()
	properties := mocks.NewMockPropertyStore()
	interests := mocks.NewMockInterestStore(users, properties)
	files := &mocks.MockFileStore{}

	jwtService, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:            "test-secret-key-thats-at-least-32-chars",
		TokenLifetimeMinutes: 60,
	})
	require.NoError(t, err)

	hasher := &mocks.MockPasswordVerifier{}
	listings := service.NewListingService(properties, users, interests)
	interestSvc := service.NewInterestService(nil, properties, users, interests, listings)

	authHandler := NewAuthHandler(users, jwtService, hasher, hasher)
	userHandler := NewUserHandler(users, listings, files)
	propertyHandler := NewPropertyHandler(listings, interestSvc, files)
	authMiddleware := apimiddleware.NewAuthMiddleware(jwtService)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Get("/owners", userHandler.ListOwners)
		r.Get("/locations", propertyHandler.ListLocations)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Get("/profile", userHandler.GetProfile)
			r.Post("/properties", propertyHandler.CreateListing)
			r.Get("/properties", propertyHandler.ListProperties)
			r.Get("/properties/interested", propertyHandler.MyInterestedProperties)
			r.Get("/properties/{propertyID}/interested", propertyHandler.InterestedRenters)
			r.Post("/properties/{propertyID}/interest", propertyHandler.ExpressInterest)
		})
	})
	return r
}

func doJSON(t *testing.T, router http.Handler, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func registerAndLogin(t *testing.T, router http.Handler, name, email, role string) (string, AuthResponse) {
	t.Helper()

	recorder := doJSON(t, router, "POST", "/api/auth/register", "", RegisterRequest{
		Name:          name,
		ContactNumber: "555-0100",
		City:          "Springfield",
		Email:         email,
		Password:      "password123",
		Role:          role,
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = doJSON(t, router, "POST", "/api/auth/login", "", LoginRequest{
		Email:    email,
		Password: "password123",
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp AuthResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token, resp
}

func TestOwnerRenterFlow(t *testing.T) {
	t.Parallel()

	router := newFlowRouter(t)

	// Alice registers as an owner, Bob as a renter.
	aliceToken, aliceAuth := registerAndLogin(t, router, "Alice", "alice@example.com", "Owner")
	bobToken, bobAuth := registerAndLogin(t, router, "Bob", "bob@example.com", "Renter")
	assert.Equal(t, domain.RoleOwner, aliceAuth.Role)
	assert.Equal(t, domain.RoleRenter, bobAuth.Role)

	// Alice creates a listing.
	recorder := createListingRequest(t, router, aliceToken)
	require.Equal(t, http.StatusCreated, recorder.Code)

	var created domain.Property
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &created))
	assert.Equal(t, aliceAuth.UserID, created.OwnerID)

	// Bob browses and sees Alice's listing.
	recorder = doJSON(t, router, "GET", "/api/properties", bobToken, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var views []domain.PropertyView
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &views))
	require.Len(t, views, 1)
	assert.Equal(t, "Alice", views[0].Owner.Name)

	// Bob expresses interest; repeating is rejected.
	interestTarget := fmt.Sprintf("/api/properties/%s/interest", created.ID)
	recorder = doJSON(t, router, "POST", interestTarget, bobToken, ExpressInterestRequest{RenterID: bobAuth.UserID})
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = doJSON(t, router, "POST", interestTarget, bobToken, ExpressInterestRequest{RenterID: bobAuth.UserID})
	require.Equal(t, http.StatusConflict, recorder.Code)

	// Alice sees Bob's summary against her property.
	recorder = doJSON(t, router, "GET", fmt.Sprintf("/api/properties/%s/interested", created.ID), aliceToken, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var renters []domain.UserSummary
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &renters))
	require.Len(t, renters, 1)
	assert.Equal(t, "Bob", renters[0].Name)
	assert.Equal(t, "bob@example.com", renters[0].Email)

	// Bob's own interest list shows the property exactly once.
	recorder = doJSON(t, router, "GET", "/api/properties/interested", bobToken, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var interested []domain.PropertyView
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &interested))
	require.Len(t, interested, 1)
	assert.Equal(t, created.ID, interested[0].ID)
}

func TestFlow_ProtectedRoutesRequireToken(t *testing.T) {
	t.Parallel()

	router := newFlowRouter(t)

	recorder := doJSON(t, router, "GET", "/api/profile", "", nil)
	require.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Authorization header required")

	recorder = doJSON(t, router, "GET", "/api/properties", "not-a-real-token", nil)
	require.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Invalid token")
}

func TestFlow_TokenFromOtherSecretRejected(t *testing.T) {
	t.Parallel()

	router := newFlowRouter(t)

	foreign, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:            "a-completely-different-32-char-secret!!",
		TokenLifetimeMinutes: 60,
	})
	require.NoError(t, err)

	_, bobAuth := registerAndLogin(t, router, "Bob", "bob@example.com", "Renter")

	forged, err := foreign.GenerateToken(context.Background(), bobAuth.UserID, domain.RoleRenter)
	require.NoError(t, err)

	recorder := doJSON(t, router, "GET", "/api/profile", forged, nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

// createListingRequest posts a minimal multipart listing as the
// token's user.
func createListingRequest(t *testing.T, router http.Handler, token string) *httptest.ResponseRecorder {
	t.Helper()

	req := listingForm(t, validListingFields(), []string{"front.jpg"})
	req.Header.Set("Authorization", "Bearer "+token)
	// listingForm targets /properties; the flow router mounts under /api.
	req.URL.Path = "/api/properties"
	req.RequestURI = "/api/properties"

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}
