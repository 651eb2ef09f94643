package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/phrazzld/rental-portal-api/internal/api/shared"
	"github.com/phrazzld/rental-portal-api/internal/platform/storage"
	"github.com/phrazzld/rental-portal-api/internal/service"
	"github.com/phrazzld/rental-portal-api/internal/store"
)

// maxProfilePictureBytes caps profile-picture uploads.
const maxProfilePictureBytes = 10 << 20 // 10 MiB

// UserHandler handles profile and owner-directory API requests.
type UserHandler struct {
	userStore store.UserStore
	listings  *service.ListingService
	fileStore storage.FileStore
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(
	userStore store.UserStore,
	listings *service.ListingService,
	fileStore storage.FileStore,
) *UserHandler {
	return &UserHandler{
		userStore: userStore,
		listings:  listings,
		fileStore: fileStore,
	}
}

// GetProfile handles GET /profile. The password hash never appears in
// the response; the domain type excludes it from serialization.
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := identityFromContext(w, r)
	if !ok {
		return
	}

	user, err := h.userStore.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			HandleAPIError(w, r, err, "")
			return
		}
		slog.Error("failed to get profile", "error", err, "user_id", userID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to fetch profile")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

// UploadProfilePicture handles POST /profile/picture. The stored
// reference overwrites any previous one; re-uploading is idempotent at
// the record level, the previous file is not deleted.
func (h *UserHandler) UploadProfilePicture(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := identityFromContext(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxProfilePictureBytes); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("profile_picture")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "profile_picture file is required")
		return
	}
	defer func() { _ = file.Close() }()

	ref, err := h.fileStore.Save(r.Context(), header.Filename, file)
	if err != nil {
		slog.Error("failed to store profile picture", "error", err, "user_id", userID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to store profile picture")
		return
	}

	if err := h.userStore.UpdateProfilePicture(r.Context(), userID, ref); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			HandleAPIError(w, r, err, "")
			return
		}
		slog.Error("failed to update profile picture", "error", err, "user_id", userID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to update profile picture")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ProfilePictureResponse{
		Message:        "Profile picture updated successfully",
		ProfilePicture: ref,
	})
}

// ListOwners handles GET /owners, the public owner directory.
func (h *UserHandler) ListOwners(w http.ResponseWriter, r *http.Request) {
	owners, err := h.listings.ListOwners(r.Context())
	if err != nil {
		slog.Error("failed to list owners", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to fetch owners")
		return
	}

	resp := make([]OwnerResponse, 0, len(owners))
	for _, owner := range owners {
		resp = append(resp, OwnerResponse{
			ID:            owner.ID,
			Name:          owner.Name,
			ContactNumber: owner.ContactNumber,
			City:          owner.City,
			Email:         owner.Email,
		})
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}
