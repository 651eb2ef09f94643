package api

import (
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/rental-portal-api/internal/api/shared"
	"github.com/phrazzld/rental-portal-api/internal/domain"
	"github.com/phrazzld/rental-portal-api/internal/platform/storage"
	"github.com/phrazzld/rental-portal-api/internal/service"
)

// maxListingFormBytes caps a create-listing upload (metadata plus up
// to five images).
const maxListingFormBytes = 32 << 20 // 32 MiB

// PropertyHandler handles listing and interest API requests.
type PropertyHandler struct {
	listings  *service.ListingService
	interests *service.InterestService
	fileStore storage.FileStore
	validator *validator.Validate
}

// NewPropertyHandler creates a new PropertyHandler with the given dependencies.
func NewPropertyHandler(
	listings *service.ListingService,
	interests *service.InterestService,
	fileStore storage.FileStore,
) *PropertyHandler {
	return &PropertyHandler{
		listings:  listings,
		interests: interests,
		fileStore: fileStore,
		validator: validator.New(),
	}
}

// CreateListing handles POST /properties. The body is a multipart form
// carrying title, description, price, location, and 0-5 image files
// under the "images" field. A sixth image is rejected here, before any
// file is stored. Files already stored when a later step fails are not
// cleaned up.
func (h *PropertyHandler) CreateListing(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := identityFromContext(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxListingFormBytes); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	title := strings.TrimSpace(r.FormValue("title"))
	description := strings.TrimSpace(r.FormValue("description"))
	priceRaw := strings.TrimSpace(r.FormValue("price"))
	location := strings.TrimSpace(r.FormValue("location"))

	if title == "" || description == "" || priceRaw == "" || location == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "All fields are required")
		return
	}

	price, err := strconv.ParseFloat(priceRaw, 64)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "price must be a number")
		return
	}

	var fileHeaders []*multipart.FileHeader
	if r.MultipartForm != nil {
		fileHeaders = r.MultipartForm.File["images"]
	}
	if len(fileHeaders) > domain.MaxPropertyImages {
		shared.RespondWithError(w, r, http.StatusBadRequest, "At most 5 images are allowed")
		return
	}

	images := make([]string, 0, len(fileHeaders))
	for _, header := range fileHeaders {
		ref, err := h.saveImage(r, header)
		if err != nil {
			slog.Error("failed to store listing image", "error", err, "user_id", userID)
			shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to store image")
			return
		}
		images = append(images, ref)
	}

	property, err := h.listings.CreateListing(r.Context(), userID, role, title, description, price, location, images)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, property)
}

// saveImage opens one uploaded image part and hands it to the file store.
func (h *PropertyHandler) saveImage(r *http.Request, header *multipart.FileHeader) (string, error) {
	file, err := header.Open()
	if err != nil {
		return "", err
	}
	defer func() { _ = file.Close() }()

	return h.fileStore.Save(r.Context(), header.Filename, file)
}

// ListProperties handles GET /properties. Owners see their own
// listings, renters see everything; each property comes back resolved
// with an owner summary and interested-renter summaries.
func (h *PropertyHandler) ListProperties(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := identityFromContext(w, r)
	if !ok {
		return
	}

	views, err := h.listings.ListForViewer(r.Context(), userID, role)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, views)
}

// ListLocations handles GET /locations, the public directory of every
// distinct listing location.
func (h *PropertyHandler) ListLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := h.listings.DistinctLocations(r.Context())
	if err != nil {
		slog.Error("failed to list locations", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to fetch locations")
		return
	}
	if locations == nil {
		locations = []string{}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, locations)
}

// InterestedRenters handles GET /properties/{propertyID}/interested.
func (h *PropertyHandler) InterestedRenters(w http.ResponseWriter, r *http.Request) {
	if _, _, ok := identityFromContext(w, r); !ok {
		return
	}

	propertyID, err := pathUUID(r, "propertyID")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	renters, err := h.interests.InterestedRenters(r.Context(), propertyID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, renters)
}

// MyInterestedProperties handles GET /properties/interested, the
// authenticated renter's own interest list.
func (h *PropertyHandler) MyInterestedProperties(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := identityFromContext(w, r)
	if !ok {
		return
	}

	views, err := h.interests.InterestedProperties(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, views)
}

// ExpressInterest handles POST /properties/{propertyID}/interest.
// Repeating the call for the same pair is rejected with a conflict.
func (h *PropertyHandler) ExpressInterest(w http.ResponseWriter, r *http.Request) {
	if _, _, ok := identityFromContext(w, r); !ok {
		return
	}

	propertyID, err := pathUUID(r, "propertyID")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req ExpressInterestRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	if err := h.interests.ExpressInterest(r.Context(), propertyID, req.RenterID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{
		Message: "Interest request sent successfully",
	})
}
