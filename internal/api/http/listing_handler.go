package http

import (
	"net/http"
	"strconv"
	"time"

	"internship-board-backend/internal/domain"
	"internship-board-backend/internal/service"

	"github.com/gorilla/mux"
)

type ListingHandler struct {
	listingSvc service.ListingService
}

func NewListingHandler(listingSvc service.ListingService) *ListingHandler {
	return &ListingHandler{listingSvc: listingSvc}
}

// listingResponse augments a listing with the derived days-remaining value.
type listingResponse struct {
	domain.Listing
	DaysRemaining *int32 `json:"days_remaining"`
}

func toListingResponse(l domain.Listing, now time.Time) listingResponse {
	resp := listingResponse{Listing: l}
	if days, ok := l.DaysRemaining(now); ok {
		resp.DaysRemaining = &days
	}
	return resp
}

func (h *ListingHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing bearer token"})
		return
	}

	var input service.ListingInput
	if err := decodeJSON(r, &input); err != nil {
		respondError(w, err)
		return
	}

	listing, err := h.listingSvc.CreateListing(r.Context(), claims.UserID, input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toListingResponse(*listing, time.Now()))
}

func (h *ListingHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := domain.ListingFilter{Query: r.URL.Query().Get("q")}
	listings, err := h.listingSvc.ListListings(r.Context(), filter)
	if err != nil {
		respondError(w, err)
		return
	}

	now := time.Now()
	resp := make([]listingResponse, 0, len(listings))
	for _, l := range listings {
		resp = append(resp, toListingResponse(l, now))
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *ListingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	listing, err := h.listingSvc.GetListing(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toListingResponse(*listing, time.Now()))
}

func (h *ListingHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing bearer token"})
		return
	}

	listings, err := h.listingSvc.ListMyListings(r.Context(), claims.UserID)
	if err != nil {
		respondError(w, err)
		return
	}

	now := time.Now()
	resp := make([]listingResponse, 0, len(listings))
	for _, l := range listings {
		resp = append(resp, toListingResponse(l, now))
	}
	respondJSON(w, http.StatusOK, resp)
}

func pathID(r *http.Request, name string) (int32, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(name, "must be a positive integer")
	}
	return int32(id), nil
}
