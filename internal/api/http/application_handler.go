package http

import (
	"net/http"

	"internship-board-backend/internal/domain"
	"internship-board-backend/internal/service"
)

type ApplicationHandler struct {
	appSvc service.ApplicationService
}

func NewApplicationHandler(appSvc service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{appSvc: appSvc}
}

func (h *ApplicationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing bearer token"})
		return
	}

	listingID, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	app, err := h.appSvc.Apply(r.Context(), claims.UserID, listingID)
	if err != nil {
		respondError(w, err)
		return
	}
	// 200 rather than 201: a repeat apply returns the existing record.
	respondJSON(w, http.StatusOK, app)
}

type decisionRequest struct {
	Status string `json:"status"`
}

func (h *ApplicationHandler) Decide(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing bearer token"})
		return
	}

	applicationID, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	var req decisionRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	app, err := h.appSvc.Decide(r.Context(), claims.UserID, applicationID, domain.ApplicationStatus(req.Status))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, app)
}

func (h *ApplicationHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing bearer token"})
		return
	}

	apps, err := h.appSvc.ListForStudent(r.Context(), claims.UserID)
	if err != nil {
		respondError(w, err)
		return
	}
	if apps == nil {
		apps = []domain.Application{}
	}
	respondJSON(w, http.StatusOK, apps)
}

func (h *ApplicationHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing bearer token"})
		return
	}

	apps, err := h.appSvc.ListPendingForFaculty(r.Context(), claims.UserID)
	if err != nil {
		respondError(w, err)
		return
	}
	if apps == nil {
		apps = []domain.Application{}
	}
	respondJSON(w, http.StatusOK, apps)
}
