package http

import (
	"io"
	"net/http"

	"internship-board-backend/internal/service"
)

type ResumeHandler struct {
	resumeSvc   service.ResumeService
	maxFileSize int64
}

func NewResumeHandler(resumeSvc service.ResumeService, maxFileSizeMB int64) *ResumeHandler {
	return &ResumeHandler{
		resumeSvc:   resumeSvc,
		maxFileSize: maxFileSizeMB << 20,
	}
}

// Upload accepts the resume as the raw request body (PUT with
// Content-Type: application/pdf).
func (h *ResumeHandler) Upload(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing bearer token"})
		return
	}

	body := http.MaxBytesReader(w, r.Body, h.maxFileSize)
	defer body.Close()

	key, err := h.resumeSvc.Upload(r.Context(), claims.UserID, r.Header.Get("X-File-Name"), r.Header.Get("Content-Type"), body)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"key": key})
}

func (h *ResumeHandler) Download(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing bearer token"})
		return
	}

	reader, _, err := h.resumeSvc.Download(r.Context(), claims.UserID)
	if err != nil {
		respondError(w, err)
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="resume.pdf"`)
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, reader); err != nil {
		// Headers already sent; nothing left to do but log.
		return
	}
}

func (h *ResumeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing bearer token"})
		return
	}

	if err := h.resumeSvc.Delete(r.Context(), claims.UserID); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
