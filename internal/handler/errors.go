package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/mccluneyz/coffeeco/backend/internal/domain"
)

// errorResponse is the wire shape for every error the API returns:
// a single human-readable message under the "error" key.
type errorResponse struct {
	Error string `json:"error"`
}

// respondJSON writes v as a JSON response with the given status code.
// Encoding failures are swallowed — the status line has already been
// written by then, so there is nothing useful left to tell the client.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// respondError writes a JSON error body with the given status code.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}

// respondServiceError maps a service-layer error onto an HTTP response:
// domain.ErrValidation → 400, domain.ErrNotFound → 404 (with notFoundMsg),
// anything else → 500 carrying the underlying message for diagnosis.
// Only the 500 path is logged; 400s and 404s are normal traffic.
func (s *Server) respondServiceError(ctx context.Context, w http.ResponseWriter, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		respondError(w, http.StatusBadRequest, validationMessage(err))
	case errors.Is(err, domain.ErrNotFound):
		respondError(w, http.StatusNotFound, notFoundMsg)
	default:
		s.log.ErrorContext(ctx, "request failed", "error", err)
		respondError(w, http.StatusInternalServerError, err.Error())
	}
}

// validationMessage extracts the human-readable part from a wrapped
// domain.ErrValidation, e.g.
// "service.ShopService.Create: validation error: name is required" → "name is required".
func validationMessage(err error) string {
	msg := err.Error()
	if _, after, found := strings.Cut(msg, domain.ErrValidation.Error()+": "); found {
		return after
	}
	return msg
}

// apiNotFound answers unmatched paths under /api with a JSON 404, so API
// clients never receive the SPA fallback page.
func apiNotFound(w http.ResponseWriter, _ *http.Request) {
	respondError(w, http.StatusNotFound, "API endpoint not found")
}
