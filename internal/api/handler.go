// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/barprep/backend/internal/auth"
	"github.com/barprep/backend/internal/service"
	"github.com/barprep/backend/internal/store"
)

// validate is shared across handlers; validator instances cache struct
// metadata and are safe for concurrent use.
var validate = validator.New()

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	questions  store.QuestionRepository
	sessions   *service.SessionService
	progress   *service.ProgressService
	verifier   *auth.Verifier
	adminGroup string
	logger     *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(questions store.QuestionRepository, sessions *service.SessionService, progress *service.ProgressService, verifier *auth.Verifier, adminGroup string, logger *slog.Logger) *Handler {
	return &Handler{
		questions:  questions,
		sessions:   sessions,
		progress:   progress,
		verifier:   verifier,
		adminGroup: adminGroup,
		logger:     logger,
	}
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError writes a JSON error body with the given status code.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// decodeJSON decodes the request body. Returns false (and responds)
// on malformed JSON.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

// decodeAndValidate decodes the request body and runs the struct's
// validate tags. Returns false (and responds) on any failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v any) bool {
	if !decodeJSON(w, r, v) {
		return false
	}
	if err := validate.Struct(v); err != nil {
		respondError(w, http.StatusBadRequest, validationMessage(err))
		return false
	}
	return true
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		f := verrs[0]
		return "invalid field " + f.Field() + ": failed " + f.Tag() + " check"
	}
	return "invalid request"
}

// handleStoreError checks for common store errors and writes the appropriate
// HTTP response. Returns true if an error was handled (caller should return).
func (h *Handler) handleStoreError(w http.ResponseWriter, err error, entity string) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, entity+" not found")
		return true
	}
	h.logger.Error("store error", "error", err, "entity", entity)
	respondError(w, http.StatusInternalServerError, "internal error")
	return true
}

// handleSessionError maps session registry errors. Returns true if an
// error was handled.
func (h *Handler) handleSessionError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, service.ErrSessionNotFound) {
		respondError(w, http.StatusNotFound, "session not found")
		return true
	}
	if errors.Is(err, service.ErrUnknownQuestion) {
		respondError(w, http.StatusNotFound, "question not part of this session")
		return true
	}
	h.logger.Error("session error", "error", err)
	respondError(w, http.StatusInternalServerError, "internal error")
	return true
}
