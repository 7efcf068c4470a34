package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Roopikasri/Forum-form/internal/domain"
	"github.com/Roopikasri/Forum-form/internal/service"
)

// ProfileHandler handles viewing and updating the authenticated user's profile.
type ProfileHandler struct {
	auth *service.AuthService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(auth *service.AuthService) *ProfileHandler {
	return &ProfileHandler{auth: auth}
}

// HandleGet returns the authenticated user's profile.
// GET /api/profile
// Response: {"user": {...}}
func (h *ProfileHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user": toUserDTO(user),
	})
}

// HandleUpdate overwrites the authenticated user's username and email.
// PUT /api/profile
// Request:  {"username":"...","email":"..."}
// Response: {"user": {...}}
func (h *ProfileHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if err := h.auth.UpdateProfile(r.Context(), user.ID, req.Username, req.Email); err != nil {
		if errors.Is(err, domain.ErrDuplicateCredential) {
			writeError(w, http.StatusConflict, "Username or email already exists.")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.Error("update profile", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	updated, err := h.auth.GetUserByID(r.Context(), user.ID)
	if err != nil {
		slog.Error("get user after profile update", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user": toUserDTO(updated),
	})
}
