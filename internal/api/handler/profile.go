package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aeropulse/aeropulse/internal/api/models"
	"github.com/aeropulse/aeropulse/internal/api/response"
	"github.com/aeropulse/aeropulse/internal/profile"
)

// ProfileHandler handles user profile endpoints.
type ProfileHandler struct {
	profiles *profile.Service
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profiles *profile.Service) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// SaveProfile handles POST /api/profile/save - create or overwrite a profile.
func (h *ProfileHandler) SaveProfile(w http.ResponseWriter, r *http.Request) {
	var p profile.Profile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	if p.UserID == "" {
		response.BadRequest(w, r, "validation failed", []models.FieldError{
			{Field: "user_id", Message: "must not be empty"},
		})
		return
	}

	if err := h.profiles.Save(r.Context(), &p); err != nil {
		response.InternalError(w, r, err.Error())
		return
	}

	response.JSON(w, r, http.StatusOK, models.StatusResponse{
		Status:  "success",
		Message: "Profile saved successfully",
	})
}

// GetProfile handles GET /api/profile/{userID} - fetch the stored profile.
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	p, err := h.profiles.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			response.NotFound(w, r, "Profile not found")
			return
		}
		response.InternalError(w, r, err.Error())
		return
	}

	response.JSON(w, r, http.StatusOK, p)
}
