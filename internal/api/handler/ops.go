package handler

import (
	"net/http"
	"time"

	"github.com/aeropulse/aeropulse/internal/api/models"
	"github.com/aeropulse/aeropulse/internal/api/response"
)

// OpsHandler handles operational endpoints.
type OpsHandler struct {
	version string
}

// NewOpsHandler creates a new OpsHandler.
func NewOpsHandler(version string) *OpsHandler {
	return &OpsHandler{version: version}
}

// HealthCheck handles GET /api/health - liveness check.
func (h *OpsHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, models.Health{
		Status:  "OK",
		Version: h.version,
		Time:    time.Now(),
	})
}
