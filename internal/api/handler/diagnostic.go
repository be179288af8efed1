package handler

import (
	"encoding/json"
	"net/http"

	"github.com/aeropulse/aeropulse/internal/api/models"
	"github.com/aeropulse/aeropulse/internal/api/response"
	"github.com/aeropulse/aeropulse/internal/diagnostic"
)

// DiagnosticHandler runs risk assessments.
type DiagnosticHandler struct{}

// NewDiagnosticHandler creates a new DiagnosticHandler.
func NewDiagnosticHandler() *DiagnosticHandler {
	return &DiagnosticHandler{}
}

// RunDiagnostic handles POST /api/diagnostic/run - compute a risk assessment
// from an air quality snapshot and lifestyle factors.
func (h *DiagnosticHandler) RunDiagnostic(w http.ResponseWriter, r *http.Request) {
	var req models.DiagnosticRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	result := diagnostic.Evaluate(diagnostic.Input{
		Air:       req.AirData,
		Condition: req.Condition,
		Smoke:     req.Smoke,
		Drink:     req.Drink,
	})

	response.JSON(w, r, http.StatusOK, result)
}
