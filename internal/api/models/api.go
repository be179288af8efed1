// Package models provides request and response models for the AeroPulse API.
package models

import (
	"time"

	"github.com/aeropulse/aeropulse/internal/airquality"
)

// DiagnosticRequest is the body of POST /api/diagnostic/run. AirData is a
// provider-shaped snapshot; missing fields default inside the scorer.
type DiagnosticRequest struct {
	UserID    string              `json:"user_id"`
	AirData   airquality.Snapshot `json:"air_data"`
	Condition string              `json:"condition"`
	Smoke     bool                `json:"smoke"`
	Drink     bool                `json:"drink"`
}

// StatusResponse acknowledges a write operation.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Health reports service liveness.
type Health struct {
	Status  string    `json:"status"`
	Version string    `json:"version"`
	Time    time.Time `json:"time"`
}
