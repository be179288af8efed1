package models

import (
	"encoding/json"
	"net/http"
)

// Problem represents an RFC7807 error response, written with
// Content-Type: application/problem+json.
type Problem struct {
	// Type is a URI reference that identifies the problem type.
	Type string `json:"type"`

	// Title is a short, human-readable summary of the problem type.
	Title string `json:"title"`

	// Status is the HTTP status code for this occurrence of the problem.
	Status int `json:"status"`

	// Detail is a human-readable explanation specific to this occurrence.
	Detail string `json:"detail,omitempty"`

	// Instance is a URI reference that identifies the specific occurrence.
	Instance string `json:"instance,omitempty"`

	// TraceID is the request trace identifier for debugging.
	TraceID string `json:"traceId"`

	// Errors contains structured field validation errors.
	Errors []FieldError `json:"errors,omitempty"`
}

// FieldError represents a validation error on a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ProblemType constants for standard error types.
const (
	ProblemTypeValidation = "https://api.aeropulse.dev/problems/validation-error"
	ProblemTypeNotFound   = "https://api.aeropulse.dev/problems/not-found"
	ProblemTypeUpstream   = "https://api.aeropulse.dev/problems/upstream-error"
	ProblemTypeInternal   = "https://api.aeropulse.dev/problems/internal-error"
)

// Write writes the Problem as JSON to the ResponseWriter.
func (p *Problem) Write(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.Header().Set("X-Request-Id", p.TraceID)
	w.WriteHeader(p.Status)
	_ = json.NewEncoder(w).Encode(p)
}

// NewBadRequest creates a 400 Bad Request problem.
func NewBadRequest(traceID, detail string, errors []FieldError) *Problem {
	return &Problem{
		Type:    ProblemTypeValidation,
		Title:   "Validation error",
		Status:  http.StatusBadRequest,
		Detail:  detail,
		TraceID: traceID,
		Errors:  errors,
	}
}

// NewNotFound creates a 404 Not Found problem.
func NewNotFound(traceID, detail string) *Problem {
	return &Problem{
		Type:    ProblemTypeNotFound,
		Title:   "Not found",
		Status:  http.StatusNotFound,
		Detail:  detail,
		TraceID: traceID,
	}
}

// NewUpstream creates a problem that forwards an upstream provider's status.
func NewUpstream(traceID, detail string, status int) *Problem {
	return &Problem{
		Type:    ProblemTypeUpstream,
		Title:   "Upstream provider error",
		Status:  status,
		Detail:  detail,
		TraceID: traceID,
	}
}

// NewInternalError creates a 500 Internal Server Error problem.
func NewInternalError(traceID, detail string) *Problem {
	return &Problem{
		Type:    ProblemTypeInternal,
		Title:   "Internal server error",
		Status:  http.StatusInternalServerError,
		Detail:  detail,
		TraceID: traceID,
	}
}
