// Package handler provides HTTP handlers for the AeroPulse API.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/aeropulse/aeropulse/internal/airquality"
	"github.com/aeropulse/aeropulse/internal/api/models"
	"github.com/aeropulse/aeropulse/internal/api/response"
)

// DefaultHistoryHours is the history window used when the hours query
// parameter is absent.
const DefaultHistoryHours = 24

// PollutionProvider fetches pollution documents for a coordinate.
type PollutionProvider interface {
	CurrentPollution(ctx context.Context, lat, lon float64) (*airquality.PollutionData, error)
	HistoryPollution(ctx context.Context, lat, lon float64, hours int) (*airquality.PollutionData, error)
}

// AirQualityHandler proxies the pollution provider.
type AirQualityHandler struct {
	provider PollutionProvider
}

// NewAirQualityHandler creates a new AirQualityHandler.
func NewAirQualityHandler(provider PollutionProvider) *AirQualityHandler {
	return &AirQualityHandler{provider: provider}
}

// GetCurrent handles GET /api/air-quality?lat&lon - current pollution for a
// coordinate, provider document passed through.
func (h *AirQualityHandler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	lat, lon, fieldErrors := parseCoordinates(r)
	if len(fieldErrors) > 0 {
		response.BadRequest(w, r, "invalid coordinates", fieldErrors)
		return
	}

	data, err := h.provider.CurrentPollution(r.Context(), lat, lon)
	if err != nil {
		writeProviderError(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, data)
}

// GetHistory handles GET /api/air-quality/history?lat&lon&hours - pollution
// readings for the window ending now.
func (h *AirQualityHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	lat, lon, fieldErrors := parseCoordinates(r)

	hours := DefaultHistoryHours
	if raw := r.URL.Query().Get("hours"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			fieldErrors = append(fieldErrors, models.FieldError{Field: "hours", Message: "must be an integer"})
		} else {
			hours = parsed
		}
	}

	if len(fieldErrors) > 0 {
		response.BadRequest(w, r, "invalid query parameters", fieldErrors)
		return
	}

	data, err := h.provider.HistoryPollution(r.Context(), lat, lon, hours)
	if err != nil {
		writeProviderError(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, data)
}

// parseCoordinates reads the lat/lon query floats.
func parseCoordinates(r *http.Request) (lat, lon float64, fieldErrors []models.FieldError) {
	var err error

	lat, err = strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	if err != nil {
		fieldErrors = append(fieldErrors, models.FieldError{Field: "lat", Message: "must be a number"})
	}

	lon, err = strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if err != nil {
		fieldErrors = append(fieldErrors, models.FieldError{Field: "lon", Message: "must be a number"})
	}

	return lat, lon, fieldErrors
}

// writeProviderError maps a provider failure to its HTTP response. Upstream
// statuses are forwarded; anything else collapses to a 500 carrying the
// error's text.
func writeProviderError(w http.ResponseWriter, r *http.Request, err error) {
	var upstreamErr *airquality.UpstreamError
	if errors.As(err, &upstreamErr) {
		response.Upstream(w, r, upstreamErr.StatusCode, upstreamErr.Message)
		return
	}
	response.InternalError(w, r, err.Error())
}
