// Package profile stores user health profiles. Profiles live in memory for
// the lifetime of the process; every save replaces the prior entry wholesale.
package profile

import (
	"errors"
	"time"

	"github.com/aeropulse/aeropulse/internal/airquality"
)

// ErrProfileNotFound is returned when no profile exists for a user.
var ErrProfileNotFound = errors.New("profile not found")

// Health conditions recognized by the diagnostic scorer. Condition is an
// unrestricted string; anything else is stored as-is.
const (
	ConditionHealthy = "Healthy"
	ConditionAsthma  = "Asthma"
	ConditionCOPD    = "COPD"
)

// Profile is a user's last-known health condition and lifestyle flags, with
// an optional cached air quality snapshot.
type Profile struct {
	UserID    string               `json:"user_id"`
	Condition string               `json:"condition"`
	Smoke     bool                 `json:"smoke"`
	Drink     bool                 `json:"drink"`
	AirData   *airquality.Snapshot `json:"air_data,omitempty"`
	UpdatedAt time.Time            `json:"updated_at"`
}
