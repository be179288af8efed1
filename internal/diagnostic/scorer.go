// Package diagnostic computes heuristic respiratory risk assessments from
// air quality readings and lifestyle factors. Evaluation is a pure,
// single-pass computation with no I/O.
package diagnostic

import (
	"math"

	"github.com/aeropulse/aeropulse/internal/airquality"
	"github.com/aeropulse/aeropulse/internal/profile"
)

// RiskLevel is a discrete label derived from the computed score.
type RiskLevel string

const (
	RiskLow       RiskLevel = "Low"
	RiskModerate  RiskLevel = "Moderate"
	RiskHigh      RiskLevel = "High"
	RiskVeryHigh  RiskLevel = "Very High"
	RiskHazardous RiskLevel = "Hazardous"
)

// Lifestyle penalties are additive and independent of each other and of the
// condition multiplier.
const (
	smokePenalty = 80
	drinkPenalty = 20
)

// conditionMultipliers scales the air quality index per health condition.
// Unrecognized conditions fall back to the healthy multiplier, silently.
var conditionMultipliers = map[string]float64{
	profile.ConditionHealthy: 1.0,
	profile.ConditionAsthma:  2.5,
	profile.ConditionCOPD:    4.0,
}

// Base recommendation text per risk band.
var recommendations = map[RiskLevel]string{
	RiskLow:       "Air quality is good. Maintain your healthy lifestyle.",
	RiskModerate:  "Air quality is moderate. Consider limiting outdoor activities if you have respiratory issues.",
	RiskHigh:      "Air quality is unhealthy. Limit outdoor exposure and use protective measures.",
	RiskVeryHigh:  "Air quality is very unhealthy. Avoid outdoor activities.",
	RiskHazardous: "Air quality is hazardous. Stay indoors and use air purification.",
}

// Condition- and lifestyle-specific advice appended to the base text.
// Condition advice comes first, then the smoking warning.
const (
	asthmaAdvice  = " Keep your inhaler accessible."
	copdAdvice    = " Monitor your oxygen levels closely."
	smokingAdvice = " Smoking significantly degrades your alveolar capacity."
)

// Input is everything the scorer reads.
type Input struct {
	Air       airquality.Snapshot
	Condition string
	Smoke     bool
	Drink     bool
}

// AirSummary echoes the pollutant values the assessment was computed from.
type AirSummary struct {
	AQI  int     `json:"aqi"`
	PM25 float64 `json:"pm25"`
	NO2  float64 `json:"no2"`
	SO2  float64 `json:"so2"`
	CO   float64 `json:"co"`
}

// Assessment is the scorer's result, computed fresh per call and never
// persisted.
type Assessment struct {
	Score          int        `json:"score"`
	RiskLevel      RiskLevel  `json:"risk_level"`
	Recommendation string     `json:"recommendation"`
	AirQuality     AirSummary `json:"air_quality"`
}

// Evaluate maps an air quality snapshot, a health condition, and lifestyle
// flags to a risk score, a risk level, and a recommendation. The score is
// aqi times the condition multiplier, plus 80 for smokers and 20 for
// drinkers. Rounding is math.Round, half away from zero; integer-valued
// scores round-trip unchanged.
func Evaluate(in Input) Assessment {
	aqi := in.Air.AQI()

	score := float64(aqi) * conditionMultiplier(in.Condition)
	if in.Smoke {
		score += smokePenalty
	}
	if in.Drink {
		score += drinkPenalty
	}

	level := RiskBand(score)

	recommendation := recommendations[level]
	switch in.Condition {
	case profile.ConditionAsthma:
		recommendation += asthmaAdvice
	case profile.ConditionCOPD:
		recommendation += copdAdvice
	}
	if in.Smoke {
		recommendation += smokingAdvice
	}

	return Assessment{
		Score:          int(math.Round(score)),
		RiskLevel:      level,
		Recommendation: recommendation,
		AirQuality: AirSummary{
			AQI:  aqi,
			PM25: in.Air.PM25(),
			NO2:  in.Air.NO2(),
			SO2:  in.Air.SO2(),
			CO:   in.Air.CO(),
		},
	}
}

// conditionMultiplier looks up the multiplier for a condition, falling back
// to 1.0 for anything unrecognized.
func conditionMultiplier(condition string) float64 {
	if m, ok := conditionMultipliers[condition]; ok {
		return m
	}
	return 1.0
}

// RiskBand maps a score to its risk level. Band upper bounds are exclusive:
// a score of exactly 50 is Moderate, not Low.
func RiskBand(score float64) RiskLevel {
	switch {
	case score < 50:
		return RiskLow
	case score < 100:
		return RiskModerate
	case score < 150:
		return RiskHigh
	case score < 200:
		return RiskVeryHigh
	default:
		return RiskHazardous
	}
}
