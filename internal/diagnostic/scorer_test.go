package diagnostic_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aeropulse/aeropulse/internal/airquality"
	"github.com/aeropulse/aeropulse/internal/diagnostic"
	"github.com/aeropulse/aeropulse/internal/profile"
)

func snapshotWithAQI(aqi int) airquality.Snapshot {
	return airquality.Snapshot{Main: &airquality.AirIndex{AQI: aqi}}
}

func TestRiskBand_Boundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  diagnostic.RiskLevel
	}{
		{49.9, diagnostic.RiskLow},
		{50, diagnostic.RiskModerate},
		{99.9, diagnostic.RiskModerate},
		{100, diagnostic.RiskHigh},
		{149.9, diagnostic.RiskHigh},
		{150, diagnostic.RiskVeryHigh},
		{199.9, diagnostic.RiskVeryHigh},
		{200, diagnostic.RiskHazardous},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, diagnostic.RiskBand(tt.score), "score %v", tt.score)
	}
}

func TestEvaluate_AsthmaExample(t *testing.T) {
	// aqi=2 * 2.5 = 5 -> Low, with the inhaler note appended.
	result := diagnostic.Evaluate(diagnostic.Input{
		Air:       snapshotWithAQI(2),
		Condition: profile.ConditionAsthma,
	})

	assert.Equal(t, 5, result.Score)
	assert.Equal(t, diagnostic.RiskLow, result.RiskLevel)
	assert.True(t, strings.HasPrefix(result.Recommendation, "Air quality is good."))
	assert.True(t, strings.HasSuffix(result.Recommendation, "Keep your inhaler accessible."))
}

func TestEvaluate_COPDSmokerDrinkerExample(t *testing.T) {
	// aqi=5 * 4.0 = 20, +80 smoke, +20 drink = 120 -> High. The oxygen note
	// precedes the smoking note.
	result := diagnostic.Evaluate(diagnostic.Input{
		Air:       snapshotWithAQI(5),
		Condition: profile.ConditionCOPD,
		Smoke:     true,
		Drink:     true,
	})

	assert.Equal(t, 120, result.Score)
	assert.Equal(t, diagnostic.RiskHigh, result.RiskLevel)

	oxygenIdx := strings.Index(result.Recommendation, "Monitor your oxygen levels closely.")
	smokingIdx := strings.Index(result.Recommendation, "Smoking significantly degrades your alveolar capacity.")
	assert.GreaterOrEqual(t, oxygenIdx, 0)
	assert.GreaterOrEqual(t, smokingIdx, 0)
	assert.Less(t, oxygenIdx, smokingIdx)
}

func TestEvaluate_UnknownConditionMatchesHealthy(t *testing.T) {
	for _, condition := range []string{"", "Bronchitis", "healthy", "ASTHMA"} {
		got := diagnostic.Evaluate(diagnostic.Input{Air: snapshotWithAQI(4), Condition: condition})
		healthy := diagnostic.Evaluate(diagnostic.Input{Air: snapshotWithAQI(4), Condition: profile.ConditionHealthy})
		assert.Equal(t, healthy.Score, got.Score, "condition %q", condition)
	}
}

func TestEvaluate_LifestylePenaltiesAdditive(t *testing.T) {
	for _, condition := range []string{profile.ConditionHealthy, profile.ConditionAsthma, profile.ConditionCOPD, "Other"} {
		base := diagnostic.Evaluate(diagnostic.Input{Air: snapshotWithAQI(3), Condition: condition})
		smoke := diagnostic.Evaluate(diagnostic.Input{Air: snapshotWithAQI(3), Condition: condition, Smoke: true})
		drink := diagnostic.Evaluate(diagnostic.Input{Air: snapshotWithAQI(3), Condition: condition, Drink: true})
		both := diagnostic.Evaluate(diagnostic.Input{Air: snapshotWithAQI(3), Condition: condition, Smoke: true, Drink: true})

		assert.Equal(t, base.Score+80, smoke.Score, "condition %q", condition)
		assert.Equal(t, base.Score+20, drink.Score, "condition %q", condition)
		assert.Equal(t, base.Score+100, both.Score, "condition %q", condition)
	}
}

func TestEvaluate_MonotonicInAQI(t *testing.T) {
	prev := -1
	for aqi := 1; aqi <= 5; aqi++ {
		result := diagnostic.Evaluate(diagnostic.Input{Air: snapshotWithAQI(aqi), Condition: profile.ConditionCOPD})
		assert.Greater(t, result.Score, prev)
		prev = result.Score
	}
}

func TestEvaluate_MissingAirDataDefaults(t *testing.T) {
	result := diagnostic.Evaluate(diagnostic.Input{Condition: profile.ConditionHealthy})

	// Absent index defaults to 1, absent components to zero.
	assert.Equal(t, 1, result.Score)
	assert.Equal(t, 1, result.AirQuality.AQI)
	assert.Equal(t, 0.0, result.AirQuality.PM25)
	assert.Equal(t, 0.0, result.AirQuality.CO)
}

func TestEvaluate_IntegerScoresRoundTrip(t *testing.T) {
	// Every reachable Healthy/COPD score is integer-valued; round() must
	// return it unchanged.
	for aqi := 1; aqi <= 5; aqi++ {
		result := diagnostic.Evaluate(diagnostic.Input{Air: snapshotWithAQI(aqi), Condition: profile.ConditionCOPD, Smoke: true})
		assert.Equal(t, aqi*4+80, result.Score)
	}
}

func TestEvaluate_HalfValuedScoreRounds(t *testing.T) {
	// aqi=1 * 2.5 = 2.5 rounds half away from zero to 3.
	result := diagnostic.Evaluate(diagnostic.Input{Air: snapshotWithAQI(1), Condition: profile.ConditionAsthma})
	assert.Equal(t, 3, result.Score)
}

func TestEvaluate_AirSummaryEchoesComponents(t *testing.T) {
	in := diagnostic.Input{
		Air: airquality.Snapshot{
			Main: &airquality.AirIndex{AQI: 2},
			Components: &airquality.Components{
				PM25: 12.3,
				NO2:  18.5,
				SO2:  2.1,
				CO:   201.94,
			},
		},
		Condition: profile.ConditionHealthy,
	}

	result := diagnostic.Evaluate(in)
	assert.Equal(t, diagnostic.AirSummary{AQI: 2, PM25: 12.3, NO2: 18.5, SO2: 2.1, CO: 201.94}, result.AirQuality)
}
