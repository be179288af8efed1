// Package airquality models OpenWeatherMap air-pollution documents and the
// errors surfaced when the provider cannot be reached.
package airquality

import "fmt"

// PollutionData is the provider-shaped air pollution document. It mirrors the
// OpenWeatherMap Air Pollution API response so that proxied responses carry
// the provider's values through unchanged.
type PollutionData struct {
	Coord Coord      `json:"coord"`
	List  []Snapshot `json:"list"`
}

// Coord is the geographic coordinate the document was fetched for.
type Coord struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Snapshot is a single point-in-time air quality reading. Both the index
// block and the component block are optional on the wire; use the accessor
// methods rather than the raw fields so the default policy stays in one place.
type Snapshot struct {
	Dt         int64       `json:"dt,omitempty"`
	Main       *AirIndex   `json:"main,omitempty"`
	Components *Components `json:"components,omitempty"`
}

// AirIndex holds the provider-defined air quality index, an ordinal from 1
// (good) to 5 (very poor).
type AirIndex struct {
	AQI int `json:"aqi"`
}

// Components holds the measured pollutant concentrations in µg/m³.
type Components struct {
	CO   float64 `json:"co"`
	NO   float64 `json:"no"`
	NO2  float64 `json:"no2"`
	O3   float64 `json:"o3"`
	SO2  float64 `json:"so2"`
	PM25 float64 `json:"pm2_5"`
	PM10 float64 `json:"pm10"`
	NH3  float64 `json:"nh3"`
}

// AQI returns the air quality index, defaulting to 1 when the index block is
// absent. The provider's ordinal starts at 1, so a decoded zero also means
// the field was missing.
func (s Snapshot) AQI() int {
	if s.Main == nil || s.Main.AQI == 0 {
		return 1
	}
	return s.Main.AQI
}

// PM25 returns the PM2.5 concentration, or 0 when unreported.
func (s Snapshot) PM25() float64 {
	if s.Components == nil {
		return 0
	}
	return s.Components.PM25
}

// NO2 returns the NO2 concentration, or 0 when unreported.
func (s Snapshot) NO2() float64 {
	if s.Components == nil {
		return 0
	}
	return s.Components.NO2
}

// SO2 returns the SO2 concentration, or 0 when unreported.
func (s Snapshot) SO2() float64 {
	if s.Components == nil {
		return 0
	}
	return s.Components.SO2
}

// CO returns the CO concentration, or 0 when unreported.
func (s Snapshot) CO() float64 {
	if s.Components == nil {
		return 0
	}
	return s.Components.CO
}

// UpstreamError reports a failed call to the pollution provider. StatusCode
// carries the provider's HTTP status when one was received, or 500 when the
// transport itself failed.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream error (status %d): %s", e.StatusCode, e.Message)
}
