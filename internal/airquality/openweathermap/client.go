// Package openweathermap provides a client for the OpenWeatherMap Air
// Pollution API.
package openweathermap

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/aeropulse/aeropulse/internal/airquality"
	"github.com/aeropulse/aeropulse/internal/provider/resilience"
)

const (
	// ProviderName identifies this pollution data provider.
	ProviderName = "openweathermap"

	// DefaultBaseURL is the OpenWeatherMap API base URL.
	DefaultBaseURL = "https://api.openweathermap.org/data/2.5"
)

// HTTPDoer abstracts HTTP request execution.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientConfig holds configuration for the OpenWeatherMap client.
type ClientConfig struct {
	// APIKey is the OpenWeatherMap API key (required).
	APIKey string

	// BaseURL is the API base URL (optional, defaults to DefaultBaseURL).
	BaseURL string

	// HTTPClient is the HTTP client to use. If nil, a circuit-breaking
	// client with defaults is created.
	HTTPClient HTTPDoer

	// Logger for client operations.
	Logger zerolog.Logger
}

// Client is an OpenWeatherMap Air Pollution API client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient HTTPDoer
	logger     zerolog.Logger
	now        func() time.Time
}

// NewClient creates a new OpenWeatherMap client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = resilience.NewClient(resilience.DefaultClientConfig(ProviderName))
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
		logger:     cfg.Logger,
		now:        time.Now,
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return ProviderName
}

// CurrentPollution fetches the current pollution document for a location.
// The provider's document is returned unchanged.
func (c *Client) CurrentPollution(ctx context.Context, lat, lon float64) (*airquality.PollutionData, error) {
	url := fmt.Sprintf("%s/air_pollution?lat=%.6f&lon=%.6f&appid=%s",
		c.baseURL, lat, lon, c.apiKey)

	return c.fetch(ctx, url, "failed to fetch air quality data")
}

// HistoryPollution fetches pollution readings for the window ending now and
// starting the given number of hours earlier.
func (c *Client) HistoryPollution(ctx context.Context, lat, lon float64, hours int) (*airquality.PollutionData, error) {
	end := c.now().Unix()
	start := end - int64(hours)*3600

	url := fmt.Sprintf("%s/air_pollution/history?lat=%.6f&lon=%.6f&start=%d&end=%d&appid=%s",
		c.baseURL, lat, lon, start, end, c.apiKey)

	return c.fetch(ctx, url, "failed to fetch air quality history")
}

// fetch issues the GET and decodes the provider document. A non-2xx status
// surfaces as an UpstreamError carrying the provider's status; transport
// failures surface as an UpstreamError with status 500.
func (c *Client) fetch(ctx context.Context, url, failureMsg string) (*airquality.PollutionData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &airquality.UpstreamError{
			StatusCode: http.StatusInternalServerError,
			Message:    err.Error(),
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn().
			Int("status", resp.StatusCode).
			Msg("pollution provider returned non-success status")
		return nil, &airquality.UpstreamError{
			StatusCode: resp.StatusCode,
			Message:    failureMsg,
		}
	}

	var data airquality.PollutionData
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, &airquality.UpstreamError{
			StatusCode: http.StatusInternalServerError,
			Message:    "decoding response: " + err.Error(),
		}
	}

	return &data, nil
}
