// Package resilience provides a circuit-breaking HTTP client for external
// provider calls. Failed calls are never retried; once the provider keeps
// failing the breaker opens and requests fail fast until it recovers.
package resilience

import (
	"errors"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
)

// ErrCircuitOpen is returned when the circuit breaker rejects a request.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// ClientConfig holds configuration for the circuit-breaking HTTP client.
type ClientConfig struct {
	// Name identifies this client for circuit breaker naming.
	Name string

	// Timeout is the transport-level timeout for individual HTTP calls.
	// Default: 10 seconds.
	Timeout time.Duration

	// OpenTimeout is the period of open state before the breaker probes
	// again. Default: 60 seconds.
	OpenTimeout time.Duration

	// ReadyToTrip decides when the breaker opens. If nil, DefaultReadyToTrip
	// is used (50% failure rate over at least 5 requests).
	ReadyToTrip func(counts gobreaker.Counts) bool
}

// DefaultClientConfig returns sensible defaults for the client.
func DefaultClientConfig(name string) ClientConfig {
	return ClientConfig{
		Name:        name,
		Timeout:     10 * time.Second,
		OpenTimeout: 60 * time.Second,
		ReadyToTrip: DefaultReadyToTrip,
	}
}

// DefaultReadyToTrip opens the breaker when at least 5 requests have been
// made and half or more of them failed.
func DefaultReadyToTrip(counts gobreaker.Counts) bool {
	failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
	return counts.Requests >= 5 && failureRatio >= 0.5
}

// Client is an HTTP client whose requests pass through a circuit breaker.
type Client struct {
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[*http.Response]
}

// NewClient creates a new circuit-breaking HTTP client.
func NewClient(cfg ClientConfig) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.OpenTimeout == 0 {
		cfg.OpenTimeout = 60 * time.Second
	}
	if cfg.ReadyToTrip == nil {
		cfg.ReadyToTrip = DefaultReadyToTrip
	}

	breaker := gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: 1,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: cfg.ReadyToTrip,
	})

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		breaker:    breaker,
	}
}

// Do executes an HTTP request through the circuit breaker. A 5xx status
// counts as a breaker failure but the response is still returned to the
// caller so the status can be forwarded. Returns ErrCircuitOpen without
// issuing the request when the breaker is open.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		r, doErr := c.httpClient.Do(req)
		if doErr != nil {
			return nil, doErr
		}
		if r.StatusCode >= 500 {
			return r, &ServerError{StatusCode: r.StatusCode}
		}
		return r, nil
	})

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, ErrCircuitOpen
		}
		var serverErr *ServerError
		if errors.As(err, &serverErr) && resp != nil {
			return resp, nil
		}
		return nil, err
	}

	return resp, nil
}

// State returns the current state of the circuit breaker.
func (c *Client) State() gobreaker.State {
	return c.breaker.State()
}

// Counts returns the current counts of the circuit breaker.
func (c *Client) Counts() gobreaker.Counts {
	return c.breaker.Counts()
}

// ServerError represents an HTTP 5xx response from the provider.
type ServerError struct {
	StatusCode int
}

func (e *ServerError) Error() string {
	return "server error: " + http.StatusText(e.StatusCode)
}
