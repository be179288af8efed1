package resilience_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aeropulse/aeropulse/internal/provider/resilience"
)

func newRequest(t *testing.T, url string) *http.Request {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, http.NoBody)
	require.NoError(t, err)
	return req
}

func TestClient_Do_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := resilience.NewClient(resilience.DefaultClientConfig("test"))

	resp, err := client.Do(newRequest(t, server.URL))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, gobreaker.StateClosed, client.State())
}

func TestClient_Do_ServerErrorReturnsResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := resilience.NewClient(resilience.DefaultClientConfig("test"))

	resp, err := client.Do(newRequest(t, server.URL))
	require.NoError(t, err)
	defer resp.Body.Close()

	// The response is forwarded so callers can propagate the status code.
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, uint32(1), client.Counts().TotalFailures)
}

func TestClient_Do_ClientErrorDoesNotCount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := resilience.NewClient(resilience.DefaultClientConfig("test"))

	resp, err := client.Do(newRequest(t, server.URL))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, uint32(0), client.Counts().TotalFailures)
}

func TestClient_Do_BreakerOpens(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := resilience.NewClient(resilience.ClientConfig{
		Name: "test",
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.TotalFailures >= 3
		},
	})

	for i := 0; i < 3; i++ {
		resp, err := client.Do(newRequest(t, server.URL))
		require.NoError(t, err)
		resp.Body.Close()
	}

	require.Equal(t, gobreaker.StateOpen, client.State())

	_, err := client.Do(newRequest(t, server.URL))
	assert.ErrorIs(t, err, resilience.ErrCircuitOpen)
}
