package clients

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotedroplet/droplet/internal/adapters/http/middleware"
	"github.com/quotedroplet/droplet/internal/platform/config"
)

func testConfig(baseURL string, maxAttempts int) *Config {
	return &Config{
		BaseURL:     baseURL,
		ServiceName: "quote-dropper",
		Timeout:     5 * time.Second,
		UserAgent:   "droplet/test",
		Retry: config.RetryConfig{
			MaxAttempts:     maxAttempts,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     50 * time.Millisecond,
			Multiplier:      2.0,
		},
		Circuit: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       time.Second,
			HalfOpenLimit: 1,
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc, maxAttempts int) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(testConfig(server.URL, maxAttempts))
	require.NoError(t, err)

	return client
}

func send(t *testing.T, c *Client, method, path, body string) (*http.Response, error) {
	t.Helper()

	var reader io.Reader = http.NoBody
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequestWithContext(context.Background(), method, c.BaseURL()+path, reader)
	require.NoError(t, err)

	resp, err := c.Do(context.Background(), req)
	if resp != nil {
		t.Cleanup(func() { _ = resp.Body.Close() })
	}
	return resp, err
}

func TestNew_Validation(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config is required")

	cfg := testConfig("https://quotes.example", 1)
	cfg.ServiceName = ""
	_, err = New(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "service name is required")
}

func TestNew_TrimsBaseURLAndDefaultsTimeout(t *testing.T) {
	cfg := testConfig("https://quotes.example/", 1)
	cfg.Timeout = 0

	client, err := New(cfg)
	require.NoError(t, err)

	assert.Equal(t, "https://quotes.example", client.BaseURL())
	assert.Equal(t, "quote-dropper", client.ServiceName())
	assert.Equal(t, defaultTimeout, client.http.Timeout)
}

// TestClient_HeaderPropagation verifies that request and correlation ids from the
// context and the user agent reach the quote API.
func TestClient_HeaderPropagation(t *testing.T) {
	var got http.Header
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.WriteHeader(http.StatusOK)
	}, 1)

	ctx := middleware.ContextWithRequestID(context.Background(), "req-1")
	ctx = middleware.ContextWithCorrelationID(ctx, "corr-1")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, client.BaseURL()+"/quotes/random", http.NoBody)
	require.NoError(t, err)

	resp, err := client.Do(ctx, req)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	assert.Equal(t, "req-1", got.Get(middleware.HeaderRequestID))
	assert.Equal(t, "corr-1", got.Get(middleware.HeaderCorrelationID))
	assert.Equal(t, "droplet/test", got.Get("User-Agent"))
}

// TestClient_ReturnsErrorResponses verifies that 4xx and 5xx responses come back as
// responses so callers can classify them.
func TestClient_ReturnsErrorResponses(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusConflict, http.StatusServiceUnavailable} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(status)
			}, 1)

			resp, err := send(t, client, http.MethodGet, "/quotes/1", "")

			require.NoError(t, err)
			assert.Equal(t, status, resp.StatusCode)
		})
	}
}

func TestClient_NoRetryByDefault(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}, 1)

	resp, err := send(t, client, http.MethodGet, "/quotes/recent", "")

	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
}

// TestClient_RetriesIdempotentReads verifies that configured retries recover from a transient 5xx.
func TestClient_RetriesIdempotentReads(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"count":3}`))
	}, 3)

	resp, err := send(t, client, http.MethodGet, "/quotes/count", "")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_RetriesExhaustedReturnLastResponse(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}, 2)

	resp, err := send(t, client, http.MethodGet, "/quotes/top", "")

	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, int32(2), calls.Load())
}

// TestClient_NeverRetriesWrites verifies that likes and submissions are sent exactly once.
func TestClient_NeverRetriesWrites(t *testing.T) {
	for _, method := range []string{http.MethodPost, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			var calls atomic.Int32
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				calls.Add(1)
				w.WriteHeader(http.StatusInternalServerError)
			}, 5)

			resp, err := send(t, client, method, "/quotes/7/like", "")

			require.NoError(t, err)
			assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
			assert.Equal(t, int32(1), calls.Load())
		})
	}
}

func TestClient_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	client, err := New(testConfig(server.URL, 1))
	require.NoError(t, err)

	_, err = send(t, client, http.MethodGet, "/quotes", "")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCircuitOpen)
}

// TestClient_CircuitOpens verifies that consecutive 5xx responses open the circuit
// and further requests are rejected without reaching the server.
func TestClient_CircuitOpens(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}, 1)

	for range 5 {
		_, err := send(t, client, http.MethodGet, "/quotes", "")
		require.NoError(t, err)
	}
	assert.Equal(t, StateOpen, client.CircuitState())

	_, err := send(t, client, http.MethodGet, "/quotes", "")

	assert.True(t, errors.Is(err, ErrCircuitOpen))
	assert.Equal(t, int32(5), calls.Load())
}

// TestClient_CallerCancellationKeepsCircuitClosed verifies that requests ended by the
// caller's context do not count against the downstream.
func TestClient_CallerCancellationKeepsCircuitClosed(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusOK)
	}, 1)

	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	for range 10 {
		req, err := http.NewRequestWithContext(canceled, http.MethodGet, client.BaseURL()+"/quotes", http.NoBody)
		require.NoError(t, err)

		_, err = client.Do(canceled, req)
		require.ErrorIs(t, err, context.Canceled)
	}
	assert.Equal(t, StateClosed, client.CircuitState())

	resp, err := send(t, client, http.MethodGet, "/quotes", "")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_ContextCanceledDuringBackoff(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}, 3)
	client.cfg.Retry.InitialInterval = time.Second
	client.cfg.Retry.MaxInterval = time.Second

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, client.BaseURL()+"/quotes", http.NoBody)
	require.NoError(t, err)

	_, err = client.Do(ctx, req)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCalculateBackoff_Bounds(t *testing.T) {
	client, err := New(testConfig("https://quotes.example", 3))
	require.NoError(t, err)

	for attempt := 1; attempt < 6; attempt++ {
		backoff := client.calculateBackoff(attempt)
		assert.Positive(t, backoff)
		assert.LessOrEqual(t, backoff, time.Duration(float64(client.cfg.Retry.MaxInterval)*1.25))
	}
}

func TestIsRetryableError(t *testing.T) {
	assert.False(t, isRetryableError(nil))
	assert.False(t, isRetryableError(context.Canceled))
	assert.False(t, isRetryableError(errors.New("plain")))
}
