package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetry() *RetryConfig {
	cfg := DefaultRetryConfig()
	cfg.InitialInterval = time.Millisecond
	cfg.MaxInterval = 5 * time.Millisecond
	return cfg
}

func TestPostRetriesWithFullBody(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"name":"drywall"}`, string(body))
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))

		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":"abc"}`))
	}))
	defer server.Close()

	client := NewHTTPClient(WithBaseURL(server.URL), WithRetryConfig(fastRetry()))
	resp, err := client.Post(context.Background(), "items", map[string]string{"name": "drywall"}, WithBearerToken("token"))
	require.NoError(t, err)

	var out struct {
		ID string `json:"id"`
	}
	require.NoError(t, client.ProcessJSONResponse(resp, &out))
	assert.Equal(t, "abc", out.ID)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestClientErrorIsNotRetried(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "bad"})
	}))
	defer server.Close()

	client := NewHTTPClient(WithBaseURL(server.URL), WithRetryConfig(fastRetry()))
	resp, err := client.Get(context.Background(), "/x")
	require.Error(t, err)
	require.NotNil(t, resp)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
	assert.Contains(t, httpErr.Body, "bad")
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestRetriesExhausted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	reg := prometheus.NewRegistry()
	metrics := NewPrometheusCollector(reg)
	client := NewHTTPClient(
		WithBaseURL(server.URL),
		WithRetryConfig(fastRetry()),
		WithName("crm"),
		WithMetricsCollector(metrics),
	)

	_, err := client.Get(context.Background(), "/x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "retryable status code: 502")
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.errors.WithLabelValues("crm", http.MethodGet)))
}

func TestCanceledContextStopsRetrying(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewHTTPClient(WithBaseURL(server.URL), WithRetryConfig(fastRetry()))
	_, err := client.Get(ctx, "/x")
	require.Error(t, err)
}

func TestPathWithoutBaseURLMustBeAbsolute(t *testing.T) {
	client := NewHTTPClient()
	_, err := client.Get(context.Background(), "not a url")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid path used without base URL")
}
