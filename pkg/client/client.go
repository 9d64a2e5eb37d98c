// Package client provides the core Zoom HTTP client: per-request bearer
// authentication, request dispatch, and typed error classification.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Prometheus metrics for Zoom client operations.
var (
	zoomRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "zoom_requests_total",
		Help: "Total Zoom API requests by endpoint and status",
	}, []string{"endpoint", "status"})

	zoomRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "zoom_request_duration_seconds",
		Help:    "Zoom API request duration in seconds by endpoint",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
	}, []string{"endpoint"})

	zoomErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "zoom_errors_total",
		Help: "Total Zoom API errors by kind",
	}, []string{"kind"})
)

// DefaultBaseURL is the Zoom production API root.
const DefaultBaseURL = "https://api.zoom.us/v2"

// Environment variables read by FromEnvironment.
const (
	EnvAPIKey    = "ZOOM_API_KEY"
	EnvAPISecret = "ZOOM_API_SECRET"
)

// allowedMethods lists the HTTP verbs MakeRequest accepts.
var allowedMethods = map[string]bool{
	http.MethodGet:    true,
	http.MethodPost:   true,
	http.MethodPatch:  true,
	http.MethodPut:    true,
	http.MethodDelete: true,
}

// Config holds the client configuration.
type Config struct {
	// APIKey and APISecret are the Zoom JWT app credentials. The secret
	// signs a fresh HS256 bearer token on every request.
	APIKey    string
	APISecret string

	// BaseURL overrides the production API root (used in tests).
	BaseURL string

	// HTTPClient overrides the transport. Defaults to a plain http.Client;
	// no timeout is imposed beyond what the transport provides.
	HTTPClient *http.Client
}

// DefaultConfig returns a configuration pointing at the production API.
func DefaultConfig(apiKey, apiSecret string) Config {
	return Config{
		APIKey:    apiKey,
		APISecret: apiSecret,
		BaseURL:   DefaultBaseURL,
	}
}

// Client is the authenticated request executor. The credential pair is
// immutable for the client's lifetime; each call builds its own request,
// so one instance may be shared across goroutines.
type Client struct {
	config     Config
	httpClient *http.Client
	logger     zerolog.Logger
	now        func() time.Time
}

// New creates a new Zoom client.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("api key is required")
	}

	if cfg.APISecret == "" {
		return nil, fmt.Errorf("api secret is required")
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		config:     cfg,
		httpClient: httpClient,
		logger:     log.With().Str("component", "zoom-client").Logger(),
		now:        time.Now,
	}, nil
}

// FromEnvironment creates a client from the ZOOM_API_KEY and ZOOM_API_SECRET
// environment variables.
func FromEnvironment() (*Client, error) {
	key := os.Getenv(EnvAPIKey)
	secret := os.Getenv(EnvAPISecret)

	if key == "" || secret == "" {
		return nil, fmt.Errorf("%s and %s must be set", EnvAPIKey, EnvAPISecret)
	}

	return New(DefaultConfig(key, secret))
}

// BaseURL returns the API root this client targets.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// Response is the envelope of one HTTP round trip: status, raw body, headers.
// It is created per call and not retained by the client.
type Response struct {
	StatusCode int
	Body       []byte
	Header     http.Header
}

// JSON decodes the response body into a generic mapping.
func (r *Response) JSON() (map[string]any, error) {
	var m map[string]any
	if err := json.Unmarshal(r.Body, &m); err != nil {
		return nil, fmt.Errorf("decode response body: %w", err)
	}
	return m, nil
}

// MakeRequest dispatches a single authenticated call against the Zoom API.
//
// method must be one of GET, POST, PATCH, PUT, DELETE; anything else fails
// with *InvalidMethodError before any network I/O. A 2xx response is returned
// as-is. For any other status the vendor error message is extracted from the
// body and, unless raiseOnError is false, returned as a *APIError classified
// by status code. With raiseOnError false the failed envelope is returned
// unchanged for the caller to inspect.
func (c *Client) MakeRequest(ctx context.Context, method, endpoint string, query map[string]string, body any, raiseOnError bool) (*Response, error) {
	if !allowedMethods[method] {
		return nil, &InvalidMethodError{Method: method}
	}

	token, err := c.bearerToken()
	if err != nil {
		return nil, err
	}

	reqURL := c.config.BaseURL + endpoint
	if len(query) > 0 {
		values := url.Values{}
		for k, v := range query {
			values.Set(k, v)
		}
		reqURL += "?" + values.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug().
		Str("method", method).
		Str("endpoint", endpoint).
		Msg("Making Zoom API request")

	startTime := time.Now()
	defer func() {
		zoomRequestDuration.WithLabelValues(endpoint).Observe(time.Since(startTime).Seconds())
	}()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		zoomRequestsTotal.WithLabelValues(endpoint, "network_error").Inc()
		c.logger.Error().Err(err).Str("endpoint", endpoint).Msg("HTTP request failed")
		return nil, fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		zoomRequestsTotal.WithLabelValues(endpoint, "network_error").Inc()
		return nil, fmt.Errorf("read response body: %w", err)
	}

	envelope := &Response{
		StatusCode: resp.StatusCode,
		Body:       raw,
		Header:     resp.Header,
	}

	zoomRequestsTotal.WithLabelValues(endpoint, fmt.Sprintf("%d", resp.StatusCode)).Inc()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return envelope, nil
	}

	message := extractErrorMessage(raw)
	kind := KindForStatus(resp.StatusCode)
	zoomErrorsTotal.WithLabelValues(string(kind)).Inc()

	c.logger.Error().
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode).
		Str("kind", string(kind)).
		Str("message", message).
		Msg("Unsuccessful Zoom API request")

	if !raiseOnError {
		c.logger.Warn().
			Str("endpoint", endpoint).
			Msg("raiseOnError is false, ignoring API error and returning response")
		return envelope, nil
	}

	return nil, &APIError{
		StatusCode: resp.StatusCode,
		Kind:       kind,
		Message:    message,
	}
}

// extractErrorMessage pulls the vendor's nested error message out of a failed
// response body. Falls back to the whole body when the nested field is absent
// or the body is not JSON.
func extractErrorMessage(body []byte) string {
	var decoded map[string]any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return string(body)
	}

	if nested, ok := decoded["_error"].(map[string]any); ok {
		if message, ok := nested["message"].(string); ok {
			return message
		}
	}

	return string(body)
}

// Get performs a GET request against a Zoom endpoint.
func (c *Client) Get(ctx context.Context, endpoint string, query map[string]string, raiseOnError bool) (*Response, error) {
	return c.MakeRequest(ctx, http.MethodGet, endpoint, query, nil, raiseOnError)
}

// GetJSON performs a GET request and decodes the response body.
func (c *Client) GetJSON(ctx context.Context, endpoint string, query map[string]string, raiseOnError bool) (map[string]any, error) {
	resp, err := c.Get(ctx, endpoint, query, raiseOnError)
	if err != nil {
		return nil, err
	}
	return resp.JSON()
}

// Post performs a POST request against a Zoom endpoint.
func (c *Client) Post(ctx context.Context, endpoint string, query map[string]string, body any, raiseOnError bool) (*Response, error) {
	return c.MakeRequest(ctx, http.MethodPost, endpoint, query, body, raiseOnError)
}

// Patch performs a PATCH request against a Zoom endpoint.
func (c *Client) Patch(ctx context.Context, endpoint string, query map[string]string, body any, raiseOnError bool) (*Response, error) {
	return c.MakeRequest(ctx, http.MethodPatch, endpoint, query, body, raiseOnError)
}

// Put performs a PUT request against a Zoom endpoint.
func (c *Client) Put(ctx context.Context, endpoint string, query map[string]string, body any, raiseOnError bool) (*Response, error) {
	return c.MakeRequest(ctx, http.MethodPut, endpoint, query, body, raiseOnError)
}

// Delete performs a DELETE request against a Zoom endpoint.
func (c *Client) Delete(ctx context.Context, endpoint string, query map[string]string, raiseOnError bool) (*Response, error) {
	return c.MakeRequest(ctx, http.MethodDelete, endpoint, query, nil, raiseOnError)
}
