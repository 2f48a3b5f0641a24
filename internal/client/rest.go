package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/AlexZinkM/rail-wallet/internal/logger"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// RequestOption modifies an outgoing request.
type RequestOption func(*http.Request)

// RESTOption configures a RESTClient.
type RESTOption func(*RESTClient)

// HTTPError is a non-2xx response from a provider.
type HTTPError struct {
	StatusCode int
	Method     string
	URL        string
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s %s failed with status %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
}

// AsHTTPError extracts an *HTTPError from err's chain.
func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// RetryConfig configures backoff for idempotent reads.
type RetryConfig struct {
	MaxRetries           uint64
	InitialInterval      time.Duration
	MaxInterval          time.Duration
	MaxElapsedTime       time.Duration
	RetryableStatusCodes []int
}

// DefaultRetryConfig retries transient failures a few times within ten seconds.
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxRetries:           3,
		InitialInterval:      100 * time.Millisecond,
		MaxInterval:          2 * time.Second,
		MaxElapsedTime:       10 * time.Second,
		RetryableStatusCodes: []int{408, 429, 500, 502, 503, 504},
	}
}

// RESTClient is a JSON-over-HTTP client shared by the rail adapters.
// Only GET requests are retried; writes are sent exactly once so that an
// ambiguous failure never turns into a duplicate transfer.
type RESTClient struct {
	httpClient     *http.Client
	baseURL        string
	defaultHeaders map[string]string
	retry          *RetryConfig
	log            *zap.Logger
}

// NewRESTClient creates a RESTClient with the given options.
func NewRESTClient(options ...RESTOption) *RESTClient {
	c := &RESTClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		defaultHeaders: map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
		},
		retry: DefaultRetryConfig(),
		log:   logger.Component("rest"),
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// WithBaseURL sets the base URL for all requests
func WithBaseURL(baseURL string) RESTOption {
	return func(c *RESTClient) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithDefaultHeader adds a default header to all requests
func WithDefaultHeader(key, value string) RESTOption {
	return func(c *RESTClient) {
		c.defaultHeaders[key] = value
	}
}

// WithTimeout sets the timeout for all requests
func WithTimeout(timeout time.Duration) RESTOption {
	return func(c *RESTClient) {
		c.httpClient.Timeout = timeout
	}
}

// WithRetryConfig sets the retry configuration; nil disables retries.
func WithRetryConfig(cfg *RetryConfig) RESTOption {
	return func(c *RESTClient) {
		c.retry = cfg
	}
}

// WithBearerToken adds bearer token authentication to the request
func WithBearerToken(token string) RequestOption {
	return func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// WithHeader adds a header to the request
func WithHeader(key, value string) RequestOption {
	return func(req *http.Request) {
		req.Header.Set(key, value)
	}
}

// BaseURL returns the configured base URL.
func (c *RESTClient) BaseURL() string {
	return c.baseURL
}

// GetJSON performs a GET and decodes the JSON response into out.
func (c *RESTClient) GetJSON(ctx context.Context, path string, out any, options ...RequestOption) error {
	return c.Do(ctx, http.MethodGet, path, nil, out, options...)
}

// PostJSON performs a POST with a JSON body and decodes the response into out.
func (c *RESTClient) PostJSON(ctx context.Context, path string, body, out any, options ...RequestOption) error {
	return c.Do(ctx, http.MethodPost, path, body, out, options...)
}

// Do sends one request. out may be nil when the body is not needed.
func (c *RESTClient) Do(ctx context.Context, method, path string, body, out any, options ...RequestOption) error {
	start := time.Now()
	fullURL := c.baseURL + "/" + strings.TrimPrefix(path, "/")
	if c.baseURL == "" {
		fullURL = path
	}

	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	newRequest := func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, method, fullURL, bytes.NewReader(payload))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		for key, value := range c.defaultHeaders {
			req.Header.Set(key, value)
		}
		for _, option := range options {
			option(req)
		}
		return req, nil
	}

	var respBody []byte
	var status int
	operation := func() error {
		req, err := newRequest()
		if err != nil {
			return backoff.Permanent(err)
		}
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		status = resp.StatusCode
		respBody, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("failed to read response body: %w", err)
		}
		if status >= 400 {
			httpErr := &HTTPError{StatusCode: status, Method: method, URL: fullURL, Body: string(respBody)}
			if c.retryable(status) {
				return httpErr
			}
			return backoff.Permanent(httpErr)
		}
		return nil
	}

	var err error
	if method == http.MethodGet && c.retry != nil && c.retry.MaxRetries > 0 {
		expBackoff := backoff.NewExponentialBackOff()
		expBackoff.InitialInterval = c.retry.InitialInterval
		expBackoff.MaxInterval = c.retry.MaxInterval
		expBackoff.MaxElapsedTime = c.retry.MaxElapsedTime
		err = backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(expBackoff, c.retry.MaxRetries), ctx))
	} else {
		err = operation()
		var perm *backoff.PermanentError
		if errors.As(err, &perm) {
			err = perm.Err
		}
	}

	duration := time.Since(start)
	if err != nil {
		if _, ok := AsHTTPError(err); ok {
			c.log.Warn("HTTP error response",
				zap.String("method", method),
				zap.String("url", fullURL),
				zap.Int("status", status),
				zap.Duration("duration", duration))
			return err
		}
		c.log.Error("HTTP request failed",
			zap.String("method", method),
			zap.String("url", fullURL),
			zap.Error(err),
			zap.Duration("duration", duration))
		return fmt.Errorf("http request failed: %w", err)
	}

	c.log.Debug("HTTP request successful",
		zap.String("method", method),
		zap.String("url", fullURL),
		zap.Int("status", status),
		zap.Duration("duration", duration))

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", fullURL, err)
	}
	return nil
}

func (c *RESTClient) retryable(status int) bool {
	if c.retry == nil {
		return false
	}
	for _, code := range c.retry.RetryableStatusCodes {
		if status == code {
			return true
		}
	}
	return false
}
