// Package apiclient is a thin JSON-over-HTTP client: base URL and default
// headers are fixed at construction, each call may add query parameters and
// header overrides, and non-2xx responses come back as *HTTPError.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultTimeout  = 30 * time.Second
	requestIDHeader = "X-Request-ID"
)

type Client struct {
	baseURL    string
	headers    http.Header
	httpClient *http.Client
	timeout    time.Duration
	logger     *zap.Logger
}

type Option func(*Client)

// WithHeader adds a default header sent with every request.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.headers.Set(key, value)
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("baseURL is empty")
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("url.Parse: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("baseURL[%s] must be absolute", baseURL)
	}

	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		headers:    http.Header{},
		httpClient: &http.Client{},
		timeout:    defaultTimeout,
		logger:     zap.NewNop(),
	}
	c.headers.Set("Content-Type", "application/json")
	c.headers.Set("Accept", "application/json")

	for _, opt := range opts {
		opt(c)
	}

	if c.timeout > 0 && c.httpClient.Timeout == 0 {
		hc := *c.httpClient
		hc.Timeout = c.timeout
		c.httpClient = &hc
	}

	return c, nil
}

// BaseURL returns the base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

type requestConfig struct {
	params  url.Values
	headers http.Header
}

type RequestOption func(*requestConfig)

// Param appends a URL query parameter.
func Param(key string, value any) RequestOption {
	return func(rc *requestConfig) {
		rc.params.Add(key, fmt.Sprint(value))
	}
}

// Header overrides a default header for one request.
func Header(key, value string) RequestOption {
	return func(rc *requestConfig) {
		rc.headers.Set(key, value)
	}
}

type Response[T any] struct {
	Data    T
	Status  int
	Headers http.Header
}

func Get[T any](ctx context.Context, c *Client, endpoint string, opts ...RequestOption) (Response[T], error) {
	return request[T](ctx, c, http.MethodGet, endpoint, nil, opts)
}

// Post sends body as JSON; a nil body sends no payload.
func Post[T any](ctx context.Context, c *Client, endpoint string, body any, opts ...RequestOption) (Response[T], error) {
	return request[T](ctx, c, http.MethodPost, endpoint, body, opts)
}

func Put[T any](ctx context.Context, c *Client, endpoint string, body any, opts ...RequestOption) (Response[T], error) {
	return request[T](ctx, c, http.MethodPut, endpoint, body, opts)
}

func Patch[T any](ctx context.Context, c *Client, endpoint string, body any, opts ...RequestOption) (Response[T], error) {
	return request[T](ctx, c, http.MethodPatch, endpoint, body, opts)
}

// Delete tolerates an empty response body, leaving Data at its zero value.
func Delete[T any](ctx context.Context, c *Client, endpoint string, opts ...RequestOption) (Response[T], error) {
	return request[T](ctx, c, http.MethodDelete, endpoint, nil, opts)
}

func request[T any](ctx context.Context, c *Client, method, endpoint string, body any, opts []RequestOption) (Response[T], error) {
	var result Response[T]

	resp, data, err := c.do(ctx, method, endpoint, body, opts)
	if err != nil {
		return result, err
	}

	result.Status = resp.StatusCode
	result.Headers = resp.Header

	if len(bytes.TrimSpace(data)) == 0 {
		return result, nil
	}

	if err := json.Unmarshal(data, &result.Data); err != nil {
		return result, fmt.Errorf("json.Unmarshal: %w", err)
	}

	return result, nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, body any, opts []RequestOption) (*http.Response, []byte, error) {
	rc := requestConfig{
		params:  url.Values{},
		headers: http.Header{},
	}
	for _, opt := range opts {
		opt(&rc)
	}

	target, err := c.buildURL(endpoint, rc.params)
	if err != nil {
		return nil, nil, fmt.Errorf("c.buildURL: %w", err)
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, nil, fmt.Errorf("json.Marshal: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	req.Header = c.headers.Clone()
	for key, values := range rc.headers {
		req.Header[key] = values
	}
	if req.Header.Get(requestIDHeader) == "" {
		req.Header.Set(requestIDHeader, uuid.NewString())
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("API request failed",
			zap.String("method", method),
			zap.String("url", target),
			zap.String("request_id", req.Header.Get(requestIDHeader)),
			zap.Error(err),
		)
		return nil, nil, fmt.Errorf("httpClient.Do: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("io.ReadAll: %w", err)
	}

	c.logger.Debug("API request",
		zap.String("method", method),
		zap.String("url", target),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, nil, newHTTPError(resp, data)
	}

	return resp, data, nil
}

func (c *Client) buildURL(endpoint string, params url.Values) (string, error) {
	u, err := url.Parse(c.baseURL + "/" + strings.TrimPrefix(endpoint, "/"))
	if err != nil {
		return "", err
	}

	if len(params) > 0 {
		q := u.Query()
		for key, values := range params {
			for _, v := range values {
				q.Add(key, v)
			}
		}
		u.RawQuery = q.Encode()
	}

	return u.String(), nil
}
