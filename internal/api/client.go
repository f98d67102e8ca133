// Package api provides a common HTTP client with standardized headers and error handling
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const apiPrefix = "/api/v1"

// ErrorResponse represents an error response from the catalog API
type ErrorResponse struct {
	StatusCode int
	Status     string
	URL        string
	Body       []byte
}

// Error implements the error interface
func (e *ErrorResponse) Error() string {
	msg := fmt.Sprintf("HTTP request failed: %d %s (%s)", e.StatusCode, e.Status, e.URL)
	if len(e.Body) > 0 {
		bodyStr := string(e.Body)
		if len(bodyStr) > 200 {
			bodyStr = bodyStr[:200] + "..."
		}
		msg += fmt.Sprintf(": %s", bodyStr)
	}
	return msg
}

// IsNotFound returns true if the error is a 404 Not Found
func (e *ErrorResponse) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized returns true if the error is a 401 Unauthorized
func (e *ErrorResponse) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// IsForbidden returns true if the error is a 403 Forbidden
func (e *ErrorResponse) IsForbidden() bool {
	return e.StatusCode == http.StatusForbidden
}

// IsValidation returns true if the server rejected the payload
func (e *ErrorResponse) IsValidation() bool {
	return e.StatusCode == http.StatusBadRequest || e.StatusCode == http.StatusUnprocessableEntity
}

// IsServerError returns true if the error is a 5xx Server Error
func (e *ErrorResponse) IsServerError() bool {
	return e.StatusCode >= 500
}

// Client is an HTTP client that handles common operations for catalog API requests
type Client struct {
	baseURL   string
	token     string
	userAgent string
	client    *http.Client
}

// ClientOption is a function that modifies a Client
type ClientOption func(*Client)

// WithUserAgent sets the User-Agent header for requests
func WithUserAgent(userAgent string) ClientOption {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithHTTPClient sets the underlying HTTP client
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.client = client
	}
}

// NewClient creates a client for the catalog server at baseURL
func NewClient(baseURL, token string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		token:     token,
		userAgent: "metacat-cli",
		client:    http.DefaultClient,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Get performs a GET request against the versioned API
func (c *Client) Get(ctx context.Context, endpoint string, query url.Values, v interface{}) error {
	return c.Do(ctx, http.MethodGet, endpoint, query, nil, v)
}

// Post performs a POST request with the given body
func (c *Client) Post(ctx context.Context, endpoint string, body, v interface{}) error {
	return c.Do(ctx, http.MethodPost, endpoint, nil, body, v)
}

// Put performs a PUT request with the given body
func (c *Client) Put(ctx context.Context, endpoint string, body, v interface{}) error {
	return c.Do(ctx, http.MethodPut, endpoint, nil, body, v)
}

// Delete performs a DELETE request
func (c *Client) Delete(ctx context.Context, endpoint string, query url.Values) error {
	return c.Do(ctx, http.MethodDelete, endpoint, query, nil, nil)
}

// Do performs an HTTP request with the given method, endpoint, query and body
func (c *Client) Do(ctx context.Context, method, endpoint string, query url.Values, body, v interface{}) error {
	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}

	reqURL, err := url.JoinPath(c.baseURL, apiPrefix, endpoint)
	if err != nil {
		return fmt.Errorf("failed to create request URL: %w", err)
	}
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		return &ErrorResponse{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			URL:        reqURL,
			Body:       respBody,
		}
	}

	if v != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, v); err != nil {
			return fmt.Errorf("failed to unmarshal response: %w", err)
		}
	}

	return nil
}
