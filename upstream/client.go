// Package upstream is the typed client for the laundry backend REST
// API. Every portal feature talks to the backend through it; the base
// URL comes from configuration only.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"freshpress/config"
	"freshpress/models"
)

// Client performs authenticated JSON calls against the upstream API.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// NewClient builds a client from the loaded configuration.
func NewClient() *Client {
	timeout := time.Duration(config.AppConfig.UpstreamTimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		BaseURL: config.AppConfig.UpstreamBaseURL,
		HTTP:    &http.Client{Timeout: timeout},
	}
}

// APIError carries a non-2xx upstream response. The message is the
// server's own text, surfaced verbatim to the caller.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream returned %d: %s", e.Status, e.Message)
}

// AsAPIError unwraps an APIError if err contains one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build upstream request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return readAPIError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode upstream response: %w", err)
		}
	}
	return nil
}

// readAPIError extracts the server's message from an error response.
// Non-JSON bodies collapse to a generic message.
func readAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode, Message: "API request failed"}
	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return apiErr
	}
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(data, &payload) == nil {
		if payload.Message != "" {
			apiErr.Message = payload.Message
		} else if payload.Error != "" {
			apiErr.Message = payload.Error
		}
	}
	return apiErr
}

func (c *Client) get(ctx context.Context, path, token string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, token, nil, out)
}

func (c *Client) post(ctx context.Context, path, token string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, token, body, out)
}

func (c *Client) put(ctx context.Context, path, token string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, token, body, out)
}

// listQuery encodes the shared dashboard filter fields.
func listQuery(f models.ListFilter) url.Values {
	q := url.Values{}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.Priority != "" {
		q.Set("priority", f.Priority)
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	q.Set("page", strconv.Itoa(f.Page))
	q.Set("limit", strconv.Itoa(f.Limit))
	return q
}

func withQuery(path string, q url.Values) string {
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}
