// Package client provides a Go client for the Pastery paste service.
//
// Basic usage:
//
//	c := client.New("yourapikey") // uses default https://www.pastery.net
//	paste, err := c.Create(ctx, []byte("hello world"), client.CreateOptions{
//		Duration: 24 * time.Hour,
//	})
package client

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
)

const (
	// DefaultBaseURL is the public Pastery service URL.
	DefaultBaseURL = "https://www.pastery.net"

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second

	// MaxPayloadSize is the maximum paste size (10MB).
	MaxPayloadSize = 10_000_000

	apiPath = "/api/paste/"
)

// Client is a Pastery API client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL, e.g. for a self-hosted instance.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// New creates a new Pastery client with the given API key and options.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Paste describes a paste as reported by the service.
type Paste struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Language string `json:"language"`
	Duration int64  `json:"duration"` // minutes until expiry
	Body     string `json:"body,omitempty"`
}

// Create uploads content as a new paste and returns the created paste.
// Validation failures (empty or oversized content) are reported before
// any network activity.
func (c *Client) Create(ctx context.Context, content []byte, opts CreateOptions) (*Paste, error) {
	if len(content) == 0 {
		return nil, &Error{Code: ErrEmptyContent, Message: "content cannot be empty"}
	}
	if len(content) > MaxPayloadSize {
		return nil, &Error{Code: ErrPayloadTooLarge, Message: fmt.Sprintf("content exceeds maximum size of %d bytes", MaxPayloadSize)}
	}

	endpoint := createURL(c.baseURL, c.apiKey, opts)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, apiError(resp.StatusCode, body)
	}

	var paste Paste
	if err := json.Unmarshal(body, &paste); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return &paste, nil
}

// Get retrieves a paste by its identifier.
// The identifier can be either a full URL (https://www.pastery.net/abc123/)
// or just the ID (abc123).
func (c *Client) Get(ctx context.Context, identifier string) (*Paste, error) {
	id, err := extractID(identifier)
	if err != nil {
		return nil, err
	}

	endpoint := c.baseURL + apiPath + id + "/?api_key=" + url.QueryEscape(c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp.StatusCode, body)
	}

	var paste Paste
	if err := json.Unmarshal(body, &paste); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return &paste, nil
}

// List returns the pastes belonging to the API key's account.
func (c *Client) List(ctx context.Context) ([]Paste, error) {
	endpoint := c.baseURL + apiPath + "?api_key=" + url.QueryEscape(c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp.StatusCode, body)
	}

	var listing struct {
		Pastes []Paste `json:"pastes"`
	}
	if err := json.Unmarshal(body, &listing); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return listing.Pastes, nil
}

// Delete removes a paste. Like Get, it accepts a full URL or a bare ID.
func (c *Client) Delete(ctx context.Context, identifier string) error {
	id, err := extractID(identifier)
	if err != nil {
		return err
	}

	endpoint := c.baseURL + apiPath + id + "/?api_key=" + url.QueryEscape(c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return apiError(resp.StatusCode, body)
	}
	return nil
}

// extractID reduces a paste URL or bare identifier to the paste ID.
func extractID(identifier string) (string, error) {
	id := identifier
	if strings.HasPrefix(identifier, "http://") || strings.HasPrefix(identifier, "https://") {
		parsed, err := url.Parse(identifier)
		if err != nil {
			return "", fmt.Errorf("parsing URL: %w", err)
		}
		id = strings.Trim(parsed.Path, "/")
	}

	if id == "" {
		return "", &Error{Code: ErrBadRequest, Message: "identifier cannot be empty"}
	}
	return id, nil
}

// apiError maps an error response to a typed *Error. The service reports
// failures as JSON with an error_msg field; anything else is passed
// through verbatim.
func apiError(statusCode int, body []byte) *Error {
	msg := strings.TrimSpace(string(body))
	var decoded struct {
		ErrorMsg string `json:"error_msg"`
	}
	if err := json.Unmarshal(body, &decoded); err == nil && decoded.ErrorMsg != "" {
		msg = decoded.ErrorMsg
	}

	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &Error{Code: ErrUnauthorized, Message: msg}
	case http.StatusNotFound:
		return &Error{Code: ErrNotFound, Message: "paste not found or expired"}
	case http.StatusRequestEntityTooLarge:
		return &Error{Code: ErrPayloadTooLarge, Message: msg}
	case http.StatusTooManyRequests:
		return &Error{Code: ErrRateLimited, Message: msg}
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return &Error{Code: ErrBadRequest, Message: msg}
	default:
		return &Error{Code: ErrServer, Message: fmt.Sprintf("unexpected status %d: %s", statusCode, msg)}
	}
}
