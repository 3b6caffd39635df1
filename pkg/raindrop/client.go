// Package raindrop is a thin typed client for the Raindrop.io REST API.
// Every method issues exactly one HTTP request, never retries, and relays
// the service's error messages verbatim. The client holds no state beyond
// its credential and endpoint; all bookmark data lives on the remote side.
package raindrop

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

	"github.com/entrhq/raindrop-mcp/pkg/logging"
)

// DefaultBaseURL is the production endpoint of the Raindrop.io API.
const DefaultBaseURL = "https://api.raindrop.io/rest/v1"

const defaultTimeout = 30 * time.Second

// Client issues authenticated requests against the Raindrop.io API. The zero
// value is not usable; construct one with NewClient.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
	logger  *logging.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API root, typically a test
// server.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(base, "/")
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) {
		c.httpc = httpc
	}
}

// WithTimeout sets the per-request timeout on the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpc.Timeout = d
	}
}

// WithLogger attaches a session logger for request diagnostics.
func WithLogger(logger *logging.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a client authenticating with token. The token may be
// empty; every call then fails with ErrMissingToken before any network I/O.
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		token:   token,
		httpc:   &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// envelope is the wrapper the API puts around every response body.
type envelope struct {
	Result       bool            `json:"result"`
	ErrorMessage string          `json:"errorMessage"`
	Item         json.RawMessage `json:"item"`
	Items        json.RawMessage `json:"items"`
	Count        int             `json:"count"`
	Modified     int             `json:"modified"`
}

// call performs one request and decodes the response envelope. Any non-OK
// status or result:false envelope becomes an *APIError carrying the
// service's message.
func (c *Client) call(ctx context.Context, method, path string, query url.Values, body any) (*envelope, error) {
	if c.token == "" {
		return nil, ErrMissingToken
	}

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("raindrop: encode %s %s: %w", method, path, err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return nil, fmt.Errorf("raindrop: build %s %s: %w", method, path, err)
	}
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	c.logf("%s %s", method, req.URL.RequestURI())

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("raindrop: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("raindrop: read %s %s: %w", method, path, err)
	}

	var env envelope
	if jsonErr := json.Unmarshal(data, &env); jsonErr != nil {
		if resp.StatusCode != http.StatusOK {
			c.logf("%s %s failed: status %d", method, path, resp.StatusCode)
			return nil, &APIError{StatusCode: resp.StatusCode, Endpoint: path}
		}
		return nil, fmt.Errorf("raindrop: decode %s %s: %w", method, path, jsonErr)
	}

	if resp.StatusCode != http.StatusOK || !env.Result {
		msg := env.ErrorMessage
		if msg == "" && resp.StatusCode == http.StatusOK {
			msg = "unexpected response format"
		}
		c.logf("%s %s failed: status %d %s", method, path, resp.StatusCode, msg)
		return nil, &APIError{StatusCode: resp.StatusCode, Endpoint: path, Message: msg}
	}
	return &env, nil
}

func (c *Client) logf(format string, args ...any) {
	if c.logger != nil {
		c.logger.Debugf(format, args...)
	}
}
