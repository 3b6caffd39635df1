package raindrop

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

// newTestClient points a client at a fake API served by handler.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient("test-token", WithBaseURL(srv.URL))
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient("tok")

	assert.Equal(t, DefaultBaseURL, c.baseURL)
	assert.Equal(t, defaultTimeout, c.httpc.Timeout)
}

func TestClientOptions(t *testing.T) {
	t.Run("base url trims trailing slash", func(t *testing.T) {
		c := NewClient("tok", WithBaseURL("https://api.test/rest/v1/"))
		assert.Equal(t, "https://api.test/rest/v1", c.baseURL)
	})

	t.Run("timeout", func(t *testing.T) {
		c := NewClient("tok", WithTimeout(5*time.Second))
		assert.Equal(t, 5*time.Second, c.httpc.Timeout)
	})

	t.Run("http client", func(t *testing.T) {
		httpc := &http.Client{}
		c := NewClient("tok", WithHTTPClient(httpc))
		assert.Same(t, httpc, c.httpc)
	})
}

func TestMissingTokenFailsBeforeAnyRequest(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	t.Cleanup(srv.Close)

	c := NewClient("", WithBaseURL(srv.URL))
	_, err := c.ListCollections(context.Background())

	require.ErrorIs(t, err, ErrMissingToken)
	assert.True(t, IsAuthError(err))
	assert.Zero(t, requests, "no request should reach the service without a token")
}

func TestRequestCarriesAuthHeader(t *testing.T) {
	var gotAuth, gotContentType string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		fmt.Fprint(w, `{"result": true, "items": []}`)
	})

	_, err := c.ListCollections(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
}

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		body         string
		wantAuth     bool
		wantNotFound bool
		wantMessage  string
	}{
		{
			name:        "unauthorized",
			status:      http.StatusUnauthorized,
			body:        `{"result": false, "errorMessage": "Incorrect access_token"}`,
			wantAuth:    true,
			wantMessage: "Incorrect access_token",
		},
		{
			name:     "forbidden",
			status:   http.StatusForbidden,
			body:     `{"result": false}`,
			wantAuth: true,
		},
		{
			name:         "not found",
			status:       http.StatusNotFound,
			body:         `{"result": false, "errorMessage": "Not found"}`,
			wantNotFound: true,
			wantMessage:  "Not found",
		},
		{
			name:        "rejected despite ok status",
			status:      http.StatusOK,
			body:        `{"result": false, "errorMessage": "Collection not found"}`,
			wantMessage: "Collection not found",
		},
		{
			name:   "server error without json body",
			status: http.StatusInternalServerError,
			body:   "upstream exploded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			})

			_, err := c.GetCollection(context.Background(), 42)
			require.Error(t, err)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, "/collection/42", apiErr.Endpoint)
			assert.Equal(t, tt.wantAuth, IsAuthError(err))
			assert.Equal(t, tt.wantNotFound, IsNotFound(err))
			if tt.wantMessage != "" {
				assert.Contains(t, err.Error(), tt.wantMessage)
			}
		})
	}
}

func TestUnexpectedResponseShape(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"unrelated": true}`)
	})

	_, err := c.ListCollections(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, apiErr.Message, "unexpected response format")
}

func TestNonJSONBodyOnOKStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html>maintenance</html>")
	})

	_, err := c.ListCollections(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr), "an unreadable body is a transport failure, not a service verdict")
	assert.Contains(t, err.Error(), "decode")
}

func TestTransportErrorIsNotAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse the connection

	c := NewClient("tok", WithBaseURL(srv.URL))
	_, err := c.ListCollections(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
	assert.False(t, IsAuthError(err))
	assert.False(t, IsNotFound(err))
}

func TestContextCancellation(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.ListCollections(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
