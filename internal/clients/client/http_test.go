package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testClient struct {
	baseURL string
}

func (c *testClient) GetBaseURL() string                      { return c.baseURL }
func (c *testClient) GetDefaultRequestTimeout() time.Duration { return 5 * time.Second }
func (c *testClient) GetHttpClient() *http.Client             { return &http.Client{} }

type echoRequest struct {
	Query string `json:"query"`
}

type echoResponse struct {
	Query  string `json:"query"`
	Header string `json:"header"`
}

func TestSendRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/echo":
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			w.Write([]byte(`{"query":"{ pies }","header":"` + r.Header.Get("x-test") + `"}`))
		case "/limited":
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":"slow down"}`))
		case "/broken":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.Write([]byte(`not json`))
		}
	}))
	defer server.Close()

	c := &testClient{baseURL: server.URL}
	ctx := context.Background()

	t.Run("decodes response", func(t *testing.T) {
		opts := &HttpClientOptions{Path: "/echo", Headers: map[string]string{"x-test": "yes"}}
		resp, err := SendRequest[echoRequest, echoResponse](ctx, c, http.MethodPost, opts, &echoRequest{Query: "{ pies }"})
		require.NoError(t, err)
		assert.Equal(t, "{ pies }", resp.Query)
		assert.Equal(t, "yes", resp.Header)
	})

	t.Run("429 is a rate limit error", func(t *testing.T) {
		_, err := SendRequest[echoRequest, echoResponse](ctx, c, http.MethodGet, &HttpClientOptions{Path: "/limited"}, nil)
		require.Error(t, err)
		assert.True(t, IsRateLimited(err))
		assert.Contains(t, err.Error(), "slow down")
	})

	t.Run("5xx is not a rate limit error", func(t *testing.T) {
		_, err := SendRequest[echoRequest, echoResponse](ctx, c, http.MethodGet, &HttpClientOptions{Path: "/broken"}, nil)
		require.Error(t, err)
		assert.False(t, IsRateLimited(err))

		var statusErr *StatusError
		require.True(t, errors.As(err, &statusErr))
		assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	})

	t.Run("invalid body", func(t *testing.T) {
		_, err := SendRequest[echoRequest, echoResponse](ctx, c, http.MethodGet, &HttpClientOptions{Path: "/other"}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode")
	})
}

func TestCallWithRetry(t *testing.T) {
	opts := RetryOptions{Attempts: 3, Delay: time.Millisecond}

	t.Run("retries rate limit errors", func(t *testing.T) {
		calls := 0
		result, err := CallWithRetry(context.Background(), func() (string, error) {
			calls++
			if calls <= 2 {
				return "", &StatusError{StatusCode: http.StatusTooManyRequests}
			}
			return "ok", nil
		}, opts)
		require.NoError(t, err)
		assert.Equal(t, "ok", result)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		calls := 0
		_, err := CallWithRetry(context.Background(), func() (string, error) {
			calls++
			return "", &StatusError{StatusCode: http.StatusTooManyRequests}
		}, opts)
		require.Error(t, err)
		assert.True(t, IsRateLimited(err))
		assert.Equal(t, 3, calls)
	})

	t.Run("does not retry other errors", func(t *testing.T) {
		calls := 0
		_, err := CallWithRetry(context.Background(), func() (string, error) {
			calls++
			return "", errors.New("boom")
		}, opts)
		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})
}
