package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Alexintosh/piedao-monorepo/internal/observability/metrics"
	"github.com/rs/zerolog/log"
)

// ErrRateLimitExceeded is returned when the upstream answers 429. It is the
// only error the adapters retry on.
var ErrRateLimitExceeded = errors.New("rate limit exceeded")

// maxErrorBodySize bounds how much of an error response ends up in the error.
const maxErrorBodySize = 512

type BaseClient interface {
	GetBaseURL() string
	GetDefaultRequestTimeout() time.Duration
	GetHttpClient() *http.Client
}

type HttpClientOptions struct {
	Timeout time.Duration
	Path    string
	// TemplatePath is used as the metrics label instead of Path so query
	// strings do not blow up label cardinality.
	TemplatePath string
	Headers      map[string]string
}

// StatusError is returned for any non 2xx response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d: %s", e.StatusCode, e.Body)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrRateLimitExceeded && e.StatusCode == http.StatusTooManyRequests
}

// IsRateLimited reports whether err (or anything it wraps) is a 429.
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimitExceeded)
}

func SendRequest[I any, R any](
	ctx context.Context, client BaseClient, method string, opts *HttpClientOptions, input *I,
) (*R, error) {
	timeout := client.GetDefaultRequestTimeout()
	if opts.Timeout > 0 {
		timeout = opts.Timeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	url := client.GetBaseURL() + opts.Path

	var body io.Reader
	if input != nil {
		payload, err := json.Marshal(input)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if input != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}

	templatePath := opts.TemplatePath
	if templatePath == "" {
		templatePath = opts.Path
	}
	stopTimer := metrics.StartClientRequestDurationTimer(client.GetBaseURL(), method, templatePath)

	resp, err := client.GetHttpClient().Do(req)
	if err != nil {
		stopTimer(0)
		return nil, fmt.Errorf("failed to send request to %s: %w", templatePath, err)
	}
	defer resp.Body.Close()
	stopTimer(resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		log.Ctx(ctx).Debug().
			Str("path", templatePath).
			Int("status", resp.StatusCode).
			Msg("upstream returned non 2xx status")
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var output R
	if err := json.NewDecoder(resp.Body).Decode(&output); err != nil {
		return nil, fmt.Errorf("failed to decode response from %s: %w", templatePath, err)
	}

	return &output, nil
}
