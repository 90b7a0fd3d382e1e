package reporter

import (
	"context"
	"fmt"
	"time"

	"github.com/Alexintosh/piedao-monorepo/internal/config"
	"github.com/Alexintosh/piedao-monorepo/internal/observability/metrics"
	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog/log"
)

// ComponentTag is the tag every report is grouped by in metrics.
const ComponentTag = "component"

//go:generate mockery --name=Reporter --output=../../tests/mocks --outpkg=mocks --filename=mock_reporter.go
type Reporter interface {
	// CaptureException sends err to the error tracker. It never blocks on
	// the network and never fails.
	CaptureException(ctx context.Context, err error, tags map[string]string)
	// Flush waits for buffered events to be delivered.
	Flush()
}

type SentryReporter struct {
	hub          *sentry.Hub
	flushTimeout time.Duration
}

// New returns a sentry backed reporter, or a reporter that only logs when
// no DSN is configured.
func New(cfg *config.SentryConfig) (Reporter, error) {
	if cfg.DSN == "" {
		log.Warn().Msg("sentry dsn is not set, errors will only be logged")
		return NewNoopReporter(), nil
	}

	return newSentryReporter(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		SampleRate:  cfg.SampleRate,
	}, cfg.FlushTimeout)
}

func newSentryReporter(opts sentry.ClientOptions, flushTimeout time.Duration) (*SentryReporter, error) {
	client, err := sentry.NewClient(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create sentry client: %w", err)
	}

	return &SentryReporter{
		hub:          sentry.NewHub(client, sentry.NewScope()),
		flushTimeout: flushTimeout,
	}, nil
}

func (r *SentryReporter) CaptureException(ctx context.Context, err error, tags map[string]string) {
	if err == nil {
		return
	}

	logError(ctx, err, tags)

	hub := r.hub.Clone()
	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)
		hub.CaptureException(err)
	})
}

func (r *SentryReporter) Flush() {
	r.hub.Flush(r.flushTimeout)
}

type NoopReporter struct{}

func NewNoopReporter() *NoopReporter {
	return &NoopReporter{}
}

func (n *NoopReporter) CaptureException(ctx context.Context, err error, tags map[string]string) {
	if err == nil {
		return
	}
	logError(ctx, err, tags)
}

func (n *NoopReporter) Flush() {}

func logError(ctx context.Context, err error, tags map[string]string) {
	component := tags[ComponentTag]
	metrics.RecordReportedError(component)

	event := log.Ctx(ctx).Error().Err(err)
	for k, v := range tags {
		event = event.Str(k, v)
	}
	event.Msg("reported error")
}
