package poller

import (
	"context"
	"time"

	"github.com/Alexintosh/piedao-monorepo/internal/observability/tracing"
	"github.com/rs/zerolog/log"
)

type Poller struct {
	name       string
	interval   time.Duration
	quit       chan struct{}
	pollMethod func(ctx context.Context) error
}

func NewPoller(name string, interval time.Duration, pollMethod func(ctx context.Context) error) *Poller {
	return &Poller{
		name:       name,
		interval:   interval,
		quit:       make(chan struct{}),
		pollMethod: pollMethod,
	}
}

// Start blocks until ctx is cancelled or Stop is called. Every tick runs the
// poll method with its own trace id; a failed run is logged and the next
// tick is the retry.
func (p *Poller) Start(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	log.Info().Str("poller", p.name).Msgf("Starting poller with interval %s", p.interval)

	for {
		select {
		case <-ticker.C:
			p.poll(ctx)
		case <-ctx.Done():
			log.Info().Str("poller", p.name).Msg("Poller stopped due to context cancellation")
			return
		case <-p.quit:
			log.Info().Str("poller", p.name).Msg("Poller stopped")
			return
		}
	}
}

func (p *Poller) poll(ctx context.Context) {
	ctx = tracing.InjectTraceID(ctx)
	logger := log.Ctx(ctx).With().Str("poller", p.name).Logger()

	logger.Debug().Msg("Executing poll method")
	if err := p.pollMethod(ctx); err != nil {
		logger.Error().Err(err).Msg("Error polling")
	} else {
		logger.Debug().Msg("Poll method executed successfully")
	}
}

func (p *Poller) Stop() {
	close(p.quit)
}
