package client

import (
	"context"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"
)

type RetryOptions struct {
	Attempts uint
	Delay    time.Duration
}

// CallWithRetry retries call on rate limit errors only, with exponential
// backoff starting at opts.Delay. Any other error is returned immediately.
func CallWithRetry[T any](ctx context.Context, call retry.RetryableFuncWithData[T], opts RetryOptions) (T, error) {
	result, err := retry.DoWithData(call,
		retry.Context(ctx),
		retry.Attempts(opts.Attempts),
		retry.Delay(opts.Delay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(IsRateLimited),
		retry.OnRetry(func(n uint, err error) {
			log.Ctx(ctx).Debug().
				Uint("attempt", n+1).
				Uint("max_attempts", opts.Attempts).
				Err(err).
				Msg("rate limit exceeded, retrying with exponential backoff")
		}))
	if err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}
