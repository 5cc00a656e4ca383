package services

import (
	"context"
	"time"

	"github.com/brandforge-labs/brandforge-cli/internal/core/domain"
	"github.com/brandforge-labs/brandforge-cli/internal/logger"
)

// MaxPollTime is the default ceiling on any poll loop. Workflows that
// have not written a result row by then are presumed lost; the caller
// may retry with a fresh request id.
const MaxPollTime = 5 * time.Minute

// pollCheck inspects the datastore once. ok=false with a nil error
// means the result is not there yet; an error means this tick failed
// and the loop should keep going.
type pollCheck[T any] func(ctx context.Context) (result T, ok bool, err error)

// pollUntil runs check every interval until it reports ok, the ceiling
// elapses, or ctx is cancelled. Tick errors are transient by
// definition (a half-written row, a network blip) and are logged and
// swallowed; only the ceiling or cancellation end the loop without a
// result. The timeout error is returned exactly once, after which the
// loop is dead.
func pollUntil[T any](ctx context.Context, interval, ceiling time.Duration, check pollCheck[T]) (T, error) {
	var zero T
	if ceiling <= 0 {
		ceiling = MaxPollTime
	}

	deadline := time.NewTimer(ceiling)
	defer deadline.Stop()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-deadline.C:
			return zero, domain.ErrPollTimeout
		case <-ticker.C:
			result, ok, err := check(ctx)
			if err != nil {
				if ctx.Err() != nil {
					// The tick failed because we were cancelled, not
					// because the datastore misbehaved.
					return zero, ctx.Err()
				}
				logger.Debug("poll: tick failed, will retry: %v", err)
				continue
			}
			if ok {
				return result, nil
			}
		}
	}
}
