package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandforge-labs/brandforge-cli/internal/core/domain"
)

func TestPollUntil_ReturnsFirstReadyResult(t *testing.T) {
	var ticks int32
	result, err := pollUntil(context.Background(), time.Millisecond, time.Second, func(context.Context) (string, bool, error) {
		if atomic.AddInt32(&ticks, 1) < 3 {
			return "", false, nil
		}
		return "https://cdn.test/video.mp4", true, nil
	})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/video.mp4", result)
	assert.EqualValues(t, 3, atomic.LoadInt32(&ticks))
}

func TestPollUntil_TickErrorsAreRetried(t *testing.T) {
	var ticks int32
	result, err := pollUntil(context.Background(), time.Millisecond, time.Second, func(context.Context) (int, bool, error) {
		switch atomic.AddInt32(&ticks, 1) {
		case 1:
			return 0, false, errors.New("transport hiccup")
		case 2:
			return 0, false, errors.New("half-written row")
		default:
			return 42, true, nil
		}
	})

	require.NoError(t, err)
	assert.Equal(t, 42, result)
}

func TestPollUntil_TimeoutFiresOnce(t *testing.T) {
	var ticks int32
	_, err := pollUntil(context.Background(), time.Millisecond, 20*time.Millisecond, func(context.Context) (string, bool, error) {
		atomic.AddInt32(&ticks, 1)
		return "", false, nil
	})
	require.ErrorIs(t, err, domain.ErrPollTimeout)

	// The loop is dead once the ceiling error is returned: no check
	// runs afterwards.
	seen := atomic.LoadInt32(&ticks)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, seen, atomic.LoadInt32(&ticks))
}

func TestPollUntil_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := pollUntil(ctx, time.Millisecond, time.Minute, func(context.Context) (string, bool, error) {
		return "", false, nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPollUntil_CancelledDuringCheck(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	_, err := pollUntil(ctx, time.Millisecond, time.Minute, func(context.Context) (string, bool, error) {
		cancel()
		return "", false, errors.New("request aborted")
	})
	assert.ErrorIs(t, err, context.Canceled)
}
