package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnimationHub_WaitersShareOneLoop(t *testing.T) {
	hub := newAnimationHub()
	started := make(chan struct{})
	release := make(chan struct{})
	var runs int32

	run := func(context.Context) (string, error) {
		atomic.AddInt32(&runs, 1)
		close(started)
		<-release
		return "https://cdn.test/video.mp4", nil
	}

	var wg sync.WaitGroup
	results := make([]string, 3)
	errs := make([]error, 3)
	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], errs[0] = hub.wait(context.Background(), "Launch Week", run)
	}()
	<-started

	// Late joiners attach to the running loop; their run func is never
	// called.
	for i := 1; i < 3; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = hub.wait(context.Background(), "Launch Week",
				func(context.Context) (string, error) {
					t.Error("second loop started for the same idea")
					return "", nil
				})
		}(i)
	}
	time.Sleep(10 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.EqualValues(t, 1, atomic.LoadInt32(&runs))
	for i := range results {
		require.NoError(t, errs[i])
		assert.Equal(t, "https://cdn.test/video.mp4", results[i])
	}
}

func TestAnimationHub_DistinctIdeasRunSeparately(t *testing.T) {
	hub := newAnimationHub()

	a, err := hub.wait(context.Background(), "Launch Week", func(context.Context) (string, error) {
		return "https://cdn.test/a.mp4", nil
	})
	require.NoError(t, err)
	b, err := hub.wait(context.Background(), "Summer Sale", func(context.Context) (string, error) {
		return "https://cdn.test/b.mp4", nil
	})
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.test/a.mp4", a)
	assert.Equal(t, "https://cdn.test/b.mp4", b)
}

func TestAnimationHub_ErrorReachesAllWaiters(t *testing.T) {
	hub := newAnimationHub()
	wantErr := errors.New("poll timed out")

	_, err := hub.wait(context.Background(), "Launch Week", func(context.Context) (string, error) {
		return "", wantErr
	})
	assert.ErrorIs(t, err, wantErr)
}

func TestAnimationHub_LastWaiterLeavingCancelsLoop(t *testing.T) {
	hub := newAnimationHub()
	loopCancelled := make(chan struct{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := hub.wait(ctx, "Launch Week", func(loopCtx context.Context) (string, error) {
			<-loopCtx.Done()
			close(loopCancelled)
			return "", loopCtx.Err()
		})
		assert.ErrorIs(t, err, context.Canceled)
	}()

	time.Sleep(5 * time.Millisecond)
	cancel()

	select {
	case <-loopCancelled:
	case <-time.After(time.Second):
		t.Fatal("loop context was not cancelled after the last waiter left")
	}
	<-done
}
