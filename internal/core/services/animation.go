package services

import (
	"context"
	"sync"
)

// animationHub shares one poll loop per idea name among concurrent
// animation requests. The datastore keys videos by idea, so every
// waiter for the same idea is satisfied by the same row.
type animationHub struct {
	mu     sync.Mutex
	active map[string]*animationWait
}

type animationWait struct {
	done    chan struct{}
	url     string
	err     error
	waiters int
	cancel  context.CancelFunc
}

func newAnimationHub() *animationHub {
	return &animationHub{active: make(map[string]*animationWait)}
}

// wait joins (or starts) the shared poll for ideaName and blocks until
// a video lands, the loop fails, or ctx is cancelled. The loop itself
// runs detached from any single caller and stops when its last waiter
// leaves.
func (h *animationHub) wait(ctx context.Context, ideaName string, run func(context.Context) (string, error)) (string, error) {
	h.mu.Lock()
	w, running := h.active[ideaName]
	if !running {
		loopCtx, cancel := context.WithCancel(context.Background())
		w = &animationWait{done: make(chan struct{}), cancel: cancel}
		h.active[ideaName] = w
		go func() {
			url, err := run(loopCtx)
			h.mu.Lock()
			w.url, w.err = url, err
			delete(h.active, ideaName)
			h.mu.Unlock()
			close(w.done)
		}()
	}
	w.waiters++
	h.mu.Unlock()

	select {
	case <-w.done:
		return w.url, w.err
	case <-ctx.Done():
		h.mu.Lock()
		w.waiters--
		if w.waiters == 0 {
			w.cancel()
		}
		h.mu.Unlock()
		return "", ctx.Err()
	}
}
