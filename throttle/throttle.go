// Package throttle enforces a maximum admission rate for outbound API calls.
//
// Remote radio directories ban accounts that hammer their endpoints, so every
// network-bound request must pass through a shared Throttler. Cache hits never
// touch it.
package throttle

import (
	"context"
	"time"
)

// Throttler admits callers at a fixed rate, in FIFO order, regardless of
// caller concurrency. It only delays, it never rejects.
type Throttler struct {
	tokens chan struct{}
	done   chan struct{}
}

// New creates a Throttler admitting at most rate calls per period.
// The bucket starts full, so the first rate calls proceed immediately.
func New(rate int, period time.Duration) *Throttler {
	t := &Throttler{
		tokens: make(chan struct{}, rate),
		done:   make(chan struct{}),
	}

	for i := 0; i < rate; i++ {
		t.tokens <- struct{}{}
	}

	go t.refill(period / time.Duration(rate))
	return t
}

// refill replenishes one admission token per interval until Stop is called.
func (t *Throttler) refill(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			select {
			case t.tokens <- struct{}{}:
			default:
				// Bucket full, idle interval is not banked.
			}
		case <-t.done:
			return
		}
	}
}

// Acquire blocks the caller until it is admitted or the context is cancelled.
// Waiting goroutines are released in arrival order.
func (t *Throttler) Acquire(ctx context.Context) error {
	select {
	case <-t.tokens:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop releases the refill goroutine. Pending Acquire calls drain any
// remaining tokens and then block until their context is cancelled.
func (t *Throttler) Stop() {
	close(t.done)
}
