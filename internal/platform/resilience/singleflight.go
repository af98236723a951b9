package resilience

import (
	"context"
	"fmt"
	"sync"
)

// SingleFlight collapses concurrent calls that share a key into one execution.
type SingleFlight[T any] struct {
	mu    sync.Mutex
	calls map[string]*flight[T]
}

type flight[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Do runs fn once per key among overlapping callers. The bool reports whether
// the caller received a result produced by another caller.
func (g *SingleFlight[T]) Do(key string, fn func() (T, error)) (T, error, bool) {
	f, shared := g.join(key)
	if shared {
		<-f.done
		return f.val, f.err, true
	}

	g.run(key, f, fn)
	return f.val, f.err, false
}

// DoContext is Do where fn runs detached from any single caller. Each caller
// stops waiting when its own ctx is done; fn keeps running for the others.
func (g *SingleFlight[T]) DoContext(ctx context.Context, key string, fn func() (T, error)) (T, error, bool) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err, false
	}

	f, shared := g.join(key)
	if !shared {
		go g.run(key, f, fn)
	}

	select {
	case <-f.done:
		return f.val, f.err, shared
	case <-ctx.Done():
		return zero, ctx.Err(), shared
	}
}

func (g *SingleFlight[T]) join(key string) (*flight[T], bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.calls == nil {
		g.calls = make(map[string]*flight[T])
	}
	if f, ok := g.calls[key]; ok {
		return f, true
	}

	f := &flight[T]{done: make(chan struct{})}
	g.calls[key] = f
	return f, false
}

func (g *SingleFlight[T]) run(key string, f *flight[T], fn func() (T, error)) {
	defer func() {
		if rec := recover(); rec != nil {
			f.err = fmt.Errorf("singleflight %q panicked: %v", key, rec)
		}
		g.mu.Lock()
		delete(g.calls, key)
		g.mu.Unlock()
		close(f.done)
	}()

	f.val, f.err = fn()
}
