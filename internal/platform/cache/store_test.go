package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore[string](0)
	var calls atomic.Int32

	loader := func(context.Context) (string, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "value", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "PL", loader)
			if err != nil {
				errCh <- err
				return
			}
			if v != "value" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_ReturnsSamePointer(t *testing.T) {
	t.Parallel()

	type payload struct{ code string }
	store := NewStore[*payload](0)
	var calls atomic.Int32

	loader := func(context.Context) (*payload, error) {
		calls.Add(1)
		return &payload{code: "PL"}, nil
	}

	first, err := store.GetOrLoad(context.Background(), "PL", loader)
	if err != nil {
		t.Fatalf("first GetOrLoad error: %v", err)
	}
	second, err := store.GetOrLoad(context.Background(), "PL", loader)
	if err != nil {
		t.Fatalf("second GetOrLoad error: %v", err)
	}

	if first != second {
		t.Fatalf("expected identical pointer on second call")
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_DoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	store := NewStore[int](0)
	errBoom := errors.New("boom")

	if _, err := store.GetOrLoad(context.Background(), "k", func(context.Context) (int, error) {
		return 0, errBoom
	}); !errors.Is(err, errBoom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if store.Len() != 0 {
		t.Fatalf("expected empty store after failed load")
	}

	got, err := store.GetOrLoad(context.Background(), "k", func(context.Context) (int, error) { return 3, nil })
	if err != nil || got != 3 {
		t.Fatalf("expected reload to succeed, got=%d err=%v", got, err)
	}
}

func TestStore_ZeroTTLNeverExpires(t *testing.T) {
	t.Parallel()

	store := NewStore[string](0)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return base }
	store.Set(context.Background(), "PD", "table")

	store.now = func() time.Time { return base.Add(365 * 24 * time.Hour) }
	if _, ok := store.Get(context.Background(), "PD"); !ok {
		t.Fatalf("expected entry to survive without ttl")
	}
}

func TestStore_TTLExpires(t *testing.T) {
	t.Parallel()

	store := NewStore[string](time.Minute)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return base }
	store.Set(context.Background(), "PD", "table")

	store.now = func() time.Time { return base.Add(2 * time.Minute) }
	if _, ok := store.Get(context.Background(), "PD"); ok {
		t.Fatalf("expected entry to expire")
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")

func TestStore_GetOrLoad_CallerCancelDoesNotAbortLoad(t *testing.T) {
	t.Parallel()

	store := NewStore[string](0)
	started := make(chan struct{})
	release := make(chan struct{})
	loaderErr := make(chan error, 1)

	loader := func(ctx context.Context) (string, error) {
		close(started)
		<-release
		loaderErr <- ctx.Err()
		return "table", nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	callerErr := make(chan error, 1)
	go func() {
		_, err := store.GetOrLoad(ctx, "PL", loader)
		callerErr <- err
	}()
	<-started

	cancel()
	if err := <-callerErr; !errors.Is(err, context.Canceled) {
		t.Fatalf("expected cancelled caller to stop waiting, got %v", err)
	}

	close(release)
	if err := <-loaderErr; err != nil {
		t.Fatalf("loader context was cancelled: %v", err)
	}

	got, err := store.GetOrLoad(context.Background(), "PL", func(context.Context) (string, error) {
		return "", errors.New("loader must not run again")
	})
	if err != nil || got != "table" {
		t.Fatalf("expected cached value from the detached load, got=%q err=%v", got, err)
	}
}
