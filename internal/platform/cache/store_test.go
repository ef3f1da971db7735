package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_CollapsesConcurrentMisses(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "leaderboard", nil
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
			v, err := store.GetOrLoad(context.Background(), "standings:evt-1:leaderboard", loader)
			if err != nil {
				errCh <- err
				return
			}
			if got, _ := v.(string); got != "leaderboard" {
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

func TestStore_GetOrLoad_ServesCachedValue(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		return "cached", nil
	}

	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("first GetOrLoad error: %v", err)
	}
	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("second GetOrLoad error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_DeletePrefix_InvalidatesEventNamespace(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(0)

	store.Set(ctx, "standings:evt-1:leaderboard", 1)
	store.Set(ctx, "standings:evt-1:results", 2)
	store.Set(ctx, "standings:evt-2:leaderboard", 3)

	store.DeletePrefix(ctx, "standings:evt-1:")

	if _, ok := store.Get(ctx, "standings:evt-1:leaderboard"); ok {
		t.Fatal("expected evt-1 leaderboard to be dropped")
	}
	if _, ok := store.Get(ctx, "standings:evt-1:results"); ok {
		t.Fatal("expected evt-1 results to be dropped")
	}
	if _, ok := store.Get(ctx, "standings:evt-2:leaderboard"); !ok {
		t.Fatal("expected evt-2 leaderboard to survive")
	}
}

func TestStore_TTLExpiresEntries(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(10 * time.Millisecond)

	store.Set(ctx, "k", "v")
	if _, ok := store.Get(ctx, "k"); !ok {
		t.Fatal("expected fresh entry to be present")
	}

	time.Sleep(25 * time.Millisecond)
	if _, ok := store.Get(ctx, "k"); ok {
		t.Fatal("expected entry to expire")
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")
