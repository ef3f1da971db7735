package notify

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func newTestHub(t *testing.T) *Hub {
	t.Helper()
	hub, err := NewHub(4)
	if err != nil {
		t.Fatalf("create hub: %v", err)
	}
	t.Cleanup(hub.Close)
	return hub
}

func waitForCount(t *testing.T, counter *atomic.Int32, want int32) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if counter.Load() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("signal count: got=%d want=%d", counter.Load(), want)
}

func TestHub_PublishReachesMatchingSubscribers(t *testing.T) {
	hub := newTestHub(t)

	var grpA, grpB, all atomic.Int32
	hub.Subscribe([]string{"grp-a"}, func() { grpA.Add(1) })
	hub.Subscribe([]string{"grp-b"}, func() { grpB.Add(1) })
	hub.SubscribeAll(func() { all.Add(1) })

	hub.Publish("grp-a")

	waitForCount(t, &grpA, 1)
	waitForCount(t, &all, 1)
	if got := grpB.Load(); got != 0 {
		t.Fatalf("grp-b subscriber signalled %d times, want 0", got)
	}
}

func TestHub_SubscriberSignalledOncePerPublish(t *testing.T) {
	hub := newTestHub(t)

	var count atomic.Int32
	hub.Subscribe([]string{"grp-a", "grp-b"}, func() { count.Add(1) })

	// Both published groups match the same subscriber.
	hub.Publish("grp-a", "grp-b")

	waitForCount(t, &count, 1)
	time.Sleep(50 * time.Millisecond)
	if got := count.Load(); got != 1 {
		t.Fatalf("subscriber signalled %d times, want 1", got)
	}
}

func TestHub_UnsubscribeStopsSignals(t *testing.T) {
	hub := newTestHub(t)

	var count atomic.Int32
	unsubscribe := hub.Subscribe([]string{"grp-a"}, func() { count.Add(1) })

	hub.Publish("grp-a")
	waitForCount(t, &count, 1)

	unsubscribe()
	unsubscribe()

	hub.Publish("grp-a")
	time.Sleep(50 * time.Millisecond)
	if got := count.Load(); got != 1 {
		t.Fatalf("subscriber signalled %d times after unsubscribe, want 1", got)
	}
}

func TestHub_PublishAfterCloseIsNoop(t *testing.T) {
	hub, err := NewHub(2)
	if err != nil {
		t.Fatalf("create hub: %v", err)
	}

	var count atomic.Int32
	hub.Subscribe([]string{"grp-a"}, func() { count.Add(1) })

	hub.Close()
	hub.Close()
	hub.Publish("grp-a")

	time.Sleep(50 * time.Millisecond)
	if got := count.Load(); got != 0 {
		t.Fatalf("subscriber signalled %d times after close, want 0", got)
	}
}

func TestHub_ConcurrentPublish(t *testing.T) {
	hub := newTestHub(t)

	var count atomic.Int32
	hub.Subscribe([]string{"grp-a"}, func() { count.Add(1) })

	const publishers = 16
	var wg sync.WaitGroup
	wg.Add(publishers)
	for i := 0; i < publishers; i++ {
		go func() {
			defer wg.Done()
			hub.Publish("grp-a")
		}()
	}
	wg.Wait()

	waitForCount(t, &count, publishers)
}
