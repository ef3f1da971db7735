// Package notify is an in-process change feed keyed by group ID.
// Publishers emit the IDs of groups whose data changed; subscribers get
// a payload-free signal and recompute whatever they derive from group
// state. Delivery is asynchronous and at-least-once per Publish call.
package notify

import (
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
)

type subscriber struct {
	groupIDs map[string]struct{}
	all      bool
	fn       func()
}

// Hub fans change signals out to subscribers on a bounded worker pool.
type Hub struct {
	mu     sync.RWMutex
	subs   map[uint64]*subscriber
	nextID uint64
	closed bool

	pool *ants.Pool
}

func NewHub(workers int) (*Hub, error) {
	if workers <= 0 {
		workers = 1
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("create notify worker pool: %w", err)
	}
	return &Hub{
		subs: make(map[uint64]*subscriber),
		pool: pool,
	}, nil
}

// Subscribe registers fn for changes to any of the given groups. The
// returned function removes the subscription; calling it more than once
// is safe.
func (h *Hub) Subscribe(groupIDs []string, fn func()) func() {
	if fn == nil {
		return func() {}
	}

	ids := make(map[string]struct{}, len(groupIDs))
	for _, id := range groupIDs {
		if id == "" {
			continue
		}
		ids[id] = struct{}{}
	}

	return h.register(&subscriber{groupIDs: ids, fn: fn})
}

// SubscribeAll registers fn for every change regardless of group.
func (h *Hub) SubscribeAll(fn func()) func() {
	if fn == nil {
		return func() {}
	}
	return h.register(&subscriber{all: true, fn: fn})
}

func (h *Hub) register(sub *subscriber) func() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return func() {}
	}
	id := h.nextID
	h.nextID++
	h.subs[id] = sub
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
		})
	}
}

// Publish signals every subscriber watching any of the given groups.
// Callbacks run on the pool; a subscriber watching several of the
// published groups is signalled once.
func (h *Hub) Publish(groupIDs ...string) {
	h.mu.RLock()
	if h.closed {
		h.mu.RUnlock()
		return
	}

	var targets []func()
	for _, sub := range h.subs {
		if sub.matches(groupIDs) {
			targets = append(targets, sub.fn)
		}
	}
	h.mu.RUnlock()

	for _, fn := range targets {
		fn := fn
		if err := h.pool.Submit(fn); err != nil {
			// Pool is released only on Close; a failed submit at that
			// point means the signal is intentionally dropped.
			return
		}
	}
}

func (sub *subscriber) matches(groupIDs []string) bool {
	if sub.all {
		return true
	}
	for _, id := range groupIDs {
		if _, ok := sub.groupIDs[id]; ok {
			return true
		}
	}
	return false
}

// Close drops all subscribers and releases the worker pool. Publish
// after Close is a no-op.
func (h *Hub) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	h.subs = make(map[uint64]*subscriber)
	h.mu.Unlock()

	h.pool.Release()
}
