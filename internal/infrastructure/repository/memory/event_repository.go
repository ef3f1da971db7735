package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/event"
	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/lifecycle"
)

type EventRepository struct {
	mu    sync.RWMutex
	items map[string]event.Event
}

func NewEventRepository(events []event.Event) *EventRepository {
	items := make(map[string]event.Event, len(events))
	for _, e := range events {
		items[e.ID] = e
	}

	return &EventRepository{items: items}
}

func (r *EventRepository) List(_ context.Context) ([]event.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]event.Event, 0, len(r.items))
	for _, item := range r.items {
		if item.Status.IsArchived() {
			continue
		}
		out = append(out, item)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].EventDate.Equal(out[j].EventDate) {
			return out[i].EventDate.After(out[j].EventDate)
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *EventRepository) GetByID(_ context.Context, eventID string) (event.Event, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[eventID]
	if !ok {
		return event.Event{}, false, nil
	}

	return item, true, nil
}

func (r *EventRepository) Create(_ context.Context, item event.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = item
	return nil
}

func (r *EventRepository) Update(_ context.Context, item event.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; !ok {
		return nil
	}

	r.items[item.ID] = item
	return nil
}

func (r *EventRepository) Archive(_ context.Context, eventID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[eventID]
	if !ok {
		return nil
	}

	item.Status = lifecycle.Archived
	r.items[eventID] = item
	return nil
}
