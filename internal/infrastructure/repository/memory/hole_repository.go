package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/hole"
	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/lifecycle"
)

type HoleRepository struct {
	mu          sync.RWMutex
	items       map[string]hole.Hole
	clubsByHole map[string][]string
}

func NewHoleRepository(holes []hole.Hole, clubsByHole map[string][]string) *HoleRepository {
	items := make(map[string]hole.Hole, len(holes))
	for _, h := range holes {
		items[h.ID] = h
	}

	clubs := make(map[string][]string, len(clubsByHole))
	for holeID, clubIDs := range clubsByHole {
		clubs[holeID] = append([]string(nil), clubIDs...)
	}

	return &HoleRepository{items: items, clubsByHole: clubs}
}

func (r *HoleRepository) ListByEvent(_ context.Context, eventID string) ([]hole.Hole, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]hole.Hole, 0, len(r.items))
	for _, item := range r.items {
		if item.EventID != eventID || item.Status.IsArchived() {
			continue
		}
		out = append(out, cloneHole(item))
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *HoleRepository) GetByID(_ context.Context, holeID string) (hole.Hole, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[holeID]
	if !ok {
		return hole.Hole{}, false, nil
	}

	return cloneHole(item), true, nil
}

func (r *HoleRepository) Create(_ context.Context, item hole.Hole) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = cloneHole(item)
	return nil
}

func (r *HoleRepository) Update(_ context.Context, item hole.Hole) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; !ok {
		return nil
	}

	r.items[item.ID] = cloneHole(item)
	return nil
}

func (r *HoleRepository) Archive(_ context.Context, holeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[holeID]
	if !ok {
		return nil
	}

	item.Status = lifecycle.Archived
	r.items[holeID] = item
	return nil
}

func (r *HoleRepository) ArchiveByEvent(_ context.Context, eventID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, item := range r.items {
		if item.EventID != eventID {
			continue
		}
		item.Status = lifecycle.Archived
		r.items[id] = item
	}

	return nil
}

func (r *HoleRepository) ReplaceClubs(_ context.Context, holeID string, clubIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.clubsByHole[holeID] = append([]string(nil), clubIDs...)
	return nil
}

func (r *HoleRepository) ListClubIDs(_ context.Context, holeID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.clubsByHole[holeID]...), nil
}

func cloneHole(h hole.Hole) hole.Hole {
	copied := h
	copied.Par = cloneIntPtr(h.Par)
	return copied
}
