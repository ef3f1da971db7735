package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/club"
	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/lifecycle"
)

type ClubRepository struct {
	mu    sync.RWMutex
	items map[string]club.Club
}

func NewClubRepository(clubs []club.Club) *ClubRepository {
	items := make(map[string]club.Club, len(clubs))
	for _, c := range clubs {
		items[c.ID] = cloneClub(c)
	}

	return &ClubRepository{items: items}
}

func (r *ClubRepository) List(_ context.Context) ([]club.Club, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]club.Club, 0, len(r.items))
	for _, item := range r.items {
		if item.Status.IsArchived() {
			continue
		}
		out = append(out, cloneClub(item))
	}

	sortClubs(out)
	return out, nil
}

func (r *ClubRepository) ListByIDs(_ context.Context, clubIDs []string) ([]club.Club, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]club.Club, 0, len(clubIDs))
	for _, clubID := range clubIDs {
		item, ok := r.items[clubID]
		if !ok || item.Status.IsArchived() {
			continue
		}
		out = append(out, cloneClub(item))
	}

	sortClubs(out)
	return out, nil
}

func (r *ClubRepository) GetByID(_ context.Context, clubID string) (club.Club, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[clubID]
	if !ok {
		return club.Club{}, false, nil
	}

	return cloneClub(item), true, nil
}

func (r *ClubRepository) Create(_ context.Context, item club.Club) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = cloneClub(item)
	return nil
}

func (r *ClubRepository) Update(_ context.Context, item club.Club) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; !ok {
		return nil
	}

	r.items[item.ID] = cloneClub(item)
	return nil
}

func (r *ClubRepository) Archive(_ context.Context, clubID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[clubID]
	if !ok {
		return nil
	}

	item.Status = lifecycle.Archived
	r.items[clubID] = item
	return nil
}

// sortClubs orders by explicit display order first, unordered clubs after,
// name as the tiebreak.
func sortClubs(items []club.Club) {
	sort.SliceStable(items, func(i, j int) bool {
		left, right := items[i].OrderBy, items[j].OrderBy
		switch {
		case left != nil && right != nil && *left != *right:
			return *left < *right
		case left != nil && right == nil:
			return true
		case left == nil && right != nil:
			return false
		}
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].ID < items[j].ID
	})
}

func cloneClub(c club.Club) club.Club {
	copied := c
	copied.OrderBy = cloneIntPtr(c.OrderBy)
	return copied
}
