package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/group"
	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/lifecycle"
)

type GroupRepository struct {
	mu             sync.RWMutex
	items          map[string]group.Group
	holeByGroup    map[string]string
	membersByGroup map[string][]string
}

func NewGroupRepository(groups []group.Group, assignments []group.Assignment, memberships []group.Membership) *GroupRepository {
	items := make(map[string]group.Group, len(groups))
	for _, g := range groups {
		items[g.ID] = cloneGroup(g)
	}

	holeByGroup := make(map[string]string, len(assignments))
	for _, a := range assignments {
		holeByGroup[a.GroupID] = a.HoleID
	}

	membersByGroup := make(map[string][]string)
	for _, m := range memberships {
		membersByGroup[m.GroupID] = append(membersByGroup[m.GroupID], m.MemberID)
	}

	return &GroupRepository{
		items:          items,
		holeByGroup:    holeByGroup,
		membersByGroup: membersByGroup,
	}
}

func (r *GroupRepository) ListByHole(_ context.Context, holeID string) ([]group.Group, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]group.Group, 0, len(r.items))
	for groupID, assignedHoleID := range r.holeByGroup {
		if assignedHoleID != holeID {
			continue
		}
		item, ok := r.items[groupID]
		if !ok || item.Status.IsArchived() {
			continue
		}
		out = append(out, cloneGroup(item))
	}

	sortGroups(out)
	return out, nil
}

func (r *GroupRepository) ListByIDs(_ context.Context, groupIDs []string) ([]group.Group, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]group.Group, 0, len(groupIDs))
	for _, groupID := range groupIDs {
		item, ok := r.items[groupID]
		if !ok || item.Status.IsArchived() {
			continue
		}
		out = append(out, cloneGroup(item))
	}

	sortGroups(out)
	return out, nil
}

func (r *GroupRepository) GetByID(_ context.Context, groupID string) (group.Group, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[groupID]
	if !ok {
		return group.Group{}, false, nil
	}

	return cloneGroup(item), true, nil
}

func (r *GroupRepository) Create(_ context.Context, item group.Group) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = cloneGroup(item)
	return nil
}

func (r *GroupRepository) Update(_ context.Context, item group.Group) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.items[item.ID]
	if !ok {
		return nil
	}

	current.Name = item.Name
	r.items[item.ID] = current
	return nil
}

func (r *GroupRepository) Archive(_ context.Context, groupID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[groupID]
	if !ok {
		return nil
	}

	item.Status = lifecycle.Archived
	r.items[groupID] = item
	return nil
}

func (r *GroupRepository) SaveScore(_ context.Context, groupID string, score, points *int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[groupID]
	if !ok {
		return nil
	}

	item.Score = cloneIntPtr(score)
	item.Points = cloneIntPtr(points)
	r.items[groupID] = item
	return nil
}

func (r *GroupRepository) AssignToHole(_ context.Context, holeID, groupID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.holeByGroup[groupID] = holeID
	return nil
}

func (r *GroupRepository) RemoveFromHole(_ context.Context, holeID, groupID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.holeByGroup[groupID] == holeID {
		delete(r.holeByGroup, groupID)
	}

	return nil
}

func (r *GroupRepository) HoleByGroup(_ context.Context, groupID string) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	holeID, ok := r.holeByGroup[groupID]
	return holeID, ok, nil
}

func (r *GroupRepository) ListAssignments(_ context.Context, holeIDs []string) ([]group.Assignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wanted := make(map[string]struct{}, len(holeIDs))
	for _, holeID := range holeIDs {
		wanted[holeID] = struct{}{}
	}

	out := make([]group.Assignment, 0, len(r.holeByGroup))
	for groupID, holeID := range r.holeByGroup {
		if _, ok := wanted[holeID]; !ok {
			continue
		}
		out = append(out, group.Assignment{HoleID: holeID, GroupID: groupID})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].HoleID != out[j].HoleID {
			return out[i].HoleID < out[j].HoleID
		}
		return out[i].GroupID < out[j].GroupID
	})

	return out, nil
}

func (r *GroupRepository) ReplaceMembers(_ context.Context, groupID string, memberIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.membersByGroup[groupID] = append([]string(nil), memberIDs...)
	return nil
}

func (r *GroupRepository) ListMemberships(_ context.Context, groupIDs []string) ([]group.Membership, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]group.Membership, 0, len(groupIDs))
	for _, groupID := range groupIDs {
		for _, memberID := range r.membersByGroup[groupID] {
			out = append(out, group.Membership{GroupID: groupID, MemberID: memberID})
		}
	}

	return out, nil
}

func sortGroups(items []group.Group) {
	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.Before(items[j].CreatedAt)
		}
		return items[i].ID < items[j].ID
	})
}

func cloneGroup(g group.Group) group.Group {
	copied := g
	copied.Score = cloneIntPtr(g.Score)
	copied.Points = cloneIntPtr(g.Points)
	return copied
}
