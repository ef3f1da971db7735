package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/lifecycle"
	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/member"
)

type MemberRepository struct {
	mu    sync.RWMutex
	items map[string]member.Member
}

func NewMemberRepository(members []member.Member) *MemberRepository {
	items := make(map[string]member.Member, len(members))
	for _, m := range members {
		items[m.ID] = cloneMember(m)
	}

	return &MemberRepository{items: items}
}

func (r *MemberRepository) List(_ context.Context) ([]member.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]member.Member, 0, len(r.items))
	for _, item := range r.items {
		if item.Status.IsArchived() {
			continue
		}
		out = append(out, cloneMember(item))
	}

	sortMembers(out)
	return out, nil
}

func (r *MemberRepository) ListByIDs(_ context.Context, memberIDs []string) ([]member.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]member.Member, 0, len(memberIDs))
	for _, memberID := range memberIDs {
		item, ok := r.items[memberID]
		if !ok || item.Status.IsArchived() {
			continue
		}
		out = append(out, cloneMember(item))
	}

	sortMembers(out)
	return out, nil
}

func (r *MemberRepository) GetByID(_ context.Context, memberID string) (member.Member, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[memberID]
	if !ok {
		return member.Member{}, false, nil
	}

	return cloneMember(item), true, nil
}

func (r *MemberRepository) Create(_ context.Context, item member.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = cloneMember(item)
	return nil
}

func (r *MemberRepository) Update(_ context.Context, item member.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; !ok {
		return nil
	}

	r.items[item.ID] = cloneMember(item)
	return nil
}

func (r *MemberRepository) Archive(_ context.Context, memberID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[memberID]
	if !ok {
		return nil
	}

	item.Status = lifecycle.Archived
	r.items[memberID] = item
	return nil
}

func sortMembers(items []member.Member) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].ID < items[j].ID
	})
}

func cloneMember(m member.Member) member.Member {
	copied := m
	copied.Handicap = cloneIntPtr(m.Handicap)
	return copied
}
