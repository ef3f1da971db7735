package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/club"
	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/event"
	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/group"
	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/hole"
	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/lifecycle"
	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/member"
)

func intRef(v int) *int { return &v }

type seqIDGenerator struct {
	mu sync.Mutex
	n  int
}

func (g *seqIDGenerator) NewID(prefix string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("%s-%d", prefix, g.n), nil
}

type recordingPublisher struct {
	mu        sync.Mutex
	published [][]string
}

func (p *recordingPublisher) Publish(groupIDs ...string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.published = append(p.published, append([]string(nil), groupIDs...))
}

func (p *recordingPublisher) calls() [][]string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([][]string, len(p.published))
	copy(out, p.published)
	return out
}

type stubEventRepository struct {
	items map[string]event.Event
}

func newStubEventRepository(items ...event.Event) *stubEventRepository {
	repo := &stubEventRepository{items: make(map[string]event.Event)}
	for _, item := range items {
		repo.items[item.ID] = item
	}
	return repo
}

func (s *stubEventRepository) List(_ context.Context) ([]event.Event, error) {
	out := make([]event.Event, 0, len(s.items))
	for _, item := range s.items {
		if item.Status.IsArchived() {
			continue
		}
		out = append(out, item)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].EventDate.After(out[j].EventDate)
	})
	return out, nil
}

func (s *stubEventRepository) GetByID(_ context.Context, eventID string) (event.Event, bool, error) {
	item, ok := s.items[eventID]
	return item, ok, nil
}

func (s *stubEventRepository) Create(_ context.Context, item event.Event) error {
	s.items[item.ID] = item
	return nil
}

func (s *stubEventRepository) Update(_ context.Context, item event.Event) error {
	s.items[item.ID] = item
	return nil
}

func (s *stubEventRepository) Archive(_ context.Context, eventID string) error {
	item, ok := s.items[eventID]
	if !ok {
		return fmt.Errorf("event not found")
	}
	item.Status = lifecycle.Archived
	s.items[eventID] = item
	return nil
}

type stubHoleRepository struct {
	items       []hole.Hole
	clubsByHole map[string][]string
}

func newStubHoleRepository(items ...hole.Hole) *stubHoleRepository {
	return &stubHoleRepository{
		items:       append([]hole.Hole(nil), items...),
		clubsByHole: make(map[string][]string),
	}
}

func (s *stubHoleRepository) ListByEvent(_ context.Context, eventID string) ([]hole.Hole, error) {
	out := make([]hole.Hole, 0, len(s.items))
	for _, item := range s.items {
		if item.EventID != eventID || item.Status.IsArchived() {
			continue
		}
		out = append(out, item)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *stubHoleRepository) GetByID(_ context.Context, holeID string) (hole.Hole, bool, error) {
	for _, item := range s.items {
		if item.ID == holeID {
			return item, true, nil
		}
	}
	return hole.Hole{}, false, nil
}

func (s *stubHoleRepository) Create(_ context.Context, item hole.Hole) error {
	s.items = append(s.items, item)
	return nil
}

func (s *stubHoleRepository) Update(_ context.Context, item hole.Hole) error {
	for idx := range s.items {
		if s.items[idx].ID == item.ID {
			s.items[idx] = item
			return nil
		}
	}
	return fmt.Errorf("hole not found")
}

func (s *stubHoleRepository) Archive(_ context.Context, holeID string) error {
	for idx := range s.items {
		if s.items[idx].ID == holeID {
			s.items[idx].Status = lifecycle.Archived
			return nil
		}
	}
	return fmt.Errorf("hole not found")
}

func (s *stubHoleRepository) ArchiveByEvent(_ context.Context, eventID string) error {
	for idx := range s.items {
		if s.items[idx].EventID == eventID {
			s.items[idx].Status = lifecycle.Archived
		}
	}
	return nil
}

func (s *stubHoleRepository) ReplaceClubs(_ context.Context, holeID string, clubIDs []string) error {
	s.clubsByHole[holeID] = append([]string(nil), clubIDs...)
	return nil
}

func (s *stubHoleRepository) ListClubIDs(_ context.Context, holeID string) ([]string, error) {
	return append([]string(nil), s.clubsByHole[holeID]...), nil
}

type stubGroupRepository struct {
	items       map[string]group.Group
	order       []string
	assignments []group.Assignment
	memberships []group.Membership

	saveErrByGroup map[string]error
	savedOrder     []string
}

func newStubGroupRepository() *stubGroupRepository {
	return &stubGroupRepository{
		items:          make(map[string]group.Group),
		saveErrByGroup: make(map[string]error),
	}
}

func (s *stubGroupRepository) add(item group.Group, holeID string, memberIDs ...string) {
	s.items[item.ID] = item
	s.order = append(s.order, item.ID)
	if holeID != "" {
		s.assignments = append(s.assignments, group.Assignment{HoleID: holeID, GroupID: item.ID})
	}
	for _, memberID := range memberIDs {
		s.memberships = append(s.memberships, group.Membership{GroupID: item.ID, MemberID: memberID})
	}
}

func (s *stubGroupRepository) ListByHole(_ context.Context, holeID string) ([]group.Group, error) {
	out := make([]group.Group, 0)
	for _, a := range s.assignments {
		if a.HoleID != holeID {
			continue
		}
		item, ok := s.items[a.GroupID]
		if !ok || item.Status.IsArchived() {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *stubGroupRepository) ListByIDs(_ context.Context, groupIDs []string) ([]group.Group, error) {
	wanted := make(map[string]struct{}, len(groupIDs))
	for _, id := range groupIDs {
		wanted[id] = struct{}{}
	}
	out := make([]group.Group, 0, len(groupIDs))
	for _, id := range s.order {
		if _, ok := wanted[id]; !ok {
			continue
		}
		item := s.items[id]
		if item.Status.IsArchived() {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *stubGroupRepository) GetByID(_ context.Context, groupID string) (group.Group, bool, error) {
	item, ok := s.items[groupID]
	return item, ok, nil
}

func (s *stubGroupRepository) Create(_ context.Context, item group.Group) error {
	s.items[item.ID] = item
	s.order = append(s.order, item.ID)
	return nil
}

func (s *stubGroupRepository) Update(_ context.Context, item group.Group) error {
	if _, ok := s.items[item.ID]; !ok {
		return fmt.Errorf("group not found")
	}
	s.items[item.ID] = item
	return nil
}

func (s *stubGroupRepository) Archive(_ context.Context, groupID string) error {
	item, ok := s.items[groupID]
	if !ok {
		return fmt.Errorf("group not found")
	}
	item.Status = lifecycle.Archived
	s.items[groupID] = item
	return nil
}

func (s *stubGroupRepository) SaveScore(_ context.Context, groupID string, score, points *int) error {
	if err, failing := s.saveErrByGroup[groupID]; failing {
		return err
	}
	item, ok := s.items[groupID]
	if !ok {
		return fmt.Errorf("group not found")
	}
	item.Score = score
	item.Points = points
	s.items[groupID] = item
	s.savedOrder = append(s.savedOrder, groupID)
	return nil
}

func (s *stubGroupRepository) AssignToHole(_ context.Context, holeID, groupID string) error {
	s.assignments = append(s.assignments, group.Assignment{HoleID: holeID, GroupID: groupID})
	return nil
}

func (s *stubGroupRepository) RemoveFromHole(_ context.Context, holeID, groupID string) error {
	out := s.assignments[:0]
	for _, a := range s.assignments {
		if a.HoleID == holeID && a.GroupID == groupID {
			continue
		}
		out = append(out, a)
	}
	s.assignments = out
	return nil
}

func (s *stubGroupRepository) HoleByGroup(_ context.Context, groupID string) (string, bool, error) {
	for _, a := range s.assignments {
		if a.GroupID == groupID {
			return a.HoleID, true, nil
		}
	}
	return "", false, nil
}

func (s *stubGroupRepository) ListAssignments(_ context.Context, holeIDs []string) ([]group.Assignment, error) {
	wanted := make(map[string]struct{}, len(holeIDs))
	for _, id := range holeIDs {
		wanted[id] = struct{}{}
	}
	out := make([]group.Assignment, 0)
	for _, a := range s.assignments {
		if _, ok := wanted[a.HoleID]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *stubGroupRepository) ReplaceMembers(_ context.Context, groupID string, memberIDs []string) error {
	out := s.memberships[:0]
	for _, m := range s.memberships {
		if m.GroupID == groupID {
			continue
		}
		out = append(out, m)
	}
	s.memberships = out
	for _, memberID := range memberIDs {
		s.memberships = append(s.memberships, group.Membership{GroupID: groupID, MemberID: memberID})
	}
	return nil
}

func (s *stubGroupRepository) ListMemberships(_ context.Context, groupIDs []string) ([]group.Membership, error) {
	wanted := make(map[string]struct{}, len(groupIDs))
	for _, id := range groupIDs {
		wanted[id] = struct{}{}
	}
	out := make([]group.Membership, 0)
	for _, m := range s.memberships {
		if _, ok := wanted[m.GroupID]; ok {
			out = append(out, m)
		}
	}
	return out, nil
}

type stubMemberRepository struct {
	items []member.Member
}

func newStubMemberRepository(items ...member.Member) *stubMemberRepository {
	return &stubMemberRepository{items: append([]member.Member(nil), items...)}
}

func (s *stubMemberRepository) List(_ context.Context) ([]member.Member, error) {
	out := make([]member.Member, 0, len(s.items))
	for _, item := range s.items {
		if item.Status.IsArchived() {
			continue
		}
		out = append(out, item)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *stubMemberRepository) ListByIDs(_ context.Context, memberIDs []string) ([]member.Member, error) {
	wanted := make(map[string]struct{}, len(memberIDs))
	for _, id := range memberIDs {
		wanted[id] = struct{}{}
	}
	out := make([]member.Member, 0, len(memberIDs))
	for _, item := range s.items {
		if item.Status.IsArchived() {
			continue
		}
		if _, ok := wanted[item.ID]; ok {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *stubMemberRepository) GetByID(_ context.Context, memberID string) (member.Member, bool, error) {
	for _, item := range s.items {
		if item.ID == memberID {
			return item, true, nil
		}
	}
	return member.Member{}, false, nil
}

func (s *stubMemberRepository) Create(_ context.Context, item member.Member) error {
	s.items = append(s.items, item)
	return nil
}

func (s *stubMemberRepository) Update(_ context.Context, item member.Member) error {
	for idx := range s.items {
		if s.items[idx].ID == item.ID {
			s.items[idx] = item
			return nil
		}
	}
	return fmt.Errorf("member not found")
}

func (s *stubMemberRepository) Archive(_ context.Context, memberID string) error {
	for idx := range s.items {
		if s.items[idx].ID == memberID {
			s.items[idx].Status = lifecycle.Archived
			return nil
		}
	}
	return fmt.Errorf("member not found")
}

type stubClubRepository struct {
	items []club.Club
}

func newStubClubRepository(items ...club.Club) *stubClubRepository {
	return &stubClubRepository{items: append([]club.Club(nil), items...)}
}

func (s *stubClubRepository) List(_ context.Context) ([]club.Club, error) {
	out := make([]club.Club, 0, len(s.items))
	for _, item := range s.items {
		if item.Status.IsArchived() {
			continue
		}
		out = append(out, item)
	}
	sort.SliceStable(out, func(i, j int) bool {
		left, right := out[i], out[j]
		if (left.OrderBy == nil) != (right.OrderBy == nil) {
			return left.OrderBy != nil
		}
		if left.OrderBy != nil && *left.OrderBy != *right.OrderBy {
			return *left.OrderBy < *right.OrderBy
		}
		return left.Name < right.Name
	})
	return out, nil
}

func (s *stubClubRepository) ListByIDs(_ context.Context, clubIDs []string) ([]club.Club, error) {
	wanted := make(map[string]struct{}, len(clubIDs))
	for _, id := range clubIDs {
		wanted[id] = struct{}{}
	}
	out := make([]club.Club, 0, len(clubIDs))
	for _, item := range s.items {
		if item.Status.IsArchived() {
			continue
		}
		if _, ok := wanted[item.ID]; ok {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *stubClubRepository) GetByID(_ context.Context, clubID string) (club.Club, bool, error) {
	for _, item := range s.items {
		if item.ID == clubID {
			return item, true, nil
		}
	}
	return club.Club{}, false, nil
}

func (s *stubClubRepository) Create(_ context.Context, item club.Club) error {
	s.items = append(s.items, item)
	return nil
}

func (s *stubClubRepository) Update(_ context.Context, item club.Club) error {
	for idx := range s.items {
		if s.items[idx].ID == item.ID {
			s.items[idx] = item
			return nil
		}
	}
	return fmt.Errorf("club not found")
}

func (s *stubClubRepository) Archive(_ context.Context, clubID string) error {
	for idx := range s.items {
		if s.items[idx].ID == clubID {
			s.items[idx].Status = lifecycle.Archived
			return nil
		}
	}
	return fmt.Errorf("club not found")
}

func activeMemberNamed(id, name string) member.Member {
	return member.Member{ID: id, Name: name, Status: lifecycle.Active}
}

func activeHole(id, eventID, name string, createdAt time.Time) hole.Hole {
	return hole.Hole{ID: id, EventID: eventID, Name: name, Status: lifecycle.Active, CreatedAt: createdAt}
}
