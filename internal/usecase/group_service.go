package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/group"
	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/hole"
	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/lifecycle"
	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/member"
	idgen "github.com/TiaanKleinhans/custom-golf-events/internal/platform/id"
)

// ChangePublisher signals which groups changed so that derived views
// (cached standings, live streams, webhooks) recompute.
type ChangePublisher interface {
	Publish(groupIDs ...string)
}

type noopPublisher struct{}

func (noopPublisher) Publish(...string) {}

type CreateGroupInput struct {
	HoleID    string
	Name      string
	MemberIDs []string
}

type UpdateGroupInput struct {
	GroupID string
	Name    string
	// MemberIDs nil leaves the member set untouched; an empty slice
	// clears it.
	MemberIDs []string
}

type GroupService struct {
	holeRepo   hole.Repository
	groupRepo  group.Repository
	memberRepo member.Repository
	publisher  ChangePublisher
	idGen      idgen.Generator
	now        func() time.Time
}

func NewGroupService(
	holeRepo hole.Repository,
	groupRepo group.Repository,
	memberRepo member.Repository,
	publisher ChangePublisher,
	idGen idgen.Generator,
) *GroupService {
	if publisher == nil {
		publisher = noopPublisher{}
	}
	return &GroupService{
		holeRepo:   holeRepo,
		groupRepo:  groupRepo,
		memberRepo: memberRepo,
		publisher:  publisher,
		idGen:      idGen,
		now:        time.Now,
	}
}

func (s *GroupService) ListGroupsByHole(ctx context.Context, holeID string) ([]group.Group, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GroupService.ListGroupsByHole")
	defer span.End()

	holeID = strings.TrimSpace(holeID)
	if holeID == "" {
		return nil, fmt.Errorf("%w: hole id is required", ErrInvalidInput)
	}

	_, exists, err := s.holeRepo.GetByID(ctx, holeID)
	if err != nil {
		return nil, fmt.Errorf("get hole: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: hole=%s", ErrNotFound, holeID)
	}

	items, err := s.groupRepo.ListByHole(ctx, holeID)
	if err != nil {
		return nil, fmt.Errorf("list groups by hole: %w", err)
	}

	return items, nil
}

func (s *GroupService) GetGroup(ctx context.Context, groupID string) (group.Group, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GroupService.GetGroup")
	defer span.End()

	groupID = strings.TrimSpace(groupID)
	if groupID == "" {
		return group.Group{}, fmt.Errorf("%w: group id is required", ErrInvalidInput)
	}

	item, exists, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return group.Group{}, fmt.Errorf("get group: %w", err)
	}
	if !exists {
		return group.Group{}, fmt.Errorf("%w: group=%s", ErrNotFound, groupID)
	}

	return item, nil
}

func (s *GroupService) ListGroupMembers(ctx context.Context, groupID string) ([]member.Member, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GroupService.ListGroupMembers")
	defer span.End()

	groupID = strings.TrimSpace(groupID)
	if groupID == "" {
		return nil, fmt.Errorf("%w: group id is required", ErrInvalidInput)
	}

	_, exists, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("get group: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: group=%s", ErrNotFound, groupID)
	}

	memberships, err := s.groupRepo.ListMemberships(ctx, []string{groupID})
	if err != nil {
		return nil, fmt.Errorf("list group memberships: %w", err)
	}
	if len(memberships) == 0 {
		return []member.Member{}, nil
	}

	memberIDs := make([]string, 0, len(memberships))
	for _, m := range memberships {
		memberIDs = append(memberIDs, m.MemberID)
	}

	members, err := s.memberRepo.ListByIDs(ctx, memberIDs)
	if err != nil {
		return nil, fmt.Errorf("list members by ids: %w", err)
	}

	return members, nil
}

func (s *GroupService) CreateGroup(ctx context.Context, input CreateGroupInput) (group.Group, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GroupService.CreateGroup")
	defer span.End()

	input.HoleID = strings.TrimSpace(input.HoleID)
	input.Name = strings.TrimSpace(input.Name)
	input.MemberIDs = dedupeIDs(input.MemberIDs)
	if input.HoleID == "" {
		return group.Group{}, fmt.Errorf("%w: hole id is required", ErrInvalidInput)
	}
	if input.Name == "" {
		return group.Group{}, fmt.Errorf("%w: group name is required", ErrInvalidInput)
	}

	holeItem, exists, err := s.holeRepo.GetByID(ctx, input.HoleID)
	if err != nil {
		return group.Group{}, fmt.Errorf("get hole: %w", err)
	}
	if !exists || holeItem.Status.IsArchived() {
		return group.Group{}, fmt.Errorf("%w: hole=%s", ErrNotFound, input.HoleID)
	}

	if err := s.validateMembersExist(ctx, input.MemberIDs); err != nil {
		return group.Group{}, err
	}
	if err := s.checkMembersAvailable(ctx, input.HoleID, "", input.MemberIDs); err != nil {
		return group.Group{}, err
	}

	groupID, err := s.idGen.NewID("grp")
	if err != nil {
		return group.Group{}, fmt.Errorf("generate group id: %w", err)
	}

	created := group.Group{
		ID:        groupID,
		Name:      input.Name,
		Status:    lifecycle.Active,
		CreatedAt: s.now().UTC(),
	}
	if err := s.groupRepo.Create(ctx, created); err != nil {
		return group.Group{}, fmt.Errorf("create group: %w", err)
	}
	if err := s.groupRepo.AssignToHole(ctx, input.HoleID, groupID); err != nil {
		return group.Group{}, fmt.Errorf("assign group to hole: %w", err)
	}
	if len(input.MemberIDs) > 0 {
		if err := s.groupRepo.ReplaceMembers(ctx, groupID, input.MemberIDs); err != nil {
			return group.Group{}, fmt.Errorf("set group members: %w", err)
		}
	}

	s.publisher.Publish(groupID)
	return created, nil
}

func (s *GroupService) UpdateGroup(ctx context.Context, input UpdateGroupInput) (group.Group, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GroupService.UpdateGroup")
	defer span.End()

	input.GroupID = strings.TrimSpace(input.GroupID)
	input.Name = strings.TrimSpace(input.Name)
	if input.GroupID == "" {
		return group.Group{}, fmt.Errorf("%w: group id is required", ErrInvalidInput)
	}
	if input.Name == "" {
		return group.Group{}, fmt.Errorf("%w: group name is required", ErrInvalidInput)
	}

	item, exists, err := s.groupRepo.GetByID(ctx, input.GroupID)
	if err != nil {
		return group.Group{}, fmt.Errorf("get group: %w", err)
	}
	if !exists || item.Status.IsArchived() {
		return group.Group{}, fmt.Errorf("%w: group=%s", ErrNotFound, input.GroupID)
	}

	if input.MemberIDs != nil {
		memberIDs := dedupeIDs(input.MemberIDs)
		if err := s.validateMembersExist(ctx, memberIDs); err != nil {
			return group.Group{}, err
		}

		holeID, assigned, err := s.groupRepo.HoleByGroup(ctx, input.GroupID)
		if err != nil {
			return group.Group{}, fmt.Errorf("resolve hole for group: %w", err)
		}
		if assigned {
			if err := s.checkMembersAvailable(ctx, holeID, input.GroupID, memberIDs); err != nil {
				return group.Group{}, err
			}
		}

		if err := s.groupRepo.ReplaceMembers(ctx, input.GroupID, memberIDs); err != nil {
			return group.Group{}, fmt.Errorf("replace group members: %w", err)
		}
	}

	item.Name = input.Name
	if err := s.groupRepo.Update(ctx, item); err != nil {
		return group.Group{}, fmt.Errorf("update group: %w", err)
	}

	s.publisher.Publish(input.GroupID)
	return item, nil
}

// ArchiveGroup soft deletes the group and detaches it from its hole so
// the hole's points recompute without it.
func (s *GroupService) ArchiveGroup(ctx context.Context, groupID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.GroupService.ArchiveGroup")
	defer span.End()

	groupID = strings.TrimSpace(groupID)
	if groupID == "" {
		return fmt.Errorf("%w: group id is required", ErrInvalidInput)
	}

	_, exists, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return fmt.Errorf("get group: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: group=%s", ErrNotFound, groupID)
	}

	holeID, assigned, err := s.groupRepo.HoleByGroup(ctx, groupID)
	if err != nil {
		return fmt.Errorf("resolve hole for group: %w", err)
	}
	if assigned {
		if err := s.groupRepo.RemoveFromHole(ctx, holeID, groupID); err != nil {
			return fmt.Errorf("detach group from hole: %w", err)
		}
	}
	if err := s.groupRepo.Archive(ctx, groupID); err != nil {
		return fmt.Errorf("archive group: %w", err)
	}

	s.publisher.Publish(groupID)
	return nil
}

func (s *GroupService) validateMembersExist(ctx context.Context, memberIDs []string) error {
	if len(memberIDs) == 0 {
		return nil
	}
	members, err := s.memberRepo.ListByIDs(ctx, memberIDs)
	if err != nil {
		return fmt.Errorf("list members by ids: %w", err)
	}
	if len(members) != len(memberIDs) {
		return fmt.Errorf("%w: one or more members do not exist", ErrInvalidInput)
	}
	return nil
}

// checkMembersAvailable rejects members already playing the hole in
// another active group. excludeGroupID skips the group being edited.
func (s *GroupService) checkMembersAvailable(ctx context.Context, holeID, excludeGroupID string, memberIDs []string) error {
	if len(memberIDs) == 0 {
		return nil
	}

	groups, err := s.groupRepo.ListByHole(ctx, holeID)
	if err != nil {
		return fmt.Errorf("list groups by hole for availability: %w", err)
	}

	otherGroupIDs := make([]string, 0, len(groups))
	for _, g := range groups {
		if g.ID == excludeGroupID {
			continue
		}
		otherGroupIDs = append(otherGroupIDs, g.ID)
	}
	if len(otherGroupIDs) == 0 {
		return nil
	}

	memberships, err := s.groupRepo.ListMemberships(ctx, otherGroupIDs)
	if err != nil {
		return fmt.Errorf("list memberships for availability: %w", err)
	}

	taken := make(map[string]struct{}, len(memberships))
	for _, m := range memberships {
		taken[m.MemberID] = struct{}{}
	}
	for _, memberID := range memberIDs {
		if _, exists := taken[memberID]; exists {
			return fmt.Errorf("%w: member=%s already plays hole=%s in another group", ErrMemberUnavailable, memberID, holeID)
		}
	}

	return nil
}
