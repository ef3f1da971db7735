package usecase

import (
	"context"
	"errors"
	"testing"
	"time"
)

func newGroupFixture() (*stubHoleRepository, *stubGroupRepository, *stubMemberRepository) {
	base := time.Date(2026, time.June, 6, 8, 0, 0, 0, time.UTC)
	holes := newStubHoleRepository(activeHole("hole-1", "evt-1", "Hole 1", base))
	groups := newStubGroupRepository()
	members := newStubMemberRepository(
		activeMemberNamed("mbr-alice", "Alice"),
		activeMemberNamed("mbr-bob", "Bob"),
		activeMemberNamed("mbr-cara", "Cara"),
	)
	return holes, groups, members
}

func TestGroupService_CreateGroup(t *testing.T) {
	t.Parallel()

	holes, groups, members := newGroupFixture()
	publisher := &recordingPublisher{}
	service := NewGroupService(holes, groups, members, publisher, &seqIDGenerator{})

	created, err := service.CreateGroup(context.Background(), CreateGroupInput{
		HoleID:    "hole-1",
		Name:      "Fourball A",
		MemberIDs: []string{"mbr-alice", "mbr-bob"},
	})
	if err != nil {
		t.Fatalf("CreateGroup error: %v", err)
	}
	if created.ID == "" || created.Name != "Fourball A" {
		t.Fatalf("unexpected group: %+v", created)
	}

	holeID, assigned, err := groups.HoleByGroup(context.Background(), created.ID)
	if err != nil || !assigned || holeID != "hole-1" {
		t.Fatalf("group not assigned to hole: holeID=%s assigned=%t err=%v", holeID, assigned, err)
	}

	memberships, err := groups.ListMemberships(context.Background(), []string{created.ID})
	if err != nil || len(memberships) != 2 {
		t.Fatalf("unexpected memberships: %+v err=%v", memberships, err)
	}

	if calls := publisher.calls(); len(calls) != 1 || len(calls[0]) != 1 || calls[0][0] != created.ID {
		t.Fatalf("expected one publish for the new group, got %+v", calls)
	}
}

func TestGroupService_CreateGroup_MemberAlreadyOnHole(t *testing.T) {
	t.Parallel()

	holes, groups, members := newGroupFixture()
	groups.add(activeGroup("grp-1", "Fourball A", nil, nil), "hole-1", "mbr-alice")

	service := NewGroupService(holes, groups, members, nil, &seqIDGenerator{})

	_, err := service.CreateGroup(context.Background(), CreateGroupInput{
		HoleID:    "hole-1",
		Name:      "Fourball B",
		MemberIDs: []string{"mbr-alice", "mbr-bob"},
	})
	if !errors.Is(err, ErrMemberUnavailable) {
		t.Fatalf("expected ErrMemberUnavailable, got %v", err)
	}
}

func TestGroupService_UpdateGroup_ReplacesMembersWithAvailabilityCheck(t *testing.T) {
	t.Parallel()

	holes, groups, members := newGroupFixture()
	groups.add(activeGroup("grp-1", "Fourball A", nil, nil), "hole-1", "mbr-alice")
	groups.add(activeGroup("grp-2", "Fourball B", nil, nil), "hole-1", "mbr-bob")

	service := NewGroupService(holes, groups, members, nil, &seqIDGenerator{})

	// Swapping within the same group is fine.
	if _, err := service.UpdateGroup(context.Background(), UpdateGroupInput{
		GroupID:   "grp-1",
		Name:      "Fourball A",
		MemberIDs: []string{"mbr-alice", "mbr-cara"},
	}); err != nil {
		t.Fatalf("UpdateGroup error: %v", err)
	}

	// Pulling in a member of the other group is not.
	_, err := service.UpdateGroup(context.Background(), UpdateGroupInput{
		GroupID:   "grp-1",
		Name:      "Fourball A",
		MemberIDs: []string{"mbr-alice", "mbr-bob"},
	})
	if !errors.Is(err, ErrMemberUnavailable) {
		t.Fatalf("expected ErrMemberUnavailable, got %v", err)
	}
}

func TestGroupService_UpdateGroup_NilMembersLeavesSetUntouched(t *testing.T) {
	t.Parallel()

	holes, groups, members := newGroupFixture()
	groups.add(activeGroup("grp-1", "Fourball A", nil, nil), "hole-1", "mbr-alice")

	service := NewGroupService(holes, groups, members, nil, &seqIDGenerator{})

	updated, err := service.UpdateGroup(context.Background(), UpdateGroupInput{
		GroupID: "grp-1",
		Name:    "Renamed",
	})
	if err != nil {
		t.Fatalf("UpdateGroup error: %v", err)
	}
	if updated.Name != "Renamed" {
		t.Fatalf("unexpected name: %s", updated.Name)
	}

	memberships, _ := groups.ListMemberships(context.Background(), []string{"grp-1"})
	if len(memberships) != 1 || memberships[0].MemberID != "mbr-alice" {
		t.Fatalf("member set must be untouched: %+v", memberships)
	}
}

func TestGroupService_ArchiveGroup_DetachesFromHole(t *testing.T) {
	t.Parallel()

	holes, groups, members := newGroupFixture()
	groups.add(activeGroup("grp-1", "Fourball A", intRef(3), intRef(4)), "hole-1", "mbr-alice")

	publisher := &recordingPublisher{}
	service := NewGroupService(holes, groups, members, publisher, &seqIDGenerator{})

	if err := service.ArchiveGroup(context.Background(), "grp-1"); err != nil {
		t.Fatalf("ArchiveGroup error: %v", err)
	}

	if _, assigned, _ := groups.HoleByGroup(context.Background(), "grp-1"); assigned {
		t.Fatal("archived group must be detached from its hole")
	}
	item, _, _ := groups.GetByID(context.Background(), "grp-1")
	if !item.Status.IsArchived() {
		t.Fatalf("group not archived: %+v", item)
	}
	if onHole, _ := groups.ListByHole(context.Background(), "hole-1"); len(onHole) != 0 {
		t.Fatalf("archived group still listed on hole: %+v", onHole)
	}
	if calls := publisher.calls(); len(calls) != 1 {
		t.Fatalf("expected one publish, got %+v", calls)
	}
}

func TestGroupService_CreateGroup_UnknownMember(t *testing.T) {
	t.Parallel()

	holes, groups, members := newGroupFixture()
	service := NewGroupService(holes, groups, members, nil, &seqIDGenerator{})

	_, err := service.CreateGroup(context.Background(), CreateGroupInput{
		HoleID:    "hole-1",
		Name:      "Fourball A",
		MemberIDs: []string{"mbr-alice", "mbr-ghost"},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
