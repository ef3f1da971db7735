package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/event"
	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/group"
	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/lifecycle"
)

func activeGroup(id, name string, score, points *int) group.Group {
	return group.Group{ID: id, Name: name, Score: score, Points: points, Status: lifecycle.Active}
}

func standingByMember(t *testing.T, board Leaderboard, memberID string) MemberStanding {
	t.Helper()
	for _, item := range board.Standings {
		if item.MemberID == memberID {
			return item
		}
	}
	t.Fatalf("member %s not in standings: %+v", memberID, board.Standings)
	return MemberStanding{}
}

func newStandingsFixture() (*stubEventRepository, *stubHoleRepository, *stubGroupRepository, *stubMemberRepository) {
	base := time.Date(2026, time.June, 6, 8, 0, 0, 0, time.UTC)
	events := newStubEventRepository(event.Event{ID: "evt-1", Name: "Summer Outing", EventDate: base, Status: lifecycle.Active})
	holes := newStubHoleRepository(
		activeHole("hole-1", "evt-1", "Hole 1", base),
		activeHole("hole-2", "evt-1", "Hole 2", base.Add(time.Minute)),
		activeHole("hole-3", "evt-1", "Hole 3", base.Add(2*time.Minute)),
	)
	groups := newStubGroupRepository()
	members := newStubMemberRepository(
		activeMemberNamed("mbr-alice", "Alice"),
		activeMemberNamed("mbr-bob", "Bob"),
		activeMemberNamed("mbr-cara", "Cara"),
	)
	return events, holes, groups, members
}

func TestStandingsService_Leaderboard_CarriesForwardBetweenHoles(t *testing.T) {
	t.Parallel()

	events, holes, groups, members := newStandingsFixture()

	// Alice plays holes 1 and 3, sitting out hole 2.
	groups.add(activeGroup("grp-1", "Early birds", intRef(4), intRef(2)), "hole-1", "mbr-alice")
	groups.add(activeGroup("grp-2", "Bob solo", intRef(3), intRef(4)), "hole-2", "mbr-bob")
	groups.add(activeGroup("grp-3", "Closers", intRef(5), intRef(3)), "hole-3", "mbr-alice")

	service := NewStandingsService(events, holes, groups, members, nil)
	board, err := service.Leaderboard(context.Background(), "evt-1")
	if err != nil {
		t.Fatalf("Leaderboard error: %v", err)
	}

	alice := standingByMember(t, board, "mbr-alice")
	if len(alice.Trajectory) != 3 {
		t.Fatalf("expected 3 trajectory points, got %d", len(alice.Trajectory))
	}
	wantCumulative := []int{2, 2, 5}
	for idx, want := range wantCumulative {
		if got := alice.Trajectory[idx].CumulativePoints; got != want {
			t.Fatalf("trajectory[%d]: got=%d want=%d", idx, got, want)
		}
	}
	if alice.TotalPoints != 5 {
		t.Fatalf("unexpected total: got=%d want=5", alice.TotalPoints)
	}
}

func TestStandingsService_Leaderboard_TotalsMatchFinalTrajectory(t *testing.T) {
	t.Parallel()

	events, holes, groups, members := newStandingsFixture()

	groups.add(activeGroup("grp-1", "A", intRef(3), intRef(4)), "hole-1", "mbr-alice", "mbr-bob")
	groups.add(activeGroup("grp-2", "B", intRef(5), intRef(3)), "hole-1", "mbr-cara")
	groups.add(activeGroup("grp-3", "C", intRef(4), intRef(4)), "hole-2", "mbr-cara")
	groups.add(activeGroup("grp-4", "D", intRef(6), intRef(3)), "hole-2", "mbr-alice")

	service := NewStandingsService(events, holes, groups, members, nil)

	board, err := service.Leaderboard(context.Background(), "evt-1")
	if err != nil {
		t.Fatalf("Leaderboard error: %v", err)
	}
	results, err := service.Results(context.Background(), "evt-1")
	if err != nil {
		t.Fatalf("Results error: %v", err)
	}

	totalsFromResults := make(map[string]int, len(results.Totals))
	for _, row := range results.Totals {
		totalsFromResults[row.MemberID] = row.TotalPoints
	}
	for _, item := range board.Standings {
		last := 0
		if len(item.Trajectory) > 0 {
			last = item.Trajectory[len(item.Trajectory)-1].CumulativePoints
		}
		if last != item.TotalPoints {
			t.Fatalf("member %s: trajectory end=%d total=%d", item.MemberID, last, item.TotalPoints)
		}
		if totalsFromResults[item.MemberID] != item.TotalPoints {
			t.Fatalf("member %s: results total=%d leaderboard total=%d",
				item.MemberID, totalsFromResults[item.MemberID], item.TotalPoints)
		}
	}
}

func TestStandingsService_Leaderboard_JointWinnersFlagged(t *testing.T) {
	t.Parallel()

	events, holes, groups, members := newStandingsFixture()

	groups.add(activeGroup("grp-1", "A", intRef(3), intRef(4)), "hole-1", "mbr-alice")
	groups.add(activeGroup("grp-2", "B", intRef(3), intRef(4)), "hole-1", "mbr-bob")
	groups.add(activeGroup("grp-3", "C", intRef(6), intRef(2)), "hole-1", "mbr-cara")

	service := NewStandingsService(events, holes, groups, members, nil)
	board, err := service.Leaderboard(context.Background(), "evt-1")
	if err != nil {
		t.Fatalf("Leaderboard error: %v", err)
	}

	if !board.WinnerTie {
		t.Fatal("expected winner tie to be flagged")
	}
	alice := standingByMember(t, board, "mbr-alice")
	bob := standingByMember(t, board, "mbr-bob")
	cara := standingByMember(t, board, "mbr-cara")
	if !alice.Winner || !bob.Winner {
		t.Fatalf("expected both joint winners flagged: alice=%+v bob=%+v", alice, bob)
	}
	if alice.Rank != 1 || bob.Rank != 1 {
		t.Fatalf("expected shared rank 1: alice=%d bob=%d", alice.Rank, bob.Rank)
	}
	if cara.Winner || cara.Rank != 2 {
		t.Fatalf("unexpected third member ranking: %+v", cara)
	}
}

func TestStandingsService_Leaderboard_DoubleMembershipCreditedOnce(t *testing.T) {
	t.Parallel()

	events, holes, groups, members := newStandingsFixture()

	// Alice appears in two groups on the same hole; only the first
	// assignment credits her.
	groups.add(activeGroup("grp-1", "A", intRef(3), intRef(4)), "hole-1", "mbr-alice")
	groups.add(activeGroup("grp-2", "B", intRef(4), intRef(3)), "hole-1", "mbr-alice", "mbr-bob")

	service := NewStandingsService(events, holes, groups, members, nil)
	board, err := service.Leaderboard(context.Background(), "evt-1")
	if err != nil {
		t.Fatalf("Leaderboard error: %v", err)
	}

	alice := standingByMember(t, board, "mbr-alice")
	if alice.TotalPoints != 4 {
		t.Fatalf("expected single credit of 4, got %d", alice.TotalPoints)
	}
	bob := standingByMember(t, board, "mbr-bob")
	if bob.TotalPoints != 3 {
		t.Fatalf("unexpected total for second group member: %d", bob.TotalPoints)
	}
}

func TestStandingsService_EmptyEventIsNotAnError(t *testing.T) {
	t.Parallel()

	events, holes, groups, _ := newStandingsFixture()
	members := newStubMemberRepository()

	service := NewStandingsService(events, holes, groups, members, nil)

	board, err := service.Leaderboard(context.Background(), "evt-1")
	if err != nil {
		t.Fatalf("Leaderboard error: %v", err)
	}
	if len(board.Standings) != 0 || board.WinnerTie {
		t.Fatalf("expected empty standings, got %+v", board)
	}

	results, err := service.Results(context.Background(), "evt-1")
	if err != nil {
		t.Fatalf("Results error: %v", err)
	}
	if len(results.Totals) != 0 {
		t.Fatalf("expected empty totals, got %+v", results.Totals)
	}
}

func TestStandingsService_MembersWithoutGroupsAppearAtZero(t *testing.T) {
	t.Parallel()

	events, holes, groups, members := newStandingsFixture()
	groups.add(activeGroup("grp-1", "A", intRef(3), intRef(4)), "hole-1", "mbr-alice")

	service := NewStandingsService(events, holes, groups, members, nil)
	results, err := service.Results(context.Background(), "evt-1")
	if err != nil {
		t.Fatalf("Results error: %v", err)
	}

	totals := make(map[string]int, len(results.Totals))
	for _, row := range results.Totals {
		totals[row.MemberID] = row.TotalPoints
	}
	if totals["mbr-alice"] != 4 {
		t.Fatalf("unexpected scored member total: %d", totals["mbr-alice"])
	}
	if got, ok := totals["mbr-bob"]; !ok || got != 0 {
		t.Fatalf("expected idle member at 0, got=%d present=%t", got, ok)
	}
	if got, ok := totals["mbr-cara"]; !ok || got != 0 {
		t.Fatalf("expected idle member at 0, got=%d present=%t", got, ok)
	}
}

func TestStandingsService_LeaderboardIsIdempotent(t *testing.T) {
	t.Parallel()

	events, holes, groups, members := newStandingsFixture()
	groups.add(activeGroup("grp-1", "A", intRef(3), intRef(4)), "hole-1", "mbr-alice")
	groups.add(activeGroup("grp-2", "B", intRef(5), intRef(3)), "hole-2", "mbr-bob")

	service := NewStandingsService(events, holes, groups, members, nil)

	first, err := service.Leaderboard(context.Background(), "evt-1")
	if err != nil {
		t.Fatalf("first Leaderboard error: %v", err)
	}
	second, err := service.Leaderboard(context.Background(), "evt-1")
	if err != nil {
		t.Fatalf("second Leaderboard error: %v", err)
	}

	if len(first.Standings) != len(second.Standings) {
		t.Fatalf("standings length changed between reads: %d vs %d", len(first.Standings), len(second.Standings))
	}
	for idx := range first.Standings {
		left, right := first.Standings[idx], second.Standings[idx]
		if left.MemberID != right.MemberID || left.TotalPoints != right.TotalPoints || left.Rank != right.Rank {
			t.Fatalf("standings changed between reads: %+v vs %+v", left, right)
		}
	}
}

func TestStandingsService_UnknownEvent(t *testing.T) {
	t.Parallel()

	events, holes, groups, members := newStandingsFixture()
	service := NewStandingsService(events, holes, groups, members, nil)

	_, err := service.Leaderboard(context.Background(), "evt-missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
