package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/event"
	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/group"
	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/hole"
	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/member"
	"github.com/TiaanKleinhans/custom-golf-events/internal/platform/cache"
)

type TrajectoryPoint struct {
	HoleID           string
	HoleName         string
	CumulativePoints int
}

type MemberStanding struct {
	MemberID    string
	MemberName  string
	TotalPoints int
	Rank        int
	Winner      bool
	Trajectory  []TrajectoryPoint
}

type Leaderboard struct {
	EventID   string
	Standings []MemberStanding
	// WinnerTie is set when more than one member shares the top rank.
	WinnerTie bool
}

type MemberTotal struct {
	MemberID    string
	MemberName  string
	TotalPoints int
	Rank        int
	Winner      bool
}

type EventResults struct {
	EventID   string
	Totals    []MemberTotal
	WinnerTie bool
}

// StandingsService derives member standings for an event from group
// scores. Every read recomputes from scratch over the current data;
// nothing is patched incrementally. A change notification only drops the
// cached copy.
type StandingsService struct {
	eventRepo  event.Repository
	holeRepo   hole.Repository
	groupRepo  group.Repository
	memberRepo member.Repository
	cache      *cache.Store
}

func NewStandingsService(
	eventRepo event.Repository,
	holeRepo hole.Repository,
	groupRepo group.Repository,
	memberRepo member.Repository,
	store *cache.Store,
) *StandingsService {
	return &StandingsService{
		eventRepo:  eventRepo,
		holeRepo:   holeRepo,
		groupRepo:  groupRepo,
		memberRepo: memberRepo,
		cache:      store,
	}
}

// InvalidateAll drops every cached standings view. Wired to the change
// feed so a score save on one client refreshes every other viewer.
func (s *StandingsService) InvalidateAll(ctx context.Context) {
	if s.cache == nil {
		return
	}
	s.cache.DeletePrefix(ctx, "standings:")
}

// Leaderboard returns per-member cumulative point trajectories across the
// event's holes in canonical order, plus ranked final totals.
func (s *StandingsService) Leaderboard(ctx context.Context, eventID string) (Leaderboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.Leaderboard")
	defer span.End()

	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return Leaderboard{}, fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}

	if s.cache == nil {
		return s.computeLeaderboard(ctx, eventID)
	}

	value, err := s.cache.GetOrLoad(ctx, "standings:"+eventID+":leaderboard", func(ctx context.Context) (any, error) {
		return s.computeLeaderboard(ctx, eventID)
	})
	if err != nil {
		return Leaderboard{}, err
	}
	board, ok := value.(Leaderboard)
	if !ok {
		return Leaderboard{}, fmt.Errorf("unexpected cached leaderboard type %T", value)
	}
	return board, nil
}

// Results returns the order-independent total-points view: every group's
// positive points are summed into each of its members, no matter which
// hole the group played. For consistent data this matches the final
// trajectory totals of Leaderboard.
func (s *StandingsService) Results(ctx context.Context, eventID string) (EventResults, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.Results")
	defer span.End()

	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return EventResults{}, fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}

	if s.cache == nil {
		return s.computeResults(ctx, eventID)
	}

	value, err := s.cache.GetOrLoad(ctx, "standings:"+eventID+":results", func(ctx context.Context) (any, error) {
		return s.computeResults(ctx, eventID)
	})
	if err != nil {
		return EventResults{}, err
	}
	results, ok := value.(EventResults)
	if !ok {
		return EventResults{}, fmt.Errorf("unexpected cached results type %T", value)
	}
	return results, nil
}

type eventScoringData struct {
	holes          []hole.Hole
	groupsByHole   map[string][]group.Group
	membersByGroup map[string][]string
	members        []member.Member
}

func (s *StandingsService) loadEventScoringData(ctx context.Context, eventID string) (eventScoringData, error) {
	_, exists, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return eventScoringData{}, fmt.Errorf("get event: %w", err)
	}
	if !exists {
		return eventScoringData{}, fmt.Errorf("%w: event=%s", ErrNotFound, eventID)
	}

	holes, err := s.holeRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return eventScoringData{}, fmt.Errorf("list holes by event: %w", err)
	}

	members, err := s.memberRepo.List(ctx)
	if err != nil {
		return eventScoringData{}, fmt.Errorf("list members: %w", err)
	}

	data := eventScoringData{
		holes:          holes,
		groupsByHole:   make(map[string][]group.Group, len(holes)),
		membersByGroup: make(map[string][]string),
		members:        members,
	}
	if len(holes) == 0 {
		return data, nil
	}

	holeIDs := make([]string, 0, len(holes))
	for _, h := range holes {
		holeIDs = append(holeIDs, h.ID)
	}

	assignments, err := s.groupRepo.ListAssignments(ctx, holeIDs)
	if err != nil {
		return eventScoringData{}, fmt.Errorf("list group assignments: %w", err)
	}
	if len(assignments) == 0 {
		return data, nil
	}

	groupIDs := make([]string, 0, len(assignments))
	seenGroups := make(map[string]struct{}, len(assignments))
	for _, a := range assignments {
		if _, exists := seenGroups[a.GroupID]; exists {
			continue
		}
		seenGroups[a.GroupID] = struct{}{}
		groupIDs = append(groupIDs, a.GroupID)
	}

	// Archived groups are silently absent here; their assignments below
	// resolve to nothing and they stop contributing points.
	groups, err := s.groupRepo.ListByIDs(ctx, groupIDs)
	if err != nil {
		return eventScoringData{}, fmt.Errorf("list groups by ids: %w", err)
	}
	groupByID := make(map[string]group.Group, len(groups))
	activeGroupIDs := make([]string, 0, len(groups))
	for _, g := range groups {
		groupByID[g.ID] = g
		activeGroupIDs = append(activeGroupIDs, g.ID)
	}

	for _, a := range assignments {
		g, exists := groupByID[a.GroupID]
		if !exists {
			continue
		}
		data.groupsByHole[a.HoleID] = append(data.groupsByHole[a.HoleID], g)
	}

	if len(activeGroupIDs) > 0 {
		memberships, err := s.groupRepo.ListMemberships(ctx, activeGroupIDs)
		if err != nil {
			return eventScoringData{}, fmt.Errorf("list memberships: %w", err)
		}
		for _, m := range memberships {
			data.membersByGroup[m.GroupID] = append(data.membersByGroup[m.GroupID], m.MemberID)
		}
	}

	return data, nil
}

func (s *StandingsService) computeLeaderboard(ctx context.Context, eventID string) (Leaderboard, error) {
	data, err := s.loadEventScoringData(ctx, eventID)
	if err != nil {
		return Leaderboard{}, err
	}

	activeMember := make(map[string]struct{}, len(data.members))
	for _, m := range data.members {
		activeMember[m.ID] = struct{}{}
	}

	cumulative := make(map[string]int, len(data.members))
	trajectories := make(map[string][]TrajectoryPoint, len(data.members))

	for _, h := range data.holes {
		// A member in several groups on the same hole is credited only
		// for the first group seen; which one wins depends on assignment
		// order and is not guaranteed.
		credited := make(map[string]struct{})
		for _, g := range data.groupsByHole[h.ID] {
			points := 0
			if g.Points != nil {
				points = *g.Points
			}
			for _, memberID := range data.membersByGroup[g.ID] {
				if _, active := activeMember[memberID]; !active {
					continue
				}
				if _, done := credited[memberID]; done {
					continue
				}
				credited[memberID] = struct{}{}
				cumulative[memberID] += points
			}
		}

		// Members without a group on this hole carry their running total
		// forward unchanged.
		for _, m := range data.members {
			trajectories[m.ID] = append(trajectories[m.ID], TrajectoryPoint{
				HoleID:           h.ID,
				HoleName:         h.Name,
				CumulativePoints: cumulative[m.ID],
			})
		}
	}

	standings := make([]MemberStanding, 0, len(data.members))
	for _, m := range data.members {
		standings = append(standings, MemberStanding{
			MemberID:    m.ID,
			MemberName:  m.Name,
			TotalPoints: cumulative[m.ID],
			Trajectory:  trajectories[m.ID],
		})
	}

	winnerTie := rankStandings(standings)
	return Leaderboard{
		EventID:   eventID,
		Standings: standings,
		WinnerTie: winnerTie,
	}, nil
}

func (s *StandingsService) computeResults(ctx context.Context, eventID string) (EventResults, error) {
	data, err := s.loadEventScoringData(ctx, eventID)
	if err != nil {
		return EventResults{}, err
	}

	activeMember := make(map[string]struct{}, len(data.members))
	for _, m := range data.members {
		activeMember[m.ID] = struct{}{}
	}

	totals := make(map[string]int, len(data.members))
	for _, groups := range data.groupsByHole {
		for _, g := range groups {
			if g.Points == nil || *g.Points <= 0 {
				continue
			}
			for _, memberID := range data.membersByGroup[g.ID] {
				if _, active := activeMember[memberID]; !active {
					continue
				}
				totals[memberID] += *g.Points
			}
		}
	}

	rows := make([]MemberTotal, 0, len(data.members))
	for _, m := range data.members {
		rows = append(rows, MemberTotal{
			MemberID:    m.ID,
			MemberName:  m.Name,
			TotalPoints: totals[m.ID],
		})
	}

	winnerTie := rankTotals(rows)
	return EventResults{
		EventID:   eventID,
		Totals:    rows,
		WinnerTie: winnerTie,
	}, nil
}

func rankStandings(items []MemberStanding) bool {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].TotalPoints != items[j].TotalPoints {
			return items[i].TotalPoints > items[j].TotalPoints
		}
		if items[i].MemberName != items[j].MemberName {
			return items[i].MemberName < items[j].MemberName
		}
		return items[i].MemberID < items[j].MemberID
	})

	lastPoints := 0
	rank := 0
	winners := 0
	for idx := range items {
		if idx == 0 || items[idx].TotalPoints != lastPoints {
			rank++
			lastPoints = items[idx].TotalPoints
		}
		items[idx].Rank = rank
		if rank == 1 {
			items[idx].Winner = true
			winners++
		}
	}
	return winners > 1
}

func rankTotals(items []MemberTotal) bool {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].TotalPoints != items[j].TotalPoints {
			return items[i].TotalPoints > items[j].TotalPoints
		}
		if items[i].MemberName != items[j].MemberName {
			return items[i].MemberName < items[j].MemberName
		}
		return items[i].MemberID < items[j].MemberID
	})

	lastPoints := 0
	rank := 0
	winners := 0
	for idx := range items {
		if idx == 0 || items[idx].TotalPoints != lastPoints {
			rank++
			lastPoints = items[idx].TotalPoints
		}
		items[idx].Rank = rank
		if rank == 1 {
			items[idx].Winner = true
			winners++
		}
	}
	return winners > 1
}
