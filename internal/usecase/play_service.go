package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/group"
	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/hole"
	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/member"
	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/scoring"
)

type HoleScoreInput struct {
	GroupID string
	// Score nil clears the group's result for the hole.
	Score *int
}

type SaveHoleScoresInput struct {
	HoleID string
	Scores []HoleScoreInput
}

type ScoreboardRow struct {
	GroupID   string
	GroupName string
	Members   []member.Member
	Score     *int
	Points    *int
}

type HoleScoreboard struct {
	HoleID   string
	HoleName string
	Rows     []ScoreboardRow
}

// PlayService is the score-entry surface. Saving scores for a hole always
// reprices the whole hole: every active group's points are rederived from
// the full score set and written back alongside the raw scores.
type PlayService struct {
	holeRepo   hole.Repository
	groupRepo  group.Repository
	memberRepo member.Repository
	publisher  ChangePublisher
	now        func() time.Time
}

func NewPlayService(
	holeRepo hole.Repository,
	groupRepo group.Repository,
	memberRepo member.Repository,
	publisher ChangePublisher,
) *PlayService {
	if publisher == nil {
		publisher = noopPublisher{}
	}
	return &PlayService{
		holeRepo:   holeRepo,
		groupRepo:  groupRepo,
		memberRepo: memberRepo,
		publisher:  publisher,
		now:        time.Now,
	}
}

func (s *PlayService) SaveHoleScores(ctx context.Context, input SaveHoleScoresInput) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayService.SaveHoleScores")
	defer span.End()

	input.HoleID = strings.TrimSpace(input.HoleID)
	if input.HoleID == "" {
		return fmt.Errorf("%w: hole id is required", ErrInvalidInput)
	}

	holeItem, exists, err := s.holeRepo.GetByID(ctx, input.HoleID)
	if err != nil {
		return fmt.Errorf("get hole: %w", err)
	}
	if !exists || holeItem.Status.IsArchived() {
		return fmt.Errorf("%w: hole=%s", ErrNotFound, input.HoleID)
	}

	groups, err := s.groupRepo.ListByHole(ctx, input.HoleID)
	if err != nil {
		return fmt.Errorf("list groups by hole: %w", err)
	}

	onHole := make(map[string]struct{}, len(groups))
	scoreByGroup := make(map[string]*int, len(groups))
	for _, g := range groups {
		onHole[g.ID] = struct{}{}
		scoreByGroup[g.ID] = g.Score
	}

	// Request entries overlay the stored scores; groups not mentioned
	// keep what they had.
	for _, entry := range input.Scores {
		groupID := strings.TrimSpace(entry.GroupID)
		if groupID == "" {
			return fmt.Errorf("%w: score entry is missing a group id", ErrInvalidInput)
		}
		if _, assigned := onHole[groupID]; !assigned {
			return fmt.Errorf("%w: group=%s is not on hole=%s", ErrInvalidInput, groupID, input.HoleID)
		}
		if entry.Score != nil && !scoring.ValidScore(*entry.Score) {
			return fmt.Errorf("%w: group=%s score=%d, want %d..%d",
				scoring.ErrScoreOutOfRange, groupID, *entry.Score, scoring.MinScore, scoring.MaxScore)
		}
		scoreByGroup[groupID] = entry.Score
	}

	entries := make([]scoring.Entry, 0, len(groups))
	for _, g := range groups {
		entries = append(entries, scoring.Entry{GroupID: g.ID, Score: scoreByGroup[g.ID]})
	}
	points, err := scoring.CalculatePoints(entries)
	if err != nil {
		return fmt.Errorf("calculate points for hole=%s: %w", input.HoleID, err)
	}

	// Persist group by group. On the first failure the remaining writes
	// are abandoned and the error names the group, leaving already
	// written groups in place; the next save reprices everything again.
	for _, g := range groups {
		score := scoreByGroup[g.ID]
		var pts *int
		if score != nil {
			value := points[g.ID]
			pts = &value
		}
		if err := s.groupRepo.SaveScore(ctx, g.ID, score, pts); err != nil {
			return fmt.Errorf("save score for group=%s on hole=%s: %w", g.ID, input.HoleID, err)
		}
	}

	groupIDs := make([]string, 0, len(groups))
	for _, g := range groups {
		groupIDs = append(groupIDs, g.ID)
	}
	s.publisher.Publish(groupIDs...)

	return nil
}

func (s *PlayService) GetHoleScoreboard(ctx context.Context, holeID string) (HoleScoreboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayService.GetHoleScoreboard")
	defer span.End()

	holeID = strings.TrimSpace(holeID)
	if holeID == "" {
		return HoleScoreboard{}, fmt.Errorf("%w: hole id is required", ErrInvalidInput)
	}

	holeItem, exists, err := s.holeRepo.GetByID(ctx, holeID)
	if err != nil {
		return HoleScoreboard{}, fmt.Errorf("get hole: %w", err)
	}
	if !exists {
		return HoleScoreboard{}, fmt.Errorf("%w: hole=%s", ErrNotFound, holeID)
	}

	groups, err := s.groupRepo.ListByHole(ctx, holeID)
	if err != nil {
		return HoleScoreboard{}, fmt.Errorf("list groups by hole: %w", err)
	}

	entries := make([]scoring.Entry, 0, len(groups))
	groupIDs := make([]string, 0, len(groups))
	for _, g := range groups {
		entries = append(entries, scoring.Entry{GroupID: g.ID, Score: g.Score})
		groupIDs = append(groupIDs, g.ID)
	}
	points, err := scoring.CalculatePoints(entries)
	if err != nil {
		return HoleScoreboard{}, fmt.Errorf("calculate points for hole=%s: %w", holeID, err)
	}

	membersByGroup, err := s.loadMembersByGroup(ctx, groupIDs)
	if err != nil {
		return HoleScoreboard{}, err
	}

	rows := make([]ScoreboardRow, 0, len(groups))
	for _, g := range groups {
		row := ScoreboardRow{
			GroupID:   g.ID,
			GroupName: g.Name,
			Members:   membersByGroup[g.ID],
			Score:     g.Score,
		}
		if g.Score != nil {
			value := points[g.ID]
			row.Points = &value
		}
		rows = append(rows, row)
	}

	// Scored groups first by points descending, unscored after, names
	// break remaining ties.
	sort.SliceStable(rows, func(i, j int) bool {
		left, right := rows[i], rows[j]
		if (left.Points == nil) != (right.Points == nil) {
			return left.Points != nil
		}
		if left.Points != nil && *left.Points != *right.Points {
			return *left.Points > *right.Points
		}
		return left.GroupName < right.GroupName
	})

	return HoleScoreboard{
		HoleID:   holeItem.ID,
		HoleName: holeItem.Name,
		Rows:     rows,
	}, nil
}

func (s *PlayService) loadMembersByGroup(ctx context.Context, groupIDs []string) (map[string][]member.Member, error) {
	out := make(map[string][]member.Member, len(groupIDs))
	if len(groupIDs) == 0 {
		return out, nil
	}

	memberships, err := s.groupRepo.ListMemberships(ctx, groupIDs)
	if err != nil {
		return nil, fmt.Errorf("list memberships: %w", err)
	}
	if len(memberships) == 0 {
		return out, nil
	}

	memberIDs := make([]string, 0, len(memberships))
	seen := make(map[string]struct{}, len(memberships))
	for _, m := range memberships {
		if _, exists := seen[m.MemberID]; exists {
			continue
		}
		seen[m.MemberID] = struct{}{}
		memberIDs = append(memberIDs, m.MemberID)
	}

	members, err := s.memberRepo.ListByIDs(ctx, memberIDs)
	if err != nil {
		return nil, fmt.Errorf("list members by ids: %w", err)
	}
	memberByID := make(map[string]member.Member, len(members))
	for _, m := range members {
		memberByID[m.ID] = m
	}

	for _, m := range memberships {
		item, exists := memberByID[m.MemberID]
		if !exists {
			continue
		}
		out[m.GroupID] = append(out[m.GroupID], item)
	}

	return out, nil
}
