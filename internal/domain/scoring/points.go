package scoring

import (
	"errors"
	"fmt"
	"sort"
)

// Raw golf scores accepted at the entry surface.
const (
	MinScore = 1
	MaxScore = 20
)

// MaxPoints is awarded to the best-scoring group on a hole.
const MaxPoints = 4

var ErrScoreOutOfRange = errors.New("score out of range")

// Entry is one group's raw score for the hole being calculated. A nil
// Score means the group has not been scored yet and earns no points.
type Entry struct {
	GroupID string
	Score   *int
}

// ValidScore reports whether a raw golf score is inside the accepted range.
func ValidScore(value int) bool {
	return value >= MinScore && value <= MaxScore
}

// CalculatePoints converts the raw scores of one hole into points per group.
//
// Lower score wins. Groups without a score get no map entry. When every
// scored group shares the same score, all of them receive MaxPoints rather
// than a diluted share. Otherwise groups are ranked with standard
// competition ranking: tied groups occupy a block, every group in the block
// earns the points of the block's starting position, and the next distinct
// score resumes after the whole block.
func CalculatePoints(entries []Entry) (map[string]int, error) {
	scored := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if entry.Score == nil {
			continue
		}
		if !ValidScore(*entry.Score) {
			return nil, fmt.Errorf("%w: group=%s score=%d, want %d..%d", ErrScoreOutOfRange, entry.GroupID, *entry.Score, MinScore, MaxScore)
		}
		scored = append(scored, entry)
	}
	if len(scored) == 0 {
		return map[string]int{}, nil
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return *scored[i].Score < *scored[j].Score
	})

	points := make(map[string]int, len(scored))

	allTied := true
	for _, entry := range scored[1:] {
		if *entry.Score != *scored[0].Score {
			allTied = false
			break
		}
	}
	if allTied {
		for _, entry := range scored {
			points[entry.GroupID] = MaxPoints
		}
		return points, nil
	}

	position := 0
	for i := 0; i < len(scored); {
		blockScore := *scored[i].Score
		blockEnd := i
		for blockEnd < len(scored) && *scored[blockEnd].Score == blockScore {
			blockEnd++
		}

		value := pointsForPosition(position)
		for _, entry := range scored[i:blockEnd] {
			points[entry.GroupID] = value
		}

		// Ties use up their rank slots.
		position += blockEnd - i
		i = blockEnd
	}

	return points, nil
}

func pointsForPosition(position int) int {
	switch position {
	case 0:
		return 4
	case 1:
		return 3
	case 2:
		return 2
	default:
		return 1
	}
}
