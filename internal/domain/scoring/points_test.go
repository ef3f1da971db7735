package scoring

import (
	"errors"
	"testing"
)

func intPtr(v int) *int { return &v }

func TestCalculatePoints(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		entries []Entry
		want    map[string]int
	}{
		{
			name:    "no entries",
			entries: nil,
			want:    map[string]int{},
		},
		{
			name: "no scored entries",
			entries: []Entry{
				{GroupID: "g1"},
				{GroupID: "g2"},
			},
			want: map[string]int{},
		},
		{
			name: "single group gets max",
			entries: []Entry{
				{GroupID: "g1", Score: intPtr(5)},
			},
			want: map[string]int{"g1": 4},
		},
		{
			name: "distinct scores rank four three two one",
			entries: []Entry{
				{GroupID: "g1", Score: intPtr(6)},
				{GroupID: "g2", Score: intPtr(3)},
				{GroupID: "g3", Score: intPtr(5)},
				{GroupID: "g4", Score: intPtr(4)},
			},
			want: map[string]int{"g2": 4, "g4": 3, "g3": 2, "g1": 1},
		},
		{
			name: "fifth and later still get one point",
			entries: []Entry{
				{GroupID: "g1", Score: intPtr(1)},
				{GroupID: "g2", Score: intPtr(2)},
				{GroupID: "g3", Score: intPtr(3)},
				{GroupID: "g4", Score: intPtr(4)},
				{GroupID: "g5", Score: intPtr(5)},
				{GroupID: "g6", Score: intPtr(6)},
			},
			want: map[string]int{"g1": 4, "g2": 3, "g3": 2, "g4": 1, "g5": 1, "g6": 1},
		},
		{
			name: "tie at first uses up both rank slots",
			entries: []Entry{
				{GroupID: "g1", Score: intPtr(7)},
				{GroupID: "g2", Score: intPtr(7)},
				{GroupID: "g3", Score: intPtr(9)},
				{GroupID: "g4", Score: intPtr(12)},
			},
			want: map[string]int{"g1": 4, "g2": 4, "g3": 2, "g4": 1},
		},
		{
			name: "tie at second",
			entries: []Entry{
				{GroupID: "g1", Score: intPtr(5)},
				{GroupID: "g2", Score: intPtr(7)},
				{GroupID: "g3", Score: intPtr(7)},
				{GroupID: "g4", Score: intPtr(8)},
			},
			want: map[string]int{"g1": 4, "g2": 3, "g3": 3, "g4": 1},
		},
		{
			name: "all tied every group gets max",
			entries: []Entry{
				{GroupID: "g1", Score: intPtr(6)},
				{GroupID: "g2", Score: intPtr(6)},
				{GroupID: "g3", Score: intPtr(6)},
			},
			want: map[string]int{"g1": 4, "g2": 4, "g3": 4},
		},
		{
			name: "two groups tied is a full tie",
			entries: []Entry{
				{GroupID: "g1", Score: intPtr(4)},
				{GroupID: "g2", Score: intPtr(4)},
			},
			want: map[string]int{"g1": 4, "g2": 4},
		},
		{
			name: "unscored groups are skipped entirely",
			entries: []Entry{
				{GroupID: "g1", Score: intPtr(4)},
				{GroupID: "g2"},
				{GroupID: "g3", Score: intPtr(6)},
			},
			want: map[string]int{"g1": 4, "g3": 3},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := CalculatePoints(tc.entries)
			if err != nil {
				t.Fatalf("CalculatePoints error: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("unexpected result size: got=%d want=%d (%v)", len(got), len(tc.want), got)
			}
			for id, want := range tc.want {
				if got[id] != want {
					t.Fatalf("unexpected points for %s: got=%d want=%d (%v)", id, got[id], want, got)
				}
			}
		})
	}
}

func TestCalculatePoints_BetterScoreNeverEarnsFewerPoints(t *testing.T) {
	t.Parallel()

	scoreSets := [][]int{
		{5, 5, 5, 5},
		{3, 4, 4, 4},
		{1, 20, 10, 10, 2},
		{7, 7, 9, 12},
		{2, 3, 3, 3, 3, 8},
	}

	for _, scores := range scoreSets {
		entries := make([]Entry, 0, len(scores))
		byID := make(map[string]int, len(scores))
		for i, s := range scores {
			s := s
			id := string(rune('a' + i))
			entries = append(entries, Entry{GroupID: id, Score: &s})
			byID[id] = s
		}

		got, err := CalculatePoints(entries)
		if err != nil {
			t.Fatalf("CalculatePoints(%v) error: %v", scores, err)
		}

		for leftID, leftScore := range byID {
			for rightID, rightScore := range byID {
				if leftScore < rightScore && got[leftID] < got[rightID] {
					t.Fatalf("score %d earned %d points but worse score %d earned %d (%v)",
						leftScore, got[leftID], rightScore, got[rightID], got)
				}
			}
		}
	}
}

func TestCalculatePoints_SpecExamples(t *testing.T) {
	t.Parallel()

	got, err := CalculatePoints([]Entry{
		{GroupID: "a", Score: intPtr(7)},
		{GroupID: "b", Score: intPtr(7)},
		{GroupID: "c", Score: intPtr(9)},
		{GroupID: "d", Score: intPtr(12)},
	})
	if err != nil {
		t.Fatalf("CalculatePoints error: %v", err)
	}
	if got["a"] != 4 || got["b"] != 4 || got["c"] != 2 || got["d"] != 1 {
		t.Fatalf("unexpected points for tie at first: %v", got)
	}

	got, err = CalculatePoints([]Entry{
		{GroupID: "a", Score: intPtr(3)},
		{GroupID: "b", Score: intPtr(5)},
		{GroupID: "c", Score: intPtr(5)},
		{GroupID: "d", Score: intPtr(6)},
	})
	if err != nil {
		t.Fatalf("CalculatePoints error: %v", err)
	}
	if got["a"] != 4 || got["b"] != 3 || got["c"] != 3 || got["d"] != 1 {
		t.Fatalf("unexpected points for tie at second: %v", got)
	}
}

func TestCalculatePoints_RejectsOutOfRangeScores(t *testing.T) {
	t.Parallel()

	for _, bad := range []int{0, -3, 21, 100} {
		_, err := CalculatePoints([]Entry{
			{GroupID: "g1", Score: intPtr(5)},
			{GroupID: "g2", Score: intPtr(bad)},
		})
		if !errors.Is(err, ErrScoreOutOfRange) {
			t.Fatalf("score %d: got err=%v want ErrScoreOutOfRange", bad, err)
		}
	}
}

func TestValidScore(t *testing.T) {
	t.Parallel()

	for _, ok := range []int{1, 2, 10, 20} {
		if !ValidScore(ok) {
			t.Fatalf("score %d should be valid", ok)
		}
	}
	for _, bad := range []int{0, -1, 21} {
		if ValidScore(bad) {
			t.Fatalf("score %d should be invalid", bad)
		}
	}
}
