package group

import (
	"time"

	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/lifecycle"
)

// Group is a team scoring one specific hole. Score is the raw golf score
// entered during play; Points is derived from the scores of every group on
// the same hole and is always written together with Score. Both are nil
// until the hole has been scored.
type Group struct {
	ID        string
	Name      string
	Score     *int
	Points    *int
	Status    lifecycle.Status
	CreatedAt time.Time
}

// Assignment links a group to the hole it scores.
type Assignment struct {
	HoleID  string
	GroupID string
}

// Membership links a member to a group.
type Membership struct {
	GroupID  string
	MemberID string
}
