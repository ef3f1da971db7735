package member

import (
	"time"

	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/lifecycle"
)

// Member is a player. Handicap is informational only; the points logic
// never reads it.
type Member struct {
	ID        string
	Name      string
	Handicap  *int
	Status    lifecycle.Status
	CreatedAt time.Time
}
