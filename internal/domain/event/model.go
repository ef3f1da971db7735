package event

import (
	"time"

	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/lifecycle"
)

// Event is one golf outing: a named day of play that owns holes.
type Event struct {
	ID        string
	Name      string
	EventDate time.Time
	Status    lifecycle.Status
	CreatedAt time.Time
}
