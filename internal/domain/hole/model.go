package hole

import (
	"time"

	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/lifecycle"
)

// Hole belongs to exactly one event. Clubs allowed on the hole are linked
// through a join relation and carry no scoring weight.
type Hole struct {
	ID          string
	EventID     string
	Name        string
	Par         *int
	Description string
	Status      lifecycle.Status
	CreatedAt   time.Time
}
