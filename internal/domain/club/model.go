package club

import (
	"time"

	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/lifecycle"
)

// Club is an equipment item that can be marked allowed on a hole.
// Pure reference data; nothing is computed from it.
type Club struct {
	ID        string
	Name      string
	OrderBy   *int
	Status    lifecycle.Status
	CreatedAt time.Time
}
