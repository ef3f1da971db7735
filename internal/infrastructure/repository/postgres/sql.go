package postgres

import (
	"database/sql"
	"time"

	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/lifecycle"
)

func isNotFound(err error) bool {
	return err == sql.ErrNoRows
}

func statusFromArchivedAt(archivedAt *time.Time) lifecycle.Status {
	if archivedAt != nil {
		return lifecycle.Archived
	}
	return lifecycle.Active
}

func stringSliceToAny(items []string) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		out = append(out, item)
	}
	return out
}
