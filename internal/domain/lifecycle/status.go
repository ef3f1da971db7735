// Package lifecycle carries the archival state shared by all entities.
// Archiving is a soft delete: archived rows stay in storage but drop out
// of every active listing and every standings computation.
package lifecycle

type Status string

const (
	Active   Status = "active"
	Archived Status = "archived"
)

func (s Status) IsArchived() bool {
	return s == Archived
}
