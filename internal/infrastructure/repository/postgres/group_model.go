package postgres

import "time"

type groupTableModel struct {
	ID         string     `db:"id"`
	Name       string     `db:"name"`
	Score      *int       `db:"score"`
	Points     *int       `db:"points"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
	ArchivedAt *time.Time `db:"archived_at"`
}

type groupInsertModel struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

type assignmentRowModel struct {
	HoleID  string `db:"hole_id"`
	GroupID string `db:"group_id"`
}

type membershipRowModel struct {
	GroupID  string `db:"group_id"`
	MemberID string `db:"member_id"`
}
