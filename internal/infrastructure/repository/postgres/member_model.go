package postgres

import "time"

type memberTableModel struct {
	ID         string     `db:"id"`
	Name       string     `db:"name"`
	Handicap   *int       `db:"handicap"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
	ArchivedAt *time.Time `db:"archived_at"`
}

type memberInsertModel struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Handicap  *int      `db:"handicap"`
	CreatedAt time.Time `db:"created_at"`
}
