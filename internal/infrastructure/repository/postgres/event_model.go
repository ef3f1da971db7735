package postgres

import "time"

type eventTableModel struct {
	ID         string     `db:"id"`
	Name       string     `db:"name"`
	EventDate  time.Time  `db:"event_date"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
	ArchivedAt *time.Time `db:"archived_at"`
}

type eventInsertModel struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	EventDate time.Time `db:"event_date"`
	CreatedAt time.Time `db:"created_at"`
}
