package postgres

import "time"

type holeTableModel struct {
	ID          string     `db:"id"`
	EventID     string     `db:"event_id"`
	Name        string     `db:"name"`
	Par         *int       `db:"par"`
	Description string     `db:"description"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
	ArchivedAt  *time.Time `db:"archived_at"`
}

type holeInsertModel struct {
	ID          string    `db:"id"`
	EventID     string    `db:"event_id"`
	Name        string    `db:"name"`
	Par         *int      `db:"par"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}
