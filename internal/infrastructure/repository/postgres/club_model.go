package postgres

import "time"

type clubTableModel struct {
	ID         string     `db:"id"`
	Name       string     `db:"name"`
	OrderBy    *int       `db:"order_by"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
	ArchivedAt *time.Time `db:"archived_at"`
}

type clubInsertModel struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	OrderBy   *int      `db:"order_by"`
	CreatedAt time.Time `db:"created_at"`
}
