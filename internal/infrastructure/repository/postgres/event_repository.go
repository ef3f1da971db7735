package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/event"
	qb "github.com/TiaanKleinhans/custom-golf-events/internal/platform/querybuilder"
)

type EventRepository struct {
	db *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) List(ctx context.Context) ([]event.Event, error) {
	query, args, err := qb.Select("*").From("events").
		Where(qb.IsNull("archived_at")).
		OrderBy("event_date DESC", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select events query: %w", err)
	}

	var rows []eventTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select events: %w", err)
	}

	out := make([]event.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, eventFromRow(row))
	}

	return out, nil
}

func (r *EventRepository) GetByID(ctx context.Context, eventID string) (event.Event, bool, error) {
	query, args, err := qb.Select("*").From("events").
		Where(qb.Eq("id", eventID)).
		ToSQL()
	if err != nil {
		return event.Event{}, false, fmt.Errorf("build get event by id query: %w", err)
	}

	var row eventTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return event.Event{}, false, nil
		}
		return event.Event{}, false, fmt.Errorf("get event by id: %w", err)
	}

	return eventFromRow(row), true, nil
}

func (r *EventRepository) Create(ctx context.Context, item event.Event) error {
	insertModel := eventInsertModel{
		ID:        item.ID,
		Name:      item.Name,
		EventDate: item.EventDate,
		CreatedAt: item.CreatedAt,
	}

	query, args, err := qb.InsertModel("events", insertModel, "")
	if err != nil {
		return fmt.Errorf("build insert event query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) Update(ctx context.Context, item event.Event) error {
	query, args, err := qb.Update("events").
		Set("name", item.Name).
		Set("event_date", item.EventDate).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("id", item.ID),
			qb.IsNull("archived_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update event query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update event: %w", err)
	}

	return nil
}

func (r *EventRepository) Archive(ctx context.Context, eventID string) error {
	query, args, err := qb.Update("events").
		SetExpr("archived_at", "NOW()").
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("id", eventID),
			qb.IsNull("archived_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build archive event query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("archive event: %w", err)
	}

	return nil
}

func eventFromRow(row eventTableModel) event.Event {
	return event.Event{
		ID:        row.ID,
		Name:      row.Name,
		EventDate: row.EventDate,
		Status:    statusFromArchivedAt(row.ArchivedAt),
		CreatedAt: row.CreatedAt,
	}
}
