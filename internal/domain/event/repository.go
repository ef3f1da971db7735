package event

import "context"

type Repository interface {
	// List returns active events ordered by event date, newest first.
	List(ctx context.Context) ([]Event, error)
	GetByID(ctx context.Context, eventID string) (Event, bool, error)
	Create(ctx context.Context, item Event) error
	Update(ctx context.Context, item Event) error
	Archive(ctx context.Context, eventID string) error
}
