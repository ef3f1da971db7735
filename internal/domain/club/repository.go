package club

import "context"

type Repository interface {
	// List returns active clubs ordered by their display order, unordered
	// clubs last.
	List(ctx context.Context) ([]Club, error)
	ListByIDs(ctx context.Context, clubIDs []string) ([]Club, error)
	GetByID(ctx context.Context, clubID string) (Club, bool, error)
	Create(ctx context.Context, item Club) error
	Update(ctx context.Context, item Club) error
	Archive(ctx context.Context, clubID string) error
}
