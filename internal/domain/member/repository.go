package member

import "context"

type Repository interface {
	// List returns active members ordered by name.
	List(ctx context.Context) ([]Member, error)
	// ListByIDs returns the active members among the given ids; missing or
	// archived ids are silently absent.
	ListByIDs(ctx context.Context, memberIDs []string) ([]Member, error)
	GetByID(ctx context.Context, memberID string) (Member, bool, error)
	Create(ctx context.Context, item Member) error
	Update(ctx context.Context, item Member) error
	Archive(ctx context.Context, memberID string) error
}
