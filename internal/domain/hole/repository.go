package hole

import "context"

type Repository interface {
	// ListByEvent returns active holes in canonical event order: creation
	// time ascending, hole id as the tiebreak. Trajectories and play
	// navigation both rely on this order being stable.
	ListByEvent(ctx context.Context, eventID string) ([]Hole, error)
	GetByID(ctx context.Context, holeID string) (Hole, bool, error)
	Create(ctx context.Context, item Hole) error
	Update(ctx context.Context, item Hole) error
	Archive(ctx context.Context, holeID string) error
	ArchiveByEvent(ctx context.Context, eventID string) error

	// ReplaceClubs swaps the full set of clubs allowed on the hole.
	ReplaceClubs(ctx context.Context, holeID string, clubIDs []string) error
	ListClubIDs(ctx context.Context, holeID string) ([]string, error)
}
