package group

import "context"

type Repository interface {
	// ListByHole returns the active groups assigned to one hole.
	ListByHole(ctx context.Context, holeID string) ([]Group, error)
	// ListByIDs returns the active groups among the given ids; missing or
	// archived ids are silently absent from the result.
	ListByIDs(ctx context.Context, groupIDs []string) ([]Group, error)
	GetByID(ctx context.Context, groupID string) (Group, bool, error)
	Create(ctx context.Context, item Group) error
	Update(ctx context.Context, item Group) error
	Archive(ctx context.Context, groupID string) error

	// SaveScore writes the raw score and the derived points together.
	// Both nil clears the hole result for the group.
	SaveScore(ctx context.Context, groupID string, score, points *int) error

	AssignToHole(ctx context.Context, holeID, groupID string) error
	RemoveFromHole(ctx context.Context, holeID, groupID string) error
	// HoleByGroup returns the hole a group is assigned to, if any.
	HoleByGroup(ctx context.Context, groupID string) (string, bool, error)
	// ListAssignments returns hole->group links for the given holes,
	// including links to groups that have since been archived.
	ListAssignments(ctx context.Context, holeIDs []string) ([]Assignment, error)

	ReplaceMembers(ctx context.Context, groupID string, memberIDs []string) error
	ListMemberships(ctx context.Context, groupIDs []string) ([]Membership, error)
}
