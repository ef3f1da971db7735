package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/group"
	qb "github.com/TiaanKleinhans/custom-golf-events/internal/platform/querybuilder"
)

type GroupRepository struct {
	db *sqlx.DB
}

func NewGroupRepository(db *sqlx.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

func (r *GroupRepository) ListByHole(ctx context.Context, holeID string) ([]group.Group, error) {
	query, args, err := qb.Select("*").From("groups").
		Where(
			qb.Expr("id IN (SELECT group_id FROM hole_groups WHERE hole_id = ?)", holeID),
			qb.IsNull("archived_at"),
		).
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select groups by hole query: %w", err)
	}

	var rows []groupTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select groups by hole: %w", err)
	}

	out := make([]group.Group, 0, len(rows))
	for _, row := range rows {
		out = append(out, groupFromRow(row))
	}

	return out, nil
}

func (r *GroupRepository) ListByIDs(ctx context.Context, groupIDs []string) ([]group.Group, error) {
	if len(groupIDs) == 0 {
		return []group.Group{}, nil
	}

	query, args, err := qb.Select("*").From("groups").
		Where(
			qb.In("id", stringSliceToAny(groupIDs)),
			qb.IsNull("archived_at"),
		).
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select groups by ids query: %w", err)
	}

	var rows []groupTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select groups by ids: %w", err)
	}

	out := make([]group.Group, 0, len(rows))
	for _, row := range rows {
		out = append(out, groupFromRow(row))
	}

	return out, nil
}

func (r *GroupRepository) GetByID(ctx context.Context, groupID string) (group.Group, bool, error) {
	query, args, err := qb.Select("*").From("groups").
		Where(qb.Eq("id", groupID)).
		ToSQL()
	if err != nil {
		return group.Group{}, false, fmt.Errorf("build get group by id query: %w", err)
	}

	var row groupTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return group.Group{}, false, nil
		}
		return group.Group{}, false, fmt.Errorf("get group by id: %w", err)
	}

	return groupFromRow(row), true, nil
}

func (r *GroupRepository) Create(ctx context.Context, item group.Group) error {
	insertModel := groupInsertModel{
		ID:        item.ID,
		Name:      item.Name,
		CreatedAt: item.CreatedAt,
	}

	query, args, err := qb.InsertModel("groups", insertModel, "")
	if err != nil {
		return fmt.Errorf("build insert group query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert group: %w", err)
	}

	return nil
}

func (r *GroupRepository) Update(ctx context.Context, item group.Group) error {
	query, args, err := qb.Update("groups").
		Set("name", item.Name).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("id", item.ID),
			qb.IsNull("archived_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update group query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update group: %w", err)
	}

	return nil
}

func (r *GroupRepository) Archive(ctx context.Context, groupID string) error {
	query, args, err := qb.Update("groups").
		SetExpr("archived_at", "NOW()").
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("id", groupID),
			qb.IsNull("archived_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build archive group query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("archive group: %w", err)
	}

	return nil
}

func (r *GroupRepository) SaveScore(ctx context.Context, groupID string, score, points *int) error {
	query, args, err := qb.Update("groups").
		Set("score", score).
		Set("points", points).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("id", groupID),
			qb.IsNull("archived_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build save group score query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save group score: %w", err)
	}

	return nil
}

func (r *GroupRepository) AssignToHole(ctx context.Context, holeID, groupID string) error {
	// A group plays exactly one hole, so a re-assign moves the link.
	query, args, err := qb.InsertInto("hole_groups").
		Columns("hole_id", "group_id").
		Values(holeID, groupID).
		Suffix("ON CONFLICT (group_id) DO UPDATE SET hole_id = EXCLUDED.hole_id").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build assign group to hole query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("assign group to hole: %w", err)
	}

	return nil
}

func (r *GroupRepository) RemoveFromHole(ctx context.Context, holeID, groupID string) error {
	query, args, err := qb.DeleteFrom("hole_groups").
		Where(
			qb.Eq("hole_id", holeID),
			qb.Eq("group_id", groupID),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build remove group from hole query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("remove group from hole: %w", err)
	}

	return nil
}

func (r *GroupRepository) HoleByGroup(ctx context.Context, groupID string) (string, bool, error) {
	query, args, err := qb.Select("hole_id").From("hole_groups").
		Where(qb.Eq("group_id", groupID)).
		ToSQL()
	if err != nil {
		return "", false, fmt.Errorf("build get hole by group query: %w", err)
	}

	var holeID string
	if err := r.db.GetContext(ctx, &holeID, query, args...); err != nil {
		if isNotFound(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get hole by group: %w", err)
	}

	return holeID, true, nil
}

func (r *GroupRepository) ListAssignments(ctx context.Context, holeIDs []string) ([]group.Assignment, error) {
	if len(holeIDs) == 0 {
		return []group.Assignment{}, nil
	}

	query, args, err := qb.Select("hole_id", "group_id").From("hole_groups").
		Where(qb.In("hole_id", stringSliceToAny(holeIDs))).
		OrderBy("hole_id", "group_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select hole assignments query: %w", err)
	}

	var rows []assignmentRowModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select hole assignments: %w", err)
	}

	out := make([]group.Assignment, 0, len(rows))
	for _, row := range rows {
		out = append(out, group.Assignment{HoleID: row.HoleID, GroupID: row.GroupID})
	}

	return out, nil
}

func (r *GroupRepository) ReplaceMembers(ctx context.Context, groupID string, memberIDs []string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace group members tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	deleteQuery, deleteArgs, err := qb.DeleteFrom("group_members").
		Where(qb.Eq("group_id", groupID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete group members query: %w", err)
	}

	if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("delete group members: %w", err)
	}

	if len(memberIDs) > 0 {
		builder := qb.InsertInto("group_members").Columns("group_id", "member_id")
		for _, memberID := range memberIDs {
			builder.Values(groupID, memberID)
		}

		insertQuery, insertArgs, err := builder.ToSQL()
		if err != nil {
			return fmt.Errorf("build insert group members query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			return fmt.Errorf("insert group members: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace group members tx: %w", err)
	}

	return nil
}

func (r *GroupRepository) ListMemberships(ctx context.Context, groupIDs []string) ([]group.Membership, error) {
	if len(groupIDs) == 0 {
		return []group.Membership{}, nil
	}

	query, args, err := qb.Select("group_id", "member_id").From("group_members").
		Where(qb.In("group_id", stringSliceToAny(groupIDs))).
		OrderBy("group_id", "member_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select group memberships query: %w", err)
	}

	var rows []membershipRowModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select group memberships: %w", err)
	}

	out := make([]group.Membership, 0, len(rows))
	for _, row := range rows {
		out = append(out, group.Membership{GroupID: row.GroupID, MemberID: row.MemberID})
	}

	return out, nil
}

func groupFromRow(row groupTableModel) group.Group {
	return group.Group{
		ID:        row.ID,
		Name:      row.Name,
		Score:     row.Score,
		Points:    row.Points,
		Status:    statusFromArchivedAt(row.ArchivedAt),
		CreatedAt: row.CreatedAt,
	}
}
