package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/hole"
	qb "github.com/TiaanKleinhans/custom-golf-events/internal/platform/querybuilder"
)

type HoleRepository struct {
	db *sqlx.DB
}

func NewHoleRepository(db *sqlx.DB) *HoleRepository {
	return &HoleRepository{db: db}
}

func (r *HoleRepository) ListByEvent(ctx context.Context, eventID string) ([]hole.Hole, error) {
	query, args, err := qb.Select("*").From("holes").
		Where(
			qb.Eq("event_id", eventID),
			qb.IsNull("archived_at"),
		).
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select holes by event query: %w", err)
	}

	var rows []holeTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select holes by event: %w", err)
	}

	out := make([]hole.Hole, 0, len(rows))
	for _, row := range rows {
		out = append(out, holeFromRow(row))
	}

	return out, nil
}

func (r *HoleRepository) GetByID(ctx context.Context, holeID string) (hole.Hole, bool, error) {
	query, args, err := qb.Select("*").From("holes").
		Where(qb.Eq("id", holeID)).
		ToSQL()
	if err != nil {
		return hole.Hole{}, false, fmt.Errorf("build get hole by id query: %w", err)
	}

	var row holeTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return hole.Hole{}, false, nil
		}
		return hole.Hole{}, false, fmt.Errorf("get hole by id: %w", err)
	}

	return holeFromRow(row), true, nil
}

func (r *HoleRepository) Create(ctx context.Context, item hole.Hole) error {
	insertModel := holeInsertModel{
		ID:          item.ID,
		EventID:     item.EventID,
		Name:        item.Name,
		Par:         item.Par,
		Description: item.Description,
		CreatedAt:   item.CreatedAt,
	}

	query, args, err := qb.InsertModel("holes", insertModel, "")
	if err != nil {
		return fmt.Errorf("build insert hole query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert hole: %w", err)
	}

	return nil
}

func (r *HoleRepository) Update(ctx context.Context, item hole.Hole) error {
	query, args, err := qb.Update("holes").
		Set("name", item.Name).
		Set("par", item.Par).
		Set("description", item.Description).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("id", item.ID),
			qb.IsNull("archived_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update hole query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update hole: %w", err)
	}

	return nil
}

func (r *HoleRepository) Archive(ctx context.Context, holeID string) error {
	query, args, err := qb.Update("holes").
		SetExpr("archived_at", "NOW()").
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("id", holeID),
			qb.IsNull("archived_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build archive hole query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("archive hole: %w", err)
	}

	return nil
}

func (r *HoleRepository) ArchiveByEvent(ctx context.Context, eventID string) error {
	query, args, err := qb.Update("holes").
		SetExpr("archived_at", "NOW()").
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("event_id", eventID),
			qb.IsNull("archived_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build archive holes by event query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("archive holes by event: %w", err)
	}

	return nil
}

func (r *HoleRepository) ReplaceClubs(ctx context.Context, holeID string, clubIDs []string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace hole clubs tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	deleteQuery, deleteArgs, err := qb.DeleteFrom("hole_clubs").
		Where(qb.Eq("hole_id", holeID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete hole clubs query: %w", err)
	}

	if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("delete hole clubs: %w", err)
	}

	if len(clubIDs) > 0 {
		builder := qb.InsertInto("hole_clubs").Columns("hole_id", "club_id")
		for _, clubID := range clubIDs {
			builder.Values(holeID, clubID)
		}

		insertQuery, insertArgs, err := builder.ToSQL()
		if err != nil {
			return fmt.Errorf("build insert hole clubs query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			return fmt.Errorf("insert hole clubs: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace hole clubs tx: %w", err)
	}

	return nil
}

func (r *HoleRepository) ListClubIDs(ctx context.Context, holeID string) ([]string, error) {
	query, args, err := qb.Select("club_id").From("hole_clubs").
		Where(qb.Eq("hole_id", holeID)).
		OrderBy("club_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select hole club ids query: %w", err)
	}

	var clubIDs []string
	if err := r.db.SelectContext(ctx, &clubIDs, query, args...); err != nil {
		return nil, fmt.Errorf("select hole club ids: %w", err)
	}

	return clubIDs, nil
}

func holeFromRow(row holeTableModel) hole.Hole {
	return hole.Hole{
		ID:          row.ID,
		EventID:     row.EventID,
		Name:        row.Name,
		Par:         row.Par,
		Description: row.Description,
		Status:      statusFromArchivedAt(row.ArchivedAt),
		CreatedAt:   row.CreatedAt,
	}
}
