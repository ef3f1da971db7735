package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/club"
	qb "github.com/TiaanKleinhans/custom-golf-events/internal/platform/querybuilder"
)

type ClubRepository struct {
	db *sqlx.DB
}

func NewClubRepository(db *sqlx.DB) *ClubRepository {
	return &ClubRepository{db: db}
}

func (r *ClubRepository) List(ctx context.Context) ([]club.Club, error) {
	query, args, err := qb.Select("*").From("clubs").
		Where(qb.IsNull("archived_at")).
		OrderBy("order_by NULLS LAST", "name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select clubs query: %w", err)
	}

	var rows []clubTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select clubs: %w", err)
	}

	out := make([]club.Club, 0, len(rows))
	for _, row := range rows {
		out = append(out, clubFromRow(row))
	}

	return out, nil
}

func (r *ClubRepository) ListByIDs(ctx context.Context, clubIDs []string) ([]club.Club, error) {
	if len(clubIDs) == 0 {
		return []club.Club{}, nil
	}

	query, args, err := qb.Select("*").From("clubs").
		Where(
			qb.In("id", stringSliceToAny(clubIDs)),
			qb.IsNull("archived_at"),
		).
		OrderBy("order_by NULLS LAST", "name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select clubs by ids query: %w", err)
	}

	var rows []clubTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select clubs by ids: %w", err)
	}

	out := make([]club.Club, 0, len(rows))
	for _, row := range rows {
		out = append(out, clubFromRow(row))
	}

	return out, nil
}

func (r *ClubRepository) GetByID(ctx context.Context, clubID string) (club.Club, bool, error) {
	query, args, err := qb.Select("*").From("clubs").
		Where(qb.Eq("id", clubID)).
		ToSQL()
	if err != nil {
		return club.Club{}, false, fmt.Errorf("build get club by id query: %w", err)
	}

	var row clubTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return club.Club{}, false, nil
		}
		return club.Club{}, false, fmt.Errorf("get club by id: %w", err)
	}

	return clubFromRow(row), true, nil
}

func (r *ClubRepository) Create(ctx context.Context, item club.Club) error {
	insertModel := clubInsertModel{
		ID:        item.ID,
		Name:      item.Name,
		OrderBy:   item.OrderBy,
		CreatedAt: item.CreatedAt,
	}

	query, args, err := qb.InsertModel("clubs", insertModel, "")
	if err != nil {
		return fmt.Errorf("build insert club query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert club: %w", err)
	}

	return nil
}

func (r *ClubRepository) Update(ctx context.Context, item club.Club) error {
	query, args, err := qb.Update("clubs").
		Set("name", item.Name).
		Set("order_by", item.OrderBy).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("id", item.ID),
			qb.IsNull("archived_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update club query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update club: %w", err)
	}

	return nil
}

func (r *ClubRepository) Archive(ctx context.Context, clubID string) error {
	query, args, err := qb.Update("clubs").
		SetExpr("archived_at", "NOW()").
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("id", clubID),
			qb.IsNull("archived_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build archive club query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("archive club: %w", err)
	}

	return nil
}

func clubFromRow(row clubTableModel) club.Club {
	return club.Club{
		ID:        row.ID,
		Name:      row.Name,
		OrderBy:   row.OrderBy,
		Status:    statusFromArchivedAt(row.ArchivedAt),
		CreatedAt: row.CreatedAt,
	}
}
