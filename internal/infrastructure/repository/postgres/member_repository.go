package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/TiaanKleinhans/custom-golf-events/internal/domain/member"
	qb "github.com/TiaanKleinhans/custom-golf-events/internal/platform/querybuilder"
)

type MemberRepository struct {
	db *sqlx.DB
}

func NewMemberRepository(db *sqlx.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

func (r *MemberRepository) List(ctx context.Context) ([]member.Member, error) {
	query, args, err := qb.Select("*").From("members").
		Where(qb.IsNull("archived_at")).
		OrderBy("name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select members query: %w", err)
	}

	var rows []memberTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select members: %w", err)
	}

	out := make([]member.Member, 0, len(rows))
	for _, row := range rows {
		out = append(out, memberFromRow(row))
	}

	return out, nil
}

func (r *MemberRepository) ListByIDs(ctx context.Context, memberIDs []string) ([]member.Member, error) {
	if len(memberIDs) == 0 {
		return []member.Member{}, nil
	}

	query, args, err := qb.Select("*").From("members").
		Where(
			qb.In("id", stringSliceToAny(memberIDs)),
			qb.IsNull("archived_at"),
		).
		OrderBy("name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select members by ids query: %w", err)
	}

	var rows []memberTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select members by ids: %w", err)
	}

	out := make([]member.Member, 0, len(rows))
	for _, row := range rows {
		out = append(out, memberFromRow(row))
	}

	return out, nil
}

func (r *MemberRepository) GetByID(ctx context.Context, memberID string) (member.Member, bool, error) {
	query, args, err := qb.Select("*").From("members").
		Where(qb.Eq("id", memberID)).
		ToSQL()
	if err != nil {
		return member.Member{}, false, fmt.Errorf("build get member by id query: %w", err)
	}

	var row memberTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return member.Member{}, false, nil
		}
		return member.Member{}, false, fmt.Errorf("get member by id: %w", err)
	}

	return memberFromRow(row), true, nil
}

func (r *MemberRepository) Create(ctx context.Context, item member.Member) error {
	insertModel := memberInsertModel{
		ID:        item.ID,
		Name:      item.Name,
		Handicap:  item.Handicap,
		CreatedAt: item.CreatedAt,
	}

	query, args, err := qb.InsertModel("members", insertModel, "")
	if err != nil {
		return fmt.Errorf("build insert member query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert member: %w", err)
	}

	return nil
}

func (r *MemberRepository) Update(ctx context.Context, item member.Member) error {
	query, args, err := qb.Update("members").
		Set("name", item.Name).
		Set("handicap", item.Handicap).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("id", item.ID),
			qb.IsNull("archived_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update member query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update member: %w", err)
	}

	return nil
}

func (r *MemberRepository) Archive(ctx context.Context, memberID string) error {
	query, args, err := qb.Update("members").
		SetExpr("archived_at", "NOW()").
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("id", memberID),
			qb.IsNull("archived_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build archive member query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("archive member: %w", err)
	}

	return nil
}

func memberFromRow(row memberTableModel) member.Member {
	return member.Member{
		ID:        row.ID,
		Name:      row.Name,
		Handicap:  row.Handicap,
		Status:    statusFromArchivedAt(row.ArchivedAt),
		CreatedAt: row.CreatedAt,
	}
}
