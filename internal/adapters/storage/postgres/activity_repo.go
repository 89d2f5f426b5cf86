package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"cat-registry/internal/domain/activity"
)

type ActivityRepo struct {
	db *sql.DB
}

func NewActivityRepo(db *sql.DB) *ActivityRepo {
	return &ActivityRepo{db: db}
}

func (r *ActivityRepo) Create(ctx context.Context, e activity.Entry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO cat_activity (
			id, type, cat_id, previous_id, source, recorded_at
		) VALUES ($1,$2,$3,$4,$5,$6)
	`,
		e.ID,
		string(e.Type),
		e.CatID,
		e.PreviousID,
		string(e.Source),
		e.RecordedAt,
	)
	return err
}

func (r *ActivityRepo) List(ctx context.Context, filter activity.ListFilter) ([]activity.Entry, error) {
	sb := strings.Builder{}
	sb.WriteString(`
		SELECT id, type, cat_id, previous_id, source, recorded_at
		FROM cat_activity
	`)

	args := []any{}
	if catID := strings.TrimSpace(filter.CatID); catID != "" {
		sb.WriteString(" WHERE cat_id = $1 OR previous_id = $1")
		args = append(args, catID)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = activity.DefaultLimit
	}
	args = append(args, limit)
	sb.WriteString(fmt.Sprintf(" ORDER BY recorded_at DESC LIMIT $%d", len(args)))

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]activity.Entry, 0)
	for rows.Next() {
		var e activity.Entry
		var typ, source string
		if err := rows.Scan(&e.ID, &typ, &e.CatID, &e.PreviousID, &source, &e.RecordedAt); err != nil {
			return nil, err
		}
		e.Type = activity.EntryType(typ)
		e.Source = activity.Source(source)
		out = append(out, e)
	}
	return out, rows.Err()
}
