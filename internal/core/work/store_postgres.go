// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package work

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/vubib/internal/platform/database/schema"
	"github.com/taibuivan/vubib/internal/platform/dberr"
	"github.com/taibuivan/vubib/pkg/pagination"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) List(ctx context.Context, page pagination.Params) ([]*Work, error) {
	query := fmt.Sprintf(`
		SELECT %s, COALESCE(%s, ''), COALESCE(%s, ''), COALESCE(%s, ''), COALESCE(%s, ''),
		       %s, %s, %s
		FROM %s
		ORDER BY %s ASC
		LIMIT $1 OFFSET $2
	`,
		schema.Work.ID, schema.Work.Title, schema.Work.Subtitle, schema.Work.ParallelTitle, schema.Work.Description,
		schema.Work.Status, schema.Work.TypeID, schema.Work.ParentID,
		schema.Work.Table,
		schema.Work.ID,
	)

	rows, err := repository.db.Query(ctx, query, page.Limit, page.Offset)
	if err != nil {
		return nil, dberr.Wrap(err, "list_works")
	}

	works, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*Work, error) {
		var w Work
		err := row.Scan(
			&w.ID, &w.Title, &w.Subtitle, &w.ParallelTitle, &w.Description,
			&w.Status, &w.TypeID, &w.ParentID,
		)
		return &w, err
	})
	return works, dberr.Wrap(err, "scan_work")
}

func (repository *PostgresRepository) FindSummary(ctx context.Context, id int) (*Summary, error) {
	query := fmt.Sprintf(`SELECT %s, COALESCE(%s, '') FROM %s WHERE %s = $1`,
		schema.Work.ID, schema.Work.Title, schema.Work.Table, schema.Work.ID)

	var summary Summary
	if err := repository.db.QueryRow(ctx, query, id).Scan(&summary.ID, &summary.Title); err != nil {
		return nil, dberr.Wrap(err, "find_work_summary")
	}
	return &summary, nil
}

func (repository *PostgresRepository) ListChildren(ctx context.Context, parentID int) ([]Summary, error) {
	query := fmt.Sprintf(`SELECT %s, COALESCE(%s, '') FROM %s WHERE %s = $1 ORDER BY %s ASC`,
		schema.Work.ID, schema.Work.Title, schema.Work.Table, schema.Work.ParentID, schema.Work.ID)

	rows, err := repository.db.Query(ctx, query, parentID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_child_works")
	}

	children, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Summary, error) {
		var summary Summary
		err := row.Scan(&summary.ID, &summary.Title)
		return summary, err
	})
	return children, dberr.Wrap(err, "scan_child_work")
}

func (repository *PostgresRepository) ListIDs(ctx context.Context, afterID, limit int) ([]int, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s > $1 ORDER BY %s ASC LIMIT $2`,
		schema.Work.ID, schema.Work.Table, schema.Work.ID, schema.Work.ID)

	rows, err := repository.db.Query(ctx, query, afterID, limit)
	if err != nil {
		return nil, dberr.Wrap(err, "list_work_ids")
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[int])
	return ids, dberr.Wrap(err, "scan_work_id")
}
