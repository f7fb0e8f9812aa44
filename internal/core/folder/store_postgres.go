// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package folder

import (
	"context"
	"fmt"
	"strings"

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

// selectColumns lists id, parent, sort order, then one label per language
// in [Languages] order. Prefix qualifies the columns with a table alias.
func selectColumns(prefix string) string {
	columns := []string{schema.Folder.ID, schema.Folder.ParentID, schema.Folder.SortOrder}
	for _, lang := range Languages {
		columns = append(columns, schema.Folder.TextColumn(lang))
	}
	for i := range columns {
		columns[i] = prefix + columns[i]
	}
	return strings.Join(columns, ", ")
}

func (repository *PostgresRepository) FindByID(ctx context.Context, id int) (*Folder, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		selectColumns(""), schema.Folder.Table, schema.Folder.ID)

	folder, err := scanFolder(repository.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "find_folder")
	}
	return folder, nil
}

func (repository *PostgresRepository) ListByParent(ctx context.Context, parentID *int) ([]*Folder, error) {
	where := fmt.Sprintf("%s = $1", schema.Folder.ParentID)
	args := []any{parentID}
	if parentID == nil {
		where = fmt.Sprintf("%s IS NULL", schema.Folder.ParentID)
		args = nil
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s ORDER BY %s ASC, %s ASC, %s ASC`,
		selectColumns(""), schema.Folder.Table, where,
		schema.Folder.SortOrder, schema.Folder.TextFR, schema.Folder.ID)

	return repository.query(ctx, "list_folders_by_parent", query, args...)
}

func (repository *PostgresRepository) List(ctx context.Context, page pagination.Params) ([]*Folder, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC LIMIT $1 OFFSET $2`,
		selectColumns(""), schema.Folder.Table, schema.Folder.ID)

	return repository.query(ctx, "list_folders", query, page.Limit, page.Offset)
}

func (repository *PostgresRepository) ListIDs(ctx context.Context, afterID, limit int) ([]int, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s > $1 ORDER BY %s ASC LIMIT $2`,
		schema.Folder.ID, schema.Folder.Table, schema.Folder.ID, schema.Folder.ID)

	rows, err := repository.db.Query(ctx, query, afterID, limit)
	if err != nil {
		return nil, dberr.Wrap(err, "list_folder_ids")
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[int])
	return ids, dberr.Wrap(err, "scan_folder_id")
}

func (repository *PostgresRepository) ListByWork(ctx context.Context, workID int) ([]*Folder, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s f
		JOIN %s wf ON wf.%s = f.%s
		WHERE wf.%s = $1
		ORDER BY f.%s ASC
	`,
		selectColumns("f."), schema.Folder.Table, schema.WorkFolder.Table,
		schema.WorkFolder.FolderID, schema.Folder.ID,
		schema.WorkFolder.WorkID, schema.Folder.ID,
	)

	return repository.query(ctx, "list_folders_by_work", query, workID)
}

// query runs a multi-row folder select and scans every row.
func (repository *PostgresRepository) query(ctx context.Context, action, query string, args ...any) ([]*Folder, error) {
	rows, err := repository.db.Query(ctx, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}
	defer rows.Close()

	var folders []*Folder
	for rows.Next() {
		folder, err := scanFolder(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_folder")
		}
		folders = append(folders, folder)
	}

	return folders, dberr.Wrap(rows.Err(), action)
}

// scanFolder reads one row produced by [selectColumns].
func scanFolder(row pgx.Row) (*Folder, error) {
	folder := &Folder{Text: make(map[string]string, len(Languages))}
	labels := make([]*string, len(Languages))

	targets := []any{&folder.ID, &folder.ParentID, &folder.SortOrder}
	for i := range labels {
		targets = append(targets, &labels[i])
	}

	if err := row.Scan(targets...); err != nil {
		return nil, err
	}

	for i, lang := range Languages {
		if labels[i] != nil {
			folder.Text[lang] = *labels[i]
		}
	}
	return folder, nil
}
