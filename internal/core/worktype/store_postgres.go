// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package worktype

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/vubib/internal/platform/database/schema"
	"github.com/taibuivan/vubib/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) FindByID(ctx context.Context, id int, lang string) (*WorkType, error) {
	query := fmt.Sprintf(`
		SELECT w.%s, COALESCE(NULLIF(t.%s, ''), w.%s, '')
		FROM %s w
		LEFT JOIN %s t ON t.%s = w.%s AND t.%s = $2 AND t.%s = $3
		WHERE w.%s = $1
	`,
		schema.WorkType.ID, schema.Translations.Text, schema.WorkType.Type,
		schema.WorkType.Table,
		schema.Translations.Table, schema.Translations.ID, schema.WorkType.ID,
		schema.Translations.TableName, schema.Translations.Lang,
		schema.WorkType.ID,
	)

	var wt WorkType
	if err := repository.db.QueryRow(ctx, query, id, schema.WorkType.Table, lang).Scan(&wt.ID, &wt.Type); err != nil {
		return nil, dberr.Wrap(err, "find_worktype")
	}
	return &wt, nil
}
