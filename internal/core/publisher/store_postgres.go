// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package publisher

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
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

func (repository *PostgresRepository) ListByWork(ctx context.Context, workID int) ([]Imprint, error) {
	query := fmt.Sprintf(`
		SELECT p.%s, COALESCE(p.%s, ''), COALESCE(l.%s, ''),
		       wp.%s, wp.%s, wp.%s, wp.%s
		FROM %s wp
		JOIN %s p ON p.%s = wp.%s
		LEFT JOIN %s l ON l.%s = wp.%s
		WHERE wp.%s = $1
		ORDER BY wp.%s ASC
	`,
		schema.Publisher.ID, schema.Publisher.Name, schema.PublisherLocation.Location,
		schema.WorkPublisher.PublishYear, schema.WorkPublisher.PublishMonth,
		schema.WorkPublisher.PublishYearEnd, schema.WorkPublisher.PublishMonthEnd,
		schema.WorkPublisher.Table,
		schema.Publisher.Table, schema.Publisher.ID, schema.WorkPublisher.PublisherID,
		schema.PublisherLocation.Table, schema.PublisherLocation.ID, schema.WorkPublisher.LocationID,
		schema.WorkPublisher.WorkID,
		schema.WorkPublisher.ID,
	)

	rows, err := repository.db.Query(ctx, query, workID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_work_imprints")
	}

	imprints, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Imprint, error) {
		var i Imprint
		err := row.Scan(
			&i.PublisherID, &i.PublisherName, &i.Location,
			&i.PublishYear, &i.PublishMonth, &i.PublishYearEnd, &i.PublishMonthEnd,
		)
		return i, err
	})
	return imprints, dberr.Wrap(err, "scan_work_imprint")
}
