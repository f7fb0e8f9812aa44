// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package agent

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

func (repository *PostgresRepository) List(ctx context.Context, page pagination.Params) ([]*Agent, error) {
	query := fmt.Sprintf(`
		SELECT %s, COALESCE(%s, ''), COALESCE(%s, ''), COALESCE(%s, ''), COALESCE(%s, ''), COALESCE(%s, '')
		FROM %s
		ORDER BY %s ASC
		LIMIT $1 OFFSET $2
	`,
		schema.Agent.ID, schema.Agent.FirstName, schema.Agent.LastName,
		schema.Agent.AlternateName, schema.Agent.OrganizationName, schema.Agent.Email,
		schema.Agent.Table,
		schema.Agent.ID,
	)

	rows, err := repository.db.Query(ctx, query, page.Limit, page.Offset)
	if err != nil {
		return nil, dberr.Wrap(err, "list_agents")
	}

	agents, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*Agent, error) {
		var a Agent
		err := row.Scan(&a.ID, &a.FirstName, &a.LastName, &a.AlternateName, &a.OrganizationName, &a.Email)
		return &a, err
	})
	return agents, dberr.Wrap(err, "scan_agent")
}

func (repository *PostgresRepository) ListIDs(ctx context.Context, afterID, limit int) ([]int, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s > $1 ORDER BY %s ASC LIMIT $2`,
		schema.Agent.ID, schema.Agent.Table, schema.Agent.ID, schema.Agent.ID)

	rows, err := repository.db.Query(ctx, query, afterID, limit)
	if err != nil {
		return nil, dberr.Wrap(err, "list_agent_ids")
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[int])
	return ids, dberr.Wrap(err, "scan_agent_id")
}

func (repository *PostgresRepository) ListCredits(ctx context.Context, workID int) ([]Credit, error) {
	query := fmt.Sprintf(`
		SELECT a.%s, COALESCE(a.%s, ''), COALESCE(a.%s, ''), COALESCE(t.%s, '')
		FROM %s wa
		JOIN %s a ON a.%s = wa.%s
		LEFT JOIN %s t ON t.%s = wa.%s
		WHERE wa.%s = $1
		ORDER BY wa.%s ASC
	`,
		schema.Agent.ID, schema.Agent.FirstName, schema.Agent.LastName, schema.AgentType.Type,
		schema.WorkAgent.Table,
		schema.Agent.Table, schema.Agent.ID, schema.WorkAgent.AgentID,
		schema.AgentType.Table, schema.AgentType.ID, schema.WorkAgent.AgentTypeID,
		schema.WorkAgent.WorkID,
		schema.WorkAgent.ID,
	)

	rows, err := repository.db.Query(ctx, query, workID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_work_credits")
	}

	credits, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Credit, error) {
		var c Credit
		err := row.Scan(&c.AgentID, &c.FirstName, &c.LastName, &c.Role)
		return c, err
	})
	return credits, dberr.Wrap(err, "scan_work_credit")
}
