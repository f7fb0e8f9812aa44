// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package attribute

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

func (repository *PostgresRepository) FindByField(ctx context.Context, field string) (*Attribute, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s WHERE %s = $1 ORDER BY %s ASC LIMIT 1`,
		schema.WorkAttribute.ID, schema.WorkAttribute.Field, schema.WorkAttribute.Type,
		schema.WorkAttribute.Table, schema.WorkAttribute.Field, schema.WorkAttribute.ID)

	var attr Attribute
	err := repository.db.QueryRow(ctx, query, field).Scan(&attr.ID, &attr.Field, &attr.Type)
	if err != nil {
		return nil, dberr.Wrap(err, "find_attribute")
	}
	return &attr, nil
}

func (repository *PostgresRepository) FindValue(ctx context.Context, workID, attributeID int) (*string, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s = $2 ORDER BY %s ASC LIMIT 1`,
		schema.WorkWorkAttribute.Value, schema.WorkWorkAttribute.Table,
		schema.WorkWorkAttribute.WorkID, schema.WorkWorkAttribute.WorkAttributeID,
		schema.WorkWorkAttribute.ID)

	var value *string
	if err := repository.db.QueryRow(ctx, query, workID, attributeID).Scan(&value); err != nil {
		return nil, dberr.Wrap(err, "find_attribute_value")
	}
	return value, nil
}

func (repository *PostgresRepository) FindOption(ctx context.Context, optionID int) (*Option, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s WHERE %s = $1`,
		schema.WorkAttributeOption.ID, schema.WorkAttributeOption.WorkAttributeID,
		schema.WorkAttributeOption.Title, schema.WorkAttributeOption.Value,
		schema.WorkAttributeOption.Table, schema.WorkAttributeOption.ID)

	var option Option
	err := repository.db.QueryRow(ctx, query, optionID).
		Scan(&option.ID, &option.AttributeID, &option.Title, &option.Value)
	if err != nil {
		return nil, dberr.Wrap(err, "find_attribute_option")
	}
	return &option, nil
}

func (repository *PostgresRepository) ListOptionSubAttributes(ctx context.Context, optionID int) ([]SubAttribute, error) {
	query := fmt.Sprintf(`
		SELECT s.%s, COALESCE(o.%s, '')
		FROM %s o
		JOIN %s s ON s.%s = o.%s
		WHERE o.%s = $1
		ORDER BY o.%s ASC
	`,
		schema.WorkAttributeSubAttribute.SubAttribute, schema.AttributeOptionSubAttribute.Value,
		schema.AttributeOptionSubAttribute.Table,
		schema.WorkAttributeSubAttribute.Table, schema.WorkAttributeSubAttribute.ID, schema.AttributeOptionSubAttribute.SubAttributeID,
		schema.AttributeOptionSubAttribute.OptionID,
		schema.AttributeOptionSubAttribute.ID,
	)

	rows, err := repository.db.Query(ctx, query, optionID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_option_subattributes")
	}

	subs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (SubAttribute, error) {
		var sub SubAttribute
		err := row.Scan(&sub.Name, &sub.Value)
		return sub, err
	})
	return subs, dberr.Wrap(err, "scan_option_subattribute")
}
