// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package indexer

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/taibuivan/vubib/internal/platform/constants"
	"github.com/taibuivan/vubib/pkg/pagination"
)

// IDLister pages through the ascending primary keys of one table.
type IDLister interface {
	ListIDs(ctx context.Context, afterID, limit int) ([]int, error)
}

// RecordChecker reports whether a document id is present in the index.
type RecordChecker interface {
	HasRecord(ctx context.Context, id string) (bool, error)
}

// RecordRemover retracts documents from the index.
type RecordRemover interface {
	DeleteRecords(ctx context.Context, ids []string) error
}

// deletePass is one table reconciled by the [Deleter].
type deletePass struct {
	kind   Kind
	prefix string
	ids    IDLister
}

// # Deleter

// Deleter retracts index documents whose database rows no longer exist.
type Deleter struct {
	passes   []deletePass
	reader   RecordChecker
	writer   RecordRemover
	logger   *slog.Logger
	pageSize int
}

// NewDeleter constructs a [Deleter] over the work, agent and folder tables,
// reconciled in that order.
func NewDeleter(repos Repositories, reader RecordChecker, writer RecordRemover, logger *slog.Logger, pageSize int) *Deleter {
	return &Deleter{
		passes: []deletePass{
			{kind: KindWork, prefix: constants.PrefixWork, ids: repos.Works},
			{kind: KindAgent, prefix: constants.PrefixAgent, ids: repos.Agents},
			{kind: KindFolder, prefix: constants.PrefixFolder, ids: repos.Folders},
		},
		reader:   reader,
		writer:   writer,
		logger:   logger,
		pageSize: pagination.First(pageSize).Limit,
	}
}

/*
Delete reconciles every table with the index.

Description: Ids are walked in ascending order. Every id skipped between two
surviving rows, starting from 0, is looked up in the index and retracted when
present. Ids above the highest surviving row are never examined.

Parameters:
  - ctx: context.Context

Returns:
  - int: Number of documents retracted
  - error: Database page failures and cancellation
*/
func (d *Deleter) Delete(ctx context.Context) (int, error) {
	total := 0
	for _, pass := range d.passes {
		count, err := d.deleteThings(ctx, pass)
		total += count
		if err != nil {
			return total, fmt.Errorf("deleter: %s pass: %w", pass.kind, err)
		}
	}

	d.logger.Info("delete_pass_complete", slog.Int("deleted", total))
	return total, nil
}

func (d *Deleter) deleteThings(ctx context.Context, pass deletePass) (int, error) {
	deleted := 0
	expected := 0

	err := pagination.WalkKeys(ctx, -1, d.pageSize, pass.ids.ListIDs, func(id int) error {
		for ; expected < id; expected++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			if d.deleteGap(ctx, pass, expected) {
				deleted++
			}
		}
		expected = id + 1
		return nil
	})

	d.logger.Info("delete_kind_complete",
		slog.String("kind", string(pass.kind)),
		slog.Int("deleted", deleted),
	)
	return deleted, err
}

// deleteGap retracts one missing id when the index still holds it. Transport
// failures are logged and the id is skipped.
func (d *Deleter) deleteGap(ctx context.Context, pass deletePass, id int) bool {
	docID := pass.prefix + strconv.Itoa(id)

	found, err := d.reader.HasRecord(ctx, docID)
	if err == nil && found {
		err = d.writer.DeleteRecords(ctx, []string{docID})
	}
	if err != nil {
		d.logger.Warn("delete_gap_failed",
			slog.String("kind", string(pass.kind)),
			slog.String("id", docID),
			slog.String("error", err.Error()),
		)
		return false
	}
	if !found {
		return false
	}

	d.logger.Info("delete_gap_record",
		slog.String("kind", string(pass.kind)),
		slog.String("id", docID),
	)
	return true
}
