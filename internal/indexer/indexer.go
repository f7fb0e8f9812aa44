// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package indexer projects the catalog into the search index.

# Architecture

The [Indexer] walks folders, agents and works in ascending id order, builds
one document per row and submits each document on its own. A record that
cannot be built or written is counted as a failure and the pass continues;
only database page failures and cancellation stop a pass.

The [Deleter] reconciles the index with the database by retracting ids that
fall in the gaps between surviving rows.

Both are single-threaded and hold no state between invocations.
*/
package indexer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/vubib/internal/core/agent"
	"github.com/taibuivan/vubib/internal/core/attribute"
	"github.com/taibuivan/vubib/internal/core/folder"
	"github.com/taibuivan/vubib/internal/core/publisher"
	"github.com/taibuivan/vubib/internal/core/work"
	"github.com/taibuivan/vubib/internal/core/worktype"
	"github.com/taibuivan/vubib/internal/index/document"
	"github.com/taibuivan/vubib/internal/platform/apperr"
	"github.com/taibuivan/vubib/internal/platform/validate"
	"github.com/taibuivan/vubib/pkg/pagination"
)

// Kind selects which record kinds a pass covers.
type Kind string

const (
	KindFolder Kind = "folder"
	KindAgent  Kind = "agent"
	KindWork   Kind = "work"
	KindAll    Kind = "all"
)

// Kinds lists the accepted [Kind] values.
var Kinds = []string{string(KindAll), string(KindFolder), string(KindAgent), string(KindWork)}

// includes reports whether a pass over k covers records of kind other.
func (k Kind) includes(other Kind) bool {
	return k == "" || k == KindAll || k == other
}

// DocumentWriter submits serialized documents to the index.
type DocumentWriter interface {
	Save(ctx context.Context, payload []byte) error
}

// Repositories groups the catalog tables the indexer reads.
type Repositories struct {
	Folders    folder.Repository
	Agents     agent.Repository
	Works      work.Repository
	Attributes attribute.Repository
	Publishers publisher.Repository
	WorkTypes  worktype.Repository
}

// Options selects the records of one pass.
type Options struct {
	Kind Kind

	// Offset and Limit restrict the pass to one page of each selected kind.
	// Both must be set; otherwise every row is walked.
	Offset *int
	Limit  *int
}

func (o Options) paged() bool {
	return o.Offset != nil && o.Limit != nil
}

// Validate checks the kind and the paging window.
func (o Options) Validate() error {
	v := &validate.Validator{}
	v.OneOf("kind", string(o.Kind), Kinds...)
	v.Custom("limit", (o.Offset == nil) != (o.Limit == nil), "Offset and limit must be given together")
	if o.Offset != nil {
		v.Min("offset", *o.Offset, 0)
	}
	if o.Limit != nil {
		v.Min("limit", *o.Limit, 1)
	}
	return v.Err()
}

// Result is the outcome of one record.
type Result struct {
	Kind Kind
	ID   string
	Err  error
}

// Stats are the counters of one invocation.
type Stats struct {
	Total   int
	Success int
	Failure int

	// Failed lists every failed record in processing order.
	Failed []Result
}

// # Indexer

// Indexer builds and submits index documents.
type Indexer struct {
	repos    Repositories
	writer   DocumentWriter
	logger   *slog.Logger
	pageSize int
}

// New constructs an [Indexer]. A non-positive page size falls back to
// [pagination.DefaultLimit].
func New(repos Repositories, writer DocumentWriter, logger *slog.Logger, pageSize int) *Indexer {
	return &Indexer{
		repos:    repos,
		writer:   writer,
		logger:   logger,
		pageSize: pagination.First(pageSize).Limit,
	}
}

/*
IndexAll runs one indexing pass.

Description: Kinds run in the order folder, agent, work. A work pass that is
not preceded by a full folder pass first preloads every folder's title and
top ancestor, since work documents need them for each classification.

Parameters:
  - ctx: context.Context
  - opts: Options (kind and optional offset/limit page)

Returns:
  - Stats: Counters of this invocation, including per-record failures
  - error: Database page failures and cancellation; record failures are only counted
*/
func (ix *Indexer) IndexAll(ctx context.Context, opts Options) (Stats, error) {
	r := ix.newRun()

	if opts.Kind.includes(KindFolder) {
		if err := walk(ctx, ix, opts, ix.repos.Folders.List, func(f *folder.Folder) error {
			r.indexFolder(ctx, f)
			return ctx.Err()
		}); err != nil {
			return r.stats, fmt.Errorf("indexer: folder pass: %w", err)
		}
		r.foldersComplete = !opts.paged()
	}

	if opts.Kind.includes(KindAgent) {
		if err := walk(ctx, ix, opts, ix.repos.Agents.List, func(a *agent.Agent) error {
			r.indexAgent(ctx, a)
			return ctx.Err()
		}); err != nil {
			return r.stats, fmt.Errorf("indexer: agent pass: %w", err)
		}
	}

	if opts.Kind.includes(KindWork) {
		if !r.foldersComplete {
			if err := r.preloadFolders(ctx); err != nil {
				return r.stats, fmt.Errorf("indexer: folder preload: %w", err)
			}
		}

		if err := walk(ctx, ix, opts, ix.repos.Works.List, func(w *work.Work) error {
			r.indexWork(ctx, w)
			return ctx.Err()
		}); err != nil {
			return r.stats, fmt.Errorf("indexer: work pass: %w", err)
		}
	}

	ix.logger.Info("index_pass_complete",
		slog.String("kind", string(opts.Kind)),
		slog.Int("total", r.stats.Total),
		slog.Int("success", r.stats.Success),
		slog.Int("failure", r.stats.Failure),
	)

	return r.stats, nil
}

// walk visits either the requested page or every page of a table.
func walk[T any](ctx context.Context, ix *Indexer, opts Options, fetch pagination.Fetcher[T], visit func(T) error) error {
	if opts.paged() {
		return pagination.Once(ctx, pagination.Params{Offset: *opts.Offset, Limit: *opts.Limit}, fetch, visit)
	}
	return pagination.Walk(ctx, ix.pageSize, fetch, visit)
}

// # Run State

// run holds the state of one invocation: counters, the document builder and
// the per-run caches.
type run struct {
	ix         *Indexer
	builder    *document.Builder
	folders    *folder.Resolver
	attributes *attribute.Resolver
	workTypes  *worktype.Labels
	stats      Stats

	// summaries caches the best title and top ancestor of every folder seen.
	summaries       map[int]folderSummary
	foldersComplete bool
}

func (ix *Indexer) newRun() *run {
	return &run{
		ix:         ix,
		builder:    document.New(),
		folders:    folder.NewResolver(ix.repos.Folders),
		attributes: attribute.NewResolver(ix.repos.Attributes),
		workTypes:  worktype.NewLabels(ix.repos.WorkTypes),
		summaries:  make(map[int]folderSummary),
	}
}

// submit closes the current document, writes it and records the outcome.
// A build error short-circuits the write.
func (r *run) submit(ctx context.Context, kind Kind, id string, buildErr error) {
	if buildErr == nil {
		var payload []byte
		if payload, buildErr = r.builder.Close(); buildErr == nil {
			buildErr = r.ix.writer.Save(ctx, payload)
		}
	}
	r.record(Result{Kind: kind, ID: id, Err: buildErr})
}

func (r *run) record(result Result) {
	r.stats.Total++

	if result.Err != nil {
		r.stats.Failure++
		r.stats.Failed = append(r.stats.Failed, result)
		r.ix.logger.Error("record_failed",
			slog.Int("total", r.stats.Total),
			slog.String("kind", string(result.Kind)),
			slog.String("id", result.ID),
			slog.String("code", apperr.CodeOf(result.Err)),
			slog.String("error", result.Err.Error()),
		)
		return
	}

	r.stats.Success++
	r.ix.logger.Info("record_written",
		slog.Int("total", r.stats.Total),
		slog.String("kind", string(result.Kind)),
		slog.String("id", result.ID),
	)
}
