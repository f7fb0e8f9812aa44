// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination provides shared types and helpers for paged table walks.
//
// # Overview
//
// Batch passes read whole tables through a fixed-size window so that memory
// stays bounded regardless of catalog size. [Walk] drives the window forward
// until a short page signals the end of the table.
package pagination

import (
	"cmp"
	"context"
)

const (
	// DefaultLimit is the number of rows per page if not specified.
	DefaultLimit = 500
)

// Params is one LIMIT/OFFSET window.
type Params struct {
	Offset int
	Limit  int
}

// First returns the opening window for a walk with the given page size.
// Non-positive sizes fall back to [DefaultLimit].
func First(limit int) Params {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return Params{Offset: 0, Limit: limit}
}

// Next returns the window that follows p.
func (p Params) Next() Params {
	return Params{Offset: p.Offset + p.Limit, Limit: p.Limit}
}

// Exhausted reports whether a page of n rows was the last one.
func (p Params) Exhausted(n int) bool {
	return n < p.Limit
}

// Fetcher loads one page of rows.
type Fetcher[T any] func(ctx context.Context, page Params) ([]T, error)

// Walk calls visit for every row returned by fetch, page by page, starting at
// the first window of the given size. It stops at the first short page, at the
// first fetch error, or when visit returns an error.
func Walk[T any](ctx context.Context, size int, fetch Fetcher[T], visit func(T) error) error {
	for page := First(size); ; page = page.Next() {
		if err := ctx.Err(); err != nil {
			return err
		}

		rows, err := fetch(ctx, page)
		if err != nil {
			return err
		}

		for _, row := range rows {
			if err := visit(row); err != nil {
				return err
			}
		}

		if page.Exhausted(len(rows)) {
			return nil
		}
	}
}

// Once visits a single explicit window, used for batched re-indexing where
// the caller chooses the offset and limit.
func Once[T any](ctx context.Context, page Params, fetch Fetcher[T], visit func(T) error) error {
	rows, err := fetch(ctx, page)
	if err != nil {
		return err
	}

	for _, row := range rows {
		if err := visit(row); err != nil {
			return err
		}
	}
	return nil
}

// KeyFetcher loads up to limit ascending keys greater than after.
type KeyFetcher[K cmp.Ordered] func(ctx context.Context, after K, limit int) ([]K, error)

// WalkKeys visits every key returned by fetch in ascending order, seeking
// past the last key of each page instead of using an offset. Start must be
// lower than every key of the table.
func WalkKeys[K cmp.Ordered](ctx context.Context, start K, size int, fetch KeyFetcher[K], visit func(K) error) error {
	limit := First(size).Limit
	for after := start; ; {
		if err := ctx.Err(); err != nil {
			return err
		}

		keys, err := fetch(ctx, after, limit)
		if err != nil {
			return err
		}

		for _, key := range keys {
			if err := visit(key); err != nil {
				return err
			}
		}

		if len(keys) < limit {
			return nil
		}
		after = keys[len(keys)-1]
	}
}
