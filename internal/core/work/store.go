// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package work

import (
	"context"

	"github.com/taibuivan/vubib/pkg/pagination"
)

// # Work Data Access

// Repository defines the read-only data access contract for works.
type Repository interface {

	// List returns one page of works in ascending id order.
	List(ctx context.Context, page pagination.Params) ([]*Work, error)

	/*
		FindSummary returns the id and title of a work.

		Returns:
		  - *Summary: The work summary
		  - error: dberr.ErrNotFound if missing
	*/
	FindSummary(ctx context.Context, id int) (*Summary, error)

	// ListChildren returns the works whose parent is the given work, ascending by id.
	ListChildren(ctx context.Context, parentID int) ([]Summary, error)

	// ListIDs returns up to limit work ids greater than afterID, ascending.
	ListIDs(ctx context.Context, afterID, limit int) ([]int, error)
}
