// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package folder

import (
	"context"

	"github.com/taibuivan/vubib/pkg/pagination"
)

// # Folder Data Access

// Repository defines the read-only data access contract for folders.
type Repository interface {

	/*
		FindByID returns the folder with the given id.

		Returns:
		  - *Folder: The folder row
		  - error: dberr.ErrNotFound if missing
	*/
	FindByID(ctx context.Context, id int) (*Folder, error)

	/*
		ListByParent returns the folders sharing a parent, ordered by
		sort_order then French label. A nil parent selects the roots.
	*/
	ListByParent(ctx context.Context, parentID *int) ([]*Folder, error)

	// List returns one page of folders in ascending id order.
	List(ctx context.Context, page pagination.Params) ([]*Folder, error)

	// ListIDs returns up to limit folder ids greater than afterID, ascending.
	ListIDs(ctx context.Context, afterID, limit int) ([]int, error)

	// ListByWork returns the folders a work is classified under, ascending by id.
	ListByWork(ctx context.Context, workID int) ([]*Folder, error)
}
