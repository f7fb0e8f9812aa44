// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package folder

import (
	"context"
	"fmt"
	"slices"

	"github.com/taibuivan/vubib/internal/platform/dberr"
)

// # Hierarchy Resolver

// Resolver walks the classification tree on top of a [Repository].
//
// Every walk is iterative and keeps a visited set, so a corrupted tree yields
// a HIERARCHY_ERROR wrapping [ErrCycle] instead of looping forever.
type Resolver struct {
	repo Repository
}

// NewResolver constructs a new [Resolver].
func NewResolver(repo Repository) *Resolver {
	return &Resolver{repo: repo}
}

/*
ParentChainRecord returns the ancestor rows of the folder, excluding the folder
itself. The result is nearest-first unless reverse is set, in which case the
root comes first. A root folder yields an empty slice.

Returns:
  - []*Folder: The ancestor rows
  - error: dberr.ErrNotFound when the folder is missing, or a hierarchy error
*/
func (resolver *Resolver) ParentChainRecord(ctx context.Context, id int, reverse bool) ([]*Folder, error) {
	folder, err := resolver.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	chain, err := resolver.AncestorsOf(ctx, folder)
	if err != nil {
		return nil, err
	}

	if reverse {
		slices.Reverse(chain)
	}
	return chain, nil
}

/*
AncestorsOf walks up from an already loaded folder and returns its ancestors
nearest-first.

A parent_id equal to the row's own id ends the walk, the same as a nil parent.
Any other revisit is reported as a cycle.
*/
func (resolver *Resolver) AncestorsOf(ctx context.Context, folder *Folder) ([]*Folder, error) {
	seen := map[int]struct{}{folder.ID: {}}
	var chain []*Folder

	current := folder
	for !current.IsRoot() {
		parentID := *current.ParentID
		if _, revisited := seen[parentID]; revisited {
			return nil, hierarchyError(folder.ID, fmt.Errorf("%w: %d revisited", ErrCycle, parentID))
		}
		seen[parentID] = struct{}{}

		parent, err := resolver.repo.FindByID(ctx, parentID)
		if dberr.IsNotFound(err) {
			return nil, hierarchyError(folder.ID, fmt.Errorf("%w: %d", ErrMissingParent, parentID))
		}
		if err != nil {
			return nil, err
		}

		chain = append(chain, parent)
		current = parent
	}

	return chain, nil
}

// ParentChain returns the ancestor ids of the folder, root-first. The folder
// itself is not part of the chain.
func (resolver *Resolver) ParentChain(ctx context.Context, id int) ([]int, error) {
	chain, err := resolver.ParentChainRecord(ctx, id, true)
	if err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(chain))
	for _, folder := range chain {
		ids = append(ids, folder.ID)
	}
	return ids, nil
}

/*
ParentTree returns one sibling set per level of the folder's path, root level
first and the folder's own level last. In each set the folder lying on the
path is flagged as selected.
*/
func (resolver *Resolver) ParentTree(ctx context.Context, id int) ([][]Sibling, error) {
	folder, err := resolver.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	path, err := resolver.AncestorsOf(ctx, folder)
	if err != nil {
		return nil, err
	}
	slices.Reverse(path)
	path = append(path, folder)

	tree := make([][]Sibling, 0, len(path))
	for _, member := range path {
		rows, err := resolver.Siblings(ctx, member.ParentID)
		if err != nil {
			return nil, err
		}

		level := make([]Sibling, 0, len(rows))
		for _, row := range rows {
			level = append(level, Sibling{Folder: row, Selected: row.ID == member.ID})
		}
		tree = append(tree, level)
	}

	return tree, nil
}

// Children returns the immediate children of a folder, ordered by sort_order
// then French label.
func (resolver *Resolver) Children(ctx context.Context, parentID int) ([]*Folder, error) {
	return resolver.repo.ListByParent(ctx, &parentID)
}

// Siblings returns every folder sharing the given parent. A nil parent
// selects the root set.
func (resolver *Resolver) Siblings(ctx context.Context, parentID *int) ([]*Folder, error) {
	return resolver.repo.ListByParent(ctx, parentID)
}

// Top returns the id of the root-most ancestor, or the folder's own id when
// it has no parent.
func (resolver *Resolver) Top(ctx context.Context, id int) (int, error) {
	folder, err := resolver.repo.FindByID(ctx, id)
	if err != nil {
		return 0, err
	}

	top, err := resolver.TopOf(ctx, folder)
	if err != nil {
		return 0, err
	}
	return top.ID, nil
}

// TopOf is [Resolver.Top] for an already loaded folder, returning the row.
func (resolver *Resolver) TopOf(ctx context.Context, folder *Folder) (*Folder, error) {
	chain, err := resolver.AncestorsOf(ctx, folder)
	if err != nil {
		return nil, err
	}

	if len(chain) == 0 {
		return folder, nil
	}
	return chain[len(chain)-1], nil
}
