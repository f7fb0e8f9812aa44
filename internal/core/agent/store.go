// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package agent

import (
	"context"

	"github.com/taibuivan/vubib/pkg/pagination"
)

// # Agent Data Access

// Repository defines the read-only data access contract for agents.
type Repository interface {

	// List returns one page of agents in ascending id order.
	List(ctx context.Context, page pagination.Params) ([]*Agent, error)

	// ListIDs returns up to limit agent ids greater than afterID, ascending.
	ListIDs(ctx context.Context, afterID, limit int) ([]int, error)

	/*
		ListCredits returns the agents credited on a work together with their
		role label, in association order.
	*/
	ListCredits(ctx context.Context, workID int) ([]Credit, error)
}
