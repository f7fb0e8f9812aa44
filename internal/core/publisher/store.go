// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package publisher

import "context"

// Repository defines the read-only data access contract for imprints.
type Repository interface {

	// ListByWork returns the imprints of a work in association order.
	ListByWork(ctx context.Context, workID int) ([]Imprint, error)
}
