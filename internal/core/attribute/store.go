// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package attribute

import "context"

// # Attribute Data Access

// Repository defines the read-only data access contract for attributes.
type Repository interface {

	/*
		FindByField returns the attribute definition with the given field name.

		Returns:
		  - *Attribute: The definition
		  - error: dberr.ErrNotFound if no attribute carries that name
	*/
	FindByField(ctx context.Context, field string) (*Attribute, error)

	/*
		FindValue returns the value a work holds for an attribute. A missing
		association row yields dberr.ErrNotFound; a NULL value yields nil.
	*/
	FindValue(ctx context.Context, workID, attributeID int) (*string, error)

	// FindOption returns a Select option by id.
	FindOption(ctx context.Context, optionID int) (*Option, error)

	// ListOptionSubAttributes returns the sub-attributes of an option, in id order.
	ListOptionSubAttributes(ctx context.Context, optionID int) ([]SubAttribute, error)
}
