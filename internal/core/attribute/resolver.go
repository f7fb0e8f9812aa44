// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package attribute

import (
	"context"
	"strings"

	"github.com/taibuivan/vubib/internal/platform/dberr"
	"github.com/taibuivan/vubib/pkg/convert"
)

// # Attribute Resolver

/*
Resolver looks up attribute values for works.

A missing definition, a missing association row and a blank Select value are
all ordinary states: they resolve to nil rather than to an error. Only
database failures are returned.

Definitions are cached by field name for the lifetime of the resolver, so a
resolver should live for one indexing run. It is not safe for concurrent use.
*/
type Resolver struct {
	repo        Repository
	definitions map[string]*Attribute
}

// NewResolver constructs a new [Resolver].
func NewResolver(repo Repository) *Resolver {
	return &Resolver{
		repo:        repo,
		definitions: make(map[string]*Attribute),
	}
}

// Value returns the display value a work holds for the named attribute, or
// nil when there is none.
func (resolver *Resolver) Value(ctx context.Context, workID int, field string) (*string, error) {
	detail, err := resolver.resolve(ctx, workID, field, false)
	if err != nil {
		return nil, err
	}
	return detail.Display, nil
}

// Detailed returns the expanded value, including the option sub-attributes
// of Select attributes.
func (resolver *Resolver) Detailed(ctx context.Context, workID int, field string) (Detail, error) {
	return resolver.resolve(ctx, workID, field, true)
}

func (resolver *Resolver) resolve(ctx context.Context, workID int, field string, detailed bool) (Detail, error) {
	attr, err := resolver.definition(ctx, field)
	if err != nil || attr == nil {
		return Detail{}, err
	}

	detail := Detail{Type: attr.Type}

	raw, err := resolver.repo.FindValue(ctx, workID, attr.ID)
	if dberr.IsNotFound(err) {
		return detail, nil
	}
	if err != nil {
		return Detail{}, err
	}
	detail.Raw = raw
	detail.Display = raw

	if attr.Type != TypeSelect || raw == nil || strings.TrimSpace(*raw) == "" {
		return detail, nil
	}

	// Select values reference an option; an unknown option displays as nothing.
	detail.Display = nil
	option, err := resolver.repo.FindOption(ctx, convert.ToInt(*raw))
	if dberr.IsNotFound(err) {
		return detail, nil
	}
	if err != nil {
		return Detail{}, err
	}
	detail.Option = option
	detail.Display = &option.Title

	if detailed {
		subs, err := resolver.repo.ListOptionSubAttributes(ctx, option.ID)
		if err != nil {
			return Detail{}, err
		}
		detail.SubAttributes = subs
	}

	return detail, nil
}

// definition returns the cached attribute for field, loading it on first use.
// Absent definitions are cached as nil.
func (resolver *Resolver) definition(ctx context.Context, field string) (*Attribute, error) {
	if attr, ok := resolver.definitions[field]; ok {
		return attr, nil
	}

	attr, err := resolver.repo.FindByField(ctx, field)
	if dberr.IsNotFound(err) {
		attr, err = nil, nil
	}
	if err != nil {
		return nil, err
	}

	resolver.definitions[field] = attr
	return attr, nil
}
