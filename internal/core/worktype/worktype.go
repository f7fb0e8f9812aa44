// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package worktype resolves the format label of a work ("Book", "Article").
package worktype

import (
	"context"

	"github.com/taibuivan/vubib/internal/platform/dberr"
)

// LabelLanguage is the translation used for index labels.
const LabelLanguage = "en"

// WorkType is one kind of catalogued work.
type WorkType struct {
	ID int

	// Type is the translated label, or the raw type column when the
	// translation is missing.
	Type string
}

// Repository defines the read-only data access contract for work types.
type Repository interface {

	// FindByID returns the work type with its label in lang. Missing rows
	// yield dberr.ErrNotFound.
	FindByID(ctx context.Context, id int, lang string) (*WorkType, error)
}

// Labels memoizes work type labels for one run. The table holds a handful
// of rows, so every label is fetched at most once.
type Labels struct {
	repo  Repository
	cache map[int]string
}

// NewLabels constructs a new [Labels].
func NewLabels(repo Repository) *Labels {
	return &Labels{repo: repo, cache: make(map[int]string)}
}

// Label returns the label for a type id, or "" for a nil or unknown id.
func (labels *Labels) Label(ctx context.Context, id *int) (string, error) {
	if id == nil {
		return "", nil
	}
	if label, ok := labels.cache[*id]; ok {
		return label, nil
	}

	wt, err := labels.repo.FindByID(ctx, *id, LabelLanguage)
	if err != nil && !dberr.IsNotFound(err) {
		return "", err
	}

	label := ""
	if wt != nil {
		label = wt.Type
	}
	labels.cache[*id] = label
	return label, nil
}
