// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package work holds the catalogued bibliographic records.
package work

// Status labels written to the index.
const (
	StatusActive      = "Active"
	StatusNeedsReview = "Needs Review"
	StatusInactive    = "Inactive"
)

// Work is one catalogued bibliographic entity.
type Work struct {
	ID            int
	Title         string
	Subtitle      string
	ParallelTitle string
	Description   string
	Status        *int16
	TypeID        *int

	// ParentID is the optional parent work (column work_id). It is a soft
	// reference and may point at a deleted work.
	ParentID *int
}

// Summary is the id and title of a related work.
type Summary struct {
	ID    int
	Title string
}

// StatusLabel maps the stored status to its label: NULL is inactive, 0 and 2
// both mean the record needs review, and every other value is active.
func StatusLabel(status *int16) string {
	switch {
	case status == nil:
		return StatusInactive
	case *status == 0 || *status == 2:
		return StatusNeedsReview
	default:
		return StatusActive
	}
}

// FullTitle returns "title: subtitle", or the title alone without a subtitle.
func (w *Work) FullTitle() string {
	if w.Subtitle == "" {
		return w.Title
	}
	return w.Title + ": " + w.Subtitle
}
