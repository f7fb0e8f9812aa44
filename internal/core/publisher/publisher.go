// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package publisher resolves the imprints attached to works.
package publisher

import (
	"strconv"

	"github.com/taibuivan/vubib/pkg/convert"
)

// Imprint is one publication statement of a work: who published it, where
// and when.
type Imprint struct {
	PublisherID   int
	PublisherName string
	Location      string

	PublishYear     *int
	PublishMonth    *int
	PublishYearEnd  *int
	PublishMonthEnd *int
}

// Year returns the publication year as text, or "" when unknown.
func (i Imprint) Year() string {
	if i.PublishYear == nil || *i.PublishYear == 0 {
		return ""
	}
	return strconv.Itoa(*i.PublishYear)
}

// DateKey renders the publication date as "YYYY" or "YYYY-MM" (month
// zero-padded), or "" when the year is unknown.
func (i Imprint) DateKey() string {
	year := i.Year()
	if year == "" || i.PublishMonth == nil || *i.PublishMonth == 0 {
		return year
	}
	return year + "-" + convert.PadInt(*i.PublishMonth, 2)
}
