// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package indexer

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/taibuivan/vubib/internal/index/solrdate"
	"github.com/taibuivan/vubib/pkg/pointer"
	"github.com/taibuivan/vubib/pkg/slice"
)

/*
addDates writes the publication-date block of a work.

Description: The two date attributes are normalized and cross-checked
against the publisher dates; a date that cannot be parsed or that disagrees
with every publisher date is only logged. Every normalized date is collected
once, sorted, and the earliest doubles as the sort date. The last non-empty
attribute value is kept verbatim for display.

Parameters:
  - ctx: context.Context
  - workID: int
  - publisherDates: []string ("YYYY" or "YYYY-MM")

Returns:
  - error: Attribute lookup failures
*/
func (r *run) addDates(ctx context.Context, workID int, publisherDates []string) error {
	var dates []string
	var human string

	// 1. Attribute dates, in precedence order
	for _, field := range []string{attributeDate, attributeDateName} {
		value, err := r.attributes.Value(ctx, workID, field)
		if err != nil {
			return err
		}

		raw := strings.TrimSpace(pointer.Val(value))
		if raw == "" {
			continue
		}
		human = raw

		normalized, ok := solrdate.Sanitize(raw)
		if !ok {
			r.ix.logger.Warn("date_unparseable",
				slog.Int("work_id", workID),
				slog.String("attribute", field),
				slog.String("value", raw),
			)
			continue
		}
		dates = append(dates, normalized)

		if len(publisherDates) > 0 && !solrdate.SharesPrefix(normalized, publisherDates) {
			r.ix.logger.Warn("date_mismatch",
				slog.Int("work_id", workID),
				slog.String("value", normalized),
				slog.String("publisher_dates", strings.Join(publisherDates, ", ")),
			)
		}
	}

	// 2. Publisher dates
	for _, raw := range publisherDates {
		if normalized, ok := solrdate.Sanitize(raw); ok {
			dates = append(dates, normalized)
		}
	}

	// 3. Emit
	dates = slice.Unique(dates)
	slices.Sort(dates)

	b := r.builder
	b.AddValues("all_dates_date_mv", dates, false)
	if len(dates) > 0 {
		b.Add("sort_date", dates[0], false)
	}
	b.Add("human_readable_date_str", human, true)

	return nil
}
