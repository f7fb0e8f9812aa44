// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package indexer

import (
	"context"
	"slices"
	"strconv"

	"github.com/taibuivan/vubib/internal/core/publisher"
	"github.com/taibuivan/vubib/internal/core/work"
	"github.com/taibuivan/vubib/internal/platform/constants"
	"github.com/taibuivan/vubib/internal/platform/dberr"
	"github.com/taibuivan/vubib/pkg/pointer"
	"github.com/taibuivan/vubib/pkg/query"
	"github.com/taibuivan/vubib/pkg/sortkey"
)

// attributeField maps a custom attribute to its index field.
type attributeField struct {
	attribute string
	field     string
}

// attributeFields lists the custom attributes copied onto work documents, in
// output order. Two attributes may share a field.
var attributeFields = []attributeField{
	{"ISBN", "isbn"},
	{"ISSN", "issn"},
	{"Volume", "container_volume"},
	{"Part", "part_str"},
	{"Issue", "container_issue"},
	{"Pages", "container_pages_str"},
	{"Total Pages", "container_total_pages_str"},
	{"Link to Full Text", "url"},
	{"URL", "url"},
	{"Abstract", "abstract_str"},
	{"Number", "number_str"},
	{"Notes", "notes_str"},
	{"Edition", "edition"},
	{"Original Language", "original_language_str"},
	{"Original Title", "original_title_str"},
	{"Proceedings Title", "proceedings_title_str"},
	{"Series", "series"},
	{"Periodical", "periodical_str"},
	{"Material Designation", "material_designation_str"},
	{"Institution", "degree_institution_str"},
}

// subAttributeFields promotes option sub-attributes to their own fields.
var subAttributeFields = map[string]string{
	"ISSN": "issn",
}

// Work attributes with dedicated handling.
const (
	attributeLanguage = "Language"
	attributeDate     = "Date (MM/DD/YYYY)"
	attributeDateName = "Date Name"
)

// # Work Documents

// indexWork builds and submits the document of one work.
func (r *run) indexWork(ctx context.Context, w *work.Work) {
	id := constants.PrefixWork + strconv.Itoa(w.ID)
	r.submit(ctx, KindWork, id, r.buildWork(ctx, w, id))
}

func (r *run) buildWork(ctx context.Context, w *work.Work, id string) error {
	b := r.builder
	b.Open()

	// 1. Identity
	b.Add("id", id, true)
	b.Add("record_format", constants.RecordFormatWork, true)
	b.Add("collection", constants.Collection, true)

	// 2. Classification
	if err := r.addClassifications(ctx, w); err != nil {
		return err
	}

	// 3. Titles
	r.addTitles(w)

	// 4. Credits, description and status
	credits, err := r.ix.repos.Agents.ListCredits(ctx, w.ID)
	if err != nil {
		return err
	}
	for _, credit := range credits {
		b.Add("author_role", credit.Role, true)
		b.Add("author", credit.Name(), true)
	}

	b.Add("description", w.Description, true)
	b.Add("status_str", work.StatusLabel(w.Status), true)

	// 5. Related works
	if err := r.addRelatedWorks(ctx, w); err != nil {
		return err
	}

	// 6. Format
	format, err := r.workTypes.Label(ctx, w.TypeID)
	if err != nil {
		return err
	}
	b.Add("format", format, true)

	// 7. Custom attributes
	if err := r.addAttributes(ctx, w.ID); err != nil {
		return err
	}

	// 8. Imprints and dates
	imprints, err := r.ix.repos.Publishers.ListByWork(ctx, w.ID)
	if err != nil {
		return err
	}
	publisherDates := r.addImprints(imprints)

	return r.addDates(ctx, w.ID, publisherDates)
}

/*
addClassifications writes one hierarchy block per folder the work is filed
under, followed by the topic axis of that folder's full chain.
*/
func (r *run) addClassifications(ctx context.Context, w *work.Work) error {
	b := r.builder

	folders, err := r.ix.repos.Folders.ListByWork(ctx, w.ID)
	if err != nil {
		return err
	}

	for _, f := range folders {
		summary, err := r.summaryOf(ctx, f)
		if err != nil {
			return err
		}

		b.Add("hierarchy_parent_id", constants.PrefixFolder+strconv.Itoa(f.ID), false)
		b.Add("hierarchy_parent_title", f.BestTitle(), true)
		b.Add("hierarchy_browse", browse(f), false)
		b.Add("hierarchy_top_id", constants.PrefixFolder+strconv.Itoa(summary.topID), false)
		b.Add("hierarchy_top_title", summary.topTitle, true)
		b.Add("hierarchy_sequence", sortkey.Title(w.Title), false)

		chain, err := r.folders.AncestorsOf(ctx, f)
		if err != nil {
			return err
		}
		slices.Reverse(chain)
		r.addTopics(append(chain, f))
	}

	return nil
}

// addTitles writes the title slices. Only the sortable text copy, the
// parallel title and the full title feed the all-fields bag.
func (r *run) addTitles(w *work.Work) {
	b := r.builder

	b.Add("title_short", w.Title, false)
	b.Add("title_sub", w.Subtitle, false)

	full := w.FullTitle()
	b.Add("title", full, false)

	sortTitle := sortkey.Title(full)
	b.Add("title_sort", sortTitle, false)
	b.Add("title_sort_txt", sortTitle, true)

	b.Add("title_alt", w.ParallelTitle, true)
	b.Add("title_full", full, true)
}

// addRelatedWorks writes the parent work, when it still exists, and every
// child work.
func (r *run) addRelatedWorks(ctx context.Context, w *work.Work) error {
	b := r.builder

	if pointer.Val(w.ParentID) > 0 {
		parent, err := r.ix.repos.Works.FindSummary(ctx, *w.ParentID)
		switch {
		case dberr.IsNotFound(err):
		case err != nil:
			return err
		default:
			b.Add("parent_work_str", parent.Title, true)
			b.Add("parent_work_id_str", strconv.Itoa(parent.ID), true)
		}
	}

	children, err := r.ix.repos.Works.ListChildren(ctx, w.ID)
	if err != nil {
		return err
	}
	for _, child := range children {
		b.Add("child_work_str_mv", child.Title, true)
		b.Add("child_work_id_str_mv", strconv.Itoa(child.ID), true)
	}

	return nil
}

// addAttributes writes the mapped custom attributes and the language list.
func (r *run) addAttributes(ctx context.Context, workID int) error {
	b := r.builder

	for _, mapping := range attributeFields {
		detail, err := r.attributes.Detailed(ctx, workID, mapping.attribute)
		if err != nil {
			return err
		}

		b.Add(mapping.field, pointer.Val(detail.Display), true)
		for _, sub := range detail.SubAttributes {
			if field, ok := subAttributeFields[sub.Name]; ok {
				b.Add(field, sub.Value, true)
			}
		}
	}

	languages, err := r.attributes.Value(ctx, workID, attributeLanguage)
	if err != nil {
		return err
	}
	b.AddValues("language", query.StringSlice(pointer.Val(languages), ";"), true)

	return nil
}

// addImprints writes the publisher fields and returns the publication dates
// ("YYYY" or "YYYY-MM") used to cross-check the attribute dates.
func (r *run) addImprints(imprints []publisher.Imprint) []string {
	b := r.builder

	if len(imprints) > 0 {
		b.Add("publishDateSort", imprints[0].Year(), true)
	}

	var dates []string
	for _, imprint := range imprints {
		if key := imprint.DateKey(); key != "" {
			dates = append(dates, key)
		}
		b.Add("publishDate", imprint.Year(), true)
		b.Add("publisher", imprint.PublisherName, true)
		b.Add("publishPlace_str_mv", imprint.Location, true)
	}

	return dates
}
