// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package indexer

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/taibuivan/vubib/internal/core/folder"
	"github.com/taibuivan/vubib/internal/platform/constants"
	"github.com/taibuivan/vubib/pkg/pagination"
	"github.com/taibuivan/vubib/pkg/sortkey"
)

// folderSummary is what a work document needs to know about a folder.
type folderSummary struct {
	title    string
	topID    int
	topTitle string
}

// # Folder Documents

// indexFolder builds and submits the document of one folder.
func (r *run) indexFolder(ctx context.Context, f *folder.Folder) {
	id := constants.PrefixFolder + strconv.Itoa(f.ID)
	r.submit(ctx, KindFolder, id, r.buildFolder(ctx, f, id))
}

func (r *run) buildFolder(ctx context.Context, f *folder.Folder, id string) error {
	b := r.builder
	b.Open()

	// 1. Identity
	b.Add("id", id, true)
	b.Add("record_format", constants.RecordFormatFolder, true)
	b.Add("collection", constants.Collection, true)

	// 2. Titles
	title := f.BestTitle()
	b.Add("title_short", title, true)
	b.Add("title", title, true)
	for _, lang := range folder.Languages {
		b.Add("title_"+lang+"_str", f.Label(lang), true)
	}
	sortTitle := sortkey.Title(title)
	b.Add("title_sort", sortTitle, true)

	// 3. Hierarchy
	b.Add("is_hierarchy_id", id, true)
	b.Add("is_hierarchy_title", title, true)
	b.Add("hierarchy_sequence", sortkey.Sequence(f.SortOrder, sortTitle), false)

	ancestors, err := r.folders.AncestorsOf(ctx, f)
	if err != nil {
		return err
	}

	parent, top := f, f
	if len(ancestors) > 0 {
		parent, top = ancestors[0], ancestors[len(ancestors)-1]
	}
	if len(ancestors) > 0 || f.IsSelfParented() {
		b.Add("hierarchy_parent_id", constants.PrefixFolder+strconv.Itoa(parent.ID), true)
		b.Add("hierarchy_parent_title", parent.BestTitle(), true)
		b.Add("hierarchy_browse", browse(parent), true)
	}
	b.Add("hierarchy_top_id", constants.PrefixFolder+strconv.Itoa(top.ID), true)
	b.Add("hierarchy_top_title", top.BestTitle(), true)

	r.summaries[f.ID] = folderSummary{title: title, topID: top.ID, topTitle: top.BestTitle()}

	// 4. Topic axis over the ancestors, root first
	slices.Reverse(ancestors)
	r.addTopics(ancestors)

	return nil
}

// browse renders a hierarchy_browse value: "title{{{_ID_}}}id".
func browse(f *folder.Folder) string {
	return f.BestTitle() + constants.BrowseSeparator + strconv.Itoa(f.ID)
}

// # Topic Block

/*
addTopics writes the topic fields for a root-first folder chain.

Per language it emits the delimited display string, a space-joined
searchable copy and one breadcrumb per prefix of the chain:

	0/Histoire/
	1/Histoire/Moyen Age/

A literal "/" inside a label is replaced by a placeholder so the breadcrumb
separator stays unambiguous. An empty chain writes nothing.
*/
func (r *run) addTopics(chain []*folder.Folder) {
	if len(chain) == 0 {
		return
	}
	b := r.builder

	ids := make([]string, len(chain))
	for i, f := range chain {
		ids[i] = strconv.Itoa(f.ID)
	}
	b.Add("topic_id_str_mv", joinTopic(ids), true)

	for _, lang := range folder.Languages {
		labels := make([]string, len(chain))
		for i, f := range chain {
			labels[i] = f.Label(lang)
		}

		b.Add("topic_text_"+lang+"_str_mv", joinTopic(labels), true)
		b.Add("topic", strings.Join(labels, " "), true)

		for depth := range labels {
			b.Add("topic_hierarchy_"+lang+"_str_mv", breadcrumb(labels[:depth+1]), true)
		}
	}
}

// joinTopic joins chain members with the topic delimiter, keeping a trailing one.
func joinTopic(parts []string) string {
	return strings.Join(parts, constants.TopicDelimiter) + constants.TopicDelimiter
}

// breadcrumb renders "depth/label0/.../labelN/" for a chain prefix.
func breadcrumb(labels []string) string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(len(labels) - 1))
	sb.WriteByte('/')
	for _, label := range labels {
		sb.WriteString(strings.ReplaceAll(label, "/", constants.SlashPlaceholder))
		sb.WriteByte('/')
	}
	return sb.String()
}

// # Folder Summaries

/*
preloadFolders computes the summary of every folder before a work pass.

A folder whose chain is broken is logged and left out; works classified
under it fail individually when their document is built.
*/
func (r *run) preloadFolders(ctx context.Context) error {
	r.ix.logger.Info("folder_preload_started")

	err := pagination.Walk(ctx, r.ix.pageSize, r.ix.repos.Folders.List, func(f *folder.Folder) error {
		if _, err := r.summaryOf(ctx, f); err != nil {
			r.ix.logger.Warn("folder_preload_skipped",
				slog.Int("folder_id", f.ID),
				slog.String("error", err.Error()),
			)
		}
		return ctx.Err()
	})
	if err != nil {
		return err
	}

	r.foldersComplete = true
	r.ix.logger.Info("folder_preload_complete", slog.Int("folders", len(r.summaries)))
	return nil
}

// summaryOf returns the cached summary of a folder, computing it on a miss.
func (r *run) summaryOf(ctx context.Context, f *folder.Folder) (folderSummary, error) {
	if summary, ok := r.summaries[f.ID]; ok {
		return summary, nil
	}

	top, err := r.folders.TopOf(ctx, f)
	if err != nil {
		return folderSummary{}, err
	}

	summary := folderSummary{title: f.BestTitle(), topID: top.ID, topTitle: top.BestTitle()}
	r.summaries[f.ID] = summary
	return summary, nil
}
