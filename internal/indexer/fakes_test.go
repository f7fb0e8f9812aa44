// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package indexer_test

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"io"
	"log/slog"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taibuivan/vubib/internal/core/agent"
	"github.com/taibuivan/vubib/internal/core/attribute"
	"github.com/taibuivan/vubib/internal/core/folder"
	"github.com/taibuivan/vubib/internal/core/publisher"
	"github.com/taibuivan/vubib/internal/core/work"
	"github.com/taibuivan/vubib/internal/core/worktype"
	"github.com/taibuivan/vubib/internal/indexer"
	"github.com/taibuivan/vubib/internal/platform/apperr"
	"github.com/taibuivan/vubib/internal/platform/dberr"
	"github.com/taibuivan/vubib/pkg/pagination"
)

// # Catalog Tables

// page slices rows ordered by key the way LIMIT/OFFSET would.
func page[T any](rows []T, p pagination.Params) []T {
	if p.Offset >= len(rows) {
		return nil
	}
	return rows[p.Offset:min(p.Offset+p.Limit, len(rows))]
}

// keysAfter returns up to limit sorted keys greater than after.
func keysAfter(keys []int, after, limit int) []int {
	sort.Ints(keys)
	var out []int
	for _, key := range keys {
		if key > after && len(out) < limit {
			out = append(out, key)
		}
	}
	return out
}

type folderTable struct {
	rows   map[int]*folder.Folder
	byWork map[int][]int
}

func (table *folderTable) sorted() []*folder.Folder {
	var out []*folder.Folder
	for _, row := range table.rows {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (table *folderTable) FindByID(_ context.Context, id int) (*folder.Folder, error) {
	row, ok := table.rows[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return row, nil
}

func (table *folderTable) ListByParent(_ context.Context, parentID *int) ([]*folder.Folder, error) {
	var out []*folder.Folder
	for _, row := range table.sorted() {
		if (parentID == nil && row.ParentID == nil) || (parentID != nil && row.ParentID != nil && *row.ParentID == *parentID) {
			out = append(out, row)
		}
	}
	return out, nil
}

func (table *folderTable) List(_ context.Context, p pagination.Params) ([]*folder.Folder, error) {
	return page(table.sorted(), p), nil
}

func (table *folderTable) ListIDs(_ context.Context, afterID, limit int) ([]int, error) {
	var keys []int
	for id := range table.rows {
		keys = append(keys, id)
	}
	return keysAfter(keys, afterID, limit), nil
}

func (table *folderTable) ListByWork(_ context.Context, workID int) ([]*folder.Folder, error) {
	var out []*folder.Folder
	for _, id := range table.byWork[workID] {
		out = append(out, table.rows[id])
	}
	return out, nil
}

type agentTable struct {
	rows    []*agent.Agent
	credits map[int][]agent.Credit
}

func (table *agentTable) List(_ context.Context, p pagination.Params) ([]*agent.Agent, error) {
	return page(table.rows, p), nil
}

func (table *agentTable) ListIDs(_ context.Context, afterID, limit int) ([]int, error) {
	var keys []int
	for _, row := range table.rows {
		keys = append(keys, row.ID)
	}
	return keysAfter(keys, afterID, limit), nil
}

func (table *agentTable) ListCredits(_ context.Context, workID int) ([]agent.Credit, error) {
	return table.credits[workID], nil
}

type workTable struct {
	rows []*work.Work
}

func (table *workTable) List(_ context.Context, p pagination.Params) ([]*work.Work, error) {
	return page(table.rows, p), nil
}

func (table *workTable) FindSummary(_ context.Context, id int) (*work.Summary, error) {
	for _, row := range table.rows {
		if row.ID == id {
			return &work.Summary{ID: row.ID, Title: row.Title}, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (table *workTable) ListChildren(_ context.Context, parentID int) ([]work.Summary, error) {
	var out []work.Summary
	for _, row := range table.rows {
		if row.ParentID != nil && *row.ParentID == parentID {
			out = append(out, work.Summary{ID: row.ID, Title: row.Title})
		}
	}
	return out, nil
}

func (table *workTable) ListIDs(_ context.Context, afterID, limit int) ([]int, error) {
	var keys []int
	for _, row := range table.rows {
		keys = append(keys, row.ID)
	}
	return keysAfter(keys, afterID, limit), nil
}

type valueKey struct {
	workID      int
	attributeID int
}

type attributeTable struct {
	definitions map[string]*attribute.Attribute
	values      map[valueKey]string
	options     map[int]*attribute.Option
	subs        map[int][]attribute.SubAttribute
}

func (table *attributeTable) FindByField(_ context.Context, field string) (*attribute.Attribute, error) {
	attr, ok := table.definitions[field]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return attr, nil
}

func (table *attributeTable) FindValue(_ context.Context, workID, attributeID int) (*string, error) {
	value, ok := table.values[valueKey{workID, attributeID}]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return &value, nil
}

func (table *attributeTable) FindOption(_ context.Context, optionID int) (*attribute.Option, error) {
	option, ok := table.options[optionID]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return option, nil
}

func (table *attributeTable) ListOptionSubAttributes(_ context.Context, optionID int) ([]attribute.SubAttribute, error) {
	return table.subs[optionID], nil
}

// set stores a work's value for an attribute, defining the attribute on first use.
func (table *attributeTable) set(workID int, field, kind, value string) {
	attr, ok := table.definitions[field]
	if !ok {
		attr = &attribute.Attribute{ID: len(table.definitions) + 1, Field: field, Type: kind}
		table.definitions[field] = attr
	}
	table.values[valueKey{workID, attr.ID}] = value
}

type publisherTable struct {
	imprints map[int][]publisher.Imprint
}

func (table *publisherTable) ListByWork(_ context.Context, workID int) ([]publisher.Imprint, error) {
	return table.imprints[workID], nil
}

type workTypeTable struct {
	rows map[int]string
}

func (table *workTypeTable) FindByID(_ context.Context, id int, _ string) (*worktype.WorkType, error) {
	label, ok := table.rows[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return &worktype.WorkType{ID: id, Type: label}, nil
}

// catalog bundles one in-memory table per repository.
type catalog struct {
	folders    *folderTable
	agents     *agentTable
	works      *workTable
	attributes *attributeTable
	publishers *publisherTable
	workTypes  *workTypeTable
}

func newCatalog() *catalog {
	return &catalog{
		folders: &folderTable{rows: map[int]*folder.Folder{}, byWork: map[int][]int{}},
		agents:  &agentTable{credits: map[int][]agent.Credit{}},
		works:   &workTable{},
		attributes: &attributeTable{
			definitions: map[string]*attribute.Attribute{},
			values:      map[valueKey]string{},
			options:     map[int]*attribute.Option{},
			subs:        map[int][]attribute.SubAttribute{},
		},
		publishers: &publisherTable{imprints: map[int][]publisher.Imprint{}},
		workTypes:  &workTypeTable{rows: map[int]string{}},
	}
}

func (c *catalog) addFolder(id int, parentID *int, fr, en string) {
	c.folders.rows[id] = &folder.Folder{ID: id, ParentID: parentID, Text: map[string]string{"fr": fr, "en": en}}
}

func (c *catalog) repositories() indexer.Repositories {
	return indexer.Repositories{
		Folders:    c.folders,
		Agents:     c.agents,
		Works:      c.works,
		Attributes: c.attributes,
		Publishers: c.publishers,
		WorkTypes:  c.workTypes,
	}
}

// # Search Index

// memoryIndex records every payload and answers id lookups.
type memoryIndex struct {
	saved   [][]byte
	ids     map[string]bool
	deleted []string

	// failSave rejects the payload of the listed document ids.
	failSave map[string]bool
	// failCheck rejects lookups of the listed document ids.
	failCheck map[string]bool
}

func newMemoryIndex(ids ...string) *memoryIndex {
	index := &memoryIndex{ids: map[string]bool{}, failSave: map[string]bool{}, failCheck: map[string]bool{}}
	for _, id := range ids {
		index.ids[id] = true
	}
	return index
}

func (index *memoryIndex) Save(_ context.Context, payload []byte) error {
	for id := range index.failSave {
		if bytes.Contains(payload, []byte(`<field name="id">`+id+`</field>`)) {
			return apperr.Transport("solr update failed", errors.New("status 500"))
		}
	}
	index.saved = append(index.saved, payload)
	return nil
}

func (index *memoryIndex) HasRecord(_ context.Context, id string) (bool, error) {
	if index.failCheck[id] {
		return false, apperr.Transport("solr query failed", errors.New("connection refused"))
	}
	return index.ids[id], nil
}

func (index *memoryIndex) DeleteRecords(_ context.Context, ids []string) error {
	for _, id := range ids {
		delete(index.ids, id)
		index.deleted = append(index.deleted, id)
	}
	return nil
}

// # Documents

type field struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",chardata"`
}

type document struct {
	Fields []field `xml:"doc>field"`
}

// values returns every value of a field, in document order.
func (d document) values(name string) []string {
	var out []string
	for _, f := range d.Fields {
		if f.Name == name {
			out = append(out, f.Value)
		}
	}
	return out
}

// first returns the first value of a field, or "" when absent.
func (d document) first(name string) string {
	if v := d.values(name); len(v) > 0 {
		return v[0]
	}
	return ""
}

func (d document) has(name string) bool {
	return len(d.values(name)) > 0
}

// documents decodes the saved payloads keyed by document id.
func (index *memoryIndex) documents(t *testing.T) map[string]document {
	t.Helper()
	out := map[string]document{}
	for _, payload := range index.saved {
		var doc document
		require.NoError(t, xml.Unmarshal(payload, &doc))
		out[doc.first("id")] = doc
	}
	return out
}

// savedIDs lists the saved document ids in write order.
func (index *memoryIndex) savedIDs(t *testing.T) []string {
	t.Helper()
	var out []string
	for _, payload := range index.saved {
		var doc document
		require.NoError(t, xml.Unmarshal(payload, &doc))
		out = append(out, doc.first("id"))
	}
	return out
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
