// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package folder_test

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/vubib/internal/core/folder"
	"github.com/taibuivan/vubib/internal/platform/apperr"
	"github.com/taibuivan/vubib/internal/platform/dberr"
	"github.com/taibuivan/vubib/pkg/pagination"
	"github.com/taibuivan/vubib/pkg/pointer"
)

// memoryRepository is an in-memory folder table.
type memoryRepository struct {
	rows map[int]*folder.Folder
}

func newMemoryRepository(rows ...*folder.Folder) *memoryRepository {
	repository := &memoryRepository{rows: map[int]*folder.Folder{}}
	for _, row := range rows {
		repository.rows[row.ID] = row
	}
	return repository
}

func (repository *memoryRepository) FindByID(_ context.Context, id int) (*folder.Folder, error) {
	row, ok := repository.rows[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return row, nil
}

// sameParent reports whether both parent ids are nil or equal.
func sameParent(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func (repository *memoryRepository) ListByParent(_ context.Context, parentID *int) ([]*folder.Folder, error) {
	var rows []*folder.Folder
	for _, row := range repository.sorted() {
		if sameParent(row.ParentID, parentID) {
			rows = append(rows, row)
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return pointer.Val(rows[i].SortOrder) < pointer.Val(rows[j].SortOrder)
	})
	return rows, nil
}

func (repository *memoryRepository) List(_ context.Context, page pagination.Params) ([]*folder.Folder, error) {
	rows := repository.sorted()
	if page.Offset >= len(rows) {
		return nil, nil
	}
	return rows[page.Offset:min(len(rows), page.Offset+page.Limit)], nil
}

func (repository *memoryRepository) ListIDs(_ context.Context, afterID, limit int) ([]int, error) {
	var ids []int
	for _, row := range repository.sorted() {
		if row.ID > afterID && len(ids) < limit {
			ids = append(ids, row.ID)
		}
	}
	return ids, nil
}

func (repository *memoryRepository) ListByWork(context.Context, int) ([]*folder.Folder, error) {
	return nil, nil
}

func (repository *memoryRepository) sorted() []*folder.Folder {
	rows := make([]*folder.Folder, 0, len(repository.rows))
	for _, row := range repository.rows {
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })
	return rows
}

func node(id int, parent *int, fr string) *folder.Folder {
	return &folder.Folder{ID: id, ParentID: parent, Text: map[string]string{"fr": fr}}
}

// tree builds: 1 (root) -> 2 -> 3, plus a second root 4.
func tree() *memoryRepository {
	return newMemoryRepository(
		node(1, nil, "Histoire"),
		node(2, pointer.To(1), "Moyen Age"),
		node(3, pointer.To(2), "Augustin"),
		node(4, nil, "Philosophie"),
	)
}

/*
TestParentChain_Root verifies that a root has no ancestors and is its own top.
*/
func TestParentChain_Root(t *testing.T) {
	resolver := folder.NewResolver(tree())

	chain, err := resolver.ParentChain(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, chain)

	top, err := resolver.Top(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, top)
}

func TestParentChain_RootFirst(t *testing.T) {
	resolver := folder.NewResolver(tree())

	chain, err := resolver.ParentChain(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, chain)

	top, err := resolver.Top(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 1, top)
}

func TestParentChainRecord_Order(t *testing.T) {
	resolver := folder.NewResolver(tree())

	nearest, err := resolver.ParentChainRecord(context.Background(), 3, false)
	require.NoError(t, err)
	require.Len(t, nearest, 2)
	assert.Equal(t, 2, nearest[0].ID)
	assert.Equal(t, 1, nearest[1].ID)

	rootFirst, err := resolver.ParentChainRecord(context.Background(), 3, true)
	require.NoError(t, err)
	assert.Equal(t, 1, rootFirst[0].ID)
	assert.Equal(t, 2, rootFirst[1].ID)
}

/*
TestParentChain_Cycle verifies that A -> B -> A is reported instead of looping.
*/
func TestParentChain_Cycle(t *testing.T) {
	resolver := folder.NewResolver(newMemoryRepository(
		node(10, pointer.To(11), "A"),
		node(11, pointer.To(10), "B"),
	))

	_, err := resolver.ParentChain(context.Background(), 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, folder.ErrCycle)
	assert.True(t, apperr.Is(err, apperr.CodeHierarchy))

	_, err = resolver.Top(context.Background(), 11)
	assert.ErrorIs(t, err, folder.ErrCycle)
}

/*
TestParentChain_LongerCycle detects a revisit that does not involve the start folder.
*/
func TestParentChain_LongerCycle(t *testing.T) {
	resolver := folder.NewResolver(newMemoryRepository(
		node(1, pointer.To(2), "A"),
		node(2, pointer.To(3), "B"),
		node(3, pointer.To(2), "C"),
	))

	_, err := resolver.ParentChain(context.Background(), 1)
	assert.ErrorIs(t, err, folder.ErrCycle)
}

/*
TestParentChain_SelfParent treats parent_id == id as a root marker.
*/
func TestParentChain_SelfParent(t *testing.T) {
	resolver := folder.NewResolver(newMemoryRepository(
		node(7, pointer.To(7), "Varia"),
		node(8, pointer.To(7), "Divers"),
	))

	chain, err := resolver.ParentChain(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, chain)

	chain, err = resolver.ParentChain(context.Background(), 8)
	require.NoError(t, err)
	assert.Equal(t, []int{7}, chain)

	top, err := resolver.Top(context.Background(), 8)
	require.NoError(t, err)
	assert.Equal(t, 7, top)
}

func TestParentChain_MissingParent(t *testing.T) {
	resolver := folder.NewResolver(newMemoryRepository(node(5, pointer.To(99), "Orphelin")))

	_, err := resolver.ParentChain(context.Background(), 5)
	assert.ErrorIs(t, err, folder.ErrMissingParent)
	assert.True(t, apperr.Is(err, apperr.CodeHierarchy))
}

func TestParentChain_UnknownFolder(t *testing.T) {
	resolver := folder.NewResolver(tree())

	_, err := resolver.ParentChain(context.Background(), 404)
	assert.True(t, dberr.IsNotFound(err))
}

/*
TestParentTree flags the path member on every level, root level first.
*/
func TestParentTree(t *testing.T) {
	resolver := folder.NewResolver(tree())

	levels, err := resolver.ParentTree(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, levels, 2)

	// Root level holds both roots with folder 1 selected.
	require.Len(t, levels[0], 2)
	for _, sibling := range levels[0] {
		assert.Equal(t, sibling.Folder.ID == 1, sibling.Selected)
	}

	require.Len(t, levels[1], 1)
	assert.Equal(t, 2, levels[1][0].Folder.ID)
	assert.True(t, levels[1][0].Selected)
}

func TestChildrenAndSiblings(t *testing.T) {
	repository := tree()
	repository.rows[5] = &folder.Folder{ID: 5, ParentID: pointer.To(1), SortOrder: pointer.To(-1), Text: map[string]string{"fr": "Antiquité"}}
	resolver := folder.NewResolver(repository)

	children, err := resolver.Children(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, children, 2)
	assert.Equal(t, 5, children[0].ID)

	roots, err := resolver.Siblings(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, roots, 2)
}

/*
TestLabel_Fallback renders untranslated labels as the bracketed French text.
*/
func TestLabel_Fallback(t *testing.T) {
	f := &folder.Folder{ID: 1, Text: map[string]string{"fr": "Histoire", "de": "  "}}

	assert.Equal(t, "[Histoire]", f.Label("en"))
	assert.Equal(t, "[Histoire]", f.Label("de"))
	assert.Equal(t, "Histoire", f.Label("fr"))
	assert.Equal(t, "Histoire", f.BestTitle())

	f.Text["en"] = "History"
	assert.Equal(t, "History", f.Label("en"))
	assert.Equal(t, "History", f.BestTitle())
}

/*
TestLabel_BracketsVerbatim wraps the source text as stored, keeping any
brackets it already carries.
*/
func TestLabel_BracketsVerbatim(t *testing.T) {
	tests := []struct {
		name string
		text map[string]string
		lang string
		want string
	}{
		{"trailing bracket", map[string]string{"fr": "Histoire [XIXe s.]"}, "en", "[Histoire [XIXe s.]]"},
		{"already bracketed", map[string]string{"fr": "[Sermons]"}, "en", "[[Sermons]]"},
		{"english when french blank", map[string]string{"fr": " ", "en": "[Misc]"}, "de", "[[Misc]]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &folder.Folder{ID: 1, Text: tt.text}
			assert.Equal(t, tt.want, f.Label(tt.lang))
		})
	}
}
