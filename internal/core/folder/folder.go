// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package folder models the subject-classification tree and resolves its
// parent chains.
//
// # Architecture
//
// Folders form a forest: every folder has at most one parent and a nil
// parent marks a root. Labels are stored per language in text_<lang>
// columns; French is the source language of the catalog and every other
// language may be missing.
package folder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/taibuivan/vubib/internal/platform/apperr"
)

// SourceLanguage is the language every folder label is first written in.
const SourceLanguage = "fr"

// Languages lists the label languages exported to the index, in output order.
var Languages = []string{"en", "fr", "de", "nl", "es", "it"}

var (
	// ErrCycle is wrapped by hierarchy errors when a parent walk revisits a folder.
	ErrCycle = errors.New("folder: circular parent reference")

	// ErrMissingParent is wrapped when a parent id points at no folder.
	ErrMissingParent = errors.New("folder: parent does not exist")
)

// Folder is one node of the classification tree.
type Folder struct {
	ID        int
	ParentID  *int
	SortOrder *int

	// Text maps a language code to its label. Absent and blank labels are
	// both "untranslated".
	Text map[string]string
}

// Sibling is one entry of a [Resolver.ParentTree] level.
type Sibling struct {
	Folder   *Folder
	Selected bool
}

// IsRoot reports whether the folder has no parent. A folder whose parent
// is itself is a legacy way of marking a root and counts as one.
func (f *Folder) IsRoot() bool {
	return f.ParentID == nil || *f.ParentID == f.ID
}

// IsSelfParented reports whether parent_id points back at the folder itself.
func (f *Folder) IsSelfParented() bool {
	return f.ParentID != nil && *f.ParentID == f.ID
}

// BestTitle returns the English label when present, otherwise the French one.
func (f *Folder) BestTitle() string {
	if en := strings.TrimSpace(f.Text["en"]); en != "" {
		return f.Text["en"]
	}
	return f.Text[SourceLanguage]
}

// Label returns the label for lang. An untranslated label falls back to the
// French one wrapped in square brackets, e.g. "[Histoire]"; index consumers
// rely on the brackets to detect machine fallbacks.
func (f *Folder) Label(lang string) string {
	if text := strings.TrimSpace(f.Text[lang]); text != "" {
		return text
	}
	return Bracketed(f.Text)
}

// Bracketed renders the fallback label for a set of translations: the French
// text (or English when French is blank) wrapped verbatim in brackets.
func Bracketed(text map[string]string) string {
	base := strings.TrimSpace(text[SourceLanguage])
	if base == "" {
		base = strings.TrimSpace(text["en"])
	}
	return "[" + base + "]"
}

// hierarchyError reports a broken parent walk starting at folder id.
func hierarchyError(id int, cause error) error {
	return apperr.Hierarchy(fmt.Sprintf("folder %d: invalid parent chain", id), cause)
}
