// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sortkey derives index sort keys from catalog titles.
//
// # Usage
//
// Titles are entered by catalogers and may carry inline markup (<i>Confessiones</i>),
// accented characters and leading articles. The search index sorts on a
// normalized copy so that "L'Église" files next to "Eglise" and "The City of God"
// next to "City of God".
package sortkey

import (
	"html"
	"regexp"
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/taibuivan/vubib/pkg/convert"
)

var (
	// stripMarkup removes every tag and keeps the text content.
	stripMarkup = bluemonday.StrictPolicy()

	// multiSpace collapses whitespace runs left behind by removed tags.
	multiSpace = regexp.MustCompile(`\s+`)

	// leadingArticle matches one leading article in the catalog languages.
	// Elided forms (l', d') attach directly to the next word.
	leadingArticle = regexp.MustCompile(`(?i)^(?:(?:the|an?|les?|la|une?|des|der|die|das|den|dem|ein|eine|einen|el|los|las|unos|unas|il|lo|gli|uno|het|een)\s+|(?:l|d)['’]\s*)`)
)

// Title returns the sort key for a title.
//
// # Transformation Pipeline
//
// 1. Removes markup tags (<i>, </i>, ...) and decodes entities.
// 2. Normalizes to NFD and removes combining marks (é → e).
// 3. Collapses whitespace and strips one leading article.
func Title(s string) string {
	// 1. Markup
	result := html.UnescapeString(stripMarkup.Sanitize(s))

	// 2. Normalize and remove accents
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	result, _, _ = transform.String(t, result)

	// 3. Articles and whitespace
	result = strings.TrimSpace(multiSpace.ReplaceAllString(result, " "))
	if stripped := leadingArticle.ReplaceAllString(result, ""); stripped != "" {
		result = stripped
	}

	return strings.TrimSpace(result)
}

// Sequence prefixes a sort key with a zero-padded explicit sort order so that
// manually ordered folders sort ahead of their title order.
func Sequence(sortOrder *int, title string) string {
	if sortOrder == nil {
		return title
	}
	return convert.PadInt(*sortOrder, 6) + title
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
