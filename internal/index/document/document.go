// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package document assembles search index documents in the Solr XML update format.

A [Builder] owns one document at a time through an explicit lifecycle:

  - Open: resets the field list and the all-fields accumulator.
  - Add: appends sanitized field/value pairs, optionally feeding the
    accumulator.
  - Close: appends the combined "allfields" field and returns the payload.

Misuse of the lifecycle (adding before Open or after Close) is recorded as a
sticky error and surfaced by Close, so call sites stay linear.
*/
package document

import (
	"bytes"
	"errors"
	"regexp"
	"strings"
)

// AllFields is the catch-all field flushed at the end of every document.
const AllFields = "allfields"

var (
	// ErrNotOpen is returned when fields are added to a document that was never opened.
	ErrNotOpen = errors.New("document: not open")

	// ErrClosed is returned when fields are added to a document after Close.
	ErrClosed = errors.New("document: already closed")
)

const (
	header = "<?xml version=\"1.0\" encoding=\"utf-8\"?>\n<add>\n  <doc>\n"
	footer = "  </doc>\n</add>\n"
)

// illegalXML matches runs of characters that may not appear in an XML 1.0 document.
var illegalXML = regexp.MustCompile(`[^\x{0009}\x{000a}\x{000d}\x{0020}-\x{D7FF}\x{E000}-\x{FFFD}]+`)

// escaper mirrors the entity set downstream consumers already expect.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

type state int

const (
	stateIdle state = iota
	stateOpen
	stateClosed
)

// Builder accumulates the fields of one document. The zero value is ready to
// use; call Open before adding fields. A Builder is not safe for concurrent use.
type Builder struct {
	buf   bytes.Buffer
	all   []string
	state state
	err   error
}

// New returns an idle [Builder].
func New() *Builder {
	return &Builder{}
}

// Open starts a new document, discarding any previous one.
func (b *Builder) Open() {
	b.buf.Reset()
	b.buf.WriteString(header)
	b.all = b.all[:0]
	b.state = stateOpen
	b.err = nil
}

// Add appends one field. Blank values are skipped.
func (b *Builder) Add(name, value string, toAllFields bool) {
	b.add([]string{name}, value, toAllFields)
}

// AddValues appends one field per value, skipping blank values.
func (b *Builder) AddValues(name string, values []string, toAllFields bool) {
	for _, value := range values {
		b.add([]string{name}, value, toAllFields)
	}
}

// AddAliased appends the same value once under every name in names. The
// value feeds the all-fields accumulator at most once.
func (b *Builder) AddAliased(names []string, value string, toAllFields bool) {
	b.add(names, value, toAllFields)
}

func (b *Builder) add(names []string, value string, toAllFields bool) {
	if !b.writable() {
		return
	}

	value = Sanitize(value)
	if value == "" {
		return
	}

	escaped := escaper.Replace(value)
	for _, name := range names {
		b.buf.WriteString(`    <field name="`)
		b.buf.WriteString(name)
		b.buf.WriteString(`">`)
		b.buf.WriteString(escaped)
		b.buf.WriteString("</field>\n")
	}

	if toAllFields {
		b.all = append(b.all, value)
	}
}

// writable records a lifecycle error unless the document is open.
func (b *Builder) writable() bool {
	switch b.state {
	case stateOpen:
		return true
	case stateClosed:
		b.fail(ErrClosed)
	default:
		b.fail(ErrNotOpen)
	}
	return false
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

/*
Close flushes the all-fields accumulator and finalizes the document.

Returns:
  - []byte: The serialized payload, a copy owned by the caller
  - error: The first lifecycle error recorded since Open
*/
func (b *Builder) Close() ([]byte, error) {
	if b.state != stateOpen {
		b.writable()
		return nil, b.err
	}

	b.add([]string{AllFields}, strings.Join(b.all, " "), false)
	b.buf.WriteString(footer)
	b.state = stateClosed

	if b.err != nil {
		return nil, b.err
	}
	return bytes.Clone(b.buf.Bytes()), nil
}

// Err returns the first lifecycle error recorded since Open.
func (b *Builder) Err() error {
	return b.err
}

// Sanitize trims a value and replaces every run of XML-illegal characters
// with a single space.
func Sanitize(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	value = strings.ToValidUTF8(value, " ")
	return strings.TrimSpace(illegalXML.ReplaceAllString(value, " "))
}

// DeletePayload renders a delete-by-id envelope.
func DeletePayload(ids []string) []byte {
	var buf bytes.Buffer
	buf.WriteString("<delete>")
	for _, id := range ids {
		buf.WriteString("<id>")
		buf.WriteString(escaper.Replace(id))
		buf.WriteString("</id>")
	}
	buf.WriteString("</delete>")
	return buf.Bytes()
}

// CommitPayload renders a hard commit request.
func CommitPayload() []byte {
	return []byte("<commit/>")
}
