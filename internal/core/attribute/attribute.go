// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package attribute resolves the typed custom attributes attached to works.
//
// An attribute definition names a field (e.g. "ISBN") and an input type. The
// value stored for a work is literal text for every type except [TypeSelect],
// where it is the id of a controlled-vocabulary [Option].
package attribute

// Attribute input types.
const (
	TypeText        = "Text"
	TypeTextarea    = "Textarea"
	TypeRadioButton = "RadioButton"
	TypeSelect      = "Select"
)

// Attribute is one configurable metadata field.
type Attribute struct {
	ID    int
	Field string
	Type  string
}

// Option is a controlled-vocabulary value of a Select attribute.
type Option struct {
	ID          int
	AttributeID int
	Title       string
	Value       *string
}

// SubAttribute refines an option with a secondary value, e.g. an ISSN sub-type.
type SubAttribute struct {
	Name  string
	Value string
}

// Detail is the expanded form of an attribute value.
type Detail struct {
	// Type is the attribute type, empty when the attribute is not defined.
	Type string

	// Raw is the value stored on the association row: literal text, or the
	// option id for Select attributes.
	Raw *string

	// Option is the resolved option of a Select attribute.
	Option *Option

	SubAttributes []SubAttribute

	// Display is the value shown to readers: the option title for Select
	// attributes, otherwise the raw value.
	Display *string
}
