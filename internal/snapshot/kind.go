// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Snapgen Authors

// Package snapshot models an immutable, ordered capture of column metadata
// and row values taken from a tabular source.
package snapshot

import "fmt"

// Kind is the closed logical classification of a column, independent of the
// source's native type system. It selects the literal-encoding rule.
type Kind int

const (
	KindUnsupported Kind = iota
	KindInteger
	KindFloat
	KindDecimal
	KindBool
	KindText
	KindFixedText
	KindBinary
	KindDate
	KindTime
	KindDateTime
)

var kindNames = map[Kind]string{
	KindUnsupported: "unsupported",
	KindInteger:     "integer",
	KindFloat:       "float",
	KindDecimal:     "decimal",
	KindBool:        "boolean",
	KindText:        "text",
	KindFixedText:   "fixedtext",
	KindBinary:      "binary",
	KindDate:        "date",
	KindTime:        "time",
	KindDateTime:    "datetime",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Temporal reports whether values of this kind carry date or time
// components.
func (k Kind) Temporal() bool {
	return k == KindDate || k == KindTime || k == KindDateTime
}

// Textual reports whether the kind is fixed- or variable-width text.
func (k Kind) Textual() bool {
	return k == KindText || k == KindFixedText
}
