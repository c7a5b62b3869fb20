// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Snapgen Authors

package generate

import (
	"fmt"
	"sort"

	"github.com/snapgen/cli/internal/snapshot"
)

// Dialect describes how one dataset target family names its construction
// and population calls. Layout and literal encoding are shared across
// targets; a dialect supplies only the statement shapes, so adding a target
// is a data definition, not a new renderer.
//
// Target subpackages register themselves on import, the same way CLI
// commands pull in the targets they expose.
type Dialect struct {
	Name    string
	Summary string

	// Null is the literal for an absent value, distinct from any real
	// value. It is never subject to right-margin wrapping.
	Null string

	// Var is the result variable the emitted statements build up.
	Var string

	// ResultType is the Go type the generated callable returns.
	ResultType string

	// Construct opens the structure section in Function and Unit modes.
	Construct func(table string) string

	// NestedFields nests field-declaration lines one level inside
	// Construct, closed by CloseConstruct.
	NestedFields   bool
	Field          func(col snapshot.Column) string
	CloseConstruct string

	// Open statements sit between the structure and append sections.
	Open []string

	// Multiline append shape. SetField returns the statement text around
	// the encoded literal. SkipNulls drops null fields entirely when the
	// target defaults unset fields to null.
	BeginRow  string
	NestedRow bool
	SetField  func(col snapshot.Column) (prefix, suffix string)
	SkipNulls bool
	PostRow   string

	// Singleline append shape: prefix + literals + suffix.
	RecordPrefix string
	RecordSuffix string

	// RowArray append shape: one outer statement wrapping per-row inner
	// literal sequences.
	RowsOpen  string
	RowOpen   string
	RowClose  string
	RowsClose string

	// Function wrapper shape.
	Signature func(funcName string) string
	Prologue  []string
	Return    string

	// Imports lists the import paths a Unit-mode file needs for this
	// snapshot and configuration.
	Imports func(snap *snapshot.Snapshot, opts Options) []string
}

var dialects = make(map[string]*Dialect)

// Register adds a dialect to the registry. Target subpackages call it from
// init.
func Register(d *Dialect) {
	dialects[d.Name] = d
}

// Get retrieves a dialect by target name.
func Get(name string) (*Dialect, error) {
	d, ok := dialects[name]
	if !ok {
		return nil, fmt.Errorf("unknown target %q (available: %v)", name, Available())
	}
	return d, nil
}

// Available returns all registered target names, sorted.
func Available() []string {
	names := make([]string, 0, len(dialects))
	for name := range dialects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
