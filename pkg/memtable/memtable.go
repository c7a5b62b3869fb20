// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Snapgen Authors

// Package memtable is the in-memory table runtime that generated fixtures
// link against. A Table is built statement by statement, in the same shape
// the generator emits: declare fields, Open, then populate rows either
// field-by-field (Append/SetValue/Post), positionally (AppendRecord), or in
// bulk (AppendRows).
//
// Misuse (an unknown field name, a row of the wrong width, a write before
// Open) panics rather than returning an error, mirroring sqlmock's row
// builder: generated code controls every call site, so a violation is a
// generator bug, not a runtime condition.
package memtable

import (
	"fmt"
	"time"
)

// FieldType classifies a field's values.
type FieldType int

const (
	Unknown FieldType = iota
	Integer
	Float
	Currency
	Boolean
	String
	FixedString
	Date
	Time
	DateTime
	Bytes
)

var fieldTypeNames = map[FieldType]string{
	Unknown:     "unknown",
	Integer:     "integer",
	Float:       "float",
	Currency:    "currency",
	Boolean:     "boolean",
	String:      "string",
	FixedString: "fixedstring",
	Date:        "date",
	Time:        "time",
	DateTime:    "datetime",
	Bytes:       "bytes",
}

func (ft FieldType) String() string {
	if s, ok := fieldTypeNames[ft]; ok {
		return s
	}
	return fmt.Sprintf("FieldType(%d)", int(ft))
}

// nullValue is the sentinel type behind Null.
type nullValue struct{}

func (nullValue) String() string { return "<null>" }

// Null is the sentinel an unset or SQL-null field holds. It is distinct
// from every real value, including nil: a generated fixture passes
// memtable.Null explicitly where the captured cell was null.
var Null = nullValue{}

// Field describes one column of a Table. Size is the declared text/binary
// width, or the decimal scale for Currency fields; zero means unspecified.
type Field struct {
	Name string
	Type FieldType
	Size int
}

// Table is an ordered, in-memory table. The zero value is not usable; call
// New.
type Table struct {
	name    string
	fields  []Field
	index   map[string]int
	rows    [][]any
	open    bool
	pending []any
}

// New creates an empty, unopened table.
func New(name string) *Table {
	return &Table{
		name:  name,
		index: make(map[string]int),
	}
}

// Name returns the table name given to New.
func (t *Table) Name() string { return t.name }

// AddField declares the next field. Field order is positional: it defines
// the value order for AppendRecord and AppendRows. Panics if the table is
// already open or the name is duplicate.
func (t *Table) AddField(name string, ft FieldType, size int) {
	if t.open {
		panic(fmt.Sprintf("memtable: AddField(%q) after Open", name))
	}
	if _, dup := t.index[name]; dup {
		panic(fmt.Sprintf("memtable: duplicate field %q", name))
	}
	t.index[name] = len(t.fields)
	t.fields = append(t.fields, Field{Name: name, Type: ft, Size: size})
}

// Fields returns the declared fields in declaration order.
func (t *Table) Fields() []Field {
	out := make([]Field, len(t.fields))
	copy(out, t.fields)
	return out
}

// Open freezes the field layout and makes the table writable.
func (t *Table) Open() { t.open = true }

// Append starts a new pending row with every field set to Null.
func (t *Table) Append() {
	t.mustBeOpen("Append")
	if t.pending != nil {
		panic("memtable: Append with a pending row; call Post first")
	}
	row := make([]any, len(t.fields))
	for i := range row {
		row[i] = Null
	}
	t.pending = row
}

// SetValue sets one field of the pending row by name.
func (t *Table) SetValue(name string, v any) {
	if t.pending == nil {
		panic(fmt.Sprintf("memtable: SetValue(%q) without Append", name))
	}
	i, ok := t.index[name]
	if !ok {
		panic(fmt.Sprintf("memtable: unknown field %q", name))
	}
	t.pending[i] = normalize(v)
}

// Post commits the pending row.
func (t *Table) Post() {
	if t.pending == nil {
		panic("memtable: Post without Append")
	}
	t.rows = append(t.rows, t.pending)
	t.pending = nil
}

// AppendRecord appends one row from positional values, one per declared
// field.
func (t *Table) AppendRecord(values ...any) {
	t.mustBeOpen("AppendRecord")
	if len(values) != len(t.fields) {
		panic(fmt.Sprintf("memtable: AppendRecord got %d values, table has %d fields", len(values), len(t.fields)))
	}
	row := make([]any, len(values))
	for i, v := range values {
		row[i] = normalize(v)
	}
	t.rows = append(t.rows, row)
}

// AppendRows appends a batch of positional rows.
func (t *Table) AppendRows(rows [][]any) {
	for _, r := range rows {
		t.AppendRecord(r...)
	}
}

// RowCount reports the number of committed rows.
func (t *Table) RowCount() int { return len(t.rows) }

// Value returns the value of one field in one committed row. Null cells
// return memtable.Null.
func (t *Table) Value(row int, field string) any {
	i, ok := t.index[field]
	if !ok {
		panic(fmt.Sprintf("memtable: unknown field %q", field))
	}
	return t.rows[row][i]
}

// IsNull reports whether one cell holds the Null sentinel.
func (t *Table) IsNull(row int, field string) bool {
	return t.Value(row, field) == any(Null)
}

// Row returns a copy of one committed row in field order.
func (t *Table) Row(row int) []any {
	out := make([]any, len(t.rows[row]))
	copy(out, t.rows[row])
	return out
}

func (t *Table) mustBeOpen(op string) {
	if !t.open {
		panic(fmt.Sprintf("memtable: %s before Open", op))
	}
}

// normalize widens machine-sized values so lookups compare predictably:
// ints become int64, float32 becomes float64. nil collapses to Null.
func normalize(v any) any {
	switch x := v.(type) {
	case nil:
		return Null
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case uint:
		return int64(x)
	case uint8:
		return int64(x)
	case uint16:
		return int64(x)
	case uint32:
		return int64(x)
	case float32:
		return float64(x)
	case time.Time, int64, float64, bool, string, []byte, nullValue:
		return x
	default:
		return x
	}
}
