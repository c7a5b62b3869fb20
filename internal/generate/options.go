// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Snapgen Authors

package generate

import (
	"fmt"
	"strings"
	"unicode"
)

// Mode selects the scope of emitted code. Each mode is a superset of the
// previous one: Structure emits field declarations only, Append adds row
// population, Function wraps Append in a callable, Unit wraps Function in a
// compilable source file.
type Mode int

const (
	ModeStructure Mode = iota
	ModeAppend
	ModeFunction
	ModeUnit
)

var modeNames = map[Mode]string{
	ModeStructure: "structure",
	ModeAppend:    "append",
	ModeFunction:  "function",
	ModeUnit:      "unit",
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode resolves a mode name from the CLI surface.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if name == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q (structure, append, function, unit)", s)
}

// AppendMode selects the row-rendering strategy.
type AppendMode int

const (
	// AppendMultiline emits, per row, a begin-row statement, one
	// set-field-by-name statement per column, and a commit statement.
	AppendMultiline AppendMode = iota

	// AppendSingleline emits one positional statement per row.
	AppendSingleline

	// AppendRowArray emits a single bulk statement holding a
	// two-dimensional literal of the whole capped row set.
	AppendRowArray
)

var appendModeNames = map[AppendMode]string{
	AppendMultiline:  "multiline",
	AppendSingleline: "singleline",
	AppendRowArray:   "rowarray",
}

func (m AppendMode) String() string {
	if s, ok := appendModeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("AppendMode(%d)", int(m))
}

// ParseAppendMode resolves an append-mode name from the CLI surface.
func ParseAppendMode(s string) (AppendMode, error) {
	for m, name := range appendModeNames {
		if name == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown append mode %q (multiline, singleline, rowarray)", s)
}

// Defaults used by the convenience entry points and by zero-valued option
// fields.
const (
	DefaultIndent      = "  "
	DefaultMaxRows     = 100
	DefaultRightMargin = 80
	DefaultTarget      = "memtable"
	DefaultTableName   = "Dataset"
)

// Options configures one generation call. It is treated as immutable for
// the duration of the call; the same snapshot and options always produce
// byte-identical output.
type Options struct {
	// Indent is the text repeated once per nesting depth.
	Indent string

	Mode       Mode
	AppendMode AppendMode

	// Target names the registered dataset target family. It only affects
	// constructor and statement naming, never data fidelity.
	Target string

	// MaxRows caps rendered rows to the first MaxRows in source order.
	// Excess rows are dropped silently in the output; the Result reports
	// the dropped count. Must be >= 0.
	MaxRows int

	// TableName names the generated table inside the emitted code.
	TableName string

	// FuncName names the callable in Function and Unit modes. Derived from
	// TableName when empty.
	FuncName string

	// UnitName is the package name, used only in Unit mode.
	UnitName string

	// RightMargin is the column threshold that triggers splitting long
	// text literals into concatenated segments. Zero disables wrapping.
	RightMargin int
}

// DefaultOptions is the fixed configuration behind the convenience entry
// points: two-space indent, multiline append, in-memory table target.
func DefaultOptions() Options {
	return Options{
		Indent:      DefaultIndent,
		Mode:        ModeFunction,
		AppendMode:  AppendMultiline,
		Target:      DefaultTarget,
		MaxRows:     DefaultMaxRows,
		RightMargin: DefaultRightMargin,
	}
}

// withDefaults fills naming fields a caller left empty. MaxRows and
// RightMargin are left alone: zero is meaningful for both.
func (o Options) withDefaults() Options {
	if o.Indent == "" {
		o.Indent = DefaultIndent
	}
	if o.Target == "" {
		o.Target = DefaultTarget
	}
	if o.TableName == "" {
		o.TableName = DefaultTableName
	}
	if o.FuncName == "" {
		o.FuncName = "New" + exportName(o.TableName)
	}
	if o.UnitName == "" {
		o.UnitName = "fixtures"
	}
	return o
}

// Validate rejects a malformed configuration before any rendering begins.
func (o Options) Validate() error {
	if o.MaxRows < 0 {
		return fmt.Errorf("%w: max rows must be >= 0, got %d", ErrInvalidConfig, o.MaxRows)
	}
	if o.RightMargin < 0 {
		return fmt.Errorf("%w: right margin must be >= 0, got %d", ErrInvalidConfig, o.RightMargin)
	}
	if _, ok := modeNames[o.Mode]; !ok {
		return fmt.Errorf("%w: unknown mode %d", ErrInvalidConfig, int(o.Mode))
	}
	if _, ok := appendModeNames[o.AppendMode]; !ok {
		return fmt.Errorf("%w: unknown append mode %d", ErrInvalidConfig, int(o.AppendMode))
	}
	if o.Mode >= ModeFunction && !isIdentifier(o.FuncName) {
		return fmt.Errorf("%w: function name %q is not a valid identifier", ErrInvalidConfig, o.FuncName)
	}
	if o.Mode == ModeUnit && !isPackageName(o.UnitName) {
		return fmt.Errorf("%w: unit name %q is not a valid package name", ErrInvalidConfig, o.UnitName)
	}
	return nil
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 && !unicode.IsLetter(r) && r != '_' {
			return false
		}
		if i > 0 && !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}

func isPackageName(s string) bool {
	return isIdentifier(s) && strings.ToLower(s) == s
}

// exportName turns an arbitrary table name into an exported identifier:
// "order_items" -> "OrderItems", "customer orders" -> "CustomerOrders".
func exportName(name string) string {
	var b strings.Builder
	up := true
	for _, r := range name {
		switch {
		case unicode.IsLetter(r):
			if up {
				b.WriteRune(unicode.ToUpper(r))
				up = false
			} else {
				b.WriteRune(r)
			}
		case unicode.IsDigit(r) && b.Len() > 0:
			b.WriteRune(r)
			up = true
		default:
			up = true
		}
	}
	if b.Len() == 0 {
		return "Dataset"
	}
	return b.String()
}
