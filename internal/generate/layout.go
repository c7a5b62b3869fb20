// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Snapgen Authors

package generate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/snapgen/cli/internal/snapshot"
)

// writer accumulates indented output lines. Depth is tracked structurally
// by the render functions, never inferred from the text.
type writer struct {
	indent string
	depth  int
	lines  []string
}

func (w *writer) line(s string) { w.at(w.depth, s) }

func (w *writer) at(depth int, s string) {
	if s == "" {
		w.lines = append(w.lines, "")
		return
	}
	w.lines = append(w.lines, strings.Repeat(w.indent, depth)+s)
}

func (w *writer) blank() { w.lines = append(w.lines, "") }

// renderer walks a snapshot once per generation call. It is single-use and
// shares nothing between calls.
type renderer struct {
	w     *writer
	d     *Dialect
	opts  Options
	snap  *snapshot.Snapshot
	warns []Warning
	seen  map[string]bool
}

func newRenderer(snap *snapshot.Snapshot, d *Dialect, opts Options) *renderer {
	return &renderer{
		w:    &writer{indent: opts.Indent},
		d:    d,
		opts: opts,
		snap: snap,
		seen: make(map[string]bool),
	}
}

// cappedRows returns the order-preserving prefix of rows bounded by
// MaxRows.
func (r *renderer) cappedRows() [][]snapshot.Value {
	rows := r.snap.Rows
	if len(rows) > r.opts.MaxRows {
		rows = rows[:r.opts.MaxRows]
	}
	return rows
}

// renderStructure emits one field-declaration line per column, in column
// order. Declaration order defines the positional contract the append
// section relies on.
func (r *renderer) renderStructure() {
	for _, col := range r.snap.Columns {
		r.w.line(r.d.Field(col))
		if col.Kind == snapshot.KindUnsupported {
			r.warn(col, "no literal rule for this type; values render as text")
		}
	}
}

// renderAppend emits the structure section followed by row population in
// the configured append mode.
func (r *renderer) renderAppend() {
	r.renderStructure()
	for _, stmt := range r.d.Open {
		r.w.line(stmt)
	}

	rows := r.cappedRows()
	switch r.opts.AppendMode {
	case AppendMultiline:
		r.renderMultiline(rows)
	case AppendSingleline:
		r.renderSingleline(rows)
	case AppendRowArray:
		r.renderRowArray(rows)
	}
}

func (r *renderer) renderMultiline(rows [][]snapshot.Value) {
	for _, row := range rows {
		if r.d.BeginRow != "" {
			r.w.line(r.d.BeginRow)
		}
		if r.d.NestedRow {
			r.w.depth++
		}
		for i, v := range row {
			col := r.snap.Columns[i]
			if v.IsNull() && r.d.SkipNulls {
				continue
			}
			prefix, suffix := r.d.SetField(col)
			segs := r.encode(v, col, len(prefix))
			r.emitStatement(prefix, segs, suffix)
		}
		if r.d.NestedRow {
			r.w.depth--
		}
		if r.d.PostRow != "" {
			r.w.line(r.d.PostRow)
		}
	}
}

func (r *renderer) renderSingleline(rows [][]snapshot.Value) {
	for _, row := range rows {
		r.emitRow(r.d.RecordPrefix, row, r.d.RecordSuffix)
	}
}

func (r *renderer) renderRowArray(rows [][]snapshot.Value) {
	if len(rows) == 0 {
		return
	}
	r.w.line(r.d.RowsOpen)
	r.w.depth++
	for _, row := range rows {
		r.emitRow(r.d.RowOpen, row, r.d.RowClose)
	}
	r.w.depth--
	r.w.line(r.d.RowsClose)
}

// renderFunction wraps the append section in the target's callable: the
// construction prologue before the structure lines, the result binding
// after the append lines.
func (r *renderer) renderFunction() {
	r.w.line(r.d.Signature(r.opts.FuncName))
	r.w.depth++
	for _, stmt := range r.d.Prologue {
		r.w.line(stmt)
	}

	r.w.line(r.d.Construct(r.opts.TableName))
	if r.d.NestedFields {
		r.w.depth++
	}
	r.renderStructure()
	if r.d.NestedFields {
		r.w.depth--
		r.w.line(r.d.CloseConstruct)
	}

	for _, stmt := range r.d.Open {
		r.w.line(stmt)
	}

	rows := r.cappedRows()
	switch r.opts.AppendMode {
	case AppendMultiline:
		r.renderMultiline(rows)
	case AppendSingleline:
		r.renderSingleline(rows)
	case AppendRowArray:
		r.renderRowArray(rows)
	}

	r.w.line(r.d.Return)
	r.w.depth--
	r.w.line("}")
}

// renderUnit wraps the function in a compilable source file: package
// clause, computed import block, then the callable.
func (r *renderer) renderUnit() {
	r.w.line("// Code generated by snapgen. DO NOT EDIT.")
	r.w.blank()
	r.w.line("package " + r.opts.UnitName)
	r.w.blank()
	r.renderImports(r.d.Imports(r.snap, r.opts))
	r.renderFunction()
}

func (r *renderer) renderImports(paths []string) {
	if len(paths) == 0 {
		return
	}

	var std, ext []string
	for _, p := range paths {
		if strings.Contains(strings.SplitN(p, "/", 2)[0], ".") {
			ext = append(ext, p)
		} else {
			std = append(std, p)
		}
	}
	sort.Strings(std)
	sort.Strings(ext)

	r.w.line("import (")
	r.w.depth++
	for _, p := range std {
		r.w.line(fmt.Sprintf("%q", p))
	}
	if len(std) > 0 && len(ext) > 0 {
		r.w.blank()
	}
	for _, p := range ext {
		r.w.line(fmt.Sprintf("%q", p))
	}
	r.w.depth--
	r.w.line(")")
	r.w.blank()
}

// encode renders one value at prefixLen characters into the current
// statement line.
func (r *renderer) encode(v snapshot.Value, col snapshot.Column, prefixLen int) []string {
	return r.encodeAt(v, col, r.w.depth*len(r.opts.Indent)+prefixLen)
}

// encodeAt renders one value at an absolute output column, recording a
// warning the first time a column degrades to a lossy literal. Wrapped
// segments land on continuation lines one level deeper, so the wrap width
// is bounded by the continuation column too.
func (r *renderer) encodeAt(v snapshot.Value, col snapshot.Column, startCol int) []string {
	if cont := (r.w.depth + 1) * len(r.opts.Indent); startCol < cont {
		startCol = cont
	}
	segs, lossy := encodeValue(v, col, r.d, r.opts, startCol)
	if lossy {
		switch {
		case col.Kind == snapshot.KindUnsupported:
			// Warning already recorded when the declaration rendered.
		case v.Tag() == snapshot.TagBinary:
			r.warn(col, "binary values render as byte literals")
		}
	}
	return segs
}

func (r *renderer) warn(col snapshot.Column, msg string) {
	if r.seen[col.Name] {
		return
	}
	r.seen[col.Name] = true
	r.warns = append(r.warns, Warning{Column: col.Name, SourceType: col.SourceType, Message: msg})
}

// emitStatement writes prefix + segments + suffix as one statement,
// breaking to a continuation line after the concatenation operator of a
// wrapped text literal. Continuation lines sit one level deeper than the
// statement.
func (r *renderer) emitStatement(prefix string, segs []string, suffix string) {
	depth := r.w.depth
	first := true
	line := prefix

	flush := func() {
		d := depth
		if !first {
			d = depth + 1
		}
		r.w.at(d, line)
		first = false
		line = ""
	}

	for j, seg := range segs {
		line += seg
		if j < len(segs)-1 {
			line += " +"
			flush()
		}
	}
	line += suffix
	flush()
}

// emitRow writes one positional row statement, encoding each literal at
// the output column it actually occupies, so right-margin wrapping
// accounts for the values already on the line. Continuation lines sit one
// level deeper than the statement.
func (r *renderer) emitRow(prefix string, row []snapshot.Value, suffix string) {
	depth := r.w.depth
	first := true
	line := prefix

	flush := func() {
		d := depth
		if !first {
			d = depth + 1
		}
		r.w.at(d, line)
		first = false
		line = ""
	}

	for i, v := range row {
		base := depth
		if !first {
			base = depth + 1
		}
		segs := r.encodeAt(v, r.snap.Columns[i], base*len(r.opts.Indent)+len(line))
		for j, seg := range segs {
			line += seg
			if j < len(segs)-1 {
				line += " +"
				flush()
			}
		}
		if i < len(row)-1 {
			line += ", "
		}
	}
	line += suffix
	flush()
}
