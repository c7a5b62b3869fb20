// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Snapgen Authors

package generate

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/snapgen/cli/internal/snapshot"
)

// minWrapWidth is the smallest segment body the wrapper will produce when
// the right margin leaves almost no room; it guarantees forward progress.
const minWrapWidth = 8

// encodeValue renders one value as Go literal text. The result is a slice
// of segments: a single element for every kind except wrapped text, where
// each segment is one quoted piece to be joined with the concatenation
// operator. lossy reports a best-effort rendering (binary payloads and
// unsupported column kinds).
//
// startCol is the output column where the literal begins; wrapping triggers
// when startCol plus the quoted length would pass opts.RightMargin.
// Encoding is pure: identical inputs yield identical segments.
func encodeValue(v snapshot.Value, col snapshot.Column, d *Dialect, opts Options, startCol int) (segs []string, lossy bool) {
	if v.IsNull() {
		// Null never wraps, whatever the column width.
		return []string{d.Null}, false
	}

	switch v.Tag() {
	case TagInt:
		return []string{strconv.FormatInt(v.Int(), 10)}, false
	case TagFloat:
		return []string{formatFloat(v.Float())}, false
	case TagDecimal:
		return []string{v.Text()}, false
	case TagBool:
		return []string{strconv.FormatBool(v.Bool())}, false
	case TagDate:
		y, m, day := v.Time().Date()
		return []string{fmt.Sprintf("time.Date(%d, %d, %d, 0, 0, 0, 0, time.UTC)", y, int(m), day)}, false
	case TagTime:
		t := v.Time()
		return []string{fmt.Sprintf("time.Date(1, 1, 1, %d, %d, %d, %d, time.UTC)",
			t.Hour(), t.Minute(), t.Second(), t.Nanosecond())}, false
	case TagDateTime:
		t := v.Time()
		y, m, day := t.Date()
		return []string{fmt.Sprintf("time.Date(%d, %d, %d, %d, %d, %d, %d, time.UTC)",
			y, int(m), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond())}, false
	case TagBinary:
		return []string{formatBytes(v.Bytes())}, true
	case TagText:
		return wrapQuoted(strconv.Quote(v.Text()), opts.RightMargin, startCol),
			col.Kind == snapshot.KindUnsupported
	default:
		return []string{d.Null}, true
	}
}

// Tag aliases keep the encoder's switch readable without importing the
// snapshot package at every use site.
const (
	TagInt      = snapshot.TagInt
	TagFloat    = snapshot.TagFloat
	TagDecimal  = snapshot.TagDecimal
	TagBool     = snapshot.TagBool
	TagText     = snapshot.TagText
	TagDate     = snapshot.TagDate
	TagTime     = snapshot.TagTime
	TagDateTime = snapshot.TagDateTime
	TagBinary   = snapshot.TagBinary
)

// formatFloat renders a float so the literal stays a float: whole values
// get a trailing ".0".
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func formatBytes(b []byte) string {
	if len(b) == 0 {
		return "[]byte{}"
	}
	var sb strings.Builder
	sb.WriteString("[]byte{")
	for i, c := range b {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "0x%02x", c)
	}
	sb.WriteString("}")
	return sb.String()
}

// wrapQuoted splits a quoted Go string literal into margin-sized quoted
// segments. Breaks happen only between escape-sequence units, never inside
// one, so unquoting and concatenating the segments reproduces the original
// value exactly.
func wrapQuoted(quoted string, margin, startCol int) []string {
	if margin <= 0 || startCol+len(quoted) <= margin {
		return []string{quoted}
	}

	// Width available for the segment body, between its two quotes.
	width := margin - startCol - 2
	if width < minWrapWidth {
		width = minWrapWidth
	}

	units := splitEscapeUnits(quoted[1 : len(quoted)-1])

	var segs []string
	var body strings.Builder
	for _, u := range units {
		if body.Len() > 0 && body.Len()+len(u) > width {
			segs = append(segs, `"`+body.String()+`"`)
			body.Reset()
		}
		body.WriteString(u)
	}
	segs = append(segs, `"`+body.String()+`"`)
	return segs
}

// splitEscapeUnits cuts the body of a quoted literal into indivisible
// pieces: each escape sequence is one unit, each plain rune is one unit.
// Only the escape forms strconv.Quote emits are handled.
func splitEscapeUnits(body string) []string {
	var units []string
	for i := 0; i < len(body); {
		if body[i] == '\\' && i+1 < len(body) {
			n := 2
			switch body[i+1] {
			case 'x':
				n = 4
			case 'u':
				n = 6
			case 'U':
				n = 10
			}
			if i+n > len(body) {
				n = len(body) - i
			}
			units = append(units, body[i:i+n])
			i += n
			continue
		}
		_, size := utf8.DecodeRuneInString(body[i:])
		units = append(units, body[i:i+size])
		i += size
	}
	return units
}
