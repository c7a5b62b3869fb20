// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Snapgen Authors

package snapshot

import "time"

// Tag identifies which payload a Value carries. Null is orthogonal to the
// column kind: any column may hold a TagNull value.
type Tag int

const (
	TagNull Tag = iota
	TagInt
	TagFloat
	TagDecimal
	TagBool
	TagText
	TagDate
	TagTime
	TagDateTime
	TagBinary
)

// Value is one cell of a captured row: a tagged union over the supported
// payloads. Values are constructed once during capture and read-only after.
type Value struct {
	tag Tag
	i   int64
	f   float64
	b   bool
	s   string // text, or decimal digits for TagDecimal
	t   time.Time
	raw []byte
}

// Null returns the null value.
func Null() Value { return Value{tag: TagNull} }

// Int returns an integer value.
func Int(v int64) Value { return Value{tag: TagInt, i: v} }

// Float returns a floating-point value.
func Float(v float64) Value { return Value{tag: TagFloat, f: v} }

// Decimal returns a fixed-point value from its decimal digit string, e.g.
// "1234.56". The digits are kept verbatim so the declared scale survives
// encoding.
func Decimal(digits string) Value { return Value{tag: TagDecimal, s: digits} }

// Bool returns a boolean value.
func Bool(v bool) Value { return Value{tag: TagBool, b: v} }

// Text returns a text value. Text doubles as the best-effort representation
// for unsupported column kinds.
func Text(v string) Value { return Value{tag: TagText, s: v} }

// Date returns a date value; the clock part of v is ignored by encoding.
func Date(v time.Time) Value { return Value{tag: TagDate, t: v} }

// TimeOfDay returns a time-of-day value; the date part of v is ignored by
// encoding.
func TimeOfDay(v time.Time) Value { return Value{tag: TagTime, t: v} }

// Timestamp returns a combined date-time value.
func Timestamp(v time.Time) Value { return Value{tag: TagDateTime, t: v} }

// Binary returns a binary value. The slice is not copied; callers hand over
// ownership.
func Binary(v []byte) Value { return Value{tag: TagBinary, raw: v} }

// Tag returns the value's payload tag.
func (v Value) Tag() Tag { return v.tag }

// IsNull reports whether the value is null.
func (v Value) IsNull() bool { return v.tag == TagNull }

// Int returns the integer payload.
func (v Value) Int() int64 { return v.i }

// Float returns the floating-point payload.
func (v Value) Float() float64 { return v.f }

// Bool returns the boolean payload.
func (v Value) Bool() bool { return v.b }

// Text returns the text payload; for TagDecimal it returns the digit
// string.
func (v Value) Text() string { return v.s }

// Time returns the temporal payload of date, time and date-time values.
func (v Value) Time() time.Time { return v.t }

// Bytes returns the binary payload.
func (v Value) Bytes() []byte { return v.raw }

// CompatibleWith reports whether a value with this tag may sit in a column
// of the given kind. Null fits everywhere; text fits everywhere too, as the
// universal fallback representation for values a driver could not type.
func (v Value) CompatibleWith(k Kind) bool {
	switch v.tag {
	case TagNull, TagText:
		return true
	case TagInt:
		return k == KindInteger
	case TagFloat:
		return k == KindFloat
	case TagDecimal:
		return k == KindDecimal
	case TagBool:
		return k == KindBool
	case TagDate:
		return k == KindDate
	case TagTime:
		return k == KindTime
	case TagDateTime:
		return k == KindDateTime
	case TagBinary:
		return k == KindBinary || k == KindUnsupported
	default:
		return false
	}
}
