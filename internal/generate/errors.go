// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Snapgen Authors

package generate

import "errors"

var (
	// ErrInvalidConfig marks options rejected before any rendering begins.
	ErrInvalidConfig = errors.New("invalid generator configuration")

	// ErrShapeViolation marks a snapshot whose rows do not align with its
	// columns. Capture guarantees alignment, so hitting this means the
	// snapshot was built by hand incorrectly.
	ErrShapeViolation = errors.New("snapshot shape violation")
)

// Warning reports a column that rendered lossily. Warnings never abort
// generation; the remaining columns and rows render fully.
type Warning struct {
	Column     string
	SourceType string
	Message    string
}
