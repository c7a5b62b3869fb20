// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Snapgen Authors

package generate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	for _, name := range []string{"structure", "append", "function", "unit"} {
		m, err := ParseMode(name)
		require.NoError(t, err)
		assert.Equal(t, name, m.String())
	}

	_, err := ParseMode("everything")
	assert.Error(t, err)
}

func TestParseAppendMode(t *testing.T) {
	for _, name := range []string{"multiline", "singleline", "rowarray"} {
		m, err := ParseAppendMode(name)
		require.NoError(t, err)
		assert.Equal(t, name, m.String())
	}

	_, err := ParseAppendMode("bulk")
	assert.Error(t, err)
}

func TestOptions_WithDefaults(t *testing.T) {
	opts := Options{}.withDefaults()

	assert.Equal(t, DefaultIndent, opts.Indent)
	assert.Equal(t, DefaultTarget, opts.Target)
	assert.Equal(t, DefaultTableName, opts.TableName)
	assert.Equal(t, "NewDataset", opts.FuncName)
	assert.Equal(t, "fixtures", opts.UnitName)

	// Zero is meaningful for both caps and must survive defaulting.
	assert.Equal(t, 0, opts.MaxRows)
	assert.Equal(t, 0, opts.RightMargin)
}

func TestOptions_FuncNameDerivedFromTableName(t *testing.T) {
	tests := []struct {
		table string
		want  string
	}{
		{"orders", "NewOrders"},
		{"order_items", "NewOrderItems"},
		{"customer orders", "NewCustomerOrders"},
		{"v2_sales", "NewV2Sales"},
		{"---", "NewDataset"},
	}

	for _, tt := range tests {
		t.Run(tt.table, func(t *testing.T) {
			opts := Options{TableName: tt.table}.withDefaults()
			assert.Equal(t, tt.want, opts.FuncName)
		})
	}
}

func TestOptions_Validate(t *testing.T) {
	valid := DefaultOptions().withDefaults()
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Options)
	}{
		{"negative max rows", func(o *Options) { o.MaxRows = -1 }},
		{"negative margin", func(o *Options) { o.RightMargin = -1 }},
		{"out-of-range mode", func(o *Options) { o.Mode = Mode(42) }},
		{"out-of-range append mode", func(o *Options) { o.AppendMode = AppendMode(42) }},
		{"func name with space", func(o *Options) { o.FuncName = "New Table" }},
		{"func name starting with digit", func(o *Options) { o.FuncName = "1New" }},
		{"upper-case unit name", func(o *Options) { o.Mode = ModeUnit; o.UnitName = "Fixtures" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := valid
			tt.mutate(&opts)
			err := opts.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestOptions_StructureModeSkipsNameChecks(t *testing.T) {
	opts := DefaultOptions().withDefaults()
	opts.Mode = ModeStructure
	opts.FuncName = "not an identifier"

	assert.NoError(t, opts.Validate())
}
