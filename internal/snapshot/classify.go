// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Snapgen Authors

package snapshot

import "strings"

// Classify maps a driver-reported type name to a logical Kind. It is total:
// any name it does not recognize yields KindUnsupported, never an error, so
// one odd column cannot abort capture of the rest. The declared length
// decides fixed- vs variable-width text (zero or unknown means variable).
//
// The name table covers what the postgres (pgx), mysql, sqlserver and
// sqlite drivers report via ColumnType.DatabaseTypeName.
func Classify(typeName string, length int64) Kind {
	name := strings.ToUpper(strings.TrimSpace(typeName))
	if i := strings.IndexByte(name, '('); i >= 0 {
		name = strings.TrimSpace(name[:i])
	}

	switch name {
	case "INT", "INTEGER", "BIGINT", "SMALLINT", "TINYINT", "MEDIUMINT",
		"INT2", "INT4", "INT8", "SERIAL", "SMALLSERIAL", "BIGSERIAL",
		"YEAR", "UNSIGNED INT", "UNSIGNED BIGINT":
		return KindInteger
	case "FLOAT", "REAL", "DOUBLE", "DOUBLE PRECISION", "FLOAT4", "FLOAT8":
		return KindFloat
	case "NUMERIC", "DECIMAL", "NUMBER", "MONEY", "SMALLMONEY":
		return KindDecimal
	case "BOOL", "BOOLEAN", "BIT":
		// mssql BIT is a boolean; the mysql driver reports bitfields as BIT
		// too, which loses width here but stays round-trippable as 0/1.
		return KindBool
	case "CHAR", "NCHAR", "BPCHAR", "CHARACTER":
		if length > 0 {
			return KindFixedText
		}
		return KindText
	case "VARCHAR", "NVARCHAR", "CHARACTER VARYING", "TEXT", "NTEXT",
		"TINYTEXT", "MEDIUMTEXT", "LONGTEXT", "CLOB", "NAME",
		"UUID", "UNIQUEIDENTIFIER", "JSON", "JSONB", "XML", "ENUM", "SET":
		return KindText
	case "DATE":
		return KindDate
	case "TIME", "TIMETZ", "TIME WITHOUT TIME ZONE", "TIME WITH TIME ZONE":
		return KindTime
	case "TIMESTAMP", "TIMESTAMPTZ", "TIMESTAMP WITHOUT TIME ZONE",
		"TIMESTAMP WITH TIME ZONE", "DATETIME", "DATETIME2",
		"SMALLDATETIME", "DATETIMEOFFSET":
		return KindDateTime
	case "BYTEA", "BLOB", "TINYBLOB", "MEDIUMBLOB", "LONGBLOB",
		"BINARY", "VARBINARY", "IMAGE":
		return KindBinary
	default:
		return KindUnsupported
	}
}
