/*
SPDX-License-Identifier: Apache-2.0

Copyright 2025 The Tabulate Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package tables provides the in-memory table type: an ordered set of
// named columns sharing a common row count.
package tables

import (
	"errors"

	"github.com/google/tabulate/core/columns"
)

// ErrColumnNotFound indicates a referenced column is absent from a table's schema.
var ErrColumnNotFound = errors.New("column not found")

// ErrTypeMismatch indicates a column has the wrong type for an operation,
// such as a non-numeric weight column.
var ErrTypeMismatch = errors.New("column type mismatch")

// DataTable is an ordered collection of named columns. Column order is the
// order of AddColumn calls; adding a column under an existing name replaces
// it in place.
type DataTable struct {
	names   []string
	columns map[string]columns.IDataColumn
}

func NewDataTable() *DataTable {
	return &DataTable{
		columns: make(map[string]columns.IDataColumn),
	}
}

func (dt *DataTable) AddColumn(col columns.IDataColumn) {
	name := col.ColumnDef().Name()
	if _, exists := dt.columns[name]; !exists {
		dt.names = append(dt.names, name)
	}
	dt.columns[name] = col
}

func (dt *DataTable) GetColumn(name string) columns.IDataColumn {
	return dt.columns[name]
}

// GetColumnNames returns the column names in insertion order.
func (dt *DataTable) GetColumnNames() []string {
	names := make([]string, len(dt.names))
	copy(names, dt.names)
	return names
}

// NumColumns returns the number of columns.
func (dt *DataTable) NumColumns() int {
	return len(dt.names)
}

// Length returns the number of rows, taken from the first column.
// A table with no columns has zero rows.
func (dt *DataTable) Length() int {
	if len(dt.names) == 0 {
		return 0
	}
	return dt.columns[dt.names[0]].Length()
}
