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

// Package grouping partitions table rows into groups keyed by the tuple of
// values in a set of grouping columns.
package grouping

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/tabulate/core/columns"
	"github.com/google/tabulate/core/tables"
)

// Group is a maximal set of rows sharing identical values in the grouping
// columns. First is the index of the group's first row in the input table,
// used to read the group's representative values.
type Group struct {
	First   uint32
	Indices []uint32
}

// Length returns the number of rows in the group.
func (g *Group) Length() int {
	return len(g.Indices)
}

// Key encoding. Each tuple component is the cell's string value prefixed
// with its decimal length and a colon, so a value that happens to contain
// the separator cannot shift bytes across component boundaries. The null
// marker keeps a null numeric cell distinct from every value, including
// the empty string (which encodes as "0:").
const (
	keySeparator = "\x1f"
	nullMarker   = "\x00"
)

// DedupeColumns returns the column names with duplicates removed,
// preserving first-appearance order. A column named twice contributes a
// single grouping key.
func DedupeColumns(by []string) []string {
	seen := make(map[string]bool, len(by))
	result := make([]string, 0, len(by))
	for _, name := range by {
		if seen[name] {
			continue
		}
		seen[name] = true
		result = append(result, name)
	}
	return result
}

// Partition splits the rows of dt into groups keyed by the tuple of values
// in the by columns, in first-appearance order. Duplicate column names are
// collapsed. Returns tables.ErrColumnNotFound (wrapped) if any column is
// absent from the table's schema; the schema is checked even for empty
// tables so the error is not masked by a trivially empty result.
func Partition(dt *tables.DataTable, by []string) ([]*Group, error) {
	by = DedupeColumns(by)

	cols := make([]columns.IDataColumn, len(by))
	for i, name := range by {
		col := dt.GetColumn(name)
		if col == nil {
			return nil, fmt.Errorf("%w: grouping column %q", tables.ErrColumnNotFound, name)
		}
		cols[i] = col
	}

	groups := NewOrderedMap[string, *Group]()
	rows := dt.Length()
	var sb strings.Builder
	for i := 0; i < rows; i++ {
		row := uint32(i)
		sb.Reset()
		for k, col := range cols {
			if k > 0 {
				sb.WriteString(keySeparator)
			}
			if col.IsNull(row) {
				sb.WriteString(nullMarker)
				continue
			}
			value, err := col.GetString(row)
			if err != nil {
				return nil, fmt.Errorf("reading %q at row %d: %w", by[k], row, err)
			}
			sb.WriteString(strconv.Itoa(len(value)))
			sb.WriteByte(':')
			sb.WriteString(value)
		}
		key := sb.String()
		if g, ok := groups.Get(key); ok {
			g.Indices = append(g.Indices, row)
		} else {
			groups.Set(key, &Group{First: row, Indices: []uint32{row}})
		}
	}

	return groups.Values(), nil
}
