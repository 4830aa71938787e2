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

package tables

import (
	"fmt"
	"sort"

	"github.com/google/tabulate/core/columns"
)

// AllIndices returns the identity index slice [0, n).
func AllIndices(n int) []uint32 {
	indices := make([]uint32, n)
	for i := range indices {
		indices[i] = uint32(i)
	}
	return indices
}

// SortedIndices returns the given indices reordered by the values of the
// named column. The sort is stable: rows that compare equal keep their
// relative input order. Null cells sort last whether ascending or
// descending. The input slice is not modified.
func (dt *DataTable) SortedIndices(indices []uint32, colName string, descending bool) ([]uint32, error) {
	col := dt.GetColumn(colName)
	if col == nil {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, colName)
	}

	sorted := make([]uint32, len(indices))
	copy(sorted, indices)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		// Nulls sort last in both directions.
		if col.IsNull(a) || col.IsNull(b) {
			return !col.IsNull(a) && col.IsNull(b)
		}
		cmp := columns.CompareAtIndex(col, a, b)
		if descending {
			return cmp > 0
		}
		return cmp < 0
	})
	return sorted, nil
}

// SortedBy returns a new table with rows ordered by the named column.
// Row storage is rebuilt; the input table is left untouched.
func (dt *DataTable) SortedBy(colName string, descending bool) (*DataTable, error) {
	indices, err := dt.SortedIndices(AllIndices(dt.Length()), colName, descending)
	if err != nil {
		return nil, err
	}
	return dt.Reordered(indices)
}
