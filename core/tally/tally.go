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

// Package tally computes grouped counts, weighted tallies, and proportions
// over tables.
//
// Every operation partitions rows by the tuple of values in the grouping
// columns, preserving first-appearance order, and counts each group either
// by rows or by summing an explicit numeric weight column. Null weight
// cells are excluded from the sum but the row still belongs to its group.
// Outputs are newly built tables; inputs are never mutated.
package tally

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/tabulate/core/aggregates"
	"github.com/google/tabulate/core/columns"
	"github.com/google/tabulate/core/grouping"
	"github.com/google/tabulate/core/tables"
)

// Output column names.
const (
	CountColumn      = "n"
	ProportionColumn = "proportion"
)

// ErrNoGroupColumns indicates an operation that partitions rows was called
// without any grouping columns.
var ErrNoGroupColumns = errors.New("at least one grouping column required")

// Options control how groups are counted and how output rows are ordered.
type Options struct {
	// Weight names a numeric column whose non-null values are summed per
	// group instead of counting rows. Must be set explicitly; there is no
	// implicit reuse of an existing count column.
	Weight string
	// SortDesc orders output rows by the computed value, descending.
	// The sort is stable: tied groups keep first-appearance order.
	SortDesc bool
}

// groupCount pairs a group with its computed count or weighted sum.
type groupCount struct {
	group *grouping.Group
	count float64
}

// Count returns one row per distinct combination of the by columns,
// containing the by columns and a count column named "n". Without a weight
// the count is the group's row count (int64 column); with a weight it is
// the sum of the group's non-null weight values (float64 column).
func Count(dt *tables.DataTable, by []string, opts Options) (*tables.DataTable, error) {
	by = grouping.DedupeColumns(by)
	if len(by) == 0 {
		return nil, ErrNoGroupColumns
	}

	counts, weighted, err := groupCounts(dt, by, opts.Weight)
	if err != nil {
		return nil, err
	}
	if opts.SortDesc {
		counts = sortedByCountDesc(counts)
	}

	out, err := emitGroupColumns(dt, by, counts)
	if err != nil {
		return nil, err
	}
	out.AddColumn(countColumn(counts, weighted))
	return out, nil
}

// Tally counts the whole table as a single group and returns a one-row
// table with just the count column "n". The weight option applies as in
// Count. An empty table tallies to a single row with n == 0.
func Tally(dt *tables.DataTable, opts Options) (*tables.DataTable, error) {
	counts, weighted, err := wholeTableCount(dt, opts.Weight)
	if err != nil {
		return nil, err
	}
	out := tables.NewDataTable()
	out.AddColumn(countColumn(counts, weighted))
	return out, nil
}

// Prop returns one row per distinct combination of the by columns,
// containing the by columns and a float64 "proportion" column: each
// group's share of the total count or weight, in [0, 1], summing to 1
// across the result. The intermediate count never appears in the output.
//
// When the total is zero (no rows, or weights that are all null or sum to
// zero) the result has zero rows and no error is raised: there is nothing
// to divide.
func Prop(dt *tables.DataTable, by []string, opts Options) (*tables.DataTable, error) {
	by = grouping.DedupeColumns(by)
	if len(by) == 0 {
		return nil, ErrNoGroupColumns
	}

	counts, _, err := groupCounts(dt, by, opts.Weight)
	if err != nil {
		return nil, err
	}

	total := 0.0
	for _, gc := range counts {
		total += gc.count
	}
	if total == 0 {
		counts = nil
	}

	props := make([]groupCount, len(counts))
	for i, gc := range counts {
		props[i] = groupCount{group: gc.group, count: gc.count / total}
	}
	if opts.SortDesc {
		props = sortedByCountDesc(props)
	}

	out, err := emitGroupColumns(dt, by, props)
	if err != nil {
		return nil, err
	}
	propCol := columns.NewFloat64Column(columns.NewColumnDef(ProportionColumn, "Proportion"))
	for _, gc := range props {
		propCol.Append(gc.count)
	}
	out.AddColumn(propCol)
	return out, nil
}

// AddCount returns a new table with every input column plus the per-group
// count broadcast onto each row as column "n". The grouped structure is not
// collapsed: the output has one row per input row. An existing column named
// "n" is replaced in the output, keeping its position; the input table
// itself is never modified and shares no column storage with the result.
func AddCount(dt *tables.DataTable, by []string, opts Options) (*tables.DataTable, error) {
	by = grouping.DedupeColumns(by)
	if len(by) == 0 {
		return nil, ErrNoGroupColumns
	}
	counts, weighted, err := groupCounts(dt, by, opts.Weight)
	if err != nil {
		return nil, err
	}
	return broadcastCounts(dt, counts, weighted, opts.SortDesc)
}

// AddTally returns a new table with every input column plus the whole-table
// count or weighted sum broadcast onto each row as column "n".
func AddTally(dt *tables.DataTable, opts Options) (*tables.DataTable, error) {
	counts, weighted, err := wholeTableCount(dt, opts.Weight)
	if err != nil {
		return nil, err
	}
	return broadcastCounts(dt, counts, weighted, false)
}

// groupCounts partitions dt by the given columns and counts each group.
// Returns tables.ErrColumnNotFound (wrapped) for a missing group or weight
// column and tables.ErrTypeMismatch (wrapped) for a non-numeric weight,
// both before any aggregation output is produced.
func groupCounts(dt *tables.DataTable, by []string, weight string) ([]groupCount, bool, error) {
	read, err := weightReader(dt, weight)
	if err != nil {
		return nil, false, err
	}

	groups, err := grouping.Partition(dt, by)
	if err != nil {
		return nil, false, err
	}

	counts := make([]groupCount, len(groups))
	for i, g := range groups {
		count, err := countGroup(g.Indices, read)
		if err != nil {
			return nil, false, err
		}
		counts[i] = groupCount{group: g, count: count}
	}
	return counts, read != nil, nil
}

// wholeTableCount counts all rows of dt as one group.
func wholeTableCount(dt *tables.DataTable, weight string) ([]groupCount, bool, error) {
	read, err := weightReader(dt, weight)
	if err != nil {
		return nil, false, err
	}
	indices := tables.AllIndices(dt.Length())
	count, err := countGroup(indices, read)
	if err != nil {
		return nil, false, err
	}
	g := &grouping.Group{Indices: indices}
	return []groupCount{{group: g, count: count}}, read != nil, nil
}

// weightReader resolves the weight column into a numeric reader.
// An empty name means row counting; the returned reader is nil.
func weightReader(dt *tables.DataTable, weight string) (columns.NumericReader, error) {
	if weight == "" {
		return nil, nil
	}
	col := dt.GetColumn(weight)
	if col == nil {
		return nil, fmt.Errorf("%w: weight column %q", tables.ErrColumnNotFound, weight)
	}
	read := columns.AsNumeric(col)
	if read == nil {
		return nil, fmt.Errorf("%w: weight column %q is not numeric", tables.ErrTypeMismatch, weight)
	}
	return read, nil
}

// countGroup computes a group's count: row count without a reader, sum of
// the non-null weight values with one. A group whose weights are all null
// counts as 0 but is kept.
func countGroup(indices []uint32, read columns.NumericReader) (float64, error) {
	if read == nil {
		return float64(len(indices)), nil
	}
	state := aggregates.NewNumericAggState()
	for _, i := range indices {
		v, ok, err := read(i)
		if err != nil {
			return 0, err
		}
		if ok {
			state.Add(v)
		} else {
			state.AddNull()
		}
	}
	return state.Sum, nil
}

// sortedByCountDesc returns the counts ordered descending by count.
// sort.SliceStable keeps tied groups in first-appearance order.
func sortedByCountDesc(counts []groupCount) []groupCount {
	sorted := make([]groupCount, len(counts))
	copy(sorted, counts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].count > sorted[j].count
	})
	return sorted
}

// emitGroupColumns builds a table holding one row per group, with each by
// column carrying the group's representative value (read from the group's
// first input row).
func emitGroupColumns(dt *tables.DataTable, by []string, counts []groupCount) (*tables.DataTable, error) {
	out := tables.NewDataTable()
	for _, name := range by {
		src := dt.GetColumn(name)
		dst, err := tables.NewColumnLike(src)
		if err != nil {
			return nil, err
		}
		for _, gc := range counts {
			if err := tables.AppendFromRow(dst, src, gc.group.First); err != nil {
				return nil, err
			}
		}
		out.AddColumn(dst)
	}
	return out, nil
}

// countColumn builds the "n" column: float64 for weighted tallies, int64
// for plain row counts.
func countColumn(counts []groupCount, weighted bool) columns.IDataColumn {
	def := columns.NewColumnDef(CountColumn, "N")
	if weighted {
		col := columns.NewFloat64Column(def)
		for _, gc := range counts {
			col.Append(gc.count)
		}
		return col
	}
	col := columns.NewInt64Column(def)
	for _, gc := range counts {
		col.Append(int64(gc.count))
	}
	return col
}

// broadcastCounts builds the AddCount/AddTally result: the input columns
// plus a per-row "n" column, optionally reordered by n descending.
func broadcastCounts(dt *tables.DataTable, counts []groupCount, weighted bool, sortDesc bool) (*tables.DataTable, error) {
	values := make([]float64, dt.Length())
	for _, gc := range counts {
		for _, i := range gc.group.Indices {
			values[i] = gc.count
		}
	}

	out := tables.NewDataTable()
	for _, name := range dt.GetColumnNames() {
		out.AddColumn(dt.GetColumn(name))
	}

	// AddColumn replaces in place, so a stale "n" column keeps its slot.
	def := columns.NewColumnDef(CountColumn, "N")
	if weighted {
		col := columns.NewFloat64Column(def)
		for _, v := range values {
			col.Append(v)
		}
		out.AddColumn(col)
	} else {
		col := columns.NewInt64Column(def)
		for _, v := range values {
			col.Append(int64(v))
		}
		out.AddColumn(col)
	}

	if sortDesc {
		return out.SortedBy(CountColumn, true)
	}
	// Reordering through the identity permutation rebuilds every column,
	// so the result shares no storage with the input.
	return out.Reordered(tables.AllIndices(out.Length()))
}
