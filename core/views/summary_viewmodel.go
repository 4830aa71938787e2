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

// Package views builds the view models the HTML templates consume.
package views

import (
	"fmt"

	"github.com/google/safehtml"

	"github.com/google/tabulate/core/aggregates"
	"github.com/google/tabulate/core/columns"
	"github.com/google/tabulate/core/models"
	"github.com/google/tabulate/core/query"
	"github.com/google/tabulate/core/tables"
	"github.com/google/tabulate/core/tally"
)

// SummaryViewModel contains one table's grouped summary formatted for
// template consumption.
type SummaryViewModel struct {
	Title       string
	TableName   string
	Description string

	Headers []string            // Column display names
	Columns []string            // Column names (for data access)
	Rows    []map[string]string // Each row is a map of column name to value

	GroupChoices  []ColumnChoice // Columns that can be grouped by
	WeightChoices []ColumnChoice // Columns that can serve as the weight
	HasWeight     bool           // A weight column is active
	WeightSummary *WeightSummary // Set when a weight column is active

	SortDesc      bool
	SortToggleURL safehtml.URL

	TotalGroups     int
	DisplayedGroups int
	HasMoreGroups   bool
	CurrentLimit    int
	ShowAllURL      safehtml.URL

	CurrentURL safehtml.URL
}

// WeightSummary describes the active weight column across the whole input
// table, for the line under the summary.
type WeightSummary struct {
	Column string // Display name of the weight column
	Count  int64  // Rows with a weight value
	Nulls  int64  // Rows with a missing weight
	Sum    string
	Avg    string // Empty when no values exist
	Min    string
	Max    string
}

// ColumnChoice is one selectable column in the summary controls.
type ColumnChoice struct {
	Name        string
	DisplayName string
	IsActive    bool
	ToggleURL   safehtml.URL
}

// LandingViewModel lists the registered tables.
type LandingViewModel struct {
	Title  string
	Tables []TableLink
}

// TableLink is one entry on the landing page.
type TableLink struct {
	Name        string
	Description string
	RowCount    int
	ColumnCount int
	URL         safehtml.URL
}

// BuildSummaryViewModel computes the grouped proportions for the table and
// grouping named by the query and shapes them for the summary template.
// With no grouping columns in the query, the table's default grouping is
// used.
func BuildSummaryViewModel(dataModel *models.DataModel, q *query.Query) (*SummaryViewModel, error) {
	info := dataModel.GetTableInfo(q.Table)
	if info == nil {
		return nil, fmt.Errorf("unknown table %q", q.Table)
	}

	// Fall back to the table's default grouping, and make it explicit in
	// the query so toggle links extend it rather than replace it.
	if len(q.GroupColumns) == 0 {
		q = q.Clone()
		q.GroupColumns = append(q.GroupColumns, info.DefaultGroupColumns...)
	}
	by := q.GroupColumns

	opts := tally.Options{Weight: q.Weight, SortDesc: q.SortDesc}
	counted, err := tally.Count(info.Table, by, opts)
	if err != nil {
		return nil, err
	}
	proportions, err := tally.Prop(info.Table, by, opts)
	if err != nil {
		return nil, err
	}

	vm := &SummaryViewModel{
		Title:       fmt.Sprintf("Summary of %s", info.Name),
		TableName:   info.Name,
		Description: info.Description,
		HasWeight:   q.Weight != "",
		SortDesc:    q.SortDesc,
		CurrentURL:  q.ToSafeURL(),
	}
	vm.SortToggleURL = q.WithSortToggled()
	vm.ShowAllURL = q.WithLimit(0)

	// Count and Prop partition and sort identically, so their rows line
	// up group for group. A zero total yields an empty proportion table;
	// the summary shows no groups then.
	for _, name := range proportions.GetColumnNames() {
		col := proportions.GetColumn(name)
		vm.Columns = append(vm.Columns, name)
		vm.Headers = append(vm.Headers, col.ColumnDef().DisplayName())
	}
	vm.Columns = append(vm.Columns, tally.CountColumn)
	vm.Headers = append(vm.Headers, "N")

	vm.TotalGroups = proportions.Length()
	rowsToDisplay := vm.TotalGroups
	if q.Limit > 0 && q.Limit < rowsToDisplay {
		rowsToDisplay = q.Limit
		vm.HasMoreGroups = true
	}
	vm.DisplayedGroups = rowsToDisplay
	vm.CurrentLimit = q.Limit

	countCol := counted.GetColumn(tally.CountColumn)
	for i := 0; i < rowsToDisplay; i++ {
		row := make(map[string]string)
		for _, name := range proportions.GetColumnNames() {
			value, err := proportions.GetColumn(name).GetString(uint32(i))
			if err != nil {
				return nil, err
			}
			row[name] = value
		}
		n, err := countCol.GetString(uint32(i))
		if err != nil {
			return nil, err
		}
		row[tally.CountColumn] = n
		vm.Rows = append(vm.Rows, row)
	}

	if q.Weight != "" {
		vm.WeightSummary, err = summarizeWeight(info.Table, q.Weight)
		if err != nil {
			return nil, err
		}
	}

	for _, name := range dataModel.GroupableColumns(q.Table) {
		col := info.Table.GetColumn(name)
		vm.GroupChoices = append(vm.GroupChoices, ColumnChoice{
			Name:        name,
			DisplayName: col.ColumnDef().DisplayName(),
			IsActive:    q.IsGrouped(name),
			ToggleURL:   q.WithGroupToggled(name),
		})
	}
	for _, name := range dataModel.WeightColumns(q.Table) {
		col := info.Table.GetColumn(name)
		vm.WeightChoices = append(vm.WeightChoices, ColumnChoice{
			Name:        name,
			DisplayName: col.ColumnDef().DisplayName(),
			IsActive:    q.Weight == name,
			ToggleURL:   q.WithWeightToggled(name),
		})
	}

	return vm, nil
}

// summarizeWeight folds the weight column into an aggregate state for the
// summary footer. The column has already been validated by the tally calls
// by the time this runs.
func summarizeWeight(dt *tables.DataTable, weight string) (*WeightSummary, error) {
	col := dt.GetColumn(weight)
	if col == nil {
		return nil, fmt.Errorf("%w: weight column %q", tables.ErrColumnNotFound, weight)
	}
	read := columns.AsNumeric(col)
	if read == nil {
		return nil, fmt.Errorf("%w: weight column %q is not numeric", tables.ErrTypeMismatch, weight)
	}

	state := aggregates.NewNumericAggState()
	for i := 0; i < dt.Length(); i++ {
		v, ok, err := read(uint32(i))
		if err != nil {
			return nil, err
		}
		if ok {
			state.Add(v)
		} else {
			state.AddNull()
		}
	}

	ws := &WeightSummary{
		Column: col.ColumnDef().DisplayName(),
		Count:  state.Count,
		Nulls:  state.NullCount,
		Sum:    columns.FormatFloat64(state.Sum),
	}
	if state.Count > 0 {
		ws.Avg = columns.FormatFloat64(state.Avg())
		ws.Min = columns.FormatFloat64(state.Min)
		ws.Max = columns.FormatFloat64(state.Max)
	}
	return ws, nil
}

// BuildLandingViewModel lists every registered table with a link to its
// default summary.
func BuildLandingViewModel(dataModel *models.DataModel) *LandingViewModel {
	vm := &LandingViewModel{Title: "Tabulate"}
	for _, name := range dataModel.TableNames() {
		info := dataModel.GetTableInfo(name)
		q := &query.Query{Path: "/summary", Table: name}
		vm.Tables = append(vm.Tables, TableLink{
			Name:        name,
			Description: info.Description,
			RowCount:    info.Table.Length(),
			ColumnCount: info.Table.NumColumns(),
			URL:         q.ToSafeURL(),
		})
	}
	return vm
}
