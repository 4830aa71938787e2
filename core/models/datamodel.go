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

// Package models holds the registry of tables a server instance exposes.
package models

import (
	"github.com/google/tabulate/core/columns"
	"github.com/google/tabulate/core/tables"
)

// TableInfo carries a registered table and its presentation metadata.
type TableInfo struct {
	Name        string
	Description string
	Table       *tables.DataTable
	// DefaultGroupColumns are the grouping columns a summary of this
	// table starts with when the request names none.
	DefaultGroupColumns []string
}

// DataModel is the registry of tables available for tallying. Registration
// order is preserved for listings.
type DataModel struct {
	names  []string
	tables map[string]*TableInfo
}

// NewDataModel creates a new DataModel instance
func NewDataModel() *DataModel {
	return &DataModel{
		tables: make(map[string]*TableInfo),
	}
}

// AddTable registers a table under the given name. Registering the same
// name again replaces the table but keeps its position.
func (dm *DataModel) AddTable(info *TableInfo) {
	if _, ok := dm.tables[info.Name]; !ok {
		dm.names = append(dm.names, info.Name)
	}
	dm.tables[info.Name] = info
}

// GetTable returns a registered table by name, or nil.
func (dm *DataModel) GetTable(name string) *tables.DataTable {
	info := dm.tables[name]
	if info == nil {
		return nil
	}
	return info.Table
}

// GetTableInfo returns a registered table's metadata by name, or nil.
func (dm *DataModel) GetTableInfo(name string) *TableInfo {
	return dm.tables[name]
}

// TableNames returns the registered table names in registration order.
func (dm *DataModel) TableNames() []string {
	names := make([]string, len(dm.names))
	copy(names, dm.names)
	return names
}

// GroupableColumns returns the columns of a table that can serve as
// grouping columns: every column except float64 ones, whose continuous
// values rarely form meaningful groups.
func (dm *DataModel) GroupableColumns(name string) []string {
	table := dm.GetTable(name)
	if table == nil {
		return nil
	}
	var out []string
	for _, colName := range table.GetColumnNames() {
		if _, ok := table.GetColumn(colName).(*columns.Float64Column); ok {
			continue
		}
		out = append(out, colName)
	}
	return out
}

// WeightColumns returns the columns of a table that can serve as a tally
// weight: the numeric ones.
func (dm *DataModel) WeightColumns(name string) []string {
	table := dm.GetTable(name)
	if table == nil {
		return nil
	}
	var out []string
	for _, colName := range table.GetColumnNames() {
		if columns.AsNumeric(table.GetColumn(colName)) != nil {
			out = append(out, colName)
		}
	}
	return out
}
