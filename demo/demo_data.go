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

// Package demo builds sample tables for running the server locally.
package demo

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/google/tabulate/core/columns"
	"github.com/google/tabulate/core/csvimport"
	"github.com/google/tabulate/core/tables"
)

//go:embed data/orders.csv
var ordersCSV string

// CreateOrdersTable imports the sample order data from embedded CSV.
// Some revenue cells are empty, so a revenue-weighted summary exercises
// null handling.
func CreateOrdersTable() *tables.DataTable {
	options := csvimport.DefaultOptions()
	options.ColumnSources["region"] = csvimport.CsvColumnSource{DisplayName: "Region"}
	options.ColumnSources["status"] = csvimport.CsvColumnSource{DisplayName: "Status"}
	options.ColumnSources["category"] = csvimport.CsvColumnSource{DisplayName: "Category"}
	options.ColumnSources["revenue"] = csvimport.CsvColumnSource{DisplayName: "Revenue", Type: csvimport.CsvColumnTypeFloat64}
	options.ColumnSources["qty"] = csvimport.CsvColumnSource{DisplayName: "Quantity", Type: csvimport.CsvColumnTypeUint32}

	table, err := csvimport.ImportFromReader(strings.NewReader(ordersCSV), options)
	if err != nil {
		panic(fmt.Sprintf("failed to import orders CSV: %v", err))
	}
	return table
}

// CreateInventoryTable builds a small inventory table in code.
func CreateInventoryTable() *tables.DataTable {
	table := tables.NewDataTable()

	warehouse := columns.NewStringColumn(columns.NewColumnDef("warehouse", "Warehouse"))
	product := columns.NewStringColumn(columns.NewColumnDef("product", "Product"))
	stock := columns.NewInt64Column(columns.NewColumnDef("stock", "Stock"))
	unitCost := columns.NewFloat64Column(columns.NewColumnDef("unit_cost", "Unit cost"))

	type row struct {
		warehouse, product string
		stock              int64
		unitCost           float64
		costKnown          bool
	}
	rows := []row{
		{"central", "bolt", 1200, 0.12, true},
		{"central", "nut", 3400, 0.08, true},
		{"central", "washer", 900, 0, false},
		{"harbor", "bolt", 640, 0.14, true},
		{"harbor", "gasket", 75, 2.30, true},
		{"harbor", "nut", 1500, 0, false},
		{"uptown", "bolt", 220, 0.13, true},
		{"uptown", "gasket", 40, 2.55, true},
	}
	for _, r := range rows {
		warehouse.Append(r.warehouse)
		product.Append(r.product)
		stock.Append(r.stock)
		if r.costKnown {
			unitCost.Append(r.unitCost)
		} else {
			unitCost.AppendNull()
		}
	}

	table.AddColumn(warehouse)
	table.AddColumn(product)
	table.AddColumn(stock)
	table.AddColumn(unitCost)
	return table
}
