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

package demo

import (
	"testing"

	"github.com/google/tabulate/core/columns"
	"github.com/google/tabulate/core/tally"
)

func TestCreateOrdersTable(t *testing.T) {
	table := CreateOrdersTable()
	if table.Length() != 15 {
		t.Errorf("rows: got %d, want 15", table.Length())
	}
	if table.NumColumns() != 5 {
		t.Errorf("columns: got %d, want 5", table.NumColumns())
	}

	revenue := table.GetColumn("revenue")
	if _, ok := revenue.(*columns.Float64Column); !ok {
		t.Fatalf("revenue column type: %T", revenue)
	}
	nulls := 0
	for i := 0; i < table.Length(); i++ {
		if revenue.IsNull(uint32(i)) {
			nulls++
		}
	}
	if nulls != 3 {
		t.Errorf("null revenue cells: got %d, want 3", nulls)
	}

	if _, ok := table.GetColumn("qty").(*columns.Uint32Column); !ok {
		t.Errorf("qty column type: %T", table.GetColumn("qty"))
	}
}

func TestCreateInventoryTable(t *testing.T) {
	table := CreateInventoryTable()
	if table.Length() != 8 {
		t.Errorf("rows: got %d, want 8", table.Length())
	}

	// Three warehouses, proportions sum to one.
	summary, err := tally.Prop(table, []string{"warehouse"}, tally.Options{})
	if err != nil {
		t.Fatalf("Prop: %v", err)
	}
	if summary.Length() != 3 {
		t.Errorf("warehouses: got %d, want 3", summary.Length())
	}
}

func TestCreateShipmentsTable(t *testing.T) {
	table := CreateShipmentsTable()
	if table.Length() != 7 {
		t.Errorf("rows: got %d, want 7", table.Length())
	}

	// The warehouse broadcasts onto every shipment row.
	warehouse := table.GetColumn("warehouse")
	if warehouse == nil {
		t.Fatalf("warehouse column missing; have %v", table.GetColumnNames())
	}
	for i := 0; i < table.Length(); i++ {
		v, err := warehouse.GetString(uint32(i))
		if err != nil {
			t.Fatalf("GetString(%d): %v", i, err)
		}
		if v != "central" {
			t.Errorf("row %d warehouse: got %q", i, v)
		}
	}

	// weight_kg is numeric so it can serve as a weight.
	if columns.AsNumeric(table.GetColumn("weight_kg")) == nil {
		t.Errorf("weight_kg should be numeric")
	}
}
