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

package csvimport

import (
	"strings"
	"testing"

	"github.com/google/tabulate/core/columns"
)

func TestImportTypeDetection(t *testing.T) {
	data := `region,orders,revenue,note
west,3,10.5,ok
east,12,0.25,
west,7,,late`

	dt, err := ImportFromReader(strings.NewReader(data), DefaultOptions())
	if err != nil {
		t.Fatalf("ImportFromReader: %v", err)
	}
	if dt.Length() != 3 {
		t.Fatalf("expected 3 rows, got %d", dt.Length())
	}
	if _, ok := dt.GetColumn("region").(*columns.StringColumn); !ok {
		t.Errorf("region should be a string column")
	}
	if _, ok := dt.GetColumn("orders").(*columns.Uint32Column); !ok {
		t.Errorf("orders should be a uint32 column")
	}
	if _, ok := dt.GetColumn("revenue").(*columns.Float64Column); !ok {
		t.Errorf("revenue should be a float64 column")
	}
}

func TestImportEmptyNumericCellIsNull(t *testing.T) {
	data := `g,w
a,10
b,
c,5`

	dt, err := ImportFromReader(strings.NewReader(data), DefaultOptions())
	if err != nil {
		t.Fatalf("ImportFromReader: %v", err)
	}
	w := dt.GetColumn("w")
	if !w.IsNull(1) {
		t.Errorf("empty numeric cell should be null")
	}
	if w.IsNull(0) || w.IsNull(2) {
		t.Errorf("populated cells should not be null")
	}
	if s, _ := w.GetString(1); s != "" {
		t.Errorf("null cell renders as %q, want empty", s)
	}
}

func TestImportNegativeNumbersPickInt64(t *testing.T) {
	data := `delta
-3
7`
	dt, err := ImportFromReader(strings.NewReader(data), DefaultOptions())
	if err != nil {
		t.Fatalf("ImportFromReader: %v", err)
	}
	if _, ok := dt.GetColumn("delta").(*columns.Int64Column); !ok {
		t.Errorf("delta should be an int64 column")
	}
}

func TestImportColumnSourceOverride(t *testing.T) {
	data := `id,flag
1,yes
2,no`
	opts := DefaultOptions()
	opts.ColumnSources["id"] = CsvColumnSource{Name: "order_id", DisplayName: "Order ID", Type: CsvColumnTypeString}
	opts.ColumnSources["flag"] = CsvColumnSource{Type: CsvColumnTypeBool}

	dt, err := ImportFromReader(strings.NewReader(data), opts)
	if err != nil {
		t.Fatalf("ImportFromReader: %v", err)
	}
	col := dt.GetColumn("order_id")
	if col == nil {
		t.Fatalf("renamed column not found: %v", dt.GetColumnNames())
	}
	if _, ok := col.(*columns.StringColumn); !ok {
		t.Errorf("forced string type not honored")
	}
	if col.ColumnDef().DisplayName() != "Order ID" {
		t.Errorf("display name not applied")
	}
	flag, ok := dt.GetColumn("flag").(*columns.BoolColumn)
	if !ok {
		t.Fatalf("forced bool type not honored")
	}
	if v, _ := flag.GetValue(0); !v {
		t.Errorf("row 0 flag: got false, want true")
	}
}

func TestImportNoHeader(t *testing.T) {
	data := "a,1\nb,2\n"
	opts := DefaultOptions()
	opts.HasHeader = false

	dt, err := ImportFromReader(strings.NewReader(data), opts)
	if err != nil {
		t.Fatalf("ImportFromReader: %v", err)
	}
	if dt.GetColumn("column_1") == nil || dt.GetColumn("column_2") == nil {
		t.Errorf("generated column names missing: %v", dt.GetColumnNames())
	}
}

func TestImportHeaderOnly(t *testing.T) {
	dt, err := ImportFromReader(strings.NewReader("g,w\n"), DefaultOptions())
	if err != nil {
		t.Fatalf("ImportFromReader: %v", err)
	}
	if dt.Length() != 0 {
		t.Errorf("header-only CSV should import as an empty table, got %d rows", dt.Length())
	}
	if dt.NumColumns() != 2 {
		t.Errorf("expected 2 columns, got %v", dt.GetColumnNames())
	}
}

func TestImportEmptyInput(t *testing.T) {
	if _, err := ImportFromReader(strings.NewReader(""), DefaultOptions()); err == nil {
		t.Errorf("expected an error for empty input")
	}
}
