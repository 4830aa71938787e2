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

package columns

import (
	"fmt"
	"math"
	"strconv"
)

// Float64Column stores float64 (double) values with a validity mask.
// A null cell keeps a zero placeholder in data and valid[i] == false.
type Float64Column struct {
	columnDef *ColumnDef
	data      []float64
	valid     []bool
}

// NewFloat64Column creates a new float64 column.
func NewFloat64Column(columnDef *ColumnDef) *Float64Column {
	return &Float64Column{
		columnDef: columnDef,
		data:      make([]float64, 0),
		valid:     make([]bool, 0),
	}
}

// ColumnDef returns the column definition.
func (c *Float64Column) ColumnDef() *ColumnDef {
	return c.columnDef
}

// Length returns the number of rows in the column.
func (c *Float64Column) Length() int {
	return len(c.data)
}

// GetString returns the string representation of the value at the given index.
// Returns "" for null cells, "NaN" for NaN values, "+Inf"/"-Inf" for infinities.
func (c *Float64Column) GetString(i uint32) (string, error) {
	if int(i) >= len(c.data) {
		return "", fmt.Errorf("index %d out of bounds (length: %d)", i, len(c.data))
	}
	if !c.valid[i] {
		return "", nil
	}
	return FormatFloat64(c.data[i]), nil
}

// FormatFloat64 formats a float64 value for display.
// Returns "NaN" for NaN, "+Inf"/"-Inf" for infinities.
func FormatFloat64(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	if math.IsInf(v, 1) {
		return "+Inf"
	}
	if math.IsInf(v, -1) {
		return "-Inf"
	}
	// Use 'g' format for compact representation without trailing zeros
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// GetValue returns the float64 value at the given index.
// Null cells return 0; check IsNull to distinguish.
func (c *Float64Column) GetValue(i uint32) (float64, error) {
	if int(i) >= len(c.data) {
		return 0, fmt.Errorf("index %d out of bounds (length: %d)", i, len(c.data))
	}
	return c.data[i], nil
}

// IsNull reports whether the cell at row i holds no value.
func (c *Float64Column) IsNull(i uint32) bool {
	return int(i) < len(c.valid) && !c.valid[i]
}

// Append adds a float64 value to the column.
func (c *Float64Column) Append(value float64) {
	c.data = append(c.data, value)
	c.valid = append(c.valid, true)
}

// AppendNull adds a null cell to the column.
func (c *Float64Column) AppendNull() {
	c.data = append(c.data, 0)
	c.valid = append(c.valid, false)
}

// AppendString parses and adds a float64 from a string.
// The empty string appends a null cell. Recognizes "NaN", "Inf",
// "+Inf", "-Inf" as special values.
func (c *Float64Column) AppendString(s string) error {
	if s == "" {
		c.AppendNull()
		return nil
	}
	v, err := ParseFloat64(s)
	if err != nil {
		return err
	}
	c.Append(v)
	return nil
}

// ParseFloat64 parses a string to float64.
// Recognizes "NaN", "Inf", "+Inf", "-Inf" as special values.
func ParseFloat64(s string) (float64, error) {
	// Handle special values explicitly
	switch s {
	case "NaN", "nan", "NAN":
		return math.NaN(), nil
	case "Inf", "+Inf", "inf", "+inf":
		return math.Inf(1), nil
	case "-Inf", "-inf":
		return math.Inf(-1), nil
	}
	return strconv.ParseFloat(s, 64)
}
