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
	"strconv"
)

// Int64Column stores int64 values with a validity mask.
type Int64Column struct {
	columnDef *ColumnDef
	data      []int64
	valid     []bool
}

// NewInt64Column creates a new int64 column
func NewInt64Column(columnDef *ColumnDef) *Int64Column {
	return &Int64Column{
		columnDef: columnDef,
		data:      make([]int64, 0),
		valid:     make([]bool, 0),
	}
}

func (c *Int64Column) Append(value int64) {
	c.data = append(c.data, value)
	c.valid = append(c.valid, true)
}

// AppendNull adds a null cell to the column.
func (c *Int64Column) AppendNull() {
	c.data = append(c.data, 0)
	c.valid = append(c.valid, false)
}

// AppendString parses and adds an int64 from a string.
// The empty string appends a null cell.
func (c *Int64Column) AppendString(s string) error {
	if s == "" {
		c.AppendNull()
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return err
	}
	c.Append(v)
	return nil
}

func (c *Int64Column) Length() int {
	return len(c.data)
}

func (c *Int64Column) ColumnDef() *ColumnDef {
	return c.columnDef
}

// GetString returns the string representation of the value at index i.
// Null cells render as the empty string.
func (c *Int64Column) GetString(i uint32) (string, error) {
	if i >= uint32(len(c.data)) {
		return "", fmt.Errorf("index %d out of bounds (length: %d)", i, len(c.data))
	}
	if !c.valid[i] {
		return "", nil
	}
	return strconv.FormatInt(c.data[i], 10), nil
}

// GetValue returns the int64 value at the given index.
// Null cells return 0; check IsNull to distinguish.
func (c *Int64Column) GetValue(i uint32) (int64, error) {
	if i >= uint32(len(c.data)) {
		return 0, fmt.Errorf("index %d out of bounds (length: %d)", i, len(c.data))
	}
	return c.data[i], nil
}

// IsNull reports whether the cell at row i holds no value.
func (c *Int64Column) IsNull(i uint32) bool {
	return int(i) < len(c.valid) && !c.valid[i]
}
