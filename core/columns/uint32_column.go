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

// Uint32Column stores small non-negative integers, the default numeric
// type for identifiers and counts coming out of CSV type detection.
type Uint32Column struct {
	columnDef *ColumnDef
	data      []uint32
	valid     []bool
}

// NewUint32Column creates a new uint32 column
func NewUint32Column(columnDef *ColumnDef) *Uint32Column {
	return &Uint32Column{
		columnDef: columnDef,
		data:      make([]uint32, 0),
		valid:     make([]bool, 0),
	}
}

func (c *Uint32Column) Append(value uint32) {
	c.data = append(c.data, value)
	c.valid = append(c.valid, true)
}

// AppendNull adds a null cell to the column.
func (c *Uint32Column) AppendNull() {
	c.data = append(c.data, 0)
	c.valid = append(c.valid, false)
}

// AppendString parses and adds a uint32 from a string.
// The empty string appends a null cell.
func (c *Uint32Column) AppendString(s string) error {
	if s == "" {
		c.AppendNull()
		return nil
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return err
	}
	c.Append(uint32(v))
	return nil
}

func (c *Uint32Column) Length() int {
	return len(c.data)
}

func (c *Uint32Column) ColumnDef() *ColumnDef {
	return c.columnDef
}

// GetString returns the string representation of the value at index i.
// Null cells render as the empty string.
func (c *Uint32Column) GetString(i uint32) (string, error) {
	if i >= uint32(len(c.data)) {
		return "", fmt.Errorf("index %d out of bounds (length: %d)", i, len(c.data))
	}
	if !c.valid[i] {
		return "", nil
	}
	return strconv.FormatUint(uint64(c.data[i]), 10), nil
}

// GetValue returns the uint32 value at the given index.
// Null cells return 0; check IsNull to distinguish.
func (c *Uint32Column) GetValue(i uint32) (uint32, error) {
	if i >= uint32(len(c.data)) {
		return 0, fmt.Errorf("index %d out of bounds (length: %d)", i, len(c.data))
	}
	return c.data[i], nil
}

// IsNull reports whether the cell at row i holds no value.
func (c *Uint32Column) IsNull(i uint32) bool {
	return int(i) < len(c.valid) && !c.valid[i]
}
