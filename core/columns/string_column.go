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
)

// StringColumn stores string data directly. Strings have no null
// representation; an empty cell is the empty string.
type StringColumn struct {
	columnDef *ColumnDef
	data      []string
}

// NewStringColumn creates a new string column
func NewStringColumn(columnDef *ColumnDef) *StringColumn {
	return &StringColumn{
		columnDef: columnDef,
		data:      make([]string, 0),
	}
}

func (c *StringColumn) Append(value string) {
	c.data = append(c.data, value)
}

func (c *StringColumn) Length() int {
	return len(c.data)
}

func (c *StringColumn) ColumnDef() *ColumnDef {
	return c.columnDef
}

func (c *StringColumn) GetValue(i uint32) (string, error) {
	if i >= uint32(len(c.data)) {
		return "", fmt.Errorf("index %d out of bounds (length: %d)", i, len(c.data))
	}
	return c.data[i], nil
}

// GetString returns the string value at index i
func (c *StringColumn) GetString(i uint32) (string, error) {
	return c.GetValue(i)
}

// IsNull always reports false; string columns have no null cells.
func (c *StringColumn) IsNull(i uint32) bool {
	return false
}
