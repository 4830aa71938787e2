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

package tables

import (
	"fmt"
	"strings"
)

// ToAscii returns a string representation of the table with ASCII borders,
// one line per row, headers on top.
func (dt *DataTable) ToAscii() string {
	var sb strings.Builder

	names := dt.GetColumnNames()
	widths := dt.calculateColumnWidths(names)
	rows := dt.Length()

	writeSeparator := func() {
		for _, w := range widths {
			sb.WriteString("+")
			sb.WriteString(strings.Repeat("-", w+2))
		}
		sb.WriteString("+\n")
	}

	writeSeparator()
	for col, name := range names {
		sb.WriteString(fmt.Sprintf("| %-*s ", widths[col], dt.columns[name].ColumnDef().DisplayName()))
	}
	sb.WriteString("|\n")
	writeSeparator()

	for i := 0; i < rows; i++ {
		for col, name := range names {
			value, err := dt.columns[name].GetString(uint32(i))
			if err != nil {
				value = "?"
			}
			sb.WriteString(fmt.Sprintf("| %-*s ", widths[col], value))
		}
		sb.WriteString("|\n")
	}
	writeSeparator()

	return sb.String()
}

// calculateColumnWidths calculates the display width needed for each column
func (dt *DataTable) calculateColumnWidths(names []string) []int {
	widths := make([]int, len(names))
	for col, name := range names {
		c := dt.columns[name]
		widths[col] = len(c.ColumnDef().DisplayName())
		for i := 0; i < c.Length(); i++ {
			val, err := c.GetString(uint32(i))
			if err == nil && len(val) > widths[col] {
				widths[col] = len(val)
			}
		}
	}
	return widths
}
