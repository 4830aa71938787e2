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

// Package csvimport loads CSV data into tables. Column types are detected
// from a sample of the data and can be overridden per column. Empty cells
// in numeric columns become nulls, so a subsequent weighted tally skips
// them instead of counting them as zero.
package csvimport

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/tabulate/core/columns"
	"github.com/google/tabulate/core/tables"
)

// CsvColumnType specifies the data type for a column
type CsvColumnType int

const (
	// CsvColumnTypeAuto auto-detects type from data (default)
	CsvColumnTypeAuto CsvColumnType = iota
	// CsvColumnTypeString forces string type
	CsvColumnTypeString
	// CsvColumnTypeUint32 forces uint32 type
	CsvColumnTypeUint32
	// CsvColumnTypeBool forces bool type
	CsvColumnTypeBool
	// CsvColumnTypeFloat64 forces float64 type
	CsvColumnTypeFloat64
	// CsvColumnTypeInt64 forces int64 type
	CsvColumnTypeInt64
)

// CsvColumnSource defines source metadata for how a column is imported
type CsvColumnSource struct {
	// Name is the column name (defaults to header name if not specified)
	Name string
	// DisplayName is the display name for the column
	DisplayName string
	// Type specifies the data type for this column (default: auto-detect)
	Type CsvColumnType
}

// ImportOptions configures CSV import behavior
type ImportOptions struct {
	// HasHeader indicates whether the first row contains column headers
	HasHeader bool
	// Delimiter is the field delimiter (defaults to comma)
	Delimiter rune
	// ColumnSources provides configuration for specific columns by header name
	ColumnSources map[string]CsvColumnSource
	// SampleSize is the number of rows to sample for type detection (default: 100)
	SampleSize int
}

// DefaultOptions returns default import options
func DefaultOptions() ImportOptions {
	return ImportOptions{
		HasHeader:     true,
		Delimiter:     ',',
		ColumnSources: make(map[string]CsvColumnSource),
		SampleSize:    100,
	}
}

// ImportFromFile imports a CSV file and returns a DataTable
func ImportFromFile(filepath string, options ImportOptions) (*tables.DataTable, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ImportFromReader(file, options)
}

// ImportFromReader imports CSV data from an io.Reader and returns a DataTable
func ImportFromReader(reader io.Reader, options ImportOptions) (*tables.DataTable, error) {
	csvReader := csv.NewReader(reader)
	if options.Delimiter != 0 {
		csvReader.Comma = options.Delimiter
	}

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("CSV file is empty")
	}

	var headers []string
	var dataRows [][]string

	if options.HasHeader {
		headers = records[0]
		dataRows = records[1:]
	} else {
		// Generate column names if no header
		numCols := len(records[0])
		headers = make([]string, numCols)
		for i := 0; i < numCols; i++ {
			headers[i] = fmt.Sprintf("column_%d", i+1)
		}
		dataRows = records
	}

	sampleSize := options.SampleSize
	if sampleSize <= 0 {
		sampleSize = 100
	}
	columnTypes := detectColumnTypes(headers, dataRows, sampleSize, options.ColumnSources)

	table := tables.NewDataTable()

	stringCols := make(map[int]*columns.StringColumn)
	uint32Cols := make(map[int]*columns.Uint32Column)
	boolCols := make(map[int]*columns.BoolColumn)
	float64Cols := make(map[int]*columns.Float64Column)
	int64Cols := make(map[int]*columns.Int64Column)

	for i, header := range headers {
		config := getColumnSource(header, options.ColumnSources)
		name := header
		displayName := header

		if config.Name != "" {
			name = config.Name
		}
		if config.DisplayName != "" {
			displayName = config.DisplayName
		}

		colDef := columns.NewColumnDef(name, displayName)

		switch columnTypes[i] {
		case CsvColumnTypeBool:
			col := columns.NewBoolColumn(colDef)
			boolCols[i] = col
			table.AddColumn(col)
		case CsvColumnTypeFloat64:
			col := columns.NewFloat64Column(colDef)
			float64Cols[i] = col
			table.AddColumn(col)
		case CsvColumnTypeInt64:
			col := columns.NewInt64Column(colDef)
			int64Cols[i] = col
			table.AddColumn(col)
		case CsvColumnTypeUint32:
			col := columns.NewUint32Column(colDef)
			uint32Cols[i] = col
			table.AddColumn(col)
		default:
			col := columns.NewStringColumn(colDef)
			stringCols[i] = col
			table.AddColumn(col)
		}
	}

	for _, row := range dataRows {
		for i := range headers {
			value := ""
			if i < len(row) {
				value = strings.TrimSpace(row[i])
			}

			if col, ok := stringCols[i]; ok {
				col.Append(value)
			} else if col, ok := uint32Cols[i]; ok {
				// Empty cells become nulls; unparseable cells too.
				if err := col.AppendString(value); err != nil {
					col.AppendNull()
				}
			} else if col, ok := float64Cols[i]; ok {
				if err := col.AppendString(value); err != nil {
					col.AppendNull()
				}
			} else if col, ok := int64Cols[i]; ok {
				if err := col.AppendString(value); err != nil {
					col.AppendNull()
				}
			} else if col, ok := boolCols[i]; ok {
				b, err := columns.ParseBool(value)
				if err != nil {
					// Fallback: treat as false if parsing fails
					col.Append(false)
				} else {
					col.Append(b)
				}
			}
		}
	}

	return table, nil
}

// detectColumnTypes samples data to determine each column's type. The
// narrowest numeric type that fits every sampled non-empty value wins:
// uint32, then int64, then float64; anything else is a string column.
func detectColumnTypes(headers []string, dataRows [][]string, sampleSize int, configs map[string]CsvColumnSource) []CsvColumnType {
	types := make([]CsvColumnType, len(headers))

	rowsToSample := sampleSize
	if rowsToSample > len(dataRows) {
		rowsToSample = len(dataRows)
	}

	for i, header := range headers {
		if config, ok := configs[header]; ok && config.Type != CsvColumnTypeAuto {
			types[i] = config.Type
			continue
		}

		isUint32 := true
		isInt64 := true
		isFloat64 := true
		hasNonEmpty := false

		for j := 0; j < rowsToSample; j++ {
			if i >= len(dataRows[j]) {
				continue
			}

			value := strings.TrimSpace(dataRows[j][i])
			if value == "" {
				continue
			}

			hasNonEmpty = true

			if isUint32 {
				if _, err := strconv.ParseUint(value, 10, 32); err != nil {
					isUint32 = false
				}
			}
			if isInt64 && !isUint32 {
				if _, err := strconv.ParseInt(value, 10, 64); err != nil {
					isInt64 = false
				}
			}
			if isFloat64 && !isInt64 && !isUint32 {
				if _, err := strconv.ParseFloat(value, 64); err != nil {
					isFloat64 = false
					break
				}
			}
		}

		switch {
		case !hasNonEmpty:
			types[i] = CsvColumnTypeString
		case isUint32:
			types[i] = CsvColumnTypeUint32
		case isInt64:
			types[i] = CsvColumnTypeInt64
		case isFloat64:
			types[i] = CsvColumnTypeFloat64
		default:
			types[i] = CsvColumnTypeString
		}
	}

	return types
}

// getColumnSource returns the config for a column, or an empty config if not specified
func getColumnSource(header string, configs map[string]CsvColumnSource) CsvColumnSource {
	if configs == nil {
		return CsvColumnSource{}
	}
	if config, ok := configs[header]; ok {
		return config
	}
	return CsvColumnSource{}
}
