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

// Package columns provides the typed column storage that tables are built
// from. Numeric columns carry a validity mask so individual cells can be
// null; null cells are skipped by weighted aggregation but the row still
// belongs to its group.
package columns

// ColumnDef describes a column independently of its storage.
type ColumnDef struct {
	name        string // must not contain any of the following characters: & = : ,
	displayName string
}

// NewColumnDef creates a new ColumnDef with the given name and display name
func NewColumnDef(name, displayName string) *ColumnDef {
	return &ColumnDef{
		name:        name,
		displayName: displayName,
	}
}

func (cd *ColumnDef) Name() string {
	return cd.name
}

func (cd *ColumnDef) DisplayName() string {
	return cd.displayName
}

// IDataColumn is the interface shared by all column implementations.
type IDataColumn interface {
	ColumnDef() *ColumnDef
	Length() int
	// GetString returns the display representation of the value at row i.
	// Null cells render as the empty string.
	GetString(i uint32) (string, error)
	// IsNull reports whether the cell at row i holds no value.
	IsNull(i uint32) bool
}
