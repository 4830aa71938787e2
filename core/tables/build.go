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

	"github.com/google/tabulate/core/columns"
)

// NewColumnLike creates an empty column of the same concrete type and
// definition as the given column.
func NewColumnLike(col columns.IDataColumn) (columns.IDataColumn, error) {
	def := columns.NewColumnDef(col.ColumnDef().Name(), col.ColumnDef().DisplayName())
	switch col.(type) {
	case *columns.StringColumn:
		return columns.NewStringColumn(def), nil
	case *columns.BoolColumn:
		return columns.NewBoolColumn(def), nil
	case *columns.Int64Column:
		return columns.NewInt64Column(def), nil
	case *columns.Float64Column:
		return columns.NewFloat64Column(def), nil
	case *columns.Uint32Column:
		return columns.NewUint32Column(def), nil
	default:
		return nil, fmt.Errorf("%w: cannot clone column %q of unknown type",
			ErrTypeMismatch, col.ColumnDef().Name())
	}
}

// AppendFromRow appends the cell at row i of src to dst. The two columns
// must have the same concrete type; NewColumnLike guarantees this for its
// own output.
func AppendFromRow(dst, src columns.IDataColumn, i uint32) error {
	switch d := dst.(type) {
	case *columns.StringColumn:
		s, ok := src.(*columns.StringColumn)
		if !ok {
			return appendTypeError(dst, src)
		}
		v, err := s.GetValue(i)
		if err != nil {
			return err
		}
		d.Append(v)

	case *columns.BoolColumn:
		s, ok := src.(*columns.BoolColumn)
		if !ok {
			return appendTypeError(dst, src)
		}
		v, err := s.GetValue(i)
		if err != nil {
			return err
		}
		d.Append(v)

	case *columns.Int64Column:
		s, ok := src.(*columns.Int64Column)
		if !ok {
			return appendTypeError(dst, src)
		}
		if s.IsNull(i) {
			d.AppendNull()
			return nil
		}
		v, err := s.GetValue(i)
		if err != nil {
			return err
		}
		d.Append(v)

	case *columns.Float64Column:
		s, ok := src.(*columns.Float64Column)
		if !ok {
			return appendTypeError(dst, src)
		}
		if s.IsNull(i) {
			d.AppendNull()
			return nil
		}
		v, err := s.GetValue(i)
		if err != nil {
			return err
		}
		d.Append(v)

	case *columns.Uint32Column:
		s, ok := src.(*columns.Uint32Column)
		if !ok {
			return appendTypeError(dst, src)
		}
		if s.IsNull(i) {
			d.AppendNull()
			return nil
		}
		v, err := s.GetValue(i)
		if err != nil {
			return err
		}
		d.Append(v)

	default:
		return fmt.Errorf("%w: cannot append to column %q of unknown type",
			ErrTypeMismatch, dst.ColumnDef().Name())
	}
	return nil
}

func appendTypeError(dst, src columns.IDataColumn) error {
	return fmt.Errorf("%w: cannot append %q cells into column %q",
		ErrTypeMismatch, src.ColumnDef().Name(), dst.ColumnDef().Name())
}

// Reordered returns a new table containing the rows of dt picked in the
// given index order. Indices may select a subset of rows or repeat rows;
// the new table's columns are freshly built and share no storage with dt.
func (dt *DataTable) Reordered(indices []uint32) (*DataTable, error) {
	out := NewDataTable()
	for _, name := range dt.names {
		src := dt.columns[name]
		dst, err := NewColumnLike(src)
		if err != nil {
			return nil, err
		}
		for _, i := range indices {
			if err := AppendFromRow(dst, src, i); err != nil {
				return nil, err
			}
		}
		out.AddColumn(dst)
	}
	return out, nil
}
