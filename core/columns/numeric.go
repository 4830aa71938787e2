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

// NumericReader reads a column's cells as float64 values.
// The second return value is false for null cells.
type NumericReader func(i uint32) (float64, bool, error)

// AsNumeric returns a reader converting the column's cells to float64.
// Returns nil for non-numeric column types (string, bool).
func AsNumeric(col IDataColumn) NumericReader {
	switch c := col.(type) {
	case *Float64Column:
		return func(i uint32) (float64, bool, error) {
			if c.IsNull(i) {
				return 0, false, nil
			}
			v, err := c.GetValue(i)
			return v, err == nil, err
		}
	case *Int64Column:
		return func(i uint32) (float64, bool, error) {
			if c.IsNull(i) {
				return 0, false, nil
			}
			v, err := c.GetValue(i)
			return float64(v), err == nil, err
		}
	case *Uint32Column:
		return func(i uint32) (float64, bool, error) {
			if c.IsNull(i) {
				return 0, false, nil
			}
			v, err := c.GetValue(i)
			return float64(v), err == nil, err
		}
	default:
		return nil
	}
}
