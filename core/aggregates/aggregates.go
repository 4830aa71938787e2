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

// Package aggregates provides aggregate state for numeric columns.
// State accumulates one value at a time; null cells are recorded but
// contribute nothing to the sum or extrema.
package aggregates

import (
	"math"
)

// NumericAggState stores intermediate state for numeric aggregates.
// It can derive sum, avg, min, max, and counts.
type NumericAggState struct {
	Count     int64   // Number of non-null values
	NullCount int64   // Number of null cells seen
	Sum       float64 // Sum of non-null values
	Min       float64 // Minimum non-null value
	Max       float64 // Maximum non-null value
}

// NewNumericAggState creates a new empty numeric aggregate state.
func NewNumericAggState() *NumericAggState {
	return &NumericAggState{
		Min: math.MaxFloat64,
		Max: -math.MaxFloat64,
	}
}

// Add adds a single value to the aggregate state.
func (s *NumericAggState) Add(value float64) {
	s.Count++
	s.Sum += value
	if value < s.Min {
		s.Min = value
	}
	if value > s.Max {
		s.Max = value
	}
}

// AddNull records a null cell. Nulls count toward NullCount only; the sum
// and extrema are untouched.
func (s *NumericAggState) AddNull() {
	s.NullCount++
}

// Avg returns the average (mean) of the non-null values.
func (s *NumericAggState) Avg() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.Sum / float64(s.Count)
}
