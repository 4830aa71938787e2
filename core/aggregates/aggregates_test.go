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

package aggregates

import "testing"

func TestNumericAggState(t *testing.T) {
	s := NewNumericAggState()
	s.Add(3)
	s.Add(1)
	s.AddNull()
	s.Add(6)

	if s.Count != 3 {
		t.Errorf("Count: got %d, want 3", s.Count)
	}
	if s.NullCount != 1 {
		t.Errorf("NullCount: got %d, want 1", s.NullCount)
	}
	if s.Sum != 10 {
		t.Errorf("Sum: got %v, want 10", s.Sum)
	}
	if s.Min != 1 || s.Max != 6 {
		t.Errorf("Min/Max: got %v/%v", s.Min, s.Max)
	}
	if got := s.Avg(); got != 10.0/3.0 {
		t.Errorf("Avg: got %v", got)
	}
}

func TestNumericAggStateEmpty(t *testing.T) {
	s := NewNumericAggState()
	if s.Sum != 0 || s.Count != 0 {
		t.Errorf("fresh state should be zero")
	}
	if got := s.Avg(); got != 0 {
		t.Errorf("Avg of empty state: got %v, want 0", got)
	}
}

func TestNumericAggStateExtrema(t *testing.T) {
	s := NewNumericAggState()
	s.Add(-2)
	s.AddNull()
	s.Add(5)
	if s.Min != -2 || s.Max != 5 {
		t.Errorf("min/max: %v/%v", s.Min, s.Max)
	}
}
