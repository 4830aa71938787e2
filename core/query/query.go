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

// Package query parses and rebuilds summary view URLs. A Query is the
// parsed state of one request; the With* helpers clone it, apply one
// change, and render the result as a sanitized URL for links in the UI.
package query

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/google/safehtml"
)

// Query represents the parsed state of a summary view URL.
type Query struct {
	// Base path (e.g., "/summary")
	Path string

	Table        string   // The table being summarized
	GroupColumns []string // Ordered list of columns to group by
	Weight       string   // Weight column ("" = count rows)
	SortDesc     bool     // Sort groups by proportion, descending
	Limit        int      // Number of groups to display (0 = show all)
}

// NewQuery creates a Query from a URL.
func NewQuery(u *url.URL) *Query {
	state := &Query{
		Path: u.Path,
	}

	q := u.Query()
	state.Table = q.Get("table")

	byStr := q.Get("by")
	if byStr != "" {
		state.GroupColumns = strings.Split(byStr, ",")
	} else {
		state.GroupColumns = []string{}
	}

	state.Weight = q.Get("weight")

	descStr := q.Get("desc")
	state.SortDesc = descStr == "1" || descStr == "true"

	limitStr := q.Get("limit")
	if limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit >= 0 {
			state.Limit = limit
		}
	}

	return state
}

// Clone creates a deep copy of the Query.
func (s *Query) Clone() *Query {
	clone := &Query{
		Path:         s.Path,
		Table:        s.Table,
		GroupColumns: make([]string, len(s.GroupColumns)),
		Weight:       s.Weight,
		SortDesc:     s.SortDesc,
		Limit:        s.Limit,
	}
	copy(clone.GroupColumns, s.GroupColumns)
	return clone
}

// ToURL converts the Query back to a URL string.
func (s *Query) ToURL() string {
	u := &url.URL{
		Path: s.Path,
	}

	q := u.Query()

	if s.Table != "" {
		q.Set("table", s.Table)
	}
	if len(s.GroupColumns) > 0 {
		q.Set("by", strings.Join(s.GroupColumns, ","))
	}
	if s.Weight != "" {
		q.Set("weight", s.Weight)
	}
	if s.SortDesc {
		q.Set("desc", "1")
	}
	if s.Limit > 0 {
		q.Set("limit", strconv.Itoa(s.Limit))
	}

	u.RawQuery = q.Encode()
	return u.String()
}

// ToSafeURL converts the Query to a safehtml.URL.
func (s *Query) ToSafeURL() safehtml.URL {
	return safehtml.URLSanitized(s.ToURL())
}

// IsGrouped checks if a column is in the grouping list.
func (s *Query) IsGrouped(column string) bool {
	for _, col := range s.GroupColumns {
		if col == column {
			return true
		}
	}
	return false
}

// WithGroupToggled returns a URL with the grouping column toggled: removed
// if already grouped, appended to the end of the grouping order otherwise.
func (s *Query) WithGroupToggled(column string) safehtml.URL {
	newState := s.Clone()
	found := false
	newGrouped := make([]string, 0, len(s.GroupColumns))

	for _, col := range s.GroupColumns {
		if col == column {
			found = true
		} else {
			newGrouped = append(newGrouped, col)
		}
	}

	if found {
		newState.GroupColumns = newGrouped
	} else {
		newState.GroupColumns = append(newGrouped, column)
	}

	return newState.ToSafeURL()
}

// WithWeightToggled returns a URL with the weight column toggled: cleared
// if it is already the active weight, selected otherwise.
func (s *Query) WithWeightToggled(column string) safehtml.URL {
	newState := s.Clone()
	if s.Weight == column {
		newState.Weight = ""
	} else {
		newState.Weight = column
	}
	return newState.ToSafeURL()
}

// WithSortToggled returns a URL with the descending sort flipped.
func (s *Query) WithSortToggled() safehtml.URL {
	newState := s.Clone()
	newState.SortDesc = !s.SortDesc
	return newState.ToSafeURL()
}

// WithLimit returns a URL with a different group limit.
func (s *Query) WithLimit(limit int) safehtml.URL {
	newState := s.Clone()
	newState.Limit = limit
	return newState.ToSafeURL()
}

// WithTable returns a URL pointing at a different table, with the grouping
// state reset since column names rarely carry over.
func (s *Query) WithTable(table string) safehtml.URL {
	newState := s.Clone()
	newState.Table = table
	newState.GroupColumns = []string{}
	newState.Weight = ""
	return newState.ToSafeURL()
}
