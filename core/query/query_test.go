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

package query

import (
	"net/url"
	"strings"
	"testing"
)

func parseURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("url.Parse(%q): %v", raw, err)
	}
	return u
}

func TestNewQuery(t *testing.T) {
	q := NewQuery(parseURL(t, "/summary?table=orders&by=region,status&weight=revenue&desc=1&limit=10"))
	if q.Table != "orders" {
		t.Errorf("Table: got %q", q.Table)
	}
	if len(q.GroupColumns) != 2 || q.GroupColumns[0] != "region" || q.GroupColumns[1] != "status" {
		t.Errorf("GroupColumns: got %v", q.GroupColumns)
	}
	if q.Weight != "revenue" {
		t.Errorf("Weight: got %q", q.Weight)
	}
	if !q.SortDesc {
		t.Errorf("SortDesc: got false, want true")
	}
	if q.Limit != 10 {
		t.Errorf("Limit: got %d, want 10", q.Limit)
	}
}

func TestNewQueryDefaults(t *testing.T) {
	q := NewQuery(parseURL(t, "/summary?table=orders"))
	if len(q.GroupColumns) != 0 {
		t.Errorf("GroupColumns: got %v, want empty", q.GroupColumns)
	}
	if q.Weight != "" || q.SortDesc || q.Limit != 0 {
		t.Errorf("unexpected defaults: %+v", q)
	}
}

func TestRoundTrip(t *testing.T) {
	raw := "/summary?by=region%2Cstatus&desc=1&table=orders&weight=revenue"
	q := NewQuery(parseURL(t, raw))
	if got := q.ToURL(); got != raw {
		t.Errorf("round trip: got %q, want %q", got, raw)
	}
}

func TestWithGroupToggled(t *testing.T) {
	q := NewQuery(parseURL(t, "/summary?table=orders&by=region"))

	added := q.WithGroupToggled("status").String()
	if !strings.Contains(added, "region%2Cstatus") {
		t.Errorf("toggle on should append: %q", added)
	}

	removed := q.WithGroupToggled("region").String()
	if strings.Contains(removed, "by=") {
		t.Errorf("toggle off should remove the by parameter: %q", removed)
	}

	// The receiver is unchanged.
	if len(q.GroupColumns) != 1 || q.GroupColumns[0] != "region" {
		t.Errorf("receiver mutated: %v", q.GroupColumns)
	}
}

func TestWithWeightToggled(t *testing.T) {
	q := NewQuery(parseURL(t, "/summary?table=orders&weight=revenue"))

	cleared := q.WithWeightToggled("revenue").String()
	if strings.Contains(cleared, "weight=") {
		t.Errorf("toggling the active weight should clear it: %q", cleared)
	}

	switched := q.WithWeightToggled("qty").String()
	if !strings.Contains(switched, "weight=qty") {
		t.Errorf("toggling another weight should select it: %q", switched)
	}
}

func TestWithSortToggled(t *testing.T) {
	q := NewQuery(parseURL(t, "/summary?table=orders"))
	on := q.WithSortToggled().String()
	if !strings.Contains(on, "desc=1") {
		t.Errorf("sort toggle on: %q", on)
	}
	q.SortDesc = true
	off := q.WithSortToggled().String()
	if strings.Contains(off, "desc=") {
		t.Errorf("sort toggle off: %q", off)
	}
}

func TestWithTableResetsGrouping(t *testing.T) {
	q := NewQuery(parseURL(t, "/summary?table=orders&by=region&weight=revenue"))
	switched := q.WithTable("inventory").String()
	if !strings.Contains(switched, "table=inventory") {
		t.Errorf("table not switched: %q", switched)
	}
	if strings.Contains(switched, "by=") || strings.Contains(switched, "weight=") {
		t.Errorf("grouping state should reset on table switch: %q", switched)
	}
}
