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

package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/tabulate/core/columns"
	"github.com/google/tabulate/core/models"
	"github.com/google/tabulate/core/tables"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	dt := tables.NewDataTable()
	region := columns.NewStringColumn(columns.NewColumnDef("region", "Region"))
	revenue := columns.NewFloat64Column(columns.NewColumnDef("revenue", "Revenue"))
	for _, r := range []struct {
		region  string
		revenue float64
	}{
		{"west", 10},
		{"east", 20},
		{"west", 30},
	} {
		region.Append(r.region)
		revenue.Append(r.revenue)
	}
	dt.AddColumn(region)
	dt.AddColumn(revenue)

	dm := models.NewDataModel()
	dm.AddTable(&models.TableInfo{
		Name:                "orders",
		Description:         "test orders",
		Table:               dt,
		DefaultGroupColumns: []string{"region"},
	})

	srv, err := NewServer(dm)
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	return srv
}

func get(t *testing.T, mux *http.ServeMux, path string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	body, err := io.ReadAll(rec.Result().Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return rec.Code, string(body)
}

func TestLandingPage(t *testing.T) {
	mux := testServer(t).Routes()
	code, body := get(t, mux, "/")
	if code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", code, http.StatusOK)
	}
	if !strings.Contains(body, "orders") {
		t.Errorf("landing page should list the orders table")
	}
}

func TestLandingPageUnknownPath(t *testing.T) {
	mux := testServer(t).Routes()
	if code, _ := get(t, mux, "/nope"); code != http.StatusNotFound {
		t.Errorf("status: got %d, want %d", code, http.StatusNotFound)
	}
}

func TestSummaryPage(t *testing.T) {
	mux := testServer(t).Routes()
	code, body := get(t, mux, "/summary?table=orders&by=region")
	if code != http.StatusOK {
		t.Fatalf("status: got %d, want %d: %s", code, http.StatusOK, body)
	}
	for _, want := range []string{"west", "east", "proportion"} {
		if !strings.Contains(body, want) {
			t.Errorf("summary page missing %q", want)
		}
	}
}

func TestSummaryPageMissingTableParam(t *testing.T) {
	mux := testServer(t).Routes()
	code, body := get(t, mux, "/summary")
	if code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", code, http.StatusBadRequest)
	}
	if !strings.Contains(body, "table parameter is required") {
		t.Errorf("unexpected message: %q", body)
	}
}

func TestSummaryPageUnknownTable(t *testing.T) {
	mux := testServer(t).Routes()
	if code, _ := get(t, mux, "/summary?table=nope"); code != http.StatusNotFound {
		t.Errorf("status: got %d, want %d", code, http.StatusNotFound)
	}
}

func TestSummaryPageBadGroupColumn(t *testing.T) {
	mux := testServer(t).Routes()
	if code, _ := get(t, mux, "/summary?table=orders&by=nope"); code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", code, http.StatusBadRequest)
	}
}

func TestSummaryPageBadWeightColumn(t *testing.T) {
	mux := testServer(t).Routes()
	// region exists but is not numeric.
	if code, _ := get(t, mux, "/summary?table=orders&by=region&weight=region"); code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", code, http.StatusBadRequest)
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Addr() == ":0" || cfg.Addr() == "" {
		t.Errorf("unexpected address %q", cfg.Addr())
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("TABULATE_HOST", "0.0.0.0")
	t.Setenv("TABULATE_PORT", "9000")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Addr() != "0.0.0.0:9000" {
		t.Errorf("Addr: got %q, want %q", cfg.Addr(), "0.0.0.0:9000")
	}
}
