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

// Package server exposes the registered tables over HTTP: a landing page
// listing the tables and a summary page with grouped proportions.
package server

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"

	"github.com/caarlos0/env/v11"

	"github.com/google/tabulate/core/models"
	"github.com/google/tabulate/core/query"
	"github.com/google/tabulate/core/rendering"
	"github.com/google/tabulate/core/tables"
	"github.com/google/tabulate/core/views"
)

// Config holds the server's environment-driven settings.
type Config struct {
	Host string `env:"TABULATE_HOST" envDefault:"127.0.0.1"`
	Port int    `env:"TABULATE_PORT" envDefault:"8097"`
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Addr returns the listen address.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Server handles the landing and summary pages for a data model.
type Server struct {
	dataModel *models.DataModel
	renderer  *rendering.SummaryRenderer
}

// NewServer creates a new server serving the given data model.
func NewServer(dataModel *models.DataModel) (*Server, error) {
	renderer, err := rendering.NewSummaryRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	return &Server{
		dataModel: dataModel,
		renderer:  renderer,
	}, nil
}

// HandlerResult reports a request that could not be served.
type HandlerResult struct {
	Error      error
	StatusCode int
	Message    string
}

// HandleSummaryRequest processes a summary request and writes the response.
// Returns an error result if the request is invalid, nil on success.
func (s *Server) HandleSummaryRequest(w io.Writer, requestURL *url.URL, setHeader func(key, value string)) *HandlerResult {
	q := query.NewQuery(requestURL)

	if q.Table == "" {
		return &HandlerResult{StatusCode: http.StatusBadRequest, Message: "table parameter is required"}
	}
	if s.dataModel.GetTable(q.Table) == nil {
		return &HandlerResult{StatusCode: http.StatusNotFound, Message: fmt.Sprintf("table %q not found", q.Table)}
	}

	vm, err := views.BuildSummaryViewModel(s.dataModel, q)
	if err != nil {
		// Bad group or weight columns are caller mistakes, not server
		// failures.
		if errors.Is(err, tables.ErrColumnNotFound) || errors.Is(err, tables.ErrTypeMismatch) {
			return &HandlerResult{StatusCode: http.StatusBadRequest, Message: err.Error()}
		}
		return &HandlerResult{Error: err}
	}

	setHeader("Content-Type", "text/html; charset=utf-8")
	if err := s.renderer.RenderSummary(w, vm); err != nil {
		log.Printf("Template rendering error: %v", err)
		return &HandlerResult{Error: err}
	}
	return nil
}

// HandleLandingRequest processes the landing page request.
func (s *Server) HandleLandingRequest(w io.Writer, setHeader func(key, value string)) error {
	setHeader("Content-Type", "text/html; charset=utf-8")
	vm := views.BuildLandingViewModel(s.dataModel)
	if err := s.renderer.RenderLanding(w, vm); err != nil {
		log.Printf("Landing page rendering error: %v", err)
		return err
	}
	return nil
}

// Routes returns the HTTP mux for the server.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/summary", func(w http.ResponseWriter, r *http.Request) {
		result := s.HandleSummaryRequest(w, r.URL, w.Header().Set)
		if result == nil {
			return
		}
		if result.Error != nil {
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		http.Error(w, result.Message, result.StatusCode)
	})

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		if err := s.HandleLandingRequest(w, w.Header().Set); err != nil {
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
	})

	return mux
}

// ListenAndServe starts the HTTP server on the configured address.
func (s *Server) ListenAndServe(cfg Config) error {
	log.Printf("Listening on http://%s", cfg.Addr())
	return http.ListenAndServe(cfg.Addr(), s.Routes())
}
