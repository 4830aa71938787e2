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

package rendering

import (
	"embed"
	"io"

	"github.com/google/safehtml/template"

	"github.com/google/tabulate/core/views"
)

//go:embed templates/*
var templateFS embed.FS

// SummaryRenderer renders view models to HTML.
type SummaryRenderer struct {
	summaryTemplate *template.Template
	landingTemplate *template.Template
}

// NewSummaryRenderer creates a renderer with the embedded templates.
func NewSummaryRenderer() (*SummaryRenderer, error) {
	trustedFS := template.TrustedFSFromEmbed(templateFS)

	summaryTemplate, err := template.New("summary.html").ParseFS(trustedFS, "templates/summary.html")
	if err != nil {
		return nil, err
	}

	landingTemplate, err := template.New("landing.html").ParseFS(trustedFS, "templates/landing.html")
	if err != nil {
		return nil, err
	}

	return &SummaryRenderer{
		summaryTemplate: summaryTemplate,
		landingTemplate: landingTemplate,
	}, nil
}

// RenderSummary renders a SummaryViewModel to the provided writer.
func (r *SummaryRenderer) RenderSummary(w io.Writer, vm *views.SummaryViewModel) error {
	return r.summaryTemplate.Execute(w, vm)
}

// RenderLanding renders a LandingViewModel to the provided writer.
func (r *SummaryRenderer) RenderLanding(w io.Writer, vm *views.LandingViewModel) error {
	return r.landingTemplate.Execute(w, vm)
}
