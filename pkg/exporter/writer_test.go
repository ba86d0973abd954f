/*
Copyright © 2025 Laris Authors
SPDX-License-Identifier: Apache-2.0
*/

package exporter

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/larisphp/laris/pkg/advisor"
)

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	recs := []advisor.Recommendation{
		{
			Severity: advisor.SeverityCritical,
			Category: advisor.CategoryPerformance,
			Message:  "OPcache is disabled",
			Action:   "Enable OPcache",
		},
	}

	err := NewWriter(FormatTable, &buf).Render(sampleReport(), recs)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "system")
	assert.Contains(t, out, "php_version")
	assert.Contains(t, out, "8.3.11")
	assert.Contains(t, out, "OPcache is disabled")
	assert.Contains(t, out, "1 critical, 0 warning, 0 info")
}

func TestRenderTableNoIssues(t *testing.T) {
	var buf bytes.Buffer

	err := NewWriter(FormatTable, &buf).Render(sampleReport(), nil)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No issues found.")
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	r := sampleReport()

	err := NewWriter(FormatJSON, &buf).Render(r, nil)
	require.NoError(t, err)

	var view struct {
		Report struct {
			ID string `json:"id"`
		} `json:"report"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &view))
	assert.Equal(t, r.ID, view.Report.ID)
}

func TestRenderYAML(t *testing.T) {
	var buf bytes.Buffer

	err := NewWriter(FormatYAML, &buf).Render(sampleReport(), nil)
	require.NoError(t, err)

	var view map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &view))
	assert.Contains(t, view, "report")
}

func TestRenderUnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := NewWriter(Format("csv"), &buf).Render(sampleReport(), nil)
	assert.Error(t, err)
}
