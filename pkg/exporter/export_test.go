/*
Copyright © 2025 Laris Authors
SPDX-License-Identifier: Apache-2.0
*/

package exporter

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/larisphp/laris/pkg/apperr"
	"github.com/larisphp/laris/pkg/report"
)

func sampleReport() *report.Report {
	r := report.New("demo-app")
	r.System = &report.SystemFacts{
		PHPVersion:     "8.3.11",
		OpcacheEnabled: true,
		MemoryLimit:    "256M",
		Extensions:     map[string]bool{"redis": true, "memcached": false},
	}
	r.Application = &report.AppFacts{Environment: "production", ConfigCached: true, RoutesCached: true}
	r.Routes = &report.RouteFacts{
		Total:            12,
		MiddlewareCounts: map[string]int{"web": 10, "auth": 4},
	}
	return r
}

func TestExportJSONRoundTrip(t *testing.T) {
	dir := t.TempDir()
	r := sampleReport()

	path, err := Export(r, FormatJSON, dir)
	require.NoError(t, err)

	base := filepath.Base(path)
	assert.True(t, strings.HasPrefix(base, "laris-performance-"), base)
	assert.True(t, strings.HasSuffix(base, ".json"), base)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var back report.Report
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, *r, back, "JSON export must round-trip the report exactly")
}

func TestExportCSVNestedValueSingleRow(t *testing.T) {
	dir := t.TempDir()
	r := sampleReport()

	path, err := Export(r, FormatCSV, dir)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".csv"))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.NotEmpty(t, records)
	assert.Equal(t, []string{"category", "metric", "value"}, records[0])

	var middlewareRows [][]string
	for _, rec := range records[1:] {
		require.Len(t, rec, 3)
		if rec[1] == "middleware_counts" {
			middlewareRows = append(middlewareRows, rec)
		}
	}
	require.Len(t, middlewareRows, 1, "a nested map must produce exactly one CSV row")
	assert.Equal(t, "routes", middlewareRows[0][0])
	assert.JSONEq(t, `{"auth":4,"web":10}`, middlewareRows[0][2])
}

func TestExportUnsupportedFormatWritesNothing(t *testing.T) {
	dir := t.TempDir()

	_, err := Export(sampleReport(), Format("xml"), dir)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeInvalidInput, apperr.CodeOf(err))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "no file may be written for an unsupported format")
}

func TestExportNilReport(t *testing.T) {
	_, err := Export(nil, FormatJSON, t.TempDir())
	assert.Error(t, err)
}

func TestExportOverwritesSameSecondCollision(t *testing.T) {
	dir := t.TempDir()
	r := sampleReport()

	first, err := Export(r, FormatJSON, dir)
	require.NoError(t, err)
	second, err := Export(r, FormatJSON, dir)
	require.NoError(t, err)

	assert.Equal(t, first, second, "same timestamp must map to the same file name")
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestParseExportFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatJSON, false},
		{"json", FormatJSON, false},
		{"csv", FormatCSV, false},
		{"yaml", "", true},
		{"table", "", true},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run("format_"+tt.in, func(t *testing.T) {
			got, err := ParseExportFormat(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatTable, false},
		{"table", FormatTable, false},
		{"json", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"csv", "", true},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run("format_"+tt.in, func(t *testing.T) {
			got, err := ParseOutputFormat(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
