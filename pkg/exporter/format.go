/*
Copyright © 2025 Laris Authors
SPDX-License-Identifier: Apache-2.0
*/

package exporter

import (
	"github.com/larisphp/laris/pkg/apperr"
)

// Format represents an output format.
type Format string

const (
	// FormatJSON is pretty-printed JSON. Valid for export and stdout.
	FormatJSON Format = "json"
	// FormatCSV is flattened category,metric,value rows. Export only.
	FormatCSV Format = "csv"
	// FormatYAML is YAML output. Stdout only.
	FormatYAML Format = "yaml"
	// FormatTable is human-readable tabular output. Stdout only.
	FormatTable Format = "table"
)

// ExportFormats lists the formats valid for file export.
func ExportFormats() []string {
	return []string{string(FormatJSON), string(FormatCSV)}
}

// OutputFormats lists the formats valid for stdout rendering.
func OutputFormats() []string {
	return []string{string(FormatTable), string(FormatJSON), string(FormatYAML)}
}

// ParseExportFormat validates an export format selector.
// An empty selector defaults to JSON.
func ParseExportFormat(s string) (Format, error) {
	switch Format(s) {
	case "":
		return FormatJSON, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatCSV:
		return FormatCSV, nil
	default:
		return "", apperr.Newf(apperr.CodeInvalidInput, "unsupported export format %q (supported: json, csv)", s)
	}
}

// ParseOutputFormat validates a stdout format selector.
// An empty selector defaults to table.
func ParseOutputFormat(s string) (Format, error) {
	switch Format(s) {
	case "":
		return FormatTable, nil
	case FormatTable, FormatJSON, FormatYAML:
		return Format(s), nil
	default:
		return "", apperr.Newf(apperr.CodeInvalidInput, "unsupported output format %q (supported: table, json, yaml)", s)
	}
}
