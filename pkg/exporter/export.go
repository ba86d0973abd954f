/*
Copyright © 2025 Laris Authors
SPDX-License-Identifier: Apache-2.0
*/

package exporter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/larisphp/laris/pkg/apperr"
	"github.com/larisphp/laris/pkg/report"
)

// filenamePrefix is the fixed prefix of exported report files.
const filenamePrefix = "laris-performance"

// timestampLayout produces laris-performance-2025-08-26-14-03-05.json.
const timestampLayout = "2006-01-02-15-04-05"

// Export writes the report to a timestamped file in dir (the working
// directory when dir is empty) and returns the written path. A name
// collision within the same second overwrites the previous file.
// The format must be a valid export format; no file is created otherwise.
func Export(r *report.Report, format Format, dir string) (string, error) {
	if r == nil {
		return "", apperr.New(apperr.CodeInvalidInput, "report cannot be nil")
	}

	var ext string
	switch format {
	case FormatJSON:
		ext = "json"
	case FormatCSV:
		ext = "csv"
	default:
		return "", apperr.Newf(apperr.CodeInvalidInput, "unsupported export format %q (supported: json, csv)", format)
	}

	name := fmt.Sprintf("%s-%s.%s", filenamePrefix, r.GeneratedAt.Format(timestampLayout), ext)
	path := filepath.Join(dir, name)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}
	defer file.Close()

	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(file)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(r); err != nil {
			return "", fmt.Errorf("failed to serialize report to JSON: %w", err)
		}
	case FormatCSV:
		if err := writeCSV(file, r); err != nil {
			return "", err
		}
	}

	return path, nil
}

// writeCSV emits one row per flat metric. Nested values arrive from
// report.Flatten already JSON-encoded into the value column.
func writeCSV(file *os.File, r *report.Report) error {
	w := csv.NewWriter(file)

	if err := w.Write([]string{"category", "metric", "value"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range r.Flatten() {
		if err := w.Write([]string{row.Category, row.Metric, row.Value}); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}
