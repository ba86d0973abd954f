/*
Copyright © 2025 Laris Authors
SPDX-License-Identifier: Apache-2.0
*/

package exporter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/larisphp/laris/pkg/advisor"
	"github.com/larisphp/laris/pkg/report"
)

// Writer renders a report and its recommendations to a stream in the
// configured stdout format.
type Writer struct {
	format Format
	output io.Writer
}

// NewWriter creates a Writer for the given stdout format.
// If output is nil, os.Stdout is used.
func NewWriter(format Format, output io.Writer) *Writer {
	if output == nil {
		output = os.Stdout
	}
	return &Writer{format: format, output: output}
}

// reportView is the combined serialization payload for json/yaml output.
type reportView struct {
	Report          *report.Report           `json:"report" yaml:"report"`
	Recommendations []advisor.Recommendation `json:"recommendations" yaml:"recommendations"`
}

// Render writes the report and recommendations in the configured format.
func (w *Writer) Render(r *report.Report, recs []advisor.Recommendation) error {
	switch w.format {
	case FormatJSON:
		encoder := json.NewEncoder(w.output)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(reportView{Report: r, Recommendations: recs}); err != nil {
			return fmt.Errorf("failed to serialize to JSON: %w", err)
		}
		return nil
	case FormatYAML:
		encoder := yaml.NewEncoder(w.output)
		encoder.SetIndent(2)
		if err := encoder.Encode(reportView{Report: r, Recommendations: recs}); err != nil {
			return fmt.Errorf("failed to serialize to YAML: %w", err)
		}
		return encoder.Close()
	case FormatTable:
		return w.renderTables(r, recs)
	default:
		return fmt.Errorf("unsupported output format: %s", w.format)
	}
}

func (w *Writer) renderTables(r *report.Report, recs []advisor.Recommendation) error {
	for _, section := range r.Sections() {
		fmt.Fprintf(w.output, "\n%s\n", section.Name)

		tw := tabwriter.NewWriter(w.output, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "METRIC\tVALUE")
		fmt.Fprintln(tw, "------\t-----")
		for _, row := range section.Rows {
			fmt.Fprintf(tw, "%s\t%s\n", row.Metric, row.Value)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	fmt.Fprintln(w.output)
	if len(recs) == 0 {
		fmt.Fprintln(w.output, "No issues found.")
		return nil
	}

	tw := tabwriter.NewWriter(w.output, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SEVERITY\tCATEGORY\tMESSAGE\tACTION")
	fmt.Fprintln(tw, "--------\t--------\t-------\t------")
	for _, rec := range recs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", rec.Severity, rec.Category, rec.Message, rec.Action)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	counts := advisor.CountBySeverity(recs)
	fmt.Fprintf(w.output, "\n%d critical, %d warning, %d info\n",
		counts[advisor.SeverityCritical],
		counts[advisor.SeverityWarning],
		counts[advisor.SeverityInfo])
	return nil
}
