/*
Copyright © 2025 Laris Authors
SPDX-License-Identifier: Apache-2.0
*/

package report

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Row is one flattened metric: the unit of CSV export and table rendering.
// Nested values (maps) are JSON-encoded into Value as a single row.
type Row struct {
	Category string
	Metric   string
	Value    string
}

// Section pairs a category name with its flattened rows, in render order.
type Section struct {
	Name string
	Rows []Row
}

// Flatten returns all rows of all present sections in fixed category order.
func (r *Report) Flatten() []Row {
	var rows []Row
	for _, s := range r.Sections() {
		rows = append(rows, s.Rows...)
	}
	return rows
}

// Sections returns the present sections in fixed render order. Each
// section's rows are produced by an explicit mapping, not reflection, so
// the CSV schema is part of the type contract.
func (r *Report) Sections() []Section {
	var sections []Section
	if r.System != nil {
		sections = append(sections, Section{CategorySystem, r.System.rows()})
	}
	if r.Application != nil {
		sections = append(sections, Section{CategoryApplication, r.Application.rows()})
	}
	if r.Database != nil {
		sections = append(sections, Section{CategoryDatabase, r.Database.rows()})
	}
	if r.Memory != nil {
		sections = append(sections, Section{CategoryMemory, r.Memory.rows()})
	}
	if r.Routes != nil {
		sections = append(sections, Section{CategoryRoutes, r.Routes.rows()})
	}
	if r.Services != nil {
		sections = append(sections, Section{CategoryServices, r.Services.rows()})
	}
	return sections
}

func (f *SystemFacts) rows() []Row {
	rows := []Row{
		{CategorySystem, "php_version", f.PHPVersion},
		{CategorySystem, "opcache_enabled", boolValue(f.OpcacheEnabled)},
		{CategorySystem, "jit_enabled", boolValue(f.JITEnabled)},
		{CategorySystem, "memory_limit", f.MemoryLimit},
		{CategorySystem, "max_execution_time", intValue(f.MaxExecutionTime)},
	}
	if len(f.Extensions) > 0 {
		rows = append(rows, Row{CategorySystem, "extensions", jsonValue(f.Extensions)})
	}
	return appendError(rows, CategorySystem, f.Error)
}

func (f *AppFacts) rows() []Row {
	rows := []Row{
		{CategoryApplication, "environment", f.Environment},
		{CategoryApplication, "debug", boolValue(f.Debug)},
		{CategoryApplication, "config_cached", boolValue(f.ConfigCached)},
		{CategoryApplication, "routes_cached", boolValue(f.RoutesCached)},
		{CategoryApplication, "events_cached", boolValue(f.EventsCached)},
		{CategoryApplication, "views_cached", boolValue(f.ViewsCached)},
		{CategoryApplication, "framework_version", f.FrameworkVersion},
		{CategoryApplication, "maintenance_mode", boolValue(f.MaintenanceMode)},
	}
	return appendError(rows, CategoryApplication, f.Error)
}

func (f *DatabaseFacts) rows() []Row {
	rows := []Row{
		{CategoryDatabase, "connection", f.Connection},
		{CategoryDatabase, "driver", f.Driver},
		{CategoryDatabase, "ran_migrations", intValue(f.RanMigrations)},
		{CategoryDatabase, "pending_migrations", intValue(f.PendingMigrations)},
	}
	return appendError(rows, CategoryDatabase, f.Error)
}

func (f *MemoryFacts) rows() []Row {
	rows := []Row{
		{CategoryMemory, "memory_limit_bytes", int64Value(f.MemoryLimitBytes)},
		{CategoryMemory, "current_usage_bytes", int64Value(f.CurrentUsageBytes)},
		{CategoryMemory, "peak_usage_bytes", int64Value(f.PeakUsageBytes)},
		{CategoryMemory, "usage_percent", strconv.FormatFloat(f.UsagePercent, 'f', 2, 64)},
	}
	return appendError(rows, CategoryMemory, f.Error)
}

func (f *RouteFacts) rows() []Row {
	rows := []Row{
		{CategoryRoutes, "total", intValue(f.Total)},
	}
	if len(f.ByMethod) > 0 {
		rows = append(rows, Row{CategoryRoutes, "by_method", jsonValue(f.ByMethod)})
	}
	if len(f.MiddlewareCounts) > 0 {
		rows = append(rows, Row{CategoryRoutes, "middleware_counts", jsonValue(f.MiddlewareCounts)})
	}
	rows = append(rows, Row{CategoryRoutes, "duplicate_uris", intValue(f.DuplicateURIs)})
	return appendError(rows, CategoryRoutes, f.Error)
}

func (f *ServiceFacts) rows() []Row {
	var rows []Row
	if len(f.Units) > 0 {
		rows = append(rows, Row{CategoryServices, "units", jsonValue(f.Units)})
	}
	return appendError(rows, CategoryServices, f.Error)
}

func appendError(rows []Row, category, msg string) []Row {
	if msg == "" {
		return rows
	}
	return append(rows, Row{category, "error", msg})
}

func boolValue(v bool) string {
	return strconv.FormatBool(v)
}

func intValue(v int) string {
	return strconv.Itoa(v)
}

func int64Value(v int64) string {
	return strconv.FormatInt(v, 10)
}

// jsonValue serializes a nested value to its JSON string form.
// encoding/json sorts map keys, so output is deterministic.
func jsonValue(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
