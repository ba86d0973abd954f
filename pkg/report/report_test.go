/*
Copyright © 2025 Laris Authors
SPDX-License-Identifier: Apache-2.0
*/

package report

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	r := New("demo-app")

	assert.Equal(t, Kind, r.Kind)
	assert.Equal(t, APIVersion, r.APIVersion)
	assert.NotEmpty(t, r.ID)
	assert.Equal(t, "demo-app", r.Project)
	assert.Zero(t, r.GeneratedAt.Nanosecond(), "timestamp must be second-precision for exact round-trips")
}

func TestJSONRoundTrip(t *testing.T) {
	r := New("demo-app")
	r.System = &SystemFacts{
		PHPVersion:       "8.3.11",
		OpcacheEnabled:   true,
		MemoryLimit:      "256M",
		MaxExecutionTime: 30,
		Extensions:       map[string]bool{"redis": true, "memcached": false},
	}
	r.Application = &AppFacts{Environment: "production", ConfigCached: true}
	r.Routes = &RouteFacts{
		Total:            42,
		ByMethod:         map[string]int{"GET": 30, "POST": 12},
		MiddlewareCounts: map[string]int{"web": 40, "auth": 12},
	}
	r.Services = &ServiceFacts{
		Units: map[string]UnitState{
			"php-fpm.service": {ActiveState: "active", SubState: "running", UnitFileState: "enabled"},
		},
	}

	data, err := json.MarshalIndent(r, "", "  ")
	require.NoError(t, err)

	var back Report
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, *r, back)
}

func TestSectionsOrderAndPresence(t *testing.T) {
	r := New("demo")
	r.Memory = &MemoryFacts{MemoryLimitBytes: 268435456}
	r.System = &SystemFacts{PHPVersion: "8.3.11"}

	sections := r.Sections()
	require.Len(t, sections, 2)
	assert.Equal(t, CategorySystem, sections[0].Name, "system renders before memory regardless of assignment order")
	assert.Equal(t, CategoryMemory, sections[1].Name)
}

func TestFlattenNestedValueSingleRow(t *testing.T) {
	r := New("demo")
	r.Routes = &RouteFacts{
		Total:            3,
		MiddlewareCounts: map[string]int{"auth": 1, "web": 3},
	}

	rows := r.Flatten()

	var middlewareRows []Row
	for _, row := range rows {
		if row.Metric == "middleware_counts" {
			middlewareRows = append(middlewareRows, row)
		}
	}
	require.Len(t, middlewareRows, 1, "nested map must flatten to exactly one row")
	assert.Equal(t, CategoryRoutes, middlewareRows[0].Category)
	assert.JSONEq(t, `{"auth":1,"web":3}`, middlewareRows[0].Value)
}

func TestSectionErrorRow(t *testing.T) {
	r := New("demo")
	r.Database = &DatabaseFacts{Error: "[TIMEOUT] migrate:status exceeded deadline"}

	rows := r.Flatten()
	var found bool
	for _, row := range rows {
		if row.Category == CategoryDatabase && row.Metric == "error" {
			found = true
			assert.Contains(t, row.Value, "TIMEOUT")
		}
	}
	assert.True(t, found, "failed section must surface an error row")
}

func TestBooleanAndNumericFormatting(t *testing.T) {
	f := &AppFacts{Environment: "local", Debug: true}
	rows := f.rows()

	byMetric := map[string]string{}
	for _, row := range rows {
		byMetric[row.Metric] = row.Value
	}
	assert.Equal(t, "true", byMetric["debug"])
	assert.Equal(t, "false", byMetric["config_cached"])

	m := &MemoryFacts{MemoryLimitBytes: 134217728, UsagePercent: 12.5}
	byMetric = map[string]string{}
	for _, row := range m.rows() {
		byMetric[row.Metric] = row.Value
	}
	assert.Equal(t, "134217728", byMetric["memory_limit_bytes"])
	assert.Equal(t, "12.50", byMetric["usage_percent"])
}
