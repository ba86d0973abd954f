/*
Copyright © 2025 Laris Authors
SPDX-License-Identifier: Apache-2.0
*/

package report

import (
	"time"

	"github.com/google/uuid"
)

const (
	// Kind identifies the report resource type.
	Kind = "PerformanceReport"

	// APIVersion identifies the report schema version.
	APIVersion = "laris.dev/v1"
)

// Category names used for rendering and CSV rows.
const (
	CategorySystem      = "system"
	CategoryApplication = "application"
	CategoryDatabase    = "database"
	CategoryMemory      = "memory"
	CategoryRoutes      = "routes"
	CategoryServices    = "services"
)

// Report is the collected fact bag for one run. Sections are present only
// when their collector ran. The report is populated once during collection
// and treated as immutable afterwards.
type Report struct {
	Kind        string    `json:"kind" yaml:"kind"`
	APIVersion  string    `json:"apiVersion" yaml:"apiVersion"`
	ID          string    `json:"id" yaml:"id"`
	GeneratedAt time.Time `json:"generatedAt" yaml:"generatedAt"`
	Project     string    `json:"project,omitempty" yaml:"project,omitempty"`

	System      *SystemFacts   `json:"system,omitempty" yaml:"system,omitempty"`
	Application *AppFacts      `json:"application,omitempty" yaml:"application,omitempty"`
	Database    *DatabaseFacts `json:"database,omitempty" yaml:"database,omitempty"`
	Memory      *MemoryFacts   `json:"memory,omitempty" yaml:"memory,omitempty"`
	Routes      *RouteFacts    `json:"routes,omitempty" yaml:"routes,omitempty"`
	Services    *ServiceFacts  `json:"services,omitempty" yaml:"services,omitempty"`
}

// New creates an empty report with identity and timestamp set.
// GeneratedAt is truncated to whole seconds in UTC so an exported report
// round-trips exactly through JSON.
func New(project string) *Report {
	return &Report{
		Kind:        Kind,
		APIVersion:  APIVersion,
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC().Truncate(time.Second),
		Project:     project,
	}
}

// SystemFacts describes the PHP runtime.
type SystemFacts struct {
	PHPVersion       string          `json:"phpVersion,omitempty" yaml:"phpVersion,omitempty"`
	OpcacheEnabled   bool            `json:"opcacheEnabled" yaml:"opcacheEnabled"`
	JITEnabled       bool            `json:"jitEnabled" yaml:"jitEnabled"`
	MemoryLimit      string          `json:"memoryLimit,omitempty" yaml:"memoryLimit,omitempty"`
	MaxExecutionTime int             `json:"maxExecutionTime,omitempty" yaml:"maxExecutionTime,omitempty"`
	Extensions       map[string]bool `json:"extensions,omitempty" yaml:"extensions,omitempty"`

	// Error carries the collector failure message, if any.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// AppFacts describes the Laravel application configuration.
type AppFacts struct {
	Environment      string `json:"environment,omitempty" yaml:"environment,omitempty"`
	Debug            bool   `json:"debug" yaml:"debug"`
	ConfigCached     bool   `json:"configCached" yaml:"configCached"`
	RoutesCached     bool   `json:"routesCached" yaml:"routesCached"`
	EventsCached     bool   `json:"eventsCached" yaml:"eventsCached"`
	ViewsCached      bool   `json:"viewsCached" yaml:"viewsCached"`
	FrameworkVersion string `json:"frameworkVersion,omitempty" yaml:"frameworkVersion,omitempty"`
	MaintenanceMode  bool   `json:"maintenanceMode" yaml:"maintenanceMode"`

	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// DatabaseFacts describes the configured database and migration state.
type DatabaseFacts struct {
	Connection        string `json:"connection,omitempty" yaml:"connection,omitempty"`
	Driver            string `json:"driver,omitempty" yaml:"driver,omitempty"`
	RanMigrations     int    `json:"ranMigrations" yaml:"ranMigrations"`
	PendingMigrations int    `json:"pendingMigrations" yaml:"pendingMigrations"`

	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// MemoryFacts describes PHP memory configuration and usage.
type MemoryFacts struct {
	MemoryLimitBytes  int64   `json:"memoryLimitBytes" yaml:"memoryLimitBytes"`
	CurrentUsageBytes int64   `json:"currentUsageBytes" yaml:"currentUsageBytes"`
	PeakUsageBytes    int64   `json:"peakUsageBytes" yaml:"peakUsageBytes"`
	UsagePercent      float64 `json:"usagePercent" yaml:"usagePercent"`

	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// RouteFacts summarizes the registered HTTP routes.
type RouteFacts struct {
	Total            int            `json:"total" yaml:"total"`
	ByMethod         map[string]int `json:"byMethod,omitempty" yaml:"byMethod,omitempty"`
	MiddlewareCounts map[string]int `json:"middlewareCounts,omitempty" yaml:"middlewareCounts,omitempty"`
	DuplicateURIs    int            `json:"duplicateUris" yaml:"duplicateUris"`

	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// UnitState is the observed state of one systemd unit.
type UnitState struct {
	ActiveState   string `json:"activeState,omitempty" yaml:"activeState,omitempty"`
	SubState      string `json:"subState,omitempty" yaml:"subState,omitempty"`
	UnitFileState string `json:"unitFileState,omitempty" yaml:"unitFileState,omitempty"`
}

// ServiceFacts describes host services backing the application
// (php-fpm, web server, queue workers).
type ServiceFacts struct {
	Units map[string]UnitState `json:"units,omitempty" yaml:"units,omitempty"`

	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}
