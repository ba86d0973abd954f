/*
Copyright © 2025 Laris Authors
SPDX-License-Identifier: Apache-2.0
*/

package collector

import (
	"context"

	"github.com/larisphp/laris/pkg/envfile"
	"github.com/larisphp/laris/pkg/php"
	"github.com/larisphp/laris/pkg/project"
	"github.com/larisphp/laris/pkg/report"
)

// Collectors return their section facts. A non-nil error marks the whole
// section as failed; recoverable problems (one probe out of several) are
// recorded in the section's Error field instead, alongside the facts that
// were gathered.

// SystemCollector gathers PHP runtime facts.
type SystemCollector interface {
	Collect(ctx context.Context) (*report.SystemFacts, error)
}

// AppCollector gathers Laravel application facts.
type AppCollector interface {
	Collect(ctx context.Context) (*report.AppFacts, error)
}

// DatabaseCollector gathers database and migration facts.
type DatabaseCollector interface {
	Collect(ctx context.Context) (*report.DatabaseFacts, error)
}

// MemoryCollector gathers PHP memory facts.
type MemoryCollector interface {
	Collect(ctx context.Context) (*report.MemoryFacts, error)
}

// RouteCollector gathers HTTP route facts.
type RouteCollector interface {
	Collect(ctx context.Context) (*report.RouteFacts, error)
}

// ServiceCollector gathers host service facts.
type ServiceCollector interface {
	Collect(ctx context.Context) (*report.ServiceFacts, error)
}

// Factory creates collectors with their dependencies.
// This interface enables dependency injection for testing.
type Factory interface {
	CreateSystemCollector() SystemCollector
	CreateAppCollector() AppCollector
	CreateDatabaseCollector() DatabaseCollector
	CreateMemoryCollector() MemoryCollector
	CreateRouteCollector() RouteCollector
	CreateServiceCollector() ServiceCollector
}

// DefaultFactory creates collectors with production dependencies.
type DefaultFactory struct {
	Project *project.Project
	Runner  *php.Runner

	// Units are the systemd units probed by the service collector.
	Units []string
}

// NewDefaultFactory creates a factory for the given project with default
// settings.
func NewDefaultFactory(p *project.Project, r *php.Runner) *DefaultFactory {
	return &DefaultFactory{
		Project: p,
		Runner:  r,
		Units: []string{
			"php-fpm.service",
			"nginx.service",
			"laravel-queue.service",
		},
	}
}

// CreateSystemCollector creates a PHP runtime collector.
func (f *DefaultFactory) CreateSystemCollector() SystemCollector {
	return &PHPRuntimeCollector{Runner: f.Runner}
}

// CreateAppCollector creates a Laravel application collector.
func (f *DefaultFactory) CreateAppCollector() AppCollector {
	return &LaravelAppCollector{
		Project: f.Project,
		Runner:  f.Runner,
		Env:     envfile.NewParser(),
	}
}

// CreateDatabaseCollector creates a database collector.
func (f *DefaultFactory) CreateDatabaseCollector() DatabaseCollector {
	return &MigrationCollector{
		Project: f.Project,
		Runner:  f.Runner,
		Env:     envfile.NewParser(),
	}
}

// CreateMemoryCollector creates a memory collector.
func (f *DefaultFactory) CreateMemoryCollector() MemoryCollector {
	return &PHPMemoryCollector{Runner: f.Runner}
}

// CreateRouteCollector creates a route collector.
func (f *DefaultFactory) CreateRouteCollector() RouteCollector {
	return &ArtisanRouteCollector{Runner: f.Runner}
}

// CreateServiceCollector creates a systemd service collector.
func (f *DefaultFactory) CreateServiceCollector() ServiceCollector {
	return &SystemdServiceCollector{Units: f.Units}
}
