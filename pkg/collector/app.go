/*
Copyright © 2025 Laris Authors
SPDX-License-Identifier: Apache-2.0
*/

package collector

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/larisphp/laris/pkg/envfile"
	"github.com/larisphp/laris/pkg/php"
	"github.com/larisphp/laris/pkg/project"
	"github.com/larisphp/laris/pkg/report"
)

// LaravelAppCollector gathers application configuration from the .env
// file, the framework's cache artifacts on disk, and artisan.
type LaravelAppCollector struct {
	Project *project.Project
	Runner  *php.Runner
	Env     *envfile.Parser
}

// Collect implements the AppCollector interface. File probes and the
// artisan call are independent; a failure in one is recorded in the
// section error while the rest of the facts are kept.
func (c *LaravelAppCollector) Collect(ctx context.Context) (*report.AppFacts, error) {
	slog.Debug("collecting application configuration")

	facts := &report.AppFacts{}
	var problems []string

	env, err := c.Env.GetMap(c.Project.EnvPath())
	if err != nil {
		problems = append(problems, err.Error())
	} else {
		facts.Environment = env["APP_ENV"]
		facts.Debug = envTruthy(env["APP_DEBUG"])
	}

	facts.ConfigCached = fileExists(c.Project.CachePath("config.php"))
	facts.RoutesCached = routesCached(c.Project)
	facts.EventsCached = fileExists(c.Project.CachePath("events.php"))
	facts.ViewsCached = viewsCached(c.Project)
	facts.MaintenanceMode = fileExists(filepath.Join(c.Project.Root, "storage", "framework", "down"))

	version, err := c.Runner.FrameworkVersion(ctx)
	if err != nil {
		problems = append(problems, err.Error())
	} else {
		facts.FrameworkVersion = version
	}

	facts.Error = strings.Join(problems, "; ")
	return facts, nil
}

// routesCached probes for the versioned route cache file
// (routes-v7.php on current releases, routes.php before that).
func routesCached(p *project.Project) bool {
	matches, err := filepath.Glob(p.CachePath("routes*.php"))
	return err == nil && len(matches) > 0
}

// viewsCached reports whether at least one compiled Blade template exists.
func viewsCached(p *project.Project) bool {
	matches, err := filepath.Glob(filepath.Join(p.Root, "storage", "framework", "views", "*.php"))
	return err == nil && len(matches) > 0
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// envTruthy mirrors how Laravel's env() helper coerces booleans.
func envTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "1", "yes", "on":
		return true
	}
	return false
}
