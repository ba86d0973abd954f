/*
Copyright © 2025 Laris Authors
SPDX-License-Identifier: Apache-2.0
*/

package collector

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/larisphp/laris/pkg/envfile"
	"github.com/larisphp/laris/pkg/php"
	"github.com/larisphp/laris/pkg/project"
)

func TestSummarizeRoutes(t *testing.T) {
	routes := []php.Route{
		{Method: "GET|HEAD", URI: "/", Middleware: php.Middleware{"web"}},
		{Method: "GET|HEAD", URI: "users", Middleware: php.Middleware{"web", "auth"}},
		{Method: "POST", URI: "users", Middleware: php.Middleware{"web", "auth"}},
		{Method: "POST", URI: "users", Middleware: php.Middleware{"web"}},
	}

	facts := summarizeRoutes(routes)
	assert.Equal(t, 4, facts.Total)
	assert.Equal(t, 2, facts.ByMethod["GET"])
	assert.Equal(t, 2, facts.ByMethod["HEAD"])
	assert.Equal(t, 2, facts.ByMethod["POST"])
	assert.Equal(t, 4, facts.MiddlewareCounts["web"])
	assert.Equal(t, 2, facts.MiddlewareCounts["auth"])
	assert.Equal(t, 1, facts.DuplicateURIs, "two POST users routes count as one duplicate")
}

func TestSummarizeRoutesEmpty(t *testing.T) {
	facts := summarizeRoutes(nil)
	assert.Equal(t, 0, facts.Total)
	assert.Equal(t, 0, facts.DuplicateURIs)
}

func TestDriverName(t *testing.T) {
	assert.Equal(t, "MySQL", driverName("mysql"))
	assert.Equal(t, "MySQL", driverName("mariadb"))
	assert.Equal(t, "PostgreSQL", driverName("pgsql"))
	assert.Equal(t, "SQLite", driverName("sqlite"))
	assert.Equal(t, "SQL Server", driverName("sqlsrv"))
	assert.Equal(t, "mongodb", driverName("mongodb"))
}

func TestEnvTruthy(t *testing.T) {
	for _, v := range []string{"true", "TRUE", "1", "yes", "on", " True "} {
		assert.True(t, envTruthy(v), v)
	}
	for _, v := range []string{"false", "0", "no", "off", "", "anything"} {
		assert.False(t, envTruthy(v), v)
	}
}

func TestUsagePercent(t *testing.T) {
	assert.InDelta(t, 50.0, usagePercent(128, 256), 0.001)
	assert.InDelta(t, 33.33, usagePercent(1, 3), 0.001)
	assert.Zero(t, usagePercent(128, -1), "unlimited memory limit yields zero")
	assert.Zero(t, usagePercent(128, 0))
}

// fakePHP writes an executable shell script standing in for the php binary.
func fakePHP(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "php")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755))
	return path
}

func TestLaravelAppCollector(t *testing.T) {
	dir := t.TempDir()
	write := func(rel, content string) {
		path := filepath.Join(dir, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	write("artisan", "#!/usr/bin/env php\n")
	write(".env", "APP_ENV=production\nAPP_DEBUG=true\n")
	write("bootstrap/cache/config.php", "<?php return [];")
	write("bootstrap/cache/routes-v7.php", "<?php return [];")
	write("storage/framework/views/0a1b2c.php", "<?php")
	write("storage/framework/down", "{}")

	p, err := project.Locate(dir)
	require.NoError(t, err)

	c := &LaravelAppCollector{
		Project: p,
		Runner:  php.NewRunner(dir, php.WithBinary(fakePHP(t, `echo "Laravel Framework 11.23.1"`))),
		Env:     envfile.NewParser(),
	}

	facts, err := c.Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "production", facts.Environment)
	assert.True(t, facts.Debug)
	assert.True(t, facts.ConfigCached)
	assert.True(t, facts.RoutesCached)
	assert.False(t, facts.EventsCached)
	assert.True(t, facts.ViewsCached)
	assert.True(t, facts.MaintenanceMode)
	assert.Equal(t, "11.23.1", facts.FrameworkVersion)
	assert.Empty(t, facts.Error)
}

func TestLaravelAppCollectorPartialFailure(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "artisan"), []byte("#!/usr/bin/env php\n"), 0o755))

	p, err := project.Locate(dir)
	require.NoError(t, err)

	// No .env and a failing artisan: facts from file probes survive with
	// the problems recorded in the section error.
	c := &LaravelAppCollector{
		Project: p,
		Runner:  php.NewRunner(dir, php.WithBinary(fakePHP(t, `echo "boom" >&2; exit 1`))),
		Env:     envfile.NewParser(),
	}

	facts, err := c.Collect(context.Background())
	require.NoError(t, err)
	assert.False(t, facts.ConfigCached)
	assert.NotEmpty(t, facts.Error)
}

func TestDefaultFactoryUnits(t *testing.T) {
	f := NewDefaultFactory(testProject(t), php.NewRunner(t.TempDir()))
	assert.Contains(t, f.Units, "php-fpm.service")
	assert.Contains(t, f.Units, "nginx.service")
}
