/*
Copyright © 2025 Laris Authors
SPDX-License-Identifier: Apache-2.0
*/

package collector

import (
	"context"
	"log/slog"
	"strings"

	"github.com/larisphp/laris/pkg/envfile"
	"github.com/larisphp/laris/pkg/php"
	"github.com/larisphp/laris/pkg/project"
	"github.com/larisphp/laris/pkg/report"
)

// MigrationCollector gathers the configured database connection and the
// migration ledger state from artisan.
type MigrationCollector struct {
	Project *project.Project
	Runner  *php.Runner
	Env     *envfile.Parser
}

// Collect implements the DatabaseCollector interface.
func (c *MigrationCollector) Collect(ctx context.Context) (*report.DatabaseFacts, error) {
	slog.Debug("collecting database configuration")

	facts := &report.DatabaseFacts{}
	var problems []string

	env, err := c.Env.GetMap(c.Project.EnvPath())
	if err != nil {
		problems = append(problems, err.Error())
	} else {
		facts.Connection = env["DB_CONNECTION"]
	}
	if facts.Connection == "" {
		// Laravel's config/database.php default.
		facts.Connection = "mysql"
	}
	facts.Driver = driverName(facts.Connection)

	status, err := c.Runner.MigrateStatus(ctx)
	if err != nil {
		problems = append(problems, err.Error())
	} else {
		facts.RanMigrations = status.Ran
		facts.PendingMigrations = status.Pending
	}

	facts.Error = strings.Join(problems, "; ")
	return facts, nil
}

// driverName maps a Laravel connection name to a display driver name.
func driverName(connection string) string {
	switch strings.ToLower(connection) {
	case "mysql", "mariadb":
		return "MySQL"
	case "pgsql":
		return "PostgreSQL"
	case "sqlite":
		return "SQLite"
	case "sqlsrv":
		return "SQL Server"
	default:
		return connection
	}
}
