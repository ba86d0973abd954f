/*
Copyright © 2025 Laris Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/larisphp/laris/pkg/advisor"
	"github.com/larisphp/laris/pkg/collector"
	"github.com/larisphp/laris/pkg/exporter"
	"github.com/larisphp/laris/pkg/project"
)

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:                  "check",
		EnableShellCompletion: true,
		Usage:                 "Inspect the application and print performance recommendations",
		Description: `Collect performance facts from the Laravel application in the current
directory (or --dir) and evaluate them against a fixed rule set:

  - PHP runtime settings (OPcache, JIT, memory limit, extensions)
  - application configuration (debug mode, config/route/view caches)
  - database connection and migration state (--database)
  - PHP memory usage (--memory)
  - registered HTTP routes (--routes)
  - backing systemd services (--services)

The base run collects runtime and application facts; --detailed turns
everything on. A failing probe degrades its section instead of aborting
the run.

# Examples

Full report rendered as tables:
  laris check --detailed

Machine-readable output:
  laris check --detailed --format json

Write a timestamped report file next to the terminal output:
  laris check --detailed --export csv`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "detailed",
				Usage: "Collect every report section",
			},
			&cli.BoolFlag{
				Name:  "database",
				Usage: "Collect database connection and migration facts",
			},
			&cli.BoolFlag{
				Name:  "memory",
				Usage: "Collect PHP memory facts",
			},
			&cli.BoolFlag{
				Name:  "routes",
				Usage: "Collect HTTP route facts",
			},
			&cli.BoolFlag{
				Name:  "services",
				Usage: "Collect systemd service facts",
			},
			&cli.StringFlag{
				Name:  "export",
				Usage: "Write the report to a timestamped file (json or csv)",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "Terminal output format (table, json, yaml)",
				Value: "table",
			},
		},
		Action: runCheck,
	}
}

func runCheck(ctx context.Context, cmd *cli.Command) error {
	// Validate both format selectors before any collection work.
	outFormat, err := exporter.ParseOutputFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	var exportFormat exporter.Format
	doExport := cmd.IsSet("export")
	if doExport {
		if exportFormat, err = exporter.ParseExportFormat(cmd.String("export")); err != nil {
			return err
		}
	}

	p, err := project.Locate(cmd.String("dir"))
	if err != nil {
		return err
	}

	m := &collector.Monitor{Project: p}
	r, err := m.Collect(ctx, collector.Selection{
		Detailed: cmd.Bool("detailed"),
		Database: cmd.Bool("database"),
		Memory:   cmd.Bool("memory"),
		Routes:   cmd.Bool("routes"),
		Services: cmd.Bool("services"),
	})
	if err != nil {
		return err
	}

	recs := advisor.Evaluate(r)

	if err := exporter.NewWriter(outFormat, cmd.Root().Writer).Render(r, recs); err != nil {
		return err
	}

	if doExport {
		path, err := exporter.Export(r, exportFormat, "")
		if err != nil {
			return err
		}
		slog.Info("report exported", slog.String("path", path))
	}

	return nil
}
