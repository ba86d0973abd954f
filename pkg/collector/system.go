/*
Copyright © 2025 Laris Authors
SPDX-License-Identifier: Apache-2.0
*/

package collector

import (
	"context"
	"log/slog"

	"github.com/larisphp/laris/pkg/php"
	"github.com/larisphp/laris/pkg/report"
)

// watchedExtensions are the extensions the report tracks explicitly.
// Order is fixed so rendered output is deterministic.
var watchedExtensions = []string{"redis", "memcached", "apcu", "xdebug"}

// PHPRuntimeCollector gathers PHP runtime configuration through a single
// introspection subprocess.
type PHPRuntimeCollector struct {
	Runner *php.Runner
}

// Collect implements the SystemCollector interface.
func (c *PHPRuntimeCollector) Collect(ctx context.Context) (*report.SystemFacts, error) {
	slog.Debug("collecting PHP runtime configuration")

	info, err := c.Runner.Introspect(ctx)
	if err != nil {
		return nil, err
	}

	exts := make(map[string]bool, len(watchedExtensions))
	for _, ext := range watchedExtensions {
		exts[ext] = info.HasExtension(ext)
	}

	return &report.SystemFacts{
		PHPVersion:       info.Version,
		OpcacheEnabled:   info.OpcacheEnabled,
		JITEnabled:       info.JITEnabled,
		MemoryLimit:      info.MemoryLimit,
		MaxExecutionTime: info.MaxExecutionTime,
		Extensions:       exts,
	}, nil
}
