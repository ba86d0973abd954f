/*
Copyright © 2025 Laris Authors
SPDX-License-Identifier: Apache-2.0
*/

package collector

import (
	"context"
	"log/slog"
	"math"

	"github.com/larisphp/laris/pkg/php"
	"github.com/larisphp/laris/pkg/report"
)

// PHPMemoryCollector gathers PHP memory configuration and usage.
type PHPMemoryCollector struct {
	Runner *php.Runner
}

// Collect implements the MemoryCollector interface.
func (c *PHPMemoryCollector) Collect(ctx context.Context) (*report.MemoryFacts, error) {
	slog.Debug("collecting memory configuration")

	info, err := c.Runner.Introspect(ctx)
	if err != nil {
		return nil, err
	}

	limit, err := php.ParseIniBytes(info.MemoryLimit)
	if err != nil {
		return nil, err
	}

	return &report.MemoryFacts{
		MemoryLimitBytes:  limit,
		CurrentUsageBytes: info.MemoryUsage,
		PeakUsageBytes:    info.MemoryPeak,
		UsagePercent:      usagePercent(info.MemoryPeak, limit),
	}, nil
}

// usagePercent returns peak usage as a percentage of the limit, rounded to
// two decimals. An unlimited (-1) or zero limit yields 0.
func usagePercent(peak, limit int64) float64 {
	if limit <= 0 || peak < 0 {
		return 0
	}
	return math.Round(float64(peak)/float64(limit)*10000) / 100
}
