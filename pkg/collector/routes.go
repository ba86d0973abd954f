/*
Copyright © 2025 Laris Authors
SPDX-License-Identifier: Apache-2.0
*/

package collector

import (
	"context"
	"log/slog"
	"strings"

	"github.com/larisphp/laris/pkg/php"
	"github.com/larisphp/laris/pkg/report"
)

// ArtisanRouteCollector gathers the route table through
// `artisan route:list --json` and summarizes it.
type ArtisanRouteCollector struct {
	Runner *php.Runner
}

// Collect implements the RouteCollector interface.
func (c *ArtisanRouteCollector) Collect(ctx context.Context) (*report.RouteFacts, error) {
	slog.Debug("collecting route table")

	routes, err := c.Runner.RouteList(ctx)
	if err != nil {
		return nil, err
	}
	return summarizeRoutes(routes), nil
}

// summarizeRoutes aggregates the route table. Composite methods
// ("GET|HEAD") count once per verb; duplicates are routes sharing both
// verb set and URI.
func summarizeRoutes(routes []php.Route) *report.RouteFacts {
	facts := &report.RouteFacts{
		Total:            len(routes),
		ByMethod:         make(map[string]int),
		MiddlewareCounts: make(map[string]int),
	}

	seen := make(map[string]int, len(routes))
	for _, rt := range routes {
		for _, method := range strings.Split(rt.Method, "|") {
			method = strings.TrimSpace(method)
			if method != "" {
				facts.ByMethod[method]++
			}
		}
		for _, mw := range rt.Middleware {
			if mw != "" {
				facts.MiddlewareCounts[mw]++
			}
		}
		seen[rt.Method+" "+rt.URI]++
	}

	for _, n := range seen {
		if n > 1 {
			facts.DuplicateURIs += n - 1
		}
	}
	return facts
}
