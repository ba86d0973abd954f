/*
Copyright © 2025 Laris Authors
SPDX-License-Identifier: Apache-2.0
*/

package php

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/larisphp/laris/pkg/defaults"
)

// Route is one entry from `artisan route:list --json`.
type Route struct {
	Method     string     `json:"method"`
	URI        string     `json:"uri"`
	Name       string     `json:"name"`
	Action     string     `json:"action"`
	Middleware Middleware `json:"middleware"`
}

// Middleware accepts both wire shapes route:list emits: an array of names
// (Laravel 9+) or a single comma-joined string (older releases).
type Middleware []string

// UnmarshalJSON implements json.Unmarshaler for both middleware shapes.
func (m *Middleware) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*m = list
		return nil
	}

	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return fmt.Errorf("middleware is neither array nor string: %w", err)
	}
	if joined == "" {
		*m = nil
		return nil
	}

	parts := strings.Split(joined, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	*m = parts
	return nil
}

// MigrationStatus summarizes `artisan migrate:status` output.
type MigrationStatus struct {
	Ran     int
	Pending int
}

// FrameworkVersion runs `artisan --version` and extracts the version
// number from output like "Laravel Framework 11.23.1".
func (r *Runner) FrameworkVersion(ctx context.Context) (string, error) {
	out, err := r.Artisan(ctx, defaults.ArtisanTimeout, "--version")
	if err != nil {
		return "", err
	}
	return ParseFrameworkVersion(out)
}

// RouteList runs `artisan route:list --json` and decodes the route table.
func (r *Runner) RouteList(ctx context.Context) ([]Route, error) {
	out, err := r.Artisan(ctx, defaults.RouteListTimeout, "route:list", "--json")
	if err != nil {
		return nil, err
	}
	return ParseRouteList(out)
}

// MigrateStatus runs `artisan migrate:status` and counts ran vs pending
// migrations.
func (r *Runner) MigrateStatus(ctx context.Context) (*MigrationStatus, error) {
	out, err := r.Artisan(ctx, defaults.ArtisanTimeout, "migrate:status")
	if err != nil {
		return nil, err
	}
	return ParseMigrateStatus(out), nil
}

// ParseFrameworkVersion extracts the trailing version from the
// `artisan --version` banner.
func ParseFrameworkVersion(out string) (string, error) {
	line := firstNonEmptyLine(out)
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", fmt.Errorf("empty artisan --version output")
	}
	last := fields[len(fields)-1]
	if last == "" || last[0] < '0' || last[0] > '9' {
		return "", fmt.Errorf("no version number in %q", line)
	}
	return last, nil
}

// ParseRouteList decodes the JSON array printed by route:list. Output
// before the array (deprecation notices) is skipped.
func ParseRouteList(out string) ([]Route, error) {
	idx := strings.IndexByte(out, '[')
	if idx < 0 {
		return nil, fmt.Errorf("no JSON array in route:list output %q", firstNonEmptyLine(out))
	}

	var routes []Route
	if err := json.Unmarshal([]byte(out[idx:]), &routes); err != nil {
		return nil, fmt.Errorf("failed to decode route:list output: %w", err)
	}
	return routes, nil
}

// ParseMigrateStatus counts ran and pending migrations from the
// migrate:status table. Both the modern layout
// ("..._create_users_table ......... [1] Ran") and the legacy one
// ("| Yes  | <migration> | 1 |", Ran? column first) are recognized.
func ParseMigrateStatus(out string) *MigrationStatus {
	status := &MigrationStatus{}
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "| Yes"):
			status.Ran++
		case strings.HasPrefix(line, "| No"):
			status.Pending++
		case strings.HasSuffix(line, " Ran"):
			status.Ran++
		case strings.HasSuffix(line, " Pending"):
			status.Pending++
		}
	}
	return status
}
