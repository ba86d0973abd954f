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
)

// introspectScript is a single `php -r` payload emitting the runtime facts
// this tool needs as one JSON object. One subprocess instead of one per
// ini_get keeps the system collector inside its timeout budget.
const introspectScript = `echo json_encode([` +
	`'version' => PHP_VERSION,` +
	`'opcache_enabled' => function_exists('opcache_get_status') && (bool) (opcache_get_status(false)['opcache_enabled'] ?? false),` +
	`'jit_enabled' => function_exists('opcache_get_status') && !empty(opcache_get_status(false)['jit']['enabled']),` +
	`'memory_limit' => (string) ini_get('memory_limit'),` +
	`'max_execution_time' => (int) ini_get('max_execution_time'),` +
	`'memory_usage' => memory_get_usage(true),` +
	`'memory_peak' => memory_get_peak_usage(true),` +
	`'extensions' => array_map('strtolower', get_loaded_extensions())` +
	`]);`

// RuntimeInfo is the decoded output of the introspection script.
type RuntimeInfo struct {
	Version          string   `json:"version"`
	OpcacheEnabled   bool     `json:"opcache_enabled"`
	JITEnabled       bool     `json:"jit_enabled"`
	MemoryLimit      string   `json:"memory_limit"`
	MaxExecutionTime int      `json:"max_execution_time"`
	MemoryUsage      int64    `json:"memory_usage"`
	MemoryPeak       int64    `json:"memory_peak"`
	Extensions       []string `json:"extensions"`
}

// HasExtension reports whether the named extension is loaded.
// Comparison is case-insensitive; the script lowercases names at the source.
func (ri *RuntimeInfo) HasExtension(name string) bool {
	name = strings.ToLower(name)
	for _, ext := range ri.Extensions {
		if ext == name {
			return true
		}
	}
	return false
}

// Introspect runs the runtime introspection script and decodes its output.
func (r *Runner) Introspect(ctx context.Context) (*RuntimeInfo, error) {
	out, err := r.Eval(ctx, introspectScript)
	if err != nil {
		return nil, err
	}
	return ParseRuntimeInfo(out)
}

// ParseRuntimeInfo decodes the JSON object printed by the introspection
// script. Leading output (ini deprecation notices and the like) before the
// JSON object is skipped.
func ParseRuntimeInfo(out string) (*RuntimeInfo, error) {
	idx := strings.IndexByte(out, '{')
	if idx < 0 {
		return nil, fmt.Errorf("no JSON object in php output %q", firstNonEmptyLine(out))
	}

	var info RuntimeInfo
	if err := json.Unmarshal([]byte(out[idx:]), &info); err != nil {
		return nil, fmt.Errorf("failed to decode php introspection output: %w", err)
	}
	return &info, nil
}
