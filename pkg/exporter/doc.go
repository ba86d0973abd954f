/*
Copyright © 2025 Laris Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package exporter serializes collected reports.
//
// Two surfaces exist on purpose: Export writes a timestamped
// laris-performance-<ts>.{json,csv} file (the machine-readable contract),
// while Writer renders table/json/yaml to stdout for humans. CSV is never
// a stdout format and table/yaml are never export formats.
package exporter
