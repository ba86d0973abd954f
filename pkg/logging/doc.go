/*
Copyright © 2025 Laris Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package logging wraps log/slog with laris defaults: structured JSON
// records to stderr, module/version context on every record, LOG_LEVEL
// environment configuration, and source locations on debug logs.
//
// Set the default logger early in main:
//
//	logging.SetDefaultStructuredLoggerWithLevel("laris", version, logLevel)
//	slog.Info("starting", "version", version)
package logging
