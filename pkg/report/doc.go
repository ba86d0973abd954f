/*
Copyright © 2025 Laris Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package report defines the typed fact bag collected for one check run.
//
// Each category (system, application, database, memory, routes, services)
// is an explicit struct rather than an untyped map, so field access is
// checked at compile time. Serialization to CSV rows goes through explicit
// per-section mapping functions (see rows.go); JSON uses struct tags and
// round-trips exactly.
//
// A section whose collector failed carries the failure message in its
// Error field; the rest of the report is unaffected.
package report
