/*
Copyright © 2025 Laris Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package collector gathers the facts that make up a performance report.
// Each report section has its own collector behind a small interface; the
// Monitor fans them out in parallel and folds failures into per-section
// errors so a single broken probe degrades the report instead of aborting
// the run.
package collector
