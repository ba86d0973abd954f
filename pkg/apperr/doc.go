/*
Copyright © 2025 Laris Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package apperr provides structured errors with a classification code,
// so callers can branch on what went wrong (not found, timeout, invalid
// input) without string matching. Named apperr rather than errors to
// keep the stdlib errors package usable alongside it.
package apperr
