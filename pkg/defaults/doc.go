/*
Copyright © 2025 Laris Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package defaults centralizes timeout constants for subprocess, collector,
// and HTTP client operations so call sites stay consistent and tunable in
// one place.
package defaults
