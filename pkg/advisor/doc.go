/*
Copyright © 2025 Laris Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package advisor evaluates a fixed recommendation rule set over a
// collected report. Rules are independent predicates with no shared state;
// output order follows rule declaration order.
package advisor
