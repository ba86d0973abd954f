/*
Copyright © 2025 Laris Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package cli wires the laris commands: check, which collects a
// performance report and prints recommendations, and make-event, which
// generates Laravel event classes through an AI provider.
package cli
