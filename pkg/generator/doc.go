/*
Copyright © 2025 Laris Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package generator creates Laravel source files from AI completions.
// It owns the typed .laris-ai.json configuration and the event class
// generator built on top of the llm client.
package generator
