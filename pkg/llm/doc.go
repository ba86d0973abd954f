/*
Copyright © 2025 Laris Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package llm provides a minimal client for OpenAI-compatible
// chat-completions APIs. It rate-limits outgoing requests and retries
// transient provider failures with exponential backoff.
package llm
