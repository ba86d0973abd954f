/*
Copyright © 2025 Laris Authors
SPDX-License-Identifier: Apache-2.0
*/

package defaults

import "time"

// Subprocess timeouts for PHP and artisan invocations.
const (
	// PHPEvalTimeout is the timeout for `php -r` runtime introspection calls.
	PHPEvalTimeout = 10 * time.Second

	// ArtisanTimeout is the timeout for short artisan queries (--version,
	// migrate:status).
	ArtisanTimeout = 15 * time.Second

	// RouteListTimeout is the timeout for `artisan route:list --json`.
	// Route enumeration boots the full framework and can be slow on
	// large applications.
	RouteListTimeout = 30 * time.Second
)

// Collector timeouts.
const (
	// ServiceProbeTimeout is the timeout for systemd unit state queries.
	ServiceProbeTimeout = 5 * time.Second

	// CheckRunTimeout is the budget for a complete check run across
	// all collectors.
	CheckRunTimeout = 2 * time.Minute
)

// HTTP client timeouts for the chat-completion API.
const (
	// HTTPClientTimeout is the total timeout for a single completion request.
	HTTPClientTimeout = 2 * time.Minute

	// HTTPConnectTimeout is the timeout for establishing connections.
	HTTPConnectTimeout = 5 * time.Second

	// HTTPTLSHandshakeTimeout is the timeout for the TLS handshake.
	HTTPTLSHandshakeTimeout = 5 * time.Second

	// HTTPResponseHeaderTimeout is the timeout for reading response headers.
	HTTPResponseHeaderTimeout = 30 * time.Second
)
