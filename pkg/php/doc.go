/*
Copyright © 2025 Laris Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package php shells out to the php binary and the project's artisan
// script, and parses their output.
//
// Every invocation carries an explicit timeout; a deadline hit is
// classified as apperr.CodeTimeout rather than a generic failure so report
// sections can say "timed out" instead of "failed". Parsing functions are
// exported separately from the Runner so they can be tested against
// captured output without a PHP installation.
package php
