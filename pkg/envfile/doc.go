/*
Copyright © 2025 Laris Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package envfile parses dotenv-style key=value files such as a Laravel
// application's .env. Parsing is intentionally lenient: comment and
// malformed lines are skipped rather than rejected, since the file is
// owned by the application, not by this tool.
package envfile
