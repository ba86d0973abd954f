/*
Copyright © 2025 Laris Authors
SPDX-License-Identifier: Apache-2.0
*/

package php

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/larisphp/laris/pkg/apperr"
	"github.com/larisphp/laris/pkg/defaults"
)

// Option configures a Runner.
type Option func(*Runner)

// WithBinary overrides the php binary path. Default is "php" from PATH.
func WithBinary(bin string) Option {
	return func(r *Runner) {
		r.bin = bin
	}
}

// Runner executes php and artisan subprocesses inside a project directory.
// Every call carries an explicit timeout; deadline hits are reported with
// apperr.CodeTimeout so callers can render them distinctly.
type Runner struct {
	bin string
	dir string
}

// NewRunner creates a Runner rooted at the given project directory.
func NewRunner(dir string, opts ...Option) *Runner {
	r := &Runner{bin: "php", dir: dir}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Eval runs `php -r <code>` and returns its stdout.
func (r *Runner) Eval(ctx context.Context, code string) (string, error) {
	return r.run(ctx, defaults.PHPEvalTimeout, "-r", code)
}

// Version runs `php -v` and returns the banner output.
func (r *Runner) Version(ctx context.Context) (string, error) {
	return r.run(ctx, defaults.PHPEvalTimeout, "-v")
}

// Artisan runs `php artisan <args>` with the given timeout.
func (r *Runner) Artisan(ctx context.Context, timeout time.Duration, args ...string) (string, error) {
	return r.run(ctx, timeout, append([]string{"artisan"}, args...)...)
}

func (r *Runner) run(ctx context.Context, timeout time.Duration, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	cmd := exec.CommandContext(ctx, r.bin, args...)
	cmd.Dir = r.dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	slog.Debug("subprocess finished",
		"cmd", r.bin,
		"args", strings.Join(args, " "),
		"duration", time.Since(start),
		"error", err)

	if err != nil {
		label := subprocessLabel(args)
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", apperr.Wrap(apperr.CodeTimeout,
				fmt.Sprintf("%s exceeded %s deadline", label, timeout), err)
		}
		if msg := firstNonEmptyLine(stderr.String()); msg != "" {
			return "", apperr.Wrap(apperr.CodeInternal,
				fmt.Sprintf("%s failed: %s", label, msg), err)
		}
		return "", apperr.Wrap(apperr.CodeInternal, fmt.Sprintf("%s failed", label), err)
	}

	return stdout.String(), nil
}

// subprocessLabel builds a short human-readable label like "php -v" or
// "artisan route:list" for error messages.
func subprocessLabel(args []string) string {
	if len(args) == 0 {
		return "php"
	}
	if args[0] == "artisan" {
		if len(args) > 1 {
			return "artisan " + args[1]
		}
		return "artisan"
	}
	if args[0] == "-r" {
		return "php -r"
	}
	return "php " + args[0]
}

func firstNonEmptyLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			return line
		}
	}
	return ""
}
