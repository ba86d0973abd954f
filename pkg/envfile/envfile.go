/*
Copyright © 2025 Laris Authors
SPDX-License-Identifier: Apache-2.0
*/

package envfile

import (
	"fmt"
	"os"
	"strings"
)

// Option configures a Parser.
type Option func(*Parser)

// Parser reads dotenv-style key=value files.
type Parser struct {
	maxSize      int
	skipComments bool
	trimExport   bool
	trimQuotes   bool
}

// WithMaxSize caps the file size in bytes. Default is 1MB.
func WithMaxSize(size int) Option {
	return func(p *Parser) {
		p.maxSize = size
	}
}

// WithSkipComments controls whether lines starting with '#' are skipped.
// Default is true.
func WithSkipComments(skip bool) Option {
	return func(p *Parser) {
		p.skipComments = skip
	}
}

// WithTrimExport controls stripping of a leading "export " on keys.
// Default is true.
func WithTrimExport(trim bool) Option {
	return func(p *Parser) {
		p.trimExport = trim
	}
}

// WithTrimQuotes controls stripping of matching surrounding quotes on
// values. Default is true.
func WithTrimQuotes(trim bool) Option {
	return func(p *Parser) {
		p.trimQuotes = trim
	}
}

// NewParser creates a Parser with the provided options.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		maxSize:      1 << 20,
		skipComments: true,
		trimExport:   true,
		trimQuotes:   true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// GetMap reads the file at path and parses it into a key-value map.
// Lines without '=' are skipped; later keys override earlier ones, matching
// how dotenv loaders resolve duplicates.
func (p *Parser) GetMap(path string) (map[string]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.Size() > int64(p.maxSize) {
		return nil, fmt.Errorf("file %s exceeds max size of %d bytes", path, p.maxSize)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	out := make(map[string]string)
	for _, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if p.skipComments && strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}

		key = strings.TrimSpace(key)
		if p.trimExport {
			key = strings.TrimSpace(strings.TrimPrefix(key, "export "))
		}
		if key == "" {
			continue
		}

		value = strings.TrimSpace(value)
		if p.trimQuotes {
			value = trimMatchingQuotes(value)
		}

		out[key] = value
	}

	return out, nil
}

// Lookup is a convenience for a single key; returns false when the key is
// absent.
func (p *Parser) Lookup(path, key string) (string, bool, error) {
	m, err := p.GetMap(path)
	if err != nil {
		return "", false, err
	}
	v, ok := m[key]
	return v, ok, nil
}

func trimMatchingQuotes(s string) string {
	if len(s) < 2 {
		return s
	}
	first, last := s[0], s[len(s)-1]
	if first == last && (first == '"' || first == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}
