/*
Copyright © 2025 Laris Authors
SPDX-License-Identifier: Apache-2.0
*/

package php

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseIniBytes converts a php.ini shorthand size ("256M", "1G", "512K",
// plain digits) to bytes. "-1" means unlimited and is returned as -1.
func ParseIniBytes(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty ini size")
	}
	if s == "-1" {
		return -1, nil
	}

	mult := int64(1)
	switch s[len(s)-1] {
	case 'k', 'K':
		mult = 1 << 10
		s = s[:len(s)-1]
	case 'm', 'M':
		mult = 1 << 20
		s = s[:len(s)-1]
	case 'g', 'G':
		mult = 1 << 30
		s = s[:len(s)-1]
	}

	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid ini size %q: %w", s, err)
	}
	return n * mult, nil
}
