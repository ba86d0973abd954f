/*
Copyright © 2025 Laris Authors
SPDX-License-Identifier: Apache-2.0
*/

package phpversion

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Parse error sentinels.
var (
	ErrEmptyVersion      = errors.New("version string is empty")
	ErrTooManyComponents = errors.New("version has more than 3 components")
	ErrNonNumeric        = errors.New("version component is not numeric")
)

// Version is a dotted version number with up to three significant
// components. Precision records how many components were present in the
// source string so "8.3" and "8.3.0" compare as intended. Suffixes such as
// "-dev" or "+build" are preserved in Extras and ignored for comparison.
type Version struct {
	Major int `json:"major"`
	Minor int `json:"minor,omitempty"`
	Patch int `json:"patch,omitempty"`

	// Precision is the number of significant components (1, 2, or 3).
	Precision int `json:"precision,omitempty"`

	// Extras holds any suffix after the numeric components, e.g. "-dev".
	Extras string `json:"extras,omitempty"`
}

// String renders the version respecting its precision. Extras are omitted.
func (v Version) String() string {
	switch v.Precision {
	case 1:
		return strconv.Itoa(v.Major)
	case 2:
		return fmt.Sprintf("%d.%d", v.Major, v.Minor)
	default:
		return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	}
}

// Parse parses a PHP-style version string: "8", "8.3", "8.3.11",
// "8.3.11-dev", or "v8.3.11". A leading "v" is stripped; anything after a
// '-' or '+' following a digit is kept as Extras.
func Parse(s string) (Version, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Version{}, ErrEmptyVersion
	}
	s = strings.TrimPrefix(s, "v")

	var v Version
	main := s
	for i := 1; i < len(s); i++ {
		if (s[i] == '-' || s[i] == '+') && s[i-1] >= '0' && s[i-1] <= '9' {
			main = s[:i]
			v.Extras = s[i:]
			break
		}
	}

	parts := strings.Split(main, ".")
	if len(parts) > 3 {
		return Version{}, ErrTooManyComponents
	}

	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("%w: %q", ErrNonNumeric, part)
		}
		switch i {
		case 0:
			v.Major = n
		case 1:
			v.Minor = n
		case 2:
			v.Patch = n
		}
	}
	v.Precision = len(parts)

	return v, nil
}

// ParseBanner extracts the version from `php -v` banner output, e.g.
// "PHP 8.3.11 (cli) (built: ...)".
func ParseBanner(out string) (Version, error) {
	fields := strings.Fields(out)
	for i, f := range fields {
		if strings.EqualFold(f, "PHP") && i+1 < len(fields) {
			return Parse(fields[i+1])
		}
	}
	return Version{}, fmt.Errorf("no PHP version in output %q", firstLine(out))
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// Compare returns -1, 0, or 1 comparing v to other, using the smaller of
// the two precisions so "8.3" equals "8.3.11".
func (v Version) Compare(other Version) int {
	prec := min(normPrecision(v.Precision), normPrecision(other.Precision))

	pairs := [3][2]int{
		{v.Major, other.Major},
		{v.Minor, other.Minor},
		{v.Patch, other.Patch},
	}
	for i := 0; i < prec; i++ {
		if pairs[i][0] < pairs[i][1] {
			return -1
		}
		if pairs[i][0] > pairs[i][1] {
			return 1
		}
	}
	return 0
}

// AtLeast reports whether v is greater than or equal to other.
func (v Version) AtLeast(other Version) bool {
	return v.Compare(other) >= 0
}

func normPrecision(p int) int {
	if p < 1 || p > 3 {
		return 3
	}
	return p
}
