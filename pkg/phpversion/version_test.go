/*
Copyright © 2025 Laris Authors
SPDX-License-Identifier: Apache-2.0
*/

package phpversion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Version
		wantErr error
	}{
		{
			name: "full version",
			in:   "8.3.11",
			want: Version{Major: 8, Minor: 3, Patch: 11, Precision: 3},
		},
		{
			name: "two components",
			in:   "8.3",
			want: Version{Major: 8, Minor: 3, Precision: 2},
		},
		{
			name: "major only",
			in:   "8",
			want: Version{Major: 8, Precision: 1},
		},
		{
			name: "v prefix",
			in:   "v8.2.0",
			want: Version{Major: 8, Minor: 2, Patch: 0, Precision: 3},
		},
		{
			name: "dev suffix",
			in:   "8.4.0-dev",
			want: Version{Major: 8, Minor: 4, Patch: 0, Precision: 3, Extras: "-dev"},
		},
		{
			name: "build metadata",
			in:   "8.1.29+ubuntu24.04",
			want: Version{Major: 8, Minor: 1, Patch: 29, Precision: 3, Extras: "+ubuntu24.04"},
		},
		{
			name:    "empty",
			in:      "",
			wantErr: ErrEmptyVersion,
		},
		{
			name:    "too many components",
			in:      "1.2.3.4",
			wantErr: ErrTooManyComponents,
		},
		{
			name:    "non numeric",
			in:      "8.x",
			wantErr: ErrNonNumeric,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseBanner(t *testing.T) {
	out := "PHP 8.3.11 (cli) (built: Sep 27 2024 03:53:05) (NTS)\nCopyright (c) The PHP Group\n"
	v, err := ParseBanner(out)
	require.NoError(t, err)
	assert.Equal(t, "8.3.11", v.String())

	_, err = ParseBanner("zsh: command not found: php")
	assert.Error(t, err)
}

func TestCompare(t *testing.T) {
	mustParse := func(s string) Version {
		v, err := Parse(s)
		require.NoError(t, err)
		return v
	}

	tests := []struct {
		a, b string
		want int
	}{
		{"8.3.11", "8.3.11", 0},
		{"8.3.11", "8.3.10", 1},
		{"8.2.0", "8.3.0", -1},
		{"8.3", "8.3.11", 0}, // precision-limited comparison
		{"7.4.33", "8.1", -1},
		{"8.3.11-dev", "8.3.11", 0}, // extras ignored
	}

	for _, tt := range tests {
		t.Run(tt.a+"_vs_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, mustParse(tt.a).Compare(mustParse(tt.b)))
		})
	}
}

func TestAtLeast(t *testing.T) {
	v, err := Parse("8.1.2")
	require.NoError(t, err)
	min, err := Parse("8.1")
	require.NoError(t, err)

	assert.True(t, v.AtLeast(min))

	older, err := Parse("7.4.33")
	require.NoError(t, err)
	assert.False(t, older.AtLeast(min))
}

func TestString(t *testing.T) {
	assert.Equal(t, "8", Version{Major: 8, Precision: 1}.String())
	assert.Equal(t, "8.3", Version{Major: 8, Minor: 3, Precision: 2}.String())
	assert.Equal(t, "8.3.11", Version{Major: 8, Minor: 3, Patch: 11, Precision: 3}.String())
}
