/*
Copyright © 2025 Laris Authors
SPDX-License-Identifier: Apache-2.0
*/

package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/larisphp/laris/pkg/apperr"
)

func scaffold(t *testing.T, composer string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "artisan"), []byte("#!/usr/bin/env php\n"), 0o755))
	if composer != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "composer.json"), []byte(composer), 0o644))
	}
	return dir
}

func TestLocate(t *testing.T) {
	dir := scaffold(t, `{"name":"acme/shop","require":{"laravel/framework":"^11.0"}}`)

	p, err := Locate(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, p.Root)
	assert.Equal(t, "acme/shop", p.Name)
}

func TestLocateWithoutComposerName(t *testing.T) {
	dir := scaffold(t, "")

	p, err := Locate(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Base(dir), p.Name)
}

func TestLocateMissingMarker(t *testing.T) {
	_, err := Locate(t.TempDir())
	require.Error(t, err)
	assert.Equal(t, apperr.CodeNotFound, apperr.CodeOf(err))
}

func TestLocateMarkerIsDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "artisan"), 0o755))

	_, err := Locate(dir)
	assert.Error(t, err)
}

func TestPaths(t *testing.T) {
	dir := scaffold(t, "")
	p, err := Locate(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, ".env"), p.EnvPath())
	assert.Equal(t, filepath.Join(dir, "bootstrap", "cache", "config.php"), p.CachePath("config.php"))
	assert.Equal(t, filepath.Join(dir, "app", "Events"), p.EventsDir())
}
