/*
Copyright © 2025 Laris Authors
SPDX-License-Identifier: Apache-2.0
*/

package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/larisphp/laris/pkg/apperr"
)

// MarkerFile is the sentinel whose presence identifies a Laravel
// application root.
const MarkerFile = "artisan"

// Project describes a located application root.
type Project struct {
	// Root is the absolute path of the application root.
	Root string

	// Name is the package name from composer.json, or the directory base
	// name when composer.json is absent or unreadable.
	Name string
}

// Locate validates that dir is a Laravel application root. It returns a
// NOT_FOUND error when the artisan marker file is missing.
func Locate(dir string) (*Project, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInvalidInput, "invalid project directory", err)
	}

	marker := filepath.Join(abs, MarkerFile)
	if info, err := os.Stat(marker); err != nil || info.IsDir() {
		return nil, apperr.Newf(apperr.CodeNotFound,
			"no %s file in %s; run laris from a Laravel application root", MarkerFile, abs)
	}

	return &Project{
		Root: abs,
		Name: projectName(abs),
	}, nil
}

// EnvPath returns the path of the project's .env file.
func (p *Project) EnvPath() string {
	return filepath.Join(p.Root, ".env")
}

// CachePath returns a path under bootstrap/cache, where Laravel stores
// its config/route/event cache artifacts.
func (p *Project) CachePath(name string) string {
	return filepath.Join(p.Root, "bootstrap", "cache", name)
}

// EventsDir returns the directory where generated event classes live.
func (p *Project) EventsDir() string {
	return filepath.Join(p.Root, "app", "Events")
}

func projectName(root string) string {
	raw, err := os.ReadFile(filepath.Join(root, "composer.json"))
	if err != nil {
		return filepath.Base(root)
	}

	var composer struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &composer); err != nil || composer.Name == "" {
		return filepath.Base(root)
	}
	return composer.Name
}
