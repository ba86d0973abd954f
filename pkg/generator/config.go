/*
Copyright © 2025 Laris Authors
SPDX-License-Identifier: Apache-2.0
*/

package generator

import (
	"encoding/json"
	"os"

	"github.com/larisphp/laris/pkg/apperr"
)

// DefaultConfigFile is the AI configuration file name, looked up in the
// project root.
const DefaultConfigFile = ".laris-ai.json"

// defaultMaxTokens bounds the completion size when the config leaves
// max_tokens unset.
const defaultMaxTokens = 2048

// providerBaseURLs maps known providers to their API roots. A config may
// override with an explicit base_url (self-hosted gateways, proxies).
var providerBaseURLs = map[string]string{
	"openai": "https://api.openai.com/v1",
}

// Config is the typed form of .laris-ai.json.
type Config struct {
	Provider  string `json:"provider"`
	APIKey    string `json:"api_key"`
	Model     string `json:"model"`
	MaxTokens int    `json:"max_tokens"`
	BaseURL   string `json:"base_url"`
}

// LoadConfig reads and validates the AI configuration at path. Missing
// file, malformed JSON, and invalid fields are all distinct errors so the
// user knows exactly what to fix.
func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperr.Newf(apperr.CodeNotFound,
				"AI config %s not found; create it with provider, api_key and model fields", path)
		}
		return nil, apperr.Wrap(apperr.CodeInternal, "failed to read AI config", err)
	}

	var cfg Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, apperr.Wrap(apperr.CodeInvalidInput, "malformed AI config "+path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks required fields and fills derivable defaults
// (base_url from the provider, max_tokens when unset).
func (c *Config) Validate() error {
	if c.Provider == "" {
		return apperr.New(apperr.CodeInvalidInput, "AI config: provider is required")
	}
	if c.APIKey == "" {
		return apperr.New(apperr.CodeInvalidInput, "AI config: api_key is required")
	}
	if c.Model == "" {
		return apperr.New(apperr.CodeInvalidInput, "AI config: model is required")
	}
	if c.MaxTokens < 0 {
		return apperr.Newf(apperr.CodeInvalidInput, "AI config: max_tokens must be positive, got %d", c.MaxTokens)
	}
	if c.MaxTokens == 0 {
		c.MaxTokens = defaultMaxTokens
	}
	if c.BaseURL == "" {
		base, ok := providerBaseURLs[c.Provider]
		if !ok {
			return apperr.Newf(apperr.CodeInvalidInput,
				"AI config: unknown provider %q and no base_url given", c.Provider)
		}
		c.BaseURL = base
	}
	return nil
}
