/*
Copyright © 2025 Laris Authors
SPDX-License-Identifier: Apache-2.0
*/

package generator

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/larisphp/laris/pkg/apperr"
	"github.com/larisphp/laris/pkg/llm"
	"github.com/larisphp/laris/pkg/project"
)

const systemPrompt = "You are an expert Laravel developer. " +
	"You write clean, modern PHP following Laravel conventions. " +
	"Respond with PHP source code only, no explanations."

// ChatClient is the completion dependency; satisfied by *llm.Client.
type ChatClient interface {
	Chat(ctx context.Context, messages []llm.Message) (string, error)
}

// EventGenerator writes AI-generated event classes into app/Events.
type EventGenerator struct {
	Project *project.Project
	Client  ChatClient
}

// Generate creates app/Events/<Name>.php for the given event name and
// returns the written path. Existing files are preserved unless force is
// set.
func (g *EventGenerator) Generate(ctx context.Context, name string, force bool) (string, error) {
	class, err := StudlyCase(name)
	if err != nil {
		return "", err
	}

	path := filepath.Join(g.Project.EventsDir(), class+".php")
	if _, err := os.Stat(path); err == nil && !force {
		return "", apperr.Newf(apperr.CodeInvalidInput,
			"%s already exists; pass --force to overwrite", path)
	}

	slog.Debug("generating event class", slog.String("class", class))

	out, err := g.Client.Chat(ctx, []llm.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: eventPrompt(class)},
	})
	if err != nil {
		return "", err
	}

	source := SanitizeSource(out)
	if source == "" {
		return "", apperr.New(apperr.CodeInternal, "provider returned an empty completion")
	}

	if err := os.MkdirAll(g.Project.EventsDir(), 0o755); err != nil {
		return "", apperr.Wrap(apperr.CodeInternal, "failed to create app/Events", err)
	}
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		return "", apperr.Wrap(apperr.CodeInternal, "failed to write "+path, err)
	}

	return path, nil
}

func eventPrompt(class string) string {
	return fmt.Sprintf("Generate a Laravel event class named %s in the App\\Events namespace. "+
		"Use the Dispatchable, InteractsWithSockets and SerializesModels traits. "+
		"Include a constructor with promoted public properties relevant to an event called %s.",
		class, class)
}

// StudlyCase converts a free-form event name ("order shipped",
// "order_shipped") to a PHP class name ("OrderShipped"). Characters that
// cannot appear in a class name are dropped.
func StudlyCase(name string) (string, error) {
	var b strings.Builder
	upper := true
	for _, r := range name {
		switch {
		case r == ' ' || r == '-' || r == '_' || r == '.':
			upper = true
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if upper {
				r = unicode.ToUpper(r)
				upper = false
			}
			b.WriteRune(r)
		}
	}

	class := b.String()
	if class == "" {
		return "", apperr.New(apperr.CodeInvalidInput, "event name is empty")
	}
	if unicode.IsDigit(rune(class[0])) {
		return "", apperr.Newf(apperr.CodeInvalidInput, "event name %q cannot start with a digit", name)
	}
	return class, nil
}

// SanitizeSource strips the markdown fences chat models wrap code in and
// guarantees the result is a PHP file.
func SanitizeSource(out string) string {
	s := strings.TrimSpace(out)
	if strings.HasPrefix(s, "```") {
		if idx := strings.IndexByte(s, '\n'); idx >= 0 {
			s = s[idx+1:]
		} else {
			s = ""
		}
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}
	if s == "" {
		return ""
	}
	if !strings.HasPrefix(s, "<?php") {
		s = "<?php\n\n" + s
	}
	return s + "\n"
}
