/*
Copyright © 2025 Laris Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"bufio"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/larisphp/laris/pkg/apperr"
	"github.com/larisphp/laris/pkg/generator"
	"github.com/larisphp/laris/pkg/llm"
	"github.com/larisphp/laris/pkg/project"
)

// newChatClient builds the completion client for a validated config.
// Replaced in tests.
var newChatClient = func(cfg *generator.Config) generator.ChatClient {
	return llm.NewClient(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.MaxTokens)
}

func makeEventCmd() *cli.Command {
	return &cli.Command{
		Name:                  "make-event",
		EnableShellCompletion: true,
		Usage:                 "Generate a Laravel event class with AI",
		ArgsUsage:             "[name]",
		Description: `Generate app/Events/<Name>.php by asking the configured AI provider
for an event class. The name is converted to StudlyCase ("order shipped"
becomes OrderShipped) and prompted for interactively when omitted.

Provider credentials live in ` + generator.DefaultConfigFile + ` in the project root:

  {
    "provider": "openai",
    "api_key": "sk-...",
    "model": "gpt-4o-mini"
  }

Optional fields: max_tokens and base_url (for self-hosted gateways).`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Overwrite the event class if it already exists",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "Path to the AI config file (default: " + generator.DefaultConfigFile + " in the project root)",
			},
		},
		Action: runMakeEvent,
	}
}

func runMakeEvent(ctx context.Context, cmd *cli.Command) error {
	p, err := project.Locate(cmd.String("dir"))
	if err != nil {
		return err
	}

	eventName := strings.TrimSpace(cmd.Args().First())
	if eventName == "" {
		if eventName, err = promptEventName(cmd); err != nil {
			return err
		}
	}

	cfgPath := cmd.String("config")
	if cfgPath == "" {
		cfgPath = filepath.Join(p.Root, generator.DefaultConfigFile)
	}
	cfg, err := generator.LoadConfig(cfgPath)
	if err != nil {
		return err
	}

	g := &generator.EventGenerator{
		Project: p,
		Client:  newChatClient(cfg),
	}
	path, err := g.Generate(ctx, eventName, cmd.Bool("force"))
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.Root().Writer, "Created %s\n", path)
	return nil
}

func promptEventName(cmd *cli.Command) (string, error) {
	fmt.Fprint(cmd.Root().Writer, "Event name: ")
	line, err := bufio.NewReader(cmd.Root().Reader).ReadString('\n')
	name := strings.TrimSpace(line)
	if name == "" {
		if err != nil {
			return "", apperr.Wrap(apperr.CodeInvalidInput, "no event name given", err)
		}
		return "", apperr.New(apperr.CodeInvalidInput, "no event name given")
	}
	return name, nil
}
