/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package lifecycle wires configuration, logging and the terminal UI together.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/carverauto/netscan/pkg/config"
	"github.com/carverauto/netscan/pkg/scan"
	"github.com/carverauto/netscan/pkg/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

var (
	errNotTerminal = errors.New("stdin is not a terminal")
	errUIFailed    = errors.New("terminal UI failed")
)

// Run starts the interactive scanner on the process terminal and blocks
// until the user exits.
func Run(ctx context.Context, cfg *config.Config) error {
	return run(ctx, cfg, os.Stdin)
}

func run(ctx context.Context, cfg *config.Config, in *os.File) error {
	if !isTerminal(in) {
		return errNotTerminal
	}

	log, closer, err := CreateLogger(&cfg.Logging)
	if err != nil {
		return err
	}

	defer func() {
		if err := closer.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to close log output: %v\n", err)
		}
	}()

	log.Info().Bool("sequential", cfg.Scan.Sequential).Msg("Starting netscan")
	log.Debug().Str("level", cfg.Logging.Level).Str("output", cfg.Logging.Output).Msg("Logging configured")

	scanner := scan.NewPortScanner(cfg.Scan, nil, nil, log)

	p := tea.NewProgram(
		tui.NewModel(scanner, log),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(in),
	)

	if _, err := p.Run(); err != nil {
		log.Error().Err(err).Msg("Terminal UI exited with error")

		return fmt.Errorf("%w: %w", errUIFailed, err)
	}

	log.Info().Msg("netscan exited")

	return nil
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
