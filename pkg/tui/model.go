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

// Package tui implements the interactive scanner screen as a bubbletea model.
package tui

import (
	"context"
	"errors"

	"github.com/carverauto/netscan/pkg/logger"
	"github.com/carverauto/netscan/pkg/models"
	"github.com/carverauto/netscan/pkg/scan"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

// Scanner runs one full scan of a target.
type Scanner interface {
	Scan(ctx context.Context, target string) ([]models.ScanResult, error)
}

// scanDoneMsg carries the outcome of a scan back into the update loop.
type scanDoneMsg struct {
	target  string
	results []models.ScanResult
	err     error
}

// Model drives the scanner screen. Only one scan is ever in flight: key
// events that arrive while scanning are queued and replayed in order once
// the scan completes, as if the loop had been blocked inside the scan.
type Model struct {
	state   *ScannerState
	scanner Scanner
	logger  zerolog.Logger

	keys    keyMap
	help    help.Model
	spinner spinner.Model
	styles  styles

	scanning   bool
	scanTarget string
	pending    []tea.KeyMsg
	quitting   bool
	width      int
}

func NewModel(scanner Scanner, log logger.Logger) *Model {
	st := newStyles()

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = st.spinner

	return &Model{
		state:   NewScannerState(),
		scanner: scanner,
		logger:  log.WithComponent("tui"),
		keys:    defaultKeyMap(),
		help:    help.New(),
		spinner: sp,
		styles:  st,
	}
}

// State exposes the scanner state for rendering and inspection.
func (m *Model) State() *ScannerState {
	return m.state
}

// Scanning reports whether a scan is in flight.
func (m *Model) Scanning() bool {
	return m.scanning
}

func (*Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.quitting {
			return m, nil
		}

		if m.scanning {
			m.pending = append(m.pending, msg)

			return m, nil
		}

		return m, m.handleKeyMsg(msg)
	case scanDoneMsg:
		return m, m.finishScan(msg)
	case spinner.TickMsg:
		if !m.scanning {
			return m, nil
		}

		var cmd tea.Cmd

		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	}

	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	// Typed characters are checked first so that a rune run can never be
	// mistaken for a named key binding.
	//nolint:exhaustive // Default case handles all unlisted keys
	switch msg.Type {
	case tea.KeyRunes:
		m.state.AppendRunes(msg.Runes...)

		return nil
	case tea.KeySpace:
		m.state.AppendRunes(' ')

		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Scan):
		return m.startScan()
	case key.Matches(msg, m.keys.Delete):
		m.state.Backspace()
	case key.Matches(msg, m.keys.Up):
		m.state.SelectPrevious()
	case key.Matches(msg, m.keys.Down):
		m.state.SelectNext()
	}

	return nil
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true
	m.pending = nil

	return tea.Quit
}

func (m *Model) startScan() tea.Cmd {
	target := m.state.Target

	m.scanning = true
	m.scanTarget = target

	m.logger.Debug().Str("target", target).Msg("Starting scan")

	return tea.Batch(m.spinner.Tick, m.scanCmd(target))
}

func (m *Model) scanCmd(target string) tea.Cmd {
	scanner := m.scanner

	return func() tea.Msg {
		results, err := scanner.Scan(context.Background(), target)

		return scanDoneMsg{
			target:  target,
			results: results,
			err:     err,
		}
	}
}

func (m *Model) finishScan(msg scanDoneMsg) tea.Cmd {
	m.scanning = false
	m.scanTarget = ""

	switch {
	case errors.Is(msg.err, scan.ErrEmptyTarget):
		// nothing was scanned, keep the previous results
	case msg.err != nil:
		m.logger.Error().Err(msg.err).Str("target", msg.target).Msg("Scan failed")
		m.state.ReplaceResults(nil)
	default:
		m.state.ReplaceResults(msg.results)
	}

	return m.replayPending()
}

// replayPending applies queued keys until one of them starts another scan
// or quits. Keys after that point stay queued.
func (m *Model) replayPending() tea.Cmd {
	for len(m.pending) > 0 {
		next := m.pending[0]
		m.pending = m.pending[1:]

		if cmd := m.handleKeyMsg(next); cmd != nil {
			return cmd
		}
	}

	m.pending = nil

	return nil
}
