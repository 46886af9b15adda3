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

package tui

import "github.com/charmbracelet/lipgloss"

// Dracula theme colors.
const (
	draculaForeground = "#F8F8F2"
	draculaCyan       = "#8BE9FD"
	draculaGreen      = "#50FA7B"
	draculaOrange     = "#FFB86C"
	draculaPink       = "#FF79C6"
	draculaPurple     = "#BD93F9"
	draculaRed        = "#FF5555"
	draculaYellow     = "#F1FA8C"
	draculaComment    = "#6272A4"
)

const (
	appPadding    = 2
	minPanelWidth = 40
)

type styles struct {
	title    lipgloss.Style
	label    lipgloss.Style
	target   lipgloss.Style
	panel    lipgloss.Style
	open     lipgloss.Style
	closed   lipgloss.Style
	selected lipgloss.Style
	service  lipgloss.Style
	status   lipgloss.Style
	spinner  lipgloss.Style
	app      lipgloss.Style
}

func newStyles() styles {
	return styles{
		title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaCyan)).
			Bold(true),
		label: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaPurple)),
		target: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaYellow)).
			Bold(true),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(draculaPurple)).
			Padding(0, 1),
		open: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaGreen)),
		closed: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaRed)),
		selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaCyan)).
			Bold(true),
		service: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaComment)),
		status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaOrange)),
		spinner: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaPink)),
		app: lipgloss.NewStyle().
			Padding(1, appPadding).
			Foreground(lipgloss.Color(draculaForeground)),
	}
}
