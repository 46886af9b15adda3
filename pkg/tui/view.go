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

import (
	"fmt"
	"strings"

	"github.com/carverauto/netscan/pkg/models"
)

const (
	panelChrome  = 4
	targetCursor = "_"
)

// View renders whatever the scanner state currently holds.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var content strings.Builder

	content.WriteString(m.styles.title.Render("Network Port Scanner"))
	content.WriteString("\n\n")
	content.WriteString(m.renderTarget())
	content.WriteString("\n")
	content.WriteString(m.renderResults())
	content.WriteString("\n")
	content.WriteString(m.renderStatus())
	content.WriteString("\n\n")
	content.WriteString(m.help.View(m.keys))

	return m.styles.app.Render(content.String())
}

func (m *Model) panelWidth() int {
	w := m.width - 2*appPadding - panelChrome
	if w < minPanelWidth {
		return minPanelWidth
	}

	return w
}

func (m *Model) renderTarget() string {
	body := m.styles.label.Render("Target") + "\n" +
		m.styles.target.Render(m.state.Target) + targetCursor

	return m.styles.panel.Width(m.panelWidth()).Render(body)
}

func (m *Model) renderResults() string {
	results := m.state.Results()
	selected, hasSelection := m.state.Selection()

	lines := make([]string, 0, len(results)+1)
	lines = append(lines, m.styles.label.Render("Scan Results"))

	if len(results) == 0 {
		lines = append(lines, m.styles.service.Render("No results"))
	}

	for i, r := range results {
		prefix := "  "

		rowStyle := m.styles.closed
		if r.Open {
			rowStyle = m.styles.open
		}

		if hasSelection && i == selected {
			prefix = "> "
			rowStyle = m.styles.selected
		}

		row := rowStyle.Render(fmt.Sprintf("Port %d: %s", r.Port, r.Status()))
		lines = append(lines, prefix+row+" "+m.styles.service.Render(models.ServiceName(r.Port)))
	}

	return m.styles.panel.Width(m.panelWidth()).Render(strings.Join(lines, "\n"))
}

func (m *Model) renderStatus() string {
	if m.scanning {
		return m.spinner.View() + " " + m.styles.status.Render(fmt.Sprintf("Scanning %s...", m.scanTarget))
	}

	results := m.state.Results()
	if len(results) > 0 {
		return m.styles.status.Render(fmt.Sprintf("%s: %d of %d ports open",
			results[0].Address, models.CountOpen(results), len(results)))
	}

	return m.styles.service.Render("Type a host or IP and press Enter to scan")
}
