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
	"testing"

	"github.com/carverauto/netscan/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resultsFor(target string) []models.ScanResult {
	results := make([]models.ScanResult, 0, models.PortCount)
	for _, p := range models.WellKnownPorts() {
		results = append(results, models.NewScanResult(target, p, p == 80))
	}

	return results
}

func TestScannerState_Initial(t *testing.T) {
	s := NewScannerState()

	assert.Empty(t, s.Target)
	assert.Empty(t, s.Results())

	_, ok := s.Selection()
	assert.False(t, ok)
}

func TestScannerState_EditRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		initial string
		typed   string
	}{
		{name: "ascii", initial: "scanme.", typed: "example.org"},
		{name: "empty start", initial: "", typed: "10.0.0.1"},
		{name: "multibyte", initial: "héllo", typed: "wörld→"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScannerState()
			s.Target = tt.initial

			for _, r := range tt.typed {
				s.AppendRunes(r)
			}

			assert.Equal(t, tt.initial+tt.typed, s.Target)

			for range []rune(tt.typed) {
				s.Backspace()
			}

			assert.Equal(t, tt.initial, s.Target)
		})
	}
}

func TestScannerState_BackspaceOnEmpty(t *testing.T) {
	s := NewScannerState()
	s.Backspace()

	assert.Empty(t, s.Target)
}

func TestScannerState_SelectionClamps(t *testing.T) {
	s := NewScannerState()
	s.ReplaceResults(resultsFor("host"))

	n := len(s.Results())

	for i := 0; i < 3*n; i++ {
		s.SelectNext()

		idx, ok := s.Selection()
		require.True(t, ok)
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, n)
	}

	idx, _ := s.Selection()
	assert.Equal(t, n-1, idx)

	for i := 0; i < 3*n; i++ {
		s.SelectPrevious()

		idx, ok := s.Selection()
		require.True(t, ok)
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, n)
	}

	idx, _ = s.Selection()
	assert.Equal(t, 0, idx)
}

func TestScannerState_SelectFromNone(t *testing.T) {
	s := NewScannerState()
	s.ReplaceResults(resultsFor("host"))
	s.SelectNext()

	idx, ok := s.Selection()
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	s.ReplaceResults(resultsFor("host"))
	s.SelectPrevious()

	idx, ok = s.Selection()
	require.True(t, ok)
	assert.Equal(t, models.PortCount-1, idx)
}

func TestScannerState_SelectionIgnoredWithoutResults(t *testing.T) {
	s := NewScannerState()
	s.SelectNext()
	s.SelectPrevious()

	_, ok := s.Selection()
	assert.False(t, ok)
}

func TestScannerState_ReplaceResultsClearsSelection(t *testing.T) {
	s := NewScannerState()
	s.ReplaceResults(resultsFor("a"))
	s.SelectNext()
	s.SelectNext()

	s.ReplaceResults(resultsFor("b"))

	_, ok := s.Selection()
	assert.False(t, ok)
	assert.Equal(t, "b", s.Results()[0].Address)

	s.ReplaceResults(nil)

	_, ok = s.Selection()
	assert.False(t, ok)
	assert.Empty(t, s.Results())
}
