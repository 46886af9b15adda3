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
	"unicode/utf8"

	"github.com/carverauto/netscan/pkg/models"
)

// ScannerState holds the target being typed, the last completed result set
// and the selection cursor. It is owned by a single Model.
//
// Results always come from one completed scan and may be stale relative to
// Target while the user edits it.
type ScannerState struct {
	Target string

	results   []models.ScanResult
	selected  int
	hasCursor bool
}

func NewScannerState() *ScannerState {
	return &ScannerState{}
}

// AppendRunes adds typed characters to the end of the target.
func (s *ScannerState) AppendRunes(runes ...rune) {
	s.Target += string(runes)
}

// Backspace removes the last character of the target. It is a no-op on an
// empty target.
func (s *ScannerState) Backspace() {
	if s.Target == "" {
		return
	}

	_, size := utf8.DecodeLastRuneInString(s.Target)
	s.Target = s.Target[:len(s.Target)-size]
}

func (s *ScannerState) Results() []models.ScanResult {
	return s.results
}

// ReplaceResults swaps in the results of a completed scan and clears the selection.
func (s *ScannerState) ReplaceResults(results []models.ScanResult) {
	s.results = results
	s.selected = 0
	s.hasCursor = false
}

// Selection returns the selected index, if any.
func (s *ScannerState) Selection() (int, bool) {
	return s.selected, s.hasCursor
}

// SelectNext moves the cursor down, stopping at the last result. With no
// selection it selects the first result.
func (s *ScannerState) SelectNext() {
	if len(s.results) == 0 {
		return
	}

	switch {
	case !s.hasCursor:
		s.selected = 0
		s.hasCursor = true
	case s.selected < len(s.results)-1:
		s.selected++
	}
}

// SelectPrevious moves the cursor up, stopping at the first result. With no
// selection it selects the last result.
func (s *ScannerState) SelectPrevious() {
	if len(s.results) == 0 {
		return
	}

	switch {
	case !s.hasCursor:
		s.selected = len(s.results) - 1
		s.hasCursor = true
	case s.selected > 0:
		s.selected--
	}
}
