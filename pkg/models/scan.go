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

package models

// ScanResult is the outcome of probing one port of a scanned target.
// Address is the target exactly as the user typed it, not the resolved IP.
type ScanResult struct {
	Address string `json:"address"`
	Port    uint16 `json:"port"`
	Open    bool   `json:"open"`
}

// NewScanResult builds a ScanResult.
func NewScanResult(address string, port uint16, open bool) ScanResult {
	return ScanResult{
		Address: address,
		Port:    port,
		Open:    open,
	}
}

// Status returns the display label for the probe outcome.
func (r ScanResult) Status() string {
	if r.Open {
		return "Open"
	}

	return "Closed"
}

// CountOpen returns how many results in the set are open.
func CountOpen(results []ScanResult) int {
	n := 0

	for _, r := range results {
		if r.Open {
			n++
		}
	}

	return n
}
