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

package scan

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTarget is returned by Scan when there is no target to scan.
	ErrEmptyTarget = errors.New("empty scan target")

	errNoAddresses = errors.New("no IP addresses found")
	errEmptyHost   = errors.New("empty host")
)

// ResolutionError reports that a target could not be turned into an address.
type ResolutionError struct {
	Target string
	Cause  string
	err    error
}

func newResolutionError(target string, err error) *ResolutionError {
	return &ResolutionError{
		Target: target,
		Cause:  err.Error(),
		err:    err,
	}
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("failed to resolve %q: %s", e.Target, e.Cause)
}

func (e *ResolutionError) Unwrap() error {
	return e.err
}
