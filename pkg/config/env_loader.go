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

package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
)

const envSequential = "NETSCAN_SEQUENTIAL"

// EnvConfigLoader applies environment variable overrides.
type EnvConfigLoader struct{}

// Load implements ConfigLoader. The path argument is ignored.
func (*EnvConfigLoader) Load(_ context.Context, _ string, dst *Config) error {
	if dst == nil {
		return errInvalidConfigPtr
	}

	dst.Logging.ApplyEnv()

	if v := os.Getenv(envSequential); v != "" {
		sequential, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", envSequential, v, err)
		}

		dst.Scan.Sequential = sequential
	}

	return nil
}
