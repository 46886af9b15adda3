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

package logger

import (
	"errors"
	"os"
	"strings"
)

var errInvalidLevel = errors.New("invalid log level")

// DefaultConfig reads logging settings from the environment. Output defaults
// to discard because the terminal UI owns stdout.
func DefaultConfig() *Config {
	return &Config{
		Level:      getEnvOrDefault("LOG_LEVEL", "info"),
		Debug:      getEnvBoolOrDefault("DEBUG", false),
		Output:     getEnvOrDefault("LOG_OUTPUT", OutputDiscard),
		TimeFormat: getEnvOrDefault("LOG_TIME_FORMAT", ""),
	}
}

// ApplyEnv overrides fields of c with any logging variables set in the environment.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Level = v
	}

	if v := os.Getenv("LOG_OUTPUT"); v != "" {
		c.Output = v
	}

	if v := os.Getenv("LOG_TIME_FORMAT"); v != "" {
		c.TimeFormat = v
	}

	if os.Getenv("DEBUG") != "" {
		c.Debug = getEnvBoolOrDefault("DEBUG", c.Debug)
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	value = strings.ToLower(value)

	return value == "true" || value == "1" || value == "yes" || value == "on"
}
