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

// Package config loads netscan settings from an optional JSON file and the environment.
package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/carverauto/netscan/pkg/logger"
	"github.com/carverauto/netscan/pkg/scan"
)

var (
	errLoadConfigFailed = errors.New("failed to load configuration")
	errInvalidConfigPtr = errors.New("config must be a non-nil pointer")
	errMissingLogOutput = errors.New("logging output must not be empty")
)

// ConfigLoader reads configuration from some source into dst.
type ConfigLoader interface {
	Load(ctx context.Context, path string, dst *Config) error
}

// Config is the full netscan configuration.
type Config struct {
	Logging logger.Config `json:"logging"`
	Scan    scan.Config   `json:"scan"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Logging: *logger.DefaultConfig(),
	}
}

// Validate checks the loaded configuration.
func (c *Config) Validate() error {
	if c.Logging.Output == "" {
		return errMissingLogOutput
	}

	if _, err := c.Logging.ParseLevel(); err != nil {
		return err
	}

	return nil
}

// Load builds the configuration: defaults, then the JSON file at path when
// path is not empty, then environment overrides. The result is validated.
func Load(ctx context.Context, path string) (*Config, error) {
	cfg := Default()

	loaders := make([]sourcedLoader, 0, 2)
	if path != "" {
		loaders = append(loaders, sourcedLoader{name: "file", loader: &FileConfigLoader{}})
	}

	loaders = append(loaders, sourcedLoader{name: "env", loader: &EnvConfigLoader{}})

	for _, l := range loaders {
		if err := l.loader.Load(ctx, path, cfg); err != nil {
			return nil, fmt.Errorf("%w from %s: %w", errLoadConfigFailed, l.name, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errLoadConfigFailed, err)
	}

	return cfg, nil
}

type sourcedLoader struct {
	name   string
	loader ConfigLoader
}
