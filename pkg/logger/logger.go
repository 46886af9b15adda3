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

// Package logger provides JSON structured logging using zerolog
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

const (
	OutputStdout  = "stdout"
	OutputStderr  = "stderr"
	OutputDiscard = "discard"

	logFilePerms = 0600
)

type Config struct {
	Level      string `json:"level" yaml:"level"`
	Debug      bool   `json:"debug" yaml:"debug"`
	Output     string `json:"output" yaml:"output"`
	TimeFormat string `json:"time_format" yaml:"time_format"`
}

// ParseLevel resolves the effective level for a config. Debug wins over Level.
func (c *Config) ParseLevel() (zerolog.Level, error) {
	if c.Debug {
		return zerolog.DebugLevel, nil
	}

	if c.Level == "" {
		return zerolog.InfoLevel, nil
	}

	level, err := zerolog.ParseLevel(c.Level)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("%w: %q", errInvalidLevel, c.Level)
	}

	return level, nil
}

// OpenOutput returns the writer for the configured output. Anything that is
// not a well-known name is treated as a file path and opened for append.
// The returned closer must be called on shutdown.
func (c *Config) OpenOutput() (io.Writer, io.Closer, error) {
	switch c.Output {
	case "", OutputDiscard:
		return io.Discard, nopCloser{}, nil
	case OutputStdout:
		return os.Stdout, nopCloser{}, nil
	case OutputStderr:
		return os.Stderr, nopCloser{}, nil
	}

	f, err := os.OpenFile(c.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerms)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %q: %w", c.Output, err)
	}

	return f, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New builds a zerolog logger from config. It does not touch any global state.
func New(config *Config) (zerolog.Logger, io.Closer, error) {
	level, err := config.ParseLevel()
	if err != nil {
		return zerolog.Nop(), nil, err
	}

	output, closer, err := config.OpenOutput()
	if err != nil {
		return zerolog.Nop(), nil, err
	}

	if config.TimeFormat != "" {
		zerolog.TimeFieldFormat = config.TimeFormat
	} else {
		zerolog.TimeFieldFormat = time.RFC3339
	}

	zlog := zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()

	return zlog, closer, nil
}
