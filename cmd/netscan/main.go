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

// Package main is the entry point for the netscan interactive port scanner.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/carverauto/netscan/pkg/config"
	"github.com/carverauto/netscan/pkg/lifecycle"
)

const usage = `netscan: interactive TCP port scanner

Usage:
  netscan [options]

Options:
  -config string   path to a JSON config file (optional)
  -help            show this help message

Keys:
  type a host, IP or URL, Enter to scan, Up/Down to browse, Esc to exit

Environment:
  LOG_LEVEL, LOG_OUTPUT (discard|stdout|stderr|<file>), DEBUG,
  LOG_TIME_FORMAT, NETSCAN_SEQUENTIAL
`

func main() {
	configPath := flag.String("config", "", "path to JSON config file")
	help := flag.Bool("help", false, "show help message")
	flag.Parse()

	if *help {
		fmt.Print(usage)
		os.Exit(0)
	}

	ctx := context.Background()

	cfg, err := config.Load(ctx, *configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := lifecycle.Run(ctx, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
