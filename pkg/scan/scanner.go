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
	"context"
	"net/netip"
	"time"

	"github.com/carverauto/netscan/pkg/logger"
	"github.com/carverauto/netscan/pkg/models"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Config selects how the fixed port list is probed.
type Config struct {
	// Sequential probes one port at a time. Worst case latency is then the
	// port count times ProbeTimeout instead of a single ProbeTimeout.
	Sequential bool `json:"sequential"`
}

// PortScanner resolves a target once and probes every well-known port on it.
type PortScanner struct {
	resolver   Resolver
	prober     Prober
	sequential bool
	logger     zerolog.Logger
}

// NewPortScanner wires a scanner. A nil resolver or prober selects the
// system resolver and a TCPProber with ProbeTimeout.
func NewPortScanner(cfg Config, resolver Resolver, prober Prober, log logger.Logger) *PortScanner {
	if resolver == nil {
		resolver = NewNetResolver()
	}

	if prober == nil {
		prober = NewTCPProber(ProbeTimeout, log)
	}

	return &PortScanner{
		resolver:   resolver,
		prober:     prober,
		sequential: cfg.Sequential,
		logger:     log.WithComponent("scan"),
	}
}

// Scan probes every port of models.WellKnownPorts on target and returns one
// result per port in list order. An empty target returns ErrEmptyTarget and
// does no work. A target that does not resolve is logged and yields an empty
// result set with a nil error.
func (s *PortScanner) Scan(ctx context.Context, target string) ([]models.ScanResult, error) {
	if target == "" {
		return nil, ErrEmptyTarget
	}

	start := time.Now()

	addr, err := s.resolver.Resolve(ctx, target)
	if err != nil {
		s.logger.Warn().Err(err).Str("target", target).Msg("Target resolution failed, returning no results")

		return []models.ScanResult{}, nil
	}

	var open [models.PortCount]bool
	if s.sequential {
		open = s.probeSequential(ctx, addr)
	} else {
		open = s.probeConcurrent(ctx, addr)
	}

	results := make([]models.ScanResult, models.PortCount)
	for i := range results {
		results[i] = models.NewScanResult(target, models.PortAt(i), open[i])
	}

	s.logger.Info().
		Str("target", target).
		Str("addr", addr.String()).
		Int("open", models.CountOpen(results)).
		Dur("elapsed", time.Since(start)).
		Msg("Scan complete")

	return results, nil
}

func (s *PortScanner) probeSequential(ctx context.Context, addr netip.Addr) [models.PortCount]bool {
	var open [models.PortCount]bool

	for i := range open {
		open[i] = s.prober.Probe(ctx, addr, models.PortAt(i))
	}

	return open
}

// probeConcurrent runs every probe at once. Each goroutine writes only its
// own index, so output order follows the port list, not completion order.
func (s *PortScanner) probeConcurrent(ctx context.Context, addr netip.Addr) [models.PortCount]bool {
	var open [models.PortCount]bool

	var g errgroup.Group

	g.SetLimit(models.PortCount)

	for i := range open {
		g.Go(func() error {
			open[i] = s.prober.Probe(ctx, addr, models.PortAt(i))

			return nil
		})
	}

	_ = g.Wait()

	return open
}
