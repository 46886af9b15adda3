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
	"net"
	"net/netip"
	"time"

	"github.com/carverauto/netscan/pkg/logger"
	"github.com/rs/zerolog"
)

// ProbeTimeout bounds every single TCP connect attempt.
const ProbeTimeout = time.Second

// TCPProber checks ports with a plain TCP connect. Refused, unreachable and
// timed out all count as closed.
type TCPProber struct {
	timeout time.Duration
	dialer  net.Dialer
	logger  zerolog.Logger
}

var _ Prober = (*TCPProber)(nil)

func NewTCPProber(timeout time.Duration, log logger.Logger) *TCPProber {
	if timeout == 0 {
		timeout = ProbeTimeout
	}

	return &TCPProber{
		timeout: timeout,
		logger:  log.WithComponent("tcp_prober"),
	}
}

func (p *TCPProber) Probe(ctx context.Context, addr netip.Addr, port uint16) bool {
	probeCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	start := time.Now()

	conn, err := p.dialer.DialContext(probeCtx, "tcp", netip.AddrPortFrom(addr, port).String())
	if err != nil {
		p.logger.Debug().
			Err(err).
			Str("addr", addr.String()).
			Uint16("port", port).
			Dur("elapsed", time.Since(start)).
			Msg("port closed")

		return false
	}

	if err := conn.Close(); err != nil {
		p.logger.Error().Err(err).Msg("failed to close connection")
	}

	return true
}
