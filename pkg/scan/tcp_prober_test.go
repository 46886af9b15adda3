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
	"testing"
	"time"

	"github.com/carverauto/netscan/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listenLocal(t *testing.T) (net.Listener, uint16) {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}

			_ = conn.Close()
		}
	}()

	port := ln.Addr().(*net.TCPAddr).Port

	return ln, uint16(port) // #nosec G115 - listener ports fit in uint16
}

func TestTCPProber_Defaults(t *testing.T) {
	p := NewTCPProber(0, logger.NewTestLogger())

	assert.Equal(t, ProbeTimeout, p.timeout)
	assert.Equal(t, time.Second, ProbeTimeout)
}

func TestTCPProber_OpenPort(t *testing.T) {
	ln, port := listenLocal(t)
	defer func() { _ = ln.Close() }()

	p := NewTCPProber(ProbeTimeout, logger.NewTestLogger())

	assert.True(t, p.Probe(context.Background(), netip.MustParseAddr("127.0.0.1"), port))
}

func TestTCPProber_ClosedPort(t *testing.T) {
	ln, port := listenLocal(t)
	require.NoError(t, ln.Close())

	p := NewTCPProber(ProbeTimeout, logger.NewTestLogger())

	assert.False(t, p.Probe(context.Background(), netip.MustParseAddr("127.0.0.1"), port))
}

func TestTCPProber_CancelledContext(t *testing.T) {
	ln, port := listenLocal(t)
	defer func() { _ = ln.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewTCPProber(ProbeTimeout, logger.NewTestLogger())

	assert.False(t, p.Probe(ctx, netip.MustParseAddr("127.0.0.1"), port))
}

func TestTCPProber_UnreachableRespectsTimeout(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping network timeout test in short mode")
	}

	timeout := 200 * time.Millisecond
	p := NewTCPProber(timeout, logger.NewTestLogger())

	start := time.Now()
	open := p.Probe(context.Background(), netip.MustParseAddr("192.0.2.1"), 80)

	assert.False(t, open)
	assert.Less(t, time.Since(start), timeout+time.Second)
}
