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
	"errors"
	"net/netip"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func failingLookup(t *testing.T) LookupFunc {
	t.Helper()

	return func(_ context.Context, _, host string) ([]netip.Addr, error) {
		t.Fatalf("unexpected DNS lookup for %q", host)

		return nil, nil
	}
}

func TestNormalizeTarget(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "example.com", want: "example.com"},
		{in: "http://example.com", want: "example.com"},
		{in: "https://example.com", want: "example.com"},
		{in: "  https://example.com  ", want: "example.com"},
		{in: "http:// 10.0.0.1 ", want: "10.0.0.1"},
		{in: "http://https://example.com", want: "https://example.com"},
		{in: "ftp://example.com", want: "ftp://example.com"},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTarget(tt.in))
		})
	}
}

func TestNetResolver_LiteralsSkipLookup(t *testing.T) {
	r := NewNetResolverWithLookup(failingLookup(t))

	tests := []struct {
		target string
		want   string
	}{
		{target: "192.0.2.1", want: "192.0.2.1"},
		{target: "https://192.0.2.1", want: "192.0.2.1"},
		{target: "http://198.51.100.7", want: "198.51.100.7"},
		{target: " 203.0.113.9 ", want: "203.0.113.9"},
		{target: "::1", want: "::1"},
		{target: "https://2001:db8::1", want: "2001:db8::1"},
		{target: "[2001:db8::2]", want: "2001:db8::2"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			addr, err := r.Resolve(context.Background(), tt.target)
			require.NoError(t, err)
			assert.Equal(t, netip.MustParseAddr(tt.want), addr)
		})
	}
}

func TestNetResolver_HostnameUsesFirstAddress(t *testing.T) {
	var lookedUp []string

	r := NewNetResolverWithLookup(func(_ context.Context, network, host string) ([]netip.Addr, error) {
		assert.Equal(t, "ip", network)

		lookedUp = append(lookedUp, host)

		return []netip.Addr{
			netip.MustParseAddr("::ffff:192.0.2.10"),
			netip.MustParseAddr("192.0.2.11"),
		}, nil
	})

	addr, err := r.Resolve(context.Background(), "https://scanme.example ")
	require.NoError(t, err)
	assert.Equal(t, netip.MustParseAddr("192.0.2.10"), addr)

	// no caching: a second call performs a second lookup
	_, err = r.Resolve(context.Background(), "scanme.example")
	require.NoError(t, err)
	assert.Equal(t, []string{"scanme.example", "scanme.example"}, lookedUp)
}

func TestNetResolver_Failures(t *testing.T) {
	errLookup := errors.New("server misbehaving")

	tests := []struct {
		name      string
		target    string
		lookup    LookupFunc
		wantErr   error
		wantCause string
	}{
		{
			name:   "lookup error",
			target: "broken.example",
			lookup: func(context.Context, string, string) ([]netip.Addr, error) {
				return nil, errLookup
			},
			wantErr:   errLookup,
			wantCause: "server misbehaving",
		},
		{
			name:   "no addresses",
			target: "empty.example",
			lookup: func(context.Context, string, string) ([]netip.Addr, error) {
				return nil, nil
			},
			wantErr:   errNoAddresses,
			wantCause: "no IP addresses found",
		},
		{
			name:      "scheme only",
			target:    "https://",
			lookup:    failingLookup(t),
			wantErr:   errEmptyHost,
			wantCause: "empty host",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewNetResolverWithLookup(tt.lookup)

			_, err := r.Resolve(context.Background(), tt.target)
			require.Error(t, err)
			require.ErrorIs(t, err, tt.wantErr)

			var resErr *ResolutionError
			require.ErrorAs(t, err, &resErr)
			assert.Equal(t, tt.target, resErr.Target)
			assert.Equal(t, tt.wantCause, resErr.Cause)
			assert.Contains(t, resErr.Error(), tt.wantCause)
		})
	}
}

func TestNetResolver_InvalidHostname(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := NewNetResolver().Resolve(ctx, "this-host-does-not-exist.invalid")
	require.Error(t, err)

	var resErr *ResolutionError
	require.ErrorAs(t, err, &resErr)
	assert.NotEmpty(t, resErr.Cause)
}
