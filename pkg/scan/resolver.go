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
	"strings"
)

const (
	httpPrefix  = "http://"
	httpsPrefix = "https://"
)

// LookupFunc has the shape of (*net.Resolver).LookupNetIP.
type LookupFunc func(ctx context.Context, network, host string) ([]netip.Addr, error)

// NetResolver resolves targets through the system resolver. Results are not cached.
type NetResolver struct {
	lookup LookupFunc
}

var _ Resolver = (*NetResolver)(nil)

func NewNetResolver() *NetResolver {
	return NewNetResolverWithLookup(net.DefaultResolver.LookupNetIP)
}

// NewNetResolverWithLookup builds a resolver that uses lookup for hostnames.
func NewNetResolverWithLookup(lookup LookupFunc) *NetResolver {
	return &NetResolver{lookup: lookup}
}

// NormalizeTarget strips one leading http:// or https:// prefix and any
// surrounding whitespace from a target.
func NormalizeTarget(target string) string {
	clean := strings.TrimSpace(target)

	if rest, ok := strings.CutPrefix(clean, httpPrefix); ok {
		clean = rest
	} else if rest, ok := strings.CutPrefix(clean, httpsPrefix); ok {
		clean = rest
	}

	return strings.TrimSpace(clean)
}

// Resolve returns IP literals as-is without any lookup. Hostnames resolve to
// the first address the system resolver returns.
func (r *NetResolver) Resolve(ctx context.Context, target string) (netip.Addr, error) {
	host := NormalizeTarget(target)
	if host == "" {
		return netip.Addr{}, newResolutionError(target, errEmptyHost)
	}

	if addr, ok := parseLiteral(host); ok {
		return addr, nil
	}

	addrs, err := r.lookup(ctx, "ip", host)
	if err != nil {
		return netip.Addr{}, newResolutionError(target, err)
	}

	if len(addrs) == 0 {
		return netip.Addr{}, newResolutionError(target, errNoAddresses)
	}

	return addrs[0].Unmap(), nil
}

func parseLiteral(host string) (netip.Addr, bool) {
	if strings.HasPrefix(host, "[") && strings.HasSuffix(host, "]") {
		host = host[1 : len(host)-1]
	}

	addr, err := netip.ParseAddr(host)
	if err != nil {
		return netip.Addr{}, false
	}

	return addr, true
}
