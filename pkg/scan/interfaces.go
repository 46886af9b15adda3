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

//go:generate mockgen -destination=mock_scan.go -package=scan github.com/carverauto/netscan/pkg/scan Resolver,Prober

package scan

import (
	"context"
	"net/netip"
)

// Resolver turns a user-typed target into a single network address.
type Resolver interface {
	Resolve(ctx context.Context, target string) (netip.Addr, error)
}

// Prober reports whether a TCP port accepts connections.
type Prober interface {
	Probe(ctx context.Context, addr netip.Addr, port uint16) bool
}
