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

// Package models provides data models for the port scanner.
package models

// PortCount is the number of ports probed by every scan.
const PortCount = 13

// wellKnownPorts is the fixed scan order. It is also the display order.
var wellKnownPorts = [PortCount]uint16{21, 22, 23, 25, 53, 80, 110, 143, 443, 3000, 5000, 8000, 8080}

var serviceNames = map[uint16]string{
	21:   "ftp",
	22:   "ssh",
	23:   "telnet",
	25:   "smtp",
	53:   "dns",
	80:   "http",
	110:  "pop3",
	143:  "imap",
	443:  "https",
	3000: "dev-http",
	5000: "upnp",
	8000: "http-alt",
	8080: "http-proxy",
}

// WellKnownPorts returns a copy of the fixed port list in scan order.
func WellKnownPorts() []uint16 {
	ports := wellKnownPorts

	return ports[:]
}

// PortAt returns the port at index i of the fixed port list.
func PortAt(i int) uint16 {
	return wellKnownPorts[i]
}

// ServiceName returns the conventional service label for a well-known port,
// or an empty string for ports outside the list. It is a display hint only.
func ServiceName(port uint16) string {
	return serviceNames[port]
}
