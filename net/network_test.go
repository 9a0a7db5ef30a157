// Copyright © by Jeff Foley 2017-2024. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.
// SPDX-License-Identifier: Apache-2.0

package net

import (
	"net"
	"testing"
)

func TestIsIPv4(t *testing.T) {
	tests := []struct {
		Address  string
		Expected bool
	}{
		{"72.237.4.0", true},
		{"192.168.1.0", true},
		{"0.0.0.0", true},
		{"2620:0:860:2::", false},
		{"2620:0:860:2:ffff:ffff:ffff:ffff", false},
		{"not-an-address", false},
	}

	for _, test := range tests {
		if b := IsIPv4(net.ParseIP(test.Address)); b != test.Expected {
			t.Errorf("Failed on IP address %s", test.Address)
		}
	}
}

func TestIsIPv6(t *testing.T) {
	tests := []struct {
		Address  string
		Expected bool
	}{
		{"72.237.4.0", false},
		{"192.168.1.0", false},
		{"0.0.0.0", false},
		{"2620:0:860:2::", true},
		{"2620:0:860:2:ffff:ffff:ffff:ffff", true},
		{"not-an-address", false},
	}

	for _, test := range tests {
		if b := IsIPv6(net.ParseIP(test.Address)); b != test.Expected {
			t.Errorf("Failed on IP address %s", test.Address)
		}
	}
}

func TestIsReservedAddress(t *testing.T) {
	tests := []struct {
		Address  string
		Expected bool
		CIDR     string
	}{
		{"10.1.2.3", true, "10.0.0.0/8"},
		{"192.168.100.1", true, "192.168.0.0/16"},
		{"127.0.0.1", true, "127.0.0.0/8"},
		{"192.0.0.5", true, "192.0.0.0/29"},
		{"fd00::1", true, "fc00::/7"},
		{"8.8.8.8", false, ""},
		{"2620:0:860:2::", false, ""},
		{"www", false, ""},
	}

	for _, test := range tests {
		yes, cidr := IsReservedAddress(test.Address)
		if yes != test.Expected {
			t.Errorf("Failed on IP address %s", test.Address)
		}
		if cidr != test.CIDR {
			t.Errorf("IP address %s: expected %s, got %s", test.Address, test.CIDR, cidr)
		}
	}
}
