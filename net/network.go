// Copyright © by Jeff Foley 2017-2024. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.
// SPDX-License-Identifier: Apache-2.0

package net

import (
	"net"
	"strings"
	"sync"

	"github.com/yl2chen/cidranger"
)

// ReservedCIDRDescription is the description used for reserved address ranges.
const ReservedCIDRDescription = "Reserved Network Address Blocks"

// ReservedCIDRs includes all the networks that are reserved for special use.
var ReservedCIDRs = []string{
	"192.168.0.0/16",
	"172.16.0.0/12",
	"10.0.0.0/8",
	"127.0.0.0/8",
	"224.0.0.0/4",
	"240.0.0.0/4",
	"100.64.0.0/10",
	"198.18.0.0/15",
	"169.254.0.0/16",
	"192.88.99.0/24",
	"192.0.0.0/24",
	"192.0.2.0/24",
	"192.94.77.0/24",
	"192.94.78.0/24",
	"192.52.193.0/24",
	"192.12.109.0/24",
	"192.31.196.0/24",
	"192.0.0.0/29",
	"0.0.0.0/8",
	"::1/128",
	"fc00::/7",
	"fe80::/10",
	"2001:db8::/32",
}

var (
	reservedOnce   sync.Once
	reservedRanger cidranger.Ranger
)

func reserved() cidranger.Ranger {
	reservedOnce.Do(func() {
		reservedRanger = cidranger.NewPCTrieRanger()

		for _, cidr := range ReservedCIDRs {
			if _, ipnet, err := net.ParseCIDR(cidr); err == nil {
				_ = reservedRanger.Insert(cidranger.NewBasicRangerEntry(*ipnet))
			}
		}
	})
	return reservedRanger
}

// IsIPv4 returns true when the provided net.IP address is an IPv4 address.
func IsIPv4(ip net.IP) bool {
	return ip != nil && strings.Count(ip.String(), ":") < 2
}

// IsIPv6 returns true when the provided net.IP address is an IPv6 address.
func IsIPv6(ip net.IP) bool {
	return ip != nil && strings.Count(ip.String(), ":") >= 2
}

// IsReservedAddress checks if the addr falls within one of the reserved CIDR
// ranges, and returns the most specific of the matching networks.
func IsReservedAddress(addr string) (bool, string) {
	ip := net.ParseIP(addr)
	if ip == nil {
		return false, ""
	}

	entries, err := reserved().ContainingNetworks(ip)
	if err != nil || len(entries) == 0 {
		return false, ""
	}

	network := entries[len(entries)-1].Network()
	return true, network.String()
}
