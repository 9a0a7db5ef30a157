// Copyright © by Jeff Foley 2017-2024. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"net"
	"strconv"
	"strings"

	"github.com/caffix/stringset"
	"github.com/miekg/dns"
)

// ResolvConfPath is the file consulted for the system resolvers.
var ResolvConfPath = "/etc/resolv.conf"

// DefaultBaselineResolvers is a list of trusted public DNS resolvers.
var DefaultBaselineResolvers = []string{
	"8.8.8.8",        // Google
	"1.1.1.1",        // Cloudflare
	"9.9.9.9",        // Quad9
	"208.67.222.222", // Cisco OpenDNS
	"84.200.69.80",   // DNS.WATCH
	"8.26.56.26",     // Comodo Secure DNS
	"64.6.64.6",      // Neustar DNS
	"76.76.19.19",    // Alternate DNS
	"77.88.8.1",      // Yandex.DNS
	"216.146.35.35",  // Dyn
}

// SystemResolvers returns the nameservers configured in the resolv.conf file at path.
func SystemResolvers(path string) []string {
	cc, err := dns.ClientConfigFromFile(path)
	if err != nil || len(cc.Servers) == 0 {
		return nil
	}

	var servers []string
	for _, s := range cc.Servers {
		servers = append(servers, net.JoinHostPort(s, cc.Port))
	}
	return servers
}

// SetResolvers assigns the resolver names provided in the parameter to the list in the configuration.
func (c *Config) SetResolvers(resolvers ...string) {
	c.Resolvers = []string{}

	c.AddResolvers(resolvers...)
}

// AddResolvers appends the resolver names provided in the parameter to the list in the configuration.
func (c *Config) AddResolvers(resolvers ...string) {
	for _, r := range resolvers {
		c.AddResolver(r)
	}
}

// AddResolver appends the resolver name provided in the parameter to the list in the configuration.
func (c *Config) AddResolver(resolver string) {
	// Check that the resolver string is not empty
	r := strings.TrimSpace(resolver)
	if r == "" {
		return
	}

	known := stringset.New(c.Resolvers...)
	defer known.Close()

	if addr := ResolverAddress(r); !known.Has(addr) {
		c.Resolvers = append(c.Resolvers, addr)
	}
}

// ResolverAddress returns the resolver in host:port form, using port 53 when none is provided.
func ResolverAddress(resolver string) string {
	if host, port, err := net.SplitHostPort(resolver); err == nil {
		return net.JoinHostPort(host, port)
	}

	host := strings.TrimSuffix(strings.TrimPrefix(resolver, "["), "]")
	return net.JoinHostPort(host, strconv.Itoa(DefaultPort))
}
