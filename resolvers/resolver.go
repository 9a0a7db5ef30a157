// Copyright © by Jeff Foley 2017-2024. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.
// SPDX-License-Identifier: Apache-2.0

package resolvers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"time"

	"github.com/caffix/stringset"
	"github.com/miekg/dns"
)

var (
	// ErrResolution is wrapped by every failure to resolve nameservers or addresses.
	ErrResolution = errors.New("DNS resolution failed")
	// ErrNoResolvers is returned when no resolver was configured.
	ErrNoResolvers = errors.New("no DNS resolvers were provided")
)

// Resolver sends the queries for nameservers and addresses, and attempts zone transfers.
type Resolver struct {
	servers []string
	port    int
	timeout time.Duration
	log     *slog.Logger
	udp     *dns.Client
	tcp     *dns.Client
}

// NewResolver returns a Resolver that queries the servers in the order provided.
// Each server address must be in host:port form.
func NewResolver(servers []string, port int, timeout time.Duration, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Resolver{
		servers: servers,
		port:    port,
		timeout: timeout,
		log:     logger,
		udp: &dns.Client{
			Net:     "udp",
			UDPSize: dns.DefaultMsgSize,
			Timeout: timeout,
		},
		tcp: &dns.Client{
			Net:     "tcp",
			Timeout: timeout,
		},
	}
}

// Query sends the message to the configured resolvers in order and returns the first response.
// Transport failures move on to the next resolver, while DNS responses of any rcode are final.
func (r *Resolver) Query(ctx context.Context, msg *dns.Msg) (*dns.Msg, error) {
	if len(r.servers) == 0 {
		return nil, ErrNoResolvers
	}

	var err error
	for _, server := range r.servers {
		if cerr := ctx.Err(); cerr != nil {
			return nil, cerr
		}

		var resp *dns.Msg
		resp, err = r.exchange(ctx, msg, server)
		if err == nil {
			return resp, nil
		}
		r.log.Debug("query failed", "resolver", server, "name", msg.Question[0].Name, "error", err)
	}
	return nil, err
}

func (r *Resolver) exchange(ctx context.Context, msg *dns.Msg, server string) (*dns.Msg, error) {
	qctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	resp, _, err := r.udp.ExchangeContext(qctx, msg, server)
	if err == nil && resp.Truncated {
		r.log.Debug("truncated response, retrying over TCP", "resolver", server)
		resp, _, err = r.tcp.ExchangeContext(qctx, msg, server)
	}
	if err != nil {
		return nil, fmt.Errorf("exchange with %s: %w", server, err)
	}
	return resp, nil
}

// NameServers returns the hostnames of the authoritative servers for the domain,
// in the order they were returned, without trailing dots.
func (r *Resolver) NameServers(ctx context.Context, domain string) ([]string, error) {
	resp, err := r.Query(ctx, QueryMsg(domain, dns.TypeNS))
	if err != nil {
		return nil, fmt.Errorf("%w: NS query for %s: %v", ErrResolution, domain, err)
	}
	if resp.Rcode != dns.RcodeSuccess {
		return nil, fmt.Errorf("%w: NS query for %s returned %s",
			ErrResolution, domain, dns.RcodeToString[resp.Rcode])
	}

	seen := stringset.New()
	defer seen.Close()

	var servers []string
	for _, rr := range ExtractAnswers(resp, dns.TypeNS) {
		name := RemoveLastDot(rr.(*dns.NS).Ns)
		if name == "" || seen.Has(name) {
			continue
		}
		seen.Insert(name)
		servers = append(servers, name)
	}

	if len(servers) == 0 {
		return nil, fmt.Errorf("%w: the answer for %s did not contain NS records", ErrResolution, domain)
	}
	r.log.Debug("nameservers resolved", "domain", domain, "servers", servers)
	return servers, nil
}

// Address returns the first IPv4 address of the host, or the first IPv6
// address when the host has no A records.
func (r *Resolver) Address(ctx context.Context, host string) (net.IP, error) {
	if ip := net.ParseIP(host); ip != nil {
		return ip, nil
	}

	var lastErr error
	for _, qtype := range []uint16{dns.TypeA, dns.TypeAAAA} {
		resp, err := r.Query(ctx, QueryMsg(host, qtype))
		if err != nil {
			lastErr = err
			continue
		}
		if resp.Rcode != dns.RcodeSuccess {
			lastErr = fmt.Errorf("%s query returned %s", dns.TypeToString[qtype], dns.RcodeToString[resp.Rcode])
			if resp.Rcode == dns.RcodeNameError {
				break
			}
			continue
		}

		for _, rr := range ExtractAnswers(resp, qtype) {
			switch v := rr.(type) {
			case *dns.A:
				return v.A, nil
			case *dns.AAAA:
				return v.AAAA, nil
			}
		}
		lastErr = fmt.Errorf("no %s records", dns.TypeToString[qtype])
	}
	return nil, fmt.Errorf("%w: address of %s: %v", ErrResolution, host, lastErr)
}
