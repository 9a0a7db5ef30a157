// Copyright © by Jeff Foley 2017-2024. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.
// SPDX-License-Identifier: Apache-2.0

package resolvers

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"

	"github.com/miekg/dns"
	"github.com/owasp-amass/zonetransfer/zone"
)

// ErrTransferDenied is wrapped by every zone transfer that did not produce a valid zone.
var ErrTransferDenied = errors.New("zone transfer denied")

// ZoneTransfer attempts a DNS zone transfer for the domain using the server at addr.
// The returned zone contains all the records received from the server.
func (r *Resolver) ZoneTransfer(ctx context.Context, addr net.IP, domain string) (*zone.Zone, error) {
	server := net.JoinHostPort(addr.String(), strconv.Itoa(r.port))

	// Set the maximum time allowed for making the connection
	dctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var d net.Dialer
	conn, err := d.DialContext(dctx, "tcp", server)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to obtain TCP connection to %s: %v", ErrTransferDenied, server, err)
	}
	defer conn.Close()

	// Unblock the transfer reads when the run is cancelled
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	xfr := &dns.Transfer{
		Conn:         &dns.Conn{Conn: conn},
		DialTimeout:  r.timeout,
		ReadTimeout:  r.timeout,
		WriteTimeout: r.timeout,
	}

	in, err := xfr.In(AXFRMsg(domain), "")
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTransferDenied, server, err)
	}

	z := zone.New(domain)
	var xerr error
	for en := range in {
		if en.Error != nil {
			if xerr == nil {
				xerr = en.Error
			}
			continue
		}
		for _, rr := range en.RR {
			z.Add(rr)
		}
	}

	if xerr != nil {
		if cerr := ctx.Err(); cerr != nil {
			xerr = cerr
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrTransferDenied, server, xerr)
	}
	if err := z.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTransferDenied, server, err)
	}

	r.log.Debug("zone transfer completed", "server", server, "domain", domain, "records", z.Len())
	return z, nil
}
