// Copyright © by Jeff Foley 2017-2024. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.
// SPDX-License-Identifier: Apache-2.0

package enum

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"

	"github.com/fatih/color"
	"github.com/owasp-amass/zonetransfer/config"
	"github.com/owasp-amass/zonetransfer/format"
	"github.com/owasp-amass/zonetransfer/output"
	"github.com/owasp-amass/zonetransfer/zone"
)

var (
	// ErrNoNameServers is returned when the nameservers of the domain could not be resolved.
	ErrNoNameServers = errors.New("failed to obtain the nameservers")
	// ErrTransferRefused is returned when none of the nameservers allowed the zone transfer.
	ErrTransferRefused = errors.New("no nameserver allowed the zone transfer")
)

var (
	green  = color.New(color.FgHiGreen)
	yellow = color.New(color.FgHiYellow)
	red    = color.New(color.FgHiRed)
)

// Client performs the DNS operations required by the enumeration.
type Client interface {
	NameServers(ctx context.Context, domain string) ([]string, error)
	Address(ctx context.Context, host string) (net.IP, error)
	ZoneTransfer(ctx context.Context, addr net.IP, domain string) (*zone.Zone, error)
}

// Attempt is the outcome for a single nameserver.
type Attempt struct {
	NameServer  string
	Address     net.IP
	ResolveErr  error
	TransferErr error
	Permitted   bool
}

// Result is the outcome of the enumeration.
type Result struct {
	Domain      string
	NameServers []string
	Attempts    []*Attempt
	// The attempt that obtained the zone, if any
	Server  *Attempt
	Zone    *zone.Zone
	Records []zone.Record
}

// Enumeration is the object type used to test the zone transfer permissions of a domain.
type Enumeration struct {
	Config   *config.Config
	client   Client
	renderer output.Renderer
	progress io.Writer
}

// NewEnumeration returns an initialized Enumeration that has not been started yet.
// Progress messages are written to the progress writer.
func NewEnumeration(cfg *config.Config, client Client, renderer output.Renderer, progress io.Writer) *Enumeration {
	if progress == nil {
		progress = io.Discard
	}

	return &Enumeration{
		Config:   cfg,
		client:   client,
		renderer: renderer,
		progress: progress,
	}
}

// Start resolves the nameservers of the domain and attempts a zone transfer with
// each of them in order. The records of the first zone obtained are rendered.
func (e *Enumeration) Start(ctx context.Context) (*Result, error) {
	domain := e.Config.Domain
	res := &Result{Domain: domain}

	servers, err := e.client.NameServers(ctx, domain)
	if err != nil {
		e.Config.Log.Error("nameserver resolution failed", "domain", domain, "error", err)
		return res, fmt.Errorf("%w for %s: %w", ErrNoNameServers, domain, err)
	}
	res.NameServers = servers

	for _, ns := range servers {
		_, _ = green.Fprintf(e.progress, "[*] Found NS: %s\n", e.hostname(ns))
	}

	for _, ns := range servers {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		a := e.attempt(ctx, ns, domain)
		res.Attempts = append(res.Attempts, a.Attempt)
		if !a.Permitted {
			if err := ctx.Err(); err != nil {
				return res, err
			}
			continue
		}

		res.Server = a.Attempt
		res.Zone = a.zone
		break
	}

	if res.Server == nil {
		return res, fmt.Errorf("%w for %s", ErrTransferRefused, domain)
	}

	res.Records = zone.Extract(res.Zone)
	e.Config.Log.Info("records extracted", "domain", domain, "server", res.Server.NameServer, "records", len(res.Records))

	records := res.Records
	if e.Config.DemoMode {
		records = format.CensorRecords(records)
	}
	if err := e.renderer.Render(records, domain); err != nil {
		return res, err
	}
	return res, nil
}

type attemptResult struct {
	*Attempt
	zone *zone.Zone
}

func (e *Enumeration) attempt(ctx context.Context, ns, domain string) *attemptResult {
	a := &Attempt{NameServer: ns}

	addr, err := e.client.Address(ctx, ns)
	if err != nil {
		a.ResolveErr = err
		e.Config.Log.Warn("address resolution failed", "nameserver", ns, "error", err)
		_, _ = red.Fprintf(e.progress, "[!] Failed to resolve %s\n", e.hostname(ns))
		return &attemptResult{Attempt: a}
	}
	a.Address = addr

	_, _ = green.Fprintf(e.progress, "[*] Found A: %s (%s)\n", e.address(addr), e.hostname(ns))

	z, err := e.client.ZoneTransfer(ctx, addr, domain)
	if err != nil {
		a.TransferErr = err
		e.Config.Log.Debug("zone transfer failed", "nameserver", ns, "address", addr.String(), "error", err)
		_, _ = yellow.Fprintf(e.progress, "    The IP %s doesn't allow zone transfer\n", e.address(addr))
		return &attemptResult{Attempt: a}
	}

	a.Permitted = true
	_, _ = red.Fprintf(e.progress, "    The IP %s allows zone transfer\n", e.address(addr))
	return &attemptResult{Attempt: a, zone: z}
}

func (e *Enumeration) hostname(name string) string {
	if e.Config.DemoMode {
		return format.CensorDomain(name)
	}
	return name
}

func (e *Enumeration) address(addr net.IP) string {
	if e.Config.DemoMode {
		return format.CensorIP(addr.String())
	}
	return addr.String()
}
