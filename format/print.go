// Copyright © by Jeff Foley 2017-2024. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.
// SPDX-License-Identifier: Apache-2.0

package format

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/fatih/color"
	"github.com/miekg/dns"
	amassnet "github.com/owasp-amass/zonetransfer/net"
	"github.com/owasp-amass/zonetransfer/zone"
)

// Banner is the ASCII art logo used within help output.
const Banner = `                           __                        ____
 ____ ___  ___  ___       / /________ ____  ___ ___ / _/__ ____
/_ // _ \/ _ \/ -_)     / __/ __/ _ '/ _ \(_-</ -_) _/ -_) __/
/__/\___/_//_/\__/      \__/_/  \_,_/_//_/___/\__/_/ \__/_/`

const (
	// Version is used to display the current version of the tool.
	Version = "v1.0.0"

	// Author is used to display the Amass Project Team.
	Author = "OWASP Amass Project - @owaspamass"

	// Description is the slogan for the tool.
	Description = "DNS Zone Transfer Assessment"

	site = "https://github.com/owasp-amass/zonetransfer"
)

var (
	// Colors used to ease the reading of program output
	b      = color.New(color.FgHiBlue)
	y      = color.New(color.FgHiYellow)
	r      = color.New(color.FgHiRed)
	yellow = color.New(color.FgHiYellow).SprintFunc()
	green  = color.New(color.FgHiGreen).SprintFunc()
	blue   = color.New(color.FgHiBlue).SprintFunc()
)

// SummaryData stores the counts presented after a successful zone transfer.
type SummaryData struct {
	Total    int
	A        int
	CNAME    int
	Reserved map[string]int
}

// NewSummaryData tallies the record types and the addresses within reserved network blocks.
func NewSummaryData(records []zone.Record) *SummaryData {
	data := &SummaryData{
		Total:    len(records),
		Reserved: make(map[string]int),
	}

	for _, rec := range records {
		switch rec.Type {
		case dns.TypeA:
			data.A++
			if reserved, cidr := amassnet.IsReservedAddress(rec.Value); reserved {
				data.Reserved[cidr]++
			}
		case dns.TypeCNAME:
			data.CNAME++
		}
	}
	return data
}

// FprintSummary outputs the summary information utilized by the command-line tool.
func FprintSummary(out io.Writer, server string, records []zone.Record, demo bool) {
	pad := func(num int, chr string) {
		for i := 0; i < num; i++ {
			b.Fprint(out, chr)
		}
	}

	data := NewSummaryData(records)
	fmt.Fprintln(out)
	// Print the header information
	title := "OWASP Amass Zone Transfer "
	b.Fprint(out, title+Version)
	num := 80 - (len(title) + len(Version) + len(site))
	pad(num, " ")
	b.Fprintf(out, "%s\n", site)
	pad(8, "----------")

	if demo {
		server = CensorIP(server)
	}
	fmt.Fprintf(out, "\n%s%s%s\n", yellow(strconv.Itoa(data.Total)), green(" records transferred from "), yellow(server))
	fmt.Fprintf(out, "%s%s %s%s\n", yellow(strconv.Itoa(data.A)), green(" A"), yellow(strconv.Itoa(data.CNAME)), green(" CNAME"))

	if len(data.Reserved) == 0 {
		return
	}
	// Another line gets printed
	pad(8, "----------")
	fmt.Fprintln(out)

	cidrs := make([]string, 0, len(data.Reserved))
	for cidr := range data.Reserved {
		cidrs = append(cidrs, cidr)
	}
	sort.Strings(cidrs)

	fmt.Fprintf(out, "%s\n", blue(amassnet.ReservedCIDRDescription))
	for _, cidr := range cidrs {
		countstr := fmt.Sprintf("\t%-4s", strconv.Itoa(data.Reserved[cidr]))
		cidrstr := fmt.Sprintf("\t%-18s", cidr)
		fmt.Fprintf(out, "%s%s %s\n", yellow(cidrstr), yellow(countstr), blue("Address Record(s)"))
	}
}

// PrintBanner outputs the banner to stderr.
func PrintBanner() {
	FprintBanner(color.Error)
}

// FprintBanner outputs the banner used within help output.
func FprintBanner(out io.Writer) {
	rightmost := 76

	pad := func(num int) {
		for i := 0; i < num; i++ {
			fmt.Fprint(out, " ")
		}
	}

	_, _ = r.Fprintf(out, "\n%s\n\n", Banner)
	pad(rightmost - len(Version))
	_, _ = y.Fprintln(out, Version)
	pad(rightmost - len(Author))
	_, _ = y.Fprintln(out, Author)
	pad(rightmost - len(Description))
	_, _ = y.Fprintf(out, "%s\n\n\n", Description)
}
