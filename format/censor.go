// Copyright © by Jeff Foley 2017-2024. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.
// SPDX-License-Identifier: Apache-2.0

package format

import (
	"strings"

	"github.com/miekg/dns"
	"github.com/owasp-amass/zonetransfer/zone"
)

// CensorRecords returns a copy of the records with the names and values
// obscured, so the output can be shown in demonstrations.
func CensorRecords(records []zone.Record) []zone.Record {
	censored := make([]zone.Record, 0, len(records))

	for _, rec := range records {
		c := zone.Record{
			Name:  CensorDomain(rec.Name),
			Type:  rec.Type,
			Value: rec.Value,
		}

		switch rec.Type {
		case dns.TypeA:
			c.Value = CensorIP(rec.Value)
		case dns.TypeCNAME:
			c.Value = CensorDomain(rec.Value)
		}
		censored = append(censored, c)
	}
	return censored
}

// CensorDomain keeps the first label of the name and obscures the rest.
func CensorDomain(input string) string {
	idx := strings.Index(input, ".")
	if idx < 0 {
		return input
	}
	return censorString(input, idx, len(input))
}

// CensorIP obscures all but the last group of the address.
func CensorIP(input string) string {
	sep := "."
	if strings.Contains(input, ":") {
		sep = ":"
	}
	return censorString(input, 0, strings.LastIndex(input, sep))
}

func censorString(input string, start, end int) string {
	runes := []rune(input)
	if end > len(runes) {
		end = len(runes)
	}

	for i := start; i < end; i++ {
		if runes[i] == '.' ||
			runes[i] == ':' ||
			runes[i] == '/' ||
			runes[i] == '-' ||
			runes[i] == ' ' {
			continue
		}
		runes[i] = 'x'
	}
	return string(runes)
}
