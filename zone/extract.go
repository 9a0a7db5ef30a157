// Copyright © by Jeff Foley 2017-2024. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.
// SPDX-License-Identifier: Apache-2.0

package zone

import "github.com/miekg/dns"

// Record is a single name and value pair exposed by a zone transfer.
type Record struct {
	Name  string
	Type  uint16
	Value string
}

// Extract returns the A and CNAME records of the zone, walking it node by
// node, record set by record set. All other record types are dropped.
func Extract(z *Zone) []Record {
	records := []Record{}
	if z == nil {
		return records
	}

	for _, n := range z.Nodes {
		for _, set := range n.RRSets {
			if set.Type != dns.TypeA && set.Type != dns.TypeCNAME {
				continue
			}

			for _, rr := range set.Records {
				var value string

				switch v := rr.(type) {
				case *dns.A:
					value = v.A.String()
				case *dns.CNAME:
					value = z.Relativize(v.Target)
				default:
					continue
				}

				records = append(records, Record{
					Name:  n.Name,
					Type:  set.Type,
					Value: value,
				})
			}
		}
	}
	return records
}
