// Copyright © by Jeff Foley 2017-2024. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.
// SPDX-License-Identifier: Apache-2.0

package zone

import (
	"errors"
	"strings"

	"github.com/miekg/dns"
)

// ApexName is the relative name used for the zone origin.
const ApexName = "@"

var (
	// ErrNoSOA is returned when the zone apex is missing its SOA record.
	ErrNoSOA = errors.New("zone has no SOA record at its origin")
	// ErrNoNS is returned when the zone apex is missing its NS records.
	ErrNoNS = errors.New("zone has no NS records at its origin")
)

// Zone contains the records obtained from a zone transfer, organized by owner name.
type Zone struct {
	// Origin is the fully qualified, lowercase name of the zone
	Origin string

	// Nodes are kept in the order the owner names were first seen
	Nodes []*Node

	index map[string]*Node
}

// Node holds the record sets owned by a single name within the zone.
type Node struct {
	// Name relative to the zone origin
	Name   string
	RRSets []*RRSet
}

// RRSet contains the records of a single type owned by a Node.
type RRSet struct {
	Type    uint16
	Records []dns.RR
}

// New returns an empty Zone for the provided origin.
func New(origin string) *Zone {
	return &Zone{
		Origin: dns.CanonicalName(origin),
		index:  make(map[string]*Node),
	}
}

// Add inserts the resource record into the zone. Records outside of the zone
// and duplicates of records already present are ignored, and false is returned.
func (z *Zone) Add(rr dns.RR) bool {
	if rr == nil {
		return false
	}

	owner := rr.Header().Name
	if !dns.IsSubDomain(z.Origin, dns.CanonicalName(owner)) {
		return false
	}

	// The first spelling of an owner name is kept, and lookups ignore case
	name := z.Relativize(owner)
	key := strings.ToLower(name)
	n, found := z.index[key]
	if !found {
		n = &Node{Name: name}
		z.index[key] = n
		z.Nodes = append(z.Nodes, n)
	}

	set := n.RRSet(rr.Header().Rrtype)
	if set == nil {
		set = &RRSet{Type: rr.Header().Rrtype}
		n.RRSets = append(n.RRSets, set)
	}

	for _, r := range set.Records {
		if dns.IsDuplicate(r, rr) {
			return false
		}
	}
	set.Records = append(set.Records, rr)
	return true
}

// Node returns the node for the name relative to the zone origin, or nil.
func (z *Zone) Node(name string) *Node {
	return z.index[strings.ToLower(name)]
}

// Len returns the total number of records held by the zone.
func (z *Zone) Len() int {
	var total int

	for _, n := range z.Nodes {
		for _, set := range n.RRSets {
			total += len(set.Records)
		}
	}
	return total
}

// Validate checks that the zone apex carries the SOA and NS records
// that a complete transfer always includes.
func (z *Zone) Validate() error {
	apex := z.Node(ApexName)
	if apex == nil || apex.RRSet(dns.TypeSOA) == nil {
		return ErrNoSOA
	}
	if apex.RRSet(dns.TypeNS) == nil {
		return ErrNoNS
	}
	return nil
}

// Relativize returns the name relative to the zone origin, keeping the case
// of the provided labels. Names outside of the zone are returned as fully
// qualified names.
func (z *Zone) Relativize(name string) string {
	name = dns.Fqdn(name)
	canonical := strings.ToLower(name)

	if canonical == z.Origin {
		return ApexName
	}
	if z.Origin == "." {
		return strings.TrimSuffix(name, ".")
	}
	if dns.IsSubDomain(z.Origin, canonical) {
		return name[:len(name)-len(z.Origin)-1]
	}
	return name
}

// RRSet returns the record set of the provided type, or nil.
func (n *Node) RRSet(rrtype uint16) *RRSet {
	for _, set := range n.RRSets {
		if set.Type == rrtype {
			return set
		}
	}
	return nil
}
