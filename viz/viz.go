// Copyright © by Jeff Foley 2017-2024. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.
// SPDX-License-Identifier: Apache-2.0

package viz

import (
	"net"

	amassnet "github.com/owasp-amass/zonetransfer/net"
	"github.com/owasp-amass/zonetransfer/zone"
)

// Edge represents a graph edge throughout the viz package.
type Edge struct {
	From, To int
	Label    string
	Title    string
}

// Node represents a graph node throughout the viz package.
type Node struct {
	ID    int
	Type  string
	Label string
	Title string
}

// VizData returns the address groups as viz package Nodes and Edges.
// Every address and subdomain becomes a single node, in first-seen order,
// and each subdomain has an edge pointing to the value it resolves to.
func VizData(groups []zone.AddressGroup) ([]Node, []Edge) {
	nodes := []Node{}
	edges := []Edge{}
	nodeToIdx := make(map[string]int)

	addNode := func(label, ntype string) int {
		if idx, found := nodeToIdx[label]; found {
			return idx
		}

		idx := len(nodes)
		nodes = append(nodes, Node{
			ID:    idx,
			Type:  ntype,
			Label: label,
			Title: ntype + ": " + label,
		})
		// Keep track of which indices nodes were assigned to
		nodeToIdx[label] = idx
		return idx
	}

	for _, g := range groups {
		ntype, pred := "address", "a_record"
		if ip := net.ParseIP(g.Address); !amassnet.IsIPv4(ip) && !amassnet.IsIPv6(ip) {
			ntype, pred = "target", "cname_record"
		}

		to := addNode(g.Address, ntype)
		for _, sub := range g.Subdomains {
			from := addNode(sub, "subdomain")

			edges = append(edges, Edge{
				From:  from,
				To:    to,
				Label: pred,
				Title: pred,
			})
		}
	}
	return nodes, edges
}
