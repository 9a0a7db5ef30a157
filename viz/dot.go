// Copyright © by Jeff Foley 2017-2024. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.
// SPDX-License-Identifier: Apache-2.0

package viz

import (
	"io"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"
)

var dotColors = map[string]string{
	"subdomain": "green",
	"address":   "orange",
	"target":    "cyan",
}

type attributes []encoding.Attribute

func (a attributes) Attributes() []encoding.Attribute { return a }

type dotNode struct {
	id    int64
	label string
	attrs attributes
}

func (n dotNode) ID() int64                         { return n.id }
func (n dotNode) DOTID() string                     { return n.label }
func (n dotNode) Attributes() []encoding.Attribute { return n.attrs }

type dotEdge struct {
	from, to dotNode
	label    string
}

func (e dotEdge) From() graph.Node         { return e.from }
func (e dotEdge) To() graph.Node           { return e.to }
func (e dotEdge) ReversedEdge() graph.Edge { return dotEdge{from: e.to, to: e.from, label: e.label} }
func (e dotEdge) Attributes() []encoding.Attribute {
	return []encoding.Attribute{{Key: "label", Value: e.label}}
}

type dotGraph struct {
	*simple.DirectedGraph
}

func (g dotGraph) DOTAttributers() (encoding.Attributer, encoding.Attributer, encoding.Attributer) {
	ga := attributes{
		{Key: "size", Value: "7.5,10"},
		{Key: "ranksep", Value: "2.5 equally"},
		{Key: "ratio", Value: "auto"},
	}
	return ga, attributes{}, attributes{}
}

// WriteDOTData generates a DOT file to display the graph.
func WriteDOTData(output io.Writer, name string, nodes []Node, edges []Edge) error {
	g := dotGraph{DirectedGraph: simple.NewDirectedGraph()}

	dnodes := make([]dotNode, len(nodes))
	for idx, node := range nodes {
		dnodes[idx] = dotNode{
			id:    int64(idx),
			label: node.Label,
			attrs: attributes{
				{Key: "label", Value: node.Label},
				{Key: "color", Value: dotColors[node.Type]},
				{Key: "type", Value: node.Type},
			},
		}
		g.AddNode(dnodes[idx])
	}

	for _, edge := range edges {
		// Self loops are not supported by the simple graph
		if edge.From == edge.To {
			continue
		}

		g.SetEdge(dotEdge{
			from:  dnodes[edge.From],
			to:    dnodes[edge.To],
			label: edge.Title,
		})
	}

	data, err := dot.Marshal(g, name, "", "\t")
	if err != nil {
		return err
	}

	_, err = output.Write(append(data, '\n'))
	return err
}
