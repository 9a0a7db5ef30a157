// Copyright © by Jeff Foley 2017-2024. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.
// SPDX-License-Identifier: Apache-2.0

package viz

import (
	"html/template"
	"io"
	"strconv"
)

// CytoscapeURL is the location of the script loaded by the generated page.
const CytoscapeURL = "https://cdnjs.cloudflare.com/ajax/libs/cytoscape/3.20.1/cytoscape.min.js"

const cytoscapeTemplate = `<html>
<head>
<title>{{ .Name }}</title>
<script src="{{ .Script }}"></script>
<style>#cy {width: 1920px; height: 1080px; display: block;}</style>
</head>
<body>
<div id="cy"></div>
<script>
var cy = cytoscape({
container: document.getElementById('cy'),
elements: {{ .Elements }},
layout: { name: 'concentric' },
style: [{ selector: 'node', style: { shape: 'round-tag', 'background-color': 'blue', label: 'data(label)' } }]
});
</script>
</body>
</html>
`

type cytoData struct {
	ID     string `json:"id"`
	Label  string `json:"label,omitempty"`
	Source string `json:"source,omitempty"`
	Target string `json:"target,omitempty"`
}

type cytoElement struct {
	Data cytoData `json:"data"`
}

type cytoGraph struct {
	Name     string
	Script   string
	Elements []cytoElement
}

// NodePrefix separates the node identifiers from the numeric edge identifiers.
const NodePrefix = "n:"

// WriteCytoscapeData generates an HTML page that draws the graph with Cytoscape.
// Nodes are listed before the edges, and edge identifiers count up from 1.
func WriteCytoscapeData(output io.Writer, name string, nodes []Node, edges []Edge) error {
	graph := &cytoGraph{
		Name:     name,
		Script:   CytoscapeURL,
		Elements: []cytoElement{},
	}

	for _, node := range nodes {
		graph.Elements = append(graph.Elements, cytoElement{
			Data: cytoData{ID: NodePrefix + node.Label, Label: node.Label},
		})
	}

	for idx, edge := range edges {
		graph.Elements = append(graph.Elements, cytoElement{
			Data: cytoData{
				ID:     strconv.Itoa(idx + 1),
				Source: NodePrefix + nodes[edge.From].Label,
				Target: NodePrefix + nodes[edge.To].Label,
			},
		})
	}

	t := template.Must(template.New("graph").Parse(cytoscapeTemplate))
	return t.Execute(output, graph)
}
