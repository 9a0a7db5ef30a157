// Copyright © by Jeff Foley 2017-2024. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.
// SPDX-License-Identifier: Apache-2.0

package viz

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/owasp-amass/zonetransfer/zone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseElements(t *testing.T, html string) []cytoElement {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)

	src, found := doc.Find("script[src]").Attr("src")
	require.True(t, found)
	assert.Equal(t, CytoscapeURL, src)
	assert.Equal(t, 1, doc.Find("div#cy").Length())

	script := doc.Find("script").Not("[src]").Text()
	assert.Contains(t, script, "name: 'concentric'")
	assert.Contains(t, script, "shape: 'round-tag'")
	assert.Contains(t, script, "label: 'data(label)'")

	start := strings.Index(script, "elements:")
	end := strings.Index(script, "layout:")
	require.True(t, start >= 0 && end > start)

	raw := strings.TrimSpace(script[start+len("elements:") : end])
	raw = strings.TrimSuffix(raw, ",")

	var elements []cytoElement
	require.NoError(t, json.Unmarshal([]byte(raw), &elements))
	return elements
}

func TestWriteCytoscapeData(t *testing.T) {
	nodes, edges := VizData(testGroups())

	var buf bytes.Buffer
	require.NoError(t, WriteCytoscapeData(&buf, "example.com", nodes, edges))

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, "example.com", doc.Find("title").Text())

	elements := parseElements(t, buf.String())
	require.Len(t, elements, len(nodes)+len(edges))

	for i, n := range nodes {
		assert.Equal(t, cytoData{ID: "n:" + n.Label, Label: n.Label}, elements[i].Data)
	}
	assert.Equal(t, cytoData{ID: "1", Source: "n:www", Target: "n:192.0.2.1"}, elements[len(nodes)].Data)
	assert.Equal(t, cytoData{ID: "2", Source: "n:mail", Target: "n:192.0.2.1"}, elements[len(nodes)+1].Data)
	assert.Equal(t, cytoData{ID: "3", Source: "n:@", Target: "n:192.0.2.2"}, elements[len(nodes)+2].Data)
	assert.Equal(t, cytoData{ID: "4", Source: "n:ftp", Target: "n:www"}, elements[len(nodes)+3].Data)
}

func TestWriteCytoscapeDataEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCytoscapeData(&buf, "example.com", nil, nil))

	elements := parseElements(t, buf.String())
	assert.NotNil(t, elements)
	assert.Empty(t, elements)
}

func TestWriteCytoscapeDataEscaping(t *testing.T) {
	nodes := []Node{{ID: 0, Type: "subdomain", Label: "</script><b>x"}}

	var buf bytes.Buffer
	require.NoError(t, WriteCytoscapeData(&buf, "<example>", nodes, nil))
	assert.NotContains(t, buf.String(), "</script><b>")

	elements := parseElements(t, buf.String())
	require.Len(t, elements, 1)
	assert.Equal(t, "</script><b>x", elements[0].Data.Label)
}

func TestWriteCytoscapeDataNumericLabels(t *testing.T) {
	groups := []zone.AddressGroup{
		{Address: "192.0.2.1", Subdomains: []string{"1", "2"}},
	}
	nodes, edges := VizData(groups)

	var buf bytes.Buffer
	require.NoError(t, WriteCytoscapeData(&buf, "example.com", nodes, edges))

	elements := parseElements(t, buf.String())
	require.Len(t, elements, 5)

	ids := make(map[string]bool)
	for _, e := range elements {
		assert.False(t, ids[e.Data.ID], "duplicate element id %s", e.Data.ID)
		ids[e.Data.ID] = true
	}
	assert.Equal(t, cytoData{ID: "n:1", Label: "1"}, elements[1].Data)
	assert.Equal(t, cytoData{ID: "1", Source: "n:1", Target: "n:192.0.2.1"}, elements[3].Data)
	assert.Equal(t, cytoData{ID: "2", Source: "n:2", Target: "n:192.0.2.1"}, elements[4].Data)
}
