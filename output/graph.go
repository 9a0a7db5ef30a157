// Copyright © by Jeff Foley 2017-2024. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"io"

	"github.com/owasp-amass/zonetransfer/viz"
	"github.com/owasp-amass/zonetransfer/zone"
)

// WriteGraph writes an HTML page drawing the subdomains grouped by the value they point to.
func WriteGraph(w io.Writer, records []zone.Record, domain string) error {
	nodes, edges := viz.VizData(zone.GroupByAddress(records))

	return viz.WriteCytoscapeData(w, domain, nodes, edges)
}

// WriteDOT writes the same graph as WriteGraph in the DOT language.
func WriteDOT(w io.Writer, records []zone.Record, domain string) error {
	nodes, edges := viz.VizData(zone.GroupByAddress(records))

	return viz.WriteDOTData(w, domain, nodes, edges)
}
