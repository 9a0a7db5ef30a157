// Copyright © by Jeff Foley 2017-2024. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/owasp-amass/zonetransfer/zone"
)

const tableRow = "%20s %20s\n"

// StdoutRenderer prints the records as a table of two right-aligned columns.
type StdoutRenderer struct {
	Out io.Writer
}

// Render implements the Renderer interface.
func (r *StdoutRenderer) Render(records []zone.Record, domain string) error {
	w := bufio.NewWriter(r.Out)

	fmt.Fprintf(w, tableRow, "Subdomain", "IP")
	for _, rec := range records {
		fmt.Fprintf(w, tableRow, rec.Name, rec.Value)
	}
	return w.Flush()
}
