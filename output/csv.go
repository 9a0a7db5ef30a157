// Copyright © by Jeff Foley 2017-2024. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/csv"
	"io"

	"github.com/owasp-amass/zonetransfer/zone"
)

// WriteCSV writes the header row followed by one row per record.
func WriteCSV(w io.Writer, records []zone.Record, _ string) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Subdomain", "IP"}); err != nil {
		return err
	}
	for _, rec := range records {
		if err := cw.Write([]string{rec.Name, rec.Value}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
