// Copyright © by Jeff Foley 2017-2024. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.
// SPDX-License-Identifier: Apache-2.0

package zone

// AddressGroup is the list of subdomains that share a single record value.
type AddressGroup struct {
	Address    string
	Subdomains []string
}

// GroupByAddress groups the records by their value. Both the addresses and
// the subdomains within each group keep the order they were first seen in.
func GroupByAddress(records []Record) []AddressGroup {
	var groups []AddressGroup

	idx := make(map[string]int)
	for _, r := range records {
		i, found := idx[r.Value]
		if !found {
			i = len(groups)
			idx[r.Value] = i
			groups = append(groups, AddressGroup{Address: r.Value})
		}

		groups[i].Subdomains = append(groups[i].Subdomains, r.Name)
	}
	return groups
}
