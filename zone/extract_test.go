// Copyright © by Jeff Foley 2017-2024. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.
// SPDX-License-Identifier: Apache-2.0

package zone

import (
	"testing"

	"github.com/miekg/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	z := testZone(t,
		testSOA,
		"example.com. 3600 IN NS ns1.example.com.",
		"example.com. 3600 IN MX 10 mail.example.com.",
		"example.com. 300 IN A 192.0.2.1",
		"example.com. 300 IN TXT \"v=spf1 -all\"",
		"www.example.com. 300 IN A 192.0.2.10",
		"www.example.com. 300 IN AAAA 2001:db8::10",
		"mail.example.com. 300 IN A 192.0.2.25",
		"ftp.example.com. 300 IN CNAME www.example.com.",
		"cdn.example.com. 300 IN CNAME edge.example.net.",
		"apex.example.com. 300 IN CNAME example.com.",
		"_sip._tcp.example.com. 300 IN SRV 10 5 5060 sip.example.com.",
		testSOA,
	)

	expected := []Record{
		{Name: "@", Type: dns.TypeA, Value: "192.0.2.1"},
		{Name: "www", Type: dns.TypeA, Value: "192.0.2.10"},
		{Name: "mail", Type: dns.TypeA, Value: "192.0.2.25"},
		{Name: "ftp", Type: dns.TypeCNAME, Value: "www"},
		{Name: "cdn", Type: dns.TypeCNAME, Value: "edge.example.net."},
		{Name: "apex", Type: dns.TypeCNAME, Value: "@"},
	}

	got := Extract(z)
	assert.Equal(t, expected, got)
	assert.LessOrEqual(t, len(got), z.Len())

	for _, r := range got {
		assert.True(t, r.Type == dns.TypeA || r.Type == dns.TypeCNAME)
	}
}

func TestExtractEmpty(t *testing.T) {
	z := testZone(t, testSOA, "example.com. 3600 IN NS ns1.example.com.")

	got := Extract(z)
	require.NotNil(t, got)
	assert.Empty(t, got)

	assert.NotNil(t, Extract(nil))
}
