// Copyright © by Jeff Foley 2017-2024. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.
// SPDX-License-Identifier: Apache-2.0

package resolvers

import (
	"github.com/miekg/dns"
)

// RemoveLastDot removes the '.' at the end of the provided FQDN.
func RemoveLastDot(name string) string {
	sz := len(name)
	if sz > 0 && name[sz-1] == '.' {
		return name[:sz-1]
	}
	return name
}

// QueryMsg generates a recursive query message for the name and type provided.
func QueryMsg(name string, qtype uint16) *dns.Msg {
	m := &dns.Msg{
		MsgHdr: dns.MsgHdr{
			Authoritative:     false,
			AuthenticatedData: false,
			CheckingDisabled:  false,
			RecursionDesired:  true,
			Opcode:            dns.OpcodeQuery,
			Id:                dns.Id(),
			Rcode:             dns.RcodeSuccess,
		},
		Question: make([]dns.Question, 1),
	}
	m.Question[0] = dns.Question{
		Name:   dns.Fqdn(name),
		Qtype:  qtype,
		Qclass: uint16(dns.ClassINET),
	}
	m.SetEdns0(dns.DefaultMsgSize, false)
	return m
}

// AXFRMsg generates a zone transfer request for the provided domain name.
func AXFRMsg(domain string) *dns.Msg {
	m := &dns.Msg{}
	m.SetAxfr(dns.Fqdn(domain))
	return m
}

// ExtractAnswers returns the records of the requested type from the answer section.
func ExtractAnswers(msg *dns.Msg, qtype uint16) []dns.RR {
	var answers []dns.RR

	for _, rr := range msg.Answer {
		if rr.Header().Rrtype == qtype {
			answers = append(answers, rr)
		}
	}
	return answers
}
