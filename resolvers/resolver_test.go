// Copyright © by Jeff Foley 2017-2024. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.
// SPDX-License-Identifier: Apache-2.0

package resolvers

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/miekg/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deadServer(t *testing.T) string {
	t.Helper()

	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := pc.LocalAddr().String()
	require.NoError(t, pc.Close())
	return addr
}

func TestRemoveLastDot(t *testing.T) {
	assert.Equal(t, "example.com", RemoveLastDot("example.com."))
	assert.Equal(t, "example.com", RemoveLastDot("example.com"))
	assert.Equal(t, "", RemoveLastDot(""))
}

func TestQueryMsg(t *testing.T) {
	m := QueryMsg("example.com", dns.TypeNS)

	assert.True(t, m.RecursionDesired)
	require.Len(t, m.Question, 1)
	assert.Equal(t, "example.com.", m.Question[0].Name)
	assert.Equal(t, dns.TypeNS, m.Question[0].Qtype)
	assert.NotNil(t, m.IsEdns0())
}

func TestNameServers(t *testing.T) {
	addr := startServer(t, "udp", answerHandler(t, map[uint16][]string{
		dns.TypeNS: {
			"example.com. 300 IN NS ns1.example.com.",
			"example.com. 300 IN NS ns2.example.com.",
			"example.com. 300 IN NS ns1.example.com.",
		},
	}, dns.RcodeSuccess))

	r := NewResolver([]string{addr}, 53, time.Second, nil)
	servers, err := r.NameServers(context.Background(), TestDomain)
	require.NoError(t, err)
	assert.Equal(t, []string{"ns1.example.com", "ns2.example.com"}, servers)
}

func TestNameServersFailures(t *testing.T) {
	tests := []struct {
		name    string
		answers map[uint16][]string
		rcode   int
	}{
		{"nxdomain", nil, dns.RcodeNameError},
		{"servfail", nil, dns.RcodeServerFailure},
		{"empty answer", nil, dns.RcodeSuccess},
		{"wrong type", map[uint16][]string{dns.TypeNS: {"example.com. 300 IN A 192.0.2.1"}}, dns.RcodeSuccess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := startServer(t, "udp", answerHandler(t, tt.answers, tt.rcode))

			r := NewResolver([]string{addr}, 53, time.Second, nil)
			servers, err := r.NameServers(context.Background(), TestDomain)
			assert.ErrorIs(t, err, ErrResolution)
			assert.Empty(t, servers)
		})
	}
}

func TestQueryNextResolver(t *testing.T) {
	addr := startServer(t, "udp", answerHandler(t, map[uint16][]string{
		dns.TypeNS: {"example.com. 300 IN NS ns1.example.com."},
	}, dns.RcodeSuccess))

	r := NewResolver([]string{deadServer(t), addr}, 53, 500*time.Millisecond, nil)
	servers, err := r.NameServers(context.Background(), TestDomain)
	require.NoError(t, err)
	assert.Equal(t, []string{"ns1.example.com"}, servers)
}

func TestQueryNoResolvers(t *testing.T) {
	r := NewResolver(nil, 53, time.Second, nil)

	_, err := r.Query(context.Background(), QueryMsg(TestDomain, dns.TypeNS))
	assert.ErrorIs(t, err, ErrNoResolvers)

	_, err = r.NameServers(context.Background(), TestDomain)
	assert.ErrorIs(t, err, ErrResolution)
}

func TestQueryCancelled(t *testing.T) {
	r := NewResolver([]string{deadServer(t)}, 53, time.Second, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Query(ctx, QueryMsg(TestDomain, dns.TypeNS))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestQueryTruncatedFallback(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	pc, err := net.ListenPacket("udp", l.Addr().String())
	if err != nil {
		_ = l.Close()
		t.Skipf("unable to share the port between UDP and TCP: %v", err)
	}

	tcpAnswers := answerHandler(t, map[uint16][]string{
		dns.TypeNS: {"example.com. 300 IN NS ns1.example.com."},
	}, dns.RcodeSuccess)
	truncated := dns.HandlerFunc(func(w dns.ResponseWriter, req *dns.Msg) {
		m := new(dns.Msg)
		m.SetReply(req)
		m.Truncated = true
		_ = w.WriteMsg(m)
	})

	for _, srv := range []*dns.Server{
		{Listener: l, Handler: tcpAnswers},
		{PacketConn: pc, Handler: truncated},
	} {
		started := make(chan struct{})
		srv.NotifyStartedFunc = func() { close(started) }
		go func(s *dns.Server) { _ = s.ActivateAndServe() }(srv)
		<-started
		s := srv
		t.Cleanup(func() { _ = s.Shutdown() })
	}

	r := NewResolver([]string{l.Addr().String()}, 53, time.Second, nil)
	servers, err := r.NameServers(context.Background(), TestDomain)
	require.NoError(t, err)
	assert.Equal(t, []string{"ns1.example.com"}, servers)
}

func TestAddress(t *testing.T) {
	mux := dns.NewServeMux()
	mux.HandleFunc("v4.example.com.", answerHandler(t, map[uint16][]string{
		dns.TypeA:    {"v4.example.com. 300 IN A 192.0.2.10", "v4.example.com. 300 IN A 192.0.2.11"},
		dns.TypeAAAA: {"v4.example.com. 300 IN AAAA 2001:db8::10"},
	}, dns.RcodeSuccess))
	mux.HandleFunc("v6.example.com.", answerHandler(t, map[uint16][]string{
		dns.TypeAAAA: {"v6.example.com. 300 IN AAAA 2001:db8::20"},
	}, dns.RcodeSuccess))
	mux.HandleFunc("none.example.com.", answerHandler(t, nil, dns.RcodeSuccess))
	mux.HandleFunc("missing.example.com.", answerHandler(t, nil, dns.RcodeNameError))
	addr := startServer(t, "udp", mux)

	r := NewResolver([]string{addr}, 53, time.Second, nil)
	ctx := context.Background()

	ip, err := r.Address(ctx, "v4.example.com")
	require.NoError(t, err)
	assert.Equal(t, "192.0.2.10", ip.String())

	ip, err = r.Address(ctx, "v6.example.com")
	require.NoError(t, err)
	assert.Equal(t, "2001:db8::20", ip.String())

	ip, err = r.Address(ctx, "192.0.2.99")
	require.NoError(t, err)
	assert.Equal(t, "192.0.2.99", ip.String())

	for _, host := range []string{"none.example.com", "missing.example.com"} {
		ip, err = r.Address(ctx, host)
		assert.ErrorIs(t, err, ErrResolution, host)
		assert.Nil(t, ip, host)
	}
}
