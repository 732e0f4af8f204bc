//go:build unit

package resolver

import (
	"context"
	"net"
	"net/netip"
	"testing"
	"time"

	"github.com/miekg/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startDNSServer serves the given zone on a local UDP port and returns its address.
func startDNSServer(t *testing.T, zone map[string][]string) string {
	t.Helper()

	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)

	handler := dns.HandlerFunc(func(w dns.ResponseWriter, r *dns.Msg) {
		m := new(dns.Msg)
		m.SetReply(r)

		q := r.Question[0]
		records, ok := zone[q.Name]
		if !ok {
			m.Rcode = dns.RcodeNameError
		}
		for _, record := range records {
			rr, err := dns.NewRR(record)
			if err != nil {
				continue
			}
			if rr.Header().Rrtype == q.Qtype || rr.Header().Rrtype == dns.TypeCNAME {
				m.Answer = append(m.Answer, rr)
			}
		}
		_ = w.WriteMsg(m)
	})

	started := make(chan struct{})
	server := &dns.Server{PacketConn: pc, Handler: handler, NotifyStartedFunc: func() { close(started) }}
	go func() { _ = server.ActivateAndServe() }()
	t.Cleanup(func() { _ = server.Shutdown() })

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("dns server did not start")
	}
	return pc.LocalAddr().String()
}

func TestDNSAdapter_LookupHost(t *testing.T) {
	addr := startDNSServer(t, map[string][]string{
		"dual.example.net.": {
			"dual.example.net. 60 IN A 1.1.1.1",
			"dual.example.net. 60 IN AAAA 2606:4700:4700::1111",
		},
		"v4only.example.net.": {
			"v4only.example.net. 60 IN A 10.0.0.5",
		},
		"alias.example.net.": {
			"alias.example.net. 60 IN CNAME dual.example.net.",
			"dual.example.net. 60 IN A 1.0.0.1",
		},
	})
	adapter := NewDNSAdapter(addr, time.Second)
	ctx := context.Background()

	t.Run("BothFamilies", func(t *testing.T) {
		addrs, err := adapter.LookupHost(ctx, "dual.example.net")
		require.NoError(t, err)
		assert.ElementsMatch(t, []netip.Addr{
			netip.MustParseAddr("1.1.1.1"),
			netip.MustParseAddr("2606:4700:4700::1111"),
		}, addrs)
	})

	t.Run("SingleFamily", func(t *testing.T) {
		addrs, err := adapter.LookupHost(ctx, "v4only.example.net")
		require.NoError(t, err)
		assert.Equal(t, []netip.Addr{netip.MustParseAddr("10.0.0.5")}, addrs)
	})

	t.Run("CNAMERecordsAreSkipped", func(t *testing.T) {
		addrs, err := adapter.LookupHost(ctx, "alias.example.net.")
		require.NoError(t, err)
		assert.Equal(t, []netip.Addr{netip.MustParseAddr("1.0.0.1")}, addrs)
	})

	t.Run("NXDomain", func(t *testing.T) {
		_, err := adapter.LookupHost(ctx, "missing.example.net")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "NXDOMAIN")
	})
}

func TestDNSAdapter_Unreachable(t *testing.T) {
	// Nothing listens on the discard port of the loopback address.
	adapter := NewDNSAdapter("127.0.0.1:9", 200*time.Millisecond)

	_, err := adapter.LookupHost(context.Background(), "example.net")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to query")
}

func TestSystemAdapter_LookupHost(t *testing.T) {
	adapter := NewSystemAdapter()
	ctx := context.Background()

	t.Run("Localhost", func(t *testing.T) {
		addrs, err := adapter.LookupHost(ctx, "localhost")
		if err != nil {
			t.Skip("localhost not resolvable on this system")
		}
		require.NotEmpty(t, addrs)
		for _, addr := range addrs {
			assert.True(t, addr.Unmap().IsLoopback(), addr.String())
		}
	})

	t.Run("InvalidTLD", func(t *testing.T) {
		_, err := adapter.LookupHost(ctx, "does-not-exist.invalid")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to resolve")
	})
}
