package resolver

import (
	"context"
	"fmt"
	"net/netip"
	"time"

	"golang-iperf3d/internal/port"

	"github.com/miekg/dns"
)

// DNSAdapter is an adapter that implements the HostResolver port by querying a fixed DNS server
// with the miekg/dns library.
type DNSAdapter struct {
	server string
	client *dns.Client
}

// Ensure DNSAdapter implements the HostResolver port
var _ port.HostResolver = (*DNSAdapter)(nil)

// NewDNSAdapter creates a resolver adapter that sends queries to server (host:port).
func NewDNSAdapter(server string, timeout time.Duration) *DNSAdapter {
	return &DNSAdapter{
		server: server,
		client: &dns.Client{Net: "udp", Timeout: timeout},
	}
}

// LookupHost queries A and AAAA records for host and returns every address found.
// It fails only if neither query produced an answer.
func (d *DNSAdapter) LookupHost(ctx context.Context, host string) ([]netip.Addr, error) {
	var (
		addrs   []netip.Addr
		lastErr error
	)

	for _, qtype := range []uint16{dns.TypeA, dns.TypeAAAA} {
		found, err := d.query(ctx, host, qtype)
		if err != nil {
			lastErr = err
			continue
		}
		addrs = append(addrs, found...)
	}

	if len(addrs) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return addrs, nil
}

func (d *DNSAdapter) query(ctx context.Context, host string, qtype uint16) ([]netip.Addr, error) {
	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(host), qtype)
	msg.RecursionDesired = true

	resp, _, err := d.client.ExchangeContext(ctx, msg, d.server)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s for %s %s: %w", d.server, host, dns.TypeToString[qtype], err)
	}
	if resp.Rcode != dns.RcodeSuccess {
		return nil, fmt.Errorf("failed to resolve %s %s: %s", host, dns.TypeToString[qtype], dns.RcodeToString[resp.Rcode])
	}

	var addrs []netip.Addr
	for _, rr := range resp.Answer {
		var ip []byte
		switch record := rr.(type) {
		case *dns.A:
			ip = record.A
		case *dns.AAAA:
			ip = record.AAAA
		default:
			continue
		}
		if addr, ok := netip.AddrFromSlice(ip); ok {
			addrs = append(addrs, addr.Unmap())
		}
	}
	return addrs, nil
}
