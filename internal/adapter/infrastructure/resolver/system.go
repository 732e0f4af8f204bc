// Package resolver provides host resolution adapter implementations.
package resolver

import (
	"context"
	"fmt"
	"net"
	"net/netip"

	"golang-iperf3d/internal/port"
)

// SystemAdapter is an adapter that implements the HostResolver port using the operating system resolver.
type SystemAdapter struct {
	resolver *net.Resolver
}

// Ensure SystemAdapter implements the HostResolver port
var _ port.HostResolver = (*SystemAdapter)(nil)

// NewSystemAdapter creates a new system resolver adapter.
func NewSystemAdapter() *SystemAdapter {
	return &SystemAdapter{resolver: net.DefaultResolver}
}

// LookupHost resolves host to its IPv4 and IPv6 addresses.
func (s *SystemAdapter) LookupHost(ctx context.Context, host string) ([]netip.Addr, error) {
	addrs, err := s.resolver.LookupNetIP(ctx, "ip", host)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", host, err)
	}
	return addrs, nil
}
