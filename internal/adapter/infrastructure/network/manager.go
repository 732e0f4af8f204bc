// Package network provides network interface adapter implementation.
package network

import (
	"fmt"
	"net/netip"

	"golang-iperf3d/internal/port"

	"github.com/vishvananda/netlink"
)

// ManagerAdapter is an adapter that implements the NetworkManager port using vishvananda/netlink library.
type ManagerAdapter struct{}

// Ensure ManagerAdapter implements the NetworkManager port
var _ port.NetworkManager = (*ManagerAdapter)(nil)

// NewManagerAdapter creates a new network manager adapter.
func NewManagerAdapter() *ManagerAdapter {
	return &ManagerAdapter{}
}

// InterfaceAddress returns the first global unicast address of the interface, trying IPv4 before IPv6.
// Addresses are read on every call so that lease changes are picked up.
func (n *ManagerAdapter) InterfaceAddress(interfaceName string) (netip.Addr, error) {
	link, err := netlink.LinkByName(interfaceName)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("failed to get netlink interface %s: %w", interfaceName, err)
	}

	for _, family := range []int{netlink.FAMILY_V4, netlink.FAMILY_V6} {
		addrs, err := netlink.AddrList(link, family)
		if err != nil {
			return netip.Addr{}, fmt.Errorf("failed to list addresses on %s: %w", interfaceName, err)
		}
		if addr, ok := firstGlobalUnicast(addrs); ok {
			return addr, nil
		}
	}

	return netip.Addr{}, fmt.Errorf("interface %s has no global unicast address", interfaceName)
}

func firstGlobalUnicast(addrs []netlink.Addr) (netip.Addr, bool) {
	for _, a := range addrs {
		if a.IPNet == nil {
			continue
		}
		addr, ok := netip.AddrFromSlice(a.IPNet.IP)
		if !ok {
			continue
		}
		addr = addr.Unmap()
		if addr.IsGlobalUnicast() {
			return addr, true
		}
	}
	return netip.Addr{}, false
}
