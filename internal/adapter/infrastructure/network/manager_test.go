//go:build unit

package network

import (
	"net"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vishvananda/netlink"
)

func TestNewManagerAdapter(t *testing.T) {
	adapter := NewManagerAdapter()
	assert.NotNil(t, adapter)
}

func TestManagerAdapter_InterfaceAddress(t *testing.T) {
	adapter := NewManagerAdapter()

	t.Run("LoopbackHasNoGlobalAddress", func(t *testing.T) {
		if _, err := netlink.LinkByName("lo"); err != nil {
			t.Skip("Loopback interface not available, skipping test")
		}
		_, err := adapter.InterfaceAddress("lo")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no global unicast address")
	})

	t.Run("InvalidInterface", func(t *testing.T) {
		_, err := adapter.InterfaceAddress("nonexistent")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get netlink interface")
	})
}

func TestFirstGlobalUnicast(t *testing.T) {
	ipnet := func(s string) *net.IPNet {
		ip, n, err := net.ParseCIDR(s)
		if err != nil {
			t.Fatalf("bad cidr %s: %v", s, err)
		}
		n.IP = ip
		return n
	}

	t.Run("SkipsLoopbackAndLinkLocal", func(t *testing.T) {
		addr, ok := firstGlobalUnicast([]netlink.Addr{
			{IPNet: nil},
			{IPNet: ipnet("127.0.0.1/8")},
			{IPNet: ipnet("169.254.10.1/16")},
			{IPNet: ipnet("192.168.1.20/24")},
			{IPNet: ipnet("203.0.114.5/24")},
		})
		assert.True(t, ok)
		assert.Equal(t, netip.MustParseAddr("192.168.1.20"), addr)
	})

	t.Run("None", func(t *testing.T) {
		_, ok := firstGlobalUnicast([]netlink.Addr{{IPNet: ipnet("fe80::1/64")}})
		assert.False(t, ok)
	})
}
