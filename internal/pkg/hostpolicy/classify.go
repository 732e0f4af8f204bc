package hostpolicy

import "net/netip"

// Class is the routing class of an IP address.
type Class string

const (
	ClassPublic      Class = "public"
	ClassInvalid     Class = "invalid"
	ClassUnspecified Class = "unspecified"
	ClassLoopback    Class = "loopback"
	ClassPrivate     Class = "private"
	ClassLinkLocal   Class = "link-local"
	ClassMulticast   Class = "multicast"
	ClassReserved    Class = "reserved"
)

type classifiedPrefix struct {
	prefix netip.Prefix
	class  Class
}

// nonPublic lists the special-purpose ranges (IANA IPv4/IPv6 special registries) that are never benchmarked.
var nonPublic = []classifiedPrefix{
	{netip.MustParsePrefix("0.0.0.0/8"), ClassReserved},       // RFC 791 - "this network"
	{netip.MustParsePrefix("10.0.0.0/8"), ClassPrivate},       // RFC 1918
	{netip.MustParsePrefix("100.64.0.0/10"), ClassPrivate},    // RFC 6598 - shared address space (CGNAT)
	{netip.MustParsePrefix("127.0.0.0/8"), ClassLoopback},     // RFC 1122
	{netip.MustParsePrefix("169.254.0.0/16"), ClassLinkLocal}, // RFC 3927
	{netip.MustParsePrefix("172.16.0.0/12"), ClassPrivate},    // RFC 1918
	{netip.MustParsePrefix("192.0.0.0/24"), ClassReserved},    // RFC 6890 - IETF protocol assignments
	{netip.MustParsePrefix("192.0.2.0/24"), ClassReserved},    // RFC 5737 - TEST-NET-1
	{netip.MustParsePrefix("192.88.99.0/24"), ClassReserved},  // RFC 7526 - deprecated 6to4 relay
	{netip.MustParsePrefix("192.168.0.0/16"), ClassPrivate},   // RFC 1918
	{netip.MustParsePrefix("198.18.0.0/15"), ClassReserved},   // RFC 2544 - benchmarking
	{netip.MustParsePrefix("198.51.100.0/24"), ClassReserved}, // RFC 5737 - TEST-NET-2
	{netip.MustParsePrefix("203.0.113.0/24"), ClassReserved},  // RFC 5737 - TEST-NET-3
	{netip.MustParsePrefix("224.0.0.0/4"), ClassMulticast},    // RFC 5771
	{netip.MustParsePrefix("240.0.0.0/4"), ClassReserved},     // RFC 1112, includes broadcast
	{netip.MustParsePrefix("::1/128"), ClassLoopback},         // RFC 4291
	{netip.MustParsePrefix("ff00::/8"), ClassMulticast},       // RFC 4291
	{netip.MustParsePrefix("fe80::/10"), ClassLinkLocal},      // RFC 4291
	{netip.MustParsePrefix("fc00::/7"), ClassPrivate},         // RFC 4193 - unique local
	{netip.MustParsePrefix("2001::/23"), ClassReserved},       // RFC 2928 - IETF protocol assignments
	{netip.MustParsePrefix("2001:db8::/32"), ClassReserved},   // RFC 3849 - documentation
	{netip.MustParsePrefix("3fff::/20"), ClassReserved},       // RFC 9637 - documentation
}

// globalUnicast6 is the only IPv6 block allocated for global unicast; everything outside it is reserved.
var globalUnicast6 = netip.MustParsePrefix("2000::/3")

// Classify returns the routing class of addr. IPv4-mapped IPv6 addresses are classified as IPv4,
// and zones are ignored.
func Classify(addr netip.Addr) Class {
	if !addr.IsValid() {
		return ClassInvalid
	}

	addr = addr.Unmap().WithZone("")
	if addr.IsUnspecified() {
		return ClassUnspecified
	}

	for _, p := range nonPublic {
		if p.prefix.Contains(addr) {
			return p.class
		}
	}

	if addr.Is6() && !globalUnicast6.Contains(addr) {
		return ClassReserved
	}

	return ClassPublic
}

// IsPublicIP reports whether addr is routable on the open internet.
func IsPublicIP(addr netip.Addr) bool {
	return Classify(addr) == ClassPublic
}
