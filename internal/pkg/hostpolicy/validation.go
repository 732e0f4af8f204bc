// Package hostpolicy decides which hosts may be benchmarked under a public-internet-only policy.
package hostpolicy

import (
	"context"
	"fmt"
	"net/netip"
	"sort"

	"golang-iperf3d/internal/pkg/logging"
	"golang-iperf3d/internal/port"
)

// Validator applies the public host policy, resolving domains through a HostResolver.
type Validator struct {
	resolver port.HostResolver
}

// Ensure Validator implements the HostValidator port
var _ port.HostValidator = (*Validator)(nil)

// NewValidator creates a validator that resolves domains with resolver.
func NewValidator(resolver port.HostResolver) *Validator {
	return &Validator{resolver: resolver}
}

// ResolveHost returns the deduplicated IPv4 and IPv6 addresses of host.
// Resolution failures yield an empty set.
func (v *Validator) ResolveHost(ctx context.Context, host string) []string {
	addrs := v.resolve(ctx, host)
	out := make([]string, 0, len(addrs))
	for _, addr := range addrs {
		out = append(out, addr.String())
	}
	return out
}

func (v *Validator) resolve(ctx context.Context, host string) []netip.Addr {
	logger := logging.WithComponentAndServer("hostpolicy", host)

	addrs, err := v.resolver.LookupHost(ctx, host)
	if err != nil {
		logger.WithError(err).Debug("Host resolution failed")
		return nil
	}

	seen := make(map[netip.Addr]struct{}, len(addrs))
	unique := make([]netip.Addr, 0, len(addrs))
	for _, addr := range addrs {
		addr = addr.Unmap()
		if _, ok := seen[addr]; ok {
			continue
		}
		seen[addr] = struct{}{}
		unique = append(unique, addr)
	}
	sort.Slice(unique, func(i, j int) bool { return unique[i].Less(unique[j]) })

	logger.WithField("addresses", len(unique)).Debug("Resolved host")
	return unique
}

// ValidateHost reports whether host may be benchmarked, returning its public addresses.
// Literal IPs are judged as-is and never looked up; anything else must resolve to at least one public address.
func (v *Validator) ValidateHost(ctx context.Context, host string) (bool, []string) {
	logger := logging.WithComponentAndServer("hostpolicy", host)

	if addr, err := netip.ParseAddr(host); err == nil {
		if class := Classify(addr); class != ClassPublic {
			logger.WithField("class", class).Info("Rejected literal address")
			return false, nil
		}
		return true, []string{addr.Unmap().WithZone("").String()}
	}

	if err := CheckHostname(host); err != nil {
		logger.WithError(err).Info("Rejected malformed host")
		return false, nil
	}

	addrs := v.resolve(ctx, host)
	if len(addrs) == 0 {
		logger.Info("Rejected host without addresses")
		return false, nil
	}

	var public []string
	for _, addr := range addrs {
		if IsPublicIP(addr) {
			public = append(public, addr.String())
		}
	}
	if len(public) == 0 {
		logger.WithField("addresses", len(addrs)).Info("Rejected host resolving only to non-public addresses")
		return false, nil
	}

	return true, public
}

// ValidatePort reports whether port is a usable TCP/UDP port.
func ValidatePort(port int) bool {
	return port >= 1 && port <= 65535
}

// CheckHostname rejects strings that cannot be a hostname or IP literal, including anything that
// would be read as a command-line flag.
func CheckHostname(host string) error {
	if host == "" {
		return fmt.Errorf("hostname cannot be empty")
	}
	if len(host) > 253 {
		return fmt.Errorf("hostname too long: %d characters (max 253)", len(host))
	}
	if host[0] == '-' {
		return fmt.Errorf("hostname cannot start with '-'")
	}

	for _, char := range host {
		if !((char >= 'a' && char <= 'z') ||
			(char >= 'A' && char <= 'Z') ||
			(char >= '0' && char <= '9') ||
			char == '.' || char == '-' || char == '_' || char == ':' || char == '%') {
			return fmt.Errorf("invalid character in hostname: %q", char)
		}
	}

	return nil
}
