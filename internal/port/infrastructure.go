// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

import (
	"context"
	"net/netip"

	"golang-iperf3d/internal/types"
)

//go:generate mockgen -source=infrastructure.go -destination=../mock/mock_infrastructure.go -package=mock

// HostResolver is a port for name resolution.
// Implementations must return both IPv4 and IPv6 addresses.
type HostResolver interface {
	// LookupHost resolves host to its addresses
	LookupHost(ctx context.Context, host string) ([]netip.Addr, error)
}

// ProcessRunner is a port for spawning child processes.
type ProcessRunner interface {
	// Start spawns argv[0] with the remaining arguments, capturing stdout and stderr separately
	Start(argv []string) (Process, error)
}

// Process is a handle to a running child process.
type Process interface {
	// Wait blocks until the process exits or ctx is done. When ctx ends first it returns ctx.Err()
	// and the process keeps running.
	Wait(ctx context.Context) (*types.ProcessResult, error)

	// Kill forcibly terminates the process and blocks until it has been reaped
	Kill() error
}

// NetworkManager is a port for network interface queries.
type NetworkManager interface {
	// InterfaceAddress returns the first global unicast address on the named interface,
	// preferring IPv4
	InterfaceAddress(interfaceName string) (netip.Addr, error)
}
