// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

import (
	"context"

	"golang-iperf3d/internal/types"
)

//go:generate mockgen -source=benchmark.go -destination=../mock/mock_benchmark.go -package=mock

// HostValidator decides whether a host may be benchmarked.
type HostValidator interface {
	// ValidateHost reports whether host is permitted and, if so, the public addresses it maps to
	ValidateHost(ctx context.Context, host string) (bool, []string)
}

// BenchmarkRunner is the primary port for running a benchmark.
// Run never fails: every outcome, including rejections and timeouts, is described by the returned string.
type BenchmarkRunner interface {
	Run(ctx context.Context, req types.BenchmarkRequest) string
}
