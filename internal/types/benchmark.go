// Package types defines common types used across the application.
package types

// BenchmarkRequest is a partially specified benchmark as supplied by a caller.
// Zero values for Port, Duration and Threads, and a nil Reverse, mean "use the configured default".
type BenchmarkRequest struct {
	Server   string `json:"server"`
	Port     int    `json:"port,omitempty"`
	Duration int    `json:"duration,omitempty"` // seconds
	Threads  int    `json:"threads,omitempty"`
	Reverse  *bool  `json:"reverse,omitempty"`
}

// BenchmarkParameters is a fully resolved benchmark. Every field is concrete.
type BenchmarkParameters struct {
	Server   string
	Port     int
	Duration int // seconds
	Threads  int
	Reverse  bool
}

// ProcessResult is the outcome of a single child process.
type ProcessResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}
