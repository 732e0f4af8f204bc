// Package mcp exposes the benchmark runner as MCP tools over a stdio session.
package mcp

import (
	"context"
	"errors"

	"golang-iperf3d/internal/pkg/command"
	"golang-iperf3d/internal/pkg/limit"
	"golang-iperf3d/internal/pkg/logging"
	"golang-iperf3d/internal/port"
	"golang-iperf3d/internal/types"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	BenchmarkToolName = "iperf3"
	UsageToolName     = "iperf3_usage"

	// MsgRateLimited is returned instead of running when the request budget is spent.
	MsgRateLimited = "rate limit exceeded, try again later"
)

// Server serves benchmark requests from MCP clients.
type Server struct {
	runner    port.BenchmarkRunner
	gate      *limit.Gate
	maxOutput int
	version   string
}

// NewServer creates a server. A nil gate admits every request; a maxOutput of 0 returns output untruncated.
func NewServer(runner port.BenchmarkRunner, gate *limit.Gate, maxOutput int, version string) *Server {
	return &Server{
		runner:    runner,
		gate:      gate,
		maxOutput: maxOutput,
		version:   version,
	}
}

// Run serves MCP on transport until the client disconnects or ctx is cancelled.
func (s *Server) Run(ctx context.Context, transport mcpsdk.Transport) error {
	logger := logging.WithComponent("mcp")
	logger.WithField("version", s.version).Info("Starting MCP server")

	if err := s.build().Run(ctx, transport); err != nil && !errors.Is(err, context.Canceled) {
		logger.WithError(err).Error("MCP server failed")
		return err
	}

	logger.Info("MCP server stopped")
	return nil
}

func (s *Server) build() *mcpsdk.Server {
	server := mcpsdk.NewServer(&mcpsdk.Implementation{
		Name:    "golang-iperf3d",
		Version: s.version,
	}, nil)

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        BenchmarkToolName,
		Description: "Run an iperf3 client benchmark against a public iperf3 server and return its report",
	}, s.handleBenchmark)

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        UsageToolName,
		Description: "Show the iperf3 command syntax",
	}, s.handleUsage)

	return server
}

func (s *Server) handleBenchmark(ctx context.Context, _ *mcpsdk.CallToolRequest, input BenchmarkToolInput) (*mcpsdk.CallToolResult, BenchmarkToolOutput, error) {
	logger := logging.WithComponentAndServer("mcp", input.Server)

	release, err := s.gate.Acquire(ctx)
	if err != nil {
		if errors.Is(err, limit.ErrRateLimited) {
			logger.Warn("Benchmark request rate limited")
			return textResult(MsgRateLimited), BenchmarkToolOutput{Result: MsgRateLimited}, nil
		}
		// The caller went away while queued.
		return nil, BenchmarkToolOutput{}, err
	}
	defer release()

	result := s.runner.Run(ctx, types.BenchmarkRequest{
		Server:   input.Server,
		Port:     input.Port,
		Duration: input.Duration,
		Threads:  input.Threads,
		Reverse:  input.Reverse,
	})
	result = command.Truncate(result, s.maxOutput)

	logger.WithField("bytes", len(result)).Debug("Benchmark result sent")
	return textResult(result), BenchmarkToolOutput{Result: result}, nil
}

func (s *Server) handleUsage(_ context.Context, _ *mcpsdk.CallToolRequest, _ UsageToolInput) (*mcpsdk.CallToolResult, UsageToolOutput, error) {
	usage := command.Usage(BenchmarkToolName)
	return textResult(usage), UsageToolOutput{Usage: usage}, nil
}

func textResult(text string) *mcpsdk.CallToolResult {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: text},
		},
	}
}
