package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"golang-iperf3d/internal/adapter/mcp"
	"golang-iperf3d/internal/pkg/limit"
	"golang-iperf3d/internal/pkg/logging"
	"golang-iperf3d/internal/pkg/version"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the iperf3 tool to MCP clients over stdio",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		runner, err := createRunner(cfg)
		if err != nil {
			return err
		}

		logger := logging.GetLogger()
		logger.WithField("config_file", configFlag).Info("Starting daemon")

		// Create context for graceful shutdown
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			sig := <-sigChan
			logger.WithField("signal", sig.String()).Info("Received shutdown signal")
			cancel()
		}()

		gate := limit.NewGate(cfg.Server.MaxConcurrent, cfg.Server.RequestsPerMinute)
		server := mcp.NewServer(runner, gate, cfg.Server.MaxOutput, version.GetBuildInfo().Version)

		return server.Run(ctx, &mcpsdk.StdioTransport{})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
