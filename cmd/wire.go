package cmd

import (
	"fmt"

	"golang-iperf3d/internal/adapter/infrastructure/network"
	"golang-iperf3d/internal/adapter/infrastructure/process"
	"golang-iperf3d/internal/adapter/infrastructure/resolver"
	"golang-iperf3d/internal/adapter/iperf3"
	"golang-iperf3d/internal/pkg/config"
	"golang-iperf3d/internal/pkg/hostpolicy"
	"golang-iperf3d/internal/pkg/logging"
	"golang-iperf3d/internal/port"
)

// loadConfig loads, validates and applies the logging section of the config file.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(configFlag)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logging.InitLogger(cfg.Logging)
	return cfg, nil
}

// createResolver picks the DNS adapter when a server is configured, the system resolver otherwise.
func createResolver(cfg config.DNSConfig) port.HostResolver {
	if cfg.Server != "" {
		logging.WithComponent("wire").WithField("dns_server", cfg.Server).Debug("Using DNS resolver")
		return resolver.NewDNSAdapter(cfg.Server, cfg.Timeout)
	}
	return resolver.NewSystemAdapter()
}

// createRunner builds the benchmark runner and its infrastructure adapters.
func createRunner(cfg *config.Config) (*iperf3.Runner, error) {
	validator := hostpolicy.NewValidator(createResolver(cfg.DNS))
	procs := process.NewRunnerAdapter()

	var networkMgr port.NetworkManager
	if cfg.Benchmark.BindInterface != "" {
		networkMgr = network.NewManagerAdapter()
	}

	runner, err := iperf3.NewRunner(cfg.Benchmark, validator, procs, networkMgr)
	if err != nil {
		return nil, fmt.Errorf("failed to create benchmark runner: %w", err)
	}
	return runner, nil
}
