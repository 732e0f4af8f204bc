package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"golang-iperf3d/internal/pkg/logging"

	"gopkg.in/yaml.v3"
)

// BenchmarkConfig holds the defaults and policy applied to every benchmark request
type BenchmarkConfig struct {
	ToolPath           string `yaml:"tool_path"`
	DefaultPort        int    `yaml:"default_port"`
	DefaultDuration    int    `yaml:"default_duration"` // seconds
	DefaultThreads     int    `yaml:"default_threads"`
	DefaultReverse     bool   `yaml:"default_reverse"`
	EnforceHostPolicy  bool   `yaml:"enforce_host_policy"`
	MaxDuration        int    `yaml:"max_duration"` // 0 = unlimited
	MaxThreads         int    `yaml:"max_threads"`  // 0 = unlimited
	BindInterface      string `yaml:"bind_interface,omitempty"`
	PinResolvedAddress bool   `yaml:"pin_resolved_address"`
}

// DNSConfig selects the resolver used for host validation
type DNSConfig struct {
	Server  string        `yaml:"server,omitempty"` // host:port, empty for the system resolver
	Timeout time.Duration `yaml:"timeout"`
}

// ServerConfig limits the remote trigger transport
type ServerConfig struct {
	MaxConcurrent     int `yaml:"max_concurrent"`
	RequestsPerMinute int `yaml:"requests_per_minute"`
	MaxOutput         int `yaml:"max_output"`
}

// Config represents the main configuration structure
type Config struct {
	Logging   logging.LogConfig `yaml:"logging"`
	Benchmark BenchmarkConfig   `yaml:"benchmark"`
	DNS       DNSConfig         `yaml:"dns"`
	Server    ServerConfig      `yaml:"server"`
}

// Default returns a complete configuration usable without a config file
func Default() *Config {
	return &Config{
		Logging: logging.LogConfig{
			Level:  "info",
			Format: "text",
		},
		Benchmark: BenchmarkConfig{
			ToolPath:          "iperf3",
			DefaultPort:       5201,
			DefaultDuration:   10,
			DefaultThreads:    1,
			DefaultReverse:    false,
			EnforceHostPolicy: true,
			MaxDuration:       60,
			MaxThreads:        128,
		},
		DNS: DNSConfig{
			Timeout: 5 * time.Second,
		},
		Server: ServerConfig{
			MaxConcurrent:     2,
			RequestsPerMinute: 30,
			MaxOutput:         4000,
		},
	}
}

// Load loads configuration from a YAML file on top of Default
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	return config, nil
}

// LoadOrDefault loads configPath, or returns Default when configPath is empty
func LoadOrDefault(configPath string) (*Config, error) {
	if configPath == "" {
		return Default(), nil
	}
	return Load(configPath)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.Benchmark.validate(); err != nil {
		return err
	}

	if c.DNS.Server != "" {
		if _, _, err := net.SplitHostPort(c.DNS.Server); err != nil {
			return fmt.Errorf("dns: server must be host:port, got %q", c.DNS.Server)
		}
	}
	if c.DNS.Timeout <= 0 {
		return fmt.Errorf("dns: timeout must be positive")
	}

	if c.Server.MaxConcurrent < 0 {
		return fmt.Errorf("server: max_concurrent must not be negative")
	}
	if c.Server.RequestsPerMinute < 0 {
		return fmt.Errorf("server: requests_per_minute must not be negative")
	}
	if c.Server.MaxOutput < 0 {
		return fmt.Errorf("server: max_output must not be negative")
	}

	return nil
}

func (b *BenchmarkConfig) validate() error {
	if b.ToolPath == "" {
		return fmt.Errorf("benchmark: tool_path is required")
	}
	if b.DefaultPort < 1 || b.DefaultPort > 65535 {
		return fmt.Errorf("benchmark: default_port must be between 1 and 65535, got %d", b.DefaultPort)
	}
	if b.DefaultDuration < 1 {
		return fmt.Errorf("benchmark: default_duration must be at least 1 second, got %d", b.DefaultDuration)
	}
	if b.MaxDuration < 0 || b.MaxThreads < 0 {
		return fmt.Errorf("benchmark: max_duration and max_threads must not be negative")
	}
	if b.MaxDuration > 0 && b.DefaultDuration > b.MaxDuration {
		return fmt.Errorf("benchmark: default_duration %d exceeds max_duration %d", b.DefaultDuration, b.MaxDuration)
	}
	if b.DefaultThreads < 0 {
		return fmt.Errorf("benchmark: default_threads must not be negative, got %d", b.DefaultThreads)
	}
	if b.MaxThreads > 0 && b.DefaultThreads > b.MaxThreads {
		return fmt.Errorf("benchmark: default_threads %d exceeds max_threads %d", b.DefaultThreads, b.MaxThreads)
	}
	return nil
}
