package mcp

// BenchmarkToolInput is the argument object of the iperf3 tool. Omitted fields take the
// configured defaults.
type BenchmarkToolInput struct {
	Server   string `json:"server" jsonschema:"iperf3 server hostname or IP address, must be public"`
	Port     int    `json:"port,omitempty" jsonschema:"server port, 1-65535"`
	Duration int    `json:"duration,omitempty" jsonschema:"test length in seconds"`
	Threads  int    `json:"threads,omitempty" jsonschema:"number of parallel streams"`
	Reverse  *bool  `json:"reverse,omitempty" jsonschema:"run in reverse mode, server sends"`
}

type BenchmarkToolOutput struct {
	Result string `json:"result"`
}

type UsageToolInput struct{}

type UsageToolOutput struct {
	Usage string `json:"usage"`
}
