//go:build unit

package command

import (
	"strings"
	"testing"

	"golang-iperf3d/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	reverse := true

	tests := []struct {
		name   string
		tokens []string
		want   types.BenchmarkRequest
	}{
		{
			name:   "ServerOnly",
			tokens: []string{"1.1.1.1"},
			want:   types.BenchmarkRequest{Server: "1.1.1.1"},
		},
		{
			name:   "AllPositional",
			tokens: []string{"1.1.1.1", "5201", "10", "4", "-R"},
			want:   types.BenchmarkRequest{Server: "1.1.1.1", Port: 5201, Duration: 10, Threads: 4, Reverse: &reverse},
		},
		{
			name:   "ReverseAnywhere",
			tokens: []string{"iperf.example.net", "-R", "5202", "5"},
			want:   types.BenchmarkRequest{Server: "iperf.example.net", Port: 5202, Duration: 5, Reverse: &reverse},
		},
		{
			name:   "NonNumericTokensDropped",
			tokens: []string{"1.1.1.1", "fast", "5201", "-5", "1e3", "", "20"},
			want:   types.BenchmarkRequest{Server: "1.1.1.1", Port: 5201, Duration: 20},
		},
		{
			name:   "ExtraNumbersIgnored",
			tokens: []string{"1.1.1.1", "1", "2", "3", "4", "5"},
			want:   types.BenchmarkRequest{Server: "1.1.1.1", Port: 1, Duration: 2, Threads: 3},
		},
		{
			name:   "OverflowDropped",
			tokens: []string{"1.1.1.1", "99999999999999999999999", "5201"},
			want:   types.BenchmarkRequest{Server: "1.1.1.1", Port: 5201},
		},
		{
			name:   "ServerIsNeverReinterpreted",
			tokens: []string{"-R", "5201"},
			want:   types.BenchmarkRequest{Server: "-R", Port: 5201},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := Parse(tt.tokens)
			require.NoError(t, err)
			assert.Equal(t, tt.want, req)
		})
	}

	t.Run("Empty", func(t *testing.T) {
		_, err := Parse(nil)
		assert.ErrorIs(t, err, ErrNoServer)
	})
}

func TestUsage(t *testing.T) {
	assert.Equal(t, "Usage:\n/iperf3 <server> [port] [time] [thread] [-R]\ne.g. /iperf3 1.1.1.1 5201 10 1 -R", Usage("/iperf3"))
}

func TestTruncate(t *testing.T) {
	t.Run("Short", func(t *testing.T) {
		assert.Equal(t, "abc", Truncate("abc", 4000))
	})

	t.Run("KeepsTail", func(t *testing.T) {
		out := strings.Repeat("a", 10) + "summary"
		assert.Equal(t, "summary", Truncate(out, 7))
	})

	t.Run("RuneSafe", func(t *testing.T) {
		assert.Equal(t, "é✓", Truncate("abcé✓", 2))
	})

	t.Run("Disabled", func(t *testing.T) {
		assert.Equal(t, "abc", Truncate("abc", 0))
		assert.Equal(t, "abc", Truncate("abc", -1))
	})
}
