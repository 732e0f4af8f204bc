// Package command turns the positional token form "<server> [port] [time] [thread] [-R]" into a
// benchmark request, and trims results for size-limited transports.
package command

import (
	"errors"
	"fmt"
	"strconv"

	"golang-iperf3d/internal/types"
)

// ReverseFlag selects reverse mode wherever it appears after the server.
const ReverseFlag = "-R"

// ErrNoServer is returned when no tokens were supplied.
var ErrNoServer = errors.New("no server given")

// Parse builds a request from tokens. After the server, tokens made only of ASCII digits are taken
// in order as port, duration and thread count; any other token except ReverseFlag is ignored.
func Parse(tokens []string) (types.BenchmarkRequest, error) {
	if len(tokens) == 0 {
		return types.BenchmarkRequest{}, ErrNoServer
	}

	req := types.BenchmarkRequest{Server: tokens[0]}

	var nums []int
	for _, tok := range tokens[1:] {
		if tok == ReverseFlag {
			reverse := true
			req.Reverse = &reverse
			continue
		}
		if !isDigits(tok) {
			continue
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			continue
		}
		nums = append(nums, n)
	}

	if len(nums) > 0 {
		req.Port = nums[0]
	}
	if len(nums) > 1 {
		req.Duration = nums[1]
	}
	if len(nums) > 2 {
		req.Threads = nums[2]
	}

	return req, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Usage returns the help text for the command named name.
func Usage(name string) string {
	return fmt.Sprintf("Usage:\n%s <server> [port] [time] [thread] [-R]\ne.g. %s 1.1.1.1 5201 10 1 -R", name, name)
}

// Truncate keeps the last max runes of s. A max of zero or less disables truncation.
func Truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[len(runes)-max:])
}
