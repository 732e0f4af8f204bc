// Package iperf3 runs bounded iperf3 client benchmarks behind the BenchmarkRunner port.
package iperf3

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang-iperf3d/internal/pkg/config"
	"golang-iperf3d/internal/pkg/hostpolicy"
	"golang-iperf3d/internal/pkg/logging"
	"golang-iperf3d/internal/port"
	"golang-iperf3d/internal/types"

	"github.com/sirupsen/logrus"
)

// Result strings returned to callers.
const (
	MsgInvalidServer     = "invalid server. (only public ips allowed)"
	MsgMalformedServer   = "invalid server."
	MsgInvalidPort       = "invalid port. (1-65535)"
	MsgTimeout           = "iperf3 timeout"
	MsgCancelled         = "iperf3 cancelled"
	ErrorPrefix          = "iperf3 error:\n"
	connectTimeoutMillis = "3000"
	timeoutGrace         = 5 * time.Second
)

// Runner turns a benchmark request into one bounded iperf3 invocation.
type Runner struct {
	cfg        config.BenchmarkConfig
	validator  port.HostValidator
	procs      port.ProcessRunner
	networkMgr port.NetworkManager

	// deadline is the wall-clock budget for a run of the given duration, counted from spawn.
	deadline func(duration int) time.Duration
}

// Ensure Runner implements the BenchmarkRunner port
var _ port.BenchmarkRunner = (*Runner)(nil)

// NewRunner creates a runner. networkMgr may be nil when no bind interface is configured.
func NewRunner(cfg config.BenchmarkConfig, validator port.HostValidator, procs port.ProcessRunner, networkMgr port.NetworkManager) (*Runner, error) {
	if cfg.ToolPath == "" {
		return nil, fmt.Errorf("iperf3 tool path is required")
	}
	if cfg.BindInterface != "" && networkMgr == nil {
		return nil, fmt.Errorf("bind interface %s requires a network manager", cfg.BindInterface)
	}

	return &Runner{
		cfg:        cfg,
		validator:  validator,
		procs:      procs,
		networkMgr: networkMgr,
		deadline: func(duration int) time.Duration {
			return time.Duration(duration)*time.Second + timeoutGrace
		},
	}, nil
}

// Run executes the benchmark and returns its output, or a message explaining why it did not run.
func (r *Runner) Run(ctx context.Context, req types.BenchmarkRequest) string {
	params := r.normalize(req)
	logger := logging.WithComponentAndServer("iperf3", params.Server).WithFields(logrus.Fields{
		"port":     params.Port,
		"duration": params.Duration,
		"threads":  params.Threads,
		"reverse":  params.Reverse,
	})

	target, msg, ok := r.check(ctx, params)
	if !ok {
		logger.WithField("reason", msg).Info("Benchmark rejected")
		return msg
	}
	params.Server = target

	argv := r.buildArgs(params)
	if r.cfg.BindInterface != "" {
		addr, err := r.networkMgr.InterfaceAddress(r.cfg.BindInterface)
		if err != nil {
			logger.WithError(err).Error("Failed to determine bind address")
			return ErrorPrefix + err.Error()
		}
		argv = append(argv, "-B", addr.String())
	}

	return r.execute(ctx, logger, argv, params.Duration)
}

// normalize fills every omitted field from the configured defaults.
func (r *Runner) normalize(req types.BenchmarkRequest) types.BenchmarkParameters {
	params := types.BenchmarkParameters{
		Server:   req.Server,
		Port:     req.Port,
		Duration: req.Duration,
		Threads:  req.Threads,
		Reverse:  r.cfg.DefaultReverse,
	}
	if params.Port == 0 {
		params.Port = r.cfg.DefaultPort
	}
	if params.Duration == 0 {
		params.Duration = r.cfg.DefaultDuration
	}
	if params.Threads == 0 {
		params.Threads = r.cfg.DefaultThreads
	}
	if req.Reverse != nil {
		params.Reverse = *req.Reverse
	}
	return params
}

// check applies host, port, duration and thread policy in that order. It returns the value to pass
// to -c, or the rejection message.
func (r *Runner) check(ctx context.Context, params types.BenchmarkParameters) (string, string, bool) {
	target := params.Server

	if r.cfg.EnforceHostPolicy {
		ok, public := r.validator.ValidateHost(ctx, params.Server)
		if !ok {
			return "", MsgInvalidServer, false
		}
		if r.cfg.PinResolvedAddress && len(public) > 0 {
			target = public[0]
		}
	} else if err := hostpolicy.CheckHostname(params.Server); err != nil {
		return "", MsgMalformedServer, false
	}

	if !hostpolicy.ValidatePort(params.Port) {
		return "", MsgInvalidPort, false
	}

	if !inRange(params.Duration, 1, r.cfg.MaxDuration) {
		return "", rangeMessage("invalid duration.", r.cfg.MaxDuration), false
	}

	if !inRange(params.Threads, 0, r.cfg.MaxThreads) {
		return "", rangeMessage("invalid thread count.", r.cfg.MaxThreads), false
	}

	return target, "", true
}

// inRange reports lo <= v <= hi, where a hi of 0 means unbounded.
func inRange(v, lo, hi int) bool {
	return v >= lo && (hi == 0 || v <= hi)
}

func rangeMessage(prefix string, hi int) string {
	if hi == 0 {
		return prefix
	}
	return fmt.Sprintf("%s (1-%d)", prefix, hi)
}

// buildArgs returns the iperf3 client invocation. -P is omitted for 0 or 1 streams, which is
// iperf3's own default.
func (r *Runner) buildArgs(params types.BenchmarkParameters) []string {
	argv := []string{
		r.cfg.ToolPath,
		"-c", params.Server,
		"-p", strconv.Itoa(params.Port),
		"-t", strconv.Itoa(params.Duration),
		"--connect-timeout", connectTimeoutMillis,
	}

	if params.Reverse {
		argv = append(argv, "-R")
	}

	if params.Threads > 1 {
		argv = append(argv, "-P", strconv.Itoa(params.Threads))
	}

	return argv
}

// execute spawns argv and waits at most deadline(duration) from spawn.
func (r *Runner) execute(ctx context.Context, logger *logrus.Entry, argv []string, duration int) string {
	logger = logger.WithField("argv", strings.Join(argv, " "))

	proc, err := r.procs.Start(argv)
	if err != nil {
		logger.WithError(err).Error("Failed to start iperf3")
		return ErrorPrefix + err.Error()
	}
	started := time.Now()
	logger.Info("Started iperf3")

	waitCtx, cancel := context.WithTimeout(ctx, r.deadline(duration))
	defer cancel()

	result, err := proc.Wait(waitCtx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			if killErr := proc.Kill(); killErr != nil {
				logger.WithError(killErr).Error("Failed to kill iperf3")
			}
			if ctx.Err() != nil && !errors.Is(ctx.Err(), context.DeadlineExceeded) {
				logger.Warn("iperf3 cancelled by caller, process killed")
				return MsgCancelled
			}
			logger.WithField("elapsed", time.Since(started).Round(time.Millisecond)).Warn("iperf3 timed out, process killed")
			return MsgTimeout
		}
		logger.WithError(err).Error("Failed to wait for iperf3")
		return ErrorPrefix + err.Error()
	}

	logger = logger.WithFields(logrus.Fields{
		"exit_code": result.ExitCode,
		"elapsed":   time.Since(started).Round(time.Millisecond),
	})
	if result.ExitCode != 0 {
		logger.Warn("iperf3 failed")
		return ErrorPrefix + result.Stderr
	}

	logger.Info("iperf3 finished")
	return result.Stdout
}
