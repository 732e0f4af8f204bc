// Package process provides the child process adapter implementation.
package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"sync"
	"time"

	"golang-iperf3d/internal/port"
	"golang-iperf3d/internal/types"
)

// waitDelay bounds how long Wait keeps reading output after the child exits or is killed.
const waitDelay = 2 * time.Second

// RunnerAdapter is an adapter that implements the ProcessRunner port using os/exec.
type RunnerAdapter struct{}

// Ensure RunnerAdapter implements the ProcessRunner port
var _ port.ProcessRunner = (*RunnerAdapter)(nil)

// NewRunnerAdapter creates a new process runner adapter.
func NewRunnerAdapter() *RunnerAdapter {
	return &RunnerAdapter{}
}

// Start spawns argv in its own process group with stdout and stderr captured separately.
func (r *RunnerAdapter) Start(argv []string) (port.Process, error) {
	if len(argv) == 0 || argv[0] == "" {
		return nil, fmt.Errorf("failed to start process: empty command")
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	p := &process{cmd: cmd, done: make(chan struct{})}
	cmd.Stdout = &p.stdout
	cmd.Stderr = &p.stderr
	cmd.WaitDelay = waitDelay
	setProcessGroup(cmd)

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start %s: %w", argv[0], err)
	}

	go func() {
		p.waitErr = cmd.Wait()
		close(p.done)
	}()

	return p, nil
}

// process is a started child. stdout, stderr and waitErr are only read after done is closed.
type process struct {
	cmd     *exec.Cmd
	stdout  bytes.Buffer
	stderr  bytes.Buffer
	waitErr error
	done    chan struct{}
	kill    sync.Once
	killErr error
}

// Wait blocks until the process exits or ctx is done.
func (p *process) Wait(ctx context.Context) (*types.ProcessResult, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-p.done:
	}

	result := &types.ProcessResult{
		Stdout: p.stdout.String(),
		Stderr: p.stderr.String(),
	}

	var exitErr *exec.ExitError
	switch {
	case p.waitErr == nil:
		result.ExitCode = 0
	case errors.As(p.waitErr, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	default:
		return nil, fmt.Errorf("failed to wait for process: %w", p.waitErr)
	}

	return result, nil
}

// Kill terminates the whole process group and blocks until the child has been reaped.
// Killing an exited process is a no-op.
func (p *process) Kill() error {
	p.kill.Do(func() {
		select {
		case <-p.done:
			return
		default:
		}
		if err := killProcessGroup(p.cmd); err != nil {
			p.killErr = fmt.Errorf("failed to kill process %d: %w", p.cmd.Process.Pid, err)
			return
		}
		<-p.done
	})
	return p.killErr
}
