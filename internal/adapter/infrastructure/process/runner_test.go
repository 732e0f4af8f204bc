//go:build unit && unix

package process

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireShell(t *testing.T) string {
	t.Helper()
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available, skipping test")
	}
	return sh
}

func TestNewRunnerAdapter(t *testing.T) {
	adapter := NewRunnerAdapter()
	assert.NotNil(t, adapter)
}

func TestRunnerAdapter_Start(t *testing.T) {
	sh := requireShell(t)
	adapter := NewRunnerAdapter()
	ctx := context.Background()

	t.Run("CapturesStreamsSeparately", func(t *testing.T) {
		proc, err := adapter.Start([]string{sh, "-c", "echo out; echo err >&2"})
		require.NoError(t, err)

		result, err := proc.Wait(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, result.ExitCode)
		assert.Equal(t, "out\n", result.Stdout)
		assert.Equal(t, "err\n", result.Stderr)
	})

	t.Run("NonZeroExitIsNotAnError", func(t *testing.T) {
		proc, err := adapter.Start([]string{sh, "-c", "echo bad option >&2; exit 2"})
		require.NoError(t, err)

		result, err := proc.Wait(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, result.ExitCode)
		assert.Equal(t, "bad option\n", result.Stderr)
		assert.Empty(t, result.Stdout)
	})

	t.Run("KillAfterExitIsNoop", func(t *testing.T) {
		proc, err := adapter.Start([]string{sh, "-c", "exit 0"})
		require.NoError(t, err)

		_, err = proc.Wait(ctx)
		require.NoError(t, err)
		assert.NoError(t, proc.Kill())
	})

	t.Run("MissingBinary", func(t *testing.T) {
		_, err := adapter.Start([]string{"/nonexistent/iperf3"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to start")
	})

	t.Run("EmptyCommand", func(t *testing.T) {
		_, err := adapter.Start(nil)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "empty command")
	})
}

func TestProcess_WaitDeadlineAndKill(t *testing.T) {
	sh := requireShell(t)
	adapter := NewRunnerAdapter()

	// The shell forks sleep as a grandchild, so killing only the shell would leave it running.
	proc, err := adapter.Start([]string{sh, "-c", "sleep 30; echo never"})
	require.NoError(t, err)
	p := proc.(*process)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	result, err := proc.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Nil(t, result)

	require.NoError(t, proc.Kill())
	assert.Less(t, time.Since(start), 10*time.Second)

	select {
	case <-p.done:
	default:
		t.Fatal("process not reaped after Kill")
	}
	assert.NotNil(t, p.cmd.ProcessState)
	assert.NotContains(t, p.stdout.String(), "never")

	// Kill is idempotent.
	assert.NoError(t, proc.Kill())
}
