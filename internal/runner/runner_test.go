// SPDX-FileCopyrightText: 2026 Lukas Burgey
// SPDX-License-Identifier: MIT

package runner

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lburgey/svnrun/internal/registry"
)

// shInvocation builds an invocation that runs a shell snippet. The tests
// use "sh" as the configured tool; production code never does this.
func shInvocation(script string) registry.Invocation {
	return registry.Invocation{ActionID: "test", Args: []string{"-c", script}}
}

func TestRun_CapturesOutputSeparately(t *testing.T) {
	r := New("sh", 0, 0)

	result, err := r.Run(context.Background(), shInvocation("echo out; echo err 1>&2"))
	require.NoError(t, err)
	assert.Equal(t, 0, result.ExitCode)
	assert.Equal(t, "out\n", string(result.Stdout))
	assert.Equal(t, "err\n", string(result.Stderr))
	assert.False(t, result.Truncated)
	assert.False(t, result.TimedOut)
	assert.False(t, result.Cancelled)
}

func TestRun_NonZeroExitIsNotAnError(t *testing.T) {
	r := New("sh", 0, 0)

	result, err := r.Run(context.Background(), shInvocation("echo diagnostics 1>&2; exit 3"))
	require.NoError(t, err)
	assert.Equal(t, 3, result.ExitCode)
	assert.Equal(t, "diagnostics\n", string(result.Stderr))
}

func TestRun_Timeout(t *testing.T) {
	r := New("sh", 100*time.Millisecond, 0)

	start := time.Now()
	result, err := r.Run(context.Background(), shInvocation("sleep 5"))
	require.NoError(t, err)
	assert.True(t, result.TimedOut)
	assert.False(t, result.Cancelled)
	assert.Equal(t, SentinelExitCode, result.ExitCode)
	// The process was killed, not waited out.
	assert.Less(t, time.Since(start), 3*time.Second)
}

func TestRun_Cancellation(t *testing.T) {
	r := New("sh", 10*time.Second, 0)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	result, err := r.Run(ctx, shInvocation("sleep 5"))
	require.NoError(t, err)
	assert.True(t, result.Cancelled)
	assert.False(t, result.TimedOut)
	assert.Equal(t, SentinelExitCode, result.ExitCode)
}

func TestRun_SpawnFailure(t *testing.T) {
	r := New("svnrun-no-such-binary", 0, 0)

	_, err := r.Run(context.Background(), registry.Invocation{ActionID: "status", Args: []string{"status"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSpawn)
}

func TestRun_TruncatesOutput(t *testing.T) {
	r := New("sh", 0, 16)

	result, err := r.Run(context.Background(), shInvocation("printf '%0.s-' $(seq 1 100)"))
	require.NoError(t, err)
	assert.True(t, result.Truncated)
	assert.Len(t, result.Stdout, 16)
}

func TestRun_RecordsDuration(t *testing.T) {
	r := New("sh", 0, 0)

	result, err := r.Run(context.Background(), shInvocation("sleep 0.1"))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, result.Duration, 100*time.Millisecond)
}

func TestCappedBuffer(t *testing.T) {
	b := newCappedBuffer(4)

	n, err := b.Write([]byte("ab"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.False(t, b.Truncated())

	n, err = b.Write([]byte("cdef"))
	require.NoError(t, err)
	assert.Equal(t, 4, n) // full length reported so the pipe stays drained
	assert.True(t, b.Truncated())
	assert.Equal(t, "abcd", string(b.Bytes()))

	n, err = b.Write([]byte("gh"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "abcd", string(b.Bytes()))
}

func TestCappedBuffer_ExactFit(t *testing.T) {
	b := newCappedBuffer(4)

	_, err := b.Write([]byte("abcd"))
	require.NoError(t, err)
	assert.False(t, b.Truncated())
	assert.Equal(t, "abcd", string(b.Bytes()))
}

func TestRun_ArgumentVectorPassedVerbatim(t *testing.T) {
	r := New("sh", 0, 0)

	// $1 reaches the child untouched; a shell wrapping the argv would
	// have expanded the metacharacters.
	inv := registry.Invocation{ActionID: "test", Args: []string{"-c", `printf '%s' "$1"`, "sh", "a;b|c"}}
	result, err := r.Run(context.Background(), inv)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(result.Stdout), "a;b|c"))
}
