//go:build integration && !windows

package rod_test

import (
	"syscall"
	"testing"
	"time"

	"github.com/fwojciec/pagelens/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Close(t *testing.T) {
	t.Parallel()

	fetcher, err := rod.NewFetcher()
	require.NoError(t, err)

	pid := fetcher.LauncherPID()
	require.NotZero(t, pid)
	require.NoError(t, syscall.Kill(pid, syscall.Signal(0)), "launcher should run before Close")

	require.NoError(t, fetcher.Close())
	require.NoError(t, fetcher.Close(), "second Close should be a no-op")

	time.Sleep(100 * time.Millisecond)
	assert.Error(t, syscall.Kill(pid, syscall.Signal(0)), "launcher should be gone after Close")
}
