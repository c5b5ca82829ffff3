package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lockedBuffer is written by the watch loop while the test reads it.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWatchKeepsFlagsOverReloadedSettings(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "settings.yaml")

	var stdout, stderr lockedBuffer
	root := newRootCommand()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs([]string{"watch", "--config", configPath, "--log-level", "debug", "--countdown", "--interval", "5ms"})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errCh := make(chan error, 1)
	go func() {
		errCh <- root.ExecuteContext(ctx)
	}()

	require.Eventually(t, func() bool {
		return strings.Contains(stdout.String(), "until midnight")
	}, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(configPath, []byte("countdown: false\ncolor_choice: red\n"), 0o644))

	require.Eventually(t, func() bool {
		return strings.Contains(stderr.String(), "preferences updated: countdown=true color=red")
	}, 5*time.Second, 10*time.Millisecond, stderr.String())

	// Let a few more readings through after the reload.
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not return after cancel")
	}

	out := stdout.String()
	assert.Contains(t, out, "minutes until midnight")
	assert.NotContains(t, out, "since midnight")
}

func TestWatchRejectsUnknownColor(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "settings.yaml")

	_, err := runRoot(t, "watch", "--config", configPath, "--color", "mauve", "--interval", "5ms")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mauve")
}
