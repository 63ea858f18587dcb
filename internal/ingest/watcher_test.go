package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectPaths(t *testing.T, evCh <-chan string, want int, timeout time.Duration) map[string]struct{} {
	t.Helper()
	seen := map[string]struct{}{}
	deadline := time.After(timeout)
	for len(seen) < want {
		select {
		case p, ok := <-evCh:
			if !ok {
				return seen
			}
			seen[p] = struct{}{}
		case <-deadline:
			return seen
		}
	}
	return seen
}

func TestWatcherEmitsCreatedPdfs(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	evCh, _, err := StartWatcher(ctx, WatchConfig{
		Roots:    []string{dir},
		Debounce: 5 * time.Millisecond,
	}, testLogger())
	require.NoError(t, err)

	path := filepath.Join(dir, "913531.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 bill"), 0o644))

	seen := collectPaths(t, evCh, 1, 5*time.Second)
	assert.Contains(t, seen, path)
}

func TestWatcherSurvivesRapidWriteBursts(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	const files = 25
	evCh, _, err := StartWatcher(ctx, WatchConfig{
		Roots:    []string{dir},
		Debounce: time.Millisecond,
	}, testLogger())
	require.NoError(t, err)

	// Writes land faster than the debounce interval, so timer resets race
	// the flushes they schedule.
	for i := 0; i < files; i++ {
		name := filepath.Join(dir, fmt.Sprintf("bill-%03d.pdf", i))
		require.NoError(t, os.WriteFile(name, []byte("%PDF-1.4"), 0o644))
		require.NoError(t, os.WriteFile(name, []byte("%PDF-1.4 more"), 0o644))
	}

	seen := collectPaths(t, evCh, files, 10*time.Second)
	assert.Len(t, seen, files)
}

func TestWatcherClosesChannelsOnCancel(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())

	evCh, errCh, err := StartWatcher(ctx, WatchConfig{
		Roots:    []string{dir},
		Debounce: time.Millisecond,
	}, testLogger())
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-evCh:
		assert.False(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("event channel not closed after cancel")
	}
	select {
	case _, ok := <-errCh:
		assert.False(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("error channel not closed after cancel")
	}
}

func TestWatcherIgnoresNonPdfFiles(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	evCh, _, err := StartWatcher(ctx, WatchConfig{
		Roots:    []string{dir},
		Debounce: time.Millisecond,
	}, testLogger())
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("notes"), 0o644))
	pdf := filepath.Join(dir, "bill.pdf")
	require.NoError(t, os.WriteFile(pdf, []byte("%PDF-1.4"), 0o644))

	seen := collectPaths(t, evCh, 1, 5*time.Second)
	assert.Equal(t, map[string]struct{}{pdf: {}}, seen)
}

func TestWatcherRequiresRoots(t *testing.T) {
	_, _, err := StartWatcher(context.Background(), WatchConfig{}, testLogger())
	require.Error(t, err)
}
