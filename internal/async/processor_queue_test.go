package async

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type recordingProcessor struct {
	mu    sync.Mutex
	paths []string
}

func (r *recordingProcessor) ProcessFile(_ context.Context, path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
	return nil
}

func (r *recordingProcessor) processed() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.paths))
	copy(out, r.paths)
	return out
}

func TestProcessorQueueProcessesAllJobs(t *testing.T) {
	proc := &recordingProcessor{}
	q := NewProcessorQueue(proc, testLogger(), WithWorkers(2), WithQueueSize(8))

	want := []string{"/bills/a.pdf", "/bills/b.pdf", "/bills/c.pdf"}
	for _, p := range want {
		require.NoError(t, q.Enqueue(context.Background(), Job{Path: p, SubmittedAt: time.Now()}))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	got := proc.processed()
	sort.Strings(got)
	assert.Equal(t, want, got)
}

func TestProcessorQueueEnqueueAfterShutdown(t *testing.T) {
	proc := &recordingProcessor{}
	q := NewProcessorQueue(proc, testLogger(), WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)

	// Dropped, not panicking on a closed channel.
	require.NoError(t, q.Enqueue(context.Background(), Job{Path: "/bills/late.pdf"}))
	assert.Empty(t, proc.processed())
}

func TestProcessorQueueShutdownIsIdempotent(t *testing.T) {
	q := NewProcessorQueue(&recordingProcessor{}, testLogger())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)
	q.Shutdown(ctx)
}
