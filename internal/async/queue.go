// Package async runs invoice imports on a bounded background worker pool.
package async

import (
	"context"
	"time"
)

// Job is one file queued for background processing.
type Job struct {
	Path        string
	SubmittedAt time.Time
	TraceID     string
}

// Queue accepts jobs and processes them on background workers.
type Queue interface {
	// Enqueue submits a job. It blocks while the queue is full and is a
	// no-op after shutdown has started.
	Enqueue(ctx context.Context, job Job) error
	// Shutdown stops accepting jobs and waits for in-flight work,
	// bounded by ctx.
	Shutdown(ctx context.Context)
}

// FileProcessor is the work a queue worker performs for each job.
type FileProcessor interface {
	ProcessFile(ctx context.Context, path string) error
}

// FileProcessorFunc adapts a function to the FileProcessor interface.
type FileProcessorFunc func(ctx context.Context, path string) error

func (f FileProcessorFunc) ProcessFile(ctx context.Context, path string) error {
	return f(ctx, path)
}
