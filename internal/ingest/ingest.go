// Package ingest discovers invoice PDFs on the local filesystem for bulk
// import: single files, directory walks, and a watch mode for drop folders.
package ingest

import (
	"context"
	"time"
)

// FileResult is the per-file discovery outcome.
type FileResult struct {
	SourcePath   string
	FileName     string
	HashHex      string
	Size         int64
	Deduplicated bool // identical content already seen in this batch
	DiscoveredAt time.Time
	Err          string
}

// DirStats summarizes a directory scan.
type DirStats struct {
	Scanned      uint32
	Matched      uint32
	Succeeded    uint32
	Deduplicated uint32
	Failed       uint32
}

// Ingestor is the behavior the import service depends on.
type Ingestor interface {
	// IngestPath reads and hashes a single file.
	IngestPath(ctx context.Context, path string) (FileResult, error)
	// IngestDirectory collects all matching files under root.
	IngestDirectory(ctx context.Context, root string, skipHidden bool) ([]FileResult, DirStats, error)
}
