package ingest

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestIngestPath(t *testing.T) {
	ing := NewFSIngestor(testLogger())
	path := writeFile(t, t.TempDir(), "913531.pdf", "%PDF-1.4 bill")

	r, err := ing.IngestPath(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "913531.pdf", r.FileName)
	assert.NotEmpty(t, r.HashHex)
	assert.Equal(t, int64(13), r.Size)
	assert.False(t, r.Deduplicated)
}

func TestIngestPathRejectsUnsupportedExtension(t *testing.T) {
	ing := NewFSIngestor(testLogger())
	path := writeFile(t, t.TempDir(), "notes.txt", "not a bill")

	_, err := ing.IngestPath(context.Background(), path)
	require.Error(t, err)
}

func TestIngestPathFlagsRepeatedContent(t *testing.T) {
	ing := NewFSIngestor(testLogger())
	dir := t.TempDir()
	first := writeFile(t, dir, "a.pdf", "%PDF same bytes")
	second := writeFile(t, dir, "b.pdf", "%PDF same bytes")

	r1, err := ing.IngestPath(context.Background(), first)
	require.NoError(t, err)
	assert.False(t, r1.Deduplicated)

	r2, err := ing.IngestPath(context.Background(), second)
	require.NoError(t, err)
	assert.True(t, r2.Deduplicated)
	assert.Equal(t, r1.HashHex, r2.HashHex)
}

func TestIngestDirectory(t *testing.T) {
	ing := NewFSIngestor(testLogger())
	dir := t.TempDir()
	writeFile(t, dir, "913531.pdf", "%PDF one")
	writeFile(t, dir, "nested/022379.pdf", "%PDF two")
	writeFile(t, dir, "readme.txt", "skip me")
	writeFile(t, dir, ".archive/old.pdf", "%PDF hidden")

	results, stats, err := ing.IngestDirectory(context.Background(), dir, true)
	require.NoError(t, err)

	assert.Equal(t, uint32(2), stats.Matched)
	assert.Equal(t, uint32(2), stats.Succeeded)
	assert.Equal(t, uint32(0), stats.Failed)
	assert.Len(t, results, 2)
}

func TestIngestDirectoryIncludesHiddenWhenAsked(t *testing.T) {
	ing := NewFSIngestor(testLogger())
	dir := t.TempDir()
	writeFile(t, dir, ".archive/old.pdf", "%PDF hidden")

	_, stats, err := ing.IngestDirectory(context.Background(), dir, false)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), stats.Matched)
}

func TestIngestDirectoryRequiresRoot(t *testing.T) {
	ing := NewFSIngestor(testLogger())

	_, _, err := ing.IngestDirectory(context.Background(), "  ", true)
	require.Error(t, err)
}
