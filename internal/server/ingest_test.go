package server

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/huisbeheer/utility-tracker/gen/proto/utilitytracker/v1"
	"github.com/huisbeheer/utility-tracker/internal/async"
	"github.com/huisbeheer/utility-tracker/internal/entity"
	"github.com/huisbeheer/utility-tracker/internal/ingest"
	"github.com/huisbeheer/utility-tracker/internal/parse"
	"github.com/huisbeheer/utility-tracker/internal/pipeline"
	"github.com/huisbeheer/utility-tracker/internal/repository"
)

func newImportService(t *testing.T, text string) (*ImportServiceServer, repository.InvoiceRepository, *async.ProcessorQueue) {
	t.Helper()
	client := newTestClient(t)
	logger := testLogger()
	invoices := repository.NewInvoiceRepository(client, logger)
	addresses := repository.NewAddressRepository(client, logger)
	parser := parse.NewParser(&stubExtractor{text: text}, nil, logger)
	proc := pipeline.NewProcessor(parser, invoices, addresses, pipeline.Config{DueDays: 14}, logger)
	queue := async.NewProcessorQueue(
		async.FileProcessorFunc(func(ctx context.Context, path string) error {
			_, _, err := proc.ProcessFile(ctx, path)
			return err
		}),
		logger,
		async.WithWorkers(1),
	)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		queue.Shutdown(ctx)
	})
	svc := NewImportServiceServer(ingest.NewFSIngestor(logger), proc, queue, logger)
	return svc, invoices, queue
}

func writeBill(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestImportFile(t *testing.T) {
	svc, _, _ := newImportService(t, "Factuurnummer: INV-2024-001\nTE BETALEN: 150.00")
	path := writeBill(t, t.TempDir(), "913531.pdf", "%PDF bill one")

	resp, err := svc.ImportFile(context.Background(), &pb.ImportFileRequest{Path: path})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.GetInvoiceId())
	assert.NotEmpty(t, resp.GetContentHashHex())
	assert.False(t, resp.GetDeduplicated())
}

func TestImportFileRequiresPath(t *testing.T) {
	svc, _, _ := newImportService(t, "")

	_, err := svc.ImportFile(context.Background(), &pb.ImportFileRequest{})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestImportFileMissingFile(t *testing.T) {
	svc, _, _ := newImportService(t, "")

	_, err := svc.ImportFile(context.Background(), &pb.ImportFileRequest{
		Path: filepath.Join(t.TempDir(), "nope.pdf"),
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestImportFileRepeatedContent(t *testing.T) {
	svc, invoices, _ := newImportService(t, "TE BETALEN: 80.50")
	dir := t.TempDir()
	first := writeBill(t, dir, "913531.pdf", "%PDF same bytes")
	second := writeBill(t, dir, "022379.pdf", "%PDF same bytes")

	r1, err := svc.ImportFile(context.Background(), &pb.ImportFileRequest{Path: first})
	require.NoError(t, err)
	assert.False(t, r1.GetDeduplicated())

	r2, err := svc.ImportFile(context.Background(), &pb.ImportFileRequest{Path: second})
	require.NoError(t, err)
	assert.True(t, r2.GetDeduplicated())
	assert.Empty(t, r2.GetInvoiceId())

	stored, err := invoices.List(context.Background(), entity.InvoiceFilter{})
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestImportDirectory(t *testing.T) {
	svc, invoices, _ := newImportService(t, "TE BETALEN: 80.50")
	dir := t.TempDir()
	writeBill(t, dir, "913531.pdf", "%PDF bill one")
	writeBill(t, dir, "022379.pdf", "%PDF bill two")
	writeBill(t, dir, "readme.txt", "skip me")

	resp, err := svc.ImportDirectory(context.Background(), &pb.ImportDirectoryRequest{
		RootPath:   dir,
		SkipHidden: true,
	})
	require.NoError(t, err)

	assert.Equal(t, uint32(2), resp.GetMatched())
	assert.Equal(t, uint32(2), resp.GetSucceeded())
	assert.Equal(t, uint32(0), resp.GetFailed())
	require.Len(t, resp.GetResults(), 2)

	stored, err := invoices.List(context.Background(), entity.InvoiceFilter{})
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestImportDirectoryAsync(t *testing.T) {
	svc, invoices, queue := newImportService(t, "TE BETALEN: 80.50")
	dir := t.TempDir()
	writeBill(t, dir, "913531.pdf", "%PDF bill one")
	writeBill(t, dir, "022379.pdf", "%PDF bill two")

	resp, err := svc.ImportDirectory(context.Background(), &pb.ImportDirectoryRequest{
		RootPath: dir,
		Async:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, uint32(2), resp.GetSucceeded())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	queue.Shutdown(ctx)

	stored, err := invoices.List(context.Background(), entity.InvoiceFilter{})
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestImportDirectoryRequiresRoot(t *testing.T) {
	svc, _, _ := newImportService(t, "")

	_, err := svc.ImportDirectory(context.Background(), &pb.ImportDirectoryRequest{})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
