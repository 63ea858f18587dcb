package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/huisbeheer/utility-tracker/gen/proto/utilitytracker/v1"
	"github.com/huisbeheer/utility-tracker/internal/async"
	"github.com/huisbeheer/utility-tracker/internal/ingest"
	"github.com/huisbeheer/utility-tracker/internal/pdftext"
	"github.com/huisbeheer/utility-tracker/internal/pipeline"
)

// ImportServiceServer wires filesystem discovery to the invoice pipeline.
type ImportServiceServer struct {
	pb.UnimplementedImportServiceServer
	ingestor  ingest.Ingestor
	processor *pipeline.Processor
	queue     async.Queue
	logger    *slog.Logger
}

func NewImportServiceServer(ingestor ingest.Ingestor, processor *pipeline.Processor, queue async.Queue, logger *slog.Logger) *ImportServiceServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ImportServiceServer{
		ingestor:  ingestor,
		processor: processor,
		queue:     queue,
		logger:    logger,
	}
}

func (s *ImportServiceServer) ImportFile(ctx context.Context, req *pb.ImportFileRequest) (*pb.ImportFileResponse, error) {
	path := strings.TrimSpace(req.GetPath())
	if path == "" {
		return nil, status.Error(codes.InvalidArgument, "path is required")
	}

	fr, err := s.ingestor.IngestPath(ctx, path)
	if err != nil {
		s.logger.Error("import.file.discover_failed", "path", path, "error", err)
		return nil, status.Errorf(codes.InvalidArgument, "cannot read %q: %v", path, err)
	}

	resp := &pb.ImportFileResponse{
		SourcePath:     fr.SourcePath,
		ContentHashHex: fr.HashHex,
	}
	if fr.Deduplicated {
		resp.Deduplicated = true
		return resp, nil
	}

	inv, dup, err := s.processor.ProcessFile(ctx, fr.SourcePath)
	if err != nil {
		var xerr *pdftext.ExtractionError
		if errors.As(err, &xerr) {
			return nil, status.Errorf(codes.InvalidArgument, "unreadable pdf: %s", xerr.Reason)
		}
		s.logger.Error("import.file.failed", "path", fr.SourcePath, "error", err)
		return nil, status.Errorf(codes.Internal, "import %q: %v", fr.SourcePath, err)
	}
	if dup {
		resp.Deduplicated = true
		return resp, nil
	}
	resp.InvoiceId = inv.ID.String()
	return resp, nil
}

func (s *ImportServiceServer) ImportDirectory(ctx context.Context, req *pb.ImportDirectoryRequest) (*pb.ImportDirectoryResponse, error) {
	root := strings.TrimSpace(req.GetRootPath())
	if root == "" {
		return nil, status.Error(codes.InvalidArgument, "root_path is required")
	}

	files, stats, err := s.ingestor.IngestDirectory(ctx, root, req.GetSkipHidden())
	if err != nil {
		s.logger.Error("import.dir.scan_failed", "root", root, "error", err)
		return nil, status.Errorf(codes.Internal, "scan %q: %v", root, err)
	}

	resp := &pb.ImportDirectoryResponse{
		Scanned: stats.Scanned,
		Matched: stats.Matched,
	}

	if req.GetAsync() {
		return s.enqueueAll(ctx, resp, files)
	}

	for _, fr := range files {
		r := &pb.ImportFileResponse{
			SourcePath:     fr.SourcePath,
			ContentHashHex: fr.HashHex,
			Error:          fr.Err,
		}
		switch {
		case fr.Err != "":
			resp.Failed++
		case fr.Deduplicated:
			r.Deduplicated = true
			resp.Deduplicated++
		default:
			inv, dup, err := s.processor.ProcessFile(ctx, fr.SourcePath)
			switch {
			case err != nil:
				r.Error = err.Error()
				resp.Failed++
			case dup:
				r.Deduplicated = true
				resp.Deduplicated++
			default:
				r.InvoiceId = inv.ID.String()
				resp.Succeeded++
			}
		}
		resp.Results = append(resp.Results, r)
	}

	s.logger.Info("import.dir.done",
		"root", root,
		"scanned", resp.Scanned,
		"matched", resp.Matched,
		"succeeded", resp.Succeeded,
		"deduplicated", resp.Deduplicated,
		"failed", resp.Failed,
	)
	return resp, nil
}

// enqueueAll hands non-duplicate files to the background queue. Per-file
// outcomes are only logged; the response reports what was accepted.
func (s *ImportServiceServer) enqueueAll(ctx context.Context, resp *pb.ImportDirectoryResponse, files []ingest.FileResult) (*pb.ImportDirectoryResponse, error) {
	for _, fr := range files {
		r := &pb.ImportFileResponse{
			SourcePath:     fr.SourcePath,
			ContentHashHex: fr.HashHex,
			Error:          fr.Err,
		}
		switch {
		case fr.Err != "":
			resp.Failed++
		case fr.Deduplicated:
			r.Deduplicated = true
			resp.Deduplicated++
		default:
			job := async.Job{
				Path:        fr.SourcePath,
				SubmittedAt: time.Now().UTC(),
				TraceID:     uuid.NewString(),
			}
			if err := s.queue.Enqueue(ctx, job); err != nil {
				r.Error = err.Error()
				resp.Failed++
				resp.Results = append(resp.Results, r)
				continue
			}
			resp.Succeeded++
		}
		resp.Results = append(resp.Results, r)
	}
	return resp, nil
}
