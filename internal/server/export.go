package server

import (
	"context"
	"log/slog"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/huisbeheer/utility-tracker/gen/proto/utilitytracker/v1"
	"github.com/huisbeheer/utility-tracker/internal/export"
)

type ExportServer struct {
	pb.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

func (s *ExportServer) ExportInvoices(ctx context.Context, req *pb.ExportInvoicesRequest) (*pb.ExportInvoicesResponse, error) {
	filter, err := filterFromRequest(req.GetAddress(), req.GetUtilityType(), "", req.GetFromDate(), req.GetToDate())
	if err != nil {
		return nil, err
	}

	xlsx, err := s.svc.ExportInvoicesXLSX(ctx, filter)
	if err != nil {
		s.logger.Error("export.invoices.failed", "error", err)
		return nil, status.Errorf(codes.Internal, "export invoices: %v", err)
	}
	return &pb.ExportInvoicesResponse{Xlsx: xlsx}, nil
}

func (s *ExportServer) ExportReadings(ctx context.Context, req *pb.ExportReadingsRequest) (*pb.ExportReadingsResponse, error) {
	fromDate, toDate, err := parseDateWindow(req.GetFromDate(), req.GetToDate())
	if err != nil {
		return nil, err
	}

	xlsx, err := s.svc.ExportReadingsXLSX(ctx, strings.TrimSpace(req.GetAddress()), fromDate, toDate)
	if err != nil {
		s.logger.Error("export.readings.failed", "error", err)
		return nil, status.Errorf(codes.Internal, "export readings: %v", err)
	}
	return &pb.ExportReadingsResponse{Xlsx: xlsx}, nil
}

func (s *ExportServer) ExportSessions(ctx context.Context, req *pb.ExportSessionsRequest) (*pb.ExportSessionsResponse, error) {
	fromDate, toDate, err := parseDateWindow(req.GetFromDate(), req.GetToDate())
	if err != nil {
		return nil, err
	}

	xlsx, err := s.svc.ExportSessionsXLSX(ctx, fromDate, toDate)
	if err != nil {
		s.logger.Error("export.sessions.failed", "error", err)
		return nil, status.Errorf(codes.Internal, "export sessions: %v", err)
	}
	return &pb.ExportSessionsResponse{Xlsx: xlsx}, nil
}
