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

	"github.com/huisbeheer/utility-tracker/constants"
	pb "github.com/huisbeheer/utility-tracker/gen/proto/utilitytracker/v1"
	"github.com/huisbeheer/utility-tracker/internal/common"
	"github.com/huisbeheer/utility-tracker/internal/entity"
	"github.com/huisbeheer/utility-tracker/internal/parse"
	"github.com/huisbeheer/utility-tracker/internal/pdftext"
	"github.com/huisbeheer/utility-tracker/internal/repository"
	"github.com/huisbeheer/utility-tracker/internal/stats"
	"github.com/huisbeheer/utility-tracker/internal/utils"
)

type InvoicesService struct {
	pb.UnimplementedInvoicesServiceServer
	invoiceRepo repository.InvoiceRepository
	addressRepo repository.AddressRepository
	parser      *parse.Parser
	dueDays     int
	logger      *slog.Logger
}

func NewInvoicesService(invoiceRepo repository.InvoiceRepository, addressRepo repository.AddressRepository, parser *parse.Parser, dueDays int, logger *slog.Logger) *InvoicesService {
	if dueDays <= 0 {
		dueDays = 14
	}
	return &InvoicesService{
		invoiceRepo: invoiceRepo,
		addressRepo: addressRepo,
		parser:      parser,
		dueDays:     dueDays,
		logger:      logger,
	}
}

func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *InvoicesService) ParseInvoicePdf(ctx context.Context, req *pb.ParseInvoicePdfRequest) (*pb.ParseInvoicePdfResponse, error) {
	if len(req.GetContent()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "content is required")
	}

	parsed, err := s.parser.ParseInvoice(ctx, req.GetContent(), req.GetFileName())
	if err != nil {
		var extractErr *pdftext.ExtractionError
		if errors.As(err, &extractErr) {
			s.logger.Warn("invoice pdf rejected", "file_name", req.GetFileName(), "reason", extractErr.Reason)
			return nil, status.Errorf(codes.InvalidArgument, "unreadable pdf: %s", extractErr.Reason)
		}
		s.logger.Error("failed to parse invoice pdf", "file_name", req.GetFileName(), "error", err)
		return nil, status.Errorf(codes.Internal, "parse invoice: %v", err)
	}

	return &pb.ParseInvoicePdfResponse{Invoice: utils.ToPBParsedInvoice(parsed)}, nil
}

func (s *InvoicesService) CreateInvoice(ctx context.Context, req *pb.CreateInvoiceRequest) (*pb.CreateInvoiceResponse, error) {
	v := common.NewValidator().
		Field("customer_number", req.GetCustomerNumber(), common.Required).
		Field("utility_type", req.GetUtilityType(), common.Required, common.OneOf(constants.UtilityTypes()...)).
		Field("amount", req.GetAmount(), common.NonNegative).
		Field("invoice_date", req.GetInvoiceDate(), common.ISODate).
		Field("due_date", req.GetDueDate(), common.ISODate)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}

	invoiceDate := today()
	if d := strings.TrimSpace(req.GetInvoiceDate()); d != "" {
		invoiceDate, _ = utils.ParseYMD(d)
	}
	dueDate := invoiceDate.AddDate(0, 0, s.dueDays)
	if d := strings.TrimSpace(req.GetDueDate()); d != "" {
		dueDate, _ = utils.ParseYMD(d)
	}

	if addr := strings.TrimSpace(req.GetAddress()); addr != "" {
		if _, err := s.addressRepo.Ensure(ctx, addr); err != nil {
			s.logger.Error("failed to register address", "address", addr, "error", err)
			return nil, status.Errorf(codes.Internal, "register address: %v", err)
		}
	}

	inv := &entity.Invoice{
		CustomerNumber: req.GetCustomerNumber(),
		InvoiceNumber:  req.GetInvoiceNumber(),
		Address:        strings.TrimSpace(req.GetAddress()),
		InvoiceDate:    invoiceDate,
		DueDate:        dueDate,
		Amount:         req.GetAmount(),
		IsPaid:         req.GetIsPaid(),
		UtilityType:    constants.UtilityType(req.GetUtilityType()),
		FileName:       req.GetFileName(),
		FilePath:       utils.PtrOrNil(req.GetFilePath()),
	}

	created, err := s.invoiceRepo.Create(ctx, inv)
	if err != nil {
		s.logger.Error("failed to create invoice", "customer_number", inv.CustomerNumber, "error", err)
		return nil, status.Errorf(codes.Internal, "create invoice: %v", err)
	}

	s.logger.Info("invoice created", "id", created.ID, "customer_number", created.CustomerNumber, "amount", created.Amount)
	return &pb.CreateInvoiceResponse{Invoice: utils.ToPBInvoice(created)}, nil
}

func (s *InvoicesService) ListInvoices(ctx context.Context, req *pb.ListInvoicesRequest) (*pb.ListInvoicesResponse, error) {
	filter, err := filterFromRequest(req.GetAddress(), req.GetUtilityType(), req.GetPaymentStatus(), req.GetFromDate(), req.GetToDate())
	if err != nil {
		return nil, err
	}

	invoices, err := s.invoiceRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list invoices", "error", err)
		return nil, status.Errorf(codes.Internal, "list invoices: %v", err)
	}

	out := make([]*pb.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, utils.ToPBInvoice(inv))
	}
	return &pb.ListInvoicesResponse{Invoices: out}, nil
}

func (s *InvoicesService) UpdateInvoice(ctx context.Context, req *pb.UpdateInvoiceRequest) (*pb.UpdateInvoiceResponse, error) {
	in := req.GetInvoice()
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "invoice is required")
	}
	id, err := uuid.Parse(in.GetId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "id must be a UUID")
	}

	v := common.NewValidator().
		Field("customer_number", in.GetCustomerNumber(), common.Required).
		Field("utility_type", in.GetUtilityType(), common.Required, common.OneOf(constants.UtilityTypes()...)).
		Field("amount", in.GetAmount(), common.NonNegative).
		Field("invoice_date", in.GetInvoiceDate(), common.Required, common.ISODate).
		Field("due_date", in.GetDueDate(), common.Required, common.ISODate).
		Field("payment_date", in.GetPaymentDate(), common.ISODate)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}

	invoiceDate, _ := utils.ParseYMD(in.GetInvoiceDate())
	dueDate, _ := utils.ParseYMD(in.GetDueDate())
	var paymentDate *time.Time
	if pd := strings.TrimSpace(in.GetPaymentDate()); pd != "" {
		t, _ := utils.ParseYMD(pd)
		paymentDate = &t
	}

	updated, err := s.invoiceRepo.Update(ctx, &entity.Invoice{
		ID:             id,
		CustomerNumber: in.GetCustomerNumber(),
		InvoiceNumber:  in.GetInvoiceNumber(),
		Address:        in.GetAddress(),
		InvoiceDate:    invoiceDate,
		DueDate:        dueDate,
		Amount:         in.GetAmount(),
		IsPaid:         in.GetIsPaid(),
		PaymentDate:    paymentDate,
		UtilityType:    constants.UtilityType(in.GetUtilityType()),
		FileName:       in.GetFileName(),
		FilePath:       utils.PtrOrNil(in.GetFilePath()),
	})
	if err != nil {
		s.logger.Error("failed to update invoice", "id", id, "error", err)
		return nil, status.Errorf(codes.Internal, "update invoice: %v", err)
	}
	return &pb.UpdateInvoiceResponse{Invoice: utils.ToPBInvoice(updated)}, nil
}

func (s *InvoicesService) MarkInvoicePaid(ctx context.Context, req *pb.MarkInvoicePaidRequest) (*pb.MarkInvoicePaidResponse, error) {
	id, err := uuid.Parse(req.GetId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "id must be a UUID")
	}

	paymentDate := today()
	if pd := strings.TrimSpace(req.GetPaymentDate()); pd != "" {
		paymentDate, err = utils.ParseYMD(pd)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "payment_date must be YYYY-MM-DD")
		}
	}

	updated, err := s.invoiceRepo.MarkPaid(ctx, id, paymentDate)
	if err != nil {
		s.logger.Error("failed to mark invoice paid", "id", id, "error", err)
		return nil, status.Errorf(codes.Internal, "mark invoice paid: %v", err)
	}

	s.logger.Info("invoice marked paid", "id", id, "payment_date", paymentDate.Format("2006-01-02"))
	return &pb.MarkInvoicePaidResponse{Invoice: utils.ToPBInvoice(updated)}, nil
}

func (s *InvoicesService) DeleteInvoice(ctx context.Context, req *pb.DeleteInvoiceRequest) (*pb.DeleteInvoiceResponse, error) {
	id, err := uuid.Parse(req.GetId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "id must be a UUID")
	}
	if err := s.invoiceRepo.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete invoice", "id", id, "error", err)
		return nil, status.Errorf(codes.Internal, "delete invoice: %v", err)
	}
	return &pb.DeleteInvoiceResponse{}, nil
}

func (s *InvoicesService) GetInvoiceStats(ctx context.Context, req *pb.GetInvoiceStatsRequest) (*pb.GetInvoiceStatsResponse, error) {
	invoices, err := s.invoiceRepo.List(ctx, entity.InvoiceFilter{Address: req.GetAddress()})
	if err != nil {
		s.logger.Error("failed to list invoices for stats", "error", err)
		return nil, status.Errorf(codes.Internal, "list invoices: %v", err)
	}

	total, count := stats.UnpaidTotal(invoices)
	return &pb.GetInvoiceStatsResponse{
		Stats: &pb.InvoiceStats{
			UnpaidTotal:          total,
			UnpaidCount:          int32(count),
			TotalCount:           int32(len(invoices)),
			PercentageDifference: stats.PercentageDifference(invoices),
			MonthlyTotals:        stats.MonthlyTotals(invoices),
		},
	}, nil
}

// filterFromRequest validates list/export filter fields shared by the
// invoices and export services.
func filterFromRequest(address, utilityType, paymentStatus, fromDate, toDate string) (entity.InvoiceFilter, error) {
	filter := entity.InvoiceFilter{Address: strings.TrimSpace(address)}

	if ut := strings.TrimSpace(utilityType); ut != "" {
		parsed, ok := constants.ParseUtilityType(ut)
		if !ok {
			return entity.InvoiceFilter{}, status.Error(codes.InvalidArgument, "utility_type must be water or electricity")
		}
		filter.UtilityType = parsed
		filter.HasUtility = true
	}

	switch strings.TrimSpace(paymentStatus) {
	case "", "paid", "unpaid":
		filter.PaymentStatus = strings.TrimSpace(paymentStatus)
	default:
		return entity.InvoiceFilter{}, status.Error(codes.InvalidArgument, "payment_status must be paid or unpaid")
	}

	if fd := strings.TrimSpace(fromDate); fd != "" {
		t, err := utils.ParseYMD(fd)
		if err != nil {
			return entity.InvoiceFilter{}, status.Error(codes.InvalidArgument, "from_date must be YYYY-MM-DD")
		}
		filter.FromDate = &t
	}
	if td := strings.TrimSpace(toDate); td != "" {
		t, err := utils.ParseYMD(td)
		if err != nil {
			return entity.InvoiceFilter{}, status.Error(codes.InvalidArgument, "to_date must be YYYY-MM-DD")
		}
		filter.ToDate = &t
	}
	return filter, nil
}
