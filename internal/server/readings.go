package server

import (
	"context"
	"log/slog"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/huisbeheer/utility-tracker/gen/proto/utilitytracker/v1"
	"github.com/huisbeheer/utility-tracker/internal/common"
	"github.com/huisbeheer/utility-tracker/internal/entity"
	"github.com/huisbeheer/utility-tracker/internal/repository"
	"github.com/huisbeheer/utility-tracker/internal/utils"
)

type MeterReadingsService struct {
	pb.UnimplementedMeterReadingsServiceServer
	readingRepo repository.MeterReadingRepository
	addressRepo repository.AddressRepository
	logger      *slog.Logger
}

func NewMeterReadingsService(readingRepo repository.MeterReadingRepository, addressRepo repository.AddressRepository, logger *slog.Logger) *MeterReadingsService {
	return &MeterReadingsService{
		readingRepo: readingRepo,
		addressRepo: addressRepo,
		logger:      logger,
	}
}

func (s *MeterReadingsService) RecordReading(ctx context.Context, req *pb.RecordReadingRequest) (*pb.RecordReadingResponse, error) {
	v := common.NewValidator().
		Field("address", req.GetAddress(), common.Required).
		Field("reading_date", req.GetReadingDate(), common.ISODate).
		Field("water_reading", req.GetWaterReading(), common.NonNegative).
		Field("electricity_reading", req.GetElectricityReading(), common.NonNegative)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}
	if !req.GetHasWater() && !req.GetHasElectricity() {
		return nil, status.Error(codes.InvalidArgument, "at least one meter reading is required")
	}

	readingDate := today()
	if d := strings.TrimSpace(req.GetReadingDate()); d != "" {
		readingDate, _ = utils.ParseYMD(d)
	}

	address := strings.TrimSpace(req.GetAddress())
	if _, err := s.addressRepo.Ensure(ctx, address); err != nil {
		s.logger.Error("failed to register address", "address", address, "error", err)
		return nil, status.Errorf(codes.Internal, "register address: %v", err)
	}

	reading := &entity.MeterReading{
		Address:     address,
		ReadingDate: readingDate,
		Notes:       utils.PtrOrNil(strings.TrimSpace(req.GetNotes())),
	}
	if req.GetHasWater() {
		w := req.GetWaterReading()
		reading.WaterReading = &w
	}
	if req.GetHasElectricity() {
		e := req.GetElectricityReading()
		reading.ElectricityReading = &e
	}

	created, err := s.readingRepo.Create(ctx, reading)
	if err != nil {
		s.logger.Error("failed to record meter reading", "address", address, "error", err)
		return nil, status.Errorf(codes.Internal, "record reading: %v", err)
	}

	s.logger.Info("meter reading recorded", "id", created.ID, "address", created.Address)
	return &pb.RecordReadingResponse{Reading: utils.ToPBReading(created)}, nil
}

func (s *MeterReadingsService) ListReadings(ctx context.Context, req *pb.ListReadingsRequest) (*pb.ListReadingsResponse, error) {
	fromDate, toDate, err := parseDateWindow(req.GetFromDate(), req.GetToDate())
	if err != nil {
		return nil, err
	}

	readings, err := s.readingRepo.List(ctx, strings.TrimSpace(req.GetAddress()), fromDate, toDate)
	if err != nil {
		s.logger.Error("failed to list meter readings", "error", err)
		return nil, status.Errorf(codes.Internal, "list readings: %v", err)
	}

	out := make([]*pb.MeterReading, 0, len(readings))
	for _, r := range readings {
		out = append(out, utils.ToPBReading(r))
	}
	return &pb.ListReadingsResponse{Readings: out}, nil
}

// GetLatestReading returns the newest reading for an address and the
// consumption since the previous reading of each meter.
func (s *MeterReadingsService) GetLatestReading(ctx context.Context, req *pb.GetLatestReadingRequest) (*pb.GetLatestReadingResponse, error) {
	address := strings.TrimSpace(req.GetAddress())
	if address == "" {
		return nil, status.Error(codes.InvalidArgument, "address is required")
	}

	latest, err := s.readingRepo.Latest(ctx, address)
	if err != nil {
		s.logger.Error("failed to get latest reading", "address", address, "error", err)
		return nil, status.Errorf(codes.Internal, "latest reading: %v", err)
	}
	if latest == nil {
		return nil, status.Errorf(codes.NotFound, "no readings for %s", address)
	}

	resp := &pb.GetLatestReadingResponse{Reading: utils.ToPBReading(latest)}

	history, err := s.readingRepo.List(ctx, address, nil, nil)
	if err != nil {
		s.logger.Error("failed to list readings for deltas", "address", address, "error", err)
		return nil, status.Errorf(codes.Internal, "list readings: %v", err)
	}

	// History is newest-first; the first earlier reading carrying the same
	// meter anchors the delta.
	for _, r := range history {
		if r.ID == latest.ID {
			continue
		}
		if latest.WaterReading != nil && !resp.HasWaterDelta && r.WaterReading != nil {
			resp.WaterDelta = *latest.WaterReading - *r.WaterReading
			resp.HasWaterDelta = true
		}
		if latest.ElectricityReading != nil && !resp.HasElectricityDelta && r.ElectricityReading != nil {
			resp.ElectricityDelta = *latest.ElectricityReading - *r.ElectricityReading
			resp.HasElectricityDelta = true
		}
		if resp.HasWaterDelta && resp.HasElectricityDelta {
			break
		}
	}
	return resp, nil
}
