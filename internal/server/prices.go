package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/huisbeheer/utility-tracker/constants"
	pb "github.com/huisbeheer/utility-tracker/gen/proto/utilitytracker/v1"
	"github.com/huisbeheer/utility-tracker/internal/common"
	"github.com/huisbeheer/utility-tracker/internal/entity"
	"github.com/huisbeheer/utility-tracker/internal/repository"
	"github.com/huisbeheer/utility-tracker/internal/utils"
)

type UtilityPricesService struct {
	pb.UnimplementedUtilityPricesServiceServer
	priceRepo repository.UtilityPriceRepository
	logger    *slog.Logger
}

func NewUtilityPricesService(priceRepo repository.UtilityPriceRepository, logger *slog.Logger) *UtilityPricesService {
	return &UtilityPricesService{
		priceRepo: priceRepo,
		logger:    logger,
	}
}

func (s *UtilityPricesService) GetCurrentPrice(ctx context.Context, req *pb.GetCurrentPriceRequest) (*pb.GetCurrentPriceResponse, error) {
	ut, ok := constants.ParseUtilityType(req.GetUtilityType())
	if !ok {
		return nil, status.Error(codes.InvalidArgument, "utility_type must be water or electricity")
	}

	price, err := s.priceRepo.Current(ctx, ut, time.Now().UTC())
	if err != nil {
		s.logger.Error("failed to get current price", "utility_type", ut, "error", err)
		return nil, status.Errorf(codes.Internal, "get current price: %v", err)
	}
	if price == nil {
		return nil, status.Errorf(codes.NotFound, "no price configured for %s", ut)
	}
	return &pb.GetCurrentPriceResponse{Price: utils.ToPBPrice(price)}, nil
}

func (s *UtilityPricesService) SetPrice(ctx context.Context, req *pb.SetPriceRequest) (*pb.SetPriceResponse, error) {
	ut, ok := constants.ParseUtilityType(req.GetUtilityType())
	if !ok {
		return nil, status.Error(codes.InvalidArgument, "utility_type must be water or electricity")
	}
	if req.GetPricePerUnit() <= 0 {
		return nil, status.Error(codes.InvalidArgument, "price_per_unit must be positive")
	}

	currency := strings.ToUpper(strings.TrimSpace(req.GetCurrency()))
	if currency == "" {
		currency = "USD"
	}
	v := common.NewValidator().
		Field("currency", currency, common.CurrencyCode).
		Field("effective_from", req.GetEffectiveFrom(), common.ISODate)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}

	unitName := strings.TrimSpace(req.GetUnitName())
	if unitName == "" {
		// Sensible units per type so callers rarely need to set one.
		if ut == constants.Electricity {
			unitName = "kWh"
		} else {
			unitName = "m3"
		}
	}

	effectiveFrom := today()
	if d := strings.TrimSpace(req.GetEffectiveFrom()); d != "" {
		effectiveFrom, _ = utils.ParseYMD(d)
	}

	price, err := s.priceRepo.Set(ctx, &entity.UtilityPrice{
		UtilityType:   ut,
		PricePerUnit:  req.GetPricePerUnit(),
		UnitName:      unitName,
		Currency:      currency,
		EffectiveFrom: effectiveFrom,
	})
	if err != nil {
		s.logger.Error("failed to set price", "utility_type", ut, "error", err)
		return nil, status.Errorf(codes.Internal, "set price: %v", err)
	}

	s.logger.Info("utility price set", "utility_type", ut, "price_per_unit", price.PricePerUnit, "effective_from", price.EffectiveFrom.Format("2006-01-02"))
	return &pb.SetPriceResponse{Price: utils.ToPBPrice(price)}, nil
}

func (s *UtilityPricesService) ListPrices(ctx context.Context, req *pb.ListPricesRequest) (*pb.ListPricesResponse, error) {
	var ut constants.UtilityType
	if raw := strings.TrimSpace(req.GetUtilityType()); raw != "" {
		parsed, ok := constants.ParseUtilityType(raw)
		if !ok {
			return nil, status.Error(codes.InvalidArgument, "utility_type must be water or electricity")
		}
		ut = parsed
	}

	prices, err := s.priceRepo.List(ctx, ut)
	if err != nil {
		s.logger.Error("failed to list prices", "error", err)
		return nil, status.Errorf(codes.Internal, "list prices: %v", err)
	}

	out := make([]*pb.UtilityPrice, 0, len(prices))
	for _, p := range prices {
		out = append(out, utils.ToPBPrice(p))
	}
	return &pb.ListPricesResponse{Prices: out}, nil
}
