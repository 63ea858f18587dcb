package repository

import (
	"context"
	"log/slog"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/huisbeheer/utility-tracker/gen/ent"
	entreading "github.com/huisbeheer/utility-tracker/gen/ent/meterreading"
	"github.com/huisbeheer/utility-tracker/internal/entity"
	"github.com/huisbeheer/utility-tracker/internal/utils"
)

type MeterReadingRepository interface {
	Create(ctx context.Context, reading *entity.MeterReading) (*entity.MeterReading, error)
	List(ctx context.Context, address string, fromDate, toDate *time.Time) ([]*entity.MeterReading, error)
	// Latest returns the newest reading for the address, or nil when the
	// address has none.
	Latest(ctx context.Context, address string) (*entity.MeterReading, error)
}

type meterReadingRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewMeterReadingRepository(client *ent.Client, logger *slog.Logger) MeterReadingRepository {
	return &meterReadingRepository{
		client: client,
		logger: logger,
	}
}

func (r *meterReadingRepository) Create(ctx context.Context, reading *entity.MeterReading) (*entity.MeterReading, error) {
	row, err := r.client.MeterReading.Create().
		SetAddress(reading.Address).
		SetReadingDate(reading.ReadingDate).
		SetNillableWaterReading(reading.WaterReading).
		SetNillableElectricityReading(reading.ElectricityReading).
		SetNillableNotes(reading.Notes).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create meter reading", "address", reading.Address, "error", err)
		return nil, err
	}
	return utils.ToMeterReading(row), nil
}

func (r *meterReadingRepository) List(ctx context.Context, address string, fromDate, toDate *time.Time) ([]*entity.MeterReading, error) {
	q := r.client.MeterReading.Query()
	if address != "" {
		q = q.Where(entreading.Address(address))
	}
	if fromDate != nil {
		q = q.Where(entreading.ReadingDateGTE(*fromDate))
	}
	if toDate != nil {
		q = q.Where(entreading.ReadingDateLTE(*toDate))
	}

	rows, err := q.Order(entreading.ByReadingDate(entsql.OrderDesc())).All(ctx)
	if err != nil {
		r.logger.Error("failed to list meter readings", "address", address, "error", err)
		return nil, err
	}

	result := make([]*entity.MeterReading, len(rows))
	for i, row := range rows {
		result[i] = utils.ToMeterReading(row)
	}
	return result, nil
}

func (r *meterReadingRepository) Latest(ctx context.Context, address string) (*entity.MeterReading, error) {
	row, err := r.client.MeterReading.Query().
		Where(entreading.Address(address)).
		Order(entreading.ByReadingDate(entsql.OrderDesc())).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return utils.ToMeterReading(row), nil
}
