package repository

import (
	"context"
	"log/slog"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/huisbeheer/utility-tracker/constants"
	"github.com/huisbeheer/utility-tracker/gen/ent"
	entprice "github.com/huisbeheer/utility-tracker/gen/ent/utilityprice"
	"github.com/huisbeheer/utility-tracker/internal/entity"
	"github.com/huisbeheer/utility-tracker/internal/utils"
)

type UtilityPriceRepository interface {
	// Current returns the price effective at "at" for the utility type.
	Current(ctx context.Context, utilityType constants.UtilityType, at time.Time) (*entity.UtilityPrice, error)
	// Set closes the open-ended price for the type, if one exists, and
	// records the new tariff effective from the given date.
	Set(ctx context.Context, price *entity.UtilityPrice) (*entity.UtilityPrice, error)
	List(ctx context.Context, utilityType constants.UtilityType) ([]*entity.UtilityPrice, error)
	// EnsureDefaults seeds the standard tariffs when the table is empty.
	EnsureDefaults(ctx context.Context) error
}

type utilityPriceRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewUtilityPriceRepository(client *ent.Client, logger *slog.Logger) UtilityPriceRepository {
	return &utilityPriceRepository{
		client: client,
		logger: logger,
	}
}

func (r *utilityPriceRepository) Current(ctx context.Context, utilityType constants.UtilityType, at time.Time) (*entity.UtilityPrice, error) {
	row, err := r.client.UtilityPrice.Query().
		Where(
			entprice.UtilityType(string(utilityType)),
			entprice.EffectiveFromLTE(at),
			entprice.Or(
				entprice.EffectiveUntilIsNil(),
				entprice.EffectiveUntilGTE(at),
			),
		).
		Order(entprice.ByEffectiveFrom(entsql.OrderDesc())).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return utils.ToUtilityPrice(row), nil
}

func (r *utilityPriceRepository) Set(ctx context.Context, price *entity.UtilityPrice) (*entity.UtilityPrice, error) {
	// Close the currently open tariff so price history never overlaps.
	_, err := r.client.UtilityPrice.Update().
		Where(
			entprice.UtilityType(string(price.UtilityType)),
			entprice.EffectiveUntilIsNil(),
		).
		SetEffectiveUntil(price.EffectiveFrom).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to close previous price", "utility_type", price.UtilityType, "error", err)
		return nil, err
	}

	row, err := r.client.UtilityPrice.Create().
		SetUtilityType(string(price.UtilityType)).
		SetPricePerUnit(price.PricePerUnit).
		SetUnitName(price.UnitName).
		SetCurrency(price.Currency).
		SetEffectiveFrom(price.EffectiveFrom).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to set price", "utility_type", price.UtilityType, "error", err)
		return nil, err
	}
	return utils.ToUtilityPrice(row), nil
}

func (r *utilityPriceRepository) List(ctx context.Context, utilityType constants.UtilityType) ([]*entity.UtilityPrice, error) {
	q := r.client.UtilityPrice.Query()
	if utilityType != "" {
		q = q.Where(entprice.UtilityType(string(utilityType)))
	}

	rows, err := q.Order(entprice.ByEffectiveFrom(entsql.OrderDesc())).All(ctx)
	if err != nil {
		r.logger.Error("failed to list prices", "error", err)
		return nil, err
	}

	result := make([]*entity.UtilityPrice, len(rows))
	for i, row := range rows {
		result[i] = utils.ToUtilityPrice(row)
	}
	return result, nil
}

func (r *utilityPriceRepository) EnsureDefaults(ctx context.Context) error {
	n, err := r.client.UtilityPrice.Query().Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	from := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	defaults := []*ent.UtilityPriceCreate{
		r.client.UtilityPrice.Create().
			SetUtilityType(string(constants.Electricity)).
			SetPricePerUnit(0.35).
			SetUnitName("kWh").
			SetCurrency("USD").
			SetEffectiveFrom(from),
		r.client.UtilityPrice.Create().
			SetUtilityType(string(constants.Water)).
			SetPricePerUnit(2.50).
			SetUnitName("m3").
			SetCurrency("USD").
			SetEffectiveFrom(from),
	}
	if err := r.client.UtilityPrice.CreateBulk(defaults...).Exec(ctx); err != nil {
		r.logger.Error("failed to seed default prices", "error", err)
		return err
	}
	r.logger.Info("seeded default utility prices")
	return nil
}
