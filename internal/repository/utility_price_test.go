package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huisbeheer/utility-tracker/constants"
	"github.com/huisbeheer/utility-tracker/internal/entity"
)

func TestUtilityPriceRepositoryEnsureDefaults(t *testing.T) {
	repo := NewUtilityPriceRepository(newTestClient(t), testLogger())
	ctx := context.Background()

	require.NoError(t, repo.EnsureDefaults(ctx))
	// A second call must not duplicate the seed rows.
	require.NoError(t, repo.EnsureDefaults(ctx))

	prices, err := repo.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, prices, 2)

	electricity, err := repo.Current(ctx, constants.Electricity, time.Now().UTC())
	require.NoError(t, err)
	require.NotNil(t, electricity)
	assert.InDelta(t, 0.35, electricity.PricePerUnit, 0.0001)
	assert.Equal(t, "kWh", electricity.UnitName)
	assert.Equal(t, "USD", electricity.Currency)

	water, err := repo.Current(ctx, constants.Water, time.Now().UTC())
	require.NoError(t, err)
	require.NotNil(t, water)
	assert.InDelta(t, 2.50, water.PricePerUnit, 0.0001)
	assert.Equal(t, "m3", water.UnitName)
}

func TestUtilityPriceRepositorySetClosesPrevious(t *testing.T) {
	repo := NewUtilityPriceRepository(newTestClient(t), testLogger())
	ctx := context.Background()
	require.NoError(t, repo.EnsureDefaults(ctx))

	newFrom := day(2025, time.June, 1)
	_, err := repo.Set(ctx, &entity.UtilityPrice{
		UtilityType:   constants.Electricity,
		PricePerUnit:  0.42,
		UnitName:      "kWh",
		Currency:      "USD",
		EffectiveFrom: newFrom,
	})
	require.NoError(t, err)

	current, err := repo.Current(ctx, constants.Electricity, day(2025, time.July, 1))
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.InDelta(t, 0.42, current.PricePerUnit, 0.0001)

	// The old tariff still answers for dates before the change.
	old, err := repo.Current(ctx, constants.Electricity, day(2024, time.June, 1))
	require.NoError(t, err)
	require.NotNil(t, old)
	assert.InDelta(t, 0.35, old.PricePerUnit, 0.0001)

	history, err := repo.List(ctx, constants.Electricity)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.NotNil(t, history[1].EffectiveUntil)
}

func TestUtilityPriceRepositoryCurrentNone(t *testing.T) {
	repo := NewUtilityPriceRepository(newTestClient(t), testLogger())

	price, err := repo.Current(context.Background(), constants.Water, time.Now().UTC())
	require.NoError(t, err)
	assert.Nil(t, price)
}
