package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huisbeheer/utility-tracker/internal/entity"
)

func ptr[T any](v T) *T { return &v }

func TestMeterReadingRepositoryCreateAndList(t *testing.T) {
	repo := NewMeterReadingRepository(newTestClient(t), testLogger())
	ctx := context.Background()

	created, err := repo.Create(ctx, &entity.MeterReading{
		Address:      "KAYA WATERVILLAS 84-A",
		ReadingDate:  day(2025, time.July, 1),
		WaterReading: ptr(1523.250),
	})
	require.NoError(t, err)
	require.NotNil(t, created.WaterReading)
	assert.InDelta(t, 1523.250, *created.WaterReading, 0.0001)
	assert.Nil(t, created.ElectricityReading)

	_, err = repo.Create(ctx, &entity.MeterReading{
		Address:            "KAYA KUARTS 23",
		ReadingDate:        day(2025, time.July, 2),
		WaterReading:       ptr(88.0),
		ElectricityReading: ptr(40211.0),
		Notes:              ptr("both meters"),
	})
	require.NoError(t, err)

	all, err := repo.List(ctx, "", nil, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byAddress, err := repo.List(ctx, "KAYA KUARTS 23", nil, nil)
	require.NoError(t, err)
	require.Len(t, byAddress, 1)
	require.NotNil(t, byAddress[0].Notes)
	assert.Equal(t, "both meters", *byAddress[0].Notes)

	from := day(2025, time.July, 2)
	windowed, err := repo.List(ctx, "", &from, nil)
	require.NoError(t, err)
	assert.Len(t, windowed, 1)
}

func TestMeterReadingRepositoryLatest(t *testing.T) {
	repo := NewMeterReadingRepository(newTestClient(t), testLogger())
	ctx := context.Background()

	none, err := repo.Latest(ctx, "KAYA KUARTS 23")
	require.NoError(t, err)
	assert.Nil(t, none)

	for d, w := range map[int]float64{1: 1500, 15: 1510, 8: 1505} {
		_, err := repo.Create(ctx, &entity.MeterReading{
			Address:      "KAYA KUARTS 23",
			ReadingDate:  day(2025, time.July, d),
			WaterReading: ptr(w),
		})
		require.NoError(t, err)
	}

	latest, err := repo.Latest(ctx, "KAYA KUARTS 23")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, day(2025, time.July, 15), latest.ReadingDate)
}

func TestAddressRepositoryEnsureIsIdempotent(t *testing.T) {
	repo := NewAddressRepository(newTestClient(t), testLogger())
	ctx := context.Background()

	first, err := repo.Ensure(ctx, "KAYA WATERVILLAS 84-A")
	require.NoError(t, err)
	second, err := repo.Ensure(ctx, "KAYA WATERVILLAS 84-A")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	_, err = repo.Ensure(ctx, "KAYA KUARTS 23")
	require.NoError(t, err)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
