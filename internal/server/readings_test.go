package server

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/huisbeheer/utility-tracker/gen/proto/utilitytracker/v1"
	"github.com/huisbeheer/utility-tracker/internal/repository"
)

func newReadingsService(t *testing.T) (*MeterReadingsService, repository.AddressRepository) {
	t.Helper()
	client := newTestClient(t)
	logger := testLogger()
	addresses := repository.NewAddressRepository(client, logger)
	return NewMeterReadingsService(repository.NewMeterReadingRepository(client, logger), addresses, logger), addresses
}

func TestRecordReading(t *testing.T) {
	svc, addresses := newReadingsService(t)
	ctx := context.Background()

	resp, err := svc.RecordReading(ctx, &pb.RecordReadingRequest{
		Address:            "KAYA KUARTS 23",
		ReadingDate:        "2025-07-01",
		WaterReading:       1523.25,
		HasWater:           true,
		ElectricityReading: 88412,
		HasElectricity:     true,
		Notes:              "after tenant change",
	})
	require.NoError(t, err)

	r := resp.GetReading()
	assert.Equal(t, "2025-07-01", r.GetReadingDate())
	assert.True(t, r.GetHasWater())
	assert.True(t, r.GetHasElectricity())
	assert.InDelta(t, 1523.25, r.GetWaterReading(), 0.0001)

	// Recording a reading registers its address.
	list, err := addresses.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "KAYA KUARTS 23", list[0].Name)
}

func TestRecordReadingRequiresAtLeastOneMeter(t *testing.T) {
	svc, _ := newReadingsService(t)

	_, err := svc.RecordReading(context.Background(), &pb.RecordReadingRequest{
		Address: "KAYA KUARTS 23",
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestRecordReadingDefaultsToToday(t *testing.T) {
	svc, _ := newReadingsService(t)

	resp, err := svc.RecordReading(context.Background(), &pb.RecordReadingRequest{
		Address:      "KAYA KUARTS 23",
		WaterReading: 10,
		HasWater:     true,
	})
	require.NoError(t, err)
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), resp.GetReading().GetReadingDate())
}

func TestGetLatestReadingDeltas(t *testing.T) {
	svc, _ := newReadingsService(t)
	ctx := context.Background()

	_, err := svc.RecordReading(ctx, &pb.RecordReadingRequest{
		Address:            "KAYA KUARTS 23",
		ReadingDate:        "2025-06-01",
		WaterReading:       1500,
		HasWater:           true,
		ElectricityReading: 88000,
		HasElectricity:     true,
	})
	require.NoError(t, err)

	_, err = svc.RecordReading(ctx, &pb.RecordReadingRequest{
		Address:      "KAYA KUARTS 23",
		ReadingDate:  "2025-07-01",
		WaterReading: 1523.25,
		HasWater:     true,
	})
	require.NoError(t, err)

	resp, err := svc.GetLatestReading(ctx, &pb.GetLatestReadingRequest{Address: "KAYA KUARTS 23"})
	require.NoError(t, err)

	assert.Equal(t, "2025-07-01", resp.GetReading().GetReadingDate())
	assert.True(t, resp.GetHasWaterDelta())
	assert.InDelta(t, 23.25, resp.GetWaterDelta(), 0.0001)
	// The newest reading carries no electricity meter, so no delta.
	assert.False(t, resp.GetHasElectricityDelta())
}

func TestGetLatestReadingUnknownAddress(t *testing.T) {
	svc, _ := newReadingsService(t)

	_, err := svc.GetLatestReading(context.Background(), &pb.GetLatestReadingRequest{Address: "nowhere"})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestListReadingsFiltersByAddress(t *testing.T) {
	svc, _ := newReadingsService(t)
	ctx := context.Background()

	for _, addr := range []string{"KAYA KUARTS 23", "KAYA WATERVILLAS 84-A"} {
		_, err := svc.RecordReading(ctx, &pb.RecordReadingRequest{
			Address:      addr,
			WaterReading: 1,
			HasWater:     true,
		})
		require.NoError(t, err)
	}

	list, err := svc.ListReadings(ctx, &pb.ListReadingsRequest{Address: "KAYA KUARTS 23"})
	require.NoError(t, err)
	require.Len(t, list.GetReadings(), 1)
	assert.Equal(t, "KAYA KUARTS 23", list.GetReadings()[0].GetAddress())
}
