package server

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/huisbeheer/utility-tracker/gen/proto/utilitytracker/v1"
	"github.com/huisbeheer/utility-tracker/internal/repository"
)

func newPricesService(t *testing.T) (*UtilityPricesService, repository.UtilityPriceRepository) {
	t.Helper()
	client := newTestClient(t)
	logger := testLogger()
	repo := repository.NewUtilityPriceRepository(client, logger)
	return NewUtilityPricesService(repo, logger), repo
}

func TestGetCurrentPriceAfterSeeding(t *testing.T) {
	svc, repo := newPricesService(t)
	ctx := context.Background()
	require.NoError(t, repo.EnsureDefaults(ctx))

	resp, err := svc.GetCurrentPrice(ctx, &pb.GetCurrentPriceRequest{UtilityType: "electricity"})
	require.NoError(t, err)
	assert.InDelta(t, 0.35, resp.GetPrice().GetPricePerUnit(), 0.0001)
	assert.Equal(t, "kWh", resp.GetPrice().GetUnitName())
}

func TestGetCurrentPriceNotConfigured(t *testing.T) {
	svc, _ := newPricesService(t)

	_, err := svc.GetCurrentPrice(context.Background(), &pb.GetCurrentPriceRequest{UtilityType: "water"})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestSetPriceDefaults(t *testing.T) {
	svc, _ := newPricesService(t)
	ctx := context.Background()

	resp, err := svc.SetPrice(ctx, &pb.SetPriceRequest{
		UtilityType:  "water",
		PricePerUnit: 2.75,
	})
	require.NoError(t, err)

	p := resp.GetPrice()
	assert.Equal(t, "USD", p.GetCurrency())
	assert.Equal(t, "m3", p.GetUnitName())
	assert.NotEmpty(t, p.GetEffectiveFrom())
}

func TestSetPriceRejectsBadInput(t *testing.T) {
	svc, _ := newPricesService(t)
	ctx := context.Background()

	_, err := svc.SetPrice(ctx, &pb.SetPriceRequest{UtilityType: "gas", PricePerUnit: 1})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = svc.SetPrice(ctx, &pb.SetPriceRequest{UtilityType: "water", PricePerUnit: 0})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = svc.SetPrice(ctx, &pb.SetPriceRequest{UtilityType: "water", PricePerUnit: 1, Currency: "DOLLARS"})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestSetPriceSupersedesCurrent(t *testing.T) {
	svc, repo := newPricesService(t)
	ctx := context.Background()
	require.NoError(t, repo.EnsureDefaults(ctx))

	_, err := svc.SetPrice(ctx, &pb.SetPriceRequest{
		UtilityType:  "electricity",
		PricePerUnit: 0.42,
	})
	require.NoError(t, err)

	resp, err := svc.GetCurrentPrice(ctx, &pb.GetCurrentPriceRequest{UtilityType: "electricity"})
	require.NoError(t, err)
	assert.InDelta(t, 0.42, resp.GetPrice().GetPricePerUnit(), 0.0001)
}
