package server

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	"github.com/huisbeheer/utility-tracker/internal/common"
)

func TestRequestIDInterceptorTagsContext(t *testing.T) {
	interceptor := RequestIDInterceptor(testLogger())

	var seen string
	resp, err := interceptor(context.Background(), "req",
		&grpc.UnaryServerInfo{FullMethod: "/utilitytracker.v1.InvoicesService/ListInvoices"},
		func(ctx context.Context, req interface{}) (interface{}, error) {
			seen = common.RequestIDFromContext(ctx)
			return "ok", nil
		})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
	assert.NotEmpty(t, seen)
}

func TestRequestIDInterceptorPassesErrors(t *testing.T) {
	interceptor := RequestIDInterceptor(testLogger())

	wantErr := errors.New("boom")
	_, err := interceptor(context.Background(), "req",
		&grpc.UnaryServerInfo{FullMethod: "/utilitytracker.v1.InvoicesService/ListInvoices"},
		func(ctx context.Context, req interface{}) (interface{}, error) {
			return nil, wantErr
		})
	assert.ErrorIs(t, err, wantErr)
}
