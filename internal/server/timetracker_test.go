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

func newTimeTrackerService(t *testing.T) *TimeTrackerService {
	t.Helper()
	client := newTestClient(t)
	logger := testLogger()
	return NewTimeTrackerService(repository.NewTimeSessionRepository(client, logger), logger)
}

func TestStartAndStopSession(t *testing.T) {
	svc := newTimeTrackerService(t)
	ctx := context.Background()

	started, err := svc.StartSession(ctx, &pb.StartSessionRequest{Category: "Cleaning"})
	require.NoError(t, err)
	assert.Equal(t, "Cleaning", started.GetSession().GetCategory())
	assert.Empty(t, started.GetSession().GetEndTime())

	stopped, err := svc.StopSession(ctx, &pb.StopSessionRequest{Id: started.GetSession().GetId()})
	require.NoError(t, err)
	assert.NotEmpty(t, stopped.GetSession().GetEndTime())
}

func TestStartSessionRejectsUnknownCategory(t *testing.T) {
	svc := newTimeTrackerService(t)

	_, err := svc.StartSession(context.Background(), &pb.StartSessionRequest{Category: "Gardening"})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestStartSessionOtherRequiresCustomCategory(t *testing.T) {
	svc := newTimeTrackerService(t)
	ctx := context.Background()

	_, err := svc.StartSession(ctx, &pb.StartSessionRequest{Category: "Other"})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	resp, err := svc.StartSession(ctx, &pb.StartSessionRequest{Category: "Other", CustomCategory: "Pool service"})
	require.NoError(t, err)
	assert.Equal(t, "Pool service", resp.GetSession().GetCustomCategory())
}

func TestStartSessionWhileRunning(t *testing.T) {
	svc := newTimeTrackerService(t)
	ctx := context.Background()

	_, err := svc.StartSession(ctx, &pb.StartSessionRequest{Category: "Maintenance"})
	require.NoError(t, err)

	_, err = svc.StartSession(ctx, &pb.StartSessionRequest{Category: "Cleaning"})
	require.Error(t, err)
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
}

func TestListAndDeleteSessions(t *testing.T) {
	svc := newTimeTrackerService(t)
	ctx := context.Background()

	started, err := svc.StartSession(ctx, &pb.StartSessionRequest{Category: "Check-in", Notes: "guests at 3pm"})
	require.NoError(t, err)

	list, err := svc.ListSessions(ctx, &pb.ListSessionsRequest{})
	require.NoError(t, err)
	require.Len(t, list.GetSessions(), 1)
	assert.Equal(t, "guests at 3pm", list.GetSessions()[0].GetNotes())

	_, err = svc.DeleteSession(ctx, &pb.DeleteSessionRequest{Id: started.GetSession().GetId()})
	require.NoError(t, err)

	list, err = svc.ListSessions(ctx, &pb.ListSessionsRequest{})
	require.NoError(t, err)
	assert.Empty(t, list.GetSessions())
}
