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

func TestTimeSessionRepositoryStartStop(t *testing.T) {
	repo := NewTimeSessionRepository(newTestClient(t), testLogger())
	ctx := context.Background()

	start := time.Date(2025, time.August, 1, 9, 0, 0, 0, time.UTC)
	started, err := repo.Start(ctx, &entity.TimeSession{
		Category:  constants.CategoryCleaning,
		StartTime: start,
	})
	require.NoError(t, err)
	assert.Nil(t, started.EndTime)

	active, err := repo.Active(ctx)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, started.ID, active.ID)

	stopped, err := repo.Stop(ctx, started.ID, start.Add(90*time.Minute))
	require.NoError(t, err)
	require.NotNil(t, stopped.EndTime)
	assert.Equal(t, 90, stopped.DurationMinutes(time.Now()))

	active, err = repo.Active(ctx)
	require.NoError(t, err)
	assert.Nil(t, active)
}

func TestTimeSessionRepositoryCustomCategory(t *testing.T) {
	repo := NewTimeSessionRepository(newTestClient(t), testLogger())
	ctx := context.Background()

	custom := "Garden work"
	started, err := repo.Start(ctx, &entity.TimeSession{
		Category:       constants.CategoryOther,
		CustomCategory: &custom,
		StartTime:      time.Now().UTC(),
	})
	require.NoError(t, err)
	require.NotNil(t, started.CustomCategory)
	assert.Equal(t, "Garden work", *started.CustomCategory)
}

func TestTimeSessionRepositoryRejectsUnknownCategory(t *testing.T) {
	repo := NewTimeSessionRepository(newTestClient(t), testLogger())

	_, err := repo.Start(context.Background(), &entity.TimeSession{
		Category:  "Gardening",
		StartTime: time.Now().UTC(),
	})
	assert.Error(t, err)
}

func TestTimeSessionRepositoryListWindow(t *testing.T) {
	repo := NewTimeSessionRepository(newTestClient(t), testLogger())
	ctx := context.Background()

	for _, d := range []int{1, 10, 20} {
		_, err := repo.Start(ctx, &entity.TimeSession{
			Category:  constants.CategoryMaintenance,
			StartTime: time.Date(2025, time.August, d, 12, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
	}

	from := time.Date(2025, time.August, 5, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.August, 15, 0, 0, 0, 0, time.UTC)
	sessions, err := repo.List(ctx, &from, &to)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, 10, sessions[0].StartTime.Day())
}

func TestTimeSessionRepositoryDelete(t *testing.T) {
	repo := NewTimeSessionRepository(newTestClient(t), testLogger())
	ctx := context.Background()

	started, err := repo.Start(ctx, &entity.TimeSession{
		Category:  constants.CategoryCheckIn,
		StartTime: time.Now().UTC(),
	})
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, started.ID))

	sessions, err := repo.List(ctx, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, sessions)
}
