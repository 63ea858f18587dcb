package repository

import (
	"context"
	"log/slog"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/huisbeheer/utility-tracker/gen/ent"
	entsession "github.com/huisbeheer/utility-tracker/gen/ent/timesession"
	"github.com/huisbeheer/utility-tracker/internal/entity"
	"github.com/huisbeheer/utility-tracker/internal/utils"
)

type TimeSessionRepository interface {
	Start(ctx context.Context, session *entity.TimeSession) (*entity.TimeSession, error)
	Stop(ctx context.Context, id uuid.UUID, endTime time.Time) (*entity.TimeSession, error)
	List(ctx context.Context, fromDate, toDate *time.Time) ([]*entity.TimeSession, error)
	// Active returns the running session, if any. At most one session runs
	// at a time; starting a new one while another runs is a caller error.
	Active(ctx context.Context) (*entity.TimeSession, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type timeSessionRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewTimeSessionRepository(client *ent.Client, logger *slog.Logger) TimeSessionRepository {
	return &timeSessionRepository{
		client: client,
		logger: logger,
	}
}

func (r *timeSessionRepository) Start(ctx context.Context, session *entity.TimeSession) (*entity.TimeSession, error) {
	row, err := r.client.TimeSession.Create().
		SetCategory(session.Category).
		SetNillableCustomCategory(session.CustomCategory).
		SetStartTime(session.StartTime).
		SetNillableNotes(session.Notes).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to start time session", "category", session.Category, "error", err)
		return nil, err
	}
	return utils.ToTimeSession(row), nil
}

func (r *timeSessionRepository) Stop(ctx context.Context, id uuid.UUID, endTime time.Time) (*entity.TimeSession, error) {
	row, err := r.client.TimeSession.UpdateOneID(id).
		SetEndTime(endTime).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to stop time session", "id", id, "error", err)
		return nil, err
	}
	return utils.ToTimeSession(row), nil
}

func (r *timeSessionRepository) List(ctx context.Context, fromDate, toDate *time.Time) ([]*entity.TimeSession, error) {
	q := r.client.TimeSession.Query()
	if fromDate != nil {
		q = q.Where(entsession.StartTimeGTE(*fromDate))
	}
	if toDate != nil {
		q = q.Where(entsession.StartTimeLTE(*toDate))
	}

	rows, err := q.Order(entsession.ByStartTime(entsql.OrderDesc())).All(ctx)
	if err != nil {
		r.logger.Error("failed to list time sessions", "error", err)
		return nil, err
	}

	result := make([]*entity.TimeSession, len(rows))
	for i, row := range rows {
		result[i] = utils.ToTimeSession(row)
	}
	return result, nil
}

func (r *timeSessionRepository) Active(ctx context.Context) (*entity.TimeSession, error) {
	row, err := r.client.TimeSession.Query().
		Where(entsession.EndTimeIsNil()).
		Order(entsession.ByStartTime(entsql.OrderDesc())).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return utils.ToTimeSession(row), nil
}

func (r *timeSessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.client.TimeSession.DeleteOneID(id).Exec(ctx)
}
