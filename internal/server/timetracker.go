package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/huisbeheer/utility-tracker/constants"
	pb "github.com/huisbeheer/utility-tracker/gen/proto/utilitytracker/v1"
	"github.com/huisbeheer/utility-tracker/internal/common"
	"github.com/huisbeheer/utility-tracker/internal/entity"
	"github.com/huisbeheer/utility-tracker/internal/repository"
	"github.com/huisbeheer/utility-tracker/internal/utils"
)

type TimeTrackerService struct {
	pb.UnimplementedTimeTrackerServiceServer
	sessionRepo repository.TimeSessionRepository
	logger      *slog.Logger
}

func NewTimeTrackerService(sessionRepo repository.TimeSessionRepository, logger *slog.Logger) *TimeTrackerService {
	return &TimeTrackerService{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

func (s *TimeTrackerService) StartSession(ctx context.Context, req *pb.StartSessionRequest) (*pb.StartSessionResponse, error) {
	v := common.NewValidator().
		Field("category", req.GetCategory(), common.Required, common.OneOf(constants.SessionCategories()...))
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}
	if req.GetCategory() == constants.CategoryOther && strings.TrimSpace(req.GetCustomCategory()) == "" {
		return nil, status.Error(codes.InvalidArgument, "custom_category is required when category is Other")
	}

	active, err := s.sessionRepo.Active(ctx)
	if err != nil {
		s.logger.Error("failed to check active session", "error", err)
		return nil, status.Errorf(codes.Internal, "check active session: %v", err)
	}
	if active != nil {
		return nil, status.Errorf(codes.FailedPrecondition, "a session is already running (started %s)", active.StartTime.UTC().Format(time.RFC3339))
	}

	session := &entity.TimeSession{
		Category:       req.GetCategory(),
		CustomCategory: utils.PtrOrNil(strings.TrimSpace(req.GetCustomCategory())),
		StartTime:      time.Now().UTC(),
		Notes:          utils.PtrOrNil(strings.TrimSpace(req.GetNotes())),
	}

	started, err := s.sessionRepo.Start(ctx, session)
	if err != nil {
		s.logger.Error("failed to start session", "category", session.Category, "error", err)
		return nil, status.Errorf(codes.Internal, "start session: %v", err)
	}

	s.logger.Info("time session started", "id", started.ID, "category", started.Category)
	return &pb.StartSessionResponse{Session: utils.ToPBSession(started)}, nil
}

func (s *TimeTrackerService) StopSession(ctx context.Context, req *pb.StopSessionRequest) (*pb.StopSessionResponse, error) {
	id, err := uuid.Parse(req.GetId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "id must be a UUID")
	}

	stopped, err := s.sessionRepo.Stop(ctx, id, time.Now().UTC())
	if err != nil {
		s.logger.Error("failed to stop session", "id", id, "error", err)
		return nil, status.Errorf(codes.Internal, "stop session: %v", err)
	}

	s.logger.Info("time session stopped", "id", id, "duration_minutes", stopped.DurationMinutes(time.Now().UTC()))
	return &pb.StopSessionResponse{Session: utils.ToPBSession(stopped)}, nil
}

func (s *TimeTrackerService) ListSessions(ctx context.Context, req *pb.ListSessionsRequest) (*pb.ListSessionsResponse, error) {
	fromDate, toDate, err := parseDateWindow(req.GetFromDate(), req.GetToDate())
	if err != nil {
		return nil, err
	}

	sessions, err := s.sessionRepo.List(ctx, fromDate, toDate)
	if err != nil {
		s.logger.Error("failed to list sessions", "error", err)
		return nil, status.Errorf(codes.Internal, "list sessions: %v", err)
	}

	out := make([]*pb.TimeSession, 0, len(sessions))
	for _, sess := range sessions {
		out = append(out, utils.ToPBSession(sess))
	}
	return &pb.ListSessionsResponse{Sessions: out}, nil
}

func (s *TimeTrackerService) DeleteSession(ctx context.Context, req *pb.DeleteSessionRequest) (*pb.DeleteSessionResponse, error) {
	id, err := uuid.Parse(req.GetId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "id must be a UUID")
	}
	if err := s.sessionRepo.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete session", "id", id, "error", err)
		return nil, status.Errorf(codes.Internal, "delete session: %v", err)
	}
	return &pb.DeleteSessionResponse{}, nil
}

// parseDateWindow parses optional YYYY-MM-DD bounds shared by list RPCs.
func parseDateWindow(fromDate, toDate string) (*time.Time, *time.Time, error) {
	var fromPtr, toPtr *time.Time
	if fd := strings.TrimSpace(fromDate); fd != "" {
		t, err := utils.ParseYMD(fd)
		if err != nil {
			return nil, nil, status.Error(codes.InvalidArgument, "from_date must be YYYY-MM-DD")
		}
		fromPtr = &t
	}
	if td := strings.TrimSpace(toDate); td != "" {
		t, err := utils.ParseYMD(td)
		if err != nil {
			return nil, nil, status.Error(codes.InvalidArgument, "to_date must be YYYY-MM-DD")
		}
		toPtr = &t
	}
	return fromPtr, toPtr, nil
}
