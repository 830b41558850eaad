package leave

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-hrms/internal/attendance"
	"go-hrms/internal/events"
	leaveerrors "go-hrms/internal/leave/errors"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Submit(ctx context.Context, actorID, actorRole string, req SubmitLeaveRequest) (LeaveResponse, error)
	List(ctx context.Context, actorID, actorRole string) ([]LeaveResponse, error)
	Decide(ctx context.Context, actorID, leaveID string, req DecideLeaveRequest) (LeaveResponse, error)
}

type service struct {
	db          *gorm.DB
	repo        Repository
	attendances attendance.Repository
	outbox      kafka.OutboxRepository
	logger      *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, attendances attendance.Repository, outbox kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{db: db, repo: repo, attendances: attendances, outbox: outbox, logger: l}
}

func parseDate(value string) (time.Time, error) {
	parsed, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(value), time.UTC)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDate
	}
	return parsed, nil
}

func (s *service) Submit(ctx context.Context, actorID, actorRole string, req SubmitLeaveRequest) (LeaveResponse, error) {
	if actorRole == user.RoleHR {
		return LeaveResponse{}, leaveerrors.ErrHRCannotApply
	}
	uid, err := uuid.Parse(actorID)
	if err != nil {
		return LeaveResponse{}, apperror.ErrUnauthorized
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		return LeaveResponse{}, err
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return LeaveResponse{}, err
	}
	if end.Before(start) {
		return LeaveResponse{}, leaveerrors.ErrInvalidRange
	}

	lr := &LeaveRequest{
		ID:        uuid.New(),
		UserID:    uid,
		LeaveType: req.LeaveType,
		StartDate: start,
		EndDate:   end,
		Status:    StatusPending,
	}
	if remarks := strings.TrimSpace(req.Remarks); remarks != "" {
		lr.Remarks = &remarks
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return LeaveResponse{}, tx.Error
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, lr); err != nil {
		return LeaveResponse{}, err
	}
	if err := tx.Commit().Error; err != nil {
		return LeaveResponse{}, err
	}

	s.logger.Info("leave submitted",
		zap.String("leave_id", lr.ID.String()),
		zap.String("user_id", actorID),
		zap.String("leave_type", lr.LeaveType),
	)
	return MapToLeaveResponse(lr), nil
}

func (s *service) List(ctx context.Context, actorID, actorRole string) ([]LeaveResponse, error) {
	var (
		leaves []LeaveRequest
		err    error
	)
	if actorRole == user.RoleHR {
		leaves, err = s.repo.FindAll(ctx)
	} else {
		leaves, err = s.repo.FindAllByUser(ctx, actorID)
	}
	if err != nil {
		return nil, err
	}
	return mapToLeaveResponses(leaves), nil
}

func (s *service) Decide(ctx context.Context, actorID, leaveID string, req DecideLeaveRequest) (LeaveResponse, error) {
	action := strings.ToLower(strings.TrimSpace(req.Action))
	if action != ActionApprove && action != ActionReject {
		return LeaveResponse{}, leaveerrors.ErrInvalidAction
	}
	if _, err := uuid.Parse(leaveID); err != nil {
		return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return LeaveResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	lr, err := qtx.FindByID(ctx, leaveID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}
	if lr.Status != StatusPending {
		return LeaveResponse{}, leaveerrors.ErrAlreadyDecided
	}

	if comment := strings.TrimSpace(req.Comment); comment != "" {
		lr.AdminComment = &comment
	}

	switch action {
	case ActionApprove:
		lr.Status = StatusApproved
		if err := s.backfillAttendance(ctx, tx, lr); err != nil {
			return LeaveResponse{}, err
		}
	case ActionReject:
		lr.Status = StatusRejected
	}

	if err := qtx.Update(ctx, lr); err != nil {
		return LeaveResponse{}, err
	}

	event, err := kafka.NewOutboxEvent(
		contextutil.GetRequestID(ctx),
		"leave_request",
		lr.ID.String(),
		events.LeaveDecidedEventType,
		events.LeaveDecidedTopic,
		events.LeaveDecidedEvent{
			EventType:  events.LeaveDecidedEventType,
			LeaveID:    lr.ID.String(),
			UserID:     lr.UserID.String(),
			Status:     lr.Status,
			DecidedBy:  actorID,
			OccurredAt: time.Now().UTC(),
		},
	)
	if err != nil {
		return LeaveResponse{}, err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
		return LeaveResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		return LeaveResponse{}, err
	}

	s.logger.Info("leave decided",
		zap.String("leave_id", lr.ID.String()),
		zap.String("status", lr.Status),
		zap.String("decided_by", actorID),
	)
	return MapToLeaveResponse(lr), nil
}

// backfillAttendance marks every day of an approved leave. Days that already
// have an attendance row keep it untouched.
func (s *service) backfillAttendance(ctx context.Context, tx *gorm.DB, lr *LeaveRequest) error {
	qatt := s.attendances.WithTx(tx)

	for day := lr.StartDate; !day.After(lr.EndDate); day = day.AddDate(0, 0, 1) {
		_, err := qatt.FindByUserAndDate(ctx, lr.UserID.String(), day)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		record := &attendance.Attendance{
			ID:     uuid.New(),
			UserID: lr.UserID,
			Date:   day,
			Status: attendance.StatusLeave,
		}
		if err := qatt.Create(ctx, record); err != nil {
			return err
		}
	}
	return nil
}
