package attendance

import (
	"context"
	"errors"
	"time"

	attendanceerrors "go-hrms/internal/attendance/errors"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	CheckIn(ctx context.Context, actorID, actorRole string) (AttendanceResponse, error)
	CheckOut(ctx context.Context, actorID, actorRole string) (AttendanceResponse, error)
	List(ctx context.Context, actorID, actorRole, view, dateStr string) ([]AttendanceResponse, error)
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// weekOf returns the Monday..Sunday range containing the given day.
func weekOf(day time.Time) (time.Time, time.Time) {
	offset := (int(day.Weekday()) + 6) % 7
	start := day.AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 6)
}

func (s *service) CheckIn(ctx context.Context, actorID, actorRole string) (AttendanceResponse, error) {
	if actorRole == user.RoleHR {
		return AttendanceResponse{}, attendanceerrors.ErrHRNotPermitted
	}
	uid, err := uuid.Parse(actorID)
	if err != nil {
		return AttendanceResponse{}, apperror.ErrUnauthorized
	}

	now := time.Now().UTC()
	today := dateOnly(now)

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return AttendanceResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByUserAndDate(ctx, actorID, today); err == nil {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyCheckedIn
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return AttendanceResponse{}, err
	}

	record := &Attendance{
		ID:      uuid.New(),
		UserID:  uid,
		Date:    today,
		CheckIn: &now,
		Status:  StatusPresent,
	}
	if err := qtx.Create(ctx, record); err != nil {
		// The unique index catches the race two concurrent check-ins
		// would otherwise win together.
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return AttendanceResponse{}, err
	}

	s.logger.Info("checked in",
		zap.String("user_id", actorID),
		zap.String("date", today.Format("2006-01-02")),
	)
	return MapToAttendanceResponse(record), nil
}

func (s *service) CheckOut(ctx context.Context, actorID, actorRole string) (AttendanceResponse, error) {
	if actorRole == user.RoleHR {
		return AttendanceResponse{}, attendanceerrors.ErrHRNotPermitted
	}

	now := time.Now().UTC()
	today := dateOnly(now)

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return AttendanceResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	record, err := qtx.FindByUserAndDate(ctx, actorID, today)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrNotCheckedIn
		}
		return AttendanceResponse{}, err
	}
	if record.CheckOut != nil {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyCheckedOut
	}

	record.CheckOut = &now
	if err := qtx.Update(ctx, record); err != nil {
		return AttendanceResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		return AttendanceResponse{}, err
	}

	s.logger.Info("checked out",
		zap.String("user_id", actorID),
		zap.String("date", today.Format("2006-01-02")),
	)
	return MapToAttendanceResponse(record), nil
}

func (s *service) List(ctx context.Context, actorID, actorRole, view, dateStr string) ([]AttendanceResponse, error) {
	refDate := dateOnly(time.Now())
	if dateStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateStr, time.UTC)
		if err != nil {
			return nil, attendanceerrors.ErrInvalidDate
		}
		refDate = parsed
	}

	var from, to time.Time
	switch view {
	case "", ViewDaily:
		from, to = refDate, refDate
	case ViewWeekly:
		from, to = weekOf(refDate)
	default:
		return nil, attendanceerrors.ErrInvalidView
	}

	var (
		records []Attendance
		err     error
	)
	if actorRole == user.RoleHR {
		records, err = s.repo.FindAllByDateRange(ctx, from, to)
	} else {
		records, err = s.repo.FindByUserAndDateRange(ctx, actorID, from, to)
	}
	if err != nil {
		return nil, err
	}

	return mapToAttendanceResponses(records), nil
}
