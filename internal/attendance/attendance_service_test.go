package attendance_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-hrms/internal/attendance"
	attendanceerrors "go-hrms/internal/attendance/errors"
	"go-hrms/internal/user"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeAttendanceRepository struct {
	createFn                 func(ctx context.Context, a *attendance.Attendance) error
	findByUserAndDateFn      func(ctx context.Context, userID string, date time.Time) (*attendance.Attendance, error)
	updateFn                 func(ctx context.Context, a *attendance.Attendance) error
	findAllByDateRangeFn     func(ctx context.Context, from, to time.Time) ([]attendance.Attendance, error)
	findByUserAndDateRangeFn func(ctx context.Context, userID string, from, to time.Time) ([]attendance.Attendance, error)
	findRecentFn             func(ctx context.Context, limit int) ([]attendance.Attendance, error)
	findRecentByUserFn       func(ctx context.Context, userID string, limit int) ([]attendance.Attendance, error)
}

func (f *fakeAttendanceRepository) WithTx(tx *gorm.DB) attendance.Repository { return f }

func (f *fakeAttendanceRepository) Create(ctx context.Context, a *attendance.Attendance) error {
	if f.createFn != nil {
		return f.createFn(ctx, a)
	}
	return nil
}

func (f *fakeAttendanceRepository) FindByUserAndDate(ctx context.Context, userID string, date time.Time) (*attendance.Attendance, error) {
	if f.findByUserAndDateFn != nil {
		return f.findByUserAndDateFn(ctx, userID, date)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAttendanceRepository) Update(ctx context.Context, a *attendance.Attendance) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, a)
	}
	return nil
}

func (f *fakeAttendanceRepository) FindAllByDateRange(ctx context.Context, from, to time.Time) ([]attendance.Attendance, error) {
	if f.findAllByDateRangeFn != nil {
		return f.findAllByDateRangeFn(ctx, from, to)
	}
	return nil, nil
}

func (f *fakeAttendanceRepository) FindByUserAndDateRange(ctx context.Context, userID string, from, to time.Time) ([]attendance.Attendance, error) {
	if f.findByUserAndDateRangeFn != nil {
		return f.findByUserAndDateRangeFn(ctx, userID, from, to)
	}
	return nil, nil
}

func (f *fakeAttendanceRepository) FindRecent(ctx context.Context, limit int) ([]attendance.Attendance, error) {
	if f.findRecentFn != nil {
		return f.findRecentFn(ctx, limit)
	}
	return nil, nil
}

func (f *fakeAttendanceRepository) FindRecentByUser(ctx context.Context, userID string, limit int) ([]attendance.Attendance, error) {
	if f.findRecentByUserFn != nil {
		return f.findRecentByUserFn(ctx, userID, limit)
	}
	return nil, nil
}

type attendanceServiceDeps struct {
	sqlMock sqlmock.Sqlmock
	service attendance.Service
	repo    *fakeAttendanceRepository
}

func setupAttendanceServiceTest(t *testing.T) *attendanceServiceDeps {
	t.Helper()

	sqlDB, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Discard,
	})
	assert.NoError(t, err)

	repo := &fakeAttendanceRepository{}
	svc := attendance.NewService(gormDB, repo)

	return &attendanceServiceDeps{sqlMock: sqlMock, service: svc, repo: repo}
}

func TestAttendanceService_CheckIn(t *testing.T) {
	actorID := uuid.NewString()

	t.Run("success", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)

		var created *attendance.Attendance
		deps.repo.createFn = func(ctx context.Context, a *attendance.Attendance) error {
			created = a
			return nil
		}
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		resp, err := deps.service.CheckIn(context.Background(), actorID, user.RoleEmployee)
		assert.NoError(t, err)
		assert.Equal(t, attendance.StatusPresent, resp.Status)
		assert.NotNil(t, resp.CheckIn)

		assert.NotNil(t, created)
		assert.Equal(t, actorID, created.UserID.String())
		assert.Equal(t, time.UTC, created.Date.Location())
		assert.Zero(t, created.Date.Hour())
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative hr cannot check in", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)

		_, err := deps.service.CheckIn(context.Background(), actorID, user.RoleHR)
		assert.ErrorIs(t, err, attendanceerrors.ErrHRNotPermitted)
	})

	t.Run("negative already checked in", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)

		deps.repo.findByUserAndDateFn = func(ctx context.Context, userID string, date time.Time) (*attendance.Attendance, error) {
			return &attendance.Attendance{ID: uuid.New()}, nil
		}
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.CheckIn(context.Background(), actorID, user.RoleEmployee)
		assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyCheckedIn)
	})

	t.Run("negative lost race against duplicate insert", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)

		deps.repo.createFn = func(ctx context.Context, a *attendance.Attendance) error {
			return errors.New(`duplicate key value violates unique constraint "uq_attendances_user_date"`)
		}
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.CheckIn(context.Background(), actorID, user.RoleEmployee)
		assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyCheckedIn)
	})
}

func TestAttendanceService_CheckOut(t *testing.T) {
	actorID := uuid.NewString()

	t.Run("success", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)

		checkIn := time.Now().UTC().Add(-8 * time.Hour)
		deps.repo.findByUserAndDateFn = func(ctx context.Context, userID string, date time.Time) (*attendance.Attendance, error) {
			return &attendance.Attendance{
				ID:      uuid.New(),
				UserID:  uuid.MustParse(actorID),
				Date:    date,
				CheckIn: &checkIn,
				Status:  attendance.StatusPresent,
			}, nil
		}

		var updated *attendance.Attendance
		deps.repo.updateFn = func(ctx context.Context, a *attendance.Attendance) error {
			updated = a
			return nil
		}
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		resp, err := deps.service.CheckOut(context.Background(), actorID, user.RoleEmployee)
		assert.NoError(t, err)
		assert.NotNil(t, resp.CheckOut)
		assert.NotNil(t, updated.CheckOut)
	})

	t.Run("negative hr cannot check out", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)

		_, err := deps.service.CheckOut(context.Background(), actorID, user.RoleHR)
		assert.ErrorIs(t, err, attendanceerrors.ErrHRNotPermitted)
	})

	t.Run("negative not checked in", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.CheckOut(context.Background(), actorID, user.RoleEmployee)
		assert.ErrorIs(t, err, attendanceerrors.ErrNotCheckedIn)
	})

	t.Run("negative already checked out", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)

		now := time.Now().UTC()
		deps.repo.findByUserAndDateFn = func(ctx context.Context, userID string, date time.Time) (*attendance.Attendance, error) {
			return &attendance.Attendance{
				ID:       uuid.New(),
				CheckIn:  &now,
				CheckOut: &now,
			}, nil
		}
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.CheckOut(context.Background(), actorID, user.RoleEmployee)
		assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyCheckedOut)
	})
}

func TestAttendanceService_List(t *testing.T) {
	actorID := uuid.NewString()

	t.Run("success weekly spans monday to sunday", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)

		var gotFrom, gotTo time.Time
		deps.repo.findByUserAndDateRangeFn = func(ctx context.Context, userID string, from, to time.Time) ([]attendance.Attendance, error) {
			gotFrom, gotTo = from, to
			return nil, nil
		}

		// 2025-06-18 is a Wednesday.
		_, err := deps.service.List(context.Background(), actorID, user.RoleEmployee, "weekly", "2025-06-18")
		assert.NoError(t, err)
		assert.Equal(t, "2025-06-16", gotFrom.Format("2006-01-02"))
		assert.Equal(t, "2025-06-22", gotTo.Format("2006-01-02"))
	})

	t.Run("success hr sees everyone", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)

		called := false
		deps.repo.findAllByDateRangeFn = func(ctx context.Context, from, to time.Time) ([]attendance.Attendance, error) {
			called = true
			assert.Equal(t, from, to)
			return []attendance.Attendance{{ID: uuid.New(), UserID: uuid.New(), Status: attendance.StatusPresent}}, nil
		}

		resp, err := deps.service.List(context.Background(), actorID, user.RoleHR, "daily", "2025-06-18")
		assert.NoError(t, err)
		assert.True(t, called)
		assert.Len(t, resp, 1)
	})

	t.Run("negative invalid date", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)

		_, err := deps.service.List(context.Background(), actorID, user.RoleEmployee, "daily", "18-06-2025")
		assert.ErrorIs(t, err, attendanceerrors.ErrInvalidDate)
	})

	t.Run("negative invalid view", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)

		_, err := deps.service.List(context.Background(), actorID, user.RoleEmployee, "monthly", "")
		assert.ErrorIs(t, err, attendanceerrors.ErrInvalidView)
	})
}
