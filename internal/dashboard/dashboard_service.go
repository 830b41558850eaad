package dashboard

import (
	"context"

	"go-hrms/internal/attendance"
	"go-hrms/internal/leave"
	"go-hrms/internal/user"

	"go.uber.org/zap"
)

const (
	recentAttendanceSelf = 5
	recentAttendanceAll  = 10
)

type Service interface {
	EmployeeSummary(ctx context.Context, actorID string) (EmployeeSummary, error)
	AdminSummary(ctx context.Context) (AdminSummary, error)
}

type service struct {
	users       user.Repository
	attendances attendance.Repository
	leaves      leave.Repository
	logger      *zap.Logger
}

func NewService(users user.Repository, attendances attendance.Repository, leaves leave.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{users: users, attendances: attendances, leaves: leaves, logger: l}
}

func (s *service) EmployeeSummary(ctx context.Context, actorID string) (EmployeeSummary, error) {
	records, err := s.attendances.FindRecentByUser(ctx, actorID, recentAttendanceSelf)
	if err != nil {
		return EmployeeSummary{}, err
	}

	pending, err := s.leaves.CountPendingByUser(ctx, actorID)
	if err != nil {
		return EmployeeSummary{}, err
	}

	summary := EmployeeSummary{
		RecentAttendance: make([]attendance.AttendanceResponse, 0, len(records)),
		PendingLeaves:    pending,
	}
	for i := range records {
		summary.RecentAttendance = append(summary.RecentAttendance, attendance.MapToAttendanceResponse(&records[i]))
	}
	return summary, nil
}

func (s *service) AdminSummary(ctx context.Context) (AdminSummary, error) {
	employees, err := s.users.FindAllByRole(ctx, user.RoleEmployee)
	if err != nil {
		return AdminSummary{}, err
	}

	records, err := s.attendances.FindRecent(ctx, recentAttendanceAll)
	if err != nil {
		return AdminSummary{}, err
	}

	pending, err := s.leaves.CountPending(ctx)
	if err != nil {
		return AdminSummary{}, err
	}

	summary := AdminSummary{
		Employees:        make([]EmployeeCard, 0, len(employees)),
		RecentAttendance: make([]attendance.AttendanceResponse, 0, len(records)),
		PendingLeaves:    pending,
	}
	for i := range employees {
		summary.Employees = append(summary.Employees, mapToEmployeeCard(&employees[i]))
	}
	for i := range records {
		summary.RecentAttendance = append(summary.RecentAttendance, attendance.MapToAttendanceResponse(&records[i]))
	}
	return summary, nil
}
