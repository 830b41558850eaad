package dashboard

import (
	"go-hrms/internal/attendance"
	"go-hrms/internal/user"
)

type EmployeeCard struct {
	UserID     string `json:"user_id"`
	EmployeeID string `json:"employee_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Department string `json:"department"`
	Position   string `json:"position"`
}

type EmployeeSummary struct {
	RecentAttendance []attendance.AttendanceResponse `json:"recent_attendance"`
	PendingLeaves    int64                           `json:"pending_leaves"`
}

type AdminSummary struct {
	Employees        []EmployeeCard                  `json:"employees"`
	RecentAttendance []attendance.AttendanceResponse `json:"recent_attendance"`
	PendingLeaves    int64                           `json:"pending_leaves"`
}

func mapToEmployeeCard(u *user.User) EmployeeCard {
	return EmployeeCard{
		UserID:     u.ID.String(),
		EmployeeID: u.EmployeeID,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Department: u.Department,
		Position:   u.Position,
	}
}
