package payroll

import "go-hrms/internal/user"

type UpdateSalaryRequest struct {
	Salary string `json:"salary" binding:"required"`
}

type PayrollEntry struct {
	UserID     string   `json:"user_id"`
	EmployeeID string   `json:"employee_id"`
	FirstName  string   `json:"first_name"`
	LastName   string   `json:"last_name"`
	Department string   `json:"department"`
	Position   string   `json:"position"`
	Salary     *float64 `json:"salary"`
}

func mapToPayrollEntry(u *user.User) PayrollEntry {
	return PayrollEntry{
		UserID:     u.ID.String(),
		EmployeeID: u.EmployeeID,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Department: u.Department,
		Position:   u.Position,
		Salary:     u.Salary,
	}
}
