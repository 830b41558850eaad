package user

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleEmployee = "Employee"
	RoleHR       = "HR"
)

// User carries both the credential pair and the HR profile. Rows are never
// deleted; role is fixed at registration.
type User struct {
	ID             uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	EmployeeID     string     `gorm:"column:employee_id;type:varchar(50);not null;uniqueIndex:uq_users_employee_id"`
	Email          string     `gorm:"column:email;type:varchar(120);not null;uniqueIndex:uq_users_email"`
	Password       string     `gorm:"column:password;type:varchar(255);not null"`
	Role           string     `gorm:"column:role;type:varchar(20);not null"`
	FirstName      string     `gorm:"column:first_name;type:varchar(50)"`
	LastName       string     `gorm:"column:last_name;type:varchar(50)"`
	Phone          string     `gorm:"column:phone;type:varchar(20)"`
	Address        string     `gorm:"column:address;type:text"`
	Department     string     `gorm:"column:department;type:varchar(50)"`
	Position       string     `gorm:"column:position;type:varchar(50)"`
	HireDate       *time.Time `gorm:"column:hire_date;type:date"`
	Salary         *float64   `gorm:"column:salary"`
	ProfilePicture *string    `gorm:"column:profile_picture;type:varchar(255)"`
	CreatedAt      time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
