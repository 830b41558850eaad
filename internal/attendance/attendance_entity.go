package attendance

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
	StatusHalfDay = "Half-day"
	StatusLeave   = "Leave"
)

// Attendance records one working day for one user. The unique index makes the
// database the final arbiter against double check-ins.
type Attendance struct {
	ID        uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	UserID    uuid.UUID  `gorm:"column:user_id;type:uuid;not null;uniqueIndex:uq_attendances_user_date"`
	Date      time.Time  `gorm:"column:date;type:date;not null;uniqueIndex:uq_attendances_user_date"`
	CheckIn   *time.Time `gorm:"column:check_in"`
	CheckOut  *time.Time `gorm:"column:check_out"`
	Status    string     `gorm:"column:status;type:varchar(20);not null"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (Attendance) TableName() string {
	return "attendances"
}
