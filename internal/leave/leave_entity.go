package leave

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypePaid   = "Paid"
	TypeSick   = "Sick"
	TypeUnpaid = "Unpaid"
)

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

type LeaveRequest struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"column:user_id;type:uuid;not null;index"`
	LeaveType    string    `gorm:"column:leave_type;type:varchar(20);not null"`
	StartDate    time.Time `gorm:"column:start_date;type:date;not null"`
	EndDate      time.Time `gorm:"column:end_date;type:date;not null"`
	Remarks      *string   `gorm:"column:remarks;type:text"`
	Status       string    `gorm:"column:status;type:varchar(20);not null"`
	AdminComment *string   `gorm:"column:admin_comment;type:text"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}
