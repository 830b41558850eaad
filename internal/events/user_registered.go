package events

import "time"

const (
	UserRegisteredTopic     = "hrms.user.lifecycle.v1"
	UserRegisteredEventType = "user.registered"
)

type UserRegisteredEvent struct {
	EventType  string    `json:"event_type"`
	UserID     string    `json:"user_id"`
	EmployeeID string    `json:"employee_id"`
	Role       string    `json:"role"`
	OccurredAt time.Time `json:"occurred_at"`
}
