package events

import "time"

const (
	LeaveDecidedTopic     = "hrms.leave.decision.v1"
	LeaveDecidedEventType = "leave.decided"
)

type LeaveDecidedEvent struct {
	EventType  string    `json:"event_type"`
	LeaveID    string    `json:"leave_id"`
	UserID     string    `json:"user_id"`
	Status     string    `json:"status"`
	DecidedBy  string    `json:"decided_by"`
	OccurredAt time.Time `json:"occurred_at"`
}
