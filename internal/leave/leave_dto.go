package leave

import "time"

type SubmitLeaveRequest struct {
	LeaveType string `json:"leave_type" binding:"required,oneof=Paid Sick Unpaid"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Remarks   string `json:"remarks"`
}

type DecideLeaveRequest struct {
	Action  string `json:"action" binding:"required"`
	Comment string `json:"comment"`
}

type LeaveResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	LeaveType    string  `json:"leave_type"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Remarks      *string `json:"remarks"`
	Status       string  `json:"status"`
	AdminComment *string `json:"admin_comment"`
	CreatedAt    string  `json:"created_at"`
}

func MapToLeaveResponse(lr *LeaveRequest) LeaveResponse {
	return LeaveResponse{
		ID:           lr.ID.String(),
		UserID:       lr.UserID.String(),
		LeaveType:    lr.LeaveType,
		StartDate:    lr.StartDate.Format("2006-01-02"),
		EndDate:      lr.EndDate.Format("2006-01-02"),
		Remarks:      lr.Remarks,
		Status:       lr.Status,
		AdminComment: lr.AdminComment,
		CreatedAt:    lr.CreatedAt.Format(time.RFC3339),
	}
}

func mapToLeaveResponses(leaves []LeaveRequest) []LeaveResponse {
	out := make([]LeaveResponse, 0, len(leaves))
	for i := range leaves {
		out = append(out, MapToLeaveResponse(&leaves[i]))
	}
	return out
}
