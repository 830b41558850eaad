package attendance

import "time"

const (
	ViewDaily  = "daily"
	ViewWeekly = "weekly"
)

type AttendanceResponse struct {
	ID       string  `json:"id"`
	UserID   string  `json:"user_id"`
	Date     string  `json:"date"`
	CheckIn  *string `json:"check_in"`
	CheckOut *string `json:"check_out"`
	Status   string  `json:"status"`
}

func MapToAttendanceResponse(a *Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:     a.ID.String(),
		UserID: a.UserID.String(),
		Date:   a.Date.Format("2006-01-02"),
		Status: a.Status,
	}
	if a.CheckIn != nil {
		v := a.CheckIn.Format(time.RFC3339)
		resp.CheckIn = &v
	}
	if a.CheckOut != nil {
		v := a.CheckOut.Format(time.RFC3339)
		resp.CheckOut = &v
	}
	return resp
}

func mapToAttendanceResponses(records []Attendance) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(records))
	for i := range records {
		out = append(out, MapToAttendanceResponse(&records[i]))
	}
	return out
}
