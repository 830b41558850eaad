package user

import "time"

// UpdateProfileRequest carries partial profile edits. Every field is optional;
// which ones actually apply depends on the caller's role.
type UpdateProfileRequest struct {
	FirstName  *string `json:"first_name"`
	LastName   *string `json:"last_name"`
	Phone      *string `json:"phone"`
	Address    *string `json:"address"`
	Department *string `json:"department"`
	Position   *string `json:"position"`
	Salary     *string `json:"salary"`
}

type ProfileResponse struct {
	ID             string   `json:"id"`
	EmployeeID     string   `json:"employee_id"`
	Email          string   `json:"email"`
	Role           string   `json:"role"`
	FirstName      string   `json:"first_name"`
	LastName       string   `json:"last_name"`
	Phone          string   `json:"phone"`
	Address        string   `json:"address"`
	Department     string   `json:"department"`
	Position       string   `json:"position"`
	HireDate       *string  `json:"hire_date"`
	Salary         *float64 `json:"salary"`
	ProfilePicture *string  `json:"profile_picture"`
	CreatedAt      string   `json:"created_at"`
}

func MapToProfileResponse(u *User) ProfileResponse {
	resp := ProfileResponse{
		ID:             u.ID.String(),
		EmployeeID:     u.EmployeeID,
		Email:          u.Email,
		Role:           u.Role,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Phone:          u.Phone,
		Address:        u.Address,
		Department:     u.Department,
		Position:       u.Position,
		Salary:         u.Salary,
		ProfilePicture: u.ProfilePicture,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
	if u.HireDate != nil {
		hd := u.HireDate.Format("2006-01-02")
		resp.HireDate = &hd
	}
	return resp
}
