package auth

import "go-hrms/internal/user"

type RegisterRequest struct {
	EmployeeID      string `json:"employee_id" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
	Role            string `json:"role" binding:"required,oneof=Employee HR"`
	FirstName       string `json:"first_name" binding:"required"`
	LastName        string `json:"last_name" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  AuthResponse `json:"user"`
}

func mapToAuthResponse(u *user.User) AuthResponse {
	return AuthResponse{
		ID:         u.ID.String(),
		EmployeeID: u.EmployeeID,
		Email:      u.Email,
		Role:       u.Role,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
	}
}
