package dto

import "github.com/ncc-portal/backend/internal/app/models"

// RegisterRequest represents a new student account registration
type RegisterRequest struct {
	FullName string  `json:"full_name" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Phone    *string `json:"phone,omitempty"`
	Password string  `json:"password" binding:"required"`
}

// RegisterResponse wraps the created user (digest already stripped by json tags)
type RegisterResponse struct {
	Message string       `json:"message"`
	User    *models.User `json:"user"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the bearer token and the authenticated user
type LoginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// DemoAccount describes one of the fixed demo credentials
type DemoAccount struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// ResetDemoResponse confirms the demo accounts were recreated
type ResetDemoResponse struct {
	Message  string        `json:"message"`
	Accounts []DemoAccount `json:"accounts"`
}
