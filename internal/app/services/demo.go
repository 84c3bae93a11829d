package services

import (
	"github.com/ncc-portal/backend/internal/app/models"
)

// DemoCredentials describes one of the two fixed demo accounts created at
// bootstrap and recreated by the demo reset endpoint.
type DemoCredentials struct {
	Email    string
	Password string
	Role     models.Role
	FullName string
	Phone    string
}

// DemoAccounts are well-known credentials for trying out the portal.
var DemoAccounts = []DemoCredentials{
	{
		Email:    "admin@ncc.edu",
		Password: "admin123",
		Role:     models.RoleAdmin,
		FullName: "Admin User",
		Phone:    "9876543210",
	},
	{
		Email:    "student@example.com",
		Password: "student123",
		Role:     models.RoleStudent,
		FullName: "Demo Student",
		Phone:    "1234567890",
	},
}
