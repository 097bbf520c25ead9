package models

import "strings"

// Role names a platform user role
type Role string

const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
	RoleAdmin      Role = "admin"
)

// User is the profile registered under a principal
type User struct {
	Principal string `json:"principal"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
}

// UserProfileRequest represents a request to register or update the caller's profile
type UserProfileRequest struct {
	Name  string `json:"name" example:"Ada Lovelace"`
	Email string `json:"email" example:"ada@example.com"`
}

// Normalize trims surrounding whitespace from every field
func (r *UserProfileRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
}
