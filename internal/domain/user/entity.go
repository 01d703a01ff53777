package user

import "time"

type Role string

const (
	RoleHR       Role = "hr"       // HR staff - manages accounts and corrections
	RoleEmployee Role = "employee" // Regular employee
)

type User struct {
	ID           string
	EmployeeID   string
	Name         string
	Username     string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsHR checks if the user can manage accounts and correct punch records
func (u *User) IsHR() bool {
	return u.Role == RoleHR
}
