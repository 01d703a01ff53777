package user

import "errors"

// User domain errors
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrEmployeeIDExists = errors.New("employee id already registered")
	ErrUsernameExists   = errors.New("username already taken")
	ErrHRAccessRequired = errors.New("hr role required")
	ErrInvalidRole      = errors.New("role must be hr or employee")
)
