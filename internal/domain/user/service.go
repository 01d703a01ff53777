package user

import (
	"context"
)

// UserService defines account management operations (HR only)
type UserService interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	GetUser(ctx context.Context, id string) (UserResponse, error)
	GetUserByEmployeeID(ctx context.Context, employeeID string) (UserResponse, error)
	ListUsers(ctx context.Context) ([]UserResponse, error)
	DeleteUser(ctx context.Context, id string) error
}
