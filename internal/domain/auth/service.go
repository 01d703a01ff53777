package auth

import (
	"context"

	"github.com/fc-hr/worklog-backend-go/internal/domain/user"
)

// AuthService defines login and registration
type AuthService interface {
	// Login authenticates by employee id + password and issues a token pair.
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// Register creates a new account with a hashed password.
	Register(ctx context.Context, req user.CreateUserRequest) (RegisterResponse, error)
}
