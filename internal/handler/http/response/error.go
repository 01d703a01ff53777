package response

import (
	"errors"
	"net/http"

	"github.com/fc-hr/worklog-backend-go/internal/domain/auth"
	"github.com/fc-hr/worklog-backend-go/internal/domain/user"
	"github.com/fc-hr/worklog-backend-go/internal/domain/worklog"
	"github.com/fc-hr/worklog-backend-go/internal/pkg/clock"
	"github.com/fc-hr/worklog-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmployeeIDExists):
		Conflict(w, "Employee id already registered")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already taken")
	case errors.Is(err, user.ErrHRAccessRequired):
		Forbidden(w, "HR role required")

	// Worklog domain errors
	case errors.Is(err, worklog.ErrRawRecordNotFound):
		NotFound(w, "No raw punch record found for that employee and date")
	case errors.Is(err, clock.ErrMalformedTime):
		BadRequest(w, "Malformed clock time", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
