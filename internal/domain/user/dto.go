package user

import (
	"time"

	"github.com/fc-hr/worklog-backend-go/internal/pkg/validator"
)

type CreateUserRequest struct {
	EmployeeID string `json:"employeeId"`
	Name       string `json:"name"`
	Username   string `json:"username"`
	Password   string `json:"password"`
	Role       string `json:"role"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId is required",
		})
	}

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	}

	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if r.Role != string(RoleHR) && r.Role != string(RoleEmployee) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be hr or employee",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UserResponse never carries the password hash.
type UserResponse struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employeeId"`
	Name       string    `json:"name"`
	Username   string    `json:"username"`
	Role       Role      `json:"role"`
	CreatedAt  time.Time `json:"createdAt"`
}

func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		EmployeeID: u.EmployeeID,
		Name:       u.Name,
		Username:   u.Username,
		Role:       u.Role,
		CreatedAt:  u.CreatedAt,
	}
}
