package worklog

import (
	"time"

	"github.com/fc-hr/worklog-backend-go/internal/pkg/clock"
	"github.com/fc-hr/worklog-backend-go/internal/pkg/validator"
)

const dateLayout = "2006-01-02"

// WorkStatsRequest asks for merged statistics over an inclusive date range,
// optionally narrowed to a single employee.
type WorkStatsRequest struct {
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	EmployeeID string `json:"employeeId"`
}

func (r *WorkStatsRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "startDate",
			Message: "startDate is required",
		})
	} else if !validator.IsValidDate(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "startDate",
			Message: "startDate must be a valid YYYY-MM-DD date",
		})
	}

	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate is required",
		})
	} else if !validator.IsValidDate(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate must be a valid YYYY-MM-DD date",
		})
	}

	if len(errs) == 0 {
		start, _ := time.Parse(dateLayout, r.StartDate)
		end, _ := time.Parse(dateLayout, r.EndDate)
		if end.Before(start) {
			errs = append(errs, validator.ValidationError{
				Field:   "endDate",
				Message: "endDate must not be before startDate",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Range returns the parsed inclusive date bounds. Call Validate first.
func (r *WorkStatsRequest) Range() (start, end time.Time) {
	start, _ = time.Parse(dateLayout, r.StartDate)
	end, _ = time.Parse(dateLayout, r.EndDate)
	return start, end
}

// EditClockRequest corrects a single raw punch record's clock-in or clock-out
// string for one employee on one day.
type EditClockRequest struct {
	EmployeeID string `json:"employeeId"`
	Date       string `json:"date"` // "YYYY-MM-DD"
	Time       string `json:"time"` // "HH:MM:SS"
}

func (r *EditClockRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId is required",
		})
	}

	if !validator.IsValidDate(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a valid YYYY-MM-DD date",
		})
	}

	if !clock.IsValidTimeOfDay(r.Time) {
		errs = append(errs, validator.ValidationError{
			Field:   "time",
			Message: "time must be a valid HH:MM:SS clock time",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Day returns the parsed record date. Call Validate first.
func (r *EditClockRequest) Day() time.Time {
	d, _ := time.Parse(dateLayout, r.Date)
	return d
}

// EditClockResponse reports whether a matching raw record was changed.
type EditClockResponse struct {
	Updated bool `json:"updated"`
}
