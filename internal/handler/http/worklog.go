package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/fc-hr/worklog-backend-go/internal/domain/worklog"
	"github.com/fc-hr/worklog-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type WorklogHandler interface {
	GetByDate(w http.ResponseWriter, r *http.Request)
	GetWorkStats(w http.ResponseWriter, r *http.Request)
	EditClockIn(w http.ResponseWriter, r *http.Request)
	EditClockOut(w http.ResponseWriter, r *http.Request)
}

type worklogHandlerImpl struct {
	worklogService worklog.WorklogService
}

func NewWorklogHandler(worklogService worklog.WorklogService) WorklogHandler {
	return &worklogHandlerImpl{
		worklogService: worklogService,
	}
}

// GetByDate implements WorklogHandler.
func (h *worklogHandlerImpl) GetByDate(w http.ResponseWriter, r *http.Request) {
	date, ok := dateFromURLParams(w, r)
	if !ok {
		return
	}

	punches, err := h.worklogService.GetByDate(r.Context(), date)
	if err != nil {
		slog.Error("Failed to get raw punches by date", "date", date.Format("2006-01-02"), "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, punches)
}

// GetWorkStats implements WorklogHandler.
func (h *worklogHandlerImpl) GetWorkStats(w http.ResponseWriter, r *http.Request) {
	req := worklog.WorkStatsRequest{
		StartDate:  r.URL.Query().Get("startDate"),
		EndDate:    r.URL.Query().Get("endDate"),
		EmployeeID: r.URL.Query().Get("employeeId"),
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	stats, err := h.worklogService.GetWorkStats(r.Context(), req)
	if err != nil {
		slog.Error("Failed to get work stats", "start", req.StartDate, "end", req.EndDate, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// EditClockIn implements WorklogHandler.
func (h *worklogHandlerImpl) EditClockIn(w http.ResponseWriter, r *http.Request) {
	h.editClock(w, r, h.worklogService.EditClockIn)
}

// EditClockOut implements WorklogHandler.
func (h *worklogHandlerImpl) EditClockOut(w http.ResponseWriter, r *http.Request) {
	h.editClock(w, r, h.worklogService.EditClockOut)
}

func (h *worklogHandlerImpl) editClock(
	w http.ResponseWriter,
	r *http.Request,
	edit func(ctx context.Context, req worklog.EditClockRequest) (worklog.EditClockResponse, error),
) {
	var req worklog.EditClockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := edit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clock record updated", result)
}

// dateFromURLParams parses the {year}/{month}/{day} route segments into a
// calendar date, rejecting values that do not name a real day.
func dateFromURLParams(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	year, errY := strconv.Atoi(chi.URLParam(r, "year"))
	month, errM := strconv.Atoi(chi.URLParam(r, "month"))
	day, errD := strconv.Atoi(chi.URLParam(r, "day"))
	if errY != nil || errM != nil || errD != nil {
		response.BadRequest(w, "year, month and day must be numbers", nil)
		return time.Time{}, false
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Year() != year || int(date.Month()) != month || date.Day() != day {
		response.BadRequest(w, "not a valid calendar date", nil)
		return time.Time{}, false
	}

	return date, true
}
