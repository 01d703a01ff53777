package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fc-hr/worklog-backend-go/internal/domain/worklog"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWorklogService returns canned data so handler tests exercise only the
// HTTP layer: routing, decoding, status codes and the response envelope.
type fakeWorklogService struct {
	punches   []worklog.RawPunch
	stats     []worklog.WorkStats
	editErr   error
	statsErr  error
	lastEdit  worklog.EditClockRequest
	lastField worklog.ClockField
}

func (f *fakeWorklogService) Aggregate(_ context.Context, _ time.Time) error {
	return nil
}

func (f *fakeWorklogService) GetByDate(_ context.Context, _ time.Time) ([]worklog.RawPunch, error) {
	return f.punches, nil
}

func (f *fakeWorklogService) GetWorkStats(_ context.Context, req worklog.WorkStatsRequest) ([]worklog.WorkStats, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if f.statsErr != nil {
		return nil, f.statsErr
	}
	return f.stats, nil
}

func (f *fakeWorklogService) EditClockIn(_ context.Context, req worklog.EditClockRequest) (worklog.EditClockResponse, error) {
	f.lastEdit, f.lastField = req, worklog.ClockFieldIn
	if f.editErr != nil {
		return worklog.EditClockResponse{}, f.editErr
	}
	return worklog.EditClockResponse{Updated: true}, nil
}

func (f *fakeWorklogService) EditClockOut(_ context.Context, req worklog.EditClockRequest) (worklog.EditClockResponse, error) {
	f.lastEdit, f.lastField = req, worklog.ClockFieldOut
	if f.editErr != nil {
		return worklog.EditClockResponse{}, f.editErr
	}
	return worklog.EditClockResponse{Updated: true}, nil
}

// worklogTestRouter mounts the handler on the same routes the real router
// uses, so URL params resolve through chi.
func worklogTestRouter(service worklog.WorklogService) *chi.Mux {
	handler := NewWorklogHandler(service)
	r := chi.NewRouter()
	r.Route("/raw-log", func(r chi.Router) {
		r.Get("/stats", handler.GetWorkStats)
		r.Get("/{year}/{month}/{day}", handler.GetByDate)
		r.Post("/edit-clock-in", handler.EditClockIn)
		r.Post("/edit-clock-out", handler.EditClockOut)
	})
	return r
}

func TestWorklogHandler_GetByDate_Success(t *testing.T) {
	// Setup
	service := &fakeWorklogService{
		punches: []worklog.RawPunch{
			{EmployeeID: "42", Name: "Dewi", ClockIn: "08:00:00", ClockOut: "17:00:00"},
		},
	}
	router := worklogTestRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/raw-log/2024/6/1", nil)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	err := json.NewDecoder(w.Body).Decode(&resp)
	require.NoError(t, err)
	assert.True(t, resp["success"].(bool))

	data := resp["data"].([]interface{})
	require.Len(t, data, 1)
	record := data[0].(map[string]interface{})
	assert.Equal(t, "42", record["employeeId"])
	assert.Equal(t, "08:00:00", record["clockIn"])
}

func TestWorklogHandler_GetByDate_InvalidDate(t *testing.T) {
	router := worklogTestRouter(&fakeWorklogService{})

	// Month 13 does not exist
	req := httptest.NewRequest(http.MethodGet, "/raw-log/2024/13/1", nil)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	err := json.NewDecoder(w.Body).Decode(&resp)
	require.NoError(t, err)
	assert.False(t, resp["success"].(bool))
}

func TestWorklogHandler_GetByDate_NonNumericSegments(t *testing.T) {
	router := worklogTestRouter(&fakeWorklogService{})

	req := httptest.NewRequest(http.MethodGet, "/raw-log/2024/june/1", nil)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWorklogHandler_GetWorkStats_Success(t *testing.T) {
	// Setup
	service := &fakeWorklogService{
		stats: []worklog.WorkStats{
			{
				EmployeeID:     "42",
				Name:           "Dewi",
				DaysWorked:     2,
				TotalWorkHours: 17.5,
				LogHistory:     []worklog.LogEntry{},
			},
		},
	}
	router := worklogTestRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/raw-log/stats?startDate=2024-06-01&endDate=2024-06-30", nil)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	err := json.NewDecoder(w.Body).Decode(&resp)
	require.NoError(t, err)
	assert.True(t, resp["success"].(bool))

	data := resp["data"].([]interface{})
	require.Len(t, data, 1)
	stats := data[0].(map[string]interface{})
	assert.Equal(t, "42", stats["employeeId"])
	assert.Equal(t, float64(2), stats["daysWorked"])
	assert.Equal(t, 17.5, stats["totalWorkHours"])
}

func TestWorklogHandler_GetWorkStats_MissingDates(t *testing.T) {
	router := worklogTestRouter(&fakeWorklogService{})

	req := httptest.NewRequest(http.MethodGet, "/raw-log/stats", nil)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp map[string]interface{}
	err := json.NewDecoder(w.Body).Decode(&resp)
	require.NoError(t, err)
	assert.False(t, resp["success"].(bool))
}

func TestWorklogHandler_GetWorkStats_EndBeforeStart(t *testing.T) {
	router := worklogTestRouter(&fakeWorklogService{})

	req := httptest.NewRequest(http.MethodGet, "/raw-log/stats?startDate=2024-06-30&endDate=2024-06-01", nil)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestWorklogHandler_EditClockIn_Success(t *testing.T) {
	// Setup
	service := &fakeWorklogService{}
	router := worklogTestRouter(service)

	editReq := worklog.EditClockRequest{
		EmployeeID: "42",
		Date:       "2024-06-01",
		Time:       "07:30:00",
	}
	body, _ := json.Marshal(editReq)
	req := httptest.NewRequest(http.MethodPost, "/raw-log/edit-clock-in", bytes.NewReader(body))
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "42", service.lastEdit.EmployeeID)
	assert.Equal(t, worklog.ClockFieldIn, service.lastField)

	var resp map[string]interface{}
	err := json.NewDecoder(w.Body).Decode(&resp)
	require.NoError(t, err)
	assert.True(t, resp["success"].(bool))
	assert.Equal(t, "Clock record updated", resp["message"])
}

func TestWorklogHandler_EditClockOut_RecordNotFound(t *testing.T) {
	// Setup
	service := &fakeWorklogService{editErr: worklog.ErrRawRecordNotFound}
	router := worklogTestRouter(service)

	editReq := worklog.EditClockRequest{
		EmployeeID: "999",
		Date:       "2024-06-01",
		Time:       "18:00:00",
	}
	body, _ := json.Marshal(editReq)
	req := httptest.NewRequest(http.MethodPost, "/raw-log/edit-clock-out", bytes.NewReader(body))
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]interface{}
	err := json.NewDecoder(w.Body).Decode(&resp)
	require.NoError(t, err)
	assert.False(t, resp["success"].(bool))
}

func TestWorklogHandler_EditClockIn_MalformedTime(t *testing.T) {
	router := worklogTestRouter(&fakeWorklogService{})

	editReq := worklog.EditClockRequest{
		EmployeeID: "42",
		Date:       "2024-06-01",
		Time:       "7:30", // must be HH:MM:SS
	}
	body, _ := json.Marshal(editReq)
	req := httptest.NewRequest(http.MethodPost, "/raw-log/edit-clock-in", bytes.NewReader(body))
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestWorklogHandler_EditClockIn_InvalidJSON(t *testing.T) {
	router := worklogTestRouter(&fakeWorklogService{})

	req := httptest.NewRequest(http.MethodPost, "/raw-log/edit-clock-in", bytes.NewReader([]byte("invalid json")))
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
