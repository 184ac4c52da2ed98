package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"slotwise/internal/domain"
	"slotwise/internal/handler"
	"slotwise/internal/port"
	"slotwise/internal/service"
	"slotwise/mocks"
)

func scheduleRouter(svc service.ScheduleService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handler.NewScheduleHandler(svc)
	r := gin.New()
	r.GET("/schedule", h.List)
	r.GET("/schedule/export", h.Export)
	r.GET("/schedule/runs", h.ImportRuns)
	return r
}

func TestScheduleHandler_List(t *testing.T) {
	svc := new(mocks.MockScheduleService)
	filter := port.ScheduleFilter{Section: "Sec A", Day: domain.Monday}
	entries := []domain.ScheduleEntry{{SubjectCode: "CS101", Day: domain.Monday}}
	svc.On("List", mock.Anything, "2026-monsoon", filter).Return(entries, nil)

	req := httptest.NewRequest(http.MethodGet, "/schedule?semester=2026-monsoon&section=Sec+A&day=MON", nil)
	w := httptest.NewRecorder()
	scheduleRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "CS101")
}

func TestScheduleHandler_List_MissingSemester(t *testing.T) {
	svc := new(mocks.MockScheduleService)
	svc.On("List", mock.Anything, "", port.ScheduleFilter{}).Return(nil, domain.ErrMissingSemester)

	req := httptest.NewRequest(http.MethodGet, "/schedule", nil)
	w := httptest.NewRecorder()
	scheduleRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "MISSING_SEMESTER")
}

func TestScheduleHandler_Export(t *testing.T) {
	svc := new(mocks.MockScheduleService)
	room := "LT-101"
	entries := []domain.ScheduleEntry{{
		Semester:     "2026-monsoon",
		Day:          domain.Monday,
		StartMinutes: 540,
		EndMinutes:   590,
		SubjectCode:  "CS101",
		SectionName:  "All",
		RoomName:     &room,
		SlotType:     domain.SlotLecture,
	}}
	svc.On("List", mock.Anything, "2026-monsoon", port.ScheduleFilter{}).Return(entries, nil)

	req := httptest.NewRequest(http.MethodGet, "/schedule/export?semester=2026-monsoon", nil)
	w := httptest.NewRecorder()
	scheduleRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "schedule-2026-monsoon.csv")

	body := w.Body.Bytes()
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, body[:3])
	assert.Contains(t, string(body), "CS101")
	assert.Contains(t, string(body), "09:00")
}

func TestScheduleHandler_ImportRuns(t *testing.T) {
	svc := new(mocks.MockScheduleService)
	runs := []domain.ImportRun{{Semester: "2026-monsoon", Status: domain.ImportCommitted, SlotCount: 40}}
	svc.On("ImportRuns", mock.Anything, "2026-monsoon").Return(runs, nil)

	req := httptest.NewRequest(http.MethodGet, "/schedule/runs?semester=2026-monsoon", nil)
	w := httptest.NewRecorder()
	scheduleRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "committed")
}
