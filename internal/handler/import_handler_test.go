package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"slotwise/internal/domain"
	"slotwise/internal/engine"
	"slotwise/internal/handler"
	"slotwise/internal/service"
	"slotwise/mocks"
)

func importRouter(svc service.ImportService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handler.NewImportHandler(svc)
	r := gin.New()
	r.POST("/imports", h.Upload)
	r.GET("/imports/:id", h.Get)
	r.GET("/imports/:id/diagnostics", h.Diagnostics)
	r.GET("/imports/:id/crosscheck", h.CrossCheck)
	r.GET("/imports/:id/crosscheck/export", h.ExportCrossCheck)
	r.PUT("/imports/:id/slots", h.UpdateSlots)
	r.POST("/imports/:id/commit", h.Commit)
	return r
}

func multipartUpload(t *testing.T, fileName, semester string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("semester", semester))
	fw, err := mw.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &body, mw.FormDataContentType()
}

func TestImportHandler_Upload(t *testing.T) {
	svc := new(mocks.MockImportService)
	session := &service.ImportSession{ID: uuid.New(), Semester: "2026-monsoon"}
	svc.On("Parse", mock.Anything, "2026-monsoon", "tt.xlsx", mock.Anything).Return(session, nil)

	body, contentType := multipartUpload(t, "tt.xlsx", "2026-monsoon", []byte("workbook bytes"))
	req := httptest.NewRequest(http.MethodPost, "/imports", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	importRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool                  `json:"success"`
		Data    service.ImportSession `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, session.ID, resp.Data.ID)
}

func TestImportHandler_Upload_WrongExtension(t *testing.T) {
	svc := new(mocks.MockImportService)

	body, contentType := multipartUpload(t, "tt.csv", "2026-monsoon", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/imports", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	importRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "UNSUPPORTED_FILE_TYPE")
	svc.AssertNotCalled(t, "Parse", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestImportHandler_Upload_MissingFile(t *testing.T) {
	svc := new(mocks.MockImportService)

	req := httptest.NewRequest(http.MethodPost, "/imports", bytes.NewBufferString("semester=x"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	importRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "MISSING_FILE")
}

func TestImportHandler_Get_NotFound(t *testing.T) {
	svc := new(mocks.MockImportService)
	id := uuid.New()
	svc.On("Get", id).Return(nil, domain.ErrSessionNotFound)

	req := httptest.NewRequest(http.MethodGet, "/imports/"+id.String(), nil)
	w := httptest.NewRecorder()
	importRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "SESSION_NOT_FOUND")
}

func TestImportHandler_Get_InvalidID(t *testing.T) {
	svc := new(mocks.MockImportService)

	req := httptest.NewRequest(http.MethodGet, "/imports/not-a-uuid", nil)
	w := httptest.NewRecorder()
	importRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_ID")
}

func TestImportHandler_ExportCrossCheck(t *testing.T) {
	svc := new(mocks.MockImportService)
	id := uuid.New()
	consistent := true
	session := &service.ImportSession{
		ID: id,
		CrossCheck: []engine.CrossCheckRow{{
			SubjectCode: "CS101",
			Lectures:    3, Tutorials: 1, Practicals: 1,
			Declared:   &engine.SubjectMeta{Lecture: 3, Tutorial: 1, Practical: 2},
			Consistent: &consistent,
		}},
	}
	svc.On("Get", id).Return(session, nil)

	req := httptest.NewRequest(http.MethodGet, "/imports/"+id.String()+"/crosscheck/export", nil)
	w := httptest.NewRecorder()
	importRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "crosscheck-"+id.String()+".csv")
	assert.Contains(t, w.Body.String(), "CS101,3,1,1,3-1-2-0,consistent")
}

func TestImportHandler_UpdateSlots(t *testing.T) {
	svc := new(mocks.MockImportService)
	id := uuid.New()
	slots := []engine.ExtractedSlot{
		{Day: domain.Monday, SubjectCode: "CS101", Type: domain.SlotLecture, Section: "All"},
	}
	svc.On("UpdateSlots", id, slots).Return(&service.ImportSession{ID: id, Slots: slots}, nil)

	payload, err := json.Marshal(slots)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPut, "/imports/"+id.String()+"/slots", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	importRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestImportHandler_UpdateSlots_BadBody(t *testing.T) {
	svc := new(mocks.MockImportService)
	id := uuid.New()

	req := httptest.NewRequest(http.MethodPut, "/imports/"+id.String()+"/slots", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	importRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_BODY")
}

func TestImportHandler_Commit(t *testing.T) {
	svc := new(mocks.MockImportService)
	id := uuid.New()
	svc.On("Commit", mock.Anything, id).Return(&service.CommitResult{Inserted: 12, Dropped: 1}, nil)

	req := httptest.NewRequest(http.MethodPost, "/imports/"+id.String()+"/commit", nil)
	w := httptest.NewRecorder()
	importRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"inserted":12`)
}

func TestImportHandler_Commit_InternalError(t *testing.T) {
	svc := new(mocks.MockImportService)
	id := uuid.New()
	svc.On("Commit", mock.Anything, id).Return(nil, errors.New("db exploded"))

	req := httptest.NewRequest(http.MethodPost, "/imports/"+id.String()+"/commit", nil)
	w := httptest.NewRecorder()
	importRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "INTERNAL_ERROR")
	assert.NotContains(t, w.Body.String(), "db exploded")
}
