package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostelhub/hostelhub-api/internal/dto"
	"github.com/hostelhub/hostelhub-api/internal/middleware"
	"github.com/hostelhub/hostelhub-api/internal/models"
	"github.com/hostelhub/hostelhub-api/internal/service"
	appErrors "github.com/hostelhub/hostelhub-api/pkg/errors"
)

type responseEnvelope struct {
	Data  json.RawMessage  `json:"data"`
	Error *appErrors.Error `json:"error"`
}

type fakeLeaveService struct {
	submitted  *dto.CreateLeaveRequest
	submitResp *models.LeaveApplication
	submitErr  error

	decisionID      string
	decisionRemarks string
	decisionActor   *models.JWTClaims
	decisionResp    *models.LeaveApplication
	decisionErr     error

	exportResp *service.LeaveExport
	exportErr  error
}

func (f *fakeLeaveService) Submit(req dto.CreateLeaveRequest) (*models.LeaveApplication, error) {
	f.submitted = &req
	return f.submitResp, f.submitErr
}

func (f *fakeLeaveService) List(query dto.LeaveQuery, actor *models.JWTClaims) ([]models.LeaveApplication, error) {
	return nil, nil
}

func (f *fakeLeaveService) Get(id string, actor *models.JWTClaims) (*models.LeaveApplication, error) {
	return f.decisionResp, f.decisionErr
}

func (f *fakeLeaveService) record(id, remarks string, actor *models.JWTClaims) (*models.LeaveApplication, error) {
	f.decisionID = id
	f.decisionRemarks = remarks
	f.decisionActor = actor
	return f.decisionResp, f.decisionErr
}

func (f *fakeLeaveService) Recommend(id, remarks string, actor *models.JWTClaims) (*models.LeaveApplication, error) {
	return f.record(id, remarks, actor)
}

func (f *fakeLeaveService) Approve(id, remarks string, actor *models.JWTClaims) (*models.LeaveApplication, error) {
	return f.record(id, remarks, actor)
}

func (f *fakeLeaveService) Reject(id, remarks string, actor *models.JWTClaims) (*models.LeaveApplication, error) {
	return f.record(id, remarks, actor)
}

func (f *fakeLeaveService) Export(query dto.ExportQuery) (*service.LeaveExport, error) {
	return f.exportResp, f.exportErr
}

func (f *fakeLeaveService) Statistics() models.LeaveStatistics {
	return models.LeaveStatistics{Total: 2}
}

func testContext(t *testing.T, method, target string, body interface{}, claims *models.JWTClaims) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	c.Request = httptest.NewRequest(method, target, reader)
	c.Request.Header.Set("Content-Type", "application/json")
	if claims != nil {
		c.Set(middleware.ContextUserKey, claims)
	}
	return c, rec
}

func TestLeaveHandlerCreateForcesStudentIdentity(t *testing.T) {
	fake := &fakeLeaveService{submitResp: &models.LeaveApplication{ID: "leave-1"}}
	h := NewLeaveHandler(fake)

	claims := &models.JWTClaims{UserID: "user-1", Role: models.RoleStudent, StudentID: "stu-1", FullName: "Rahul Sharma"}
	c, rec := testContext(t, http.MethodPost, "/leaves", dto.CreateLeaveRequest{
		StudentID:   "stu-999",
		StudentName: "Someone Else",
		StartDate:   "2026-03-20",
		EndDate:     "2026-03-22",
		Reason:      "Family function",
		Type:        models.LeaveTypePersonal,
	}, claims)

	h.Create(c)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, fake.submitted)
	assert.Equal(t, "stu-1", fake.submitted.StudentID)
	assert.Equal(t, "Rahul Sharma", fake.submitted.StudentName)
}

func TestLeaveHandlerCreateRejectsMalformedBody(t *testing.T) {
	h := NewLeaveHandler(&fakeLeaveService{})

	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/leaves", bytes.NewReader([]byte("{not json")))
	c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: "user-1", Role: models.RoleStudent})

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLeaveHandlerApprove(t *testing.T) {
	fake := &fakeLeaveService{decisionResp: &models.LeaveApplication{ID: "leave-1", Status: models.LeaveStatusApproved}}
	h := NewLeaveHandler(fake)

	claims := &models.JWTClaims{UserID: "user-warden", Role: models.RoleWarden}
	c, rec := testContext(t, http.MethodPost, "/leaves/leave-1/approve", dto.DecisionRequest{Remarks: "granted"}, claims)
	c.Params = gin.Params{{Key: "id", Value: "leave-1"}}

	h.Approve(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "leave-1", fake.decisionID)
	assert.Equal(t, "granted", fake.decisionRemarks)
	assert.Equal(t, "user-warden", fake.decisionActor.UserID)

	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	var leave models.LeaveApplication
	require.NoError(t, json.Unmarshal(envelope.Data, &leave))
	assert.Equal(t, models.LeaveStatusApproved, leave.Status)
}

func TestLeaveHandlerApproveConflictSurfacesStatus(t *testing.T) {
	fake := &fakeLeaveService{decisionErr: appErrors.Clone(appErrors.ErrFinalized, "leave application already finalized")}
	h := NewLeaveHandler(fake)

	claims := &models.JWTClaims{UserID: "user-warden", Role: models.RoleWarden}
	c, rec := testContext(t, http.MethodPost, "/leaves/leave-1/approve", dto.DecisionRequest{Remarks: "granted"}, claims)
	c.Params = gin.Params{{Key: "id", Value: "leave-1"}}

	h.Approve(c)

	assert.Equal(t, http.StatusConflict, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)
	assert.Equal(t, appErrors.ErrFinalized.Code, envelope.Error.Code)
}

func TestLeaveHandlerDecideRequiresAuth(t *testing.T) {
	h := NewLeaveHandler(&fakeLeaveService{})

	c, rec := testContext(t, http.MethodPost, "/leaves/leave-1/reject", dto.DecisionRequest{Remarks: "nope"}, nil)
	c.Params = gin.Params{{Key: "id", Value: "leave-1"}}

	h.Reject(c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLeaveHandlerExportSetsDisposition(t *testing.T) {
	fake := &fakeLeaveService{exportResp: &service.LeaveExport{
		Data:        []byte("id,studentName\n"),
		ContentType: "text/csv",
		Filename:    "leave-applications-20260314-100000.csv",
	}}
	h := NewLeaveHandler(fake)

	c, rec := testContext(t, http.MethodGet, "/leaves/export?format=csv", nil, &models.JWTClaims{Role: models.RoleWarden})

	h.Export(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "leave-applications-20260314-100000.csv")
	assert.Equal(t, "id,studentName\n", rec.Body.String())
}

func TestLeaveHandlerStatistics(t *testing.T) {
	h := NewLeaveHandler(&fakeLeaveService{})

	c, rec := testContext(t, http.MethodGet, "/leaves/statistics", nil, &models.JWTClaims{Role: models.RoleAdmin})

	h.Statistics(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	var stats models.LeaveStatistics
	require.NoError(t, json.Unmarshal(envelope.Data, &stats))
	assert.Equal(t, 2, stats.Total)
}
