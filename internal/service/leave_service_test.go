package service

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hostelhub/hostelhub-api/internal/dto"
	"github.com/hostelhub/hostelhub-api/internal/models"
	"github.com/hostelhub/hostelhub-api/internal/repository"
	"github.com/hostelhub/hostelhub-api/internal/store"
	appErrors "github.com/hostelhub/hostelhub-api/pkg/errors"
	"github.com/hostelhub/hostelhub-api/pkg/export"
	"github.com/hostelhub/hostelhub-api/pkg/jobs"
)

type notificationCapture struct {
	created []models.Notification
	err     error
}

func (n *notificationCapture) Create(notification *models.Notification) error {
	if n.err != nil {
		return n.err
	}
	if notification.ID == "" {
		notification.ID = "notif-1"
	}
	n.created = append(n.created, *notification)
	return nil
}

type dispatchCapture struct {
	jobs []jobs.Job
	err  error
}

func (d *dispatchCapture) Enqueue(job jobs.Job) error {
	if d.err != nil {
		return d.err
	}
	d.jobs = append(d.jobs, job)
	return nil
}

var testNow = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

func newLeaveServiceForTest(t *testing.T) (*LeaveService, *repository.LeaveRepository, *notificationCapture, *dispatchCapture) {
	t.Helper()
	repo := repository.NewLeaveRepository(store.New())
	notifications := &notificationCapture{}
	dispatcher := &dispatchCapture{}
	svc := NewLeaveService(repo, notifications, dispatcher, nil, nil)
	svc.now = func() time.Time { return testNow }
	return svc, repo, notifications, dispatcher
}

func studentClaims(studentID string) *models.JWTClaims {
	return &models.JWTClaims{UserID: "user-" + studentID, Role: models.RoleStudent, StudentID: studentID}
}

func jointWardenClaims() *models.JWTClaims {
	return &models.JWTClaims{UserID: "user-jwarden", Role: models.RoleJointWarden}
}

func wardenClaims() *models.JWTClaims {
	return &models.JWTClaims{UserID: "user-warden", Role: models.RoleWarden}
}

func adminClaims() *models.JWTClaims {
	return &models.JWTClaims{UserID: "user-admin", Role: models.RoleAdmin}
}

func submitLeave(t *testing.T, svc *LeaveService, studentID string) *models.LeaveApplication {
	t.Helper()
	leave, err := svc.Submit(dto.CreateLeaveRequest{
		StudentID:   studentID,
		StudentName: "Rahul Sharma",
		RoomNumber:  "A-101",
		StartDate:   "2026-03-20",
		EndDate:     "2026-03-23",
		Reason:      "Family function at home",
		Type:        models.LeaveTypePersonal,
	})
	require.NoError(t, err)
	return leave
}

func TestLeaveServiceSubmit(t *testing.T) {
	svc, _, _, _ := newLeaveServiceForTest(t)

	leave := submitLeave(t, svc, "stu-1")
	require.NotEmpty(t, leave.ID)
	require.Equal(t, models.LeaveStatusPending, leave.Status)
	require.Equal(t, testNow, leave.SubmittedAt)
	require.Empty(t, leave.ReviewedBy)
	require.Nil(t, leave.ReviewedAt)
}

func TestLeaveServiceSubmitRejectsInvalidPayload(t *testing.T) {
	svc, _, _, _ := newLeaveServiceForTest(t)

	_, err := svc.Submit(dto.CreateLeaveRequest{
		StudentID: "stu-1",
		StartDate: "2026-03-20",
		EndDate:   "2026-03-23",
		Reason:    "Trip",
		Type:      "vacation",
	})
	require.Error(t, err)
	require.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	_, err = svc.Submit(dto.CreateLeaveRequest{
		StudentID:   "stu-1",
		StudentName: "Rahul Sharma",
		StartDate:   "2026-03-23",
		EndDate:     "2026-03-20",
		Reason:      "Trip",
		Type:        models.LeaveTypePersonal,
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "endDate must not precede startDate")
}

func TestLeaveServiceListScopesStudents(t *testing.T) {
	svc, _, _, _ := newLeaveServiceForTest(t)
	submitLeave(t, svc, "stu-1")
	submitLeave(t, svc, "stu-2")

	mine, err := svc.List(dto.LeaveQuery{StudentID: "stu-2"}, studentClaims("stu-1"))
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, "stu-1", mine[0].StudentID)

	all, err := svc.List(dto.LeaveQuery{}, wardenClaims())
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestLeaveServiceRecommend(t *testing.T) {
	svc, repo, _, _ := newLeaveServiceForTest(t)
	leave := submitLeave(t, svc, "stu-1")

	recommended, err := svc.Recommend(leave.ID, "  Documents verified  ", jointWardenClaims())
	require.NoError(t, err)
	require.Equal(t, models.LeaveStatusRecommended, recommended.Status)
	require.Equal(t, "Documents verified", recommended.JointWardenRemarks)

	stored, err := repo.GetByID(leave.ID)
	require.NoError(t, err)
	require.Equal(t, models.LeaveStatusRecommended, stored.Status)
}

func TestLeaveServiceRecommendRequiresRemarks(t *testing.T) {
	svc, _, _, _ := newLeaveServiceForTest(t)
	leave := submitLeave(t, svc, "stu-1")

	_, err := svc.Recommend(leave.ID, "   ", jointWardenClaims())
	require.Error(t, err)
	require.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestLeaveServiceRecommendOnlyFromPending(t *testing.T) {
	svc, _, _, _ := newLeaveServiceForTest(t)
	leave := submitLeave(t, svc, "stu-1")

	_, err := svc.Recommend(leave.ID, "ok", jointWardenClaims())
	require.NoError(t, err)

	_, err = svc.Recommend(leave.ID, "again", jointWardenClaims())
	require.Error(t, err)
	require.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)

	_, err = svc.Approve(leave.ID, "granted", wardenClaims())
	require.NoError(t, err)

	_, err = svc.Recommend(leave.ID, "too late", jointWardenClaims())
	require.Error(t, err)
	require.Equal(t, appErrors.ErrFinalized.Code, appErrors.FromError(err).Code)
}

func TestLeaveServiceApproveAfterRecommend(t *testing.T) {
	svc, repo, notifications, dispatcher := newLeaveServiceForTest(t)
	leave := submitLeave(t, svc, "stu-1")

	_, err := svc.Recommend(leave.ID, "Documents verified", jointWardenClaims())
	require.NoError(t, err)

	approved, err := svc.Approve(leave.ID, "Safe travels", wardenClaims())
	require.NoError(t, err)
	require.Equal(t, models.LeaveStatusApproved, approved.Status)
	require.Equal(t, "Safe travels", approved.WardenRemarks)
	require.Equal(t, "Documents verified", approved.JointWardenRemarks)
	require.Equal(t, "user-warden", approved.ReviewedBy)
	require.NotNil(t, approved.ReviewedAt)
	require.Equal(t, testNow, *approved.ReviewedAt)

	require.Len(t, notifications.created, 1)
	n := notifications.created[0]
	require.Equal(t, "Leave Approved", n.Title)
	require.Equal(t, models.NotificationTypeSuccess, n.Type)
	require.Equal(t, "stu-1", n.TargetStudentID)
	require.Contains(t, n.Message, "approved")

	require.Len(t, dispatcher.jobs, 1)
	require.Equal(t, "notification.decision", dispatcher.jobs[0].Type)

	stored, err := repo.GetByID(leave.ID)
	require.NoError(t, err)
	require.Equal(t, models.LeaveStatusApproved, stored.Status)
}

func TestLeaveServiceRejectFromPending(t *testing.T) {
	svc, _, notifications, _ := newLeaveServiceForTest(t)
	leave := submitLeave(t, svc, "stu-1")

	rejected, err := svc.Reject(leave.ID, "Attendance shortfall", adminClaims())
	require.NoError(t, err)
	require.Equal(t, models.LeaveStatusRejected, rejected.Status)
	require.Equal(t, "Attendance shortfall", rejected.AdminRemarks)
	require.Empty(t, rejected.WardenRemarks)

	require.Len(t, notifications.created, 1)
	n := notifications.created[0]
	require.Equal(t, "Leave Rejected", n.Title)
	require.Equal(t, models.NotificationTypeError, n.Type)
	require.Equal(t, models.NotificationPriorityHigh, n.Priority)
	require.Contains(t, n.Message, "rejected")
}

func TestLeaveServiceJointWardenRejectsDirectly(t *testing.T) {
	svc, _, notifications, _ := newLeaveServiceForTest(t)
	leave := submitLeave(t, svc, "stu-1")

	rejected, err := svc.Reject(leave.ID, "Parent consent letter missing", jointWardenClaims())
	require.NoError(t, err)
	require.Equal(t, models.LeaveStatusRejected, rejected.Status)
	require.Equal(t, "Parent consent letter missing", rejected.JointWardenRemarks)
	require.Empty(t, rejected.WardenRemarks)
	require.Empty(t, rejected.AdminRemarks)
	require.Equal(t, "user-jwarden", rejected.ReviewedBy)

	require.Len(t, notifications.created, 1)
	require.Equal(t, "Leave Rejected", notifications.created[0].Title)
}

func TestLeaveServiceApproveMissingApplication(t *testing.T) {
	svc, _, notifications, dispatcher := newLeaveServiceForTest(t)

	_, err := svc.Approve("no-such-id", "granted", wardenClaims())
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	require.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
	require.Equal(t, "leave application not found", appErr.Message)
	require.Empty(t, notifications.created)
	require.Empty(t, dispatcher.jobs)
}

func TestLeaveServiceDecisionIsFinal(t *testing.T) {
	svc, repo, notifications, _ := newLeaveServiceForTest(t)
	leave := submitLeave(t, svc, "stu-1")

	_, err := svc.Approve(leave.ID, "granted", wardenClaims())
	require.NoError(t, err)

	_, err = svc.Reject(leave.ID, "changed my mind", wardenClaims())
	require.Error(t, err)
	require.Equal(t, appErrors.ErrFinalized.Code, appErrors.FromError(err).Code)

	stored, err := repo.GetByID(leave.ID)
	require.NoError(t, err)
	require.Equal(t, models.LeaveStatusApproved, stored.Status)
	require.Equal(t, "granted", stored.WardenRemarks)
	require.Len(t, notifications.created, 1)
}

func TestLeaveServiceDecisionRequiresRemarks(t *testing.T) {
	svc, repo, notifications, _ := newLeaveServiceForTest(t)
	leave := submitLeave(t, svc, "stu-1")

	_, err := svc.Approve(leave.ID, "", wardenClaims())
	require.Error(t, err)
	require.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	stored, err := repo.GetByID(leave.ID)
	require.NoError(t, err)
	require.Equal(t, models.LeaveStatusPending, stored.Status)
	require.Empty(t, notifications.created)
}

func TestLeaveServiceDecisionSurvivesNotificationFailure(t *testing.T) {
	svc, repo, notifications, dispatcher := newLeaveServiceForTest(t)
	notifications.err = errors.New("store unavailable")
	leave := submitLeave(t, svc, "stu-1")

	approved, err := svc.Approve(leave.ID, "granted", wardenClaims())
	require.NoError(t, err)
	require.Equal(t, models.LeaveStatusApproved, approved.Status)

	stored, err := repo.GetByID(leave.ID)
	require.NoError(t, err)
	require.Equal(t, models.LeaveStatusApproved, stored.Status)
	require.Empty(t, dispatcher.jobs)
}

func seedExportFixtures(t *testing.T, svc *LeaveService) {
	t.Helper()
	first := submitLeave(t, svc, "stu-1")
	second := submitLeave(t, svc, "stu-2")
	submitLeave(t, svc, "stu-3")

	_, err := svc.Approve(first.ID, "granted", wardenClaims())
	require.NoError(t, err)
	_, err = svc.Reject(second.ID, "denied", wardenClaims())
	require.NoError(t, err)
}

func TestLeaveServiceExportCSV(t *testing.T) {
	svc, _, _, _ := newLeaveServiceForTest(t)
	seedExportFixtures(t, svc)

	result, err := svc.Export(dto.ExportQuery{})
	require.NoError(t, err)
	require.Equal(t, "text/csv", result.ContentType)
	require.Equal(t, "leave-applications-20260314-100000.csv", result.Filename)

	lines := strings.Split(strings.TrimSpace(string(result.Data)), "\n")
	require.Len(t, lines, 4)
	require.True(t, strings.HasPrefix(lines[0], "id,studentName,roomNumber"))
}

func TestLeaveServiceExportStatusFilter(t *testing.T) {
	svc, _, _, _ := newLeaveServiceForTest(t)
	seedExportFixtures(t, svc)

	result, err := svc.Export(dto.ExportQuery{Format: "json", Status: "approved"})
	require.NoError(t, err)
	require.Equal(t, "application/json", result.ContentType)

	var envelope export.JSONEnvelope
	require.NoError(t, json.Unmarshal(result.Data, &envelope))
	require.Equal(t, 1, envelope.Total)
	require.Len(t, envelope.Rows, 1)
	require.Equal(t, "approved", envelope.Rows[0]["status"])

	_, err = svc.Export(dto.ExportQuery{Status: "bogus"})
	require.Error(t, err)
	require.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestLeaveServiceExportPDF(t *testing.T) {
	svc, _, _, _ := newLeaveServiceForTest(t)
	seedExportFixtures(t, svc)

	result, err := svc.Export(dto.ExportQuery{Format: "pdf"})
	require.NoError(t, err)
	require.Equal(t, "application/pdf", result.ContentType)
	require.NotEmpty(t, result.Data)
	require.True(t, strings.HasSuffix(result.Filename, ".pdf"))
}

func TestLeaveServiceExportRejectsUnknownFormat(t *testing.T) {
	svc, _, _, _ := newLeaveServiceForTest(t)

	_, err := svc.Export(dto.ExportQuery{Format: "xlsx"})
	require.Error(t, err)
	require.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestLeaveServiceStatistics(t *testing.T) {
	svc, _, _, _ := newLeaveServiceForTest(t)
	seedExportFixtures(t, svc)

	stats := svc.Statistics()
	require.Equal(t, 3, stats.Total)
	require.Equal(t, 1, stats.ByStatus[models.LeaveStatusPending])
	require.Equal(t, 1, stats.ByStatus[models.LeaveStatusApproved])
	require.Equal(t, 1, stats.ByStatus[models.LeaveStatusRejected])
	require.Equal(t, 3, stats.ByType[models.LeaveTypePersonal])
	require.Len(t, stats.Recent, 3)
}
