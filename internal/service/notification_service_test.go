package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hostelhub/hostelhub-api/internal/dto"
	"github.com/hostelhub/hostelhub-api/internal/models"
	"github.com/hostelhub/hostelhub-api/internal/repository"
	"github.com/hostelhub/hostelhub-api/internal/store"
	appErrors "github.com/hostelhub/hostelhub-api/pkg/errors"
)

func newNotificationServiceForTest(t *testing.T) (*NotificationService, *repository.NotificationRepository, *dispatchCapture) {
	t.Helper()
	repo := repository.NewNotificationRepository(store.New())
	dispatcher := &dispatchCapture{}
	svc := NewNotificationService(repo, dispatcher, nil, nil)
	svc.now = func() time.Time { return testNow }
	return svc, repo, dispatcher
}

func TestNotificationServiceBroadcastDefaults(t *testing.T) {
	svc, _, dispatcher := newNotificationServiceForTest(t)

	n, err := svc.Broadcast(dto.BroadcastRequest{
		Title:   "Water supply maintenance",
		Message: "No water in block A between 2pm and 4pm.",
	})
	require.NoError(t, err)
	require.Equal(t, models.NotificationTypeInfo, n.Type)
	require.Equal(t, models.NotificationPriorityNormal, n.Priority)
	require.NotEmpty(t, n.ID)

	require.Len(t, dispatcher.jobs, 1)
	require.Equal(t, "notification.broadcast", dispatcher.jobs[0].Type)
}

func TestNotificationServiceBroadcastValidatesEnums(t *testing.T) {
	svc, _, _ := newNotificationServiceForTest(t)

	_, err := svc.Broadcast(dto.BroadcastRequest{
		Title:   "Bad",
		Message: "Bad",
		Type:    "shout",
	})
	require.Error(t, err)
	require.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestNotificationServiceListVisibility(t *testing.T) {
	svc, repo, _ := newNotificationServiceForTest(t)

	require.NoError(t, repo.Create(&models.Notification{Title: "For stu-1", TargetStudentID: "stu-1", Timestamp: testNow}))
	require.NoError(t, repo.Create(&models.Notification{Title: "For wardens", TargetRoles: []models.UserRole{models.RoleWarden}, Timestamp: testNow}))
	require.NoError(t, repo.Create(&models.Notification{Title: "For everyone", Timestamp: testNow}))

	feed, err := svc.List(dto.NotificationQuery{}, studentClaims("stu-1"))
	require.NoError(t, err)
	require.Len(t, feed, 2)

	feed, err = svc.List(dto.NotificationQuery{}, wardenClaims())
	require.NoError(t, err)
	require.Len(t, feed, 2)

	feed, err = svc.List(dto.NotificationQuery{}, studentClaims("stu-2"))
	require.NoError(t, err)
	require.Len(t, feed, 1)
	require.Equal(t, "For everyone", feed[0].Title)
}

func TestNotificationServiceMarkReadAndUnreadFilter(t *testing.T) {
	svc, repo, _ := newNotificationServiceForTest(t)

	n := &models.Notification{Title: "For stu-1", TargetStudentID: "stu-1", Timestamp: testNow}
	require.NoError(t, repo.Create(n))

	marked, err := svc.MarkRead(n.ID, studentClaims("stu-1"))
	require.NoError(t, err)
	require.True(t, marked.Read)

	feed, err := svc.List(dto.NotificationQuery{UnreadOnly: true}, studentClaims("stu-1"))
	require.NoError(t, err)
	require.Empty(t, feed)

	_, err = svc.MarkRead("missing", studentClaims("stu-1"))
	require.Error(t, err)
	require.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestNotificationServiceMarkReadEnforcesVisibility(t *testing.T) {
	svc, repo, _ := newNotificationServiceForTest(t)

	n := &models.Notification{Title: "For stu-1", TargetStudentID: "stu-1", Timestamp: testNow}
	require.NoError(t, repo.Create(n))

	_, err := svc.MarkRead(n.ID, studentClaims("stu-2"))
	require.Error(t, err)
	require.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)

	stored, err := repo.GetByID(n.ID)
	require.NoError(t, err)
	require.False(t, stored.Read)

	marked, err := svc.MarkRead(n.ID, adminClaims())
	require.NoError(t, err)
	require.True(t, marked.Read)
}

func TestNotificationServiceDismiss(t *testing.T) {
	svc, repo, _ := newNotificationServiceForTest(t)

	n := &models.Notification{Title: "Old announcement", Timestamp: testNow}
	require.NoError(t, repo.Create(n))

	require.NoError(t, svc.Dismiss(n.ID, studentClaims("stu-1")))
	err := svc.Dismiss(n.ID, studentClaims("stu-1"))
	require.Error(t, err)
	require.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestNotificationServiceDismissEnforcesVisibility(t *testing.T) {
	svc, repo, _ := newNotificationServiceForTest(t)

	n := &models.Notification{Title: "For stu-1", TargetStudentID: "stu-1", Timestamp: testNow}
	require.NoError(t, repo.Create(n))

	err := svc.Dismiss(n.ID, studentClaims("stu-2"))
	require.Error(t, err)
	require.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)

	require.NoError(t, svc.Dismiss(n.ID, studentClaims("stu-1")))
	require.Zero(t, repo.Count())
}

func TestNotificationServiceAdminDismissesAnything(t *testing.T) {
	svc, repo, _ := newNotificationServiceForTest(t)

	n := &models.Notification{Title: "For stu-1", TargetStudentID: "stu-1", Timestamp: testNow}
	require.NoError(t, repo.Create(n))

	require.NoError(t, svc.Dismiss(n.ID, adminClaims()))
	require.Zero(t, repo.Count())
}
