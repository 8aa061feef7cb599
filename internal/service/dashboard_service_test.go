package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hostelhub/hostelhub-api/internal/dto"
	"github.com/hostelhub/hostelhub-api/internal/models"
	"github.com/hostelhub/hostelhub-api/internal/repository"
	"github.com/hostelhub/hostelhub-api/internal/store"
)

func newDashboardServiceForTest(t *testing.T) (*DashboardService, *LeaveService) {
	t.Helper()
	s := store.New()
	leaves := repository.NewLeaveRepository(s)
	complaints := repository.NewComplaintRepository(s)
	notifications := repository.NewNotificationRepository(s)
	students := repository.NewStudentRepository(s)
	rooms := repository.NewRoomRepository(s)
	fees := repository.NewFeeRepository(s)

	require.NoError(t, students.Create(&models.Student{ID: "stu-1", FullName: "Rahul Sharma", Email: "rahul@example.com"}))
	require.NoError(t, students.Create(&models.Student{ID: "stu-2", FullName: "Priya Patel", Email: "priya@example.com"}))
	require.NoError(t, rooms.Create(&models.Room{Number: "A-101", Block: "A", Capacity: 2, Occupants: []string{"stu-1"}, Status: models.RoomStatusOccupied}))
	require.NoError(t, rooms.Create(&models.Room{Number: "A-102", Block: "A", Capacity: 2, Occupants: []string{}, Status: models.RoomStatusAvailable}))
	require.NoError(t, complaints.Create(&models.Complaint{StudentID: "stu-1", Subject: "Leaking tap", Category: models.ComplaintCategoryMaintenance, Status: models.ComplaintStatusOpen}))
	require.NoError(t, notifications.Create(&models.Notification{Title: "Inspection", TargetRoles: []models.UserRole{models.RoleWarden}, Timestamp: testNow}))

	leaveSvc := NewLeaveService(leaves, notifications, nil, nil, nil)
	leaveSvc.now = func() time.Time { return testNow }
	feeSvc := NewFeeService(fees, students, nil, nil)
	feeSvc.now = func() time.Time { return testNow }

	svc := NewDashboardService(leaves, leaveSvc, complaints, notifications, students, rooms, feeSvc, nil, time.Minute, nil)
	svc.now = func() time.Time { return testNow }
	return svc, leaveSvc
}

func TestDashboardServiceAdmin(t *testing.T) {
	svc, leaveSvc := newDashboardServiceForTest(t)
	submitLeave(t, leaveSvc, "stu-1")

	dashboard, err := svc.Admin(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, dashboard.TotalStudents)
	require.Equal(t, 2, dashboard.TotalRooms)
	require.InDelta(t, 0.25, dashboard.OccupancyRate, 1e-9)
	require.Equal(t, 1, dashboard.OpenComplaints)
	require.Equal(t, 1, dashboard.PendingLeaves)
	require.Equal(t, 1, dashboard.LeaveStatistics.Total)
	require.Equal(t, testNow, dashboard.GeneratedAt)
}

func TestDashboardServiceWarden(t *testing.T) {
	svc, leaveSvc := newDashboardServiceForTest(t)
	pending := submitLeave(t, leaveSvc, "stu-1")
	other := submitLeave(t, leaveSvc, "stu-2")
	_, err := leaveSvc.Recommend(other.ID, "verified", jointWardenClaims())
	require.NoError(t, err)

	dashboard, err := svc.Warden(context.Background())
	require.NoError(t, err)
	require.Len(t, dashboard.PendingLeaves, 1)
	require.Equal(t, pending.ID, dashboard.PendingLeaves[0].ID)
	require.Len(t, dashboard.RecommendedLeaves, 1)
	require.Len(t, dashboard.OpenComplaints, 1)
	require.Equal(t, 1, dashboard.UnreadNotifications)
}

func TestDashboardServiceListQueriesAreReadOnly(t *testing.T) {
	svc, leaveSvc := newDashboardServiceForTest(t)
	leave := submitLeave(t, leaveSvc, "stu-1")

	_, err := svc.Admin(context.Background())
	require.NoError(t, err)
	_, err = svc.Warden(context.Background())
	require.NoError(t, err)

	listed, err := leaveSvc.List(dto.LeaveQuery{}, wardenClaims())
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, models.LeaveStatusPending, listed[0].Status)
	require.Equal(t, leave.ID, listed[0].ID)
}
