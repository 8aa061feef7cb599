// Package seed loads a mock dataset into the shared store so the API is
// usable immediately after startup. All state is in-memory and lost on
// restart, so development environments reseed every boot.
package seed

import (
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/hostelhub/hostelhub-api/internal/models"
	"github.com/hostelhub/hostelhub-api/internal/repository"
	"github.com/hostelhub/hostelhub-api/internal/store"
)

// Load populates the store with mock users, students, rooms, leaves,
// complaints, fees and feedback. Errors are logged and skipped; a partial
// seed is still a usable dev environment.
func Load(s *store.Store, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}

	now := time.Now().UTC()
	users := repository.NewUserRepository(s)
	students := repository.NewStudentRepository(s)
	rooms := repository.NewRoomRepository(s)
	staff := repository.NewStaffRepository(s)
	leaves := repository.NewLeaveRepository(s)
	complaints := repository.NewComplaintRepository(s)
	fees := repository.NewFeeRepository(s)
	feedback := repository.NewFeedbackRepository(s)

	hash := func(plain string) string {
		h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
		if err != nil {
			logger.Warn("failed to hash seed password", zap.Error(err))
			return ""
		}
		return string(h)
	}

	seedStudents := []models.Student{
		{ID: "stu-1", FullName: "Rahul Sharma", Email: "rahul.sharma@hostelhub.dev", RollNumber: "H2023001", RoomNumber: "A-101", Course: "B.Tech CSE", Year: 2, Phone: "9800000001", GuardianName: "Suresh Sharma", GuardianPhone: "9800000011", CreatedAt: now, UpdatedAt: now},
		{ID: "stu-2", FullName: "Priya Patel", Email: "priya.patel@hostelhub.dev", RollNumber: "H2023002", RoomNumber: "A-101", Course: "B.Tech ECE", Year: 2, Phone: "9800000002", GuardianName: "Mehul Patel", GuardianPhone: "9800000012", CreatedAt: now, UpdatedAt: now},
		{ID: "stu-3", FullName: "Arjun Verma", Email: "arjun.verma@hostelhub.dev", RollNumber: "H2024003", RoomNumber: "B-204", Course: "BBA", Year: 1, Phone: "9800000003", GuardianName: "Rakesh Verma", GuardianPhone: "9800000013", CreatedAt: now, UpdatedAt: now},
	}
	for i := range seedStudents {
		if err := students.Create(&seedStudents[i]); err != nil {
			logger.Warn("seed student skipped", zap.String("id", seedStudents[i].ID), zap.Error(err))
		}
	}

	seedRooms := []models.Room{
		{ID: "room-1", Number: "A-101", Block: "A", Floor: 1, Capacity: 2, Occupants: []string{"stu-1", "stu-2"}, Status: models.RoomStatusFull, CreatedAt: now, UpdatedAt: now},
		{ID: "room-2", Number: "A-102", Block: "A", Floor: 1, Capacity: 2, Occupants: []string{}, Status: models.RoomStatusAvailable, CreatedAt: now, UpdatedAt: now},
		{ID: "room-3", Number: "B-204", Block: "B", Floor: 2, Capacity: 3, Occupants: []string{"stu-3"}, Status: models.RoomStatusOccupied, CreatedAt: now, UpdatedAt: now},
	}
	for i := range seedRooms {
		if err := rooms.Create(&seedRooms[i]); err != nil {
			logger.Warn("seed room skipped", zap.String("id", seedRooms[i].ID), zap.Error(err))
		}
	}

	seedStaff := []models.StaffMember{
		{ID: "staff-1", FullName: "Mohan Das", Role: models.StaffRoleSecurity, Shift: models.StaffShiftNight, Phone: "9800000021", Active: true, CreatedAt: now, UpdatedAt: now},
		{ID: "staff-2", FullName: "Lakshmi Nair", Role: models.StaffRoleCook, Shift: models.StaffShiftMorning, Phone: "9800000022", Active: true, CreatedAt: now, UpdatedAt: now},
	}
	for i := range seedStaff {
		if err := staff.Create(&seedStaff[i]); err != nil {
			logger.Warn("seed staff skipped", zap.String("id", seedStaff[i].ID), zap.Error(err))
		}
	}

	seedUsers := []models.User{
		{ID: "user-admin", Email: "admin@hostelhub.dev", PasswordHash: hash("admin123"), FullName: "Hostel Admin", Role: models.RoleAdmin, Active: true, CreatedAt: now},
		{ID: "user-warden", Email: "warden@hostelhub.dev", PasswordHash: hash("warden123"), FullName: "Head Warden", Role: models.RoleWarden, Active: true, CreatedAt: now},
		{ID: "user-jwarden", Email: "jointwarden@hostelhub.dev", PasswordHash: hash("jwarden123"), FullName: "Joint Warden", Role: models.RoleJointWarden, Active: true, CreatedAt: now},
		{ID: "user-stu-1", Email: "rahul.sharma@hostelhub.dev", PasswordHash: hash("student123"), FullName: "Rahul Sharma", Role: models.RoleStudent, StudentID: "stu-1", Active: true, CreatedAt: now},
		{ID: "user-stu-2", Email: "priya.patel@hostelhub.dev", PasswordHash: hash("student123"), FullName: "Priya Patel", Role: models.RoleStudent, StudentID: "stu-2", Active: true, CreatedAt: now},
	}
	for i := range seedUsers {
		if err := users.Create(&seedUsers[i]); err != nil {
			logger.Warn("seed user skipped", zap.String("id", seedUsers[i].ID), zap.Error(err))
		}
	}

	seedLeaves := []models.LeaveApplication{
		{ID: "leave-1", StudentID: "stu-1", StudentName: "Rahul Sharma", RoomNumber: "A-101", StartDate: now.AddDate(0, 0, 3).Format("2006-01-02"), EndDate: now.AddDate(0, 0, 6).Format("2006-01-02"), Reason: "Sister's wedding at home", Type: models.LeaveTypePersonal, Status: models.LeaveStatusPending, SubmittedAt: now.Add(-48 * time.Hour)},
		{ID: "leave-2", StudentID: "stu-2", StudentName: "Priya Patel", RoomNumber: "A-101", StartDate: now.AddDate(0, 0, 1).Format("2006-01-02"), EndDate: now.AddDate(0, 0, 2).Format("2006-01-02"), Reason: "Dental appointment in the city", Type: models.LeaveTypeMedical, Status: models.LeaveStatusRecommended, JointWardenRemarks: "Appointment letter verified", SubmittedAt: now.Add(-24 * time.Hour)},
	}
	for i := range seedLeaves {
		if err := leaves.Create(&seedLeaves[i]); err != nil {
			logger.Warn("seed leave skipped", zap.String("id", seedLeaves[i].ID), zap.Error(err))
		}
	}

	seedComplaints := []models.Complaint{
		{ID: "comp-1", StudentID: "stu-3", StudentName: "Arjun Verma", RoomNumber: "B-204", Category: models.ComplaintCategoryMaintenance, Subject: "Leaking tap", Description: "Bathroom tap has been leaking for two days.", Status: models.ComplaintStatusOpen, CreatedAt: now.Add(-12 * time.Hour), UpdatedAt: now.Add(-12 * time.Hour)},
	}
	for i := range seedComplaints {
		if err := complaints.Create(&seedComplaints[i]); err != nil {
			logger.Warn("seed complaint skipped", zap.String("id", seedComplaints[i].ID), zap.Error(err))
		}
	}

	seedFees := []models.FeeRecord{
		{ID: "fee-1", StudentID: "stu-1", StudentName: "Rahul Sharma", Description: "Hostel fee, current term", Amount: 25000, DueDate: now.AddDate(0, 1, 0).Format("2006-01-02"), Status: models.FeeStatusPending, CreatedAt: now},
		{ID: "fee-2", StudentID: "stu-2", StudentName: "Priya Patel", Description: "Hostel fee, current term", Amount: 25000, DueDate: now.AddDate(0, -1, 0).Format("2006-01-02"), Status: models.FeeStatusPending, CreatedAt: now.AddDate(0, -2, 0)},
	}
	for i := range seedFees {
		if err := fees.Create(&seedFees[i]); err != nil {
			logger.Warn("seed fee skipped", zap.String("id", seedFees[i].ID), zap.Error(err))
		}
	}

	seedFeedback := []models.FoodFeedback{
		{ID: "fb-1", StudentID: "stu-1", StudentName: "Rahul Sharma", Meal: models.MealLunch, Date: now.Format("2006-01-02"), Rating: 4, Comments: "Dal was good today", CreatedAt: now},
		{ID: "fb-2", StudentID: "stu-3", StudentName: "Arjun Verma", Meal: models.MealDinner, Date: now.Format("2006-01-02"), Rating: 2, Comments: "Rotis were cold", CreatedAt: now},
	}
	for i := range seedFeedback {
		if err := feedback.Create(&seedFeedback[i]); err != nil {
			logger.Warn("seed feedback skipped", zap.String("id", seedFeedback[i].ID), zap.Error(err))
		}
	}

	logger.Sugar().Infow("mock dataset loaded",
		"students", len(seedStudents),
		"rooms", len(seedRooms),
		"users", len(seedUsers),
		"leaves", len(seedLeaves))
}
