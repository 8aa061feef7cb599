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

func newRoomServiceForTest(t *testing.T) (*RoomService, *repository.RoomRepository, *repository.StudentRepository) {
	t.Helper()
	s := store.New()
	rooms := repository.NewRoomRepository(s)
	students := repository.NewStudentRepository(s)
	svc := NewRoomService(rooms, students, nil, nil)
	svc.now = func() time.Time { return testNow }
	return svc, rooms, students
}

func seedRoom(t *testing.T, repo *repository.RoomRepository, capacity int, occupants ...string) *models.Room {
	t.Helper()
	room := &models.Room{
		Number:    "A-101",
		Block:     "A",
		Floor:     1,
		Capacity:  capacity,
		Occupants: occupants,
		Status:    occupancyStatus(len(occupants), capacity),
	}
	require.NoError(t, repo.Create(room))
	return room
}

func seedStudentProfile(t *testing.T, repo *repository.StudentRepository, id string) {
	t.Helper()
	require.NoError(t, repo.Create(&models.Student{
		ID:       id,
		FullName: "Test Student",
		Email:    id + "@example.com",
	}))
}

func TestRoomServiceAllocate(t *testing.T) {
	svc, rooms, students := newRoomServiceForTest(t)
	room := seedRoom(t, rooms, 2)
	seedStudentProfile(t, students, "stu-1")

	updated, err := svc.Allocate(room.ID, dto.AllocateRequest{StudentID: "stu-1"})
	require.NoError(t, err)
	require.Equal(t, []string{"stu-1"}, updated.Occupants)
	require.Equal(t, models.RoomStatusOccupied, updated.Status)

	profile, err := students.GetByID("stu-1")
	require.NoError(t, err)
	require.Equal(t, "A-101", profile.RoomNumber)
}

func TestRoomServiceAllocateFillsRoom(t *testing.T) {
	svc, rooms, students := newRoomServiceForTest(t)
	room := seedRoom(t, rooms, 2, "stu-1")
	seedStudentProfile(t, students, "stu-2")

	updated, err := svc.Allocate(room.ID, dto.AllocateRequest{StudentID: "stu-2"})
	require.NoError(t, err)
	require.Equal(t, models.RoomStatusFull, updated.Status)
}

func TestRoomServiceAllocateAtCapacity(t *testing.T) {
	svc, rooms, _ := newRoomServiceForTest(t)
	room := seedRoom(t, rooms, 2, "stu-1", "stu-2")

	_, err := svc.Allocate(room.ID, dto.AllocateRequest{StudentID: "stu-3"})
	require.Error(t, err)
	require.Equal(t, appErrors.ErrRoomFull.Code, appErrors.FromError(err).Code)

	current, err := rooms.GetByID(room.ID)
	require.NoError(t, err)
	require.Len(t, current.Occupants, 2)
}

func TestRoomServiceAllocateDuplicateOccupant(t *testing.T) {
	svc, rooms, _ := newRoomServiceForTest(t)
	room := seedRoom(t, rooms, 3, "stu-1")

	_, err := svc.Allocate(room.ID, dto.AllocateRequest{StudentID: "stu-1"})
	require.Error(t, err)
	require.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)
}

func TestRoomServiceAllocateMaintenanceRoom(t *testing.T) {
	svc, rooms, _ := newRoomServiceForTest(t)
	room := seedRoom(t, rooms, 2)
	_, err := rooms.Update(room.ID, func(r *models.Room) {
		r.Status = models.RoomStatusMaintenance
	})
	require.NoError(t, err)

	_, err = svc.Allocate(room.ID, dto.AllocateRequest{StudentID: "stu-1"})
	require.Error(t, err)
	require.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)
}

func TestRoomServiceVacate(t *testing.T) {
	svc, rooms, students := newRoomServiceForTest(t)
	room := seedRoom(t, rooms, 2, "stu-1", "stu-2")
	seedStudentProfile(t, students, "stu-1")

	updated, err := svc.Vacate(room.ID, "stu-1")
	require.NoError(t, err)
	require.Equal(t, []string{"stu-2"}, updated.Occupants)
	require.Equal(t, models.RoomStatusOccupied, updated.Status)

	profile, err := students.GetByID("stu-1")
	require.NoError(t, err)
	require.Empty(t, profile.RoomNumber)

	_, err = svc.Vacate(room.ID, "stu-1")
	require.Error(t, err)
	require.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestRoomServiceDeleteRefusesOccupiedRoom(t *testing.T) {
	svc, rooms, _ := newRoomServiceForTest(t)
	room := seedRoom(t, rooms, 2, "stu-1")

	err := svc.Delete(room.ID)
	require.Error(t, err)
	require.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)

	empty := seedRoomWithNumber(t, rooms, "A-102")
	require.NoError(t, svc.Delete(empty.ID))
}

func seedRoomWithNumber(t *testing.T, repo *repository.RoomRepository, number string) *models.Room {
	t.Helper()
	room := &models.Room{Number: number, Block: "A", Floor: 1, Capacity: 2, Occupants: []string{}, Status: models.RoomStatusAvailable}
	require.NoError(t, repo.Create(room))
	return room
}

func TestRoomServiceCreateValidatesCapacity(t *testing.T) {
	svc, _, _ := newRoomServiceForTest(t)

	_, err := svc.Create(dto.CreateRoomRequest{Number: "C-301", Block: "C", Floor: 3, Capacity: 0})
	require.Error(t, err)
	require.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	room, err := svc.Create(dto.CreateRoomRequest{Number: "C-301", Block: "C", Floor: 3, Capacity: 4})
	require.NoError(t, err)
	require.Equal(t, models.RoomStatusAvailable, room.Status)
	require.Empty(t, room.Occupants)
}
