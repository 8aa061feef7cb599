package service

import (
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/hostelhub/hostelhub-api/internal/dto"
	"github.com/hostelhub/hostelhub-api/internal/models"
	appErrors "github.com/hostelhub/hostelhub-api/pkg/errors"
)

type roomRepository interface {
	Create(room *models.Room) error
	GetByID(id string) (*models.Room, error)
	List(filter models.RoomFilter) []models.Room
	Update(id string, apply func(*models.Room)) (*models.Room, error)
	Delete(id string) error
}

type roomStudentUpdater interface {
	Update(id string, apply func(*models.Student)) (*models.Student, error)
}

// RoomService manages rooms and occupancy. Allocation runs the capacity
// guard inside the store mutation so two concurrent allocations cannot
// overfill a room.
type RoomService struct {
	repo      roomRepository
	students  roomStudentUpdater
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewRoomService constructs the service.
func NewRoomService(repo roomRepository, students roomStudentUpdater, validate *validator.Validate, logger *zap.Logger) *RoomService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RoomService{repo: repo, students: students, validator: validate, logger: logger, now: time.Now}
}

// List returns rooms matching the query.
func (s *RoomService) List(query dto.RoomQuery) []models.Room {
	return s.repo.List(models.RoomFilter{
		Block:  query.Block,
		Status: models.RoomStatus(query.Status),
	})
}

// Get returns one room.
func (s *RoomService) Get(id string) (*models.Room, error) {
	room, err := s.repo.GetByID(id)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "room not found")
	}
	return room, nil
}

// Create registers a new room in available state.
func (s *RoomService) Create(req dto.CreateRoomRequest) (*models.Room, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	now := s.now().UTC()
	room := &models.Room{
		Number:    req.Number,
		Block:     req.Block,
		Floor:     req.Floor,
		Capacity:  req.Capacity,
		Occupants: []string{},
		Status:    models.RoomStatusAvailable,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(room); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrConflict.Code, appErrors.ErrConflict.Status, "failed to create room")
	}
	return room, nil
}

// Allocate assigns a student to the room, enforcing capacity, and mirrors
// the room number onto the student profile.
func (s *RoomService) Allocate(roomID string, req dto.AllocateRequest) (*models.Room, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}

	var allocErr *appErrors.Error
	room, err := s.repo.Update(roomID, func(r *models.Room) {
		if r.Status == models.RoomStatusMaintenance {
			allocErr = appErrors.Clone(appErrors.ErrConflict, "room is under maintenance")
			return
		}
		if r.HasOccupant(req.StudentID) {
			allocErr = appErrors.Clone(appErrors.ErrConflict, "student already occupies this room")
			return
		}
		if len(r.Occupants) >= r.Capacity {
			allocErr = appErrors.Clone(appErrors.ErrRoomFull, "room is at full capacity")
			return
		}
		r.Occupants = append(r.Occupants, req.StudentID)
		r.Status = occupancyStatus(len(r.Occupants), r.Capacity)
		r.UpdatedAt = s.now().UTC()
	})
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "room not found")
	}
	if allocErr != nil {
		return nil, allocErr
	}

	if _, err := s.students.Update(req.StudentID, func(st *models.Student) {
		st.RoomNumber = room.Number
		st.UpdatedAt = s.now().UTC()
	}); err != nil {
		s.logger.Warn("allocated room but failed to update student profile",
			zap.String("room_id", roomID), zap.String("student_id", req.StudentID), zap.Error(err))
	}
	return room, nil
}

// Vacate removes a student from the room and clears the profile linkage.
func (s *RoomService) Vacate(roomID, studentID string) (*models.Room, error) {
	var vacateErr *appErrors.Error
	room, err := s.repo.Update(roomID, func(r *models.Room) {
		if !r.HasOccupant(studentID) {
			vacateErr = appErrors.Clone(appErrors.ErrNotFound, "student does not occupy this room")
			return
		}
		occupants := make([]string, 0, len(r.Occupants))
		for _, id := range r.Occupants {
			if id != studentID {
				occupants = append(occupants, id)
			}
		}
		r.Occupants = occupants
		r.Status = occupancyStatus(len(r.Occupants), r.Capacity)
		r.UpdatedAt = s.now().UTC()
	})
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "room not found")
	}
	if vacateErr != nil {
		return nil, vacateErr
	}

	if _, err := s.students.Update(studentID, func(st *models.Student) {
		st.RoomNumber = ""
		st.UpdatedAt = s.now().UTC()
	}); err != nil {
		s.logger.Warn("vacated room but failed to update student profile",
			zap.String("room_id", roomID), zap.String("student_id", studentID), zap.Error(err))
	}
	return room, nil
}

// Delete removes an empty room. Occupied rooms must be vacated first.
func (s *RoomService) Delete(id string) error {
	room, err := s.repo.GetByID(id)
	if err != nil {
		return appErrors.Clone(appErrors.ErrNotFound, "room not found")
	}
	if len(room.Occupants) > 0 {
		return appErrors.Clone(appErrors.ErrConflict, "room still has occupants")
	}
	if err := s.repo.Delete(id); err != nil {
		return appErrors.Clone(appErrors.ErrNotFound, "room not found")
	}
	return nil
}

func occupancyStatus(occupants, capacity int) models.RoomStatus {
	switch {
	case occupants == 0:
		return models.RoomStatusAvailable
	case occupants >= capacity:
		return models.RoomStatusFull
	default:
		return models.RoomStatusOccupied
	}
}
