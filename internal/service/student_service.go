package service

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/hostelhub/hostelhub-api/internal/dto"
	"github.com/hostelhub/hostelhub-api/internal/models"
	appErrors "github.com/hostelhub/hostelhub-api/pkg/errors"
)

type studentRepository interface {
	Create(student *models.Student) error
	GetByID(id string) (*models.Student, error)
	List(filter models.StudentFilter) ([]models.Student, int)
	Update(id string, apply func(*models.Student)) (*models.Student, error)
	Delete(id string) error
}

// StudentService handles student profiles.
type StudentService struct {
	repo      studentRepository
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewStudentService constructs the service.
func NewStudentService(repo studentRepository, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, validator: validate, logger: logger, now: time.Now}
}

// List returns students with pagination metadata.
func (s *StudentService) List(query dto.StudentQuery) ([]models.Student, *models.Pagination, error) {
	filter := models.StudentFilter{
		Search:     query.Search,
		RoomNumber: query.RoomNumber,
		Page:       query.Page,
		PageSize:   query.PageSize,
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 50
	}
	students, total := s.repo.List(filter)
	pagination := &models.Pagination{Page: filter.Page, PageSize: filter.PageSize, TotalCount: total}
	return students, pagination, nil
}

// Get returns one student.
func (s *StudentService) Get(id string) (*models.Student, error) {
	student, err := s.repo.GetByID(id)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	return student, nil
}

// Create registers a new student.
func (s *StudentService) Create(req dto.CreateStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	now := s.now().UTC()
	student := &models.Student{
		FullName:      strings.TrimSpace(req.Name),
		RollNumber:    strings.TrimSpace(req.RollNumber),
		Email:         strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:         req.Phone,
		RoomNumber:    req.RoomNumber,
		Course:        req.Course,
		Year:          req.Year,
		GuardianName:  req.GuardianName,
		GuardianPhone: req.GuardianTel,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.Create(student); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrConflict.Code, appErrors.ErrConflict.Status, "failed to create student")
	}
	return student, nil
}

// Update applies a partial update, ignoring zero-valued fields.
func (s *StudentService) Update(id string, req dto.UpdateStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	student, err := s.repo.Update(id, func(st *models.Student) {
		if req.Name != "" {
			st.FullName = strings.TrimSpace(req.Name)
		}
		if req.Email != "" {
			st.Email = strings.ToLower(strings.TrimSpace(req.Email))
		}
		if req.Phone != "" {
			st.Phone = req.Phone
		}
		if req.RoomNumber != "" {
			st.RoomNumber = req.RoomNumber
		}
		if req.Course != "" {
			st.Course = req.Course
		}
		if req.Year != 0 {
			st.Year = req.Year
		}
		if req.GuardianName != "" {
			st.GuardianName = req.GuardianName
		}
		if req.GuardianTel != "" {
			st.GuardianPhone = req.GuardianTel
		}
		st.UpdatedAt = s.now().UTC()
	})
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	return student, nil
}

// Delete removes a student profile.
func (s *StudentService) Delete(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	return nil
}
