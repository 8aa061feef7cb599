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

type healthRepository interface {
	Create(record *models.HealthRecord) error
	GetByID(id string) (*models.HealthRecord, error)
	List(filter models.HealthFilter) []models.HealthRecord
	Update(id string, apply func(*models.HealthRecord)) (*models.HealthRecord, error)
	Delete(id string) error
}

type healthStudentReader interface {
	GetByID(id string) (*models.Student, error)
}

// HealthService manages per-student medical entries.
type HealthService struct {
	repo      healthRepository
	students  healthStudentReader
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewHealthService constructs the service.
func NewHealthService(repo healthRepository, students healthStudentReader, validate *validator.Validate, logger *zap.Logger) *HealthService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HealthService{repo: repo, students: students, validator: validate, logger: logger, now: time.Now}
}

// List returns health records visible to the actor. Students only see their own.
func (s *HealthService) List(studentID string, actor *models.JWTClaims) ([]models.HealthRecord, error) {
	if actor == nil {
		return nil, appErrors.ErrUnauthorized
	}
	if actor.Role == models.RoleStudent {
		studentID = actor.StudentID
	}
	return s.repo.List(models.HealthFilter{StudentID: studentID}), nil
}

// Create logs a medical entry attributed to the acting staff member.
func (s *HealthService) Create(req dto.CreateHealthRecordRequest, actor *models.JWTClaims) (*models.HealthRecord, error) {
	if actor == nil {
		return nil, appErrors.ErrUnauthorized
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	record := &models.HealthRecord{
		StudentID:  req.StudentID,
		Condition:  strings.TrimSpace(req.Condition),
		Notes:      req.Notes,
		Medication: req.Medication,
		RecordedBy: actor.UserID,
		RecordedAt: s.now().UTC(),
	}
	if student, err := s.students.GetByID(req.StudentID); err == nil {
		record.StudentName = student.FullName
	}
	if err := s.repo.Create(record); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create health record")
	}
	return record, nil
}

// Update amends an existing entry, ignoring zero-valued fields.
func (s *HealthService) Update(id string, req dto.UpdateHealthRecordRequest) (*models.HealthRecord, error) {
	record, err := s.repo.Update(id, func(h *models.HealthRecord) {
		if req.Condition != "" {
			h.Condition = strings.TrimSpace(req.Condition)
		}
		if req.Notes != "" {
			h.Notes = req.Notes
		}
		if req.Medication != "" {
			h.Medication = req.Medication
		}
	})
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "health record not found")
	}
	return record, nil
}

// Delete removes a health record.
func (s *HealthService) Delete(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return appErrors.Clone(appErrors.ErrNotFound, "health record not found")
	}
	return nil
}
