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

type complaintRepository interface {
	Create(complaint *models.Complaint) error
	GetByID(id string) (*models.Complaint, error)
	List(filter models.ComplaintFilter) []models.Complaint
	Update(id string, apply func(*models.Complaint)) (*models.Complaint, error)
	Delete(id string) error
}

type complaintStudentReader interface {
	GetByID(id string) (*models.Student, error)
}

// ComplaintService tracks student complaints through open, in-progress and
// resolved states.
type ComplaintService struct {
	repo      complaintRepository
	students  complaintStudentReader
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewComplaintService constructs the service.
func NewComplaintService(repo complaintRepository, students complaintStudentReader, validate *validator.Validate, logger *zap.Logger) *ComplaintService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	svc := &ComplaintService{repo: repo, students: students, validator: validate, logger: logger, now: time.Now}
	svc.validator.RegisterValidation("complaint_category", func(fl validator.FieldLevel) bool {
		switch models.ComplaintCategory(fl.Field().String()) {
		case models.ComplaintCategoryMaintenance, models.ComplaintCategoryCleanliness,
			models.ComplaintCategoryFood, models.ComplaintCategorySecurity, models.ComplaintCategoryOther:
			return true
		default:
			return false
		}
	})
	svc.validator.RegisterValidation("complaint_status", func(fl validator.FieldLevel) bool {
		switch models.ComplaintStatus(fl.Field().String()) {
		case models.ComplaintStatusOpen, models.ComplaintStatusInProgress, models.ComplaintStatusResolved:
			return true
		default:
			return false
		}
	})
	return svc
}

// List returns complaints visible to the actor. Students only see their own.
func (s *ComplaintService) List(query dto.ComplaintQuery, actor *models.JWTClaims) ([]models.Complaint, error) {
	if actor == nil {
		return nil, appErrors.ErrUnauthorized
	}
	filter := models.ComplaintFilter{
		StudentID: query.StudentID,
		Status:    query.Status,
		Category:  query.Category,
	}
	if actor.Role == models.RoleStudent {
		filter.StudentID = actor.StudentID
	}
	return s.repo.List(filter), nil
}

// Create files a new complaint in open state. The student name is resolved
// from the profile when available.
func (s *ComplaintService) Create(req dto.CreateComplaintRequest) (*models.Complaint, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	now := s.now().UTC()
	complaint := &models.Complaint{
		StudentID:   req.StudentID,
		RoomNumber:  req.RoomNumber,
		Category:    req.Category,
		Subject:     strings.TrimSpace(req.Subject),
		Description: strings.TrimSpace(req.Description),
		Status:      models.ComplaintStatusOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if student, err := s.students.GetByID(req.StudentID); err == nil {
		complaint.StudentName = student.FullName
		if complaint.RoomNumber == "" {
			complaint.RoomNumber = student.RoomNumber
		}
	}
	if err := s.repo.Create(complaint); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create complaint")
	}
	return complaint, nil
}

// UpdateStatus moves a complaint through its lifecycle. Resolved complaints
// are final.
func (s *ComplaintService) UpdateStatus(id string, req dto.UpdateComplaintStatusRequest, actor *models.JWTClaims) (*models.Complaint, error) {
	if actor == nil {
		return nil, appErrors.ErrUnauthorized
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}

	var stateErr *appErrors.Error
	complaint, err := s.repo.Update(id, func(c *models.Complaint) {
		if c.Status == models.ComplaintStatusResolved {
			stateErr = appErrors.Clone(appErrors.ErrConflict, "complaint already resolved")
			return
		}
		c.Status = req.Status
		if req.Status == models.ComplaintStatusResolved {
			c.Resolution = strings.TrimSpace(req.Resolution)
			c.ResolvedBy = actor.UserID
		}
		c.UpdatedAt = s.now().UTC()
	})
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "complaint not found")
	}
	if stateErr != nil {
		return nil, stateErr
	}
	return complaint, nil
}

// Delete removes a complaint.
func (s *ComplaintService) Delete(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return appErrors.Clone(appErrors.ErrNotFound, "complaint not found")
	}
	return nil
}
