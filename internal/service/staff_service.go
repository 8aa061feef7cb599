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

type staffRepository interface {
	Create(member *models.StaffMember) error
	GetByID(id string) (*models.StaffMember, error)
	List(filter models.StaffFilter) []models.StaffMember
	Update(id string, apply func(*models.StaffMember)) (*models.StaffMember, error)
	Delete(id string) error
}

// StaffService manages hostel staff records.
type StaffService struct {
	repo      staffRepository
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewStaffService constructs the service.
func NewStaffService(repo staffRepository, validate *validator.Validate, logger *zap.Logger) *StaffService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	svc := &StaffService{repo: repo, validator: validate, logger: logger, now: time.Now}
	svc.validator.RegisterValidation("staff_role", func(fl validator.FieldLevel) bool {
		switch models.StaffRole(fl.Field().String()) {
		case models.StaffRoleWarden, models.StaffRoleJointWarden, models.StaffRoleSecurity,
			models.StaffRoleCook, models.StaffRoleCleaner, models.StaffRoleMaintenance:
			return true
		default:
			return false
		}
	})
	svc.validator.RegisterValidation("staff_shift", func(fl validator.FieldLevel) bool {
		switch models.StaffShift(fl.Field().String()) {
		case models.StaffShiftMorning, models.StaffShiftEvening, models.StaffShiftNight:
			return true
		default:
			return false
		}
	})
	return svc
}

// List returns staff members matching the query.
func (s *StaffService) List(query dto.StaffQuery) []models.StaffMember {
	return s.repo.List(models.StaffFilter{
		Role:   query.Role,
		Shift:  query.Shift,
		Active: query.Active,
	})
}

// Get returns one staff member.
func (s *StaffService) Get(id string) (*models.StaffMember, error) {
	member, err := s.repo.GetByID(id)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "staff member not found")
	}
	return member, nil
}

// Create registers a staff member as active.
func (s *StaffService) Create(req dto.CreateStaffRequest) (*models.StaffMember, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	now := s.now().UTC()
	member := &models.StaffMember{
		FullName:  strings.TrimSpace(req.FullName),
		Role:      req.Role,
		Shift:     req.Shift,
		Phone:     req.Phone,
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(member); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrConflict.Code, appErrors.ErrConflict.Status, "failed to create staff member")
	}
	return member, nil
}

// Update applies a partial update, ignoring zero-valued fields.
func (s *StaffService) Update(id string, req dto.UpdateStaffRequest) (*models.StaffMember, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	member, err := s.repo.Update(id, func(m *models.StaffMember) {
		if req.FullName != "" {
			m.FullName = strings.TrimSpace(req.FullName)
		}
		if req.Role != "" {
			m.Role = req.Role
		}
		if req.Shift != "" {
			m.Shift = req.Shift
		}
		if req.Phone != "" {
			m.Phone = req.Phone
		}
		if req.Email != "" {
			m.Email = strings.ToLower(strings.TrimSpace(req.Email))
		}
		if req.Active != nil {
			m.Active = *req.Active
		}
		m.UpdatedAt = s.now().UTC()
	})
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "staff member not found")
	}
	return member, nil
}

// Delete removes a staff record.
func (s *StaffService) Delete(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return appErrors.Clone(appErrors.ErrNotFound, "staff member not found")
	}
	return nil
}
