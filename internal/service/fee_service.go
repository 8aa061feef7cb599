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

type feeRepository interface {
	Create(fee *models.FeeRecord) error
	GetByID(id string) (*models.FeeRecord, error)
	List(filter models.FeeFilter) []models.FeeRecord
	Update(id string, apply func(*models.FeeRecord)) (*models.FeeRecord, error)
	Delete(id string) error
}

type feeStudentReader interface {
	GetByID(id string) (*models.Student, error)
}

// FeeService tracks per-student billing.
type FeeService struct {
	repo      feeRepository
	students  feeStudentReader
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewFeeService constructs the service.
func NewFeeService(repo feeRepository, students feeStudentReader, validate *validator.Validate, logger *zap.Logger) *FeeService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FeeService{repo: repo, students: students, validator: validate, logger: logger, now: time.Now}
}

// List returns fee records visible to the actor. Students only see their own.
func (s *FeeService) List(query dto.FeeQuery, actor *models.JWTClaims) ([]models.FeeRecord, error) {
	if actor == nil {
		return nil, appErrors.ErrUnauthorized
	}
	filter := models.FeeFilter{
		StudentID: query.StudentID,
		Status:    models.FeeStatus(query.Status),
	}
	if actor.Role == models.RoleStudent {
		filter.StudentID = actor.StudentID
	}
	return s.markOverdue(s.repo.List(filter)), nil
}

// Create bills a student.
func (s *FeeService) Create(req dto.CreateFeeRequest) (*models.FeeRecord, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	fee := &models.FeeRecord{
		StudentID:   req.StudentID,
		Description: strings.TrimSpace(req.Description),
		Amount:      req.Amount,
		DueDate:     req.DueDate,
		Status:      models.FeeStatusPending,
		CreatedAt:   s.now().UTC(),
	}
	if student, err := s.students.GetByID(req.StudentID); err == nil {
		fee.StudentName = student.FullName
	}
	if err := s.repo.Create(fee); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create fee record")
	}
	return fee, nil
}

// RecordPayment marks a fee record as paid. Paid records stay paid.
func (s *FeeService) RecordPayment(id string, req dto.RecordPaymentRequest) (*models.FeeRecord, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}

	var stateErr *appErrors.Error
	paidAt := s.now().UTC()
	fee, err := s.repo.Update(id, func(f *models.FeeRecord) {
		if f.Status == models.FeeStatusPaid {
			stateErr = appErrors.Clone(appErrors.ErrConflict, "fee already paid")
			return
		}
		f.Status = models.FeeStatusPaid
		f.PaidAt = &paidAt
		f.PaymentRef = req.PaymentRef
	})
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "fee record not found")
	}
	if stateErr != nil {
		return nil, stateErr
	}
	return fee, nil
}

// Summary aggregates billing across all records.
func (s *FeeService) Summary() models.FeeSummary {
	summary := models.FeeSummary{}
	for _, fee := range s.markOverdue(s.repo.List(models.FeeFilter{})) {
		summary.TotalBilled += fee.Amount
		switch fee.Status {
		case models.FeeStatusPaid:
			summary.TotalCollected += fee.Amount
		case models.FeeStatusOverdue:
			summary.TotalOutstanding += fee.Amount
			summary.OverdueCount++
		default:
			summary.TotalOutstanding += fee.Amount
			summary.PendingCount++
		}
	}
	return summary
}

// Delete removes a fee record.
func (s *FeeService) Delete(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return appErrors.Clone(appErrors.ErrNotFound, "fee record not found")
	}
	return nil
}

// markOverdue derives the overdue state at read time so no scheduled job is
// needed to keep statuses fresh.
func (s *FeeService) markOverdue(fees []models.FeeRecord) []models.FeeRecord {
	today := s.now().UTC().Format("2006-01-02")
	for i := range fees {
		if fees[i].Status == models.FeeStatusPending && fees[i].DueDate < today {
			fees[i].Status = models.FeeStatusOverdue
		}
	}
	return fees
}
