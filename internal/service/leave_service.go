package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/hostelhub/hostelhub-api/internal/dto"
	"github.com/hostelhub/hostelhub-api/internal/models"
	appErrors "github.com/hostelhub/hostelhub-api/pkg/errors"
	"github.com/hostelhub/hostelhub-api/pkg/export"
	"github.com/hostelhub/hostelhub-api/pkg/jobs"
)

type leaveRepository interface {
	Create(leave *models.LeaveApplication) error
	GetByID(id string) (*models.LeaveApplication, error)
	List(filter models.LeaveFilter) []models.LeaveApplication
	Update(id string, apply func(*models.LeaveApplication)) (*models.LeaveApplication, error)
}

type notificationWriter interface {
	Create(n *models.Notification) error
}

type notificationDispatcher interface {
	Enqueue(job jobs.Job) error
}

type datasetRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type titledRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// LeaveExport carries the rendered export payload and its HTTP metadata.
type LeaveExport struct {
	Data        []byte
	ContentType string
	Filename    string
}

// LeaveService drives leave applications through the approval chain:
// a student submits (pending), the joint warden recommends, the warden or
// admin takes the terminal decision. Every terminal decision writes exactly
// one notification targeted at the student.
type LeaveService struct {
	repo          leaveRepository
	notifications notificationWriter
	dispatcher    notificationDispatcher
	validator     *validator.Validate
	logger        *zap.Logger
	csv           datasetRenderer
	json          datasetRenderer
	pdf           titledRenderer
	now           func() time.Time
}

// NewLeaveService constructs the service.
func NewLeaveService(repo leaveRepository, notifications notificationWriter, dispatcher notificationDispatcher, validate *validator.Validate, logger *zap.Logger) *LeaveService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	svc := &LeaveService{
		repo:          repo,
		notifications: notifications,
		dispatcher:    dispatcher,
		validator:     validate,
		logger:        logger,
		csv:           export.NewCSVExporter(),
		json:          export.NewJSONExporter(),
		pdf:           export.NewPDFExporter(),
		now:           time.Now,
	}
	svc.validator.RegisterValidation("leave_type", func(fl validator.FieldLevel) bool {
		switch models.LeaveType(fl.Field().String()) {
		case models.LeaveTypeMedical, models.LeaveTypePersonal, models.LeaveTypeEmergency, models.LeaveTypeAcademic:
			return true
		default:
			return false
		}
	})
	return svc
}

// Submit records a new application in pending state.
func (s *LeaveService) Submit(req dto.CreateLeaveRequest) (*models.LeaveApplication, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	if req.EndDate < req.StartDate {
		return nil, appErrors.Clone(appErrors.ErrValidation, "endDate must not precede startDate")
	}
	leave := &models.LeaveApplication{
		StudentID:   req.StudentID,
		StudentName: req.StudentName,
		RoomNumber:  req.RoomNumber,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Reason:      strings.TrimSpace(req.Reason),
		Type:        req.Type,
		Status:      models.LeaveStatusPending,
		SubmittedAt: s.now().UTC(),
	}
	if err := s.repo.Create(leave); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create leave application")
	}
	return leave, nil
}

// List returns applications visible to the actor. Students only ever see
// their own submissions regardless of the requested filter.
func (s *LeaveService) List(query dto.LeaveQuery, actor *models.JWTClaims) ([]models.LeaveApplication, error) {
	if actor == nil {
		return nil, appErrors.ErrUnauthorized
	}
	filter := models.LeaveFilter{
		StudentID: query.StudentID,
		Status:    query.Status,
		Type:      query.Type,
	}
	if actor.Role == models.RoleStudent {
		filter.StudentID = actor.StudentID
	}
	return s.repo.List(filter), nil
}

// Get returns one application enforcing student scope.
func (s *LeaveService) Get(id string, actor *models.JWTClaims) (*models.LeaveApplication, error) {
	if actor == nil {
		return nil, appErrors.ErrUnauthorized
	}
	leave, err := s.repo.GetByID(id)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "leave application not found")
	}
	if actor.Role == models.RoleStudent && leave.StudentID != actor.StudentID {
		return nil, appErrors.ErrForbidden
	}
	return leave, nil
}

// Recommend moves a pending application to recommended with the joint
// warden's remarks. Only pending applications can be recommended.
func (s *LeaveService) Recommend(id, remarks string, actor *models.JWTClaims) (*models.LeaveApplication, error) {
	if actor == nil {
		return nil, appErrors.ErrUnauthorized
	}
	remarks = strings.TrimSpace(remarks)
	if remarks == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "remarks are required")
	}

	var stateErr *appErrors.Error
	leave, err := s.repo.Update(id, func(l *models.LeaveApplication) {
		switch {
		case l.Status.Terminal():
			stateErr = appErrors.Clone(appErrors.ErrFinalized, "leave application already finalized")
		case l.Status != models.LeaveStatusPending:
			stateErr = appErrors.Clone(appErrors.ErrConflict, "only pending applications can be recommended")
		default:
			l.Status = models.LeaveStatusRecommended
			l.JointWardenRemarks = remarks
		}
	})
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "leave application not found")
	}
	if stateErr != nil {
		return nil, stateErr
	}

	s.logger.Info("leave application recommended",
		zap.String("leave_id", leave.ID),
		zap.String("actor", actor.UserID))
	return leave, nil
}

// Approve finalises a pending or recommended application as approved.
func (s *LeaveService) Approve(id, remarks string, actor *models.JWTClaims) (*models.LeaveApplication, error) {
	return s.decide(id, remarks, actor, models.LeaveStatusApproved)
}

// Reject finalises a pending or recommended application as rejected.
func (s *LeaveService) Reject(id, remarks string, actor *models.JWTClaims) (*models.LeaveApplication, error) {
	return s.decide(id, remarks, actor, models.LeaveStatusRejected)
}

// decide holds the shared terminal-decision path. The status guard runs
// inside the store mutation so a concurrent second decision observes the
// terminal state and fails with a conflict instead of double-writing.
func (s *LeaveService) decide(id, remarks string, actor *models.JWTClaims, target models.LeaveStatus) (*models.LeaveApplication, error) {
	if actor == nil {
		return nil, appErrors.ErrUnauthorized
	}
	remarks = strings.TrimSpace(remarks)
	if remarks == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "remarks are required")
	}

	var stateErr *appErrors.Error
	reviewedAt := s.now().UTC()
	leave, err := s.repo.Update(id, func(l *models.LeaveApplication) {
		if !l.Status.Reviewable() {
			stateErr = appErrors.Clone(appErrors.ErrFinalized, "leave application already finalized")
			return
		}
		l.Status = target
		l.ReviewedAt = &reviewedAt
		l.ReviewedBy = actor.UserID
		switch actor.Role {
		case models.RoleAdmin:
			l.AdminRemarks = remarks
		case models.RoleJointWarden:
			l.JointWardenRemarks = remarks
		default:
			l.WardenRemarks = remarks
		}
	})
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "leave application not found")
	}
	if stateErr != nil {
		return nil, stateErr
	}

	s.notifyDecision(leave, target)
	return leave, nil
}

// notifyDecision appends the single decision notification for the student
// and hands it to the fan-out queue. Queue failure never unwinds the
// committed decision.
func (s *LeaveService) notifyDecision(leave *models.LeaveApplication, target models.LeaveStatus) {
	n := &models.Notification{
		Title:           "Leave Approved",
		Message:         fmt.Sprintf("Your leave application from %s to %s has been %s.", leave.StartDate, leave.EndDate, target),
		Type:            models.NotificationTypeSuccess,
		Priority:        models.NotificationPriorityNormal,
		Timestamp:       s.now().UTC(),
		TargetStudentID: leave.StudentID,
	}
	if target == models.LeaveStatusRejected {
		n.Title = "Leave Rejected"
		n.Type = models.NotificationTypeError
		n.Priority = models.NotificationPriorityHigh
	}
	if err := s.notifications.Create(n); err != nil {
		s.logger.Error("failed to store decision notification",
			zap.String("leave_id", leave.ID), zap.Error(err))
		return
	}
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Enqueue(jobs.Job{ID: n.ID, Type: "notification.decision", Payload: *n}); err != nil {
		s.logger.Warn("failed to enqueue notification delivery",
			zap.String("notification_id", n.ID), zap.Error(err))
	}
}

// Export renders the leave collection as CSV, JSON or PDF. status filters
// the rows, with "all" (or empty) passing everything through.
func (s *LeaveService) Export(query dto.ExportQuery) (*LeaveExport, error) {
	filter := models.LeaveFilter{}
	status := strings.ToLower(strings.TrimSpace(query.Status))
	if status != "" && status != "all" {
		switch models.LeaveStatus(status) {
		case models.LeaveStatusPending, models.LeaveStatusRecommended, models.LeaveStatusApproved, models.LeaveStatusRejected:
			filter.Status = models.LeaveStatus(status)
		default:
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown status filter: %s", status))
		}
	}
	dataset := buildLeaveDataset(s.repo.List(filter))

	format := strings.ToLower(strings.TrimSpace(query.Format))
	if format == "" {
		format = "csv"
	}
	stamp := s.now().UTC().Format("20060102-150405")
	switch format {
	case "csv":
		payload, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv export")
		}
		return &LeaveExport{Data: payload, ContentType: "text/csv", Filename: fmt.Sprintf("leave-applications-%s.csv", stamp)}, nil
	case "json":
		payload, err := s.json.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render json export")
		}
		return &LeaveExport{Data: payload, ContentType: "application/json", Filename: fmt.Sprintf("leave-applications-%s.json", stamp)}, nil
	case "pdf":
		payload, err := s.pdf.Render(dataset, "Leave Applications")
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf export")
		}
		return &LeaveExport{Data: payload, ContentType: "application/pdf", Filename: fmt.Sprintf("leave-applications-%s.pdf", stamp)}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format: %s", format))
	}
}

// leaveExportHeaders fixes the column order for every export format.
var leaveExportHeaders = []string{
	"id", "studentName", "roomNumber", "startDate", "endDate", "reason",
	"type", "status", "jointWardenRemarks", "wardenRemarks", "adminRemarks",
	"submittedAt", "reviewedAt", "reviewedBy",
}

func buildLeaveDataset(applications []models.LeaveApplication) export.Dataset {
	rows := make([]map[string]string, 0, len(applications))
	for _, leave := range applications {
		reviewedAt := ""
		if leave.ReviewedAt != nil {
			reviewedAt = leave.ReviewedAt.UTC().Format(time.RFC3339)
		}
		rows = append(rows, map[string]string{
			"id":                 leave.ID,
			"studentName":        leave.StudentName,
			"roomNumber":         leave.RoomNumber,
			"startDate":          leave.StartDate,
			"endDate":            leave.EndDate,
			"reason":             leave.Reason,
			"type":               string(leave.Type),
			"status":             string(leave.Status),
			"jointWardenRemarks": leave.JointWardenRemarks,
			"wardenRemarks":      leave.WardenRemarks,
			"adminRemarks":       leave.AdminRemarks,
			"submittedAt":        leave.SubmittedAt.UTC().Format(time.RFC3339),
			"reviewedAt":         reviewedAt,
			"reviewedBy":         leave.ReviewedBy,
		})
	}
	return export.Dataset{Headers: leaveExportHeaders, Rows: rows}
}

// Statistics recomputes the aggregate view from the full collection.
func (s *LeaveService) Statistics() models.LeaveStatistics {
	applications := s.repo.List(models.LeaveFilter{})
	stats := models.LeaveStatistics{
		Total:    len(applications),
		ByStatus: make(map[models.LeaveStatus]int),
		ByType:   make(map[models.LeaveType]int),
	}
	for _, leave := range applications {
		stats.ByStatus[leave.Status]++
		stats.ByType[leave.Type]++
	}
	recent := make([]models.LeaveApplication, len(applications))
	copy(recent, applications)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].SubmittedAt.After(recent[j].SubmittedAt)
	})
	if len(recent) > 5 {
		recent = recent[:5]
	}
	stats.Recent = recent
	return stats
}
