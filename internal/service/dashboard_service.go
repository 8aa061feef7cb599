package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/hostelhub/hostelhub-api/internal/models"
)

type dashboardLeaveReader interface {
	List(filter models.LeaveFilter) []models.LeaveApplication
}

type dashboardComplaintReader interface {
	List(filter models.ComplaintFilter) []models.Complaint
}

type dashboardNotificationReader interface {
	List(filter models.NotificationFilter) []models.Notification
}

type countReader interface {
	Count() int
}

type dashboardRoomReader interface {
	List(filter models.RoomFilter) []models.Room
}

type feeSummarizer interface {
	Summary() models.FeeSummary
}

type leaveStatisticsProvider interface {
	Statistics() models.LeaveStatistics
}

const (
	adminDashboardCacheKey  = "dashboard:admin"
	wardenDashboardCacheKey = "dashboard:warden"
)

// DashboardService composes per-role summaries over the shared store, with
// optional cache in front. Cached payloads go stale within the TTL; the
// store stays authoritative.
type DashboardService struct {
	leaves        dashboardLeaveReader
	leaveStats    leaveStatisticsProvider
	complaints    dashboardComplaintReader
	notifications dashboardNotificationReader
	students      countReader
	rooms         dashboardRoomReader
	fees          feeSummarizer
	cache         *CacheService
	cacheTTL      time.Duration
	logger        *zap.Logger
	now           func() time.Time
}

// NewDashboardService constructs the service.
func NewDashboardService(
	leaves dashboardLeaveReader,
	leaveStats leaveStatisticsProvider,
	complaints dashboardComplaintReader,
	notifications dashboardNotificationReader,
	students countReader,
	rooms dashboardRoomReader,
	fees feeSummarizer,
	cache *CacheService,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		leaves:        leaves,
		leaveStats:    leaveStats,
		complaints:    complaints,
		notifications: notifications,
		students:      students,
		rooms:         rooms,
		fees:          fees,
		cache:         cache,
		cacheTTL:      cacheTTL,
		logger:        logger,
		now:           time.Now,
	}
}

// Admin returns the admin summary, served from cache when fresh.
func (s *DashboardService) Admin(ctx context.Context) (*models.AdminDashboard, error) {
	var cached models.AdminDashboard
	if hit, _ := s.cache.Get(ctx, adminDashboardCacheKey, &cached); hit {
		return &cached, nil
	}

	rooms := s.rooms.List(models.RoomFilter{})
	capacity := 0
	occupied := 0
	for _, room := range rooms {
		capacity += room.Capacity
		occupied += len(room.Occupants)
	}
	occupancy := 0.0
	if capacity > 0 {
		occupancy = float64(occupied) / float64(capacity)
	}

	dashboard := &models.AdminDashboard{
		TotalStudents:   s.students.Count(),
		TotalRooms:      len(rooms),
		OccupancyRate:   occupancy,
		FeeSummary:      s.fees.Summary(),
		OpenComplaints:  len(s.complaints.List(models.ComplaintFilter{Status: models.ComplaintStatusOpen})),
		PendingLeaves:   len(s.leaves.List(models.LeaveFilter{Status: models.LeaveStatusPending})),
		LeaveStatistics: s.leaveStats.Statistics(),
		GeneratedAt:     s.now().UTC(),
	}

	if err := s.cache.Set(ctx, adminDashboardCacheKey, dashboard, s.cacheTTL); err != nil {
		s.logger.Warn("failed to cache admin dashboard", zap.Error(err))
	}
	return dashboard, nil
}

// Warden returns the warden work queue summary, served from cache when fresh.
func (s *DashboardService) Warden(ctx context.Context) (*models.WardenDashboard, error) {
	var cached models.WardenDashboard
	if hit, _ := s.cache.Get(ctx, wardenDashboardCacheKey, &cached); hit {
		return &cached, nil
	}

	unread := 0
	for _, n := range s.notifications.List(models.NotificationFilter{Role: models.RoleWarden}) {
		if !n.Read {
			unread++
		}
	}

	dashboard := &models.WardenDashboard{
		PendingLeaves:       s.leaves.List(models.LeaveFilter{Status: models.LeaveStatusPending}),
		RecommendedLeaves:   s.leaves.List(models.LeaveFilter{Status: models.LeaveStatusRecommended}),
		OpenComplaints:      s.complaints.List(models.ComplaintFilter{Status: models.ComplaintStatusOpen}),
		UnreadNotifications: unread,
		GeneratedAt:         s.now().UTC(),
	}

	if err := s.cache.Set(ctx, wardenDashboardCacheKey, dashboard, s.cacheTTL); err != nil {
		s.logger.Warn("failed to cache warden dashboard", zap.Error(err))
	}
	return dashboard, nil
}

// InvalidateCache drops both dashboard cache entries after mutations.
func (s *DashboardService) InvalidateCache(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, "dashboard:*"); err != nil {
		s.logger.Warn("failed to invalidate dashboard cache", zap.Error(err))
	}
}
