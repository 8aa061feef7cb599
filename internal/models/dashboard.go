package models

import "time"

// AdminDashboard is the composed summary for the admin landing view.
type AdminDashboard struct {
	TotalStudents   int             `json:"total_students"`
	TotalRooms      int             `json:"total_rooms"`
	OccupancyRate   float64         `json:"occupancy_rate"`
	FeeSummary      FeeSummary      `json:"fee_summary"`
	OpenComplaints  int             `json:"open_complaints"`
	PendingLeaves   int             `json:"pending_leaves"`
	LeaveStatistics LeaveStatistics `json:"leave_statistics"`
	GeneratedAt     time.Time       `json:"generated_at"`
}

// WardenDashboard is the composed summary for the warden landing view.
type WardenDashboard struct {
	PendingLeaves       []LeaveApplication `json:"pending_leaves"`
	RecommendedLeaves   []LeaveApplication `json:"recommended_leaves"`
	OpenComplaints      []Complaint        `json:"open_complaints"`
	UnreadNotifications int                `json:"unread_notifications"`
	GeneratedAt         time.Time          `json:"generated_at"`
}
