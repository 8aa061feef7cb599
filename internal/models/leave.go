package models

import "time"

// LeaveType enumerates supported leave categories.
type LeaveType string

const (
	LeaveTypeMedical   LeaveType = "medical"
	LeaveTypePersonal  LeaveType = "personal"
	LeaveTypeEmergency LeaveType = "emergency"
	LeaveTypeAcademic  LeaveType = "academic"
)

// LeaveStatus captures workflow states for a leave application.
type LeaveStatus string

const (
	LeaveStatusPending     LeaveStatus = "pending"
	LeaveStatusRecommended LeaveStatus = "recommended"
	LeaveStatusApproved    LeaveStatus = "approved"
	LeaveStatusRejected    LeaveStatus = "rejected"
)

// Terminal reports whether no further transition is allowed from the status.
func (s LeaveStatus) Terminal() bool {
	return s == LeaveStatusApproved || s == LeaveStatusRejected
}

// Reviewable reports whether a warden/admin decision may still be taken.
func (s LeaveStatus) Reviewable() bool {
	return s == LeaveStatusPending || s == LeaveStatusRecommended
}

// LeaveApplication is a student leave request moving through the approval
// chain (student submits, joint warden recommends, warden/admin decides).
// Dates are kept as YYYY-MM-DD strings matching the dashboard contract.
type LeaveApplication struct {
	ID                 string      `json:"id"`
	StudentID          string      `json:"studentId"`
	StudentName        string      `json:"studentName"`
	RoomNumber         string      `json:"roomNumber"`
	StartDate          string      `json:"startDate"`
	EndDate            string      `json:"endDate"`
	Reason             string      `json:"reason"`
	Type               LeaveType   `json:"type"`
	Status             LeaveStatus `json:"status"`
	JointWardenRemarks string      `json:"jointWardenRemarks,omitempty"`
	WardenRemarks      string      `json:"wardenRemarks,omitempty"`
	AdminRemarks       string      `json:"adminRemarks,omitempty"`
	SubmittedAt        time.Time   `json:"submittedAt"`
	ReviewedAt         *time.Time  `json:"reviewedAt,omitempty"`
	ReviewedBy         string      `json:"reviewedBy,omitempty"`
}

// RecordID implements store.Record.
func (l LeaveApplication) RecordID() string { return l.ID }

// LeaveFilter constrains leave listing queries.
type LeaveFilter struct {
	StudentID string
	Status    LeaveStatus
	Type      LeaveType
}

// LeaveStatistics is the read-side aggregate over the full collection.
type LeaveStatistics struct {
	Total    int                 `json:"total"`
	ByStatus map[LeaveStatus]int `json:"byStatus"`
	ByType   map[LeaveType]int   `json:"byType"`
	Recent   []LeaveApplication  `json:"recent"`
}
