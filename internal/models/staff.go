package models

import "time"

// StaffRole enumerates hostel staff duties.
type StaffRole string

const (
	StaffRoleWarden      StaffRole = "warden"
	StaffRoleJointWarden StaffRole = "joint-warden"
	StaffRoleSecurity    StaffRole = "security"
	StaffRoleCook        StaffRole = "cook"
	StaffRoleCleaner     StaffRole = "cleaner"
	StaffRoleMaintenance StaffRole = "maintenance"
)

// StaffShift captures a duty window.
type StaffShift string

const (
	StaffShiftMorning StaffShift = "morning"
	StaffShiftEvening StaffShift = "evening"
	StaffShiftNight   StaffShift = "night"
)

// StaffMember represents one hostel employee.
type StaffMember struct {
	ID        string     `json:"id"`
	FullName  string     `json:"full_name"`
	Role      StaffRole  `json:"role"`
	Shift     StaffShift `json:"shift"`
	Phone     string     `json:"phone,omitempty"`
	Email     string     `json:"email,omitempty"`
	Active    bool       `json:"active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// RecordID implements store.Record.
func (s StaffMember) RecordID() string { return s.ID }

// StaffFilter constrains staff listing.
type StaffFilter struct {
	Role   StaffRole
	Shift  StaffShift
	Active *bool
}
