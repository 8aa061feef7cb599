package models

import "time"

// UserRole represents the available roles for the RBAC system.
type UserRole string

const (
	RoleAdmin       UserRole = "ADMIN"
	RoleWarden      UserRole = "WARDEN"
	RoleJointWarden UserRole = "JOINT_WARDEN"
	RoleStudent     UserRole = "STUDENT"
)

// ReviewerRoles lists the roles allowed to act on a leave application.
var ReviewerRoles = []UserRole{RoleAdmin, RoleWarden, RoleJointWarden}

// User represents an application account held in the users collection.
type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	FullName     string     `json:"full_name"`
	Role         UserRole   `json:"role"`
	StudentID    string     `json:"student_id,omitempty"`
	Active       bool       `json:"active"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// RecordID implements store.Record.
func (u User) RecordID() string { return u.ID }

// Pagination contains pagination metadata returned in list responses.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}
