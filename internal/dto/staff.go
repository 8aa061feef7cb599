package dto

import "github.com/hostelhub/hostelhub-api/internal/models"

// CreateStaffRequest payload for registering a staff member.
type CreateStaffRequest struct {
	FullName string            `json:"fullName" validate:"required"`
	Role     models.StaffRole  `json:"role" validate:"required,staff_role"`
	Shift    models.StaffShift `json:"shift" validate:"required,staff_shift"`
	Phone    string            `json:"phone"`
	Email    string            `json:"email" validate:"omitempty,email"`
}

// UpdateStaffRequest payload for staff updates. Zero values are ignored;
// Active uses a pointer so an explicit false can deactivate.
type UpdateStaffRequest struct {
	FullName string            `json:"fullName"`
	Role     models.StaffRole  `json:"role" validate:"omitempty,staff_role"`
	Shift    models.StaffShift `json:"shift" validate:"omitempty,staff_shift"`
	Phone    string            `json:"phone"`
	Email    string            `json:"email" validate:"omitempty,email"`
	Active   *bool             `json:"active"`
}

// StaffQuery mirrors supported listing filters.
type StaffQuery struct {
	Role   models.StaffRole  `form:"role"`
	Shift  models.StaffShift `form:"shift"`
	Active *bool             `form:"active"`
}
