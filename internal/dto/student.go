package dto

// CreateStudentRequest payload for registering a student.
type CreateStudentRequest struct {
	Name         string `json:"name" validate:"required"`
	RollNumber   string `json:"rollNumber" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone"`
	RoomNumber   string `json:"roomNumber"`
	Course       string `json:"course"`
	Year         int    `json:"year" validate:"omitempty,min=1,max=6"`
	GuardianName string `json:"guardianName"`
	GuardianTel  string `json:"guardianPhone"`
}

// UpdateStudentRequest payload for partial student updates. Zero values are
// ignored so clients can send only the fields they change.
type UpdateStudentRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email" validate:"omitempty,email"`
	Phone        string `json:"phone"`
	RoomNumber   string `json:"roomNumber"`
	Course       string `json:"course"`
	Year         int    `json:"year" validate:"omitempty,min=1,max=6"`
	GuardianName string `json:"guardianName"`
	GuardianTel  string `json:"guardianPhone"`
}

// StudentQuery mirrors supported listing filters.
type StudentQuery struct {
	Search     string `form:"search"`
	RoomNumber string `form:"roomNumber"`
	Page       int    `form:"page"`
	PageSize   int    `form:"pageSize"`
}
