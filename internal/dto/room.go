package dto

// CreateRoomRequest payload for adding a room.
type CreateRoomRequest struct {
	Number   string `json:"number" validate:"required"`
	Block    string `json:"block" validate:"required"`
	Floor    int    `json:"floor" validate:"min=0"`
	Capacity int    `json:"capacity" validate:"required,min=1,max=8"`
}

// AllocateRequest assigns a student to a room.
type AllocateRequest struct {
	StudentID string `json:"studentId" validate:"required"`
}

// RoomQuery mirrors supported listing filters.
type RoomQuery struct {
	Block  string `form:"block"`
	Status string `form:"status"`
}
