package models

import "time"

// RoomStatus captures occupancy state for a room.
type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "available"
	RoomStatusOccupied    RoomStatus = "occupied"
	RoomStatusFull        RoomStatus = "full"
	RoomStatusMaintenance RoomStatus = "maintenance"
)

// Room represents a hostel room.
type Room struct {
	ID        string     `json:"id"`
	Number    string     `json:"number"`
	Block     string     `json:"block"`
	Floor     int        `json:"floor"`
	Capacity  int        `json:"capacity"`
	Occupants []string   `json:"occupants"`
	Status    RoomStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// RecordID implements store.Record.
func (r Room) RecordID() string { return r.ID }

// HasOccupant reports whether the student already occupies the room.
func (r Room) HasOccupant(studentID string) bool {
	for _, id := range r.Occupants {
		if id == studentID {
			return true
		}
	}
	return false
}

// RoomFilter constrains room listing.
type RoomFilter struct {
	Block  string
	Status RoomStatus
}
