package models

import "time"

// Student represents a hostel resident.
type Student struct {
	ID            string    `json:"id"`
	FullName      string    `json:"full_name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone,omitempty"`
	RollNumber    string    `json:"roll_number"`
	RoomNumber    string    `json:"room_number,omitempty"`
	Course        string    `json:"course,omitempty"`
	Year          int       `json:"year,omitempty"`
	GuardianName  string    `json:"guardian_name,omitempty"`
	GuardianPhone string    `json:"guardian_phone,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// RecordID implements store.Record.
func (s Student) RecordID() string { return s.ID }

// StudentFilter captures filtering criteria for listing students.
type StudentFilter struct {
	Search     string
	RoomNumber string
	Page       int
	PageSize   int
}
