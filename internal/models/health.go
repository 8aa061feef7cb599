package models

import "time"

// HealthRecord is one medical entry for a student.
type HealthRecord struct {
	ID          string    `json:"id"`
	StudentID   string    `json:"studentId"`
	StudentName string    `json:"studentName"`
	Condition   string    `json:"condition"`
	Notes       string    `json:"notes,omitempty"`
	Medication  string    `json:"medication,omitempty"`
	RecordedBy  string    `json:"recordedBy"`
	RecordedAt  time.Time `json:"recordedAt"`
}

// RecordID implements store.Record.
func (h HealthRecord) RecordID() string { return h.ID }

// HealthFilter constrains health record listing.
type HealthFilter struct {
	StudentID string
}
