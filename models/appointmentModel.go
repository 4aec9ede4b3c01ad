package models

import (
	"time"
)

// Appointment status lifecycle. A public request starts as pending, a
// doctor-created appointment starts as confirmed. Any status may move to
// any other via the status-update operation.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// ValidStatus reports whether s is one of the four appointment statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Appointment model. PatientName is a snapshot taken at creation time so
// appointment listings don't need a patient join.
type Appointment struct {
	ID          string    `gorm:"primaryKey;column:id" json:"id"`
	PatientID   string    `gorm:"column:patient_id;not null;index" json:"patientId"`
	PatientName string    `gorm:"column:patient_name;not null" json:"patientName"`
	DoctorID    string    `gorm:"column:doctor_id;index" json:"doctorId"`
	Date        string    `gorm:"column:date;not null" json:"date"`
	Time        string    `gorm:"column:time;not null" json:"time"`
	Reason      string    `gorm:"column:reason;not null" json:"reason"`
	Notes       string    `gorm:"column:notes" json:"notes,omitempty"`
	Status      string    `gorm:"column:status;check:status IN ('pending', 'confirmed', 'completed', 'cancelled');not null" json:"status"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (Appointment) TableName() string {
	return "appointment"
}
