package models

import (
	"time"
)

// Doctor model. Created at registration, immutable thereafter.
// The password column holds a bcrypt hash and is never serialized.
type Doctor struct {
	ID           string        `gorm:"primaryKey;column:id" json:"id"`
	Name         string        `gorm:"column:name;not null" json:"name"`
	Email        string        `gorm:"column:email;unique;not null;index" json:"email"`
	Password     string        `gorm:"column:password;not null" json:"-"`
	CreatedAt    time.Time     `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	Appointments []Appointment `gorm:"foreignKey:DoctorID;references:ID" json:"-"`
}

func (Doctor) TableName() string {
	return "doctor"
}
