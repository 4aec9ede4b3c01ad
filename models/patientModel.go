package models

import (
	"time"
)

// Severity values accepted for a reported symptom.
const (
	SeverityMild     = "mild"
	SeverityModerate = "moderate"
	SeveritySevere   = "severe"
)

// Bill settlement states.
const (
	BillStatusPaid   = "paid"
	BillStatusUnpaid = "unpaid"
)

// Patient model. EmailOrMobile is the identity key for patients requesting
// appointments without an account; placeholder demographics are filled in
// when a patient record is created from a public appointment request.
type Patient struct {
	ID             string         `gorm:"primaryKey;column:id" json:"id"`
	Name           string         `gorm:"column:name;not null;index" json:"name"`
	DateOfBirth    string         `gorm:"column:date_of_birth;not null" json:"dateOfBirth"`
	Gender         string         `gorm:"column:gender;not null" json:"gender"`
	EmailOrMobile  string         `gorm:"column:email_or_mobile;uniqueIndex" json:"emailOrMobile"`
	ContactNumber  string         `gorm:"column:contact_number" json:"contactNumber"`
	Address        string         `gorm:"column:address" json:"address"`
	MedicalHistory string         `gorm:"column:medical_history" json:"medicalHistory"`
	CreatedAt      time.Time      `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	Symptoms       []Symptom      `gorm:"foreignKey:PatientID;references:ID" json:"symptoms"`
	Diagnoses      []Diagnosis    `gorm:"foreignKey:PatientID;references:ID" json:"diagnoses"`
	Prescriptions  []Prescription `gorm:"foreignKey:PatientID;references:ID" json:"prescriptions"`
	Bills          []Bill         `gorm:"foreignKey:PatientID;references:ID" json:"bills"`
	Appointments   []Appointment  `gorm:"foreignKey:PatientID;references:ID" json:"-"`
}

func (Patient) TableName() string {
	return "patient"
}

// Symptom model
type Symptom struct {
	ID          string  `gorm:"primaryKey;column:id" json:"id"`
	PatientID   string  `gorm:"column:patient_id;not null;index" json:"patientId"`
	Description string  `gorm:"column:description;not null" json:"description"`
	Severity    string  `gorm:"column:severity;check:severity IN ('mild', 'moderate', 'severe');not null" json:"severity"`
	Date        string  `gorm:"column:date" json:"date"`
	Patient     Patient `gorm:"foreignKey:PatientID;references:ID" json:"-"`
}

func (Symptom) TableName() string {
	return "symptom"
}

// Diagnosis model
type Diagnosis struct {
	ID        string  `gorm:"primaryKey;column:id" json:"id"`
	PatientID string  `gorm:"column:patient_id;not null;index" json:"patientId"`
	Condition string  `gorm:"column:condition;not null" json:"condition"`
	Notes     string  `gorm:"column:notes" json:"notes"`
	Date      string  `gorm:"column:date" json:"date"`
	Patient   Patient `gorm:"foreignKey:PatientID;references:ID" json:"-"`
}

func (Diagnosis) TableName() string {
	return "diagnosis"
}

// Prescription model
type Prescription struct {
	ID         string  `gorm:"primaryKey;column:id" json:"id"`
	PatientID  string  `gorm:"column:patient_id;not null;index" json:"patientId"`
	Medication string  `gorm:"column:medication;not null" json:"medication"`
	Dosage     string  `gorm:"column:dosage" json:"dosage"`
	StartDate  string  `gorm:"column:start_date" json:"startDate"`
	EndDate    string  `gorm:"column:end_date" json:"endDate"`
	Patient    Patient `gorm:"foreignKey:PatientID;references:ID" json:"-"`
}

func (Prescription) TableName() string {
	return "prescription"
}

// Bill model
type Bill struct {
	ID          string  `gorm:"primaryKey;column:id" json:"id"`
	PatientID   string  `gorm:"column:patient_id;not null;index" json:"patientId"`
	Description string  `gorm:"column:description;not null" json:"description"`
	Amount      float64 `gorm:"column:amount;not null" json:"amount"`
	Status      string  `gorm:"column:status;check:status IN ('paid', 'unpaid');not null" json:"status"`
	Date        string  `gorm:"column:date" json:"date"`
	Patient     Patient `gorm:"foreignKey:PatientID;references:ID" json:"-"`
}

func (Bill) TableName() string {
	return "bill"
}
