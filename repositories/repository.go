package repositories

import (
	"NovaClinic/models"
	"context"
)

// Repository interfaces abstract the persistence backend per entity. The
// gorm implementations back the server; the in-memory implementations back
// the tests. Lookups return (nil, nil) when no record matches.

type DoctorRepository interface {
	Create(ctx context.Context, doctor *models.Doctor) error
	GetByID(ctx context.Context, id string) (*models.Doctor, error)
	GetByEmail(ctx context.Context, email string) (*models.Doctor, error)
	// GetFirst returns the earliest registered doctor, used as the default
	// assignee for publicly requested appointments.
	GetFirst(ctx context.Context) (*models.Doctor, error)
	GetAll(ctx context.Context) ([]models.Doctor, error)
}

type PatientRepository interface {
	Create(ctx context.Context, patient *models.Patient) error
	GetByID(ctx context.Context, id string) (*models.Patient, error)
	GetByEmailOrMobile(ctx context.Context, contact string) (*models.Patient, error)
	GetAll(ctx context.Context) ([]models.Patient, error)
	Update(ctx context.Context, patient *models.Patient) error
	Delete(ctx context.Context, id string) error

	AddSymptom(ctx context.Context, symptom *models.Symptom) error
	AddDiagnosis(ctx context.Context, diagnosis *models.Diagnosis) error
	AddPrescription(ctx context.Context, prescription *models.Prescription) error
	AddBill(ctx context.Context, bill *models.Bill) error
}

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	Update(ctx context.Context, appointment *models.Appointment) error
	GetByPatientID(ctx context.Context, patientID string) ([]models.Appointment, error)
	GetByDoctorID(ctx context.Context, doctorID string) ([]models.Appointment, error)
}
