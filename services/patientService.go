package services

import (
	"NovaClinic/models"
	"NovaClinic/repositories"
	"context"
	"fmt"
)

// PatientUpdate carries the demographic fields a doctor may change. Empty
// fields are left untouched, so partial updates are safe.
type PatientUpdate struct {
	Name           string `json:"name"`
	DateOfBirth    string `json:"dateOfBirth"`
	Gender         string `json:"gender"`
	EmailOrMobile  string `json:"emailOrMobile"`
	ContactNumber  string `json:"contactNumber"`
	Address        string `json:"address"`
	MedicalHistory string `json:"medicalHistory"`
}

// PatientWithAppointments is the public self-lookup view: the patient record
// together with its appointments, since patients have no account of their own.
type PatientWithAppointments struct {
	models.Patient
	Appointments []models.Appointment `json:"appointments"`
}

type PatientService struct {
	patients     repositories.PatientRepository
	appointments repositories.AppointmentRepository
}

func NewPatientService(patients repositories.PatientRepository, appointments repositories.AppointmentRepository) *PatientService {
	return &PatientService{patients: patients, appointments: appointments}
}

func (s *PatientService) GetAll(ctx context.Context) ([]models.Patient, error) {
	return s.patients.GetAll(ctx)
}

func (s *PatientService) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	patient, err := s.patients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	return patient, nil
}

// Update applies the provided demographic fields to an existing patient.
func (s *PatientService) Update(ctx context.Context, id string, update PatientUpdate) (*models.Patient, error) {
	patient, err := s.patients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	if update.Name != "" {
		patient.Name = update.Name
	}
	if update.DateOfBirth != "" {
		patient.DateOfBirth = update.DateOfBirth
	}
	if update.Gender != "" {
		patient.Gender = update.Gender
	}
	if update.EmailOrMobile != "" {
		patient.EmailOrMobile = update.EmailOrMobile
	}
	if update.ContactNumber != "" {
		patient.ContactNumber = update.ContactNumber
	}
	if update.Address != "" {
		patient.Address = update.Address
	}
	if update.MedicalHistory != "" {
		patient.MedicalHistory = update.MedicalHistory
	}

	if err := s.patients.Update(ctx, patient); err != nil {
		return nil, fmt.Errorf("failed to update patient: %w", err)
	}
	return patient, nil
}

// Delete removes a patient record on explicit doctor action.
func (s *PatientService) Delete(ctx context.Context, id string) error {
	patient, err := s.patients.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}
	return s.patients.Delete(ctx, id)
}

// GetWithAppointments returns the patient record plus its appointments for
// the public self-lookup endpoint.
func (s *PatientService) GetWithAppointments(ctx context.Context, id string) (*PatientWithAppointments, error) {
	patient, err := s.patients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	appointments, err := s.appointments.GetByPatientID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	return &PatientWithAppointments{Patient: *patient, Appointments: appointments}, nil
}
