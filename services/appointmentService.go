package services

import (
	"NovaClinic/models"
	"NovaClinic/repositories"
	"context"
	"fmt"
)

// AppointmentService implements the appointment workflow: public request
// intake with find-or-create patient, doctor-initiated scheduling, and
// status transitions.
type AppointmentService struct {
	patients     repositories.PatientRepository
	doctors      repositories.DoctorRepository
	appointments repositories.AppointmentRepository
}

func NewAppointmentService(
	patients repositories.PatientRepository,
	doctors repositories.DoctorRepository,
	appointments repositories.AppointmentRepository,
) *AppointmentService {
	return &AppointmentService{patients: patients, doctors: doctors, appointments: appointments}
}

// RequestAppointment handles a public appointment request. The patient is
// looked up by emailOrMobile and created with placeholder demographics when
// absent. The earliest registered doctor is assigned at intake and the
// appointment starts as pending. Returns the patient so the caller can keep
// the generated id for later self-lookup (patients have no login).
func (s *AppointmentService) RequestAppointment(ctx context.Context, name, emailOrMobile, date, timeOfDay, reason string) (*models.Patient, error) {
	doctor, err := s.doctors.GetFirst(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to look up doctor: %w", err)
	}
	if doctor == nil {
		return nil, ErrNoDoctorAvailable
	}

	patient, err := s.patients.GetByEmailOrMobile(ctx, emailOrMobile)
	if err != nil {
		return nil, fmt.Errorf("failed to look up patient: %w", err)
	}
	if patient == nil {
		patient = &models.Patient{
			ID:            models.NewID("pat"),
			Name:          name,
			DateOfBirth:   "1900-01-01",
			Gender:        "Not specified",
			EmailOrMobile: emailOrMobile,
			ContactNumber: emailOrMobile,
			Address:       "Not specified",
		}
		if err := s.patients.Create(ctx, patient); err != nil {
			return nil, fmt.Errorf("failed to create patient: %w", err)
		}
	}

	appointment := &models.Appointment{
		ID:          models.NewID("appt"),
		PatientID:   patient.ID,
		PatientName: patient.Name,
		DoctorID:    doctor.ID,
		Date:        date,
		Time:        timeOfDay,
		Reason:      reason,
		Status:      models.StatusPending,
	}
	if err := s.appointments.Create(ctx, appointment); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	return patient, nil
}

// DoctorCreateAppointment creates a confirmed appointment on behalf of the
// calling doctor.
func (s *AppointmentService) DoctorCreateAppointment(ctx context.Context, doctorID, patientID, date, timeOfDay, reason string) (*models.Appointment, error) {
	patient, err := s.patients.GetByID(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up patient: %w", err)
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	appointment := &models.Appointment{
		ID:          models.NewID("appt"),
		PatientID:   patient.ID,
		PatientName: patient.Name,
		DoctorID:    doctorID,
		Date:        date,
		Time:        timeOfDay,
		Reason:      reason,
		Status:      models.StatusConfirmed,
	}
	if err := s.appointments.Create(ctx, appointment); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	return appointment, nil
}

// UpdateStatus transitions an appointment to the given status. Any of the
// four statuses may move to any other; applying the current status again is
// a no-op.
func (s *AppointmentService) UpdateStatus(ctx context.Context, appointmentID, status string) (*models.Appointment, error) {
	if !models.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	appointment, err := s.appointments.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up appointment: %w", err)
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	appointment.Status = status
	if err := s.appointments.Update(ctx, appointment); err != nil {
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}

	return appointment, nil
}

// ListByPatient returns the appointments for one patient in insertion order.
func (s *AppointmentService) ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return s.appointments.GetByPatientID(ctx, patientID)
}

// ListByDoctor returns the appointments assigned to one doctor.
func (s *AppointmentService) ListByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	return s.appointments.GetByDoctorID(ctx, doctorID)
}
