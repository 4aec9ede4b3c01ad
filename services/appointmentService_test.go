package services

import (
	"NovaClinic/models"
	"NovaClinic/repositories"
	"context"
	"errors"
	"testing"
)

type workflowFixture struct {
	doctors      *repositories.MemoryDoctorRepository
	patients     *repositories.MemoryPatientRepository
	appointments *repositories.MemoryAppointmentRepository
	svc          *AppointmentService
}

func newWorkflowFixture(t *testing.T) *workflowFixture {
	t.Helper()
	f := &workflowFixture{
		doctors:      repositories.NewMemoryDoctorRepository(),
		patients:     repositories.NewMemoryPatientRepository(),
		appointments: repositories.NewMemoryAppointmentRepository(),
	}
	f.svc = NewAppointmentService(f.patients, f.doctors, f.appointments)
	return f
}

func (f *workflowFixture) addDoctor(t *testing.T, name, email string) *models.Doctor {
	t.Helper()
	doctor := &models.Doctor{ID: models.NewID("doc"), Name: name, Email: email, Password: "x"}
	if err := f.doctors.Create(context.Background(), doctor); err != nil {
		t.Fatalf("add doctor: %v", err)
	}
	return doctor
}

func TestRequestAppointmentCreatesPatientAndAppointment(t *testing.T) {
	f := newWorkflowFixture(t)
	doctor := f.addDoctor(t, "Dr. John", "doc@example.com")
	ctx := context.Background()

	patient, err := f.svc.RequestAppointment(ctx, "Alice", "alice@example.com", "2025-01-10", "10:00", "checkup")
	if err != nil {
		t.Fatalf("RequestAppointment: %v", err)
	}
	if patient.ID == "" || patient.Name != "Alice" {
		t.Fatalf("unexpected patient: %+v", patient)
	}
	if patient.Gender != "Not specified" || patient.ContactNumber != "alice@example.com" {
		t.Fatalf("expected placeholder demographics, got %+v", patient)
	}

	appointments, err := f.appointments.GetByPatientID(ctx, patient.ID)
	if err != nil {
		t.Fatalf("GetByPatientID: %v", err)
	}
	if len(appointments) != 1 {
		t.Fatalf("expected 1 appointment, got %d", len(appointments))
	}
	appt := appointments[0]
	if appt.PatientID != patient.ID {
		t.Fatalf("appointment patientId = %q, want %q", appt.PatientID, patient.ID)
	}
	if appt.Status != models.StatusPending {
		t.Fatalf("appointment status = %q, want pending", appt.Status)
	}
	if appt.DoctorID != doctor.ID {
		t.Fatalf("appointment doctorId = %q, want %q", appt.DoctorID, doctor.ID)
	}
	if appt.PatientName != "Alice" {
		t.Fatalf("appointment patientName = %q, want Alice", appt.PatientName)
	}
}

func TestRequestAppointmentReusesExistingPatient(t *testing.T) {
	f := newWorkflowFixture(t)
	f.addDoctor(t, "Dr. John", "doc@example.com")
	ctx := context.Background()

	first, err := f.svc.RequestAppointment(ctx, "Alice", "alice@example.com", "2025-01-10", "10:00", "checkup")
	if err != nil {
		t.Fatalf("first RequestAppointment: %v", err)
	}
	second, err := f.svc.RequestAppointment(ctx, "Alice Smith", "alice@example.com", "2025-02-01", "14:00", "follow-up")
	if err != nil {
		t.Fatalf("second RequestAppointment: %v", err)
	}

	if second.ID != first.ID {
		t.Fatalf("expected same patient id, got %q and %q", first.ID, second.ID)
	}
	patients, _ := f.patients.GetAll(ctx)
	if len(patients) != 1 {
		t.Fatalf("expected 1 patient, got %d", len(patients))
	}
	appointments, _ := f.appointments.GetByPatientID(ctx, first.ID)
	if len(appointments) != 2 {
		t.Fatalf("expected 2 appointments, got %d", len(appointments))
	}
}

func TestRequestAppointmentFailsWithoutDoctor(t *testing.T) {
	f := newWorkflowFixture(t)

	_, err := f.svc.RequestAppointment(context.Background(), "Alice", "alice@example.com", "2025-01-10", "10:00", "checkup")
	if !errors.Is(err, ErrNoDoctorAvailable) {
		t.Fatalf("expected ErrNoDoctorAvailable, got %v", err)
	}
	patients, _ := f.patients.GetAll(context.Background())
	if len(patients) != 0 {
		t.Fatalf("expected no patient created, got %d", len(patients))
	}
}

func TestDoctorCreateAppointment(t *testing.T) {
	f := newWorkflowFixture(t)
	doctor := f.addDoctor(t, "Dr. John", "doc@example.com")
	ctx := context.Background()

	patient, err := f.svc.RequestAppointment(ctx, "Alice", "alice@example.com", "2025-01-10", "10:00", "checkup")
	if err != nil {
		t.Fatalf("RequestAppointment: %v", err)
	}

	appt, err := f.svc.DoctorCreateAppointment(ctx, doctor.ID, patient.ID, "2025-03-01", "09:30", "review")
	if err != nil {
		t.Fatalf("DoctorCreateAppointment: %v", err)
	}
	if appt.Status != models.StatusConfirmed {
		t.Fatalf("status = %q, want confirmed", appt.Status)
	}
	if appt.DoctorID != doctor.ID || appt.PatientID != patient.ID {
		t.Fatalf("unexpected appointment: %+v", appt)
	}

	if _, err := f.svc.DoctorCreateAppointment(ctx, doctor.ID, "pat_missing", "2025-03-01", "09:30", "review"); !errors.Is(err, ErrPatientNotFound) {
		t.Fatalf("expected ErrPatientNotFound, got %v", err)
	}
}

func TestUpdateStatus(t *testing.T) {
	f := newWorkflowFixture(t)
	doctor := f.addDoctor(t, "Dr. John", "doc@example.com")
	ctx := context.Background()

	patient, err := f.svc.RequestAppointment(ctx, "Alice", "alice@example.com", "2025-01-10", "10:00", "checkup")
	if err != nil {
		t.Fatalf("RequestAppointment: %v", err)
	}
	appt, err := f.svc.DoctorCreateAppointment(ctx, doctor.ID, patient.ID, "2025-03-01", "09:30", "review")
	if err != nil {
		t.Fatalf("DoctorCreateAppointment: %v", err)
	}

	if _, err := f.svc.UpdateStatus(ctx, appt.ID, "rescheduled"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if _, err := f.svc.UpdateStatus(ctx, "appt_missing", models.StatusCancelled); !errors.Is(err, ErrAppointmentNotFound) {
		t.Fatalf("expected ErrAppointmentNotFound, got %v", err)
	}

	updated, err := f.svc.UpdateStatus(ctx, appt.ID, models.StatusCompleted)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != models.StatusCompleted {
		t.Fatalf("status = %q, want completed", updated.Status)
	}

	// Applying the same status twice yields the same observable state.
	again, err := f.svc.UpdateStatus(ctx, appt.ID, models.StatusCompleted)
	if err != nil {
		t.Fatalf("repeated UpdateStatus: %v", err)
	}
	if again.Status != models.StatusCompleted {
		t.Fatalf("status after repeat = %q, want completed", again.Status)
	}

	// A completed appointment may move back to pending; the lifecycle does
	// not enforce terminal states.
	reverted, err := f.svc.UpdateStatus(ctx, appt.ID, models.StatusPending)
	if err != nil {
		t.Fatalf("revert UpdateStatus: %v", err)
	}
	if reverted.Status != models.StatusPending {
		t.Fatalf("status after revert = %q, want pending", reverted.Status)
	}
}

func TestListByDoctor(t *testing.T) {
	f := newWorkflowFixture(t)
	doctor := f.addDoctor(t, "Dr. John", "doc@example.com")
	ctx := context.Background()

	if _, err := f.svc.RequestAppointment(ctx, "Alice", "alice@example.com", "2025-01-10", "10:00", "checkup"); err != nil {
		t.Fatalf("RequestAppointment: %v", err)
	}
	if _, err := f.svc.RequestAppointment(ctx, "Bob", "bob@example.com", "2025-01-11", "11:00", "toothache"); err != nil {
		t.Fatalf("RequestAppointment: %v", err)
	}

	appointments, err := f.svc.ListByDoctor(ctx, doctor.ID)
	if err != nil {
		t.Fatalf("ListByDoctor: %v", err)
	}
	if len(appointments) != 2 {
		t.Fatalf("expected 2 appointments for doctor, got %d", len(appointments))
	}
}
