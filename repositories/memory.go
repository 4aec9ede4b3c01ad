package repositories

import (
	"NovaClinic/models"
	"context"
	"fmt"
	"sort"
	"sync"
)

// In-memory repository implementations. They preserve insertion order and are
// safe for concurrent use, which makes them a drop-in backend for tests.

type MemoryDoctorRepository struct {
	mu      sync.RWMutex
	doctors []models.Doctor
}

func NewMemoryDoctorRepository() *MemoryDoctorRepository {
	return &MemoryDoctorRepository{}
}

func (r *MemoryDoctorRepository) Create(ctx context.Context, doctor *models.Doctor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.doctors {
		if d.Email == doctor.Email {
			return fmt.Errorf("doctor with email %s already exists", doctor.Email)
		}
	}
	r.doctors = append(r.doctors, *doctor)
	return nil
}

func (r *MemoryDoctorRepository) GetByID(ctx context.Context, id string) (*models.Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, d := range r.doctors {
		if d.ID == id {
			doctor := d
			return &doctor, nil
		}
	}
	return nil, nil
}

func (r *MemoryDoctorRepository) GetByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, d := range r.doctors {
		if d.Email == email {
			doctor := d
			return &doctor, nil
		}
	}
	return nil, nil
}

func (r *MemoryDoctorRepository) GetFirst(ctx context.Context) (*models.Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.doctors) == 0 {
		return nil, nil
	}
	doctor := r.doctors[0]
	return &doctor, nil
}

func (r *MemoryDoctorRepository) GetAll(ctx context.Context) ([]models.Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Doctor, len(r.doctors))
	copy(out, r.doctors)
	return out, nil
}

type MemoryPatientRepository struct {
	mu       sync.RWMutex
	patients []*models.Patient
}

func NewMemoryPatientRepository() *MemoryPatientRepository {
	return &MemoryPatientRepository{}
}

func (r *MemoryPatientRepository) Create(ctx context.Context, patient *models.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if patient.EmailOrMobile != "" {
		for _, p := range r.patients {
			if p.EmailOrMobile == patient.EmailOrMobile {
				return fmt.Errorf("patient with contact %s already exists", patient.EmailOrMobile)
			}
		}
	}
	stored := *patient
	r.patients = append(r.patients, &stored)
	return nil
}

func (r *MemoryPatientRepository) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.patients {
		if p.ID == id {
			patient := *p
			return &patient, nil
		}
	}
	return nil, nil
}

func (r *MemoryPatientRepository) GetByEmailOrMobile(ctx context.Context, contact string) (*models.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.patients {
		if p.EmailOrMobile == contact {
			patient := *p
			return &patient, nil
		}
	}
	return nil, nil
}

func (r *MemoryPatientRepository) GetAll(ctx context.Context) ([]models.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Patient, 0, len(r.patients))
	for _, p := range r.patients {
		out = append(out, *p)
	}
	// Patient listings are sorted by name, matching the persistent backend.
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *MemoryPatientRepository) Update(ctx context.Context, patient *models.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.patients {
		if p.ID == patient.ID {
			stored := *patient
			r.patients[i] = &stored
			return nil
		}
	}
	return fmt.Errorf("patient %s not found", patient.ID)
}

func (r *MemoryPatientRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.patients {
		if p.ID == id {
			r.patients = append(r.patients[:i], r.patients[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("patient %s not found", id)
}

func (r *MemoryPatientRepository) AddSymptom(ctx context.Context, symptom *models.Symptom) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.patients {
		if p.ID == symptom.PatientID {
			p.Symptoms = append(p.Symptoms, *symptom)
			return nil
		}
	}
	return fmt.Errorf("patient %s not found", symptom.PatientID)
}

func (r *MemoryPatientRepository) AddDiagnosis(ctx context.Context, diagnosis *models.Diagnosis) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.patients {
		if p.ID == diagnosis.PatientID {
			p.Diagnoses = append(p.Diagnoses, *diagnosis)
			return nil
		}
	}
	return fmt.Errorf("patient %s not found", diagnosis.PatientID)
}

func (r *MemoryPatientRepository) AddPrescription(ctx context.Context, prescription *models.Prescription) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.patients {
		if p.ID == prescription.PatientID {
			p.Prescriptions = append(p.Prescriptions, *prescription)
			return nil
		}
	}
	return fmt.Errorf("patient %s not found", prescription.PatientID)
}

func (r *MemoryPatientRepository) AddBill(ctx context.Context, bill *models.Bill) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.patients {
		if p.ID == bill.PatientID {
			p.Bills = append(p.Bills, *bill)
			return nil
		}
	}
	return fmt.Errorf("patient %s not found", bill.PatientID)
}

type MemoryAppointmentRepository struct {
	mu           sync.RWMutex
	appointments []models.Appointment
}

func NewMemoryAppointmentRepository() *MemoryAppointmentRepository {
	return &MemoryAppointmentRepository{}
}

func (r *MemoryAppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.appointments = append(r.appointments, *appointment)
	return nil
}

func (r *MemoryAppointmentRepository) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.appointments {
		if a.ID == id {
			appointment := a
			return &appointment, nil
		}
	}
	return nil, nil
}

func (r *MemoryAppointmentRepository) Update(ctx context.Context, appointment *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, a := range r.appointments {
		if a.ID == appointment.ID {
			r.appointments[i] = *appointment
			return nil
		}
	}
	return fmt.Errorf("appointment %s not found", appointment.ID)
}

func (r *MemoryAppointmentRepository) GetByPatientID(ctx context.Context, patientID string) ([]models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Appointment
	for _, a := range r.appointments {
		if a.PatientID == patientID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *MemoryAppointmentRepository) GetByDoctorID(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Appointment
	for _, a := range r.appointments {
		if a.DoctorID == doctorID {
			out = append(out, a)
		}
	}
	return out, nil
}
