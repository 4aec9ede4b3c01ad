package repositories

import (
	"NovaClinic/cache"
	"NovaClinic/database"
	"NovaClinic/models"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
)

const AppointmentCacheExpiry = 24 * time.Hour

type appointmentRepository struct {
	cache *cache.Cache
}

func NewAppointmentRepository(cache *cache.Cache) AppointmentRepository {
	return &appointmentRepository{cache: cache}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	if err := database.DB.Create(appointment).Error; err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return r.invalidate(ctx, appointment)
}

func (r *appointmentRepository) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	var appointment models.Appointment
	err := database.DB.First(&appointment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return &appointment, nil
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *models.Appointment) error {
	if err := database.DB.Save(appointment).Error; err != nil {
		return fmt.Errorf("failed to update appointment: %w", err)
	}
	return r.invalidate(ctx, appointment)
}

func (r *appointmentRepository) GetByPatientID(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return r.list(ctx, appointmentCacheKey("patient", patientID), "patient_id = ?", patientID)
}

func (r *appointmentRepository) GetByDoctorID(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	return r.list(ctx, appointmentCacheKey("doctor", doctorID), "doctor_id = ?", doctorID)
}

func (r *appointmentRepository) list(ctx context.Context, cacheKey, query string, arg string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cached, err := r.cache.Get(ctx, cacheKey)
	if err == nil {
		var appointments []models.Appointment
		if err := json.Unmarshal([]byte(cached), &appointments); err == nil {
			return appointments, nil
		}
	} else if err != cache.Nil {
		log.Printf("Failed to get appointments from cache: %v", err)
	}

	var appointments []models.Appointment
	err = database.DB.Where(query, arg).Order("created_at ASC").Find(&appointments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	appointmentsJSON, err := json.Marshal(appointments)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal appointments: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, appointmentsJSON, AppointmentCacheExpiry); err != nil {
		log.Printf("Failed to set appointments in cache: %v", err)
	}

	return appointments, nil
}

func (r *appointmentRepository) invalidate(ctx context.Context, appointment *models.Appointment) error {
	keys := []string{appointmentCacheKey("patient", appointment.PatientID)}
	if appointment.DoctorID != "" {
		keys = append(keys, appointmentCacheKey("doctor", appointment.DoctorID))
	}
	return r.cache.Delete(ctx, keys...)
}

func appointmentCacheKey(kind, id string) string {
	return fmt.Sprintf("appointments_cache:%s:%s", kind, id)
}
