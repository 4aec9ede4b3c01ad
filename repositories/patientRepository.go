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

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const PatientCacheExpiry = 7 * 24 * time.Hour

type patientRepository struct {
	cache *cache.Cache
}

func NewPatientRepository(cache *cache.Cache) PatientRepository {
	return &patientRepository{cache: cache}
}

// Create guards the lookup-then-insert sequence with a distributed lock keyed
// on the patient's contact, so two concurrent appointment requests with the
// same emailOrMobile cannot create duplicate patient records.
func (r *patientRepository) Create(ctx context.Context, patient *models.Patient) error {
	lockKey := fmt.Sprintf("patient_lock:%s", patient.EmailOrMobile)
	lockValue := uuid.New().String()

	maxRetries := 3
	retryDelay := 2 * time.Second
	var locked bool
	var err error
	for i := 0; i < maxRetries; i++ {
		locked, err = database.NewLock(ctx, lockKey, lockValue, 10*time.Second)
		if err == nil && locked {
			break
		}
		if i < maxRetries-1 {
			time.Sleep(retryDelay)
		}
	}
	if !locked {
		return fmt.Errorf("failed to acquire lock after retries: %w", err)
	}
	defer func() {
		if err := database.ReleaseLock(ctx, lockKey, lockValue); err != nil {
			log.Printf("Failed to release lock: %v", err)
		}
	}()

	if patient.EmailOrMobile != "" {
		var existing models.Patient
		if err := database.DB.Where("email_or_mobile = ?", patient.EmailOrMobile).First(&existing).Error; err == nil {
			return fmt.Errorf("patient with contact %s already exists", patient.EmailOrMobile)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check for existing patient: %w", err)
		}
	}

	if err := database.DB.Create(patient).Error; err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}

	return r.cache.DeleteAll(ctx, "patients_cache")
}

func (r *patientRepository) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := patientCacheKey(id)
	cached, err := r.cache.Get(ctx, cacheKey)
	if err == nil {
		var patient models.Patient
		if err := json.Unmarshal([]byte(cached), &patient); err == nil {
			return &patient, nil
		}
	} else if err != cache.Nil {
		log.Printf("Failed to get patient from cache: %v", err)
	}

	var patient models.Patient
	err = database.DB.
		Preload("Symptoms").
		Preload("Diagnoses").
		Preload("Prescriptions").
		Preload("Bills").
		First(&patient, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}

	patientJSON, err := json.Marshal(patient)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal patient: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, patientJSON, PatientCacheExpiry); err != nil {
		log.Printf("Failed to set patient in cache: %v", err)
	}

	return &patient, nil
}

func (r *patientRepository) GetByEmailOrMobile(ctx context.Context, contact string) (*models.Patient, error) {
	var patient models.Patient
	err := database.DB.First(&patient, "email_or_mobile = ?", contact).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get patient by contact: %w", err)
	}
	return &patient, nil
}

func (r *patientRepository) GetAll(ctx context.Context) ([]models.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cached, err := r.cache.Get(ctx, "patients_cache")
	if err == nil {
		var patients []models.Patient
		if err := json.Unmarshal([]byte(cached), &patients); err == nil {
			return patients, nil
		}
	} else if err != cache.Nil {
		log.Printf("Failed to get patients from cache: %v", err)
	}

	var patients []models.Patient
	err = database.DB.
		Preload("Symptoms").
		Preload("Diagnoses").
		Preload("Prescriptions").
		Preload("Bills").
		Order("name ASC").
		Find(&patients).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all patients: %w", err)
	}

	patientsJSON, err := json.Marshal(patients)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal patients: %w", err)
	}
	if err := r.cache.Set(ctx, "patients_cache", patientsJSON, PatientCacheExpiry); err != nil {
		log.Printf("Failed to set patients in cache: %v", err)
	}

	return patients, nil
}

func (r *patientRepository) Update(ctx context.Context, patient *models.Patient) error {
	lockKey := fmt.Sprintf("patient_lock:%s", patient.ID)
	lockValue := uuid.New().String()
	locked, err := database.NewLock(ctx, lockKey, lockValue, 10*time.Second)
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return errors.New("failed to acquire lock")
	}
	defer func() {
		if err := database.ReleaseLock(ctx, lockKey, lockValue); err != nil {
			log.Printf("Failed to release lock: %v", err)
		}
	}()

	if err := database.DB.Save(patient).Error; err != nil {
		return fmt.Errorf("failed to update patient: %w", err)
	}

	return r.invalidate(ctx, patient.ID)
}

// Delete removes the patient and every owned record in one transaction.
func (r *patientRepository) Delete(ctx context.Context, id string) error {
	lockKey := fmt.Sprintf("patient_lock:%s", id)
	lockValue := uuid.New().String()
	locked, err := database.NewLock(ctx, lockKey, lockValue, time.Minute)
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return errors.New("failed to acquire lock")
	}
	defer func() {
		if err := database.ReleaseLock(ctx, lockKey, lockValue); err != nil {
			log.Printf("Failed to release lock: %v", err)
		}
	}()

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("patient_id = ?", id).Delete(&models.Symptom{}).Error; err != nil {
			return err
		}
		if err := tx.Where("patient_id = ?", id).Delete(&models.Diagnosis{}).Error; err != nil {
			return err
		}
		if err := tx.Where("patient_id = ?", id).Delete(&models.Prescription{}).Error; err != nil {
			return err
		}
		if err := tx.Where("patient_id = ?", id).Delete(&models.Bill{}).Error; err != nil {
			return err
		}
		if err := tx.Where("patient_id = ?", id).Delete(&models.Appointment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Patient{}, "id = ?", id).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}

	if err := r.cache.DeleteAll(ctx, fmt.Sprintf("appointments_cache:*:%s", id)); err != nil {
		return err
	}
	return r.invalidate(ctx, id)
}

func (r *patientRepository) AddSymptom(ctx context.Context, symptom *models.Symptom) error {
	if err := database.DB.Create(symptom).Error; err != nil {
		return fmt.Errorf("failed to add symptom: %w", err)
	}
	return r.invalidate(ctx, symptom.PatientID)
}

func (r *patientRepository) AddDiagnosis(ctx context.Context, diagnosis *models.Diagnosis) error {
	if err := database.DB.Create(diagnosis).Error; err != nil {
		return fmt.Errorf("failed to add diagnosis: %w", err)
	}
	return r.invalidate(ctx, diagnosis.PatientID)
}

func (r *patientRepository) AddPrescription(ctx context.Context, prescription *models.Prescription) error {
	if err := database.DB.Create(prescription).Error; err != nil {
		return fmt.Errorf("failed to add prescription: %w", err)
	}
	return r.invalidate(ctx, prescription.PatientID)
}

func (r *patientRepository) AddBill(ctx context.Context, bill *models.Bill) error {
	if err := database.DB.Create(bill).Error; err != nil {
		return fmt.Errorf("failed to add bill: %w", err)
	}
	return r.invalidate(ctx, bill.PatientID)
}

func (r *patientRepository) invalidate(ctx context.Context, patientID string) error {
	if err := r.cache.Delete(ctx, patientCacheKey(patientID)); err != nil {
		return fmt.Errorf("failed to delete patient cache: %w", err)
	}
	return r.cache.DeleteAll(ctx, "patients_cache")
}

func patientCacheKey(patientID string) string {
	return fmt.Sprintf("patient_cache:%s", patientID)
}
