package services

import (
	"NovaClinic/models"
	"NovaClinic/repositories"
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Medical info collection names accepted by AddMedicalInfo.
const (
	InfoTypeSymptoms      = "symptoms"
	InfoTypeDiagnoses     = "diagnoses"
	InfoTypePrescriptions = "prescriptions"
	InfoTypeBills         = "bills"
)

// MedicalInfoPayload is the union of the fields accepted across the four
// medical info kinds. The info type selects which fields apply.
type MedicalInfoPayload struct {
	Description string  `json:"description"`
	Severity    string  `json:"severity"`
	Condition   string  `json:"condition"`
	Notes       string  `json:"notes"`
	Medication  string  `json:"medication"`
	Dosage      string  `json:"dosage"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
	Date        string  `json:"date"`
}

// MedicalRecordService appends symptom, diagnosis, prescription and bill
// entries to a patient's record.
type MedicalRecordService struct {
	patients repositories.PatientRepository
}

func NewMedicalRecordService(patients repositories.PatientRepository) *MedicalRecordService {
	return &MedicalRecordService{patients: patients}
}

// AddMedicalInfo validates the payload against the given info type, builds
// the typed entry with a fresh id, and appends it to the patient's record.
func (s *MedicalRecordService) AddMedicalInfo(ctx context.Context, patientID, infoType string, payload MedicalInfoPayload) (interface{}, error) {
	patient, err := s.patients.GetByID(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up patient: %w", err)
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	switch infoType {
	case InfoTypeSymptoms:
		if err := (validation.Errors{
			"description": validation.Validate(payload.Description, validation.Required),
			"severity": validation.Validate(payload.Severity, validation.Required,
				validation.In(models.SeverityMild, models.SeverityModerate, models.SeveritySevere)),
		}).Filter(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
		symptom := &models.Symptom{
			ID:          models.NewID("sym"),
			PatientID:   patient.ID,
			Description: payload.Description,
			Severity:    payload.Severity,
			Date:        payload.Date,
		}
		if err := s.patients.AddSymptom(ctx, symptom); err != nil {
			return nil, fmt.Errorf("failed to add symptom: %w", err)
		}
		return symptom, nil

	case InfoTypeDiagnoses:
		if err := validation.Validate(payload.Condition, validation.Required); err != nil {
			return nil, fmt.Errorf("%w: condition: %v", ErrInvalidPayload, err)
		}
		diagnosis := &models.Diagnosis{
			ID:        models.NewID("diag"),
			PatientID: patient.ID,
			Condition: payload.Condition,
			Notes:     payload.Notes,
			Date:      payload.Date,
		}
		if err := s.patients.AddDiagnosis(ctx, diagnosis); err != nil {
			return nil, fmt.Errorf("failed to add diagnosis: %w", err)
		}
		return diagnosis, nil

	case InfoTypePrescriptions:
		if err := validation.Validate(payload.Medication, validation.Required); err != nil {
			return nil, fmt.Errorf("%w: medication: %v", ErrInvalidPayload, err)
		}
		prescription := &models.Prescription{
			ID:         models.NewID("pres"),
			PatientID:  patient.ID,
			Medication: payload.Medication,
			Dosage:     payload.Dosage,
			StartDate:  payload.StartDate,
			EndDate:    payload.EndDate,
		}
		if err := s.patients.AddPrescription(ctx, prescription); err != nil {
			return nil, fmt.Errorf("failed to add prescription: %w", err)
		}
		return prescription, nil

	case InfoTypeBills:
		if err := (validation.Errors{
			"description": validation.Validate(payload.Description, validation.Required),
			"amount":      validation.Validate(payload.Amount, validation.Required, validation.Min(0.0)),
			"status": validation.Validate(payload.Status, validation.Required,
				validation.In(models.BillStatusPaid, models.BillStatusUnpaid)),
		}).Filter(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
		bill := &models.Bill{
			ID:          models.NewID("bill"),
			PatientID:   patient.ID,
			Description: payload.Description,
			Amount:      payload.Amount,
			Status:      payload.Status,
			Date:        payload.Date,
		}
		if err := s.patients.AddBill(ctx, bill); err != nil {
			return nil, fmt.Errorf("failed to add bill: %w", err)
		}
		return bill, nil
	}

	return nil, ErrInvalidInfoType
}
