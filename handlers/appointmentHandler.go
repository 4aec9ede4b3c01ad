package handlers

import (
	"NovaClinic/middlewares"
	"NovaClinic/models"
	"NovaClinic/services"
	"NovaClinic/utils"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	service *services.AppointmentService
}

func NewAppointmentHandler(service *services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

// Request handles the public appointment request form. No authentication: the
// created (or matched) patient record is returned so the browser can keep the
// patient id for later status lookups.
func (h *AppointmentHandler) Request(c *gin.Context) {
	var req struct {
		Name          string `json:"name"`
		EmailOrMobile string `json:"emailOrMobile"`
		Date          string `json:"date"`
		Time          string `json:"time"`
		Reason        string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := utils.ValidateAppointmentRequest(req.Name, req.EmailOrMobile, req.Date, req.Time, req.Reason); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patient, err := h.service.RequestAppointment(c.Request.Context(), req.Name, req.EmailOrMobile, req.Date, req.Time, req.Reason)
	if err != nil {
		if errors.Is(err, services.ErrNoDoctorAvailable) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No doctors are available in the system to handle appointments."})
			return
		}
		internalError(c, "Appointment request failed", err)
		return
	}

	notifyPatient(patient.EmailOrMobile, patient.Name, req.Date, req.Time, models.StatusPending)

	c.JSON(http.StatusCreated, patient)
}

// DoctorCreate creates a confirmed appointment on behalf of the
// authenticated doctor.
func (h *AppointmentHandler) DoctorCreate(c *gin.Context) {
	doctorID, err := middlewares.ExtractDoctorIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
		return
	}

	var req struct {
		PatientID string `json:"patientId"`
		Date      string `json:"date"`
		Time      string `json:"time"`
		Reason    string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := utils.ValidateDoctorAppointment(req.PatientID, req.Date, req.Time, req.Reason); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appointment, err := h.service.DoctorCreateAppointment(c.Request.Context(), doctorID, req.PatientID, req.Date, req.Time, req.Reason)
	if err != nil {
		if errors.Is(err, services.ErrPatientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found."})
			return
		}
		internalError(c, "Failed to create appointment", err)
		return
	}

	c.JSON(http.StatusCreated, appointment)
}

// UpdateStatus transitions an appointment's status.
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	appointment, err := h.service.UpdateStatus(c.Request.Context(), c.Param("appointment_id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status value"})
		case errors.Is(err, services.ErrAppointmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		default:
			internalError(c, "Failed to update appointment status", err)
		}
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// ListForPatient returns the appointments of one patient.
func (h *AppointmentHandler) ListForPatient(c *gin.Context) {
	appointments, err := h.service.ListByPatient(c.Request.Context(), c.Param("id"))
	if err != nil {
		internalError(c, "Failed to fetch appointments", err)
		return
	}
	if appointments == nil {
		appointments = []models.Appointment{}
	}
	c.JSON(http.StatusOK, appointments)
}

// ListForDoctor returns the appointments assigned to one doctor.
func (h *AppointmentHandler) ListForDoctor(c *gin.Context) {
	appointments, err := h.service.ListByDoctor(c.Request.Context(), c.Param("doctor_id"))
	if err != nil {
		internalError(c, "Failed to fetch appointments", err)
		return
	}
	if appointments == nil {
		appointments = []models.Appointment{}
	}
	c.JSON(http.StatusOK, appointments)
}

// notifyPatient sends a best-effort email when the contact is an email
// address. Failures are logged, never surfaced to the caller.
func notifyPatient(contact, patientName, date, timeOfDay, status string) {
	if !utils.IsEmailAddress(contact) {
		return
	}
	if err := utils.SendAppointmentEmail(contact, patientName, date, timeOfDay, status); err != nil {
		log.Printf("Failed to send appointment email to %s: %v", contact, err)
	}
}
