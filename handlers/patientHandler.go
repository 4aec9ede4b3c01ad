package handlers

import (
	"NovaClinic/services"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type PatientHandler struct {
	service *services.PatientService
}

func NewPatientHandler(service *services.PatientService) *PatientHandler {
	return &PatientHandler{service: service}
}

// GetAll returns every patient record, sorted by name.
func (h *PatientHandler) GetAll(c *gin.Context) {
	patients, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		internalError(c, "Failed to fetch patients", err)
		return
	}
	c.JSON(http.StatusOK, patients)
}

func (h *PatientHandler) GetByID(c *gin.Context) {
	patient, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrPatientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
			return
		}
		internalError(c, "Failed to fetch patient data", err)
		return
	}
	c.JSON(http.StatusOK, patient)
}

// Update applies demographic changes to a patient record.
func (h *PatientHandler) Update(c *gin.Context) {
	var update services.PatientUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	patient, err := h.service.Update(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		if errors.Is(err, services.ErrPatientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
			return
		}
		internalError(c, "Failed to update patient", err)
		return
	}
	c.JSON(http.StatusOK, patient)
}

// Delete removes a patient record on explicit doctor action.
func (h *PatientHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, services.ErrPatientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
			return
		}
		internalError(c, "Failed to delete patient", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Patient deleted"})
}

// PublicGetByID is the unauthenticated self-lookup endpoint: a patient who
// kept their id from an appointment request can fetch their own record,
// including appointments.
func (h *PatientHandler) PublicGetByID(c *gin.Context) {
	patient, err := h.service.GetWithAppointments(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrPatientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
			return
		}
		internalError(c, "Failed to fetch public patient data", err)
		return
	}
	c.JSON(http.StatusOK, patient)
}
