package handlers

import (
	"NovaClinic/services"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type MedicalInfoHandler struct {
	service *services.MedicalRecordService
}

func NewMedicalInfoHandler(service *services.MedicalRecordService) *MedicalInfoHandler {
	return &MedicalInfoHandler{service: service}
}

// Add appends a medical info entry (symptom, diagnosis, prescription or
// bill) to a patient's record. The info type comes from the URL.
func (h *MedicalInfoHandler) Add(c *gin.Context) {
	patientID := c.Param("id")
	infoType := c.Param("info_type")

	var payload services.MedicalInfoPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	entry, err := h.service.AddMedicalInfo(c.Request.Context(), patientID, infoType, payload)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPatientNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
		case errors.Is(err, services.ErrInvalidInfoType):
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid medical info type: %s", infoType)})
		case errors.Is(err, services.ErrInvalidPayload):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			internalError(c, fmt.Sprintf("Failed to add %s", infoType), err)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("%s added successfully.", infoType),
		"entry":   entry,
	})
}
