package controllers

import (
	"NovaClinic/handlers"

	"github.com/gin-gonic/gin"
)

// SetupClinicRoutes registers the patient, appointment and medical record
// routes. Doctor-facing routes sit behind the token auth middleware; the
// appointment request form and the patient self-lookup stay public.
func SetupClinicRoutes(
	router *gin.Engine,
	authMiddleware gin.HandlerFunc,
	patientHandler *handlers.PatientHandler,
	appointmentHandler *handlers.AppointmentHandler,
	medicalInfoHandler *handlers.MedicalInfoHandler,
) {
	// Public routes: no doctor session required
	router.POST("/api/appointments/request", appointmentHandler.Request)
	router.GET("/api/public/patients/:id", patientHandler.PublicGetByID)

	// Protected routes: require a valid doctor token
	api := router.Group("/api").Use(authMiddleware)
	{
		api.GET("/patients", patientHandler.GetAll)
		api.GET("/patients/:id", patientHandler.GetByID)
		api.PUT("/patients/:id", patientHandler.Update)
		api.DELETE("/patients/:id", patientHandler.Delete)
		api.POST("/patients/:id/:info_type", medicalInfoHandler.Add)

		api.GET("/patients/:id/appointments", appointmentHandler.ListForPatient)
		api.GET("/doctors/:doctor_id/appointments", appointmentHandler.ListForDoctor)
		api.PUT("/appointments/:appointment_id", appointmentHandler.UpdateStatus)
		api.POST("/appointments/doctor-create", appointmentHandler.DoctorCreate)
	}
}
