package routes

import (
	"NovaClinic/config"
	"NovaClinic/controllers"
	"NovaClinic/handlers"
	"NovaClinic/middlewares"
	"NovaClinic/repositories"
	"NovaClinic/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Repos bundles the per-entity repositories the router is wired against.
// Production passes the gorm-backed set, tests pass the in-memory set.
type Repos struct {
	Doctors      repositories.DoctorRepository
	Patients     repositories.PatientRepository
	Appointments repositories.AppointmentRepository
}

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(config *config.AppConfig, repos Repos) http.Handler {
	gin.SetMode(gin.ReleaseMode)

	router := gin.Default()

	corsConfig := &middlewares.CorsConfig{
		AllowedOrigins:   []string{"http://localhost:3000", "https://www.novaclinic.example"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	router.Use(middlewares.CorsMiddleware(corsConfig))

	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: 15,
		Burst:             30,
	}))

	router.Use(middlewares.LoggingMiddleware())

	authService := services.NewAuthService(repos.Doctors, config.GetRegistrationCode())
	patientService := services.NewPatientService(repos.Patients, repos.Appointments)
	appointmentService := services.NewAppointmentService(repos.Patients, repos.Doctors, repos.Appointments)
	medicalRecordService := services.NewMedicalRecordService(repos.Patients)

	authController := controllers.NewAuthController(handlers.NewAuthHandler(authService))
	authController.RegisterRoutes(router)

	controllers.SetupClinicRoutes(
		router,
		middlewares.TokenAuthMiddleware(authService),
		handlers.NewPatientHandler(patientService),
		handlers.NewAppointmentHandler(appointmentService),
		handlers.NewMedicalInfoHandler(medicalRecordService),
	)

	controllers.SetupRootRoute(router)

	return router
}
