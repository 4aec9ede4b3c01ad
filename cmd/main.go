package main

import (
	"NovaClinic/cache"
	"NovaClinic/config"
	"NovaClinic/database"
	"NovaClinic/repositories"
	"NovaClinic/routes"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

func main() {
	config, err := loadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Initialize the database
	if _, err := database.InitDB(context.Background(), config.DBURL); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Initialize Redis
	if err := database.InitializeRedis(); err != nil {
		log.Fatalf("failed to initialize Redis client: %v", err)
	}

	cache, err := cache.NewCache()
	if err != nil {
		log.Fatalf("failed to initialize cache: %v", err)
	}

	repos := routes.Repos{
		Doctors:      repositories.NewDoctorRepository(cache),
		Patients:     repositories.NewPatientRepository(cache),
		Appointments: repositories.NewAppointmentRepository(cache),
	}

	handler := routes.SetupRoutes(config, repos)

	srv := &http.Server{
		Addr:           ":8930",
		Handler:        handler,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		MaxHeaderBytes: 1 << 20,
		IdleTimeout:    30 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()
		log.Println("Starting server on :8930")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listenAndServe(): %v", err)
		}
	}()

	// Graceful shutdown handling
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	log.Println("Shutting down server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server shutdown failed: %+v", err)
	}

	wg.Wait()
	log.Println("Server exited gracefully")
}

// loadConfig loads configuration from environment variables.
func loadConfig() (*config.AppConfig, error) {
	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		return nil, errors.New("missing DB_URL environment variable")
	}

	redisAddress := os.Getenv("REDIS_URL")
	if redisAddress == "" {
		return nil, errors.New("missing REDIS_URL environment variable")
	}

	registrationCode := os.Getenv("REGISTRATION_CODE")
	if registrationCode == "" {
		return nil, errors.New("missing REGISTRATION_CODE environment variable")
	}

	if len(os.Getenv("SYMMETRIC_KEY")) != 32 {
		return nil, errors.New("SYMMETRIC_KEY must be 32 bytes long")
	}

	return &config.AppConfig{
		DBURL:            dbURL,
		RedisAddress:     redisAddress,
		RegistrationCode: registrationCode,
	}, nil
}
