package services

import (
	"NovaClinic/models"
	"NovaClinic/repositories"
	"NovaClinic/utils"
	"context"
	"fmt"
)

// AuthService registers and authenticates doctors and issues bearer tokens.
// Doctor self-registration is gated by a shared registration code.
type AuthService struct {
	doctors          repositories.DoctorRepository
	registrationCode string
}

func NewAuthService(doctors repositories.DoctorRepository, registrationCode string) *AuthService {
	return &AuthService{doctors: doctors, registrationCode: registrationCode}
}

// Register creates a new doctor with a bcrypt password hash and returns a
// token for the fresh session.
func (s *AuthService) Register(ctx context.Context, name, email, password, code string) (string, *models.Doctor, error) {
	if code != s.registrationCode {
		return "", nil, ErrInvalidRegistrationCode
	}

	existing, err := s.doctors.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, fmt.Errorf("failed to check for existing doctor: %w", err)
	}
	if existing != nil {
		return "", nil, ErrDuplicateEmail
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return "", nil, fmt.Errorf("failed to hash password: %w", err)
	}

	doctor := &models.Doctor{
		ID:       models.NewID("doc"),
		Name:     name,
		Email:    email,
		Password: hash,
	}
	if err := s.doctors.Create(ctx, doctor); err != nil {
		return "", nil, fmt.Errorf("failed to create doctor: %w", err)
	}

	token, err := utils.GenerateAccessToken(doctor.ID, doctor.Email)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return token, doctor, nil
}

// Login authenticates a doctor by email and password.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.Doctor, error) {
	doctor, err := s.doctors.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, fmt.Errorf("failed to look up doctor: %w", err)
	}
	if doctor == nil || !utils.CheckPassword(doctor.Password, password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateAccessToken(doctor.ID, doctor.Email)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return token, doctor, nil
}

// VerifyToken validates a bearer token and returns its claims.
func (s *AuthService) VerifyToken(token string) (*utils.TokenClaims, error) {
	claims, err := utils.ValidateToken(token)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
