package services

import (
	"NovaClinic/repositories"
	"context"
	"errors"
	"testing"
)

const testRegistrationCode = "JOHN200TIM#"

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()
	t.Setenv("SYMMETRIC_KEY", "0123456789abcdef0123456789abcdef")
	return NewAuthService(repositories.NewMemoryDoctorRepository(), testRegistrationCode)
}

func TestRegisterIssuesVerifiableToken(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	token, doctor, err := svc.Register(ctx, "Dr. John", "doc@example.com", "Secret123!", testRegistrationCode)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if doctor.ID == "" || doctor.Name != "Dr. John" {
		t.Fatalf("unexpected doctor: %+v", doctor)
	}
	if doctor.Password == "Secret123!" {
		t.Fatal("password stored in plaintext")
	}

	claims, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if claims.DoctorID != doctor.ID || claims.Email != "doc@example.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestRegisterRejectsBadRegistrationCode(t *testing.T) {
	svc := newTestAuthService(t)

	_, _, err := svc.Register(context.Background(), "Dr. John", "doc@example.com", "Secret123!", "wrong-code")
	if !errors.Is(err, ErrInvalidRegistrationCode) {
		t.Fatalf("expected ErrInvalidRegistrationCode, got %v", err)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, "Dr. John", "doc@example.com", "Secret123!", testRegistrationCode); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	_, _, err := svc.Register(ctx, "Dr. Jane", "doc@example.com", "Another123!", testRegistrationCode)
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, "Dr. John", "doc@example.com", "Secret123!", testRegistrationCode); err != nil {
		t.Fatalf("Register: %v", err)
	}

	token, doctor, err := svc.Login(ctx, "doc@example.com", "Secret123!")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" || doctor.Email != "doc@example.com" {
		t.Fatalf("unexpected login result: token=%q doctor=%+v", token, doctor)
	}

	if _, _, err := svc.Login(ctx, "doc@example.com", "wrong-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for bad password, got %v", err)
	}
	if _, _, err := svc.Login(ctx, "nobody@example.com", "Secret123!"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	svc := newTestAuthService(t)

	if _, err := svc.VerifyToken("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
