package utils

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/o1egl/paseto"
)

// AccessTokenExpiry is how long an issued doctor token remains valid.
const AccessTokenExpiry = 24 * time.Hour

// TokenClaims represents the data carried by a doctor token.
type TokenClaims struct {
	DoctorID string    `json:"doctorId"`
	Email    string    `json:"email"`
	Expiry   time.Time `json:"expiry"`
}

// GetSymmetricKey retrieves the symmetric key from the environment variable.
// Ensures it has the correct length (32 bytes).
func GetSymmetricKey() []byte {
	key := os.Getenv("SYMMETRIC_KEY")
	if len(key) != 32 {
		log.Fatalf("SYMMETRIC_KEY must be 32 bytes long. Current length: %d", len(key))
	}
	return []byte(key)
}

// GenerateAccessToken mints a PASETO token for the given doctor.
func GenerateAccessToken(doctorID, email string) (string, error) {
	claims := TokenClaims{
		DoctorID: doctorID,
		Email:    email,
		Expiry:   time.Now().Add(AccessTokenExpiry),
	}

	token, err := paseto.NewV2().Encrypt(GetSymmetricKey(), claims, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// ValidateToken decrypts the given token string and checks expiry.
func ValidateToken(tokenString string) (*TokenClaims, error) {
	var claims TokenClaims
	if err := paseto.NewV2().Decrypt(tokenString, GetSymmetricKey(), &claims, nil); err != nil {
		return nil, fmt.Errorf("failed to decrypt token: %w", err)
	}

	if time.Now().After(claims.Expiry) {
		return nil, errors.New("token expired")
	}

	return &claims, nil
}
