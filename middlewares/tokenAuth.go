package middlewares

import (
	"NovaClinic/services"
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// contextKey defines a custom context key type to store doctor details in the
// request context.
type contextKey string

const (
	doctorIDKey    contextKey = "doctorID"
	doctorEmailKey contextKey = "doctorEmail"
)

// TokenAuthMiddleware validates the bearer token in the Authorization header
// and adds the calling doctor's identity to the request context. A missing or
// malformed header yields 401; a token that fails verification yields 403.
func TokenAuthMiddleware(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized, no token"})
			c.Abort()
			return
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header format"})
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.VerifyToken(token)
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "Token is not valid"})
			c.Abort()
			return
		}

		ctx := context.WithValue(c.Request.Context(), doctorIDKey, claims.DoctorID)
		ctx = context.WithValue(ctx, doctorEmailKey, claims.Email)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// ExtractDoctorIDFromContext retrieves the authenticated doctor's id.
func ExtractDoctorIDFromContext(ctx context.Context) (string, error) {
	doctorID, ok := ctx.Value(doctorIDKey).(string)
	if !ok {
		return "", errors.New("doctor ID not found in context")
	}
	return doctorID, nil
}

// ExtractDoctorEmailFromContext retrieves the authenticated doctor's email.
func ExtractDoctorEmailFromContext(ctx context.Context) (string, error) {
	email, ok := ctx.Value(doctorEmailKey).(string)
	if !ok {
		return "", errors.New("doctor email not found in context")
	}
	return email, nil
}
