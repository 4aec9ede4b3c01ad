package handlers

import (
	"NovaClinic/services"
	"NovaClinic/utils"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service *services.AuthService
}

func NewAuthHandler(service *services.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register handles doctor self-registration gated by the registration code.
func (h *AuthHandler) Register(c *gin.Context) {
	var req struct {
		Name             string `json:"name"`
		Email            string `json:"email"`
		Password         string `json:"password"`
		RegistrationCode string `json:"registrationCode"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := utils.ValidateRegistration(req.Name, req.Email, req.Password); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, doctor, err := h.service.Register(c.Request.Context(), req.Name, req.Email, req.Password, req.RegistrationCode)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRegistrationCode):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid registration code."})
		case errors.Is(err, services.ErrDuplicateEmail):
			c.JSON(http.StatusConflict, gin.H{"error": "A doctor with this email is already registered."})
		default:
			internalError(c, "Registration failed", err)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful!",
		"token":   token,
		"id":      doctor.ID,
		"name":    doctor.Name,
	})
}

// Login authenticates a doctor and returns a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := utils.ValidateLogin(req.Email, req.Password); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, doctor, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		internalError(c, "Login failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"id":      doctor.ID,
		"name":    doctor.Name,
	})
}
