package controllers

import (
	"NovaClinic/handlers"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Handler *handlers.AuthHandler
}

// NewAuthController creates a new AuthController with the given AuthHandler
func NewAuthController(authHandler *handlers.AuthHandler) *AuthController {
	return &AuthController{Handler: authHandler}
}

// RegisterRoutes initializes the doctor identity routes. Both are public:
// registration is gated by the registration code instead of a session.
func (ac *AuthController) RegisterRoutes(router *gin.Engine) {
	router.POST("/api/doctor/register", ac.Handler.Register)
	router.POST("/api/doctor/login", ac.Handler.Login)
}
