package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Rodger11/geo-reconexion/internal/api/dto"
	"github.com/Rodger11/geo-reconexion/internal/service"
	"github.com/Rodger11/geo-reconexion/pkg/util"
)

// AuthHandler exposes the login endpoint.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload")
	}

	result, err := h.auth.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(dto.NewLoginResponse(result.User, result.Token))
}
