package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Rodger11/geo-reconexion/internal/api/dto"
	"github.com/Rodger11/geo-reconexion/internal/service"
	"github.com/Rodger11/geo-reconexion/pkg/util"
)

// UsersHandler exposes the account management endpoints.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(userService *service.UserService) *UsersHandler {
	return &UsersHandler{users: userService}
}

// List handles GET /api/usuarios.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	accounts, err := h.users.List(c.Context())
	if err != nil {
		return err
	}

	out := make([]dto.UserResponse, 0, len(accounts))
	for _, account := range accounts {
		out = append(out, dto.NewUserResponse(account))
	}
	return c.JSON(out)
}

// Upsert handles POST /api/usuarios.
func (h *UsersHandler) Upsert(c *fiber.Ctx) error {
	var req dto.UserUpsertRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload")
	}

	created, err := h.users.Upsert(c.Context(), service.UserUpsertInput{
		ID:       req.ID,
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
		Role:     req.Role,
		Cargo:    req.Cargo,
		Zona:     req.Zona,
		Active:   req.Activo,
	})
	if err != nil {
		return err
	}

	message := "Usuario actualizado"
	if created {
		message = "Usuario creado"
	}
	return c.JSON(dto.AckResponse{Success: true, Message: message})
}
