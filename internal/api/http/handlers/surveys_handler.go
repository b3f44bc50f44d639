package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Rodger11/geo-reconexion/internal/api/dto"
	"github.com/Rodger11/geo-reconexion/internal/service"
	"github.com/Rodger11/geo-reconexion/pkg/util"
)

// SurveysHandler exposes the canvassing-point endpoints.
type SurveysHandler struct {
	surveys *service.SurveyService
}

// NewSurveysHandler constructs handler.
func NewSurveysHandler(surveyService *service.SurveyService) *SurveysHandler {
	return &SurveysHandler{surveys: surveyService}
}

// List handles GET /api/encuestas.
func (h *SurveysHandler) List(c *fiber.Ctx) error {
	records, err := h.surveys.List(c.Context())
	if err != nil {
		return err
	}

	out := make([]dto.SurveyResponse, 0, len(records))
	for _, record := range records {
		out = append(out, dto.NewSurveyResponse(record))
	}
	return c.JSON(out)
}

// Create handles POST /api/encuestas.
func (h *SurveysHandler) Create(c *fiber.Ctx) error {
	var req dto.SurveyCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload")
	}

	input := service.SurveyRecordInput{
		ID:               req.ID,
		Lat:              req.Lat,
		Lng:              req.Lng,
		Zona:             req.Zona,
		Manzana:          req.Manzana,
		Lote:             req.Lote,
		CantidadVotantes: req.CantidadVotantes,
		Apoyo:            req.Apoyo,
		ComparteDatos:    req.ComparteDatos,
		DNI:              req.DNI,
		Celular:          req.Celular,
		Whatsapp:         req.Whatsapp,
		MotivoRechazo:    req.MotivoRechazo,
		Prioridad:        req.Prioridad,
		EncuestadorID:    req.EncuestadorID,
		EncuestadorName:  req.EncuestadorName,
	}

	if err := h.surveys.Record(c.Context(), input); err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(dto.AckResponse{
		Success: true,
		Message: "Punto registrado",
	})
}
