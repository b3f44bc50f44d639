package dto

import (
	"time"

	"github.com/Rodger11/geo-reconexion/internal/domain"
)

// SurveyCreateRequest is a new canvassing point as the frontend sends it.
// Optional fields arrive as empty strings when absent.
type SurveyCreateRequest struct {
	ID               string  `json:"id"`
	Lat              float64 `json:"lat"`
	Lng              float64 `json:"lng"`
	Zona             string  `json:"zona"`
	Manzana          string  `json:"manzana"`
	Lote             string  `json:"lote"`
	CantidadVotantes int     `json:"cantidadVotantes"`
	Apoyo            string  `json:"apoyo"`
	ComparteDatos    bool    `json:"comparteDatos"`
	DNI              string  `json:"dni"`
	Celular          string  `json:"celular"`
	Whatsapp         string  `json:"whatsapp"`
	MotivoRechazo    string  `json:"motivoRechazo"`
	Prioridad        bool    `json:"prioridad"`
	EncuestadorID    string  `json:"encuestadorId"`
	EncuestadorName  string  `json:"encuestadorName"`
}

// SurveyResponse is one stored point with lookup descriptions joined in.
type SurveyResponse struct {
	ID               string    `json:"id"`
	FechaHora        time.Time `json:"fechaHora"`
	Lat              float64   `json:"lat"`
	Lng              float64   `json:"lng"`
	Zona             *string   `json:"zona"`
	Manzana          string    `json:"manzana"`
	Lote             *string   `json:"lote"`
	CantidadVotantes int       `json:"cantidadVotantes"`
	Apoyo            string    `json:"apoyo"`
	ComparteDatos    bool      `json:"comparteDatos"`
	DNI              *string   `json:"dni"`
	Celular          *string   `json:"celular"`
	Whatsapp         *string   `json:"whatsapp"`
	MotivoRechazo    *string   `json:"motivoRechazo"`
	Prioridad        bool      `json:"prioridad"`
	EncuestadorID    string    `json:"encuestadorId"`
	EncuestadorName  string    `json:"encuestadorName"`
}

// NewSurveyResponse shapes a stored point for the frontend.
func NewSurveyResponse(s domain.Survey) SurveyResponse {
	return SurveyResponse{
		ID:               s.ID,
		FechaHora:        s.RecordedAt,
		Lat:              s.Lat,
		Lng:              s.Lng,
		Zona:             s.Zona,
		Manzana:          s.Manzana,
		Lote:             s.Lote,
		CantidadVotantes: s.CantidadVotantes,
		Apoyo:            s.Apoyo,
		ComparteDatos:    s.ComparteDatos,
		DNI:              s.DNI,
		Celular:          s.Celular,
		Whatsapp:         s.Whatsapp,
		MotivoRechazo:    s.MotivoRechazo,
		Prioridad:        s.Prioridad,
		EncuestadorID:    s.EncuestadorID,
		EncuestadorName:  s.EncuestadorName,
	}
}

// AckResponse acknowledges a successful write without echoing the record.
type AckResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
