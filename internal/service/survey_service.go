package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Rodger11/geo-reconexion/internal/domain"
	"github.com/Rodger11/geo-reconexion/internal/events"
	"github.com/Rodger11/geo-reconexion/internal/repository"
)

// SurveyService coordinates canvassing-point listing and recording.
type SurveyService struct {
	surveys    repository.SurveyRepository
	dispatcher events.Dispatcher
}

// NewSurveyService builds the service.
func NewSurveyService(surveys repository.SurveyRepository, dispatcher events.Dispatcher) *SurveyService {
	return &SurveyService{surveys: surveys, dispatcher: dispatcher}
}

// SurveyRecordInput carries a new canvassing point as the frontend sends it.
// Optional fields arrive as plain strings; empty means absent.
type SurveyRecordInput struct {
	ID               string
	Lat              float64
	Lng              float64
	Zona             string
	Manzana          string
	Lote             string
	CantidadVotantes int
	Apoyo            string
	ComparteDatos    bool
	DNI              string
	Celular          string
	Whatsapp         string
	MotivoRechazo    string
	Prioridad        bool
	EncuestadorID    string
	EncuestadorName  string
}

// List returns every recorded point with lookup descriptions joined in.
func (s *SurveyService) List(ctx context.Context) ([]domain.Survey, error) {
	return s.surveys.List(ctx)
}

// Record stores a new canvassing point under its client-supplied identifier.
// Empty optional fields become NULL columns.
func (s *SurveyService) Record(ctx context.Context, input SurveyRecordInput) error {
	write := domain.SurveyWrite{
		ID:               input.ID,
		Lat:              input.Lat,
		Lng:              input.Lng,
		Zona:             input.Zona,
		Manzana:          input.Manzana,
		Lote:             optional(input.Lote),
		CantidadVotantes: input.CantidadVotantes,
		Apoyo:            input.Apoyo,
		ComparteDatos:    input.ComparteDatos,
		DNI:              optional(input.DNI),
		Celular:          optional(input.Celular),
		Whatsapp:         optional(input.Whatsapp),
		MotivoRechazo:    optional(input.MotivoRechazo),
		Prioridad:        input.Prioridad,
		EncuestadorID:    input.EncuestadorID,
		EncuestadorName:  input.EncuestadorName,
	}

	if err := s.surveys.Insert(ctx, write); err != nil {
		return err
	}

	if s.dispatcher != nil {
		s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventSurveyRecorded,
			SubjectID: write.ID,
			Timestamp: time.Now(),
			Payload: events.SurveyRecordedPayload{
				Zona:            input.Zona,
				EncuestadorID:   input.EncuestadorID,
				EncuestadorName: input.EncuestadorName,
				Prioridad:       input.Prioridad,
			},
		})
	}
	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
