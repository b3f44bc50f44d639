package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventSurveyRecorded EventType = "survey_recorded"
	EventUserCreated    EventType = "user_created"
	EventUserUpdated    EventType = "user_updated"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	SubjectID string      `json:"subject_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// SurveyRecordedPayload describes a freshly stored canvassing point.
type SurveyRecordedPayload struct {
	Zona            string `json:"zona"`
	EncuestadorID   string `json:"encuestador_id"`
	EncuestadorName string `json:"encuestador_name"`
	Prioridad       bool   `json:"prioridad"`
}

// UserUpsertPayload describes a created or updated account.
type UserUpsertPayload struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Active   bool   `json:"active"`
}
