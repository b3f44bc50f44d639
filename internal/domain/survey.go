package domain

import "time"

// Survey is the read model for a canvassing point, with zone and rejection
// reason descriptions joined in.
type Survey struct {
	ID               string
	RecordedAt       time.Time
	Lat              float64
	Lng              float64
	Zona             *string
	Manzana          string
	Lote             *string
	CantidadVotantes int
	Apoyo            string
	ComparteDatos    bool
	DNI              *string
	Celular          *string
	Whatsapp         *string
	MotivoRechazo    *string
	Prioridad        bool
	EncuestadorID    string
	EncuestadorName  string
}

// SurveyWrite carries a new canvassing point. The ID is client-supplied and
// stored verbatim. Zona and MotivoRechazo are lookup-table descriptions
// resolved to IDs at insert time; a miss stores a NULL reference.
type SurveyWrite struct {
	ID               string
	Lat              float64
	Lng              float64
	Zona             string
	Manzana          string
	Lote             *string
	CantidadVotantes int
	Apoyo            string
	ComparteDatos    bool
	DNI              *string
	Celular          *string
	Whatsapp         *string
	MotivoRechazo    *string
	Prioridad        bool
	EncuestadorID    string
	EncuestadorName  string
}
