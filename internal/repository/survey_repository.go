package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Rodger11/geo-reconexion/internal/domain"
)

// SurveyRepository defines persistence access for canvassing points.
type SurveyRepository interface {
	List(ctx context.Context) ([]domain.Survey, error)
	Insert(ctx context.Context, survey domain.SurveyWrite) error
}

type surveyRepository struct {
	pool    *pgxpool.Pool
	lookups LookupRepository
}

// NewSurveyRepository returns a Postgres-backed implementation.
func NewSurveyRepository(pool *pgxpool.Pool, lookups LookupRepository) SurveyRepository {
	return &surveyRepository{pool: pool, lookups: lookups}
}

func (r *surveyRepository) List(ctx context.Context) ([]domain.Survey, error) {
	const query = `
        SELECT e.id, e.fecha_hora, e.latitud, e.longitud, z.descripcion,
               e.manzana, e.lote, e.cantidad_votantes, e.apoyo, e.comparte_datos,
               e.dni, e.celular, e.whatsapp, m.descripcion, e.prioridad,
               e.id_encuestador, e.nombre_encuestador
        FROM encuestas e
        LEFT JOIN zonas z ON e.id_zona = z.id
        LEFT JOIN motivos_rechazo m ON e.id_motivo_rechazo = m.id
        ORDER BY e.fecha_hora DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Survey{}
	for rows.Next() {
		var survey domain.Survey
		if err := rows.Scan(
			&survey.ID,
			&survey.RecordedAt,
			&survey.Lat,
			&survey.Lng,
			&survey.Zona,
			&survey.Manzana,
			&survey.Lote,
			&survey.CantidadVotantes,
			&survey.Apoyo,
			&survey.ComparteDatos,
			&survey.DNI,
			&survey.Celular,
			&survey.Whatsapp,
			&survey.MotivoRechazo,
			&survey.Prioridad,
			&survey.EncuestadorID,
			&survey.EncuestadorName,
		); err != nil {
			return nil, err
		}
		result = append(result, survey)
	}
	return result, rows.Err()
}

// Insert resolves the zone and rejection-reason descriptions and writes the
// row in one transaction. Lookup misses store NULL references; a duplicate
// client-supplied ID fails on the primary key.
func (r *surveyRepository) Insert(ctx context.Context, survey domain.SurveyWrite) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	zoneID, err := r.lookups.ZoneID(ctx, tx, survey.Zona)
	if err != nil {
		return err
	}

	var motivoID *int64
	if survey.MotivoRechazo != nil {
		motivoID, err = r.lookups.RejectionReasonID(ctx, tx, *survey.MotivoRechazo)
		if err != nil {
			return err
		}
	}

	const query = `
        INSERT INTO encuestas
            (id, latitud, longitud, id_zona, manzana, lote, cantidad_votantes, apoyo,
             comparte_datos, dni, celular, whatsapp, id_motivo_rechazo, prioridad,
             id_encuestador, nombre_encuestador)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)`

	if _, err := tx.Exec(ctx, query,
		survey.ID,
		survey.Lat,
		survey.Lng,
		zoneID,
		survey.Manzana,
		survey.Lote,
		survey.CantidadVotantes,
		survey.Apoyo,
		survey.ComparteDatos,
		survey.DNI,
		survey.Celular,
		survey.Whatsapp,
		motivoID,
		survey.Prioridad,
		survey.EncuestadorID,
		survey.EncuestadorName,
	); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
