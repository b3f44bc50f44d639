package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

// LookupRepository resolves human-readable descriptions to lookup-table IDs.
// A description that matches no row resolves to nil rather than an error; the
// referencing record then stores a NULL foreign key.
type LookupRepository interface {
	ZoneID(ctx context.Context, q Querier, description string) (*int64, error)
	CargoID(ctx context.Context, q Querier, description string) (*int64, error)
	RejectionReasonID(ctx context.Context, q Querier, description string) (*int64, error)
}

type lookupRepository struct{}

// NewLookupRepository returns a Postgres-backed implementation.
func NewLookupRepository() LookupRepository {
	return &lookupRepository{}
}

func (r *lookupRepository) ZoneID(ctx context.Context, q Querier, description string) (*int64, error) {
	const query = `SELECT id FROM zonas WHERE descripcion = $1`
	return resolveID(ctx, q, query, description)
}

func (r *lookupRepository) CargoID(ctx context.Context, q Querier, description string) (*int64, error) {
	const query = `SELECT id FROM cargos_partido WHERE descripcion = $1`
	return resolveID(ctx, q, query, description)
}

func (r *lookupRepository) RejectionReasonID(ctx context.Context, q Querier, description string) (*int64, error) {
	const query = `SELECT id FROM motivos_rechazo WHERE descripcion = $1`
	return resolveID(ctx, q, query, description)
}

func resolveID(ctx context.Context, q Querier, query, description string) (*int64, error) {
	if description == "" {
		return nil, nil
	}

	var id int64
	err := q.QueryRow(ctx, query, description).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &id, nil
}
