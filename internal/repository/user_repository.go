package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Rodger11/geo-reconexion/internal/domain"
)

// UserRepository defines persistence access for accounts.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, user domain.UserWrite) error
	Update(ctx context.Context, user domain.UserWrite) error
}

type userRepository struct {
	pool    *pgxpool.Pool
	lookups LookupRepository
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool *pgxpool.Pool, lookups LookupRepository) UserRepository {
	return &userRepository{pool: pool, lookups: lookups}
}

const userSelect = `
        SELECT u.id, u.username, u.password, u.nombre_completo, u.id_rol,
               c.descripcion, z.descripcion, u.activo
        FROM usuarios u
        LEFT JOIN cargos_partido c ON u.id_cargo = c.id
        LEFT JOIN zonas z ON u.id_zona = z.id`

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	const query = userSelect + ` WHERE u.username = $1`

	var user domain.User
	if err := r.pool.QueryRow(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.Name,
		&user.RoleCode,
		&user.Cargo,
		&user.Zona,
		&user.Active,
	); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	const query = userSelect + ` ORDER BY u.username`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.User{}
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.PasswordHash,
			&user.Name,
			&user.RoleCode,
			&user.Cargo,
			&user.Zona,
			&user.Active,
		); err != nil {
			return nil, err
		}
		result = append(result, user)
	}
	return result, rows.Err()
}

// Create resolves cargo and zone descriptions and inserts the row in one
// transaction, so a concurrent lookup-table change cannot slip between the
// resolution and the write.
func (r *userRepository) Create(ctx context.Context, user domain.UserWrite) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	cargoID, zoneID, err := r.resolveRefs(ctx, tx, user)
	if err != nil {
		return err
	}

	const query = `
        INSERT INTO usuarios (id, username, password, nombre_completo, id_rol, id_cargo, id_zona, activo)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`

	if _, err := tx.Exec(ctx, query,
		user.ID,
		user.Username,
		user.PasswordHash,
		user.Name,
		user.RoleCode,
		cargoID,
		zoneID,
		user.Active,
	); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// Update rewrites the account row, touching the password column only when a
// new hash was supplied.
func (r *userRepository) Update(ctx context.Context, user domain.UserWrite) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	cargoID, zoneID, err := r.resolveRefs(ctx, tx, user)
	if err != nil {
		return err
	}

	if user.PasswordHash != nil {
		const query = `
        UPDATE usuarios
        SET username=$1, nombre_completo=$2, id_rol=$3, id_cargo=$4, id_zona=$5, activo=$6, password=$7
        WHERE id=$8`
		tag, err := tx.Exec(ctx, query,
			user.Username, user.Name, user.RoleCode, cargoID, zoneID, user.Active, *user.PasswordHash, user.ID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}
	} else {
		const query = `
        UPDATE usuarios
        SET username=$1, nombre_completo=$2, id_rol=$3, id_cargo=$4, id_zona=$5, activo=$6
        WHERE id=$7`
		tag, err := tx.Exec(ctx, query,
			user.Username, user.Name, user.RoleCode, cargoID, zoneID, user.Active, user.ID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}
	}

	return tx.Commit(ctx)
}

func (r *userRepository) resolveRefs(ctx context.Context, q Querier, user domain.UserWrite) (*int64, *int64, error) {
	cargoID, err := r.lookups.CargoID(ctx, q, user.Cargo)
	if err != nil {
		return nil, nil, err
	}
	zoneID, err := r.lookups.ZoneID(ctx, q, user.Zona)
	if err != nil {
		return nil, nil, err
	}
	return cargoID, zoneID, nil
}
