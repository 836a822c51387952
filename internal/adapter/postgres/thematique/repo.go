// Package thematique implements the thematique store using PostgreSQL.
package thematique

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/agora-gouv/agora-backend/internal/adapter/postgres"
	"github.com/agora-gouv/agora-backend/internal/domain"
)

// Repo provides thematique persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new thematique repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const getAllSQL = `SELECT id, label, picto FROM thematiques ORDER BY label`

// GetAll returns every thematique ordered by label.
func (r *Repo) GetAll(ctx context.Context) ([]domain.Thematique, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getAllSQL)
	if err != nil {
		return nil, fmt.Errorf("get all thematiques: %w", err)
	}
	defer rows.Close()

	var result []domain.Thematique
	for rows.Next() {
		var t domain.Thematique
		if err := rows.Scan(&t.ID, &t.Label, &t.Picto); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []domain.Thematique{}
	}

	return result, nil
}

const getByIDSQL = `SELECT id, label, picto FROM thematiques WHERE id = $1`

// GetByID returns a thematique by primary key.
// Returns domain.ErrNotFound if no row exists.
func (r *Repo) GetByID(ctx context.Context, thematiqueID uuid.UUID) (*domain.Thematique, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var t domain.Thematique
	err := querier.QueryRow(ctx, getByIDSQL, thematiqueID).Scan(&t.ID, &t.Label, &t.Picto)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("thematique %s: %w", thematiqueID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get thematique %s: %w", thematiqueID, err)
	}

	return &t, nil
}
