// Package support implements the support-record store using PostgreSQL.
// Uniqueness of (qag_id, user_id) is the table's primary key: concurrent
// inserts for the same pair resolve at the store, never in application code.
package support

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/agora-gouv/agora-backend/internal/adapter/postgres"
	"github.com/agora-gouv/agora-backend/internal/domain"
)

// Repo provides support-record persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new support repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const insertSQL = `INSERT INTO supports_qag (qag_id, user_id) VALUES ($1, $2)`

// Insert records a support. Returns domain.ErrAlreadyExists when the pair
// already has one (primary-key violation), including under concurrent
// duplicate requests.
func (r *Repo) Insert(ctx context.Context, qagID, userID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, insertSQL, qagID, userID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("support %s/%s: %w", qagID, userID, domain.ErrAlreadyExists)
		}
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("support %s/%s: %w", qagID, userID, domain.ErrNotFound)
		}
		return fmt.Errorf("insert support %s/%s: %w", qagID, userID, err)
	}

	return nil
}

const isSupportedSQL = `SELECT EXISTS(SELECT 1 FROM supports_qag WHERE qag_id = $1 AND user_id = $2)`

// IsSupported reports whether the user already supports the QaG.
func (r *Repo) IsSupported(ctx context.Context, qagID, userID uuid.UUID) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var supported bool
	if err := querier.QueryRow(ctx, isSupportedSQL, qagID, userID).Scan(&supported); err != nil {
		return false, fmt.Errorf("is supported %s/%s: %w", qagID, userID, err)
	}

	return supported, nil
}

const countByQagSQL = `SELECT count(*) FROM supports_qag WHERE qag_id = $1`

// CountByQag returns the number of supports for one QaG.
func (r *Repo) CountByQag(ctx context.Context, qagID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countByQagSQL, qagID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count supports for %s: %w", qagID, err)
	}

	return count, nil
}

const countsGroupedSQL = `SELECT qag_id, count(*) FROM supports_qag GROUP BY qag_id`

// CountsGrouped returns the support count per QaG for every QaG having at
// least one support.
func (r *Repo) CountsGrouped(ctx context.Context) (map[uuid.UUID]int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, countsGroupedSQL)
	if err != nil {
		return nil, fmt.Errorf("grouped support counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[uuid.UUID]int)
	for rows.Next() {
		var (
			qagID uuid.UUID
			count int
		)
		if err := rows.Scan(&qagID, &count); err != nil {
			return nil, err
		}
		counts[qagID] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}
