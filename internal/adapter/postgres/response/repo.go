// Package response implements the official-response store using PostgreSQL.
package response

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/agora-gouv/agora-backend/internal/adapter/postgres"
	"github.com/agora-gouv/agora-backend/internal/domain"
)

// Repo provides official-response persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new response repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const responseColumns = "id, qag_id, author, post_date, kind, text_body, video_url, video_width, video_height, transcript"

const getByQagIDSQL = `SELECT ` + responseColumns + ` FROM responses_qag WHERE qag_id = $1`

// GetByQagID returns the official response attached to a QaG.
// Returns domain.ErrNotFound when the QaG has no response.
func (r *Repo) GetByQagID(ctx context.Context, qagID uuid.UUID) (*domain.Response, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		resp       domain.Response
		kind       string
		text       pgtype.Text
		videoURL   pgtype.Text
		videoW     pgtype.Int4
		videoH     pgtype.Int4
		transcript pgtype.Text
	)

	err := querier.QueryRow(ctx, getByQagIDSQL, qagID).Scan(
		&resp.ID, &resp.QagID, &resp.Author, &resp.PostDate, &kind,
		&text, &videoURL, &videoW, &videoH, &transcript,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("response for qag %s: %w", qagID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get response for qag %s: %w", qagID, err)
	}

	resp.Kind = domain.ResponseKind(kind)
	if text.Valid {
		resp.Text = text.String
	}
	if videoURL.Valid {
		resp.VideoURL = videoURL.String
	}
	if videoW.Valid {
		resp.VideoWidth = int(videoW.Int32)
	}
	if videoH.Valid {
		resp.VideoHeight = int(videoH.Int32)
	}
	if transcript.Valid {
		resp.Transcript = transcript.String
	}

	return &resp, nil
}

const existsByQagIDSQL = `SELECT EXISTS(SELECT 1 FROM responses_qag WHERE qag_id = $1)`

// ExistsByQagID reports whether a QaG carries an official response.
func (r *Repo) ExistsByQagID(ctx context.Context, qagID uuid.UUID) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := querier.QueryRow(ctx, existsByQagIDSQL, qagID).Scan(&exists); err != nil {
		return false, fmt.Errorf("response exists for qag %s: %w", qagID, err)
	}

	return exists, nil
}

const existingQagIDsSQL = `SELECT qag_id FROM responses_qag WHERE qag_id = ANY($1::uuid[])`

// ExistingQagIDs returns, out of the given set, the ids of QaGs that carry
// an official response. Backs the batch eligibility check on list reads.
func (r *Repo) ExistingQagIDs(ctx context.Context, qagIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	if len(qagIDs) == 0 {
		return map[uuid.UUID]bool{}, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, existingQagIDsSQL, qagIDs)
	if err != nil {
		return nil, fmt.Errorf("responses for qag ids: %w", err)
	}
	defer rows.Close()

	result := make(map[uuid.UUID]bool, len(qagIDs))
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		result[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
