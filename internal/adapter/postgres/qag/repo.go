// Package qag implements the QaG durable store using PostgreSQL.
// It owns the qags table: item CRUD, status transitions, batch archival
// and the derived list queries (popular, latest, supported, moderation).
package qag

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/agora-gouv/agora-backend/internal/adapter/postgres"
	"github.com/agora-gouv/agora-backend/internal/domain"
)

// listLimit caps every derived list query.
const listLimit = 10

// Repo provides QaG persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new QaG repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// psql builds squirrel statements with PostgreSQL placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const qagColumns = "id, thematique_id, title, description, author_id, username, post_date, status"

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

const getByIDSQL = `SELECT ` + qagColumns + ` FROM qags WHERE id = $1`

// GetByID returns a QaG by primary key.
// Returns domain.ErrNotFound if no row exists.
func (r *Repo) GetByID(ctx context.Context, qagID uuid.UUID) (*domain.Qag, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	q, err := scanQag(querier.QueryRow(ctx, getByIDSQL, qagID))
	if err != nil {
		return nil, mapError(err, "qag", qagID)
	}

	return &q, nil
}

const getAllSQL = `SELECT ` + qagColumns + ` FROM qags ORDER BY post_date DESC`

// GetAll returns every QaG, newest first. Backs the whole-table cache.
func (r *Repo) GetAll(ctx context.Context) ([]domain.Qag, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getAllSQL)
	if err != nil {
		return nil, fmt.Errorf("get all qags: %w", err)
	}
	defer rows.Close()

	return scanQags(rows)
}

const getByIDsSQL = `SELECT ` + qagColumns + ` FROM qags WHERE id = ANY($1::uuid[])`

// GetByIDs returns the QaGs whose ids are in the given set. Missing ids are
// silently absent from the result.
func (r *Repo) GetByIDs(ctx context.Context, qagIDs []uuid.UUID) ([]domain.Qag, error) {
	if len(qagIDs) == 0 {
		return []domain.Qag{}, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getByIDsSQL, qagIDs)
	if err != nil {
		return nil, fmt.Errorf("get qags by ids: %w", err)
	}
	defer rows.Close()

	return scanQags(rows)
}

const openForModerationSQL = `
SELECT ` + qagColumns + ` FROM qags
WHERE status = 'OPEN'
AND NOT EXISTS (SELECT 1 FROM responses_qag r WHERE r.qag_id = qags.id)
ORDER BY post_date ASC
LIMIT $1`

// OpenForModeration returns the oldest OPEN QaGs without an official
// response, up to limit. Lock filtering happens in the service layer.
func (r *Repo) OpenForModeration(ctx context.Context, limit int) ([]domain.Qag, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, openForModerationSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("get moderation candidates: %w", err)
	}
	defer rows.Close()

	return scanQags(rows)
}

// ---------------------------------------------------------------------------
// Derived list queries (squirrel-built: the thematique filter is optional)
// ---------------------------------------------------------------------------

// listQuery is the shared base for derived lists: QaGs without an official
// response, joined with their aggregated support counts.
func listQuery() sq.SelectBuilder {
	return psql.
		Select(
			"q.id", "q.thematique_id", "q.title", "q.description",
			"q.author_id", "q.username", "q.post_date", "q.status",
			"COALESCE(sc.support_count, 0) AS support_count",
		).
		From("qags q").
		LeftJoin("(SELECT qag_id, count(*) AS support_count FROM supports_qag GROUP BY qag_id) sc ON sc.qag_id = q.id").
		Where("NOT EXISTS (SELECT 1 FROM responses_qag r WHERE r.qag_id = q.id)").
		Where(sq.NotEq{"q.status": []string{
			string(domain.QagStatusModeratedRejected),
			string(domain.QagStatusArchived),
		}}).
		Limit(listLimit)
}

// Popular returns the most supported QaGs, optionally within a thematique.
func (r *Repo) Popular(ctx context.Context, thematiqueID *uuid.UUID) ([]domain.QagWithSupportCount, error) {
	query := listQuery().OrderBy("support_count DESC", "q.post_date DESC")
	if thematiqueID != nil {
		query = query.Where(sq.Eq{"q.thematique_id": *thematiqueID})
	}

	return r.runListQuery(ctx, query, "popular")
}

// Latest returns the most recent QaGs, optionally within a thematique.
func (r *Repo) Latest(ctx context.Context, thematiqueID *uuid.UUID) ([]domain.QagWithSupportCount, error) {
	query := listQuery().OrderBy("q.post_date DESC")
	if thematiqueID != nil {
		query = query.Where(sq.Eq{"q.thematique_id": *thematiqueID})
	}

	return r.runListQuery(ctx, query, "latest")
}

// Supported returns the QaGs a user has supported, newest first,
// optionally within a thematique.
func (r *Repo) Supported(ctx context.Context, userID uuid.UUID, thematiqueID *uuid.UUID) ([]domain.QagWithSupportCount, error) {
	query := listQuery().
		Where("q.id IN (SELECT qag_id FROM supports_qag WHERE user_id = ?)", userID).
		OrderBy("q.post_date DESC")
	if thematiqueID != nil {
		query = query.Where(sq.Eq{"q.thematique_id": *thematiqueID})
	}

	return r.runListQuery(ctx, query, "supported")
}

func (r *Repo) runListQuery(ctx context.Context, query sq.SelectBuilder, kind string) ([]domain.QagWithSupportCount, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s list query: %w", kind, err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s list: %w", kind, err)
	}
	defer rows.Close()

	return scanQagsWithSupportCount(rows)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const insertSQL = `
INSERT INTO qags (thematique_id, title, description, author_id, username)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + qagColumns

// Insert persists a citizen submission. The store assigns the id, the post
// date and defaults the status to OPEN; the persisted row is returned.
func (r *Repo) Insert(ctx context.Context, ins domain.QagInserting) (*domain.Qag, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	q, err := scanQag(querier.QueryRow(ctx, insertSQL,
		ins.ThematiqueID, ins.Title, ins.Description, ins.AuthorID, ins.Username,
	))
	if err != nil {
		return nil, mapError(err, "qag", uuid.Nil)
	}

	return &q, nil
}

const updateStatusSQL = `UPDATE qags SET status = $2 WHERE id = $1`

// UpdateStatus sets the status of a QaG and returns the number of rows
// affected. The transition legality check belongs to the service layer.
func (r *Repo) UpdateStatus(ctx context.Context, qagID uuid.UUID, status domain.QagStatus) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, updateStatusSQL, qagID, status.String())
	if err != nil {
		return 0, mapError(err, "qag", qagID)
	}

	return tag.RowsAffected(), nil
}

const deleteSQL = `DELETE FROM qags WHERE id = $1`

// Delete hard-deletes a QaG and returns the number of rows affected.
// Supports and responses go with it via ON DELETE CASCADE.
func (r *Repo) Delete(ctx context.Context, qagID uuid.UUID) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, qagID)
	if err != nil {
		return 0, mapError(err, "qag", qagID)
	}

	return tag.RowsAffected(), nil
}

const archiveBeforeSQL = `
UPDATE qags SET status = 'ARCHIVED'
WHERE post_date < $1
AND status IN ('OPEN', 'MODERATED_ACCEPTED', 'SELECTED_FOR_RESPONSE')`

// ArchiveBefore archives every non-terminal, non-rejected QaG created before
// cutoff. Each row is updated atomically; the batch as a whole is not.
func (r *Repo) ArchiveBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, archiveBeforeSQL, cutoff)
	if err != nil {
		return 0, fmt.Errorf("archive before %s: %w", cutoff.Format(time.RFC3339), err)
	}

	return tag.RowsAffected(), nil
}

const anonymizeRejectedBeforeSQL = `
UPDATE qags SET status = 'ARCHIVED', author_id = NULL, username = NULL, description = ''
WHERE post_date < $1
AND status = 'MODERATED_REJECTED'`

// AnonymizeRejectedBefore archives rejected QaGs created before cutoff,
// scrubbing author identity and content in the same row update.
func (r *Repo) AnonymizeRejectedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, anonymizeRejectedBeforeSQL, cutoff)
	if err != nil {
		return 0, fmt.Errorf("anonymize rejected before %s: %w", cutoff.Format(time.RFC3339), err)
	}

	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQag(row rowScanner) (domain.Qag, error) {
	var (
		q        domain.Qag
		status   string
		authorID pgtype.UUID
		username pgtype.Text
	)

	if err := row.Scan(
		&q.ID, &q.ThematiqueID, &q.Title, &q.Description,
		&authorID, &username, &q.PostDate, &status,
	); err != nil {
		return domain.Qag{}, err
	}

	q.Status = domain.QagStatus(status)
	if authorID.Valid {
		id := uuid.UUID(authorID.Bytes)
		q.AuthorID = &id
	}
	if username.Valid {
		q.Username = &username.String
	}

	return q, nil
}

func scanQags(rows pgx.Rows) ([]domain.Qag, error) {
	var result []domain.Qag
	for rows.Next() {
		q, err := scanQag(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []domain.Qag{}
	}

	return result, nil
}

func scanQagsWithSupportCount(rows pgx.Rows) ([]domain.QagWithSupportCount, error) {
	var result []domain.QagWithSupportCount
	for rows.Next() {
		var (
			q            domain.Qag
			status       string
			authorID     pgtype.UUID
			username     pgtype.Text
			supportCount int
		)

		if err := rows.Scan(
			&q.ID, &q.ThematiqueID, &q.Title, &q.Description,
			&authorID, &username, &q.PostDate, &status,
			&supportCount,
		); err != nil {
			return nil, err
		}

		q.Status = domain.QagStatus(status)
		if authorID.Valid {
			id := uuid.UUID(authorID.Bytes)
			q.AuthorID = &id
		}
		if username.Valid {
			q.Username = &username.String
		}

		result = append(result, domain.QagWithSupportCount{Qag: q, SupportCount: supportCount})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []domain.QagWithSupportCount{}
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}
