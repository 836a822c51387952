package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agora-gouv/agora-backend/internal/domain"
)

// SeedThematique inserts a thematique and returns its id.
func SeedThematique(t *testing.T, pool *pgxpool.Pool, label string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO thematiques (id, label, picto) VALUES ($1, $2, '')`,
		id, label,
	)
	if err != nil {
		t.Fatalf("seed thematique: %v", err)
	}

	return id
}

// QagSeed describes a qags row to insert. Zero values get defaults:
// a fresh id, status OPEN, post date now, a fixed author.
type QagSeed struct {
	ID           uuid.UUID
	ThematiqueID uuid.UUID
	Title        string
	Description  string
	AuthorID     *uuid.UUID
	Username     *string
	PostDate     time.Time
	Status       domain.QagStatus
}

// SeedQag inserts a QaG row and returns its id.
func SeedQag(t *testing.T, pool *pgxpool.Pool, seed QagSeed) uuid.UUID {
	t.Helper()

	if seed.ID == uuid.Nil {
		seed.ID = uuid.New()
	}
	if seed.Title == "" {
		seed.Title = "Pourquoi ?"
	}
	if seed.Description == "" {
		seed.Description = "Une question."
	}
	if seed.AuthorID == nil && seed.Username == nil {
		author := uuid.New()
		username := "citoyen"
		seed.AuthorID = &author
		seed.Username = &username
	}
	if seed.PostDate.IsZero() {
		seed.PostDate = time.Now()
	}
	if seed.Status == "" {
		seed.Status = domain.QagStatusOpen
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO qags (id, thematique_id, title, description, author_id, username, post_date, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		seed.ID, seed.ThematiqueID, seed.Title, seed.Description,
		seed.AuthorID, seed.Username, seed.PostDate, seed.Status.String(),
	)
	if err != nil {
		t.Fatalf("seed qag: %v", err)
	}

	return seed.ID
}

// SeedSupport inserts a support row for the (qag, user) pair.
func SeedSupport(t *testing.T, pool *pgxpool.Pool, qagID, userID uuid.UUID) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO supports_qag (qag_id, user_id) VALUES ($1, $2)`,
		qagID, userID,
	)
	if err != nil {
		t.Fatalf("seed support: %v", err)
	}
}

// SeedTextResponse attaches a TEXT official response to a QaG.
func SeedTextResponse(t *testing.T, pool *pgxpool.Pool, qagID uuid.UUID, body string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO responses_qag (id, qag_id, author, kind, text_body)
		 VALUES ($1, $2, 'Le Gouvernement', 'TEXT', $3)`,
		id, qagID, body,
	)
	if err != nil {
		t.Fatalf("seed text response: %v", err)
	}

	return id
}

// SeedVideoResponse attaches a VIDEO official response to a QaG.
func SeedVideoResponse(t *testing.T, pool *pgxpool.Pool, qagID uuid.UUID, url string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO responses_qag (id, qag_id, author, kind, video_url, video_width, video_height, transcript)
		 VALUES ($1, $2, 'Le Gouvernement', 'VIDEO', $3, 1280, 720, '')`,
		id, qagID, url,
	)
	if err != nil {
		t.Fatalf("seed video response: %v", err)
	}

	return id
}
