package domain

import (
	"time"

	"github.com/google/uuid"
)

// Qag is a citizen-submitted question awaiting moderation and, possibly,
// an official response.
type Qag struct {
	ID           uuid.UUID
	ThematiqueID uuid.UUID
	Title        string
	Description  string
	// AuthorID and Username are nil after archival anonymization.
	AuthorID *uuid.UUID
	Username *string
	PostDate time.Time
	Status   QagStatus
}

// IsAnonymized reports whether author identity has been scrubbed.
func (q Qag) IsAnonymized() bool {
	return q.AuthorID == nil && q.Username == nil
}

// QagWithSupportCount pairs a QaG with its aggregated support count,
// as surfaced by the derived list queries.
type QagWithSupportCount struct {
	Qag          Qag
	SupportCount int
}

// QagInserting carries the fields of a citizen submission before the store
// assigns an identifier and defaults the status to OPEN.
type QagInserting struct {
	ThematiqueID uuid.UUID
	Title        string
	Description  string
	AuthorID     uuid.UUID
	Username     string
}

// ArchiveResult summarizes a batch archival run.
type ArchiveResult struct {
	Anonymized int
	Archived   int
}
