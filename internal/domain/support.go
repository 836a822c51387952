package domain

import (
	"time"

	"github.com/google/uuid"
)

// Support records a user's endorsement of a QaG.
// At most one support exists per (QagID, UserID) pair; the store enforces
// the uniqueness, not application-level checks.
type Support struct {
	QagID     uuid.UUID
	UserID    uuid.UUID
	CreatedAt time.Time
}
