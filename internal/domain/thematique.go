package domain

import "github.com/google/uuid"

// Thematique is the topical category applied to QaGs.
type Thematique struct {
	ID    uuid.UUID
	Label string
	Picto string
}
