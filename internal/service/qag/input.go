package qag

import (
	"strings"

	"github.com/google/uuid"

	"github.com/agora-gouv/agora-backend/internal/domain"
)

// SubmitQagInput holds the parameters of a citizen submission.
type SubmitQagInput struct {
	ThematiqueID uuid.UUID
	Title        string
	Description  string
	AuthorID     uuid.UUID
	Username     string
}

// Validate checks all fields and collects all errors.
func (i SubmitQagInput) Validate() error {
	var errs []domain.FieldError

	if i.ThematiqueID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "thematique_id", Message: "required"})
	}

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > 200 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}

	description := strings.TrimSpace(i.Description)
	if description == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
	}
	if len(description) > 400 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 400 characters"})
	}

	if i.AuthorID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "author_id", Message: "required"})
	}

	username := strings.TrimSpace(i.Username)
	if username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if len(username) > 50 {
		errs = append(errs, domain.FieldError{Field: "username", Message: "max 50 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
