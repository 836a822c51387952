package middleware

import (
	"context"

	"github.com/agora-gouv/agora-backend/internal/domain"
	"github.com/agora-gouv/agora-backend/pkg/ctxutil"
)

// RequireAdmin returns domain.ErrForbidden if the context user is not admin.
// Use in resolver methods or REST handlers, not as HTTP middleware.
func RequireAdmin(ctx context.Context) error {
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	return nil
}
