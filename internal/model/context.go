package model

import (
	"context"

	"github.com/google/uuid"
)

// ContextManager propagates the authenticated user identity through
// request contexts.
type ContextManager interface {
	SetUserToContext(ctx context.Context, userID uuid.UUID, username string) context.Context
	GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool)
	GetUsernameFromContext(ctx context.Context) (string, bool)
}
