package uow

import (
	"context"
	"registration/internal/core/domain/user"
)

// Context is a single store transaction. Rollback after Commit is a no-op,
// so callers defer it unconditionally.
type Context interface {
	Rollback(ctx context.Context) error
	Commit(ctx context.Context) error

	Users() user.UserRepository
}

type UnitOfWork interface {
	Begin(ctx context.Context) (Context, error)
}
