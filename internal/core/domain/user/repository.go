package user

import (
	"context"
	c "registration/internal/core/domain/common"
	"time"
)

type CreateUserInput struct {
	Email               c.Email
	PasswordHash        PasswordHash
	ActivationCode      ActivationCode
	ActivationExpiresAt time.Time
	CreatedAt           time.Time
}

type UserRepository interface {
	// Create assigns a fresh ID. It fails with EmailAlreadyExistsError when
	// the email is taken.
	Create(ctx context.Context, input CreateUserInput) (User, error)
	// GetByEmail fails with ErrUserDoesNotExist when nothing matches.
	GetByEmail(ctx context.Context, email c.Email) (User, error)
	// Activate marks the user active unconditionally; callers check
	// IsActive beforehand.
	Activate(ctx context.Context, id ID) (User, error)
}
