package user

import (
	c "registration/internal/core/domain/common"
	e "registration/internal/core/domain/errors"
	"time"

	"github.com/google/uuid"
)

type ID = uuid.UUID

type PasswordHash string

func (p PasswordHash) String() string {
	return "***"
}

type RawPassword string

func (p RawPassword) String() string {
	return "***"
}

const ActivationCodeLength = 4

// ActivationCode is a zero-padded decimal number in [0000, 9999].
type ActivationCode string

func (c ActivationCode) IsWellFormed() bool {
	if len(c) != ActivationCodeLength {
		return false
	}
	for _, r := range c {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

type Status string

const (
	StatusCreated   Status = "created"
	StatusActivated Status = "activated"
)

type User struct {
	ID                  ID
	Email               c.Email
	PasswordHash        PasswordHash
	IsActive            bool
	ActivationCode      ActivationCode
	ActivationExpiresAt time.Time
	CreatedAt           time.Time
}

func (u *User) Validate() error {
	if u.Email == "" {
		return e.NewInvalidStateError("email is not set for user %s", u.ID)
	}
	if u.PasswordHash == "" {
		return e.NewInvalidStateError("password hash is not set for user %s", u.ID)
	}
	if !u.ActivationCode.IsWellFormed() {
		return e.NewInvalidStateError("activation code of user %s is malformed", u.ID)
	}
	return nil
}

// IsActivationCodeExpired reports whether the code can no longer be used at
// the given moment. The expiry instant itself is already too late.
func (u *User) IsActivationCodeExpired(now time.Time) bool {
	return !now.Before(u.ActivationExpiresAt)
}

func (u *User) Status() Status {
	if u.IsActive {
		return StatusActivated
	}
	return StatusCreated
}
