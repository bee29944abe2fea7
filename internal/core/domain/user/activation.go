package user

import "context"

type ActivationCodeGenerator interface {
	GenerateActivationCode() ActivationCode
}

type ActivationCodeSender interface {
	SendActivationCode(ctx context.Context, user User) error
}

type PasswordHasher interface {
	HashPassword(password RawPassword) (PasswordHash, error)
	ValidatePassword(password RawPassword, hash PasswordHash) bool
}
