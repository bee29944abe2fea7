package user

import (
	"errors"
	"fmt"
	c "registration/internal/core/domain/common"
)

var (
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrUserDoesNotExist      = errors.New("user does not exist")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidPassword       = errors.New("invalid password")
	ErrUserAlreadyActivated  = errors.New("user already activated")
	ErrInvalidActivationCode = errors.New("invalid activation code")
	ErrExpiredActivationCode = errors.New("expired activation code")
)

// Details is implemented by domain errors that carry data worth showing to
// the caller.
type Details interface {
	Details() map[string]interface{}
}

type EmailAlreadyExistsError struct {
	Email c.Email
}

func (e *EmailAlreadyExistsError) Error() string {
	return fmt.Sprintf("%s: %s", ErrEmailAlreadyExists, e.Email)
}

func (e *EmailAlreadyExistsError) Is(target error) bool {
	return target == ErrEmailAlreadyExists
}

func (e *EmailAlreadyExistsError) Details() map[string]interface{} {
	return map[string]interface{}{"email": string(e.Email)}
}

type UserAlreadyActivatedError struct {
	Email c.Email
}

func (e *UserAlreadyActivatedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUserAlreadyActivated, e.Email)
}

func (e *UserAlreadyActivatedError) Is(target error) bool {
	return target == ErrUserAlreadyActivated
}

func (e *UserAlreadyActivatedError) Details() map[string]interface{} {
	return map[string]interface{}{"email": string(e.Email)}
}

type InvalidActivationCodeError struct {
	Code ActivationCode
}

func (e *InvalidActivationCodeError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidActivationCode, e.Code)
}

func (e *InvalidActivationCodeError) Is(target error) bool {
	return target == ErrInvalidActivationCode
}

func (e *InvalidActivationCodeError) Details() map[string]interface{} {
	return map[string]interface{}{"code": string(e.Code)}
}

type ExpiredActivationCodeError struct {
	Code ActivationCode
}

func (e *ExpiredActivationCodeError) Error() string {
	return fmt.Sprintf("%s: %s", ErrExpiredActivationCode, e.Code)
}

func (e *ExpiredActivationCodeError) Is(target error) bool {
	return target == ErrExpiredActivationCode
}

func (e *ExpiredActivationCodeError) Details() map[string]interface{} {
	return map[string]interface{}{"code": string(e.Code)}
}

// CredentialsError wraps ErrInvalidEmail or ErrInvalidPassword together with
// the email the caller claimed.
type CredentialsError struct {
	Err   error
	Email c.Email
}

func (e *CredentialsError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err, e.Email)
}

func (e *CredentialsError) Unwrap() error {
	return e.Err
}

func (e *CredentialsError) Details() map[string]interface{} {
	return map[string]interface{}{"email": string(e.Email)}
}
