package user

import (
	"context"
	"crypto/md5"
	"fmt"
	"io"
	c "registration/internal/core/domain/common"
	"sync"

	"github.com/google/uuid"
)

type FakeActivationCodeSender struct {
	Sent        []User
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeActivationCodeSender() *FakeActivationCodeSender {
	return &FakeActivationCodeSender{}
}

func (s *FakeActivationCodeSender) SendActivationCode(ctx context.Context, user User) error {
	if s.ReturnError {
		return fmt.Errorf("could not send activation code to %s", user.Email)
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Sent = append(s.Sent, user)
	return nil
}

func (s *FakeActivationCodeSender) SentCount() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.Sent)
}

func (s *FakeActivationCodeSender) LastSentTo() User {
	s.lock.Lock()
	defer s.lock.Unlock()
	l := len(s.Sent)
	if l == 0 {
		panic("Sent count is 0.")
	}
	return s.Sent[l-1]
}

type FakeActivationCodeGenerator struct {
	Code ActivationCode
}

func NewFakeActivationCodeGenerator(code string) *FakeActivationCodeGenerator {
	return &FakeActivationCodeGenerator{Code: ActivationCode(code)}
}

func (g *FakeActivationCodeGenerator) GenerateActivationCode() ActivationCode {
	return g.Code
}

type FakePasswordHasher struct {
	ReturnError bool
}

func NewFakePasswordHasher() *FakePasswordHasher {
	return &FakePasswordHasher{}
}

func (h *FakePasswordHasher) HashPassword(password RawPassword) (PasswordHash, error) {
	if h.ReturnError {
		return PasswordHash(""), fmt.Errorf("could not hash password")
	}
	hash := md5.New()
	io.WriteString(hash, string(password))
	return PasswordHash(fmt.Sprintf("%x", hash.Sum(nil))), nil
}

func (h *FakePasswordHasher) ValidatePassword(password RawPassword, hash PasswordHash) bool {
	actualHash, err := h.HashPassword(password)
	if err != nil {
		return false
	}
	return actualHash == hash
}

type FakeUserRepository struct {
	Users       []User
	ReturnError bool
	// Returned by Create when set; lookups still succeed.
	CreateReturnsError error
	lock               sync.Mutex
}

func NewFakeUserRepository() *FakeUserRepository {
	return &FakeUserRepository{Users: make([]User, 0, 10)}
}

func (r *FakeUserRepository) Create(ctx context.Context, input CreateUserInput) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not create user %s", input.Email)
	}
	if r.CreateReturnsError != nil {
		return u, r.CreateReturnsError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, existing := range r.Users {
		if existing.Email == input.Email {
			return u, &EmailAlreadyExistsError{Email: input.Email}
		}
	}
	u = User{
		ID:                  uuid.New(),
		Email:               input.Email,
		PasswordHash:        input.PasswordHash,
		ActivationCode:      input.ActivationCode,
		ActivationExpiresAt: input.ActivationExpiresAt,
		CreatedAt:           input.CreatedAt,
	}
	r.Users = append(r.Users, u)
	return u, nil
}

func (r *FakeUserRepository) GetByEmail(ctx context.Context, email c.Email) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not get user %s", email)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) Activate(ctx context.Context, id ID) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not activate user %s", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.ID == id {
			r.Users[ix].IsActive = true
			return r.Users[ix], nil
		}
	}
	return u, ErrUserDoesNotExist
}
