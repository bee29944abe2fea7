package passwordhasher

import (
	"fmt"
	"registration/internal/core/domain/user"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Cheap parameters keep the tests fast.
var testArgon2Params = Argon2Params{Time: 1, MemoryKiB: 1024, Threads: 1, SaltLen: 16, KeyLen: 32}

type hasherFactory func(secret string) user.PasswordHasher

var hashers = map[string]hasherFactory{
	"bcrypt": func(secret string) user.PasswordHasher { return NewBcrypt(secret, 5) },
	"argon2": func(secret string) user.PasswordHasher { return NewArgon2(secret, testArgon2Params) },
}

func TestPasswordValid(t *testing.T) {
	type testcase struct {
		ix       int
		secret   string
		password string
	}
	cases := []testcase{
		{ix: 1, secret: "test", password: "test"},
		{ix: 2, secret: "", password: "p1"},
		{ix: 3, secret: "a", password: "password password"},
		{ix: 4, secret: "   b   ", password: "   test   "},
		{ix: 5, secret: "", password: "пароль"},
	}
	for name, newHasher := range hashers {
		for _, c := range cases {
			t.Run(fmt.Sprintf("%s/%d", name, c.ix), func(t *testing.T) {
				h := newHasher(c.secret)
				hash, err := h.HashPassword(user.RawPassword(c.password))
				if err != nil {
					t.Fatalf("could not hash password: %v, %v", c.password, err)
				}
				if hash == user.PasswordHash("") {
					t.Fatal("hash must not be empty")
				}
				if string(hash) == c.password {
					t.Fatal("hash must differ from the password")
				}
				if !h.ValidatePassword(user.RawPassword(c.password), hash) {
					t.Fatalf("password check failed: %v", c.password)
				}
			})
		}
	}
}

func TestPasswordInvalid(t *testing.T) {
	type testcase struct {
		ix              int
		secretToHash    string
		secretToCheck   string
		passwordToHash  string
		passwordToCheck string
	}
	cases := []testcase{
		{ix: 1, secretToHash: "test", secretToCheck: "test", passwordToHash: "test", passwordToCheck: "test "},
		{ix: 2, secretToHash: "test", secretToCheck: "test ", passwordToHash: "test", passwordToCheck: "test"},
		{ix: 3, secretToHash: "", secretToCheck: "", passwordToHash: "p1", passwordToCheck: "P1"},
		{ix: 4, secretToHash: "", secretToCheck: " ", passwordToHash: "p1", passwordToCheck: "p1"},
		{ix: 5, secretToHash: "a", secretToCheck: "a", passwordToHash: "password", passwordToCheck: " password"},
	}
	for name, newHasher := range hashers {
		for _, c := range cases {
			t.Run(fmt.Sprintf("%s/%d", name, c.ix), func(t *testing.T) {
				hash, err := newHasher(c.secretToHash).HashPassword(user.RawPassword(c.passwordToHash))
				if err != nil {
					t.Fatalf("could not hash password: %v, %v", c.passwordToHash, err)
				}
				if newHasher(c.secretToCheck).ValidatePassword(user.RawPassword(c.passwordToCheck), hash) {
					t.Fatalf("password check passed: %v, %v", c.passwordToHash, c.passwordToCheck)
				}
			})
		}
	}
}

func TestHashesAreSalted(t *testing.T) {
	for name, newHasher := range hashers {
		t.Run(name, func(t *testing.T) {
			h := newHasher("")
			first, err := h.HashPassword("p1")
			assert.Nil(t, err)
			second, err := h.HashPassword("p1")
			assert.Nil(t, err)
			assert.NotEqual(t, first, second)
		})
	}
}

func TestArgon2HashFormat(t *testing.T) {
	hash, err := NewArgon2("", testArgon2Params).HashPassword("p1")
	assert.Nil(t, err)
	assert.True(t, strings.HasPrefix(string(hash), "$argon2id$v=19$m=1024,t=1,p=1$"), string(hash))
	assert.Len(t, strings.Split(string(hash), "$"), 6)
}

func TestArgon2KeepsParametersOfStoredHash(t *testing.T) {
	hash, err := NewArgon2("", testArgon2Params).HashPassword("p1")
	assert.Nil(t, err)

	stronger := testArgon2Params
	stronger.Time = 2
	assert.True(t, NewArgon2("", stronger).ValidatePassword("p1", hash))
}

func TestArgon2RejectsMalformedHashes(t *testing.T) {
	h := NewArgon2("", testArgon2Params)
	for _, hash := range []string{
		"",
		"p1",
		"$argon2i$v=19$m=1024,t=1,p=1$c2FsdA$a2V5",
		"$argon2id$v=18$m=1024,t=1,p=1$c2FsdA$a2V5",
		"$argon2id$v=19$m=x,t=1,p=1$c2FsdA$a2V5",
		"$argon2id$v=19$m=1024,t=1,p=1$!!!$a2V5",
		"$argon2id$v=19$m=1024,t=1,p=1$c2FsdA$",
		"$argon2id$v=19$m=1024,t=0,p=1$c2FsdHNhbHQ$a2V5a2V5",
		"$argon2id$v=19$m=1024,t=1,p=0$c2FsdHNhbHQ$a2V5a2V5",
		"$argon2id$v=19$m=0,t=1,p=1$c2FsdHNhbHQ$a2V5a2V5",
		"$argon2id$v=19$m=4,t=1,p=1$c2FsdHNhbHQ$a2V5a2V5",
		"$argon2id$v=19$m=4194304,t=1,p=1$c2FsdHNhbHQ$a2V5a2V5",
		"$argon2id$v=19$m=4294967296,t=1,p=1$c2FsdHNhbHQ$a2V5a2V5",
		"$argon2id$v=19$m=1024,t=1,p=256$c2FsdHNhbHQ$a2V5a2V5",
		"$argon2id$v=19$m=1024,t=1,p=1$$a2V5a2V5",
	} {
		assert.False(t, h.ValidatePassword("p1", user.PasswordHash(hash)), hash)
	}
}

func TestArgon2RejectsInvalidParams(t *testing.T) {
	for _, params := range []Argon2Params{
		{Time: 0, MemoryKiB: 1024, Threads: 1, SaltLen: 16, KeyLen: 32},
		{Time: 1, MemoryKiB: 1024, Threads: 0, SaltLen: 16, KeyLen: 32},
		{Time: 1, MemoryKiB: 4, Threads: 1, SaltLen: 16, KeyLen: 32},
		{Time: 1, MemoryKiB: 1024, Threads: 1, SaltLen: 0, KeyLen: 32},
		{Time: 1, MemoryKiB: 1024, Threads: 1, SaltLen: 16, KeyLen: 0},
	} {
		assert.Panics(t, func() { NewArgon2("", params) }, "%+v", params)
	}
}

func TestBcryptHashIsNotAcceptedByArgon2(t *testing.T) {
	hash, err := NewBcrypt("", 5).HashPassword("p1")
	assert.Nil(t, err)
	assert.False(t, NewArgon2("", testArgon2Params).ValidatePassword("p1", hash))
}

func TestBcryptRejectsInvalidCost(t *testing.T) {
	assert.Panics(t, func() { NewBcrypt("", 1) })
	assert.Panics(t, func() { NewBcrypt("", 40) })
}

func TestBcryptAcceptsLongPasswords(t *testing.T) {
	h := NewBcrypt("secret", 5)
	password := user.RawPassword(strings.Repeat("p", 100))

	hash, err := h.HashPassword(password)

	assert.Nil(t, err)
	assert.True(t, h.ValidatePassword(password, hash))
}
