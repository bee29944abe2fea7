package passwordhasher

import (
	"fmt"
	"registration/internal/core/domain/user"

	"github.com/alexedwards/argon2id"
)

// Upper bound on the memory a stored hash may ask for, in KiB.
const argon2MaxMemoryKiB = 1 << 20

// Argon2Params are the argon2id cost parameters. Hashes remember the
// parameters they were made with, so changing them only affects new hashes.
type Argon2Params struct {
	Time      uint32
	MemoryKiB uint32
	Threads   uint8
	SaltLen   uint32
	KeyLen    uint32
}

var DefaultArgon2Params = Argon2Params{
	Time:      3,
	MemoryKiB: 64 * 1024,
	Threads:   4,
	SaltLen:   16,
	KeyLen:    32,
}

// Argon2 produces PHC-formatted argon2id hashes:
// $argon2id$v=19$m=65536,t=3,p=4$<salt>$<key>
type Argon2 struct {
	secret string
	params *argon2id.Params
}

func NewArgon2(secret string, params Argon2Params) *Argon2 {
	p := &argon2id.Params{
		Memory:      params.MemoryKiB,
		Iterations:  params.Time,
		Parallelism: params.Threads,
		SaltLength:  params.SaltLen,
		KeyLength:   params.KeyLen,
	}
	if err := checkArgon2Params(p, params.SaltLen, params.KeyLen); err != nil {
		panic(err.Error())
	}
	return &Argon2{secret: secret, params: p}
}

func (h *Argon2) HashPassword(password user.RawPassword) (hash user.PasswordHash, err error) {
	encoded, err := argon2id.CreateHash(string(password)+h.secret, h.params)
	if err != nil {
		return hash, err
	}
	return user.PasswordHash(encoded), nil
}

// ValidatePassword reports false for hashes it cannot parse or whose
// parameters are out of range.
func (h *Argon2) ValidatePassword(password user.RawPassword, hash user.PasswordHash) bool {
	params, salt, key, err := argon2id.DecodeHash(string(hash))
	if err != nil {
		return false
	}
	if checkArgon2Params(params, uint32(len(salt)), uint32(len(key))) != nil {
		return false
	}
	match, err := argon2id.ComparePasswordAndHash(string(password)+h.secret, string(hash))
	return err == nil && match
}

func checkArgon2Params(p *argon2id.Params, saltLen, keyLen uint32) error {
	switch {
	case p.Iterations < 1:
		return fmt.Errorf("argon2 time must be at least 1")
	case p.Parallelism < 1:
		return fmt.Errorf("argon2 parallelism must be at least 1")
	case p.Memory < 8*uint32(p.Parallelism) || p.Memory > argon2MaxMemoryKiB:
		return fmt.Errorf("argon2 memory %d KiB is out of range", p.Memory)
	case saltLen == 0:
		return fmt.Errorf("argon2 salt must not be empty")
	case keyLen == 0:
		return fmt.Errorf("argon2 key must not be empty")
	}
	return nil
}
