package passwordhasher

import (
	"fmt"
	"registration/internal/core/domain/user"

	"golang.org/x/crypto/bcrypt"
)

const bcryptMaxInputLen = 72

// Bcrypt appends secret to every password before hashing. Only the first 72
// bytes of the combined value are significant; the rest is cut off.
type Bcrypt struct {
	secret string
	cost   int
}

func NewBcrypt(secret string, cost int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		panic(fmt.Sprintf("bcrypt cost must be within [%d, %d], got %d", bcrypt.MinCost, bcrypt.MaxCost, cost))
	}
	return &Bcrypt{secret: secret, cost: cost}
}

func (h *Bcrypt) HashPassword(password user.RawPassword) (hash user.PasswordHash, err error) {
	bcryptHash, err := bcrypt.GenerateFromPassword(h.input(password), h.cost)
	if err != nil {
		return hash, err
	}
	return user.PasswordHash(bcryptHash), nil
}

func (h *Bcrypt) ValidatePassword(password user.RawPassword, hash user.PasswordHash) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), h.input(password)) == nil
}

func (h *Bcrypt) input(password user.RawPassword) []byte {
	b := []byte(string(password) + h.secret)
	if len(b) > bcryptMaxInputLen {
		b = b[:bcryptMaxInputLen]
	}
	return b
}
