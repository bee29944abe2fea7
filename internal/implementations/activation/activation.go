package activation

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"registration/internal/core/domain/user"
)

var codeSpace = big.NewInt(10000)

// CodeGenerator draws activation codes uniformly from 0000..9999.
type CodeGenerator struct{}

func NewCodeGenerator() *CodeGenerator {
	return &CodeGenerator{}
}

func (g *CodeGenerator) GenerateActivationCode() user.ActivationCode {
	n, err := rand.Int(rand.Reader, codeSpace)
	if err != nil {
		// crypto/rand only fails when the OS entropy source is broken.
		panic(fmt.Sprintf("could not read random activation code: %v", err))
	}
	return formatCode(n.Int64())
}

func formatCode(n int64) user.ActivationCode {
	return user.ActivationCode(fmt.Sprintf("%0*d", user.ActivationCodeLength, n))
}
