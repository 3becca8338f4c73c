package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/conectafp/backend/internal/domain/ports"
)

// BcryptHasher implementa ports.PasswordHasher usando bcrypt.
// O salt é gerado por chamada e embutido no valor hasheado: dois hashes
// do mesmo plaintext diferem entre si.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher cria um hasher com o custo padrão (10 rounds)
func NewBcryptHasher() ports.PasswordHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

// NewBcryptHasherWithCost cria um hasher com custo explícito.
// Custos fora da faixa do bcrypt caem no padrão.
func NewBcryptHasherWithCost(cost int) ports.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify retorna false para senha incorreta E para hash malformado,
// sem distinguir os casos para o chamador externo (evita oráculos).
func (h *BcryptHasher) Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
