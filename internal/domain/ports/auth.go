package ports

import "time"

// Claims é o payload decodificado e verificado de um token
type Claims struct {
	SubjectID int
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenVerifier valida um token assinado e extrai os claims de identidade.
// Qualquer violação de assinatura, estrutura ou expiração resulta em
// errors.ErrInvalidToken. Função pura em relação ao relógio; sem estado entre chamadas.
type TokenVerifier interface {
	Verify(token string) (*Claims, error)
}

// PasswordHasher aplica hash one-way com salt por chamada.
// Verify nunca retorna erro: qualquer falha interna resulta em false,
// e o detalhe é registrado pelo chamador, nunca exposto ao usuário final.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) bool
}
