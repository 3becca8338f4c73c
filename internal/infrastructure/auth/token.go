package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/conectafp/backend/internal/domain/errors"
	"github.com/conectafp/backend/internal/domain/ports"
)

// tokenClaims é o payload esperado nos tokens emitidos para a API
type tokenClaims struct {
	UserID int `json:"userId"`
	jwt.RegisteredClaims
}

// JWTVerifier implementa ports.TokenVerifier sobre HMAC (HS256).
// Apenas verificação: emissão e refresh de tokens ficam fora deste núcleo.
type JWTVerifier struct {
	secret []byte
}

// NewJWTVerifier cria um verificador com o segredo do processo
func NewJWTVerifier(secret string) ports.TokenVerifier {
	return &JWTVerifier{secret: []byte(secret)}
}

// Verify valida assinatura e expiração e extrai os claims de identidade.
// Qualquer assinatura inválida, estrutura malformada ou token expirado
// resulta em errors.ErrInvalidToken; o detalhe fica embrulhado para logs.
func (v *JWTVerifier) Verify(token string) (*ports.Claims, error) {
	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, &errors.DomainError{Kind: errors.ErrInvalidToken, Err: err}
	}
	if !parsed.Valid || claims.UserID <= 0 {
		return nil, &errors.DomainError{Kind: errors.ErrInvalidToken}
	}

	result := &ports.Claims{SubjectID: claims.UserID}
	if claims.IssuedAt != nil {
		result.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		result.ExpiresAt = claims.ExpiresAt.Time
	}
	return result, nil
}

// Sign emite um token HS256 para o subject informado. Usado apenas em testes
// e ferramentas internas; nenhum endpoint emite tokens.
func Sign(secret string, subjectID int, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &tokenClaims{
		UserID: subjectID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
