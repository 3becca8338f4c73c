package middleware

import (
	errs "errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/conectafp/backend/internal/domain/errors"
	"github.com/conectafp/backend/internal/domain/ports"
	"github.com/conectafp/backend/internal/handlers/dto"
)

// SubjectIDKey é a chave do contexto com a identidade autenticada
const SubjectIDKey = "subjectID"

// AuthMiddleware compõe o verificador de tokens com o envelope de resposta
// para admitir ou rejeitar requisições
type AuthMiddleware struct {
	verifier ports.TokenVerifier
	logger   ports.Logger
}

// NewAuthMiddleware cria um novo AuthMiddleware
func NewAuthMiddleware(verifier ports.TokenVerifier, logger ports.Logger) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, logger: logger}
}

// Authenticate valida o header Authorization e injeta o subject no contexto.
// Rejeições saem sempre como envelope; nenhuma falha interna de autenticação
// escapa crua para a camada de transporte.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := m.verify(c)
		if err != nil {
			status := http.StatusForbidden
			if errs.Is(err, errors.ErrAuthInternal) {
				status = http.StatusInternalServerError
			}
			c.AbortWithStatusJSON(status, dto.NewErrorResponse(err))
			return
		}

		c.Set(SubjectIDKey, claims.SubjectID)
		c.Next()
	}
}

// verify executa a máquina de estados header → scheme → verificação.
// Um panic do verificador é capturado e convertido em falha interna.
func (m *AuthMiddleware) verify(c *gin.Context) (claims *ports.Claims, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			m.logger.Error("panic during authentication", "panic", rec, "path", c.Request.URL.Path)
			claims = nil
			err = errors.ErrAuthInternal
		}
	}()

	header := c.GetHeader("Authorization")
	if header == "" {
		return nil, errors.ErrMissingToken
	}

	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, errors.ErrMalformedToken
	}

	claims, verifyErr := m.verifier.Verify(parts[1])
	if verifyErr != nil {
		m.logger.Warn("token rejected", "error", verifyErr, "path", c.Request.URL.Path)
		return nil, errors.ErrInvalidToken
	}

	return claims, nil
}

// SubjectID retorna a identidade autenticada da requisição
func SubjectID(c *gin.Context) (int, bool) {
	value, exists := c.Get(SubjectIDKey)
	if !exists {
		return 0, false
	}
	id, ok := value.(int)
	return id, ok
}
