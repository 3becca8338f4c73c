package errors

import "errors"

// Erros de autenticação
// Nota: as mensagens são o texto exato devolvido ao cliente no envelope.
var (
	ErrMissingToken   = errors.New("Token no proporcionado")
	ErrMalformedToken = errors.New("Formato de token inválido")
	ErrInvalidToken   = errors.New("Token inválido")
	ErrAuthInternal   = errors.New("Error en la autenticación")
)

// Erros de negócio
var (
	ErrUserNotFound  = errors.New("Usuario no encontrado")
	ErrEmailTaken    = errors.New("El email ya está en uso")
	ErrUsernameTaken = errors.New("El nombre de usuario ya está en uso")

	// ErrConflict é a decisão de unicidade do próprio store: a checagem
	// check-then-create não é atômica e o índice único é a palavra final.
	ErrConflict = errors.New("El email o nombre de usuario ya está en uso")

	ErrValidation = errors.New("Datos de usuario inválidos")
)

// DomainError representa um erro de domínio com contexto adicional
type DomainError struct {
	Kind    error
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Kind.Error()
}

// Unwrap permite errors.Is contra o sentinel correspondente
func (e *DomainError) Unwrap() error {
	return e.Kind
}

// NewValidationError embrulha um erro do validador como falha de shape.
// O detalhe fica disponível via Unwrap para logs; a mensagem ao cliente é genérica.
func NewValidationError(err error) *DomainError {
	return &DomainError{Kind: ErrValidation, Err: err}
}
