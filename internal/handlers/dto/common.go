package dto

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/conectafp/backend/internal/pagination"
)

// DefaultSuccessMessage é a mensagem usada quando o handler não fornece uma
const DefaultSuccessMessage = "Operación exitosa"

// SuccessResponse é o envelope uniforme de sucesso.
// O campo pagination só aparece quando fornecido pelo handler.
type SuccessResponse struct {
	Success    bool                 `json:"success"`
	Message    string               `json:"message"`
	Data       any                  `json:"data"`
	Pagination *pagination.Metadata `json:"pagination,omitempty"`
}

// ErrorResponse é o envelope uniforme de erro. Nunca carrega stack traces
// nem detalhes internos; esses ficam apenas nos logs do servidor.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewSuccessResponse monta o envelope de sucesso
func NewSuccessResponse(data any, message string) SuccessResponse {
	if message == "" {
		message = DefaultSuccessMessage
	}
	return SuccessResponse{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// WithPagination anexa o bloco de paginação ao envelope
func (r SuccessResponse) WithPagination(meta pagination.Metadata) SuccessResponse {
	r.Pagination = &meta
	return r
}

// NewErrorResponse monta o envelope de erro: a mensagem é a do próprio erro
// quando o valor é um error, senão o valor cru convertido em string
func NewErrorResponse(err any) ErrorResponse {
	var message string
	if e, ok := err.(error); ok {
		message = e.Error()
	} else {
		message = fmt.Sprint(err)
	}
	return ErrorResponse{Success: false, Message: message}
}

// Success escreve o envelope de sucesso com o status informado (0 vira 200)
func Success(c *gin.Context, statusCode int, data any, message string) {
	if statusCode == 0 {
		statusCode = http.StatusOK
	}
	c.JSON(statusCode, NewSuccessResponse(data, message))
}

// SuccessPaginated escreve o envelope de sucesso com bloco de paginação
func SuccessPaginated(c *gin.Context, statusCode int, data any, message string, meta pagination.Metadata) {
	if statusCode == 0 {
		statusCode = http.StatusOK
	}
	c.JSON(statusCode, NewSuccessResponse(data, message).WithPagination(meta))
}

// SuccessWithToken escreve o envelope de sucesso emitindo a credencial
// renovada no header Authorization da resposta
func SuccessWithToken(c *gin.Context, statusCode int, data any, message string, token string) {
	if token != "" {
		c.Header("Authorization", "Bearer "+token)
	}
	Success(c, statusCode, data, message)
}

// Error escreve o envelope de erro com o status informado (0 vira 500)
func Error(c *gin.Context, statusCode int, err any) {
	if statusCode == 0 {
		statusCode = http.StatusInternalServerError
	}
	c.JSON(statusCode, NewErrorResponse(err))
}
