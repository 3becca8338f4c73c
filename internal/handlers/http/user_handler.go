package http

import (
	errs "errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/conectafp/backend/internal/domain/errors"
	"github.com/conectafp/backend/internal/domain/ports"
	"github.com/conectafp/backend/internal/handlers/dto"
	"github.com/conectafp/backend/internal/pagination"
	"github.com/conectafp/backend/internal/services"
)

// UserHandler lida com requisições HTTP relacionadas a usuários
type UserHandler struct {
	userService *services.UserService
	logger      ports.Logger
}

// NewUserHandler cria um novo UserHandler
func NewUserHandler(userService *services.UserService, logger ports.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// ListUsers lista usuários ativos com paginação
func (h *UserHandler) ListUsers(c *gin.Context) {
	params := pagination.Normalize(c.Query("page"), c.Query("limit"))

	users, meta, err := h.userService.List(c.Request.Context(), params)
	if err != nil {
		h.respondError(c, err)
		return
	}

	dto.SuccessPaginated(c, http.StatusOK, dto.ToUserResponses(users), "", meta)
}

// GetUser busca um usuário ativo por ID
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	user, err := h.userService.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	dto.Success(c, http.StatusOK, dto.ToUserResponse(user), "")
}

// CreateUser registra um novo usuário
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("invalid create user payload", "error", err)
		dto.Error(c, http.StatusBadRequest, errors.ErrValidation)
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req.ToEntity(), req.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	dto.Success(c, http.StatusCreated, dto.ToUserResponse(user), "Usuario creado")
}

// UpdateUser aplica uma atualização parcial sobre um usuário
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("invalid update user payload", "error", err)
		dto.Error(c, http.StatusBadRequest, errors.ErrValidation)
		return
	}

	user, err := h.userService.Update(c.Request.Context(), id, req.ToChanges())
	if err != nil {
		h.respondError(c, err)
		return
	}

	dto.Success(c, http.StatusOK, dto.ToUserResponse(user), "Usuario actualizado")
}

// DeleteUser remove logicamente um usuário
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	user, err := h.userService.Delete(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	dto.Success(c, http.StatusOK, dto.ToUserResponse(user), "Usuario eliminado")
}

// pathID extrai o id numérico da rota; ausência ou valor não numérico é 400
func (h *UserHandler) pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		dto.Error(c, http.StatusBadRequest, "Valor Faltante: id")
		return 0, false
	}
	return id, true
}

// respondError mapeia erros de domínio para o envelope com o status
// apropriado. Falhas inesperadas viram 500 com mensagem genérica; o detalhe
// fica apenas no log do servidor.
func (h *UserHandler) respondError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errors.ErrUserNotFound):
		dto.Error(c, http.StatusNotFound, err)
	case errs.Is(err, errors.ErrEmailTaken),
		errs.Is(err, errors.ErrUsernameTaken),
		errs.Is(err, errors.ErrConflict):
		dto.Error(c, http.StatusConflict, err)
	case errs.Is(err, errors.ErrValidation):
		dto.Error(c, http.StatusBadRequest, errors.ErrValidation)
	default:
		h.logger.Error("unexpected error handling request", "error", err, "path", c.Request.URL.Path)
		dto.Error(c, http.StatusInternalServerError, "Error interno del servidor")
	}
}
