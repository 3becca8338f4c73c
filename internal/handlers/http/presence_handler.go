package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/conectafp/backend/internal/domain/entities"
	"github.com/conectafp/backend/internal/domain/ports"
	"github.com/conectafp/backend/internal/handlers/dto"
	"github.com/conectafp/backend/internal/handlers/middleware"
	"github.com/conectafp/backend/internal/services"
)

// PresenceHandler mantém o estado de presença dos usuários via websocket:
// conectado enquanto o socket vive, desconectado (com última conexão) ao fechar
type PresenceHandler struct {
	userService *services.UserService
	logger      ports.Logger
	upgrader    websocket.Upgrader
}

// NewPresenceHandler cria um novo PresenceHandler
func NewPresenceHandler(userService *services.UserService, logger ports.Logger) *PresenceHandler {
	return &PresenceHandler{
		userService: userService,
		logger:      logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// A origem já passou pelo CORS e pelo AuthGate
				return true
			},
		},
	}
}

// Connect faz o upgrade da conexão e registra a presença do usuário autenticado
func (h *PresenceHandler) Connect(c *gin.Context) {
	subjectID, ok := middleware.SubjectID(c)
	if !ok {
		dto.Error(c, http.StatusForbidden, "Token no proporcionado")
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err, "user", subjectID)
		return
	}
	defer conn.Close()

	if err := h.userService.SetPresence(c.Request.Context(), subjectID, entities.StatusConnected, time.Now()); err != nil {
		h.logger.Error("failed to mark user connected", "error", err, "user", subjectID)
		return
	}
	h.logger.Debug("user connected", "user", subjectID)

	// Mantém o socket aberto até o cliente fechar ou a leitura falhar
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	// O contexto da requisição já pode ter sido cancelado quando o socket
	// fecha; a escrita final de presença usa um contexto próprio
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := h.userService.SetPresence(ctx, subjectID, entities.StatusDisconnected, time.Now()); err != nil {
		h.logger.Error("failed to mark user disconnected", "error", err, "user", subjectID)
		return
	}
	h.logger.Debug("user disconnected", "user", subjectID)
}
