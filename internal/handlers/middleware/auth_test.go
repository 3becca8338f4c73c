package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/conectafp/backend/internal/domain/ports"
	"github.com/conectafp/backend/internal/handlers/dto"
	"github.com/conectafp/backend/internal/infrastructure/auth"
)

const testSecret = "segredo-de-teste"

type nopLogger struct{}

func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}
func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Warn(string, ...any)  {}

func (l nopLogger) With(...any) ports.Logger { return l }

// panicVerifier simula um verificador que lança ao invés de retornar erro
type panicVerifier struct{}

func (panicVerifier) Verify(string) (*ports.Claims, error) {
	panic("boom")
}

func setupRouter(t *testing.T, verifier ports.TokenVerifier) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	authMiddleware := NewAuthMiddleware(verifier, nopLogger{})
	router.GET("/protegido", authMiddleware.Authenticate(), func(c *gin.Context) {
		id, _ := SubjectID(c)
		dto.Success(c, http.StatusOK, gin.H{"subjectId": id}, "")
	})
	return router
}

func request(t *testing.T, router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protegido", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	router.ServeHTTP(w, req)
	return w
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var body dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("resposta não é JSON válido: %v", err)
	}
	if body.Success {
		t.Error("esperava success false na rejeição")
	}
	return body.Message
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	router := setupRouter(t, auth.NewJWTVerifier(testSecret))

	t.Run("sem header rejeita com 403", func(t *testing.T) {
		w := request(t, router, "")

		if w.Code != http.StatusForbidden {
			t.Errorf("esperava status 403, obteve %d", w.Code)
		}
		if msg := errorMessage(t, w); msg != "Token no proporcionado" {
			t.Errorf("esperava 'Token no proporcionado', obteve %q", msg)
		}
	})

	t.Run("scheme diferente de Bearer rejeita com 403", func(t *testing.T) {
		w := request(t, router, "Token abc")

		if w.Code != http.StatusForbidden {
			t.Errorf("esperava status 403, obteve %d", w.Code)
		}
		if msg := errorMessage(t, w); msg != "Formato de token inválido" {
			t.Errorf("esperava 'Formato de token inválido', obteve %q", msg)
		}
	})

	t.Run("header com três partes rejeita com 403", func(t *testing.T) {
		w := request(t, router, "Bearer abc def")

		if w.Code != http.StatusForbidden {
			t.Errorf("esperava status 403, obteve %d", w.Code)
		}
		if msg := errorMessage(t, w); msg != "Formato de token inválido" {
			t.Errorf("esperava 'Formato de token inválido', obteve %q", msg)
		}
	})

	t.Run("token expirado rejeita com 403", func(t *testing.T) {
		token, err := auth.Sign(testSecret, 42, -time.Hour)
		if err != nil {
			t.Fatalf("falha ao emitir token: %v", err)
		}

		w := request(t, router, "Bearer "+token)

		if w.Code != http.StatusForbidden {
			t.Errorf("esperava status 403, obteve %d", w.Code)
		}
		if msg := errorMessage(t, w); msg != "Token inválido" {
			t.Errorf("esperava 'Token inválido', obteve %q", msg)
		}
	})

	t.Run("token forjado rejeita com 403", func(t *testing.T) {
		token, err := auth.Sign("outro-segredo", 42, time.Hour)
		if err != nil {
			t.Fatalf("falha ao emitir token: %v", err)
		}

		w := request(t, router, "Bearer "+token)

		if w.Code != http.StatusForbidden {
			t.Errorf("esperava status 403, obteve %d", w.Code)
		}
	})

	t.Run("token válido admite e injeta o subject", func(t *testing.T) {
		token, err := auth.Sign(testSecret, 42, time.Hour)
		if err != nil {
			t.Fatalf("falha ao emitir token: %v", err)
		}

		w := request(t, router, "Bearer "+token)

		if w.Code != http.StatusOK {
			t.Fatalf("esperava status 200, obteve %d: %s", w.Code, w.Body.String())
		}

		var body struct {
			Success bool `json:"success"`
			Data    struct {
				SubjectID int `json:"subjectId"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("resposta não é JSON válido: %v", err)
		}
		if !body.Success {
			t.Error("esperava success true")
		}
		if body.Data.SubjectID != 42 {
			t.Errorf("esperava subjectId 42, obteve %d", body.Data.SubjectID)
		}
	})

	t.Run("panic do verificador vira 500 sem vazar para o transporte", func(t *testing.T) {
		panicRouter := setupRouter(t, panicVerifier{})

		w := request(t, panicRouter, "Bearer qualquer")

		if w.Code != http.StatusInternalServerError {
			t.Errorf("esperava status 500, obteve %d", w.Code)
		}
		if msg := errorMessage(t, w); msg != "Error en la autenticación" {
			t.Errorf("esperava 'Error en la autenticación', obteve %q", msg)
		}
	})
}

func TestSubjectID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("ausente retorna false", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())

		if _, ok := SubjectID(c); ok {
			t.Error("esperava false sem identidade no contexto")
		}
	})

	t.Run("presente retorna o id", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Set(SubjectIDKey, 7)

		id, ok := SubjectID(c)
		if !ok || id != 7 {
			t.Errorf("esperava (7, true), obteve (%d, %v)", id, ok)
		}
	})
}
