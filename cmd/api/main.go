package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/conectafp/backend/internal/handlers/middleware"
	"github.com/conectafp/backend/internal/infrastructure/auth"
	"github.com/conectafp/backend/internal/infrastructure/config"
	"github.com/conectafp/backend/internal/infrastructure/logging"
	"github.com/conectafp/backend/internal/infrastructure/persistence/postgres"
	"github.com/conectafp/backend/internal/services"

	httphandlers "github.com/conectafp/backend/internal/handlers/http"
)

func main() {
	// Carregar configurações; falha imediata sem o segredo JWT
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting conectafp backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados (recurso único do processo)
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	// Inicializar repositories
	hasher := auth.NewBcryptHasher()
	userRepo := postgres.NewUserRepository(db, hasher)
	uow := postgres.NewUnitOfWork(db)

	// Inicializar services
	userService := services.NewUserService(userRepo, uow, logger)

	// Inicializar handlers e middleware de autenticação
	verifier := auth.NewJWTVerifier(cfg.JWT.Secret)
	authMiddleware := middleware.NewAuthMiddleware(verifier, logger)
	userHandler := httphandlers.NewUserHandler(userService, logger)
	presenceHandler := httphandlers.NewPresenceHandler(userService, logger)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	router.Use(middleware.RequestID())

	// Middleware CORS; o header Authorization é exposto porque o envelope
	// pode devolver uma credencial renovada nele
	corsConfig := cors.DefaultConfig()
	if cfg.CORS.AllowedOrigins == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = strings.Split(cfg.CORS.AllowedOrigins, ",")
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	corsConfig.ExposeHeaders = append(corsConfig.ExposeHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Users (todas as rotas exigem bearer token)
		users := v1.Group("/users", authMiddleware.Authenticate())
		{
			users.GET("", userHandler.ListUsers)
			users.GET("/presence", presenceHandler.Connect)
			users.GET("/:id", userHandler.GetUser)
			users.POST("", userHandler.CreateUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}
	}

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	if err := postgres.Close(db); err != nil {
		logger.Error("failed to close database pool", "error", err)
	}

	logger.Info("server exited")
}
