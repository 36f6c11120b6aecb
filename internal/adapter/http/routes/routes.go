package routes

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "portfolio_backend/docs" // swag generated
	"portfolio_backend/internal/adapter/http/handlers"
	"portfolio_backend/internal/adapter/persistence/docstore"
	"portfolio_backend/internal/adapter/persistence/repository"
	"portfolio_backend/internal/infrastructure/auth"
	"portfolio_backend/internal/infrastructure/config"
	"portfolio_backend/internal/infrastructure/logger"
	"portfolio_backend/internal/infrastructure/metrics"
	"portfolio_backend/internal/infrastructure/notification"
	"portfolio_backend/internal/infrastructure/printing"
	"portfolio_backend/internal/usecase"
	"portfolio_backend/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 30 * time.Second

// Dependencies are the adapters the HTTP app is assembled from.
type Dependencies struct {
	Store    interfaces.IDocumentStore
	Renderer interfaces.IReceiptRenderer
	Notifier interfaces.INotifier
}

// App is the assembled HTTP application.
type App struct {
	Router *gin.Engine
	Chat   *usecase.ChatUseCase
}

// Run will start the server and block until SIGINT or SIGTERM.
func Run() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Config{}).Fatal("[server][routes] failed to load configuration", zap.Error(err))
	}

	log := logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: cfg.Log.Output})
	defer func() { _ = log.Sync() }()

	if err := cfg.Validate(); err != nil {
		log.Fatal("[server][routes] invalid configuration", zap.Error(err))
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	store, closeStore, err := docstore.Open(context.Background(), cfg, log)
	if err != nil {
		log.Fatal("[server][routes] failed to open document store", zap.String("driver", cfg.Store.Driver), zap.Error(err))
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Warn("[server][routes] document store close failed", zap.Error(err))
		}
	}()

	app := NewApp(cfg, log, Dependencies{
		Store:    store,
		Renderer: printing.NewPDFReceiptRenderer(cfg.App.BusinessName),
		Notifier: notification.NewEmailNotifier(cfg.Email, log),
	})

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.App.Port),
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("[server][routes] listening", zap.Int("port", cfg.App.Port), zap.String("env", cfg.App.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		log.Fatal("[server][routes] failed to start", zap.Error(err))
	case sig := <-shutdown:
		log.Info("[server][routes] shutdown signal received", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("[server][routes] graceful shutdown failed", zap.Error(err))
		_ = srv.Close()
	}
	app.Chat.WaitForNotifications()
	log.Info("[server][routes] stopped")
}

// NewApp wires repositories, use cases and handlers onto a fresh router.
func NewApp(cfg *config.Config, log *zap.Logger, deps Dependencies) *App {
	router := gin.New()
	setMiddlewares(router, cfg, log)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	contactRepo := repository.NewContactInquiryRepository(deps.Store)
	receiptRepo := repository.NewReceiptRequestRepository(deps.Store)
	messageRepo := repository.NewChatMessageRepository(deps.Store)
	stateRepo := repository.NewChatSessionStateRepository(deps.Store)
	adminRepo := repository.NewAdminCredentialRepository(deps.Store)

	aggregator := usecase.NewScanSessionAggregator(messageRepo, stateRepo)
	contactUseCase := usecase.NewContactInquiryUseCase(contactRepo, log)
	receiptUseCase := usecase.NewReceiptRequestUseCase(receiptRepo, deps.Renderer, log)
	chatUseCase := usecase.NewChatUseCase(messageRepo, stateRepo, aggregator, deps.Notifier, log)
	tokens := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiration)
	authUseCase := usecase.NewAuthUseCase(adminRepo, auth.NewBcryptHasher(auth.DefaultBcryptCost), tokens, log)
	dashboardUseCase := usecase.NewDashboardUseCase(contactRepo, receiptRepo, aggregator)

	h := routeHandlers{
		contact:   handlers.NewContactHandler(contactUseCase, log),
		receipt:   handlers.NewReceiptRequestHandler(receiptUseCase, log),
		chat:      handlers.NewChatHandler(chatUseCase, cfg.App.AdminWhatsApp, log),
		auth:      handlers.NewAuthHandler(authUseCase, log),
		dashboard: handlers.NewDashboardHandler(dashboardUseCase, log),
	}

	api := router.Group("/api")
	addPublicRoutes(api, h)
	addAdminRoutes(api.Group("/admin"), h, handlers.RequireAdmin(authUseCase))

	return &App{Router: router, Chat: chatUseCase}
}

type routeHandlers struct {
	contact   *handlers.ContactHandler
	receipt   *handlers.ReceiptRequestHandler
	chat      *handlers.ChatHandler
	auth      *handlers.AuthHandler
	dashboard *handlers.DashboardHandler
}

func setMiddlewares(router *gin.Engine, cfg *config.Config, log *zap.Logger) {
	router.Use(logger.GinMiddleware(log))
	router.Use(logger.Recovery(log))
	router.Use(metrics.GinMiddleware())
	router.Use(corsMiddleware(cfg.App.CORSAllowedOrigins))
}
