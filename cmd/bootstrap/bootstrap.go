package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic-portal/config"
	"clinic-portal/internal/backend"
	deliveryHttp "clinic-portal/internal/delivery/http"
	"clinic-portal/internal/delivery/http/handler"
	"clinic-portal/internal/delivery/http/middleware"
	"clinic-portal/internal/infrastructure/cache"
	"clinic-portal/internal/render"
	"clinic-portal/internal/session"
	"clinic-portal/pkg/jwt"
	"clinic-portal/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Pick the session store backend
	var store session.Store
	if cfg.Session.Backend == "redis" {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
		store = session.NewRedisStore(redisClient, cfg.Session.TTL)
	} else {
		store = session.NewMemoryStore(cfg.Session.TTL)
		logrus.Info("Using in-memory session store")
	}

	// Initialize all layers
	server, err := initializeServer(cfg, store)
	if err != nil {
		return nil, err
	}
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, store session.Store) (*http.Server, error) {
	log := logrus.StandardLogger()

	// Session plumbing
	signer := jwt.NewCookieSigner(cfg.Session)
	sessions := session.NewManager(cfg.Session, store, signer, log)

	// Backend client and renderer
	api := backend.NewClient(cfg.Backend, log)
	renderer, err := render.NewRenderer(log)
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize handlers
	homeHandler := handler.NewHomeHandler(sessions, renderer, log)
	authHandler := handler.NewAuthHandler(sessions, api, customValidator, log)
	adminHandler := handler.NewAdminHandler(sessions, api, renderer, customValidator, log)
	doctorHandler := handler.NewDoctorHandler(sessions, api, renderer, log)
	patientHandler := handler.NewPatientHandler(sessions, api, renderer, customValidator, log)

	// Initialize middleware
	sessionMiddleware := middleware.NewSessionMiddleware(sessions, log)
	roleMiddleware := middleware.NewRoleMiddleware(sessions)
	loggingMiddleware := middleware.NewLoggingMiddleware(log)
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit)

	// Initialize router
	router := deliveryHttp.NewRouter(homeHandler, authHandler, adminHandler, doctorHandler, patientHandler, sessionMiddleware, roleMiddleware, loggingMiddleware, rateLimiter)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (redis, etc.)
func (app *App) Close() {
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
