package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wesports/auth/internal/auth/email"
	httpapi "github.com/wesports/auth/internal/auth/http"
	"github.com/wesports/auth/internal/auth/rate"
	"github.com/wesports/auth/internal/auth/revoke"
	"github.com/wesports/auth/internal/auth/service"
	"github.com/wesports/auth/internal/auth/store"
	"github.com/wesports/auth/internal/auth/store/drivers/sqlite"
	"github.com/wesports/auth/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the auth service application with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db          store.Store
	redisClient *redis.Client
	limiter     rate.Limiter
	revocations revoke.List
	mailer      email.Sender

	// Services
	tokenService        *service.TokenService
	registrationService *service.RegistrationService
	loginService        *service.LoginService
	onboardingService   *service.OnboardingService
	languageService     *service.LanguageService
	bootstrapService    *service.BootstrapService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "auth-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("AUTH_JWT_SECRET must be set")
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initSharedState()
	app.initMailer()

	if err := app.initServices(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	// Seed reference data before serving traffic
	if err := app.bootstrapService.EnsureSeedData(context.Background()); err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to seed reference data: %w", err)
	}

	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	// Start housekeeping service
	app.housekeepingService.Start()

	app.logger.Info("auth service starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		// Perform graceful shutdown
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down auth service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	// Shutdown the HTTP server
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// Stop the housekeeping service
	app.housekeepingService.Stop()

	if app.redisClient != nil {
		if err := app.redisClient.Close(); err != nil {
			app.logger.Error("error closing redis client", "error", err)
		}
	}

	// Close database connection
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("auth service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initSharedState picks redis-backed rate limits and revocations when a redis
// address is configured, in-memory otherwise. Single-instance deployments
// lose nothing with the in-memory variants.
func (app *Application) initSharedState() {
	if app.cfg.RedisAddr == "" {
		app.limiter = rate.NewMemoryLimiter()
		app.revocations = revoke.NewMemoryList()
		app.logger.Info("using in-memory rate limits and revocation list")
		return
	}

	app.redisClient = redis.NewClient(&redis.Options{
		Addr:     app.cfg.RedisAddr,
		Password: app.cfg.RedisPassword,
	})
	app.limiter = rate.NewRedisLimiter(app.redisClient)
	app.revocations = revoke.NewRedisList(app.redisClient)
	app.logger.Info("using redis-backed rate limits and revocation list", "addr", app.cfg.RedisAddr)
}

// initMailer wires the SMTP sender, or the log sender when no relay is
// configured (dev setups).
func (app *Application) initMailer() {
	if app.cfg.SMTPHost == "" {
		app.mailer = email.NewLogSender(app.logger)
		app.logger.Warn("no SMTP host configured, verification codes are logged instead of emailed")
		return
	}

	app.mailer = email.NewSMTPSender(
		app.cfg.SMTPHost,
		app.cfg.SMTPPort,
		app.cfg.SMTPUsername,
		app.cfg.SMTPPassword,
		app.cfg.SMTPFrom,
	)
	app.logger.Info("SMTP sender configured", "host", app.cfg.SMTPHost)
}

// initServices initializes all business logic services
func (app *Application) initServices() error {
	tokens, err := service.NewTokenService(
		[]byte(app.cfg.JWTSecret),
		app.db,
		app.revocations,
		app.cfg.Issuer,
	)
	if err != nil {
		return fmt.Errorf("failed to initialize token service: %w", err)
	}
	tokens.AccessTTL = app.cfg.AccessTokenTTL
	tokens.RegistrationTTL = app.cfg.RegistrationTokenTTL
	tokens.RefreshTTL = app.cfg.RefreshTokenTTL
	app.tokenService = tokens

	app.registrationService = service.NewRegistrationService(app.db, app.limiter, app.mailer, tokens)
	app.loginService = service.NewLoginService(app.db, tokens)
	app.onboardingService = service.NewOnboardingService(app.db)
	app.languageService = service.NewLanguageService(app.db)
	app.bootstrapService = service.NewBootstrapService(app.db)

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)

	return nil
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		BuildVersion,
		app.db,
		app.logger,
		app.cfg.SecureCookies,
	)

	// Wire services to router
	router.TokenService = app.tokenService
	router.RegistrationService = app.registrationService
	router.LoginService = app.loginService
	router.OnboardingService = app.onboardingService
	router.LanguageService = app.languageService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
