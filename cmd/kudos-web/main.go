// cmd/kudos-web/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MGTheTrain/kudos/internal/api/web"
	"github.com/MGTheTrain/kudos/internal/app"
	"github.com/MGTheTrain/kudos/internal/domain/avatars"
	"github.com/MGTheTrain/kudos/internal/domain/kudos"
	"github.com/MGTheTrain/kudos/internal/domain/users"
	"github.com/MGTheTrain/kudos/internal/infrastructure/auth"
	"github.com/MGTheTrain/kudos/internal/infrastructure/connector"
	"github.com/MGTheTrain/kudos/internal/infrastructure/persistence"
	"github.com/MGTheTrain/kudos/internal/pkg/config"
	"github.com/MGTheTrain/kudos/internal/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/web-app.yaml"
	}

	webConfig, err := config.InitializeWebConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&webConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(webConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := persistence.CloseDB(deps.db); err != nil {
			log.Warn("failed to close database", "error", err)
		}
	}()

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(webConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db       *gorm.DB
	sessions users.SessionManager
	services *appServices
}

type appServices struct {
	auth   users.AuthService
	user   users.UserService
	kudo   kudos.KudoService
	avatar avatars.AvatarUploadService
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.WebConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := persistence.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	userRepo, err := persistence.NewGormUserRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}

	kudoRepo, err := persistence.NewGormKudoRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create kudo repository: %w", err)
	}

	// Initialize object storage
	avatarConnector, err := connector.NewAvatarConnector(context.Background(), &cfg.ObjectStorage, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize avatar connector: %w", err)
	}
	log.Info("Avatar connector initialized", "provider", cfg.ObjectStorage.Provider, "bucket", cfg.ObjectStorage.BucketName)

	// Initialize sessions
	sessions, err := auth.NewJWTSessionManager(&cfg.Session)
	if err != nil {
		return nil, fmt.Errorf("failed to create session manager: %w", err)
	}

	// Initialize services
	services, err := initializeApplicationServices(userRepo, kudoRepo, avatarConnector, cfg.ObjectStorage.AvatarSizeLimit(), log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &appDependencies{
		db:       db,
		sessions: sessions,
		services: services,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.WebConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	allowedOrigins := cfg.CORS.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:" + cfg.Port}
	}

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	if err := web.SetupRoutes(r,
		&cfg.Session,
		deps.sessions,
		deps.services.auth,
		deps.services.user,
		deps.services.kudo,
		deps.services.avatar,
		cfg.ObjectStorage.AvatarSizeLimit(),
		log,
	); err != nil {
		return err
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal, initiating graceful shutdown", "signal", sig.String())
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

// initializeApplicationServices sets up all application services
func initializeApplicationServices(
	userRepo users.UserRepository,
	kudoRepo kudos.KudoRepository,
	avatarConn avatars.AvatarConnector,
	maxAvatarSize int64,
	log logger.Logger,
) (*appServices, error) {
	authService, err := app.NewAuthService(userRepo, auth.NewBcryptPasswordHasher(bcrypt.DefaultCost), log)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}

	userService, err := app.NewUserService(userRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	kudoService, err := app.NewKudoService(kudoRepo, userRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create kudo service: %w", err)
	}

	avatarService, err := app.NewAvatarUploadService(avatarConn, userService, maxAvatarSize, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create avatar upload service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appServices{
		auth:   authService,
		user:   userService,
		kudo:   kudoService,
		avatar: avatarService,
	}, nil
}
