// cmd/rsa-keyring-rest-api/main.go
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

	v1 "github.com/MGTheTrain/rsa-keyring/internal/api/rest/v1"
	"github.com/MGTheTrain/rsa-keyring/internal/app"
	"github.com/MGTheTrain/rsa-keyring/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-keyring/internal/domain/keys"
	"github.com/MGTheTrain/rsa-keyring/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/rsa-keyring/internal/infrastructure/persistence"
	"github.com/MGTheTrain/rsa-keyring/internal/pkg/config"
	"github.com/MGTheTrain/rsa-keyring/internal/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := persistence.CloseDB(deps.db); err != nil {
			log.Warn("Failed to close database: ", err)
		}
	}()

	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db           *gorm.DB
	rsaProcessor cryptoalg.RSAKeyProcessor
	generation   keys.KeyGenerationService
	metadata     keys.KeyMetadataService
	apply        keys.KeyApplyService
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}
	log.Info("Database migrations completed successfully")

	keyRepo, err := persistence.NewGormKeyRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create key repository: %w", err)
	}

	rsaProcessor, err := cryptography.NewRSAKeyProcessor(log, cfg.KeyGen.PrimeRounds, cfg.KeyGen.MaxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA processor: %w", err)
	}

	generation, err := app.NewKeyGenerationService(keyRepo, rsaProcessor, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create key generation service: %w", err)
	}

	metadata, err := app.NewKeyMetadataService(keyRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create key metadata service: %w", err)
	}

	apply, err := app.NewKeyApplyService(keyRepo, rsaProcessor, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create key apply service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appDependencies{
		db:           db,
		rsaProcessor: rsaProcessor,
		generation:   generation,
		metadata:     metadata,
		apply:        apply,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length", "Content-Type"},
		MaxAge:        12 * time.Hour,
	}))

	v1.SetupRoutes(r, deps.generation, deps.metadata, deps.apply, deps.rsaProcessor, cfg.KeyGen.DefaultKeySize)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info(fmt.Sprintf("Received signal %v, initiating graceful shutdown", sig))
	}

	// Key generation at large sizes can run long; give in-flight requests time to finish.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
