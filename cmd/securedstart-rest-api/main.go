// cmd/securedstart-rest-api/main.go
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

	v1 "secured_start_service/internal/api/rest/v1"
	"secured_start_service/internal/app"
	"secured_start_service/internal/domain/crypto"
	"secured_start_service/internal/infrastructure/cryptography"
	"secured_start_service/internal/pkg/config"
	"secured_start_service/internal/pkg/logger"

	"github.com/gin-contrib/cors"

	"github.com/gin-gonic/gin"
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
		configPath = "../../configs/rest-api.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application services
	services, err := initializeServices(log)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, services, log)
}

// appServices holds all initialized application components
type appServices struct {
	symmetricCipher  crypto.SymmetricCipher
	asymmetricCipher crypto.AsymmetricCipher
	signatureService crypto.SignatureService
}

// initializeServices sets up the cryptographic processors and the services on top of them
func initializeServices(log logger.Logger) (*appServices, error) {
	aesProcessor, err := cryptography.NewAESProcessor(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES processor: %w", err)
	}

	rsaProcessor, err := cryptography.NewRSAProcessor(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA processor: %w", err)
	}

	symmetricCipher, err := app.NewSymmetricCipher(aesProcessor, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create symmetric cipher: %w", err)
	}

	asymmetricCipher, err := app.NewAsymmetricCipher(rsaProcessor, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create asymmetric cipher: %w", err)
	}

	signatureService, err := app.NewSignatureService(rsaProcessor, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create signature service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appServices{
		symmetricCipher:  symmetricCipher,
		asymmetricCipher: asymmetricCipher,
		signatureService: signatureService,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, services *appServices, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r,
		services.symmetricCipher,
		services.asymmetricCipher,
		services.signatureService,
	)

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
		log.Info("Starting server on port ", cfg.Port)
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
		log.Info("Received signal %v, initiating graceful shutdown", sig)
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
