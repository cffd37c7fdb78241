package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/labelcheck/backend/config"
	httpDelivery "github.com/labelcheck/backend/internal/delivery/http"
	"github.com/labelcheck/backend/internal/infrastructure/store"
	"github.com/labelcheck/backend/internal/infrastructure/vision"
	"github.com/labelcheck/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting LabelCheck Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Store: %s", cfg.Store.Path)

	// Initialize infrastructure dependencies
	submissionStore, err := store.Open(cfg.Store.Path)
	if err != nil {
		log.Fatalf("Failed to open submission store: %v", err)
	}
	defer submissionStore.Close()

	visionClient, err := vision.NewClient(context.Background(), cfg.Vision.APIKey, cfg.Vision.Model)
	if err != nil {
		log.Fatalf("Failed to create vision client: %v", err)
	}
	log.Printf("Vision model: %s", cfg.Vision.Model)

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		visionClient.SetDebug(true)
		log.Printf("Vision client debug mode enabled")
	}

	// Initialize usecase layer
	submissionService := usecase.NewSubmissionService(
		visionClient,
		submissionStore,
		usecase.SubmissionServiceConfig{
			EnableDebugLogging: cfg.Verify.EnableDebugLogging,
		},
	)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(submissionService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
