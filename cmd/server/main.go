package main

import (
	"fmt"
	"log"
	"os"

	"github.com/vinolens/backend/config"
	httpDelivery "github.com/vinolens/backend/internal/delivery/http"
	"github.com/vinolens/backend/internal/domain"
	"github.com/vinolens/backend/internal/infrastructure/cache"
	"github.com/vinolens/backend/internal/infrastructure/vision"
	"github.com/vinolens/backend/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting VinoLens Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Cache Type: %s (TTL: %s)", cfg.Cache.Type, cfg.Cache.TTL)

	// Infrastructure
	memoryCache := cache.NewMemoryCache()

	var visionClient domain.VisionClient
	if cfg.Vision.Enabled {
		client := vision.NewClient(cfg.Vision.APIKey, cfg.Vision.BaseURL)
		if cfg.Server.Environment == "development" {
			client.SetDebug(true)
		}
		visionClient = client
		log.Printf("Vision service configured: %s", cfg.Vision.BaseURL)
	} else {
		log.Printf("Vision service disabled: only pre-recognized texts accepted")
	}

	// Usecase layer
	scanService := usecase.NewScanService(memoryCache, visionClient, usecase.ScanServiceConfig{
		CacheTTL:           cfg.Cache.TTL,
		MaxBatchSize:       cfg.Scan.MaxBatchSize,
		EnableDebugLogging: cfg.Scan.Debug,
	})

	matchingService := usecase.NewMatchingService(usecase.MatchConfig{
		EnableDebugLogging: cfg.Scan.Debug,
	})

	consolidationService := usecase.NewConsolidationService(matchingService, usecase.ConsolidationConfig{
		EnableDebugLogging: cfg.Scan.Debug,
	})

	log.Printf("Scan: max_batch_size=%d, debug=%v", cfg.Scan.MaxBatchSize, cfg.Scan.Debug)

	// HTTP delivery
	handler := httpDelivery.NewHandler(scanService, matchingService, consolidationService)
	router := httpDelivery.SetupRouter(cfg, handler)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
