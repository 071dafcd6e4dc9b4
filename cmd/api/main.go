package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/roxanekm/report-generator/pkg/validator"

	"github.com/roxanekm/report-generator/internal/adapter/handler"
	"github.com/roxanekm/report-generator/internal/infrastructure/storage"
	"github.com/roxanekm/report-generator/internal/usecase/notes"
	pkgai "github.com/roxanekm/report-generator/pkg/ai"
	"github.com/roxanekm/report-generator/pkg/config"
)

// @title           Meeting Report Generator API
// @version         1.0
// @description     API that transcribes meeting recordings and synthesizes Markdown reports

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath  /v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize report storage
	var store storage.ReportStore
	switch cfg.Storage.Type {
	case "minio":
		log.Println("📦 Connecting to MinIO...")
		minioClient, err := storage.NewMinIOClient(&cfg.Storage)
		if err != nil {
			log.Fatalf("Failed to connect to MinIO: %v", err)
		}
		store = minioClient
		log.Printf("✅ MinIO connected to: %s", cfg.Storage.Endpoint)
	default:
		localStore, err := storage.NewLocalStore(cfg.Storage.LocalDir)
		if err != nil {
			log.Fatalf("Failed to initialize local report storage: %v", err)
		}
		store = localStore
		log.Printf("📂 Archiving reports under: %s", cfg.Storage.LocalDir)
	}

	// Initialize AI clients
	log.Println("🤖 Initializing AI components...")
	whisperClient := pkgai.NewWhisperClient(&cfg.OpenAI)
	hfClient := pkgai.NewHFClient(&cfg.HuggingFace)

	// Initialize notes service
	extractor := notes.NewExtractor(notes.DefaultKeywordRules())
	summarizeOpts := pkgai.SummarizeOptions{
		MaxLength:     cfg.Pipeline.SummaryMaxLength,
		MinLength:     cfg.Pipeline.SummaryMinLength,
		Deterministic: true,
	}
	notesService := notes.NewService(hfClient, extractor, cfg.Pipeline.ChunkSize, summarizeOpts, logger)

	// Initialize meeting handler
	log.Println("🚀 Initializing meeting handler...")
	meetingHandler := handler.NewMeeting(whisperClient, notesService, store, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, meetingHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
