package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"lobsum/internal/api"
	"lobsum/internal/api/handlers"
	"lobsum/internal/service"
	"lobsum/pkg/config"
	"lobsum/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting LOB summary service")

	// Services
	knowledgeService := service.NewKnowledgeService(cfg.Knowledge.CSVPath, cfg.Knowledge.UploadDir, appLogger)
	summaryService := service.NewSummaryService(knowledgeService, appLogger)

	// Handlers
	summaryHandler := handlers.NewSummaryHandler(summaryService, appLogger)
	knowledgeHandler := handlers.NewKnowledgeHandler(knowledgeService, appLogger)

	// Router
	app := api.SetupRouter(summaryHandler, knowledgeHandler, appLogger)

	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
