// File: questforge/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"questforge/config"
	"questforge/database"
	questRepo "questforge/database/repository/quest"
	"questforge/handlers"
	"questforge/middleware"
	"questforge/routes"
	"questforge/services/quest"
	"questforge/services/schedule"
	"questforge/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	qRepo := questRepo.NewMongoQuestRepo()
	if err := qRepo.EnsureIndexes(); err != nil {
		logger.Warn("main: failed to ensure quest indexes", zap.Error(err))
	}

	// services.
	suggestCfg := schedule.SuggestConfig{
		WindowStart:    config.AppConfig.DayWindowStart,
		WindowEnd:      config.AppConfig.DayWindowEnd,
		StepMinutes:    config.AppConfig.SlotGridStep,
		MaxSuggestions: config.AppConfig.MaxSuggestions,
	}
	engine := schedule.NewDefaultEngine(qRepo, suggestCfg)
	questService := quest.NewDefaultQuestService(qRepo, engine)

	// handlers.
	questHandler := handlers.NewQuestHandler(questService, logger)
	scheduleHandler := handlers.NewScheduleHandler(engine, questService, utils.GetSessionCacheClient(), logger)

	routes.RegisterRoutes(router, questHandler, scheduleHandler)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
