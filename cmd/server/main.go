package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/SawSimonLinn/BizBoost/internal/config"
	"github.com/SawSimonLinn/BizBoost/internal/repository/mongodb"
	"github.com/SawSimonLinn/BizBoost/internal/repository/sheets"
	"github.com/SawSimonLinn/BizBoost/internal/scheduler"
	"github.com/SawSimonLinn/BizBoost/internal/server/handlers"
	"github.com/SawSimonLinn/BizBoost/internal/server/router"
	insightssvc "github.com/SawSimonLinn/BizBoost/internal/service/insights"
	portfoliosvc "github.com/SawSimonLinn/BizBoost/internal/service/portfolio"
	"github.com/SawSimonLinn/BizBoost/pkg/clients/anthropic"
	"github.com/SawSimonLinn/BizBoost/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	mongoRepo, err := mongodb.NewMongoDBRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
	if err != nil {
		baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
	}
	defer func() {
		if err := mongoRepo.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	portfolioSvc := portfoliosvc.NewService(mongoRepo, baseLogger.Named("svc.portfolio"))

	var aiClient anthropic.Client
	if cfg.AI.AnthropicKey != "" {
		aiClient = anthropic.NewClient(cfg.AI.AnthropicKey)
		baseLogger.Info("anthropic ai client enabled")
	} else {
		baseLogger.Warn("anthropic api key missing, ai insights disabled")
	}
	insightsSvc := insightssvc.NewService(portfolioSvc, aiClient, baseLogger.Named("svc.insights"))

	var exporter sheets.Exporter
	if cfg.Sheets.Enabled() {
		sheetExporter, err := sheets.NewGoogleSheetExporter(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets exporter", zap.Error(err))
		}
		exporter = sheetExporter
		baseLogger.Info("annual report export enabled")
	} else {
		baseLogger.Warn("sheets credentials missing, annual report export disabled")
	}

	portfolioHandler := handlers.NewPortfolioHandler(portfolioSvc, exporter, baseLogger.Named("handlers.portfolio"))
	insightsHandler := handlers.NewInsightsHandler(insightsSvc, baseLogger.Named("handlers.insights"))
	engine := router.New(portfolioHandler, insightsHandler, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(cfg.Rollover, portfolioSvc, mongoRepo, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
