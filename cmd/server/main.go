// @title FilingLens API
// @version 1.0
// @description Retrieves Companies House filing documents, extracts their text and produces summaries, key insights and financial highlights.
// @BasePath /api/v1
// @securityDefinitions.apikey APIKeyAuth
// @in header
// @name X-API-Key
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	_ "filinglens/docs"
	"filinglens/internal/analysis"
	"filinglens/internal/cache"
	"filinglens/internal/cache/memory"
	"filinglens/internal/cache/sqlite"
	"filinglens/internal/config"
	"filinglens/internal/extract"
	"filinglens/internal/fetcher"
	"filinglens/internal/handler"
	"filinglens/internal/llm"
	_ "filinglens/internal/llm/claude"
	_ "filinglens/internal/llm/gemini"
	_ "filinglens/internal/llm/openai"
	"filinglens/internal/logging"
	"filinglens/internal/port"
	"filinglens/internal/router"
	"filinglens/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Local development convenience; missing .env is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		var cfgErr *config.ConfigurationError
		if errors.As(err, &cfgErr) {
			fmt.Fprintln(os.Stderr, cfgErr.Error())
			os.Exit(2)
		}
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	// Initialize result cache
	store, closeStore, err := newCacheStore(&cfg.Cache, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	resultCache := cache.New(store, cfg.Cache.TTL, logger)
	if n, err := resultCache.Prune(context.Background()); err != nil {
		logger.Warn("failed to prune expired cache entries", zap.Error(err))
	} else if n > 0 {
		logger.Info("pruned expired cache entries", zap.Int("removed", n))
	}

	// Initialize analysis model
	var model port.AnalysisModel
	if cfg.Analyzer.Enabled() {
		m, err := llm.NewModel(&cfg.Analyzer)
		if err != nil {
			return fmt.Errorf("failed to initialize analysis model: %w", err)
		}
		model = llm.NewCircuitModel(m, cfg.Analyzer.Provider, logger)
		logger.Info("analysis model enabled", zap.String("provider", cfg.Analyzer.Provider))
	} else {
		logger.Info("analysis model disabled, using local analysis only")
	}

	orchestrator := analysis.NewOrchestrator(model, analysis.Options{
		Provider:    cfg.Analyzer.Provider,
		MaxTokens:   cfg.Analyzer.MaxTokens,
		Temperature: cfg.Analyzer.Temperature,
	}, logger)

	// Initialize services
	documentSvc := service.NewDocumentService(fetcher.New(&cfg.Registry, logger), extract.NewExtractor(logger), logger)
	analysisSvc := service.NewAnalysisService(documentSvc, orchestrator, resultCache, logger)
	cacheSvc := service.NewCacheService(resultCache)

	// Initialize handlers
	documentH := handler.NewDocumentHandler(documentSvc)
	analysisH := handler.NewAnalysisHandler(analysisSvc)
	cacheH := handler.NewCacheHandler(cacheSvc)
	healthH := handler.NewHealthHandler(cacheSvc)

	// Setup router
	r := router.Setup(cfg, logger, documentH, analysisH, cacheH, healthH)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("addr", cfg.Server.Port), zap.String("environment", cfg.Server.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-quit:
		logger.Info("shutting down", zap.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
	}

	return nil
}

func newCacheStore(cfg *config.CacheConfig, logger *zap.Logger) (port.CacheStore, func(), error) {
	if cfg.Backend != config.CacheBackendSQLite {
		return memory.NewStore(), func() {}, nil
	}

	db, err := sqlite.Open(cfg.SQLitePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open cache database: %w", err)
	}
	if err := sqlite.Migrate(db); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to migrate cache database: %w", err)
	}
	logger.Info("sqlite cache ready", zap.String("path", cfg.SQLitePath))
	return sqlite.NewStore(db), func() { db.Close() }, nil
}
