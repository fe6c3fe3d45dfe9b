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

	"whyEngine/app/echo-server/router"
	"whyEngine/business/catalog"
	"whyEngine/business/engine"
	"whyEngine/business/explain"
	"whyEngine/internal/middleware"
	fileRepo "whyEngine/internal/repository/file"
	"whyEngine/internal/repository/openai"
	psqlRepo "whyEngine/internal/repository/postgres"
	redisRepo "whyEngine/internal/repository/redis"
	"whyEngine/internal/rest"
	"whyEngine/pkg/config"
	"whyEngine/pkg/database"
	"whyEngine/pkg/logger"
	"whyEngine/pkg/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting WhyEngine", "version", cfg.App.Version)

	metrics.Init()

	// Catalog and preset storage depend on the configured source. File
	// mode serves a read-only demo catalog and disables stored preset
	// overrides.
	var itemRepo catalog.ItemRepository
	var presetRepo engine.PresetRepository

	switch cfg.Catalog.Source {
	case "postgres":
		db, err := database.InitPostgres(cfg)
		if err != nil {
			logger.Fatal("Failed to connect to database", "error", err)
		}
		logger.Info("Database connected successfully")

		pgItems := psqlRepo.NewItemRepository(db)
		if cfg.Catalog.SeedDir != "" {
			if err := seedCatalog(pgItems, cfg.Catalog.SeedDir); err != nil {
				logger.Fatal("Failed to seed catalog", "dir", cfg.Catalog.SeedDir, "error", err)
			}
		}
		itemRepo = pgItems
		presetRepo = psqlRepo.NewPresetRepository(db)

		if cfg.Catalog.CacheItems {
			rdb, err := database.NewRedisClient(cfg)
			if err != nil {
				logger.Warn("Redis unavailable, serving catalog without cache", "error", err)
			} else {
				ttl := time.Duration(cfg.Redis.CacheTTLSec) * time.Second
				itemRepo = redisRepo.NewCatalogCache(itemRepo, rdb, ttl)
				logger.Info("Catalog cache enabled", "ttl", ttl)
			}
		}
	case "file":
		repo, err := fileRepo.NewItemRepository(cfg.Catalog.Dir)
		if err != nil {
			logger.Fatal("Failed to load catalog files", "dir", cfg.Catalog.Dir, "error", err)
		}
		itemRepo = repo
	}

	// Init service
	catalogService := catalog.NewService(itemRepo)

	engineCfg := engine.DefaultConfig()
	engineCfg.TopK = cfg.Engine.TopK

	engineService, err := engine.NewService(presetRepo, engineCfg)
	if err != nil {
		logger.Fatal("Failed to init engine", "error", err)
	}

	var generator explain.ExplanationGenerator
	if cfg.OpenAI.APIKey != "" {
		generator = openai.NewExplainRepository(openai.Config{
			APIKey: cfg.OpenAI.APIKey,
			URL:    cfg.OpenAI.URL,
			Model:  cfg.OpenAI.Model,
		})
		logger.Info("LLM explanations enabled", "model", cfg.OpenAI.Model)
	} else {
		logger.Info("No OpenAI key configured, using template explanations")
	}
	explainService := explain.NewService(generator)

	// Init handler
	recommendHandler := rest.NewRecommendHandler(catalogService, engineService, explainService)
	catalogHandler := rest.NewCatalogHandler(catalogService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(middleware.TraceMiddleware())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok", "version": cfg.App.Version})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Setup routes
	api := e.Group("/api/v1")
	router.SetRecommendRoutes(api, recommendHandler)
	router.SetCatalogRoutes(api, catalogHandler)

	if presetRepo != nil {
		presetAdminHandler := rest.NewPresetAdminHandler(presetRepo, engineCfg)
		authRequired := middleware.AuthMiddleware(cfg.JWT.SecretKey)
		router.SetPresetAdminRoutes(api, presetAdminHandler, authRequired, middleware.AdminOnly())
	}

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}

// seedCatalog upserts the JSON fixture catalog into postgres so a fresh
// database can serve the demo domains immediately.
func seedCatalog(repo *psqlRepo.ItemRepository, dir string) error {
	src, err := fileRepo.NewItemRepository(dir)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	domains, err := src.Domains(ctx)
	if err != nil {
		return err
	}

	for _, name := range domains {
		items, err := src.FindByDomain(ctx, name)
		if err != nil {
			return err
		}
		if err := repo.SeedItems(ctx, items); err != nil {
			return err
		}
		logger.Info("Catalog seeded", "domain", name, "items", len(items))
	}

	return nil
}
