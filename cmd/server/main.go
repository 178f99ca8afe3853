package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/dkovalenko/product-catalog-service/internal/config"
	"github.com/dkovalenko/product-catalog-service/internal/handler"
	"github.com/dkovalenko/product-catalog-service/internal/logger"
	"github.com/dkovalenko/product-catalog-service/internal/repository"
	"github.com/dkovalenko/product-catalog-service/internal/repository/memory"
	"github.com/dkovalenko/product-catalog-service/internal/repository/postgres"
	"github.com/dkovalenko/product-catalog-service/internal/service"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("config loading failed: %v", err)
	}

	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("logger initialization failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		products repository.ProductRepository
		pinger   handler.Pinger
	)
	switch cfg.Storage.Backend {
	case "postgres":
		pg, err := repository.New(ctx, cfg, &appLogger)
		if err != nil {
			appLogger.Fatal().Err(err).Msg("postgres connection failed")
		}
		defer pg.Close()
		products = postgres.NewProductRepository(pg.Pool())
		pinger = pg
	case "memory":
		store := memory.NewProductRepository(cfg.Catalog.Seed)
		products = store
		pinger = store
		appLogger.Info().Int("seed_products", len(cfg.Catalog.Seed)).Msg("using in-memory catalog")
	default:
		appLogger.Fatal().Str("backend", cfg.Storage.Backend).Msg("unknown storage backend")
	}

	productSvc := service.NewProductService(products, appLogger)

	if cfg.Logger.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	handler.Register(engine, pinger, productSvc)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		appLogger.Info().Str("addr", srv.Addr).Msg("service started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	appLogger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error().Err(err).Msg("graceful shutdown failed")
	}
}
