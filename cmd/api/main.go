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

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/gamers-hub/internal/config"
	dbpkg "github.com/BruksfildServices01/gamers-hub/internal/db"
	"github.com/BruksfildServices01/gamers-hub/internal/logger"
	"github.com/BruksfildServices01/gamers-hub/internal/routes"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	gin.SetMode(cfg.Server.GinMode)

	log, err := logger.New(cfg.Log.Level, gin.Mode() == gin.ReleaseMode)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		log.Error("database unavailable", zap.Error(err))
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	redisClient, err := dbpkg.NewRedis(cfg.Redis)
	if err != nil {
		log.Warn("redis unavailable, submission guard stays in process", zap.Error(err))
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	r := gin.New()
	r.Use(gin.Recovery())

	shutdown, err := routes.RegisterRoutes(r, routes.Deps{
		DB:       db,
		Redis:    redisClient,
		Config:   cfg,
		Log:      log,
		Registry: registry,
	})
	if err != nil {
		log.Error("failed to register routes", zap.Error(err))
		return err
	}
	defer shutdown()

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		log.Info("server running", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			log.Error("failed to start server", zap.Error(err))
			return err
		}
	case <-ctx.Done():
	}
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
		return err
	}
	return nil
}
