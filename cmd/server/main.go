package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mitchleonard/pebble-path/internal"
	"github.com/mitchleonard/pebble-path/internal/api"
	"github.com/mitchleonard/pebble-path/internal/auth"
	"github.com/mitchleonard/pebble-path/internal/config"
	"github.com/mitchleonard/pebble-path/internal/storage"
	"github.com/mitchleonard/pebble-path/internal/store"
)

type app struct {
	logger internal.Logger
	stores *store.Manager
}

func (a *app) Logger() internal.Logger { return a.logger }
func (a *app) Stores() *store.Manager  { return a.stores }

func main() {
	cfg := config.Load()

	logger, err := internal.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}

	if cfg.StorageBackend == "file" {
		if err := os.MkdirAll(filepath.Dir(cfg.DaysFile), 0o755); err != nil {
			logger.Fatalf("failed to create data dir: %v", err)
		}
	}

	ctx := context.Background()
	repo, closeRepo, err := storage.NewRepository(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("failed to init storage: %v", err)
	}

	stores := store.NewManager(repo, logger)
	a := &app{logger: logger, stores: stores}

	var provider auth.Provider
	if cfg.Env == "development" {
		provider = auth.NewLocalAuthProvider(cfg.LocalToken, logger)
	} else {
		provider = auth.NewRemoteAuthProvider(cfg.AuthServiceURL, logger)
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(api.RequestIDMiddleware())
	api.Routes(r, a, auth.Middleware(provider, cfg))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Infof("server listening on :%s (storage=%s)", cfg.Port, cfg.StorageBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-sigCtx.Done()

	logger.Info("shutting down")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("server shutdown: %v", err)
	}

	stores.Flush()
	if err := closeRepo(); err != nil {
		logger.Errorf("storage close: %v", err)
	}
}
