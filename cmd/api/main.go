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
	"github.com/rs/cors"

	"blog-taxonomy/api/router"
	"blog-taxonomy/config"
	"blog-taxonomy/logger"
)

// @title           Blog Taxonomy API
// @version         1.0
// @description     Related posts resolution over tags and categories
// @BasePath        /api/v1
func main() {
	if err := run(); err != nil {
		logger.ErrorWithFields("api exited with error", logger.Fields{"error": err.Error()})
		os.Exit(1)
	}
}

func run() error {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)
	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           corsHandler(cfg.Server).Handler(router.New(store, cfg)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	logger.InfoWithFields("server started", logger.Fields{"port": cfg.Server.Port, "store": cfg.Store.Driver})

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Log.Info("received signal, shutting down")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}

// corsHandler allows every origin when none is configured.
func corsHandler(cfg config.ServerConfig) *cors.Cors {
	if len(cfg.AllowedOrigins) == 0 {
		return cors.AllowAll()
	}
	return cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
	})
}
