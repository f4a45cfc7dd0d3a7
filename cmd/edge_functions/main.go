package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	httptransport "github.com/aiqualify/golang_services/internal/edge_functions/transport/http"
	"github.com/aiqualify/golang_services/internal/platform/config"
	"github.com/aiqualify/golang_services/internal/platform/environment"
	"github.com/aiqualify/golang_services/internal/platform/logger"
)

const serviceName = "edge_functions"

func main() {
	cfg, err := config.Load(serviceName)
	if err != nil {
		slog.Error("Failed to load configuration", "service", serviceName, "error", err)
		os.Exit(1)
	}

	environment.Init(cfg.BuildMode)

	appLogger := logger.New(cfg.LogLevel).With("service", serviceName)
	appLogger.Info("Edge functions host starting...",
		"port", cfg.EdgeFunctionsPort,
		"build_mode", environment.BuildMode(),
		"site_url", environment.SiteURL(),
	)

	router := httptransport.NewRouter(httptransport.RouterOptions{
		MetricsEnabled: cfg.MetricsEnabled,
		Logger:         appLogger,
		Validate:       validator.New(),
	})

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.EdgeFunctionsPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		appLogger.Info("Edge functions listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("HTTP server failed to serve", "error", err)
			os.Exit(1)
		}
	}()

	quitChan := make(chan os.Signal, 1)
	signal.Notify(quitChan, syscall.SIGINT, syscall.SIGTERM)
	<-quitChan
	appLogger.Info("Shutdown signal received, shutting down HTTP server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
	defer cancelShutdown()
	if err := httpServer.Shutdown(ctxShutdown); err != nil {
		appLogger.Error("HTTP server shutdown failed", "error", err)
	} else {
		appLogger.Info("HTTP server shut down gracefully.")
	}
}
