package main

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Bourse-numerique-d-afrique/momo-gateway/internal/callback_service/app"
	callbackhttp "github.com/Bourse-numerique-d-afrique/momo-gateway/internal/callback_service/transport/http"
	"github.com/Bourse-numerique-d-afrique/momo-gateway/internal/platform/config"
	"github.com/Bourse-numerique-d-afrique/momo-gateway/internal/platform/logger"
	"github.com/Bourse-numerique-d-afrique/momo-gateway/internal/platform/messagebroker"
)

const serviceName = "callback_server"

func main() {
	cfg, err := config.Load(serviceName)
	if err != nil {
		slog.Error("Failed to load configuration", "service", serviceName, "error", err)
		os.Exit(1)
	}

	appLogger := logger.New(cfg.LogLevel)
	appLogger.Info("Callback server starting...", "host", cfg.ServerHost, "port", cfg.ServerPort)

	// The provider only delivers callbacks over HTTPS, so a missing or
	// unreadable key pair is fatal here rather than a surprise at request
	// time.
	var tlsConfig *tls.Config
	if cfg.TLSCertFile != "" || cfg.TLSKeyFile != "" {
		cert, err := tls.LoadX509KeyPair(cfg.TLSCertFile, cfg.TLSKeyFile)
		if err != nil {
			appLogger.Error("Failed to load TLS key pair",
				"cert_file", cfg.TLSCertFile,
				"key_file", cfg.TLSKeyFile,
				"error", err)
			os.Exit(1)
		}
		tlsConfig = &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
		}
	} else {
		appLogger.Warn("TLS not configured, serving plain HTTP; only do this behind a terminating proxy")
	}

	metrics := app.NewMetrics()
	stream := app.NewUpdateStream(cfg.ChannelCapacity)

	var publisher messagebroker.Publisher
	if cfg.NATSUrl != "" {
		natsClient, err := messagebroker.NewNATSClient(cfg.NATSUrl, serviceName, appLogger)
		if err != nil {
			appLogger.Error("Failed to connect to NATS", "error", err)
			os.Exit(1)
		}
		defer natsClient.Close()
		publisher = natsClient
		appLogger.Info("Connected to NATS", "url", cfg.NATSUrl)
	}

	dispatcherCtx, cancelDispatcher := context.WithCancel(context.Background())
	defer cancelDispatcher()
	dispatcher := app.NewDispatcher(stream, app.DispatchHandlers{}, publisher, appLogger, metrics)
	dispatcherDone := make(chan struct{})
	go func() {
		defer close(dispatcherDone)
		dispatcher.Run(dispatcherCtx)
	}()

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))
	r.Use(callbackhttp.PrometheusMetricsMiddleware)

	handler := callbackhttp.NewCallbackHandler(stream, appLogger, metrics, cfg.MaxBodyBytes)
	handler.RegisterRoutes(r)
	r.Handle("/metrics", promhttp.Handler())

	httpServer := &http.Server{
		Addr:      fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
		Handler:   r,
		TLSConfig: tlsConfig,
	}

	go func() {
		var serveErr error
		if tlsConfig != nil {
			appLogger.Info("Callback server listening with TLS", "addr", httpServer.Addr)
			serveErr = httpServer.ListenAndServeTLS("", "")
		} else {
			appLogger.Info("Callback server listening", "addr", httpServer.Addr)
			serveErr = httpServer.ListenAndServe()
		}
		if serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			appLogger.Error("HTTP server failed to serve", "error", serveErr)
			os.Exit(1)
		}
	}()

	quitChan := make(chan os.Signal, 1)
	signal.Notify(quitChan, syscall.SIGINT, syscall.SIGTERM)
	<-quitChan
	appLogger.Info("Shutdown signal received, shutting down HTTP server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSecs)*time.Second)
	defer cancelShutdown()
	if err := httpServer.Shutdown(ctxShutdown); err != nil {
		appLogger.Error("HTTP server graceful shutdown failed", "error", err)
	}

	// Buffered envelopes are dropped here; delivery guarantees do not span
	// restarts.
	stream.Close()
	cancelDispatcher()
	<-dispatcherDone

	appLogger.Info("Callback server stopped")
}
