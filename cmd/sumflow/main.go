// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/absmach/sumflow/client/amqp"
	"github.com/absmach/sumflow/config"
	grpcserver "github.com/absmach/sumflow/server/grpc"
	"github.com/absmach/sumflow/server/health"
	"github.com/absmach/sumflow/server/otel"
	"github.com/google/uuid"
)

func main() {
	configFile := flag.String("config", "", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logLevel := slog.LevelInfo
	switch cfg.Log.Level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	var handler slog.Handler
	if cfg.Log.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Starting sum service", "version", "0.1.0")
	slog.Info("Configuration loaded",
		"grpc_listener", cfg.Server.GRPCAddr,
		"health_listener", cfg.Server.HealthAddr,
		"broker_address", cfg.Broker.Address,
		"queue", cfg.Broker.Queue,
	)

	instanceID := uuid.NewString()

	var otelShutdown func(context.Context) error
	var metrics *otel.Metrics
	if cfg.Server.MetricsEnabled {
		otelShutdown, err = otel.InitProvider(cfg.Server, instanceID)
		if err != nil {
			slog.Error("Failed to initialize OpenTelemetry", "error", err)
			os.Exit(1)
		}

		metrics, err = otel.NewMetrics()
		if err != nil {
			slog.Error("Failed to create metrics", "error", err)
			os.Exit(1)
		}
	}

	opts := amqp.NewOptions().
		SetAddress(cfg.Broker.Address).
		SetCredentials(cfg.Broker.Username, cfg.Broker.Password).
		SetVhost(cfg.Broker.Vhost).
		SetDialTimeout(cfg.Broker.DialTimeout).
		SetHeartbeat(cfg.Broker.Heartbeat)
	if cfg.Broker.URL != "" {
		opts.SetURL(cfg.Broker.URL)
	}

	client, err := amqp.New(opts)
	if err != nil {
		slog.Error("Invalid broker options", "error", err)
		os.Exit(1)
	}

	// A single attempt: the process must not serve RPC traffic without a
	// live broker channel.
	if err := client.Connect(); err != nil {
		slog.Error("Failed to connect to broker", "address", cfg.Broker.Address, "error", err)
		os.Exit(1)
	}
	slog.Info("Connected to broker", "address", cfg.Broker.Address)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sumHandler := grpcserver.NewHandler(client, cfg.Broker.Queue, metrics, logger)
	rpcServer := grpcserver.New(grpcserver.Config{Address: cfg.Server.GRPCAddr}, sumHandler, logger)

	var wg sync.WaitGroup

	if cfg.Server.HealthEnabled {
		healthServer := health.New(health.Config{
			Address:         cfg.Server.HealthAddr,
			ShutdownTimeout: cfg.Server.ShutdownTimeout,
		}, client, logger)

		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := healthServer.Listen(ctx); err != nil {
				slog.Error("Health check server error", "error", err)
			}
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := rpcServer.Listen(ctx); err != nil {
			slog.Error("RPC server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutdown signal received")

	wg.Wait()

	_ = client.Close()
	slog.Info("Broker connection closed")

	if otelShutdown != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		if err := otelShutdown(shutdownCtx); err != nil {
			slog.Error("OpenTelemetry shutdown error", "error", err)
		}
		cancel()
	}

	slog.Info("Shutdown complete")
}
