// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the sum service.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Broker BrokerConfig `yaml:"broker"`
	Log    LogConfig    `yaml:"log"`
}

// ServerConfig holds RPC server configuration.
type ServerConfig struct {
	GRPCAddr        string        `yaml:"grpc_addr"`
	HealthAddr      string        `yaml:"health_addr"`
	HealthEnabled   bool          `yaml:"health_enabled"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// OpenTelemetry configuration
	MetricsAddr         string  `yaml:"metrics_addr"` // OTLP endpoint
	MetricsEnabled      bool    `yaml:"metrics_enabled"`
	OtelServiceName     string  `yaml:"otel_service_name"`
	OtelServiceVersion  string  `yaml:"otel_service_version"`
	OtelTracesEnabled   bool    `yaml:"otel_traces_enabled"`
	OtelTraceSampleRate float64 `yaml:"otel_trace_sample_rate"` // 0.0 to 1.0
}

// BrokerConfig holds message broker connection settings.
type BrokerConfig struct {
	// URL is a full AMQP URL. When set it overrides Address, Username,
	// Password and Vhost.
	URL         string        `yaml:"url"`
	Address     string        `yaml:"address"`
	Username    string        `yaml:"username"`
	Password    string        `yaml:"password"`
	Vhost       string        `yaml:"vhost"`
	Queue       string        `yaml:"queue"`
	DialTimeout time.Duration `yaml:"dial_timeout"`
	Heartbeat   time.Duration `yaml:"heartbeat"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			GRPCAddr:        ":50051",
			HealthAddr:      ":8081",
			HealthEnabled:   true,
			ShutdownTimeout: 30 * time.Second,

			MetricsAddr:         "localhost:4317",
			MetricsEnabled:      false,
			OtelServiceName:     "sumflow",
			OtelServiceVersion:  "0.1.0",
			OtelTracesEnabled:   false,
			OtelTraceSampleRate: 0.1,
		},
		Broker: BrokerConfig{
			Address:     "localhost:5672",
			Username:    "guest",
			Password:    "guest",
			Vhost:       "/",
			Queue:       "sum_queue",
			DialTimeout: 10 * time.Second,
			Heartbeat:   60 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads configuration from a YAML file, falling back to defaults when
// the filename is empty or the file does not exist.
func Load(filename string) (*Config, error) {
	if filename == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.GRPCAddr == "" {
		return fmt.Errorf("server.grpc_addr cannot be empty")
	}
	if c.Server.HealthEnabled && c.Server.HealthAddr == "" {
		return fmt.Errorf("server.health_addr required when health is enabled")
	}
	if c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("server.shutdown_timeout cannot be negative")
	}
	if c.Server.MetricsEnabled && c.Server.MetricsAddr == "" {
		return fmt.Errorf("server.metrics_addr required when metrics are enabled")
	}
	if c.Server.OtelTraceSampleRate < 0 || c.Server.OtelTraceSampleRate > 1 {
		return fmt.Errorf("server.otel_trace_sample_rate must be between 0.0 and 1.0")
	}

	if c.Broker.URL == "" && c.Broker.Address == "" {
		return fmt.Errorf("broker.url or broker.address must be set")
	}
	if c.Broker.Queue == "" {
		return fmt.Errorf("broker.queue cannot be empty")
	}
	if c.Broker.DialTimeout < 0 {
		return fmt.Errorf("broker.dial_timeout cannot be negative")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of: debug, info, warn, error")
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be one of: text, json")
	}

	return nil
}
