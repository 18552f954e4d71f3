// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package grpc exposes the SumService RPC endpoint.
package grpc

import (
	"context"
	"log/slog"
	"net"

	sumv1 "github.com/absmach/sumflow/pkg/proto/sum/v1"
	gogrpc "google.golang.org/grpc"
)

// Config holds configuration for the RPC server.
type Config struct {
	Address string
}

// Server serves the SumService over gRPC.
type Server struct {
	config     Config
	grpcServer *gogrpc.Server
	listener   net.Listener
	logger     *slog.Logger
}

// New creates a new RPC server with the given handler.
func New(cfg Config, handler sumv1.SumServiceServer, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	grpcServer := gogrpc.NewServer()
	sumv1.RegisterSumServiceServer(grpcServer, handler)

	return &Server{
		config:     cfg,
		grpcServer: grpcServer,
		logger:     logger,
	}
}

// Addr returns the listener's network address, or "" before Listen.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Listen serves RPC traffic until ctx is cancelled, then drains in-flight
// calls with a graceful stop.
func (s *Server) Listen(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return err
	}
	s.listener = listener

	s.logger.Info("Starting RPC server", "address", s.listener.Addr().String())

	errCh := make(chan error, 1)
	go func() {
		if err := s.grpcServer.Serve(listener); err != nil {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info("RPC server shutdown initiated")
		s.grpcServer.GracefulStop()
		s.logger.Info("RPC server stopped")
		return nil
	}
}
