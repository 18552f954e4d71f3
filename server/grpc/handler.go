// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package grpc

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/absmach/sumflow/client/amqp"
	sumv1 "github.com/absmach/sumflow/pkg/proto/sum/v1"
	"github.com/absmach/sumflow/server/otel"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Publisher delivers a payload to a named durable queue.
type Publisher interface {
	PublishToQueue(ctx context.Context, queueName string, payload []byte) error
}

// Handler implements sum.v1.SumService. Every successful Add has published
// its result to the queue before the response is sent; a failed publish
// fails the call.
type Handler struct {
	sumv1.UnimplementedSumServiceServer

	publisher Publisher
	queue     string
	metrics   *otel.Metrics
	logger    *slog.Logger
}

// NewHandler creates a SumService handler publishing to queue. metrics may
// be nil.
func NewHandler(publisher Publisher, queue string, metrics *otel.Metrics, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		publisher: publisher,
		queue:     queue,
		metrics:   metrics,
		logger:    logger,
	}
}

// Add computes a + b and publishes the decimal encoding of the result to
// the queue before responding. The sum wraps on int32 overflow.
//
// The publish uses a context detached from the call: a caller that
// disconnects mid-call cannot abandon an in-flight publish.
func (h *Handler) Add(ctx context.Context, req *sumv1.AddRequest) (*sumv1.AddResponse, error) {
	result := req.GetA() + req.GetB()
	payload := strconv.FormatInt(int64(result), 10)

	start := time.Now()
	err := h.publisher.PublishToQueue(context.WithoutCancel(ctx), h.queue, []byte(payload))
	h.metrics.RecordPublish(ctx, time.Since(start), err)
	if err != nil {
		h.logger.Error("Failed to publish sum", "queue", h.queue, "error", err)
		if errors.Is(err, amqp.ErrNotConnected) {
			return nil, status.Error(codes.FailedPrecondition, "broker channel unavailable")
		}
		return nil, status.Errorf(codes.Unavailable, "publish result: %v", err)
	}

	h.logger.Debug("Published sum", "queue", h.queue, "payload", payload)
	return &sumv1.AddResponse{Result: result}, nil
}
