// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package otel

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds OpenTelemetry metric instruments for the sum service.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	meter metric.Meter

	addsTotal          metric.Int64Counter
	publishesTotal     metric.Int64Counter
	publishErrorsTotal metric.Int64Counter

	publishDuration metric.Float64Histogram
}

// NewMetrics creates a new Metrics instance with all instruments initialized.
func NewMetrics() (*Metrics, error) {
	m := &Metrics{
		meter: otel.Meter("sumflow"),
	}

	var err error

	m.addsTotal, err = m.meter.Int64Counter(
		"sumflow.adds.total",
		metric.WithDescription("Total number of Add calls"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create addsTotal counter: %w", err)
	}

	m.publishesTotal, err = m.meter.Int64Counter(
		"sumflow.publishes.total",
		metric.WithDescription("Total number of queue publish attempts"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create publishesTotal counter: %w", err)
	}

	m.publishErrorsTotal, err = m.meter.Int64Counter(
		"sumflow.publish.errors.total",
		metric.WithDescription("Total number of failed queue publishes"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create publishErrorsTotal counter: %w", err)
	}

	m.publishDuration, err = m.meter.Float64Histogram(
		"sumflow.publish.duration",
		metric.WithDescription("Queue publish duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create publishDuration histogram: %w", err)
	}

	return m, nil
}

// RecordPublish records one Add call's publish attempt.
func (m *Metrics) RecordPublish(ctx context.Context, d time.Duration, err error) {
	if m == nil {
		return
	}

	status := "ok"
	if err != nil {
		status = "error"
		m.publishErrorsTotal.Add(ctx, 1)
	}

	attrs := metric.WithAttributes(attribute.String("status", status))
	m.addsTotal.Add(ctx, 1, attrs)
	m.publishesTotal.Add(ctx, 1, attrs)
	m.publishDuration.Record(ctx, d.Seconds(), attrs)
}
