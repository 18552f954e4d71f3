// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package health

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/absmach/sumflow/client/amqp"
)

// mockBroker implements the Broker interface for testing.
type mockBroker struct {
	state amqp.State
}

func (m *mockBroker) IsConnected() bool {
	return m.state == amqp.StateReady
}

func (m *mockBroker) State() amqp.State {
	return m.state
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestServer(broker Broker) *Server {
	return New(Config{Address: "127.0.0.1:0"}, broker, testLogger())
}

func doRequest(s *Server, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	s.server.Handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(&mockBroker{state: amqp.StateReady})

	rec := doRequest(s, http.MethodGet, "/health")
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "healthy" {
		t.Errorf("expected status healthy, got %s", resp.Status)
	}
}

func TestHandleHealthMethodNotAllowed(t *testing.T) {
	s := newTestServer(&mockBroker{state: amqp.StateReady})

	rec := doRequest(s, http.MethodPost, "/health")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", rec.Code)
	}
}

func TestHandleReady(t *testing.T) {
	tests := []struct {
		name       string
		broker     Broker
		wantCode   int
		wantStatus string
	}{
		{
			name:       "broker ready",
			broker:     &mockBroker{state: amqp.StateReady},
			wantCode:   http.StatusOK,
			wantStatus: "ready",
		},
		{
			name:       "broker uninitialized",
			broker:     &mockBroker{state: amqp.StateUninitialized},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "not_ready",
		},
		{
			name:       "broker failed",
			broker:     &mockBroker{state: amqp.StateFailed},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "not_ready",
		},
		{
			name:       "broker closed",
			broker:     &mockBroker{state: amqp.StateClosed},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "not_ready",
		},
		{
			name:       "nil broker",
			broker:     nil,
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "not_ready",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestServer(tc.broker)

			rec := doRequest(s, http.MethodGet, "/ready")
			if rec.Code != tc.wantCode {
				t.Errorf("expected %d, got %d", tc.wantCode, rec.Code)
			}

			var resp ReadyResponse
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Status != tc.wantStatus {
				t.Errorf("expected status %s, got %s", tc.wantStatus, resp.Status)
			}
		})
	}
}
