// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package grpc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/absmach/sumflow/client/amqp"
	sumv1 "github.com/absmach/sumflow/pkg/proto/sum/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// fakePublisher records publishes and can inject failures and delays.
type fakePublisher struct {
	mu       sync.Mutex
	queues   []string
	payloads [][]byte
	ctxErrs  []error

	err   error
	delay time.Duration
}

func (f *fakePublisher) PublishToQueue(ctx context.Context, queueName string, payload []byte) error {
	if f.delay > 0 {
		time.Sleep(f.delay)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return f.err
	}

	f.queues = append(f.queues, queueName)
	f.payloads = append(f.payloads, append([]byte(nil), payload...))
	f.ctxErrs = append(f.ctxErrs, ctx.Err())
	return nil
}

func (f *fakePublisher) published() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]string, 0, len(f.payloads))
	for _, p := range f.payloads {
		out = append(out, string(p))
	}
	return out
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHandlerAdd(t *testing.T) {
	tests := []struct {
		name    string
		a, b    int32
		want    int32
		payload string
	}{
		{"positive", 5, 3, 8, "8"},
		{"negative operand", -2, 2, 0, "0"},
		{"both negative", -4, -6, -10, "-10"},
		{"zero", 0, 0, 0, "0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pub := &fakePublisher{}
			h := NewHandler(pub, "sum_queue", nil, testLogger())

			resp, err := h.Add(context.Background(), &sumv1.AddRequest{A: tc.a, B: tc.b})
			require.NoError(t, err)
			assert.Equal(t, tc.want, resp.GetResult())
			assert.Equal(t, []string{tc.payload}, pub.published())
			assert.Equal(t, []string{"sum_queue"}, pub.queues)
		})
	}
}

func TestHandlerAddWrapsOnOverflow(t *testing.T) {
	pub := &fakePublisher{}
	h := NewHandler(pub, "sum_queue", nil, testLogger())

	resp, err := h.Add(context.Background(), &sumv1.AddRequest{A: math.MaxInt32, B: 1})
	require.NoError(t, err)
	assert.Equal(t, int32(math.MinInt32), resp.GetResult())
	assert.Equal(t, []string{"-2147483648"}, pub.published())
}

func TestHandlerPublishFailureFailsCall(t *testing.T) {
	pub := &fakePublisher{err: errors.New("broker exploded")}
	h := NewHandler(pub, "sum_queue", nil, testLogger())

	resp, err := h.Add(context.Background(), &sumv1.AddRequest{A: 5, B: 3})
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, codes.Unavailable, status.Code(err))
	assert.Empty(t, pub.published())
}

func TestHandlerNotConnectedFailsCall(t *testing.T) {
	pub := &fakePublisher{err: amqp.ErrNotConnected}
	h := NewHandler(pub, "sum_queue", nil, testLogger())

	resp, err := h.Add(context.Background(), &sumv1.AddRequest{A: 5, B: 3})
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
}

func TestHandlerWaitsForPublish(t *testing.T) {
	pub := &fakePublisher{delay: 150 * time.Millisecond}
	h := NewHandler(pub, "sum_queue", nil, testLogger())

	start := time.Now()
	resp, err := h.Add(context.Background(), &sumv1.AddRequest{A: 5, B: 3})
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.Equal(t, int32(8), resp.GetResult())
	assert.GreaterOrEqual(t, elapsed, 150*time.Millisecond,
		"response must not be sent before the publish completes")
	assert.Equal(t, []string{"8"}, pub.published())
}

func TestHandlerPublishSurvivesCallerCancel(t *testing.T) {
	pub := &fakePublisher{}
	h := NewHandler(pub, "sum_queue", nil, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp, err := h.Add(ctx, &sumv1.AddRequest{A: 5, B: 3})
	require.NoError(t, err)
	assert.Equal(t, int32(8), resp.GetResult())

	// The publisher must have seen a context that was not cancelled.
	require.Len(t, pub.ctxErrs, 1)
	assert.NoError(t, pub.ctxErrs[0])
}

func TestHandlerConcurrentAdds(t *testing.T) {
	const calls = 100

	pub := &fakePublisher{}
	h := NewHandler(pub, "sum_queue", nil, testLogger())

	var wg sync.WaitGroup
	errs := make([]error, calls)
	for i := 0; i < calls; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp, err := h.Add(context.Background(), &sumv1.AddRequest{A: int32(i), B: int32(2 * i)})
			if err == nil && resp.GetResult() != int32(3*i) {
				err = fmt.Errorf("got %d, want %d", resp.GetResult(), 3*i)
			}
			errs[i] = err
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "call %d", i)
	}

	// Every call contributed exactly one message; order is unspecified.
	got := pub.published()
	require.Len(t, got, calls)

	want := make(map[string]int, calls)
	for i := 0; i < calls; i++ {
		want[strconv.Itoa(3*i)]++
	}
	found := make(map[string]int, calls)
	for _, p := range got {
		found[p]++
	}
	assert.Equal(t, want, found)
}
