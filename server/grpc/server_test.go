// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package grpc

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	sumv1 "github.com/absmach/sumflow/pkg/proto/sum/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func newBufconnClient(t *testing.T, handler sumv1.SumServiceServer) sumv1.SumServiceClient {
	t.Helper()

	lis := bufconn.Listen(1024 * 1024)
	srv := gogrpc.NewServer()
	sumv1.RegisterSumServiceServer(srv, handler)

	go func() {
		_ = srv.Serve(lis)
	}()
	t.Cleanup(srv.Stop)

	conn, err := gogrpc.NewClient("passthrough:///bufnet",
		gogrpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		gogrpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return sumv1.NewSumServiceClient(conn)
}

func TestAddEndToEnd(t *testing.T) {
	pub := &fakePublisher{}
	client := newBufconnClient(t, NewHandler(pub, "sum_queue", nil, testLogger()))

	resp, err := client.Add(context.Background(), &sumv1.AddRequest{A: 5, B: 3})
	require.NoError(t, err)
	assert.Equal(t, int32(8), resp.GetResult())
	assert.Equal(t, []string{"8"}, pub.published())

	resp, err = client.Add(context.Background(), &sumv1.AddRequest{A: -2, B: 2})
	require.NoError(t, err)
	assert.Equal(t, int32(0), resp.GetResult())
	assert.Equal(t, []string{"8", "0"}, pub.published())
}

func TestAddEndToEndPublishFailure(t *testing.T) {
	pub := &fakePublisher{err: errors.New("queue declare rejected")}
	client := newBufconnClient(t, NewHandler(pub, "sum_queue", nil, testLogger()))

	resp, err := client.Add(context.Background(), &sumv1.AddRequest{A: 5, B: 3})
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, codes.Unavailable, status.Code(err))
}

func TestServerListenAndShutdown(t *testing.T) {
	pub := &fakePublisher{}
	srv := New(Config{Address: "127.0.0.1:0"}, NewHandler(pub, "sum_queue", nil, testLogger()), testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.Listen(ctx)
	}()

	require.Eventually(t, func() bool {
		return srv.Addr() != ""
	}, 2*time.Second, 10*time.Millisecond)

	conn, err := gogrpc.NewClient(srv.Addr(),
		gogrpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	client := sumv1.NewSumServiceClient(conn)
	resp, err := client.Add(context.Background(), &sumv1.AddRequest{A: 1, B: 2})
	require.NoError(t, err)
	assert.Equal(t, int32(3), resp.GetResult())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after context cancellation")
	}
}
